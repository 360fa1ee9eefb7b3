// Package pegtrace provides a batteries-included peg.Tracer backed by
// logrus. The engine itself never imports a logging library (it has no
// I/O); this is the one shipped implementation a caller can plug in
// with peg.WithTracer.
package pegtrace

import (
	"github.com/sirupsen/logrus"

	"github.com/tefparse/peg"
)

type logrusTracer struct {
	log *logrus.Logger
}

// Logrus returns a peg.Tracer that logs Enter/Match/Fail events at
// debug level. A nil logger falls back to logrus's standard logger.
func Logrus(log *logrus.Logger) peg.Tracer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &logrusTracer{log: log}
}

func (t *logrusTracer) Enter(label string, o peg.Options) {
	t.log.WithFields(logrus.Fields{
		"event": "enter",
		"rule":  label,
		"from":  o.From,
	}).Debug("peg parse")
}

func (t *logrusTracer) Match(label string, o peg.Options, m *peg.Match) {
	t.log.WithFields(logrus.Fields{
		"event": "match",
		"rule":  label,
		"from":  m.From,
		"to":    m.To,
	}).Debug("peg parse")
}

func (t *logrusTracer) Fail(label string, o peg.Options) {
	t.log.WithFields(logrus.Fields{
		"event": "fail",
		"rule":  label,
		"from":  o.From,
	}).Debug("peg parse")
}
