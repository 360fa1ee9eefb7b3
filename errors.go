package peg

import (
	"fmt"

	"github.com/pkg/errors"
)

// ConfigError reports a bug in the grammar itself (an unresolved rule
// reference, an invalid construction) rather than a bug in the input.
// It is fatal and immediate, unlike a Failure, which is data describing
// a recoverable dead end.
type ConfigError struct {
	cause error
}

func (e *ConfigError) Error() string { return e.cause.Error() }

func (e *ConfigError) Unwrap() error { return e.cause }

func newConfigError(format string, args ...any) *ConfigError {
	return &ConfigError{cause: errors.WithStack(fmt.Errorf(format, args...))}
}

func wrapConfigError(err error, format string, args ...any) *ConfigError {
	return &ConfigError{cause: errors.Wrapf(err, format, args...)}
}
