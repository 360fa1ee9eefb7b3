package peg

// Options is the per-invocation, copy-on-override configuration threaded
// through every exec call. It is a small value type deliberately: no
// node ever holds a pointer to an Options it did not just receive, and
// every override (preskip's skip=false, a Token's skip suppression, an
// OptionMerge's scoped tweak) produces a new value rather than mutating
// a shared one. See spec.md §9 "Options overrides".
type Options struct {
	Input      string
	From       int
	Grammar    *GrammarParser
	Skipper    Node
	Skip       bool
	IgnoreCase bool
	Context    any
	Tracer     Tracer
}

func (o Options) at(from int) Options {
	o.From = from
	return o
}

func (o Options) withSkip(skip bool) Options {
	o.Skip = skip
	return o
}

// Overrides is the shallow-merge payload for OptionMergeParser: a nil
// field (or false flag) leaves the corresponding Options field
// untouched.
type Overrides struct {
	Skipper      Node
	Skip         *bool
	IgnoreCase   *bool
	Context      any
	OverrideCtx  bool
	Grammar      *GrammarParser
	OverrideGram bool
}

func (o Options) withOverrides(ov Overrides) Options {
	if ov.Skipper != nil {
		o.Skipper = ov.Skipper
	}
	if ov.Skip != nil {
		o.Skip = *ov.Skip
	}
	if ov.IgnoreCase != nil {
		o.IgnoreCase = *ov.IgnoreCase
	}
	if ov.OverrideCtx {
		o.Context = ov.Context
	}
	if ov.OverrideGram {
		o.Grammar = ov.Grammar
	}
	return o
}

// Internals is the mutable, per-call scratchpad. It is never shared
// across Parse calls. Warnings and CommittedFailures only grow within
// one call; Failures is cleared by commit and swapped for a private
// buffer while a TokenParser or lookahead probes its child.
type Internals struct {
	Warnings          []Warning
	Failures          []Failure
	CommittedFailures []Failure
}

func newInternals() *Internals {
	return &Internals{}
}

func (in *Internals) fail(f Failure) {
	in.Failures = append(in.Failures, f)
}

func (in *Internals) warn(w Warning) {
	in.Warnings = append(in.Warnings, w)
}

// commit is the `$commit` cut operation: it atomically moves the
// reduced form of the tentative failures into CommittedFailures and
// clears Failures. See spec.md §4.6.
func (in *Internals) commit() {
	in.CommittedFailures = append(in.CommittedFailures, mergeFailures(in.Failures)...)
	in.Failures = nil
}

// snapshot/restore let a delegating parser run a child against a private
// failures buffer (TokenParser discards it on success) without losing
// sight of warnings, which are never discarded.
func (in *Internals) snapshotFailures() []Failure {
	saved := in.Failures
	in.Failures = nil
	return saved
}

func (in *Internals) restoreFailures(saved []Failure) []Failure {
	mine := in.Failures
	in.Failures = saved
	return mine
}
