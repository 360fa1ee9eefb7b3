package peg

// Result is what Parser.Parse returns: either a successful match's
// projection onto the public API, or the diagnostics accumulated while
// every branch died. Failures may be non-empty even on success (the
// deepest point the parser reached before choosing its eventual path is
// still worth surfacing, e.g. in a REPL "did you mean" hint).
type Result struct {
	Success  bool
	Range    Range
	Value    any
	Raw      string
	Captures map[string]any
	Warnings []Warning
	Failures []Failure
}
