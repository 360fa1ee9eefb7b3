package peg

// TokenParser wraps a child as a named atomic unit: it preskips once on
// entry, then runs the child with Skip forced to false (spec.md §4.3 —
// "Inside a Token, skip is forced to false: tokens are atomic and
// whitespace-sensitive"). The child's own failures are accumulated in a
// private buffer and never surface individually; on failure they are
// folded into a single Expectation(Token) failure, presenting the token
// as one atomic expectation to the outside.
type TokenParser struct {
	node
	Child Node
	Alias string
}

func NewToken(child Node, alias string) *TokenParser {
	return &TokenParser{Child: child, Alias: alias}
}

func (p *TokenParser) traceLabel() string { return p.Alias }

func (p *TokenParser) exec(o Options, in *Internals) (*Match, bool) {
	o, ok := preskip(o, in)
	if !ok {
		return nil, false
	}

	saved := in.snapshotFailures()
	m, ok := Exec(p.Child, o.withSkip(false), in)
	childFailures := in.Failures
	in.Failures = saved

	if !ok {
		in.fail(expectationFailure(o.From, Expectation{
			Kind:          ExpectToken,
			TokenAlias:    p.Alias,
			TokenFailures: childFailures,
		}))
		return nil, false
	}
	return m, true
}

// CaptureParser invokes its child and binds the resulting match value
// under Name in the upward-propagating captures map (spec.md §4.2's
// right-biased merge — a later write under the same name, closer to the
// root, wins).
type CaptureParser struct {
	node
	Child Node
	Name  string
}

func NewCapture(child Node, name string) *CaptureParser {
	return &CaptureParser{Child: child, Name: name}
}

func (p *CaptureParser) exec(o Options, in *Internals) (*Match, bool) {
	m, ok := Exec(p.Child, o, in)
	if !ok {
		return nil, false
	}
	captures := mergeCaptures(m.Captures, map[string]any{p.Name: m.Value})
	return newMatch(m.Range, m.Value, m.Children, captures), true
}

// OptionMergeParser runs its child under a shallow-merged Options
// override — the mechanism behind scoped case-insensitivity, an
// alternate skipper for one subtree, and so on. Grounded on spec.md
// §9's note that the source uses object-spread overrides; here that
// is Options.withOverrides, a plain value-returning method.
type OptionMergeParser struct {
	node
	Child     Node
	Overrides Overrides
}

func NewOptionMerge(child Node, overrides Overrides) *OptionMergeParser {
	return &OptionMergeParser{Child: child, Overrides: overrides}
}

func (p *OptionMergeParser) exec(o Options, in *Internals) (*Match, bool) {
	return Exec(p.Child, o.withOverrides(p.Overrides), in)
}

// ActionArg is passed to an ActionFunc. It splits the match's captures
// from its fixed fields (value, raw text, range) into a plain map and a
// fixed-field record, the way a strongly typed host should, per
// spec.md §9's design note.
type ActionArg struct {
	Captures map[string]any
	Value    any
	Raw      string
	From     int
	To       int
	Options  Options
	Commit   func()
	Warn     func(message string)
}

// Capture looks up a capture by name, returning nil if absent.
func (a ActionArg) Capture(name string) any { return a.Captures[name] }

// ActionFunc is a semantic action. A non-nil error becomes a Semantic
// Failure tied to the child's match range (spec.md §4.6); any panic
// (a programmer error, e.g. a bad type assertion) is left to propagate
// unchanged, matching spec.md §7's "any other thrown value is
// re-propagated unchanged."
type ActionFunc func(ActionArg) (any, error)

// ActionParser runs a child and feeds its match to a semantic action,
// whose return value becomes the new match value.
type ActionParser struct {
	node
	Child Node
	Fn    ActionFunc
}

func NewAction(child Node, fn ActionFunc) *ActionParser {
	return &ActionParser{Child: child, Fn: fn}
}

func (p *ActionParser) exec(o Options, in *Internals) (*Match, bool) {
	m, ok := Exec(p.Child, o, in)
	if !ok {
		return nil, false
	}

	arg := ActionArg{
		Captures: m.Captures,
		Value:    m.Value,
		Raw:      m.Raw(o.Input),
		From:     m.From,
		To:       m.To,
		Options:  o,
		Commit:   in.commit,
		Warn: func(message string) {
			in.warn(Warning{Range: m.Range, Message: message})
		},
	}

	value, err := p.Fn(arg)
	if err != nil {
		in.fail(semanticFailure(m.Range, err.Error()))
		return nil, false
	}
	return newMatch(m.Range, value, m.Children, m.Captures), true
}
