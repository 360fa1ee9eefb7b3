package peg

// Parser wraps a root Node and exposes the single Parse entry point.
// It is the handle a caller holds onto; the tree itself is walked
// directly at match time, with no separate compile step.
type Parser struct {
	root Node
}

// NewParser builds a Parser around a root node. Pass a *GrammarParser as
// root to enable named recursion via ReferenceParser.
func NewParser(root Node) *Parser {
	return &Parser{root: root}
}

// ParseOption overrides one field of the default Options built by Parse.
type ParseOption func(*Options)

func WithFrom(from int) ParseOption {
	return func(o *Options) { o.From = from }
}

func WithSkipper(skipper Node) ParseOption {
	return func(o *Options) { o.Skipper = skipper }
}

func WithSkip(skip bool) ParseOption {
	return func(o *Options) { o.Skip = skip }
}

func WithIgnoreCase(ignoreCase bool) ParseOption {
	return func(o *Options) { o.IgnoreCase = ignoreCase }
}

func WithContext(ctx any) ParseOption {
	return func(o *Options) { o.Context = ctx }
}

func WithTracer(t Tracer) ParseOption {
	return func(o *Options) { o.Tracer = t }
}

// Parse builds the default Options (From=0, the whitespace Skipper,
// Skip=true, IgnoreCase=false), applies overrides, invokes the root
// node, and synthesizes a Result. See spec.md §4.1.
func (p *Parser) Parse(input string, overrides ...ParseOption) Result {
	o := Options{
		Input:   input,
		From:    0,
		Skipper: DefaultSkipper,
		Skip:    true,
	}
	if g, ok := p.root.(*GrammarParser); ok {
		o.Grammar = g
	}
	for _, apply := range overrides {
		apply(&o)
	}

	in := newInternals()
	m, ok := Exec(p.root, o, in)

	failures := append(append([]Failure{}, in.CommittedFailures...), mergeFailures(in.Failures)...)

	if !ok {
		return Result{
			Success:  false,
			Warnings: in.Warnings,
			Failures: failures,
		}
	}

	return Result{
		Success:  true,
		Range:    m.Range,
		Value:    m.Value,
		Raw:      m.Raw(input),
		Captures: m.Captures,
		Warnings: in.Warnings,
		Failures: failures,
	}
}
