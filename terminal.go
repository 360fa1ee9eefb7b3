package peg

import "strings"

// LiteralParser matches an exact literal string, case-folded when
// options.IgnoreCase is set, and optionally suppressing its own value
// from the result tree (the emit flag, spec.md §4.4).
type LiteralParser struct {
	node
	Literal string
	Emit    bool
}

// NewLiteral builds a LiteralParser. emit controls whether the matched
// text becomes the parser's value (false for punctuation a grammar
// author wants to consume but never see in a Sequence's children).
func NewLiteral(literal string, emit bool) *LiteralParser {
	return &LiteralParser{Literal: literal, Emit: emit}
}

func (p *LiteralParser) exec(o Options, in *Internals) (*Match, bool) {
	o, ok := preskip(o, in)
	if !ok {
		return nil, false
	}

	n := len(p.Literal)
	end := o.From + n
	if end > len(o.Input) {
		in.fail(p.expectation(o.From))
		return nil, false
	}

	candidate := o.Input[o.From:end]
	matched := candidate == p.Literal
	if !matched && o.IgnoreCase {
		matched = strings.EqualFold(candidate, p.Literal)
	}
	if !matched {
		in.fail(p.expectation(o.From))
		return nil, false
	}

	var value any
	if p.Emit {
		value = candidate
	}
	return newMatch(Range{From: o.From, To: end}, value, nil, nil), true
}

func (p *LiteralParser) expectation(at int) Failure {
	return expectationFailure(at, Expectation{Kind: ExpectLiteral, Literal: p.Literal})
}

// StartEdgeParser asserts the cursor sits at index 0. It never
// preskips (spec.md §4.3): skipping before a start-of-input assertion
// would make the assertion meaningless.
type StartEdgeParser struct{ node }

func NewStartEdge() *StartEdgeParser { return &StartEdgeParser{} }

func (p *StartEdgeParser) exec(o Options, in *Internals) (*Match, bool) {
	if o.From != 0 {
		in.fail(expectationFailure(o.From, Expectation{Kind: ExpectEdge, Edge: EdgeStart}))
		return nil, false
	}
	return newMatch(Range{From: 0, To: 0}, nil, nil, nil), true
}

// EndEdgeParser asserts the cursor, after preskip, sits at the end of
// the input.
type EndEdgeParser struct{ node }

func NewEndEdge() *EndEdgeParser { return &EndEdgeParser{} }

func (p *EndEdgeParser) exec(o Options, in *Internals) (*Match, bool) {
	o, ok := preskip(o, in)
	if !ok {
		return nil, false
	}
	if o.From != len(o.Input) {
		in.fail(expectationFailure(o.From, Expectation{Kind: ExpectEdge, Edge: EdgeEnd}))
		return nil, false
	}
	return newMatch(Range{From: o.From, To: o.From}, nil, nil, nil), true
}
