package peg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGrammarRecursiveDescent(t *testing.T) {
	g := NewGrammar()
	g.Define("list", NewSequence(
		NewLiteral("[", false),
		Optional(NewSequence(
			NewReference("item"),
			ZeroOrMore(NewSequence(NewLiteral(",", false), NewReference("item"))),
		)),
		NewLiteral("]", false),
	))
	g.Define("item", NewOption(NewReference("list"), NewRegExp(`\d+`)))

	p := NewParser(g)
	r := p.Parse("[1,[2,3],4]", WithSkip(false))

	require.True(t, r.Success)
	require.Equal(t, 0, r.Range.From)
	require.Equal(t, 11, r.Range.To)
}

func TestReferenceBindsRuleLabelAsCapture(t *testing.T) {
	g := NewGrammar()
	g.Define("start", NewReference("digits"))
	g.Define("digits", NewRegExp(`\d+`))

	p := NewParser(g)
	r := p.Parse("42", WithSkip(false))

	require.True(t, r.Success)
	require.Equal(t, "42", r.Captures["digits"])
}

func TestUnresolvedReferenceIsConfigError(t *testing.T) {
	g := NewGrammar()
	g.Define("start", NewReference("missing"))
	p := NewParser(g)

	require.Panics(t, func() {
		p.Parse("x")
	})
}

func TestGrammarRedefinitionIsConfigError(t *testing.T) {
	g := NewGrammar()
	g.Define("x", NewLiteral("a", true))

	require.Panics(t, func() {
		g.Define("x", NewLiteral("b", true))
	})
}
