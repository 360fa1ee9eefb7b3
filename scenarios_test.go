package peg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// These mirror spec.md §8's six end-to-end scenarios verbatim.

func TestScenarioLiteralWithSkip(t *testing.T) {
	p := NewParser(NewLiteral("a", true))
	r := p.Parse("a a")

	require.True(t, r.Success)
	require.Equal(t, 0, r.Range.From)
	require.Equal(t, 1, r.Range.To)
	require.Equal(t, "a", r.Raw)
}

func TestScenarioSequenceWithLeadingAndTrailingSkip(t *testing.T) {
	p := NewParser(NewSequence(NewLiteral("a", true), NewLiteral("b", true)))
	r := p.Parse(" ab ")

	require.True(t, r.Success)
	require.Equal(t, 1, r.Range.From)
	require.Equal(t, 3, r.Range.To)
	require.Equal(t, "ab", r.Raw)
}

func TestScenarioOptionSecondAlternative(t *testing.T) {
	p := NewParser(NewOption(NewLiteral("a", true), NewLiteral("b", true)))
	r := p.Parse("b")

	require.True(t, r.Success)
	require.Equal(t, "b", r.Raw)
	require.True(t, hasLiteralExpectationAt(r.Failures, "a", 0))
}

func TestScenarioRepetitionGreedyCapped(t *testing.T) {
	p := NewParser(NewRepetition(NewLiteral("a", true), 2, 3))
	r := p.Parse("aaaa")

	require.True(t, r.Success)
	require.Equal(t, 0, r.Range.From)
	require.Equal(t, 3, r.Range.To)
}

func TestScenarioCommitNarrowsDiagnostic(t *testing.T) {
	root := NewSequence(
		NewLiteral("if", true),
		Commit(NewSequence()),
		NewLiteral("then", true),
	)
	p := NewParser(root)
	r := p.Parse("if x")

	require.False(t, r.Success)
	require.Len(t, r.Failures, 1)
	require.Equal(t, FailureExpectation, r.Failures[0].Kind)
	require.Equal(t, 3, r.Failures[0].From)
	require.Len(t, r.Failures[0].Expected, 1)
	require.Equal(t, "then", r.Failures[0].Expected[0].Literal)
	for _, e := range r.Failures[0].Expected {
		require.NotEqual(t, "if", e.Literal)
	}
}

func TestScenarioNamedRecursionTerminates(t *testing.T) {
	g := NewGrammar()
	g.Define("x", NewSequence(NewLiteral("a", true), Optional(NewReference("x"))))

	p := NewParser(g)
	r := p.Parse("aaa")

	require.True(t, r.Success)
	require.Equal(t, 0, r.Range.From)
	require.Equal(t, 3, r.Range.To)
}

func hasLiteralExpectationAt(failures []Failure, literal string, at int) bool {
	for _, f := range failures {
		if f.From != at || f.Kind != FailureExpectation {
			continue
		}
		for _, e := range f.Expected {
			if e.Kind == ExpectLiteral && e.Literal == literal {
				return true
			}
		}
	}
	return false
}
