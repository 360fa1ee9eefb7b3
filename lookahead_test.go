package peg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAndConsumesNothing(t *testing.T) {
	p := NewParser(NewSequence(And(NewLiteral("ab", true)), NewLiteral("a", true)))

	r := p.Parse("ab", WithSkip(false))
	require.True(t, r.Success)
	require.Equal(t, 1, r.Range.To, "And must not consume the input it probed")
}

func TestAndFailsWhenChildFails(t *testing.T) {
	p := NewParser(And(NewLiteral("z", true)))
	r := p.Parse("a", WithSkip(false))
	require.False(t, r.Success)
}

func TestNotSucceedsWhenChildFails(t *testing.T) {
	p := NewParser(NewSequence(Not(NewLiteral("b", true)), NewLiteral("a", true)))

	r := p.Parse("a", WithSkip(false))
	require.True(t, r.Success)
}

func TestNotFailsWhenChildSucceeds(t *testing.T) {
	p := NewParser(Not(NewLiteral("a", true)))
	r := p.Parse("a", WithSkip(false))
	require.False(t, r.Success)
}
