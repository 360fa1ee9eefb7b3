package peg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPreskipDisabledByOptionsSkip(t *testing.T) {
	p := NewParser(NewLiteral("a", true))

	r := p.Parse(" a", WithSkip(false))
	require.False(t, r.Success, "with skip disabled, leading whitespace is not consumed")
}

func TestPreskipFailsWhenSkipperFails(t *testing.T) {
	strict := NewLiteral("only-this-skip", true)
	p := NewParser(NewLiteral("a", true))

	r := p.Parse(" a", WithSkipper(strict))
	require.False(t, r.Success, "a skipper that cannot match must fail the preskip")
}

func TestCustomSkipper(t *testing.T) {
	commas := NewRepetition(NewLiteral(",", false), 0, Unbounded)
	p := NewParser(NewSequence(NewLiteral("a", true), NewLiteral("b", true)))

	r := p.Parse("a,,,b", WithSkipper(commas))
	require.True(t, r.Success)
	require.Equal(t, 5, r.Range.To)
}
