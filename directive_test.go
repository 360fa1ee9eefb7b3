package peg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStandardDirectivesTokenAndIgnoreCase(t *testing.T) {
	dirs := StandardDirectives()

	tokenized := dirs["token"](NewSequence(NewLiteral("a", true), NewLiteral("b", true)))
	p := NewParser(tokenized)
	r := p.Parse("a b")
	require.False(t, r.Success, "the token directive must suppress internal skipping")

	ignoreCase := dirs["ignoreCase"](NewLiteral("abc", true))
	p = NewParser(ignoreCase)
	r = p.Parse("ABC", WithSkip(false))
	require.True(t, r.Success)
}
