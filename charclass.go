package peg

import "strings"

// CharClass and NegatedCharClass build a RegExpParser from raw regex
// character-class fragments (e.g. "a-z", "0-9", " \t"). Neither
// introduces a new ParserNode variant: both compile down to a
// RegExpParser, per spec.md §9's closed-sum guidance.
func CharClass(ranges ...string) *RegExpParser {
	return buildCharClass(false, ranges)
}

func NegatedCharClass(ranges ...string) *RegExpParser {
	return buildCharClass(true, ranges)
}

func buildCharClass(negate bool, ranges []string) *RegExpParser {
	var b strings.Builder
	b.WriteByte('[')
	if negate {
		b.WriteByte('^')
	}
	for _, r := range ranges {
		b.WriteString(r)
	}
	b.WriteByte(']')
	return NewRegExp(b.String())
}

// AnyRune matches exactly one rune; it fails only at end of input. A
// single shared instance is safe to reference from many places in a
// grammar tree: parser nodes are read-only once built (spec.md §3).
var AnyRune Node = NewRegExp(`(?s).`)
