package peg

// Optional, ZeroOrMore and OneOrMore are RepetitionParser sugar. None
// adds a variant to the closed sum; all three are exactly spec.md
// §4.5's RepetitionParser at different (min, max) corners.
func Optional(child Node) Node {
	return NewRepetition(child, 0, 1)
}

func ZeroOrMore(child Node) Node {
	return NewRepetition(child, 0, Unbounded)
}

func OneOrMore(child Node) Node {
	return NewRepetition(child, 1, Unbounded)
}
