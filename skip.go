package peg

// preskip advances options.From past any input the configured Skipper
// can consume, but only when options.Skip is true. The skipper itself
// is invoked with Skip=false (a skipper must never skip itself — an
// infinite regress otherwise) per spec.md §4.3. If the skipper fails,
// preskip fails and the caller must return (nil, false) without
// recording an extra failure (the skipper already recorded its own leaf
// expectation).
func preskip(o Options, in *Internals) (Options, bool) {
	if !o.Skip {
		return o, true
	}
	m, ok := Exec(o.Skipper, o.withSkip(false), in)
	if !ok {
		return o, false
	}
	return o.at(m.To), true
}

// DefaultSkipper consumes runs of ASCII whitespace (space, tab, CR, LF).
// It never fails (the pattern also matches the empty string) and so
// records no failure, so it is always safe as the fallback skipper:
// a Parser built with no explicit WithSkipper still behaves.
var DefaultSkipper Node = newBareRegExp(`[ \t\r\n]*`)

// newBareRegExp builds a RegExpParser for internal plumbing (the default
// skipper) where the matched value is never observed by a caller.
func newBareRegExp(pattern string) *RegExpParser {
	return NewRegExp(pattern)
}
