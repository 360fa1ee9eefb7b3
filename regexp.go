package peg

import "regexp"

// RegExpParser runs a user-supplied regular expression anchored at the
// cursor. Go's regexp package has no sticky-match primitive (no \G),
// so anchoring is done the way spec.md §9's Open Question resolves it
// for hosts without one: prepend \A to a copy of the pattern and run it
// against the input sliced from the cursor, rather than against the
// whole input. Both a case-sensitive and a case-insensitive compiled
// form are prepared at construction time (spec.md §4.4); match time
// just selects one by options.IgnoreCase.
type RegExpParser struct {
	node
	Source      string
	sensitive   *regexp.Regexp
	insensitive *regexp.Regexp
}

// NewRegExp compiles pattern into both case-sensitive and
// case-insensitive anchored forms. Panics on an invalid pattern: an
// unparsable regex is a grammar-construction bug, reported immediately
// per spec.md §7's configuration-error policy, not a Failure.
func NewRegExp(pattern string) *RegExpParser {
	sensitive, err := regexp.Compile(`\A(?:` + pattern + `)`)
	if err != nil {
		panic(wrapConfigError(err, "invalid regexp %q", pattern))
	}
	insensitive, err := regexp.Compile(`\A(?i:` + pattern + `)`)
	if err != nil {
		panic(wrapConfigError(err, "invalid regexp %q", pattern))
	}
	return &RegExpParser{Source: pattern, sensitive: sensitive, insensitive: insensitive}
}

func (p *RegExpParser) exec(o Options, in *Internals) (*Match, bool) {
	o, ok := preskip(o, in)
	if !ok {
		return nil, false
	}

	re := p.sensitive
	if o.IgnoreCase {
		re = p.insensitive
	}

	rest := o.Input[o.From:]
	loc := re.FindStringSubmatchIndex(rest)
	if loc == nil {
		in.fail(p.expectation(o.From))
		return nil, false
	}

	to := o.From + loc[1]
	value := o.Input[o.From:to]

	var captures map[string]any
	names := re.SubexpNames()
	for i, name := range names {
		if i == 0 || name == "" {
			continue
		}
		if 2*i+1 >= len(loc) || loc[2*i] < 0 {
			continue
		}
		if captures == nil {
			captures = map[string]any{}
		}
		captures[name] = o.Input[o.From+loc[2*i] : o.From+loc[2*i+1]]
	}

	return newMatch(Range{From: o.From, To: to}, value, nil, captures), true
}

func (p *RegExpParser) expectation(at int) Failure {
	return expectationFailure(at, Expectation{Kind: ExpectRegExp, RegExp: p.Source})
}
