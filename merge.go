package peg

// mergeFailures reduces a list of failures taken at the maximum From
// position into the smallest set worth reporting: a PEG user wants the
// error from how far the parse got, and the union of everything that
// could have followed there. See spec.md §4.7.
func mergeFailures(failures []Failure) []Failure {
	if len(failures) == 0 {
		return nil
	}

	fmax := failures[0].From
	for _, f := range failures[1:] {
		if f.From > fmax {
			fmax = f.From
		}
	}

	deepest := make([]Failure, 0, len(failures))
	for _, f := range failures {
		if f.From == fmax {
			deepest = append(deepest, f)
		}
	}

	var semantic []Failure
	var expected []Expectation
	seen := make(map[string]bool, len(deepest))

	for _, f := range deepest {
		if f.Kind == FailureSemantic {
			semantic = append(semantic, f)
			continue
		}
		for _, e := range f.Expected {
			key := expectationKey(e)
			if seen[key] {
				continue
			}
			seen[key] = true
			expected = append(expected, e)
		}
	}

	out := make([]Failure, 0, len(semantic)+1)
	out = append(out, semantic...)
	if len(expected) > 0 {
		out = append(out, Failure{
			Range:    Range{From: fmax, To: fmax},
			Kind:     FailureExpectation,
			Expected: expected,
		})
	}
	return out
}

func expectationKey(e Expectation) string {
	switch e.Kind {
	case ExpectLiteral:
		return "L:" + e.Literal
	case ExpectRegExp:
		return "R:" + e.RegExp
	case ExpectToken:
		return "T:" + e.TokenAlias
	case ExpectEdge:
		if e.Edge == EdgeStart {
			return "E:start"
		}
		return "E:end"
	default:
		return ""
	}
}
