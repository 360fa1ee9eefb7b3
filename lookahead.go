package peg

// lookaheadParser implements positive (And) and negative (Not)
// lookahead: probe a child without consuming input.
type lookaheadParser struct {
	node
	Child  Node
	Negate bool
}

// And succeeds iff child would succeed at the cursor, consuming no
// input and contributing no value or captures.
func And(child Node) Node {
	return &lookaheadParser{Child: child, Negate: false}
}

// Not succeeds iff child would fail at the cursor, consuming no input.
func Not(child Node) Node {
	return &lookaheadParser{Child: child, Negate: true}
}

func (p *lookaheadParser) exec(o Options, in *Internals) (*Match, bool) {
	saved := in.snapshotFailures()
	_, ok := Exec(p.Child, o, in)
	probed := in.Failures

	if p.Negate {
		// The probe failing is what we wanted; its failures describe a
		// dead end we deliberately sought, not one worth reporting.
		in.Failures = saved
		if ok {
			in.fail(semanticFailure(Range{From: o.From, To: o.From}, "unexpected match"))
			return nil, false
		}
		return newMatch(Range{From: o.From, To: o.From}, nil, nil, nil), true
	}

	// Positive lookahead: keep the probe's failures when it fails — they
	// explain exactly what And wanted to see.
	in.Failures = append(saved, probed...)
	if !ok {
		return nil, false
	}
	return newMatch(Range{From: o.From, To: o.From}, nil, nil, nil), true
}
