package peg

// commitParser is ActionParser sugar for the common case of a bare cut:
// run a child (typically an empty SequenceParser used purely as a
// pivot), and on success fold the tentative failures into
// CommittedFailures via Internals.commit. Writing `'if' $commit 'then'`
// as Sequence(Literal("if"), Commit(NewSequence()), Literal("then"))
// avoids spelling out an ActionFunc whose only job is calling
// arg.Commit(), per spec.md §4.6.
type commitParser struct {
	node
	Child Node
}

// Commit wraps child so that, once it succeeds, every tentative failure
// recorded so far is committed (spec.md §4.6's "$commit" cut).
func Commit(child Node) Node {
	return &commitParser{Child: child}
}

func (p *commitParser) exec(o Options, in *Internals) (*Match, bool) {
	m, ok := Exec(p.Child, o, in)
	if !ok {
		return nil, false
	}
	in.commit()
	return m, true
}
