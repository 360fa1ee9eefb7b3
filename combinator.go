package peg

// Unbounded expresses an unbounded Repetition max, per spec.md §4.5.
const Unbounded = -1

// SequenceParser threads the cursor through its children in order; any
// child failure short-circuits to (nil, false) without recording an
// extra failure (the failing child already recorded its own).
type SequenceParser struct {
	node
	Children []Node
}

func NewSequence(children ...Node) *SequenceParser {
	return &SequenceParser{Children: children}
}

func (p *SequenceParser) exec(o Options, in *Internals) (*Match, bool) {
	if len(p.Children) == 0 {
		return newMatch(Range{From: o.From, To: o.From}, nil, nil, nil), true
	}

	cursor := o.From
	from := o.From
	values := make([]any, 0, len(p.Children))
	captures := map[string]any{}

	for i, child := range p.Children {
		m, ok := Exec(child, o.at(cursor), in)
		if !ok {
			return nil, false
		}
		if i == 0 {
			// §4.5: a sequence's own from is the first child's from, not
			// the pre-skip cursor it started at — the first child may
			// have preskipped past leading whitespace on its own.
			from = m.From
		}
		cursor = m.To
		// §4.2: Sequence filters out no-value ("undefined") entries;
		// Repetition, below, does not. This asymmetry is intentional.
		// A directly nested SequenceParser's values are spliced in, so
		// Sequence(Sequence(a, b), c) and Sequence(a, Sequence(b, c))
		// produce the same flat list.
		if _, nested := child.(*SequenceParser); nested {
			vs, _ := m.Value.([]any)
			values = append(values, vs...)
		} else if m.Value != nil {
			values = append(values, m.Value)
		}
		captures = mergeCaptures(captures, m.Captures)
	}

	return newMatch(Range{From: from, To: cursor}, values, nil, captures), true
}

// OptionParser is ordered choice: children are tried in turn from the
// same starting cursor, first success wins. Because options are
// immutable copies and a failed child mutates nothing observable,
// backtracking after a failed alternative is implicit — there is no
// cursor to rewind.
type OptionParser struct {
	node
	Children []Node
}

func NewOption(children ...Node) *OptionParser {
	return &OptionParser{Children: children}
}

func (p *OptionParser) exec(o Options, in *Internals) (*Match, bool) {
	for _, child := range p.Children {
		if m, ok := Exec(child, o, in); ok {
			return m, true
		}
	}
	return nil, false
}

// RepetitionParser greedily matches its child at the advancing cursor
// until it fails or the max count is reached, succeeding iff it managed
// at least min matches.
type RepetitionParser struct {
	node
	Child Node
	Min   int
	Max   int // Unbounded for no upper limit
}

func NewRepetition(child Node, min, max int) *RepetitionParser {
	return &RepetitionParser{Child: child, Min: min, Max: max}
}

func (p *RepetitionParser) exec(o Options, in *Internals) (*Match, bool) {
	cursor := o.From
	from := o.From
	var values []any
	captures := map[string]any{}
	count := 0

	for p.Max == Unbounded || count < p.Max {
		m, ok := Exec(p.Child, o.at(cursor), in)
		if !ok {
			break
		}
		if count == 0 {
			// Same reasoning as Sequence: the first successful match may
			// have preskipped past leading whitespace the caller's cursor
			// still includes. A zero-match repetition (count stays 0)
			// keeps o.From, per §4.5's empty-range rule.
			from = m.From
		}
		cursor = m.To
		// Repetition does not filter no-value children: it returns a
		// true list, one entry per match, per spec.md §4.2 and §9.
		values = append(values, m.Value)
		captures = mergeCaptures(captures, m.Captures)
		count++
		if m.To == m.From {
			// A child that matches without consuming input would
			// otherwise loop forever; one empty match is enough to
			// witness it, per the spirit of spec.md §4.5's greedy rule.
			break
		}
	}

	if count < p.Min {
		return nil, false
	}
	return newMatch(Range{From: from, To: cursor}, values, nil, captures), true
}
