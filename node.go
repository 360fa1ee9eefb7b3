package peg

// Node is the sealed contract every parser variant implements: attempt a
// match starting at options.From and either return a Match, or return
// (nil, false) and push at least one Failure describing the leaf
// expectation (combinators that solely aggregate a child's failures are
// exempt — they push nothing extra). exec is pure with respect to
// options (every override is copy-on-write) and append-only with
// respect to internals.
//
// The unexported sealNode method keeps this a closed sum, per spec.md
// §9's recommendation to model ParserNode as a tagged variant with a
// single dispatch function: Go's interface dispatch plays that role
// here, and sealing prevents a caller outside this package from adding
// an unannounced variant of its own.
type Node interface {
	exec(o Options, in *Internals) (*Match, bool)
	sealNode()
}

// node embeds into every concrete parser type to satisfy sealNode
// without repeating its empty body everywhere.
type node struct{}

func (node) sealNode() {}

// Exec is the sole recursion point: every parser, including the root
// invoked by Parser.Parse, is entered through here rather than by
// calling n.exec directly, so the three Tracer events (spec.md §6) fire
// uniformly for every node in the tree without each node's exec having
// to remember to call them.
func Exec(n Node, o Options, in *Internals) (*Match, bool) {
	label := labelFor(n, typeTag(n))
	traceEnter(o, label)
	m, ok := n.exec(o, in)
	if ok {
		traceMatch(o, label, m)
	} else {
		traceFail(o, label)
	}
	return m, ok
}

func typeTag(n Node) string {
	switch n.(type) {
	case *LiteralParser:
		return "Literal"
	case *RegExpParser:
		return "RegExp"
	case *StartEdgeParser:
		return "StartEdge"
	case *EndEdgeParser:
		return "EndEdge"
	case *SequenceParser:
		return "Sequence"
	case *OptionParser:
		return "Option"
	case *RepetitionParser:
		return "Repetition"
	case *TokenParser:
		return "Token"
	case *CaptureParser:
		return "Capture"
	case *OptionMergeParser:
		return "OptionMerge"
	case *ActionParser:
		return "Action"
	case *GrammarParser:
		return "Grammar"
	case *ReferenceParser:
		return "Reference"
	case *lookaheadParser:
		return "Lookahead"
	case *commitParser:
		return "Commit"
	default:
		return "Node"
	}
}
