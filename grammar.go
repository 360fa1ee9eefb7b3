package peg

// GrammarParser owns a name-to-parser rule table by exclusive ownership.
// It is the handle installed into Options.Grammar so ReferenceParser
// nodes, which hold only a label string, can resolve themselves at
// match time — the lookup indirection that lets named rules recurse
// without the parser tree ever containing a pointer cycle (spec.md §3,
// §9 "Named recursion without cycles").
type GrammarParser struct {
	node
	Rules map[string]Node
	order []string
}

// NewGrammar returns an empty grammar. Use Define to add rules; the
// first rule Define'd is the one matched when the grammar itself is
// exec'd (spec.md §4.6).
func NewGrammar() *GrammarParser {
	return &GrammarParser{Rules: map[string]Node{}}
}

// Define adds a named rule. Panics with a ConfigError if the name is
// already taken — a grammar redefining a rule is a construction bug,
// not a parse failure, per spec.md §7. Returns the receiver so
// definitions can be chained.
func (p *GrammarParser) Define(name string, n Node) *GrammarParser {
	if _, exists := p.Rules[name]; exists {
		panic(newConfigError("rule %q already defined", name))
	}
	p.Rules[name] = n
	p.order = append(p.order, name)
	return p
}

func (p *GrammarParser) exec(o Options, in *Internals) (*Match, bool) {
	if len(p.order) == 0 {
		panic(newConfigError("grammar has no rules"))
	}
	o.Grammar = p
	start := p.Rules[p.order[0]]
	return Exec(start, o, in)
}

// ReferenceParser holds only a label and resolves it against
// Options.Grammar at match time. A label with no installed grammar, or
// one absent from the grammar's rule table, is a ConfigError: a bug in
// the grammar the user wrote, not in the input being parsed.
type ReferenceParser struct {
	node
	Label string
}

func NewReference(label string) *ReferenceParser {
	return &ReferenceParser{Label: label}
}

func (p *ReferenceParser) traceLabel() string { return p.Label }

func (p *ReferenceParser) exec(o Options, in *Internals) (*Match, bool) {
	if o.Grammar == nil {
		panic(newConfigError("reference %q used outside of any grammar", p.Label))
	}
	target, ok := o.Grammar.Rules[p.Label]
	if !ok {
		panic(newConfigError("unresolved rule reference %q", p.Label))
	}

	m, ok := Exec(target, o, in)
	if !ok {
		return nil, false
	}
	captures := mergeCaptures(m.Captures, map[string]any{p.Label: m.Value})
	return newMatch(m.Range, m.Value, m.Children, captures), true
}
