package peg

// Directive is a unary transform over a parser tree, keyed by name in a
// Directives registry. spec.md §6 describes the metagrammar (an
// external collaborator, not implemented here) as emitting these: a
// surface-syntax annotation like `token` or `ignoreCase` lowers to
// a call against the registry matching its name. The engine only needs
// to expose the shape; it never interprets directive names itself.
type Directive func(Node) Node

// Directives is a name-keyed registry a metagrammar collaborator can
// populate and consult when lowering surface annotations to transforms
// over the parser tree it is building.
type Directives map[string]Directive

// StandardDirectives returns the handful of directives expressible
// purely in terms of this engine's own node constructors — a
// convenience starting point for a collaborator, not a requirement.
func StandardDirectives() Directives {
	return Directives{
		"token": func(n Node) Node {
			return NewToken(n, "")
		},
		"ignoreCase": func(n Node) Node {
			on := true
			return NewOptionMerge(n, Overrides{IgnoreCase: &on})
		},
		"noSkip": func(n Node) Node {
			off := false
			return NewOptionMerge(n, Overrides{Skip: &off})
		},
	}
}
