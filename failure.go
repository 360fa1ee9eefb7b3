package peg

import "strings"

// EdgeKind distinguishes the two input-boundary assertions.
type EdgeKind int

const (
	EdgeStart EdgeKind = iota
	EdgeEnd
)

func (e EdgeKind) String() string {
	if e == EdgeStart {
		return "start of input"
	}
	return "end of input"
}

// ExpectationKind tags the payload carried by an Expectation.
type ExpectationKind int

const (
	ExpectLiteral ExpectationKind = iota
	ExpectRegExp
	ExpectToken
	ExpectEdge
)

// Expectation describes what a parser wanted to see at a position. It is
// a closed tagged variant: exactly one of the payload fields is
// meaningful, selected by Kind.
type Expectation struct {
	Kind ExpectationKind
	// Literal holds the literal string, valid when Kind == ExpectLiteral.
	Literal string
	// RegExp holds the regex source, valid when Kind == ExpectRegExp.
	RegExp string
	// TokenAlias and TokenFailures are valid when Kind == ExpectToken.
	TokenAlias    string
	TokenFailures []Failure
	// Edge is valid when Kind == ExpectEdge.
	Edge EdgeKind
}

func (e Expectation) String() string {
	switch e.Kind {
	case ExpectLiteral:
		return "literal " + quote(e.Literal)
	case ExpectRegExp:
		return "pattern /" + e.RegExp + "/"
	case ExpectToken:
		if e.TokenAlias != "" {
			return e.TokenAlias
		}
		return "token"
	case ExpectEdge:
		return e.Edge.String()
	default:
		return "?"
	}
}

func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	b.WriteString(s)
	b.WriteByte('"')
	return b.String()
}

// FailureKind distinguishes the two Failure shapes.
type FailureKind int

const (
	FailureExpectation FailureKind = iota
	FailureSemantic
)

// Failure is a diagnostic tied to a Range. Expectation failures always
// have From == To (a point in the input); Semantic failures span the
// match range of the action that raised them.
type Failure struct {
	Range
	Kind     FailureKind
	Expected []Expectation // meaningful when Kind == FailureExpectation
	Message  string        // meaningful when Kind == FailureSemantic
}

func expectationFailure(at int, exp Expectation) Failure {
	return Failure{
		Range:    Range{From: at, To: at},
		Kind:     FailureExpectation,
		Expected: []Expectation{exp},
	}
}

func semanticFailure(r Range, message string) Failure {
	return Failure{Range: r, Kind: FailureSemantic, Message: message}
}

// Warning is an advisory diagnostic that never affects success or
// failure of a match.
type Warning struct {
	Range
	Message string
}
