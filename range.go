package peg

import "fmt"

// Range is an inclusive-start, exclusive-end span of byte offsets into
// an input string.
type Range struct {
	From int
	To   int
}

// Len reports the number of bytes the range covers.
func (r Range) Len() int { return r.To - r.From }

// Slice returns the portion of input the range covers.
func (r Range) Slice(input string) string { return input[r.From:r.To] }

func (r Range) String() string { return fmt.Sprintf("[%d,%d)", r.From, r.To) }

// collapsed returns the empty range [r.From, r.From).
func (r Range) collapsed() Range { return Range{From: r.From, To: r.From} }
