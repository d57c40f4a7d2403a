package pgn

import "fmt"

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input bytes. For every
// terminal and non-terminal, a syntax tree will track which input positions
// a node covers. A span denotes a start position and the position just
// behind the end.
type Span [2]uint64 // (x…y)

// SpanFrom creates a span from a start position and a length.
func SpanFrom(start, length uint64) Span {
	return Span{start, start + length}
}

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
