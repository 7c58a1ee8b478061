package peg

import "fmt"

// Source is the host's sequence-shaped input. The core never copies it: a
// Source is borrowed for the lifetime of a Context, and Match.Content slices
// it lazily. Indexing is by element, not by byte — a rune-oriented Source
// indexes one rune at a time, a token-oriented Source one token at a time.
type Source[E any] interface {
	// Len returns the number of elements in the source.
	Len() int
	// At returns the element at index i. 0 <= i < Len().
	At(i int) E
	// Slice returns the elements in [begin, end).
	Slice(begin, end int) []E
}

// Strategy bundles the host-chosen element predicates a Position needs to
// walk a Source: equality (so Terminal/Literal/Set can compare), ordering
// (so Range can compare, optional — nil disables Range), and a newline
// recognizer driving line/column tracking.
type Strategy[E any] struct {
	// Equal reports whether two elements are the same terminal. Required.
	Equal func(a, b E) bool

	// Less reports whether a sorts before b. Used only by Range; a nil
	// Less makes Range always fail to build (see Range).
	Less func(a, b E) bool

	// IsNewline reports whether an element advances the line counter.
	// A nil IsNewline disables line/column tracking (every Position keeps
	// Line == 0, Column == Offset).
	IsNewline func(e E) bool
}

func (s *Strategy[E]) trackLines() bool {
	return s.IsNewline != nil
}

// Position is an O(1)-copyable cursor over a Source. Positions are saved
// and restored on every speculative branch, so they carry value semantics:
// copying a Position never touches the underlying Source.
type Position[E any] struct {
	src      Source[E]
	strategy *Strategy[E]
	Offset   int
	Line     int
	Column   int
}

// NewPosition returns the start-of-input position over src under strategy.
func NewPosition[E any](src Source[E], strategy *Strategy[E]) Position[E] {
	return Position[E]{src: src, strategy: strategy}
}

// Peek returns the element at the cursor, or ok == false at end of input.
func (p Position[E]) Peek() (e E, ok bool) {
	if p.Offset >= p.src.Len() {
		return e, false
	}
	return p.src.At(p.Offset), true
}

// Advance returns the position one element further along, or ok == false
// if the cursor is already at end of input (the position is returned
// unchanged in that case).
func (p Position[E]) Advance() (next Position[E], ok bool) {
	e, ok := p.Peek()
	if !ok {
		return p, false
	}
	next = p
	next.Offset++
	if p.strategy.trackLines() && p.strategy.IsNewline(e) {
		next.Line++
		next.Column = 0
	} else {
		next.Column++
	}
	return next, true
}

// AtEnd reports whether the cursor has consumed the whole source.
func (p Position[E]) AtEnd() bool {
	return p.Offset >= p.src.Len()
}

// Distance returns b.Offset - a.Offset, the element count between a and b.
func Distance[E any](a, b Position[E]) int {
	return b.Offset - a.Offset
}

// After reports whether p is strictly past other (p.Offset > other.Offset).
// Used by the left-recursion resolver's monotonic bestEnd check.
func (p Position[E]) After(other Position[E]) bool {
	return p.Offset > other.Offset
}

// sliceFrom returns the elements consumed between from and p (from <= p).
func (p Position[E]) sliceFrom(from Position[E]) []E {
	return p.src.Slice(from.Offset, p.Offset)
}

func (p Position[E]) String() string {
	if p.strategy != nil && p.strategy.trackLines() {
		return fmt.Sprintf("%d:%d+%d", p.Line+1, p.Column+1, p.Offset)
	}
	return fmt.Sprintf("+%d", p.Offset)
}
