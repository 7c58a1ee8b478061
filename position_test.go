package peg_test

import (
	. "github.com/dendrite-lang/peg"
	. "gopkg.in/check.v1"
)

type PositionSuite struct{}

var _ = Suite(&PositionSuite{})

func (s *PositionSuite) TestPeekAdvance(c *C) {
	strategy := runeStrategy(false)
	src := newRuneSlice("ab")
	pos := NewPosition[rune](src, strategy)

	e, ok := pos.Peek()
	c.Assert(ok, Equals, true)
	c.Assert(e, Equals, 'a')

	next, ok := pos.Advance()
	c.Assert(ok, Equals, true)
	c.Assert(next.Offset, Equals, 1)

	next2, ok := next.Advance()
	c.Assert(ok, Equals, true)
	c.Assert(next2.AtEnd(), Equals, true)

	_, ok = next2.Advance()
	c.Assert(ok, Equals, false)
}

func (s *PositionSuite) TestLineColumnTracking(c *C) {
	strategy := runeStrategy(false)
	src := newRuneSlice("a\nb")
	pos := NewPosition[rune](src, strategy)

	pos, _ = pos.Advance() // consume 'a'
	c.Assert(pos.Line, Equals, 0)
	c.Assert(pos.Column, Equals, 1)

	pos, _ = pos.Advance() // consume '\n'
	c.Assert(pos.Line, Equals, 1)
	c.Assert(pos.Column, Equals, 0)
}

func (s *PositionSuite) TestDistanceAndAfter(c *C) {
	strategy := runeStrategy(false)
	src := newRuneSlice("abc")
	a := NewPosition[rune](src, strategy)
	b, _ := a.Advance()
	b, _ = b.Advance()

	c.Assert(Distance(a, b), Equals, 2)
	c.Assert(b.After(a), Equals, true)
	c.Assert(a.After(b), Equals, false)
}
