package peg_test

import (
	. "github.com/dendrite-lang/peg"
	. "gopkg.in/check.v1"
)

type PredicatingSuite struct {
	strategy *Strategy[rune]
}

var _ = Suite(&PredicatingSuite{})

func (s *PredicatingSuite) SetUpTest(c *C) {
	s.strategy = runeStrategy(false)
}

func (s *PredicatingSuite) TestAndConsumesNothing(c *C) {
	src := newRuneSlice("abc")
	ctx := NewContext[rune, string](src, s.strategy)
	c.Assert(ctx.Parse(And[rune, string](lit("a", s.strategy))), Equals, true)
	c.Assert(ctx.Position().Offset, Equals, 0)
}

func (s *PredicatingSuite) TestNotSucceedsWhenPatternFails(c *C) {
	src := newRuneSlice("abc")
	ctx := NewContext[rune, string](src, s.strategy)
	c.Assert(ctx.Parse(Not[rune, string](lit("x", s.strategy))), Equals, true)
	c.Assert(ctx.Position().Offset, Equals, 0)
}

func (s *PredicatingSuite) TestNotFailsWhenPatternMatches(c *C) {
	src := newRuneSlice("abc")
	ctx := NewContext[rune, string](src, s.strategy)
	c.Assert(ctx.Parse(Not[rune, string](lit("a", s.strategy))), Equals, false)
}

func (s *PredicatingSuite) notKeyword() Expr[rune, string] {
	ident := OneOrMore[rune, string](ASCIILetterFor(s.strategy))
	keyword := Sequence[rune, string](lit("return", s.strategy), Not[rune, string](ASCIILetterFor(s.strategy)))
	return Difference[rune, string](ident, keyword)
}

func (s *PredicatingSuite) TestDifferenceExcludesWholeWordMatch(c *C) {
	src := newRuneSlice("return")
	ctx := NewContext[rune, string](src, s.strategy)
	c.Assert(ctx.Parse(s.notKeyword()), Equals, false)
}

func (s *PredicatingSuite) TestDifferenceAllowsNonExcluded(c *C) {
	src := newRuneSlice("returning")
	ctx := NewContext[rune, string](src, s.strategy)
	c.Assert(ctx.Parse(s.notKeyword()), Equals, true)
	c.Assert(ctx.Position().AtEnd(), Equals, true)
}

// ASCIILetterFor builds an ASCII-letter Terminal, local to this test file so
// predicating_test.go does not need to depend on the pegtext package. The
// predicate compares runes directly; strategy is not consulted.
func ASCIILetterFor(strategy *Strategy[rune]) Expr[rune, string] {
	return Terminal[rune, string]("ascii_letter", func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	})
}
