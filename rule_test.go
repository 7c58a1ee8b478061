package peg_test

import (
	. "github.com/dendrite-lang/peg"
	. "gopkg.in/check.v1"
)

type RuleSuite struct {
	strategy *Strategy[rune]
}

var _ = Suite(&RuleSuite{})

func (s *RuleSuite) SetUpTest(c *C) {
	s.strategy = runeStrategy(false)
}

func (s *RuleSuite) digit() Expr[rune, string] {
	return Range[rune, string]("digit", '0', '9', s.strategy)
}

// buildAdd wires add := add '+' num | num, the minimal directly
// left-recursive grammar spec.md §4.5 and §8 scenario 3 both describe.
func (s *RuleSuite) buildAdd() *Rule[rune, string] {
	add := NewRule[rune, string]("add")
	num := MatchFlat[rune, string]("num", OneOrMore[rune, string](s.digit()))
	add.Define(Choice[rune, string](
		MatchTree[rune, string]("add", Sequence[rune, string](add, lit("+", s.strategy), num)),
		num,
	))
	return add
}

func (s *RuleSuite) TestLeftRecursiveAddMatchesSingleNumber(c *C) {
	src := newRuneSlice("7")
	ctx := NewContext[rune, string](src, s.strategy)
	c.Assert(ctx.Parse(s.buildAdd()), Equals, true)
	c.Assert(ctx.Position().AtEnd(), Equals, true)
	c.Assert(ctx.Matches()[0].ID, Equals, "num")
}

func (s *RuleSuite) TestLeftRecursiveAddGrowsLeftAssociatively(c *C) {
	src := newRuneSlice("1+2+3")
	ctx := NewContext[rune, string](src, s.strategy)
	c.Assert(ctx.Parse(s.buildAdd()), Equals, true)
	c.Assert(ctx.Position().AtEnd(), Equals, true)

	root := ctx.Matches()[0]
	c.Assert(root.ID, Equals, "add")
	c.Assert(string(root.Content()), Equals, "1+2+3")

	// left-associative: the outermost add's left child is itself an add
	// spanning "1+2", not a flat three-way list.
	c.Assert(root.Children, HasLen, 2)
	c.Assert(root.Children[0].ID, Equals, "add")
	c.Assert(string(root.Children[0].Content()), Equals, "1+2")
	c.Assert(root.Children[1].ID, Equals, "num")
	c.Assert(string(root.Children[1].Content()), Equals, "3")
}

func (s *RuleSuite) TestSeedAloneWinsWhenNoGrowthPossible(c *C) {
	src := newRuneSlice("9x")
	ctx := NewContext[rune, string](src, s.strategy)
	c.Assert(ctx.Parse(s.buildAdd()), Equals, true)
	c.Assert(ctx.Position().Offset, Equals, 1)
}

// buildIndirect wires a := b; b := a '.' , the minimal indirectly
// left-recursive pair. The inner re-entry of a at its own start offset fails
// during SEED, so the chain unwinds long before the callstack limit.
func (s *RuleSuite) buildIndirect() (*Rule[rune, string], *Rule[rune, string]) {
	a := NewRule[rune, string]("a")
	b := NewRule[rune, string]("b")
	a.Define(b)
	b.Define(Sequence[rune, string](a, lit(".", s.strategy)))
	return a, b
}

func (s *RuleSuite) TestIndirectLeftRecursionTerminates(c *C) {
	a, _ := s.buildIndirect()
	src := newRuneSlice(".")
	ctx := NewConfiguredContext[rune, string](src, s.strategy, Config{CallstackLimit: 50, LoopLimit: 50})
	// Must return within the bounded recursion depth rather than looping
	// forever; whether it reports true or false is secondary to that.
	_ = ctx.Parse(a)
}
