package peg_test

import (
	. "github.com/dendrite-lang/peg"
	. "gopkg.in/check.v1"
)

type ResumeSuite struct {
	strategy *Strategy[rune]
}

var _ = Suite(&ResumeSuite{})

func (s *ResumeSuite) SetUpTest(c *C) {
	s.strategy = runeStrategy(false)
}

func (s *ResumeSuite) any() Expr[rune, string] {
	return Terminal[rune, string]("any", func(rune) bool { return true })
}

// quotedString reproduces spec.md §8's unterminated-quote scenario:
// '\'' >> zero_or_more(any - '\'') >> error_resume('\'').
func (s *ResumeSuite) quotedString() Expr[rune, string] {
	quote := lit("'", s.strategy)
	body := ZeroOrMore[rune, string](Difference[rune, string](s.any(), quote))
	return Sequence[rune, string](
		MatchFlat[rune, string]("quote", quote),
		body,
		ErrorResume[rune, string](quote),
	)
}

func (s *ResumeSuite) TestUnterminatedQuoteRecordsErrorAndSucceeds(c *C) {
	src := newRuneSlice("'abc")
	ctx := NewContext[rune, string](src, s.strategy)

	c.Assert(ctx.Parse(s.quotedString()), Equals, true)
	c.Assert(ctx.Position().AtEnd(), Equals, true)

	errs := ctx.Errors()
	c.Assert(errs, HasLen, 1)
	c.Assert(errs[0].Position.Offset, Equals, 4)

	c.Assert(ctx.Matches(), HasLen, 1)
	c.Assert(ctx.Matches()[0].ID, Equals, "quote")
}

func (s *ResumeSuite) TestTerminatedQuoteRecordsNoError(c *C) {
	src := newRuneSlice("'abc'")
	ctx := NewContext[rune, string](src, s.strategy)

	c.Assert(ctx.Parse(s.quotedString()), Equals, true)
	c.Assert(ctx.Position().AtEnd(), Equals, true)
	c.Assert(ctx.Errors(), HasLen, 0)
}

func (s *ResumeSuite) TestRecoveryToALaterAnchor(c *C) {
	// a failing element followed by a later ErrorResume, with other
	// elements after the resume point, reproducing the "preceding element
	// fails, following element is the resume point" half of the protocol.
	src := newRuneSlice("a;c")
	ctx := NewContext[rune, string](src, s.strategy)

	seq := Sequence[rune, string](
		lit("a", s.strategy),
		lit("b", s.strategy), // fails: input has ';' here, not 'b'
		ErrorResume[rune, string](lit(";", s.strategy)),
		lit("c", s.strategy),
	)

	c.Assert(ctx.Parse(seq), Equals, true)
	c.Assert(ctx.Position().AtEnd(), Equals, true)
	c.Assert(ctx.Errors(), HasLen, 1)
	c.Assert(ctx.Errors()[0].Position.Offset, Equals, 1)
}
