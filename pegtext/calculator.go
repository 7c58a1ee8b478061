package pegtext

import "github.com/dendrite-lang/peg"

// Calculator is a worked left-recursive arithmetic grammar:
//
//	add := add '+' mul | add '-' mul | mul
//	mul := mul '*' num | mul '/' num | num
//	num := digit+ | '(' add ')'
//
// add and mul are both directly left-recursive; Rule's seed-and-grow
// resolver is what makes writing them this way — left-associative, reading
// exactly like the grammar on paper — possible at all. Evaluating with
// peg.MatchTree keeps every partial sum/product nested under its enclosing
// add/mul Match, so the left-leaning shape of the parse tree is directly
// observable (e.g. "1+2+3" nests as ((1+2)+3), not a flat list).
type Calculator struct {
	Add *peg.Rule[rune, MatchID]
	Mul *peg.Rule[rune, MatchID]
	Num *peg.Rule[rune, MatchID]
}

// IDs used for Match.ID in a Calculator's parse tree.
const (
	IDAdd   MatchID = "add"
	IDSub   MatchID = "sub"
	IDMul   MatchID = "mul"
	IDDiv   MatchID = "div"
	IDNum   MatchID = "num"
	IDParen MatchID = "paren"
)

// NewCalculator builds and wires the three mutually (and, for add/mul,
// directly) recursive rules.
func NewCalculator() *Calculator {
	c := &Calculator{
		Add: peg.NewRule[rune, MatchID]("add"),
		Mul: peg.NewRule[rune, MatchID]("mul"),
		Num: peg.NewRule[rune, MatchID]("num"),
	}

	digits := peg.MatchFlat[rune, MatchID](IDNum, peg.OneOrMore[rune, MatchID](DecDigit))
	paren := peg.MatchTree[rune, MatchID](IDParen, peg.Sequence[rune, MatchID](
		Literal("("), c.Add, Literal(")"),
	))
	c.Num.Define(peg.Choice[rune, MatchID](digits, paren))

	c.Mul.Define(peg.Choice[rune, MatchID](
		peg.MatchTree[rune, MatchID](IDMul, peg.Sequence[rune, MatchID](c.Mul, Literal("*"), c.Num)),
		peg.MatchTree[rune, MatchID](IDDiv, peg.Sequence[rune, MatchID](c.Mul, Literal("/"), c.Num)),
		c.Num,
	))

	c.Add.Define(peg.Choice[rune, MatchID](
		peg.MatchTree[rune, MatchID](IDAdd, peg.Sequence[rune, MatchID](c.Add, Literal("+"), c.Mul)),
		peg.MatchTree[rune, MatchID](IDSub, peg.Sequence[rune, MatchID](c.Add, Literal("-"), c.Mul)),
		c.Mul,
	))

	return c
}

// Eval parses expr with this grammar's Add rule, requiring the whole input
// be consumed. It returns the root Match and the committed left-recursion
// parse tree on success.
func (c *Calculator) Eval(expr string) (peg.Match[rune, MatchID], bool) {
	src := NewRuneSource(expr)
	ctx := peg.NewContext[rune, MatchID](src, strategy)
	if !ctx.Parse(c.Add) || !ctx.Position().AtEnd() {
		var zero peg.Match[rune, MatchID]
		return zero, false
	}
	matches := ctx.Matches()
	if len(matches) == 0 {
		var zero peg.Match[rune, MatchID]
		return zero, false
	}
	return matches[len(matches)-1], true
}
