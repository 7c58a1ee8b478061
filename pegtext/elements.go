package pegtext

import "github.com/dendrite-lang/peg"

// MatchID is the host match-id type used by every grammar in this package.
type MatchID = string

// Element helpers below are small peg.Expr[rune, MatchID] values built
// from peg.Range/peg.Set over a caseSensitive strategy, mirroring
// hucsmn/peg/pegutil's rune-set catalogue one for one.
var (
	strategy = NewStrategy(false)

	OctDigit    = peg.Range[rune, MatchID]("oct_digit", '0', '7', strategy)
	DecDigit    = peg.Range[rune, MatchID]("dec_digit", '0', '9', strategy)
	HexDigit    = peg.Set[rune, MatchID]("hex_digit", hexDigitMembers(), strategy)
	ASCIILetter = peg.Set[rune, MatchID]("ascii_letter", asciiLetterMembers(), strategy)
	ASCIILower  = peg.Range[rune, MatchID]("ascii_lower", 'a', 'z', strategy)
	ASCIIUpper  = peg.Range[rune, MatchID]("ascii_upper", 'A', 'Z', strategy)

	ASCIILetterDigit = peg.Choice[rune, MatchID](ASCIILetter, DecDigit)

	ASCIIWhitespace = peg.Set[rune, MatchID]("ascii_whitespace", []rune(" \t\n\r\v\f"), strategy)

	NewlineRune = peg.Set[rune, MatchID]("newline", []rune("\n\r"), strategy)
)

func hexDigitMembers() []rune {
	members := make([]rune, 0, 22)
	for r := '0'; r <= '9'; r++ {
		members = append(members, r)
	}
	for r := 'a'; r <= 'f'; r++ {
		members = append(members, r)
	}
	for r := 'A'; r <= 'F'; r++ {
		members = append(members, r)
	}
	return members
}

func asciiLetterMembers() []rune {
	members := make([]rune, 0, 52)
	for r := 'a'; r <= 'z'; r++ {
		members = append(members, r)
	}
	for r := 'A'; r <= 'Z'; r++ {
		members = append(members, r)
	}
	return members
}

// Literal returns a peg.Expr matching the exact rune sequence text, under
// this package's default (case-sensitive) strategy.
func Literal(text string) peg.Expr[rune, MatchID] {
	return peg.Literal[rune, MatchID](text, []rune(text), strategy)
}
