package pegtext

import "github.com/dendrite-lang/peg"

// IDs used for Match.ID in an IPv4 parse tree. This grammar follows the
// spec example's dotted hex-byte form ("FF.12.DC.A0"), not the more common
// decimal dotted-quad — each field is exactly two hex digits.
const (
	IDHexDigit MatchID = "hex_digit"
	IDHexByte  MatchID = "hex_byte"
	IDIP4      MatchID = "ip4"
)

// hexByte matches exactly two hex digits, grounded in
// hucsmn/peg/pegutil/address.go's HexDigit-pair building blocks (MAC,
// EUI64) adapted here into a standalone two-digit byte production, with
// each digit recorded as its own child match.
var hexByte = peg.MatchTree[rune, MatchID](IDHexByte, peg.Sequence[rune, MatchID](
	peg.MatchFlat[rune, MatchID](IDHexDigit, HexDigit),
	peg.MatchFlat[rune, MatchID](IDHexDigit, HexDigit),
))

// IP4 matches a dotted hex-byte IPv4 address (e.g. "FF.12.DC.A0"),
// committing one IDIP4 tree match whose 4 IDHexByte children each carry 2
// IDHexDigit children — the exact scenario spec.md §8 names for
// MatchTree's containment/ordering invariants.
var IP4 = peg.MatchTree[rune, MatchID](IDIP4, peg.Sequence[rune, MatchID](
	hexByte, Literal("."), hexByte, Literal("."), hexByte, Literal("."), hexByte,
))

// HexByteExpr exposes hexByte for hosts that want the standalone
// hex-byte production without the dotted IPv4 wrapper.
var HexByteExpr = hexByte

// ParseIP4 parses text as a complete (fully-consumed) IPv4 address.
func ParseIP4(text string) (peg.Match[rune, MatchID], bool) {
	src := NewRuneSource(text)
	ctx := peg.NewContext[rune, MatchID](src, strategy)
	if !ctx.Parse(IP4) || !ctx.Position().AtEnd() {
		var zero peg.Match[rune, MatchID]
		return zero, false
	}
	matches := ctx.Matches()
	return matches[len(matches)-1], true
}
