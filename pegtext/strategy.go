package pegtext

import (
	"unicode"

	"github.com/dendrite-lang/peg"
)

// NewStrategy returns a peg.Strategy[rune] with ordering enabled (so Range
// is usable) and newline recognition on "\n" and "\r": IsNewline reports
// true for every "\n" and every "\r". Recognizing the "\r\n" pair as one
// line ending requires lookahead this predicate does not have, so a "\r\n"
// pair is counted as two line breaks rather than one. Hosts sensitive to
// that distinction should normalize line endings before parsing.
//
// caseInsensitive folds both sides of every comparison through
// unicode.ToLower before comparing, the simplification this module takes
// in place of hucsmn/peg's precomputed fold-case tables (see foldcase.go in
// the teacher's tree): the generic core has no string-specific fast path to
// special-case, so a direct stdlib fold is the straightforward fit.
func NewStrategy(caseInsensitive bool) *peg.Strategy[rune] {
	equal := func(a, b rune) bool { return a == b }
	less := func(a, b rune) bool { return a < b }
	if caseInsensitive {
		equal = func(a, b rune) bool { return unicode.ToLower(a) == unicode.ToLower(b) }
		less = func(a, b rune) bool { return unicode.ToLower(a) < unicode.ToLower(b) }
	}
	return &peg.Strategy[rune]{
		Equal:     equal,
		Less:      less,
		IsNewline: func(r rune) bool { return r == '\n' || r == '\r' },
	}
}

// NewByteStrategy returns a peg.Strategy[byte] with no line tracking —
// byte-oriented protocols are rarely line-structured, and a host that wants
// line tracking over bytes can supply its own IsNewline.
func NewByteStrategy() *peg.Strategy[byte] {
	return &peg.Strategy[byte]{
		Equal: func(a, b byte) bool { return a == b },
		Less:  func(a, b byte) bool { return a < b },
	}
}
