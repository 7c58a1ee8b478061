// Package peg implements recursive-descent parsing expression grammars with
// direct left-recursion support.
//
// Unlike a classical top-down PEG engine, a grammar built from this package
// may write a rule the way a reader would say it out loud — "an addition is
// an addition, a plus, and a multiplication, or just a multiplication" —
// without the left recursion in that sentence looping forever. Rule
// implements this with a two-phase seed-and-grow evaluation (see rule.go):
// a first pass establishes a seed from the rule's non-recursive
// alternative, then the rule is re-evaluated from the same start position,
// replaying the seed at any same-position recursive call, until an
// iteration fails to consume more input than the last.
//
// The core is generic over two type parameters: E, the element type of the
// host's input (rune, byte, a lexer token, ...), and I, the host's match-id
// type (commonly a string or an int enum). Hosts supply a Source[E] (the
// sequence contract) and a Strategy[E] (element equality, optional
// ordering, and newline recognition) and build grammars out of the
// primitives (Terminal, Literal, Range, Set), combinators (Sequence,
// Choice, ZeroOrMore, OneOrMore, Optional), predicates (And, Not,
// Difference), match recorders (MatchFlat, MatchTree), recursion carriers
// (Rule), and the error-resume wrapper (ErrorResume).
//
// Backtracking is O(1): Context.Snapshot/Restore capture and rewind the
// cursor and the length of the committed-matches slice, never cloning or
// walking a tree.
//
// Overlook of combinators
//
//	Terminal(name, pred), Literal(name, elems, strategy)
//	Range(name, lo, hi, strategy), Set(name, members, strategy)
//	Sequence(elems...), Choice(alts...)
//	ZeroOrMore(pat), OneOrMore(pat), Optional(pat)
//	And(pat), Not(pat), Difference(pat, exclude)
//	MatchFlat(id, pat), MatchTree(id, pat)
//	NewRule(name) / (*Rule).Define(body)
//	ErrorResume(anchor)
//
// Common mistakes
//
// Greedy qualifiers can starve what follows them: Sequence(ZeroOrMore(digit),
// Literal("0", ...)) never succeeds, because ZeroOrMore(digit) has already
// consumed every digit by the time the literal "0" is tried. Guard the
// qualifier with And of what must remain, or restructure the grammar.
//
// A Choice alternative that can never be reached (an earlier alternative
// always matches first, or matches a strict prefix of what a later one
// would) is almost always a mistake, not a style choice — PEG choice is
// ordered, not longest-match.
//
// A ZeroOrMore or OneOrMore wrapping something that can match without
// consuming input would, in a naive engine, loop forever; this package's
// qualifiers stop themselves the first time an iteration fails to advance
// the cursor (see repetition.go). Rule recursion depth is separately bounded
// by Config.CallstackLimit.
package peg
