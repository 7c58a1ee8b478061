package peg

import "fmt"

// matchFlat records a single Match spanning pat's whole consumption, with
// any matches pat committed underneath discarded rather than nested.
type matchFlat[E, I any] struct {
	id  I
	pat Expr[E, I]
}

// MatchFlat wraps pat so that, on success, exactly one Match with the given
// id and span is committed — whatever Matches pat itself recorded are
// dropped. Use this for leaf productions (identifiers, numbers) where the
// internal structure is uninteresting.
func MatchFlat[E, I any](id I, pat Expr[E, I]) Expr[E, I] {
	return &matchFlat[E, I]{id: id, pat: pat}
}

func (m *matchFlat[E, I]) Parse(ctx *Context[E, I]) bool {
	snap := ctx.Snapshot()
	begin := ctx.pos
	if !m.pat.Parse(ctx) {
		ctx.Restore(snap)
		return false
	}
	end := ctx.pos
	ctx.TruncateMatches(snap.nmatches)
	ctx.AppendMatch(Match[E, I]{ID: m.id, Begin: begin, End: end})
	return true
}

func (m *matchFlat[E, I]) String() string {
	return fmt.Sprintf("flat{%s}", m.pat)
}

// matchTree records a Match spanning pat's whole consumption, nesting
// whatever Matches pat committed underneath it as Children.
type matchTree[E, I any] struct {
	id  I
	pat Expr[E, I]
}

// MatchTree wraps pat so that, on success, one Match with the given id and
// span is committed, with every Match pat produced beneath it lifted into
// Children — exactly the containment/ordering invariants Match documents.
func MatchTree[E, I any](id I, pat Expr[E, I]) Expr[E, I] {
	return &matchTree[E, I]{id: id, pat: pat}
}

func (m *matchTree[E, I]) Parse(ctx *Context[E, I]) bool {
	snap := ctx.Snapshot()
	begin := ctx.pos
	if !m.pat.Parse(ctx) {
		ctx.Restore(snap)
		return false
	}
	end := ctx.pos
	children := ctx.MatchesSince(snap)
	ctx.TruncateMatches(snap.nmatches)
	ctx.AppendMatch(Match[E, I]{ID: m.id, Begin: begin, End: end, Children: children})
	return true
}

func (m *matchTree[E, I]) String() string {
	return fmt.Sprintf("tree{%s}", m.pat)
}
