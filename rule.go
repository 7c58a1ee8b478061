package peg

import "fmt"

// Rule is a heap-allocated, pointer-identified grammar production. Pointer
// identity (not value equality) is what lets the left-recursion resolver
// recognize "this same rule, called again at this same position" across an
// arbitrarily deep and possibly indirect call chain — two Rules built from
// identical bodies are still different rules.
//
// A Rule is built nil-bodied via NewRule so mutually recursive grammars can
// take each other's address before either body exists, then wired up with
// Define — exactly the two-step construction a cyclic grammar graph forces.
type Rule[E, I any] struct {
	name string
	body Expr[E, I]
}

// NewRule allocates a named, undefined rule. name is used only for error
// messages and debug printing; call Define before the rule is ever parsed.
func NewRule[E, I any](name string) *Rule[E, I] {
	return &Rule[E, I]{name: name}
}

// Define sets the rule's body. Grammars with cycles build every Rule first,
// then Define each one, so a Rule can reference another Rule that has not
// been Defined yet at the point it is referenced (only at the point it is
// first parsed does the body need to exist).
func (r *Rule[E, I]) Define(body Expr[E, I]) {
	r.body = body
}

func (r *Rule[E, I]) String() string {
	return r.name
}

// Parse implements the two-phase SEED/GROW left-recursion resolver. A fresh
// call at a given position runs the body once (SEED). If, during that run,
// the rule recursively called itself at the same starting position, the
// recursive call failed immediately (a rule can never use its own
// not-yet-existing result), which is exactly what lets a body's
// non-recursive alternative win the seed. Once a seed exists, the body is
// re-run from the same start position as many times as it keeps growing
// (GROW): this time, a same-position recursive call immediately succeeds,
// replaying the best match found so far, letting the left-recursive
// alternative extend it one step further. Growth stops the first time an
// iteration fails to strictly advance past the previous best end — per
// spec, a tie is discarded even if reached by a different match shape.
func (r *Rule[E, I]) Parse(ctx *Context[E, I]) bool {
	if r.body == nil {
		panic(errorNilBody(r.name))
	}
	if !ctx.enterDepth() {
		if ctx.log != nil {
			ctx.log.Warn().Str("rule", r.name).Err(errorCallstackOverflow).Msg("peg: callstack limit reached")
		}
		return false
	}
	defer ctx.leaveDepth()

	start := ctx.pos.Offset
	for i := len(ctx.lrStack) - 1; i >= 0; i-- {
		f := ctx.lrStack[i]
		if f.rule != r || f.startOffset != start {
			continue
		}
		if f.phase == lrSeed {
			f.seedHit = true
			return false
		}
		ctx.pos = f.bestEnd
		for _, m := range f.bestMatches {
			ctx.AppendMatch(m)
		}
		return true
	}

	frame := &lrFrame[E, I]{rule: r, startOffset: start, phase: lrSeed}
	ctx.lrStack = append(ctx.lrStack, frame)
	if ctx.log != nil {
		ctx.log.Debug().Str("rule", r.name).Int("at", start).Msg("peg: seed")
	}
	snap := ctx.Snapshot()
	ok := r.body.Parse(ctx)
	if !ok {
		ctx.lrStack = ctx.lrStack[:len(ctx.lrStack)-1]
		ctx.Restore(snap)
		return false
	}
	frame.bestEnd = ctx.pos
	frame.bestMatches = ctx.MatchesSince(snap)
	if !frame.seedHit {
		ctx.lrStack = ctx.lrStack[:len(ctx.lrStack)-1]
		return true
	}

	frame.phase = lrGrow
	for {
		ctx.Restore(snap)
		grown := r.body.Parse(ctx)
		if !grown || !ctx.pos.After(frame.bestEnd) {
			ctx.Restore(snap)
			break
		}
		frame.bestEnd = ctx.pos
		frame.bestMatches = ctx.MatchesSince(snap)
		if ctx.log != nil {
			ctx.log.Debug().Str("rule", r.name).Str("end", frame.bestEnd.String()).Msg("peg: grow")
		}
	}
	ctx.lrStack = ctx.lrStack[:len(ctx.lrStack)-1]
	ctx.pos = frame.bestEnd
	for _, m := range frame.bestMatches {
		ctx.AppendMatch(m)
	}
	return true
}

var _ fmt.Stringer = (*Rule[int, int])(nil)
