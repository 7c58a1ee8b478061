package peg

// Expr is the single-method contract every parser expression satisfies:
// attempt a match at the context's current position, reporting success or
// failure. A successful Parse has already committed whatever matches it
// wants visible to its caller; a failed Parse must restore the context to
// exactly the state it found it in (see Context.Snapshot/Restore) — this is
// the core invariant every combinator in this package maintains and every
// host-supplied leaf Expr must maintain too.
type Expr[E, I any] interface {
	Parse(ctx *Context[E, I]) bool
}

// ExprFunc adapts a plain function to Expr, the way http.HandlerFunc adapts
// a function to http.Handler.
type ExprFunc[E, I any] func(ctx *Context[E, I]) bool

func (f ExprFunc[E, I]) Parse(ctx *Context[E, I]) bool {
	return f(ctx)
}

// terminal matches a single element satisfying pred.
type terminal[E, I any] struct {
	pred func(e E) bool
	name string
}

// Terminal builds an Expr matching exactly one element for which pred
// reports true. name is used only for debug printing (String()).
func Terminal[E, I any](name string, pred func(e E) bool) Expr[E, I] {
	return &terminal[E, I]{pred: pred, name: name}
}

func (t *terminal[E, I]) Parse(ctx *Context[E, I]) bool {
	e, ok := ctx.pos.Peek()
	if !ok || !t.pred(e) {
		return false
	}
	next, _ := ctx.pos.Advance()
	ctx.pos = next
	return true
}

func (t *terminal[E, I]) String() string {
	return t.name
}

// literal matches a fixed run of elements in order, via Strategy.Equal.
type literal[E, I any] struct {
	elems    []E
	strategy *Strategy[E]
	name     string
}

// Literal builds an Expr matching the fixed sequence elems in order.
// Elements are compared with strategy.Equal, using the strategy passed here
// rather than the one the Context was built with; pass the same Strategy[E]
// you will use to build the Context.
func Literal[E, I any](name string, elems []E, strategy *Strategy[E]) Expr[E, I] {
	cp := make([]E, len(elems))
	copy(cp, elems)
	return &literal[E, I]{elems: cp, strategy: strategy, name: name}
}

func (l *literal[E, I]) Parse(ctx *Context[E, I]) bool {
	pos := ctx.pos
	for _, want := range l.elems {
		got, ok := pos.Peek()
		if !ok || !l.strategy.Equal(got, want) {
			return false
		}
		pos, _ = pos.Advance()
	}
	ctx.pos = pos
	return true
}

func (l *literal[E, I]) String() string {
	return l.name
}

// rangeExpr matches a single element e with lo <= e <= hi, per Strategy.Less.
type rangeExpr[E, I any] struct {
	lo, hi   E
	strategy *Strategy[E]
	name     string
}

// Range builds an Expr matching one element in [lo, hi] inclusive. It panics
// at construction if strategy.Less is nil — Range is simply unavailable over
// an unordered element type, exactly as spec.md §4.1 allows ("Range requires
// the host supply an ordering; if none exists, Range is unavailable").
func Range[E, I any](name string, lo, hi E, strategy *Strategy[E]) Expr[E, I] {
	if strategy.Less == nil {
		panic(errorf("peg.Range %q: strategy has no Less, Range is unavailable", name))
	}
	return &rangeExpr[E, I]{lo: lo, hi: hi, strategy: strategy, name: name}
}

func (r *rangeExpr[E, I]) Parse(ctx *Context[E, I]) bool {
	e, ok := ctx.pos.Peek()
	if !ok || r.strategy.Less(e, r.lo) || r.strategy.Less(r.hi, e) {
		return false
	}
	next, _ := ctx.pos.Advance()
	ctx.pos = next
	return true
}

func (r *rangeExpr[E, I]) String() string {
	return r.name
}

// setExpr matches a single element present in members, per Strategy.Equal.
type setExpr[E, I any] struct {
	members  []E
	strategy *Strategy[E]
	name     string
}

// Set builds an Expr matching one element equal (per strategy) to any of
// members.
func Set[E, I any](name string, members []E, strategy *Strategy[E]) Expr[E, I] {
	cp := make([]E, len(members))
	copy(cp, members)
	return &setExpr[E, I]{members: cp, strategy: strategy, name: name}
}

func (s *setExpr[E, I]) Parse(ctx *Context[E, I]) bool {
	e, ok := ctx.pos.Peek()
	if !ok {
		return false
	}
	for _, m := range s.members {
		if s.strategy.Equal(e, m) {
			next, _ := ctx.pos.Advance()
			ctx.pos = next
			return true
		}
	}
	return false
}

func (s *setExpr[E, I]) String() string {
	return s.name
}

// EOF succeeds, consuming nothing, only at end of input.
func EOF[E, I any]() Expr[E, I] {
	return ExprFunc[E, I](func(ctx *Context[E, I]) bool {
		return ctx.pos.AtEnd()
	})
}
