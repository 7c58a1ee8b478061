package peg

import "github.com/rs/zerolog"

// Default limits of pattern matching, mirrored from the teacher's
// CallstackLimit/LoopLimit defaults.
const (
	DefaultCallstackLimit = 500
	DefaultLoopLimit      = 500
)

// Config bounds recursion and repetition, independently of the structural
// no-advance fixpoint check ZeroOrMore/OneOrMore already apply.
type Config struct {
	// CallstackLimit bounds Rule recursion depth. Zero or negative means
	// unlimited. A rule re-entered at its own start offset during SEED fails
	// at once (see rule.go), which already ends simple indirect cycles; the
	// limit is a backstop for deep recursion, and a positive default is
	// always applied unless the host opts out explicitly.
	CallstackLimit int

	// LoopLimit bounds qualifier iteration count as a backstop beyond the
	// no-advance check. Zero or negative means unlimited.
	LoopLimit int
}

// DefaultConfig returns the Config new Contexts use when none is supplied.
func DefaultConfig() Config {
	return Config{CallstackLimit: DefaultCallstackLimit, LoopLimit: DefaultLoopLimit}
}

// lrFrame tracks one Rule's left-recursion resolution state, per spec.md
// §4.5. Pushed and popped by Rule.Parse (rule.go); never touched elsewhere.
type lrFrame[E, I any] struct {
	rule        *Rule[E, I]
	startOffset int
	phase       lrPhase
	seedHit     bool
	bestEnd     Position[E]
	bestMatches []Match[E, I]
}

type lrPhase int

const (
	lrSeed lrPhase = iota
	lrGrow
)

// Context is the mutable engine state threaded through one parse: the
// cursor, the committed top-level matches, the left-recursion stack, and
// any errors ErrorResume collected along the way. Resume points themselves
// are never pushed onto the Context — Sequence resolves them lexically by
// scanning its own element list (see combining.go), so there is no separate
// resume stack to maintain here. A Context is built once per parse and is
// not safe for concurrent use; run independent parses against independent
// Contexts.
type Context[E, I any] struct {
	pos     Position[E]
	matches []Match[E, I]
	lrStack []*lrFrame[E, I]
	errs    []ErrorRecord[E]
	config  Config
	depth   int
	log     *zerolog.Logger
}

// NewContext builds a Context starting at the beginning of src.
func NewContext[E, I any](src Source[E], strategy *Strategy[E]) *Context[E, I] {
	return NewConfiguredContext[E, I](src, strategy, DefaultConfig())
}

// NewConfiguredContext builds a Context with an explicit Config.
func NewConfiguredContext[E, I any](src Source[E], strategy *Strategy[E], config Config) *Context[E, I] {
	return &Context[E, I]{
		pos:    NewPosition(src, strategy),
		config: config,
	}
}

// WithLogger attaches a structured logger used for optional SEED/GROW and
// error-resume tracing. Passing nil disables tracing. Tracing never affects
// parse results — every call site guards on ctx.log == nil first.
func (ctx *Context[E, I]) WithLogger(log *zerolog.Logger) *Context[E, I] {
	ctx.log = log
	return ctx
}

// Parse runs root against the context starting at the current position. It
// reports whether root matched; it does not require the whole input be
// consumed (use Position().AtEnd() for that, or Expr composed with EOF).
func (ctx *Context[E, I]) Parse(root Expr[E, I]) bool {
	return root.Parse(ctx)
}

// Position returns the current cursor. After a successful top-level Parse,
// this is the end of what root consumed; after a failed Parse, root has
// restored the cursor, so this is the position Parse started from. The
// furthest position reached by an abandoned branch is not tracked.
func (ctx *Context[E, I]) Position() Position[E] {
	return ctx.pos
}

// Matches returns the committed top-level matches.
func (ctx *Context[E, I]) Matches() []Match[E, I] {
	return ctx.matches
}

// Errors returns the resumable errors collected by ErrorResume.
func (ctx *Context[E, I]) Errors() []ErrorRecord[E] {
	return ctx.errs
}

// Snapshot is the minimal O(1) capture needed to back out of a failed
// speculative branch: the cursor, the committed-matches length, and the
// recorded-errors length — an abandoned branch's ErrorRecords must roll
// back exactly like its matches, since both are only real once the branch
// that produced them is not itself later discarded.
type Snapshot[E, I any] struct {
	pos      Position[E]
	nmatches int
	nerrs    int
}

// Snapshot captures the current (pos, len(matches), len(errs)).
func (ctx *Context[E, I]) Snapshot() Snapshot[E, I] {
	return Snapshot[E, I]{pos: ctx.pos, nmatches: len(ctx.matches), nerrs: len(ctx.errs)}
}

// Restore is the only way to abandon tentative work. Every compound
// combinator must call it on local failure; restoring truncates matches
// and errs to their recorded lengths and resets the cursor, all O(1).
func (ctx *Context[E, I]) Restore(s Snapshot[E, I]) {
	ctx.pos = s.pos
	ctx.matches = ctx.matches[:s.nmatches]
	ctx.errs = ctx.errs[:s.nerrs]
}

// MatchesSince returns a copy of the matches appended since s was taken.
// A copy is required: the backing array is shared with ctx.matches and a
// subsequent TruncateMatches would otherwise corrupt the slice returned
// here (used by MatchTree to lift matches into a parent's Children).
func (ctx *Context[E, I]) MatchesSince(s Snapshot[E, I]) []Match[E, I] {
	since := ctx.matches[s.nmatches:]
	out := make([]Match[E, I], len(since))
	copy(out, since)
	return out
}

// TruncateMatches drops every committed match past length n.
func (ctx *Context[E, I]) TruncateMatches(n int) {
	ctx.matches = ctx.matches[:n]
}

// AppendMatch commits m as a new top-level match.
func (ctx *Context[E, I]) AppendMatch(m Match[E, I]) {
	ctx.matches = append(ctx.matches, m)
}

func (ctx *Context[E, I]) enterDepth() bool {
	if ctx.config.CallstackLimit > 0 && ctx.depth >= ctx.config.CallstackLimit {
		return false
	}
	ctx.depth++
	return true
}

func (ctx *Context[E, I]) leaveDepth() {
	ctx.depth--
}

func (ctx *Context[E, I]) recordError(pos Position[E], expected string) {
	ctx.errs = append(ctx.errs, ErrorRecord[E]{Position: pos, Expected: expected})
}
