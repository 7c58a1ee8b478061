package peg

import (
	"fmt"
	"strings"
)

// sequence matches every element in order, restoring on the first failure
// unless an ErrorResume anchor absorbs it (see errorResume in resume.go).
type sequence[E, I any] struct {
	elems []Expr[E, I]
}

// Sequence matches elems in order. A nested Sequence passed directly as one
// of elems is flattened into the parent at construction time, mirroring the
// teacher's Seq — this keeps String() output and resume-anchor scanning
// working over one flat element list instead of a tree of single-child
// sequences.
func Sequence[E, I any](elems ...Expr[E, I]) Expr[E, I] {
	flat := make([]Expr[E, I], 0, len(elems))
	for _, e := range elems {
		if sub, ok := e.(*sequence[E, I]); ok {
			flat = append(flat, sub.elems...)
		} else {
			flat = append(flat, e)
		}
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return &sequence[E, I]{elems: flat}
}

func (s *sequence[E, I]) Parse(ctx *Context[E, I]) bool {
	snap := ctx.Snapshot()
	i := 0
	for i < len(s.elems) {
		elem := s.elems[i]
		if elem.Parse(ctx) {
			i++
			continue
		}
		// elem failed. An ErrorResume reached directly recovers using its
		// own anchor; any other element recovers using the nearest
		// ErrorResume ahead of it in the sequence. Either way, failure to
		// find a usable anchor falls back to the standard snapshot-restore
		// contract: no anchor, no recovery, no recorded error.
		var anchor Expr[E, I]
		var resumeAt int
		if er, ok := elem.(*errorResume[E, I]); ok {
			anchor, resumeAt = er.anchor, i
		} else {
			resumeAt = -1
			for j := i + 1; j < len(s.elems); j++ {
				if er, ok := s.elems[j].(*errorResume[E, I]); ok {
					anchor, resumeAt = er.anchor, j
					break
				}
			}
		}
		if resumeAt == -1 {
			ctx.Restore(snap)
			return false
		}

		failPos := ctx.pos
		failed := fmt.Sprint(elem)
		if ctx.log != nil {
			ctx.log.Debug().Str("at", failPos.String()).Msg("peg: error-resume scanning for anchor")
		}
		for {
			if anchor.Parse(ctx) {
				ctx.recordError(failPos, failed)
				i = resumeAt + 1
				break
			}
			if ctx.pos.AtEnd() {
				// spec.md §4.6 says reaching end-of-input during the scan
				// fails the Sequence; this module follows the worked
				// unterminated-string example instead (see SPEC_FULL.md §6):
				// record the error and let the sequence succeed positioned
				// at end-of-input, skipping whatever elements remained.
				ctx.recordError(failPos, failed)
				return true
			}
			next, ok := ctx.pos.Advance()
			if !ok {
				ctx.recordError(failPos, failed)
				return true
			}
			ctx.pos = next
		}
	}
	return true
}

func (s *sequence[E, I]) String() string {
	strs := make([]string, len(s.elems))
	for i, e := range s.elems {
		strs[i] = fmt.Sprint(e)
	}
	return fmt.Sprintf("(%s)", strings.Join(strs, " "))
}

// choice matches the first alternative that succeeds, in order, restoring
// between attempts. This is PEG ordered choice, not regex-style alternation:
// once an alternative matches, later alternatives are never tried even if
// they would also match.
type choice[E, I any] struct {
	alts []Expr[E, I]
}

// Choice tries each alternative in order, committing to the first match.
// A nested Choice passed directly as one of alts is flattened, matching
// Sequence's treatment.
func Choice[E, I any](alts ...Expr[E, I]) Expr[E, I] {
	flat := make([]Expr[E, I], 0, len(alts))
	for _, a := range alts {
		if sub, ok := a.(*choice[E, I]); ok {
			flat = append(flat, sub.alts...)
		} else {
			flat = append(flat, a)
		}
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return &choice[E, I]{alts: flat}
}

func (c *choice[E, I]) Parse(ctx *Context[E, I]) bool {
	snap := ctx.Snapshot()
	for _, alt := range c.alts {
		if alt.Parse(ctx) {
			return true
		}
		ctx.Restore(snap)
	}
	return false
}

func (c *choice[E, I]) String() string {
	strs := make([]string, len(c.alts))
	for i, a := range c.alts {
		strs[i] = fmt.Sprint(a)
	}
	return fmt.Sprintf("(%s)", strings.Join(strs, " | "))
}
