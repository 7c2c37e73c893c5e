package engine

import (
	"sync/atomic"
	"time"
)

// SearchContext holds the cooperative-cancellation state for one
// iterative-deepening level (spec.md §5: "a dedicated worker ... checks a
// cancellation flag").
type SearchContext struct {
	startTime time.Time
	timeLimit time.Duration
	nodes     int64
	stopped   atomic.Bool
}

// NewSearchContext starts a context with the given soft time limit.
func NewSearchContext(timeLimit time.Duration) *SearchContext {
	return &SearchContext{startTime: time.Now(), timeLimit: timeLimit}
}

// checkTimeout reports whether the context has been stopped or has run out
// of its time budget, latching stopped in the latter case.
func (ctx *SearchContext) checkTimeout() bool {
	if ctx.stopped.Load() {
		return true
	}
	if time.Since(ctx.startTime) >= ctx.timeLimit {
		ctx.stopped.Store(true)
		return true
	}
	return false
}

// Stop requests cancellation; safe to call from another goroutine.
func (ctx *SearchContext) Stop() {
	ctx.stopped.Store(true)
}

// Stopped reports whether the context has been cancelled or timed out.
func (ctx *SearchContext) Stopped() bool {
	return ctx.stopped.Load()
}

// Elapsed returns time since the context started.
func (ctx *SearchContext) Elapsed() time.Duration {
	return time.Since(ctx.startTime)
}

// Nodes returns the number of states visited so far in this context.
func (ctx *SearchContext) Nodes() int64 {
	return ctx.nodes
}

// checkNodesInterval controls how often (in visited states) the time
// budget is polled, matching the teacher's 2048-node sampling interval.
const checkNodesInterval = 2047

// DefaultLevelTimeBudgets is the fixed table of per-level soft time caps
// referenced by spec.md §4.7 ("a per-level soft time cap encoded as an
// index into a fixed table of durations"). A level past the end of the
// table reuses the last entry. config.Config may override this table.
var DefaultLevelTimeBudgets = []time.Duration{
	50 * time.Millisecond,
	100 * time.Millisecond,
	250 * time.Millisecond,
	500 * time.Millisecond,
	1 * time.Second,
	2 * time.Second,
	4 * time.Second,
	8 * time.Second,
	15 * time.Second,
	30 * time.Second,
}

// TimeBudgetForLevel indexes table by level (1-based, matching spec.md's
// turn_id/analysis_level numbering), clamping to the last entry once level
// runs past the table.
func TimeBudgetForLevel(table []time.Duration, level int) time.Duration {
	if len(table) == 0 {
		return time.Second
	}
	idx := level - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(table) {
		idx = len(table) - 1
	}
	return table[idx]
}
