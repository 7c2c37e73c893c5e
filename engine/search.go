package engine

import (
	"math"
	"sort"
	"time"

	"github.com/jmegner/KillDoctorLuckyWeb-sub000/board"
	"github.com/jmegner/KillDoctorLuckyWeb-sub000/generator"
	"github.com/jmegner/KillDoctorLuckyWeb-sub000/rules"
)

// SearchResult is one completed (or cancelled-but-partial) iterative
// deepening level's outcome.
type SearchResult struct {
	Turn          board.SimpleTurn
	Score         float64
	Level         int
	StatesVisited int64
	Elapsed       time.Duration
	// FromCache reports the result came entirely from a prior analysis
	// with no further deepening performed this call (cache already at or
	// past MaxLevel).
	FromCache bool
}

// Progress is emitted once per completed iterative-deepening level, for
// streaming consumers (httpapi's websocket feed).
type Progress struct {
	Result SearchResult
	Done   bool
}

// FindBestTurn runs iterative deepening alpha-beta search for s.Current
// from minLevel up to maxLevel, consulting and maintaining cache, and
// reporting one Progress event per completed level on progress (if
// non-nil; sends are non-blocking, matching the teacher's logger). It
// honors ctx for whole-analysis cancellation in addition to each level's
// own soft time budget.
func FindBestTurn(b *board.Board, s *board.GameState, minLevel, maxLevel int, timeBudgets []time.Duration, cache *Cache, progress chan<- Progress, ctx *SearchContext) SearchResult {
	fp := s.Fingerprint()

	var best SearchResult
	startLevel := minLevel

	if cache != nil {
		if cached, found, err := cache.Get(fp); err == nil && found {
			best = SearchResult{
				Turn:          cached.BestTurn,
				Score:         cached.Score,
				Level:         cached.AnalysisLevel,
				StatesVisited: cached.StatesVisited,
				Elapsed:       time.Duration(cached.ElapsedMs) * time.Millisecond,
			}
			if cached.AnalysisLevel >= maxLevel {
				best.FromCache = true
				emitProgress(progress, best, true)
				return best
			}
			if cached.AnalysisLevel+1 > startLevel {
				startLevel = cached.AnalysisLevel + 1
			}
		}
	}

	for level := startLevel; level <= maxLevel; level++ {
		if ctx != nil && ctx.Stopped() {
			break
		}

		budget := TimeBudgetForLevel(timeBudgets, level)
		levelCtx := NewSearchContext(budget)

		score, turn := negamax(b, s, level, math.Inf(-1), math.Inf(1), levelCtx)

		if levelCtx.Stopped() {
			// Per spec.md §5: a level is either fully incorporated or not
			// at all. Discard this partial level and stop deepening.
			break
		}

		best = SearchResult{
			Turn:          turn,
			Score:         score,
			Level:         level,
			StatesVisited: levelCtx.Nodes(),
			Elapsed:       levelCtx.Elapsed(),
		}

		if cache != nil {
			_ = cache.Put(fp, CacheEntry{
				AnalysisLevel: best.Level,
				BestTurn:      best.Turn,
				Score:         best.Score,
				StatesVisited: best.StatesVisited,
				ElapsedMs:     best.Elapsed.Milliseconds(),
			})
		}

		emitProgress(progress, best, level == maxLevel)
	}

	return best
}

func emitProgress(progress chan<- Progress, result SearchResult, done bool) {
	if progress == nil {
		return
	}
	select {
	case progress <- Progress{Result: result, Done: done}:
	default:
		// Slow consumer: drop rather than block the search.
	}
}

type searchChild struct {
	turn  board.SimpleTurn
	state *board.GameState
}

// negamax returns the best turn's score from the perspective of s.Current's
// alliance (the side to move in s) plus the turn achieving it, searching
// depth plies (spec.md §4.7). Leaves return Heuristic(s, perspective);
// internal nodes negate the recursive return only when the child's mover
// differs from s.Current (doctor activation can keep the same side
// moving). Heuristic requires a normal-player perspective, but s.Current
// can be a stranger in a terminal state (a stranger's own attack sets the
// winner without handing the turn back to a normal player), so every call
// goes through s.Current.NormalPlayer() rather than s.Current directly.
func negamax(b *board.Board, s *board.GameState, depth int, alpha, beta float64, ctx *SearchContext) (float64, board.SimpleTurn) {
	ctx.nodes++
	if ctx.nodes&checkNodesInterval == 0 && ctx.checkTimeout() {
		return 0, board.SimpleTurn{}
	}

	if depth == 0 || s.HasWinner() {
		return Heuristic(b, s, s.Current.NormalPlayer()), board.SimpleTurn{}
	}

	turns := generator.LegalTurns(b, s)
	children := make([]searchChild, 0, len(turns))
	for _, t := range turns {
		next, _, err := rules.ApplyTurn(b, s, t)
		if err != nil {
			continue
		}
		children = append(children, searchChild{turn: t, state: next})
	}

	if len(children) == 0 {
		return Heuristic(b, s, s.Current.NormalPlayer()), board.SimpleTurn{}
	}

	perspective := s.Current.NormalPlayer()
	if depth > 1 {
		sort.Slice(children, func(i, j int) bool {
			return Heuristic(b, children[i].state, perspective) > Heuristic(b, children[j].state, perspective)
		})
	}

	bestScore := math.Inf(-1)
	var bestTurn board.SimpleTurn
	first := true

	for _, c := range children {
		if ctx.stopped.Load() {
			break
		}

		var childScore float64
		if c.state.Current == s.Current {
			childScore, _ = negamax(b, c.state, depth-1, alpha, beta, ctx)
		} else {
			recursive, _ := negamax(b, c.state, depth-1, -beta, -alpha, ctx)
			childScore = -recursive
		}

		if first || childScore > bestScore {
			bestScore = childScore
			bestTurn = c.turn
			first = false
		}
		if childScore > alpha {
			alpha = childScore
		}
		if alpha >= beta {
			break
		}
	}

	return bestScore, bestTurn
}
