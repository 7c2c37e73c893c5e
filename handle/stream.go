package handle

import (
	"encoding/json"

	"github.com/jmegner/KillDoctorLuckyWeb-sub000/engine"
)

// SearchProgress is the wire shape of one completed-ply event streamed by
// StreamFindBestTurn, for httpapi's websocket search-progress feed.
type SearchProgress struct {
	Level            int     `json:"level"`
	SuggestedTurnText string `json:"suggestedTurnText"`
	HeuristicScore   float64 `json:"heuristicScore"`
	NumStatesVisited int64   `json:"numStatesVisited"`
	ElapsedMs        int64   `json:"elapsedMs"`
	Done             bool    `json:"done"`
}

// StreamFindBestTurn runs the same iterative-deepening search as
// FindBestTurn, but emits a SearchProgress event per completed ply on
// updates (non-blocking, as in engine.FindBestTurn: an event, the final
// one included, is dropped when updates is not ready to receive it, and a
// search that stops before the requested level emits no Done event)
// and accepts an external engine.SearchContext so a caller — httpapi's
// websocket handler, on client disconnect or an explicit cancel message —
// can stop the analysis before its next level starts (spec.md §5:
// cancellation is only honored between levels, never mid-level). The
// final result is cached and logged exactly like FindBestTurn.
func (s *Session) StreamFindBestTurn(level int, updates chan<- SearchProgress, ctx *engine.SearchContext) ([]byte, error) {
	if s.state.HasWinner() {
		return json.Marshal(findBestTurnResponse{ValidationMessage: "game already has a winner"})
	}
	if level < 0 {
		level = 0
	}
	depth := level + 1

	relay := make(chan engine.Progress, 4)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for p := range relay {
			select {
			case updates <- SearchProgress{
				Level:            p.Result.Level,
				SuggestedTurnText: p.Result.Turn.String(),
				HeuristicScore:   p.Result.Score,
				NumStatesVisited: p.Result.StatesVisited,
				ElapsedMs:        p.Result.Elapsed.Milliseconds(),
				Done:             p.Done,
			}:
			default:
			}
		}
	}()

	result := engine.FindBestTurn(s.board, s.state, 1, depth, s.cfg.LevelTimeBudgets(), s.cache, relay, ctx)
	close(relay)
	<-done

	if len(result.Turn.Moves) == 0 {
		return json.Marshal(findBestTurnResponse{ValidationMessage: noProgress("search found no legal turn").Error()})
	}

	plan, err := result.Turn.EncodePlan()
	if err != nil {
		return nil, err
	}
	s.logEvent("search", result.Turn, result.Score, result.Level, result.StatesVisited)

	return json.Marshal(findBestTurnResponse{
		IsValid:           true,
		SuggestedTurn:     plan,
		SuggestedTurnText: result.Turn.String(),
		HeuristicScore:    result.Score,
		NumStatesVisited:  result.StatesVisited,
		ElapsedMs:         result.Elapsed.Milliseconds(),
	})
}
