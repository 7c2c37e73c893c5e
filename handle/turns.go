package handle

import (
	"encoding/json"

	"github.com/jmegner/KillDoctorLuckyWeb-sub000/board"
	"github.com/jmegner/KillDoctorLuckyWeb-sub000/engine"
	"github.com/jmegner/KillDoctorLuckyWeb-sub000/rules"
)

// ValidateTurnPlan checks plan against the live state without mutating it
// (spec.md §6's validate_turn_plan). Returns "" on success, a
// human-readable reason otherwise.
func (s *Session) ValidateTurnPlan(planJSON []byte) string {
	turn, err := board.ParsePlan(planJSON)
	if err != nil {
		return err.Error()
	}
	if rerr := rules.ValidateTurn(s.board, s.state, turn); rerr != nil {
		return rerr.Error()
	}
	return ""
}

// ApplyTurnPlan validates and applies plan to the live state, advancing
// through any automatic stranger turns (spec.md §6's apply_turn_plan).
// Returns "" on success; on failure the live state is untouched.
func (s *Session) ApplyTurnPlan(planJSON []byte) string {
	turn, err := board.ParsePlan(planJSON)
	if err != nil {
		return err.Error()
	}
	next, _, rerr := rules.ApplyTurn(s.board, s.state, turn)
	if rerr != nil {
		return rerr.Error()
	}
	s.state = next
	s.logEvent("turn", turn, 0, 0, 0)
	return ""
}

type previewResponse struct {
	IsValid            bool     `json:"isValid"`
	ValidationMessage  string   `json:"validationMessage"`
	NextPlayerPieceId  string   `json:"nextPlayerPieceId"`
	Attackers          []string `json:"attackers"`
	CurrentPlayerLoots bool     `json:"currentPlayerLoots"`
	DoctorRoomId       int      `json:"doctorRoomId"`
	MovedStrangers     []string `json:"movedStrangers"`
}

// PreviewTurnPlan reports what applying plan would do without mutating the
// live state (spec.md §6's preview_turn_plan): rules.ApplyTurn always
// returns a fresh clone, so the live session.state is never touched here.
func (s *Session) PreviewTurnPlan(planJSON []byte) ([]byte, error) {
	turn, err := board.ParsePlan(planJSON)
	if err != nil {
		return json.Marshal(previewResponse{ValidationMessage: err.Error()})
	}
	next, outcome, rerr := rules.ApplyTurn(s.board, s.state, turn)
	if rerr != nil {
		return json.Marshal(previewResponse{ValidationMessage: rerr.Error()})
	}

	resp := previewResponse{
		IsValid:            true,
		NextPlayerPieceId:  next.Current.String(),
		CurrentPlayerLoots: outcome.CurrentPlayerLoots,
		DoctorRoomId:       int(next.DoctorRoom),
	}
	for _, a := range outcome.Attackers {
		resp.Attackers = append(resp.Attackers, a.String())
	}
	for _, m := range outcome.MovedStrangers {
		resp.MovedStrangers = append(resp.MovedStrangers, m.String())
	}
	return json.Marshal(resp)
}

type findBestTurnResponse struct {
	IsValid           bool            `json:"isValid"`
	ValidationMessage string          `json:"validationMessage"`
	SuggestedTurn     json.RawMessage `json:"suggestedTurn,omitempty"`
	SuggestedTurnText string          `json:"suggestedTurnText"`
	HeuristicScore    float64         `json:"heuristicScore"`
	NumStatesVisited  int64           `json:"numStatesVisited"`
	ElapsedMs         int64           `json:"elapsedMs"`
}

// FindBestTurn runs iterative-deepening search up to level (spec.md §6's
// find_best_turn), consulting and maintaining the results cache. level 0
// maps to one ply of lookahead (internal search depth 1), which evaluates
// exactly the immediate children by heuristic — spec.md §8 property 3.
func (s *Session) FindBestTurn(level int) ([]byte, error) {
	if s.state.HasWinner() {
		return json.Marshal(findBestTurnResponse{ValidationMessage: "game already has a winner"})
	}
	if level < 0 {
		level = 0
	}
	depth := level + 1

	result := engine.FindBestTurn(s.board, s.state, 1, depth, s.cfg.LevelTimeBudgets(), s.cache, nil, nil)
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

// UndoLastTurn rewinds the live state to its PrevState, reporting whether
// there was anything to undo (spec.md §6's undo_last_turn).
func (s *Session) UndoLastTurn() bool {
	if s.state.PrevState == nil {
		return false
	}
	s.state = s.state.PrevState
	s.logEvent("undo", board.SimpleTurn{}, 0, 0, 0)
	return true
}

// ResetGame restarts the live game on the current board using the
// session's last-configured setup counts (spec.md §6's reset_game).
func (s *Session) ResetGame() {
	s.NewDefaultState()
}

// StartNewGameWithSetup restarts the live game with the given starting
// move/weapon/failure counts (spec.md §6's start_new_game_with_setup),
// remembering them for subsequent reset_game calls.
func (s *Session) StartNewGameWithSetup(moveCards, weapons, failures float64) string {
	if moveCards < 0 || weapons < 0 || failures < 0 {
		return "setup values must be >= 0"
	}
	s.setup = setup{moveCards, weapons, failures}
	s.state = board.NewGameState(s.board, moveCards, weapons, failures)
	s.logEvent("reset", board.SimpleTurn{}, 0, 0, 0)
	return ""
}
