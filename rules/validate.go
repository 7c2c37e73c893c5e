package rules

import (
	"math"

	"github.com/jmegner/KillDoctorLuckyWeb-sub000/board"
)

// ValidateTurn checks a plan against the §4.2 validation contract without
// mutating s. A nil return means ApplyTurn will succeed, unless the game
// already has a winner (ValidateTurn does not check that; ApplyTurn rejects
// it); a non-nil *Error carries a host-displayable reason.
func ValidateTurn(b *board.Board, s *board.GameState, turn board.SimpleTurn) *Error {
	seen := make(map[board.PieceId]bool, len(turn.Moves))
	totalDist := 0

	for _, m := range turn.Moves {
		if m.Piece != s.Current && !m.Piece.IsStranger() {
			return invalidPlan("%s is not movable this turn", m.Piece)
		}
		if !b.RoomExists(m.Dest) {
			return invalidPlan("room %d does not exist", m.Dest)
		}
		if seen[m.Piece] {
			return invalidPlan("%s used too many times (duplicate piece)", m.Piece)
		}
		seen[m.Piece] = true

		src := s.RoomOf(m.Piece)
		dist := b.Distance(src, m.Dest)
		if dist >= board.Infinity {
			return invalidPlan("%s cannot reach room %d", m.Piece, m.Dest)
		}
		totalDist += dist
	}

	budget := math.Floor(s.MoveCardsOf(s.Current)) + FreeMovementPoints
	if float64(totalDist) > budget+board.EqTolerance {
		return invalidPlan("%s used too many move points (%d)", s.Current, totalDist)
	}

	return nil
}
