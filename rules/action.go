package rules

import "github.com/jmegner/KillDoctorLuckyWeb-sub000/board"

// Action is the automatic action resolved after a piece moves.
type Action int

const (
	ActionNone Action = iota
	ActionAttack
	ActionLoot
)

// allPieces lists every non-Doctor piece id, used when scanning "any other
// piece" per spec.md §4.2. The Doctor is never an observer: it is the
// attack target, and its own room is reflexively visible from itself
// (board.Sight(a,a) is always true), which would otherwise make an
// attacking piece co-located with the Doctor see itself as "observed" and
// block the very attack it just earned.
var allPieces = []board.PieceId{board.Player1, board.Stranger1, board.Player2, board.Stranger2}

// bestActionAllowed implements spec.md §4.2's best_action_allowed():
//   - if piece is visible from any other piece's current room, no action;
//   - else if piece shares the doctor's room, attack;
//   - else if piece has no line of sight to the doctor, loot;
//   - otherwise, no action.
func bestActionAllowed(b *board.Board, s *board.GameState, piece board.PieceId) Action {
	myRoom := s.RoomOf(piece)

	for _, other := range allPieces {
		if other == piece {
			continue
		}
		if b.Sight(s.RoomOf(other), myRoom) {
			return ActionNone
		}
	}

	if myRoom == s.DoctorRoom {
		return ActionAttack
	}
	if !b.Sight(myRoom, s.DoctorRoom) {
		return ActionLoot
	}
	return ActionNone
}

// applyLoot adds spec.md §4.2's fixed fractional increment to piece's move,
// weapon, and failure counts. Only normal players loot in this variant
// (strangers never hold cards, so a stranger's best_action_allowed never
// needs to award anything, but the function is harmless either way).
func applyLoot(s *board.GameState, piece board.PieceId) {
	if !piece.IsNormalPlayer() {
		return
	}
	s.SetMoveCardsOf(piece, s.MoveCardsOf(piece)+LootGain)
	s.SetWeaponsOf(piece, s.WeaponsOf(piece)+LootGain)
	s.SetFailuresOf(piece, s.FailuresOf(piece)+LootGain)
}
