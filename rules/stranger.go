package rules

import "github.com/jmegner/KillDoctorLuckyWeb-sub000/board"

// runStrangerTurn plays one automatic stranger turn in place on s
// (spec.md §4.4): attempt an attack; if none is available, move backward
// one room along the board's traversal order and re-check; then run the
// doctor phase and advance TurnID. The caller loops this while the
// resulting current player is still a stranger.
func runStrangerTurn(b *board.Board, s *board.GameState) {
	stranger := s.Current

	if bestActionAllowed(b, s, stranger) != ActionAttack {
		s.SetRoom(stranger, b.NextRoom(s.RoomOf(stranger), -1))
	}

	if bestActionAllowed(b, s, stranger) == ActionAttack {
		if tryStrangerAttack(b, s, stranger) {
			return
		}
	}

	doctorPhase(b, s)
	s.TurnID++
}

// tryStrangerAttack resolves an already-confirmed attack for stranger,
// crediting the ally normal player as winner and reporting true if it
// succeeds. A resolved but failed attack still falls through to the
// doctor phase exactly like the human-turn path in ApplyTurn; it is never
// retried after moving backward, since spec.md §4.4's "otherwise, re-check"
// fallback covers only the no-attack-available case, not a failed attempt.
func tryStrangerAttack(b *board.Board, s *board.GameState, stranger board.PieceId) bool {
	if ResolveAttack(s, stranger) {
		winner := stranger.NormalPlayer()
		s.Winner = &winner
		return true
	}
	return false
}
