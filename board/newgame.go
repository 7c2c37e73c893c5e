package board

// DefaultStrength is every piece's starting attack strength.
const DefaultStrength = 1.0

// NewGameState builds the initial state for a fresh game on b. moveCards,
// weapons, and failures seed both normal players' starting card counts;
// strangers never hold cards (spec.md §3) so their slots stay at zero.
func NewGameState(b *Board, moveCards, weapons, failures float64) *GameState {
	s := &GameState{
		TurnID:     1,
		Current:    Player1,
		DoctorRoom: b.DoctorID,
	}
	s.PlayerRooms[Player1.playerIndex()] = b.PlayerStarts[0]
	s.PlayerRooms[Player2.playerIndex()] = b.PlayerStarts[1]
	s.PlayerRooms[Stranger1.playerIndex()] = b.StrangerStarts[0]
	s.PlayerRooms[Stranger2.playerIndex()] = b.StrangerStarts[1]

	for _, p := range []PieceId{Player1, Stranger1, Player2, Stranger2} {
		s.Strengths[p.playerIndex()] = DefaultStrength
	}
	s.MoveCards[Player1.playerIndex()] = moveCards
	s.MoveCards[Player2.playerIndex()] = moveCards
	s.Weapons[Player1.playerIndex()] = weapons
	s.Weapons[Player2.playerIndex()] = weapons
	s.Failures[Player1.playerIndex()] = failures
	s.Failures[Player2.playerIndex()] = failures

	return s
}
