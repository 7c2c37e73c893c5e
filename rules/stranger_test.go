package rules

import (
	"testing"

	"github.com/jmegner/KillDoctorLuckyWeb-sub000/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStrangerTurn_MovesBackwardWhenNoAttackAvailable(t *testing.T) {
	b := ringBoard(nil)
	s := board.NewGameState(b, 0, 0, 0)
	s.Current = board.Stranger1
	s.TurnID = 2
	startRoom := s.RoomOf(board.Stranger1)

	runStrangerTurn(b, s)

	assert.Equal(t, b.NextRoom(startRoom, -1), s.RoomOf(board.Stranger1))
	assert.Nil(t, s.Winner)
	assert.Equal(t, 3, s.TurnID)
	assert.Equal(t, board.NextSlot(board.Stranger1), s.Current)
}

func TestRunStrangerTurn_AttacksImmediatelyWhenSharingDoctorRoom(t *testing.T) {
	b := ringBoard(nil)
	s := board.NewGameState(b, 0, 0, 0)
	s.Current = board.Stranger1
	s.TurnID = 2
	s.SetRoom(board.Stranger1, s.DoctorRoom)

	runStrangerTurn(b, s)

	require.NotNil(t, s.Winner)
	assert.Equal(t, board.Player2, *s.Winner) // Stranger1's ally is Player2
	assert.Equal(t, []board.PieceId{board.Stranger1}, s.AttackerHistory)
}

func TestRunStrangerTurn_AttacksAfterSteppingBackIntoDoctorRoom(t *testing.T) {
	b := ringBoard(nil)
	s := board.NewGameState(b, 0, 0, 0)
	s.Current = board.Stranger1
	s.TurnID = 2
	// Place the stranger one step ahead of the doctor's room so the
	// backward fallback move lands exactly on the doctor.
	s.SetRoom(board.Stranger1, b.NextRoom(s.DoctorRoom, 1))

	runStrangerTurn(b, s)

	require.NotNil(t, s.Winner)
	assert.Equal(t, s.DoctorRoom, s.RoomOf(board.Stranger1))
}

func TestRunStrangerTurn_DefendedAttackFailsAndTurnContinues(t *testing.T) {
	b := ringBoard(nil)
	s := board.NewGameState(b, 0, 0, 0)
	s.Current = board.Stranger1
	s.TurnID = 2
	s.SetRoom(board.Stranger1, s.DoctorRoom)
	s.SetFailuresOf(board.Player1, 5) // Player1 defends against Stranger1

	runStrangerTurn(b, s)

	assert.Nil(t, s.Winner)
	assert.Equal(t, 3, s.TurnID)
	assert.Equal(t, board.NextSlot(board.Stranger1), s.Current)
}
