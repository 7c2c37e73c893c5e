package generator

import (
	"encoding/json"
	"testing"

	"github.com/jmegner/KillDoctorLuckyWeb-sub000/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ringBoard mirrors rules' test helper: a 6-room ring (0-1-2-3-4-5-0),
// Doctor@0, Player1@1, Player2@2, Stranger1@3, Stranger2@4.
func ringBoard() *board.Board {
	type roomJSON struct {
		Id       int    `json:"Id"`
		Name     string `json:"Name"`
		Adjacent []int  `json:"Adjacent"`
		Visible  []int  `json:"Visible"`
	}
	rooms := make([]roomJSON, 6)
	for i := 0; i < 6; i++ {
		rooms[i] = roomJSON{Id: i, Name: "room", Adjacent: []int{(i + 5) % 6, (i + 1) % 6}}
	}
	raw := struct {
		Name               string     `json:"Name"`
		PlayerStartRoomIds []int      `json:"PlayerStartRoomIds"`
		DoctorStartRoomIds []int      `json:"DoctorStartRoomIds"`
		CatStartRoomIds    []int      `json:"CatStartRoomIds"`
		DogStartRoomIds    []int      `json:"DogStartRoomIds"`
		Rooms              []roomJSON `json:"Rooms"`
	}{
		Name:               "Ring",
		PlayerStartRoomIds: []int{1, 2},
		DoctorStartRoomIds: []int{0},
		CatStartRoomIds:    []int{3},
		DogStartRoomIds:    []int{4},
		Rooms:              rooms,
	}
	data, err := json.Marshal(raw)
	if err != nil {
		panic(err)
	}
	b, err := board.LoadJSON(data)
	if err != nil {
		panic(err)
	}
	return b
}

func TestLegalTurns_ZeroMoveCardsOnlyOneMoverSubsets(t *testing.T) {
	b := ringBoard()
	s := board.NewGameState(b, 0, 0, 0) // dist_allowed = 1

	turns := LegalTurns(b, s)
	require.NotEmpty(t, turns)
	for _, turn := range turns {
		assert.Len(t, turn.Moves, 1, "no move cards => only single-mover turns: %v", turn)
	}
}

func TestLegalTurns_SingleMoverIncludesStayPut(t *testing.T) {
	b := ringBoard()
	s := board.NewGameState(b, 0, 0, 0)

	turns := LegalTurns(b, s)
	foundStay := false
	for _, turn := range turns {
		if len(turn.Moves) == 1 && turn.Moves[0].Piece == board.Player1 && turn.Moves[0].Dest == s.RoomOf(board.Player1) {
			foundStay = true
		}
	}
	assert.True(t, foundStay, "expected a zero-distance stay-put turn for the current player")
}

func TestLegalTurns_SingleMoverRespectsDistance(t *testing.T) {
	b := ringBoard()
	s := board.NewGameState(b, 0, 0, 0) // dist_allowed = 1, Player1 at room 1

	for _, turn := range LegalTurns(b, s) {
		if turn.Moves[0].Piece != board.Player1 {
			continue
		}
		dist := b.Distance(1, turn.Moves[0].Dest)
		assert.LessOrEqual(t, dist, 1)
	}
}

func TestLegalTurns_WithMoveCardsAddsTwoMoverSubsets(t *testing.T) {
	b := ringBoard()
	s := board.NewGameState(b, 1, 0, 0) // dist_allowed = 2

	var sawCurrentPairing, sawBothStrangers bool
	for _, turn := range LegalTurns(b, s) {
		if len(turn.Moves) != 2 {
			continue
		}
		pieces := map[board.PieceId]bool{turn.Moves[0].Piece: true, turn.Moves[1].Piece: true}
		switch {
		case pieces[board.Player1] && (pieces[board.Stranger1] || pieces[board.Stranger2]):
			sawCurrentPairing = true
		case pieces[board.Stranger1] && pieces[board.Stranger2]:
			sawBothStrangers = true
		}
	}
	assert.True(t, sawCurrentPairing, "expected at least one current+stranger pairing")
	assert.True(t, sawBothStrangers, "expected a stranger1+stranger2 pairing")
}

func TestLegalTurns_TwoMoverNeitherStaysInPlace(t *testing.T) {
	b := ringBoard()
	s := board.NewGameState(b, 3, 0, 0)

	for _, turn := range LegalTurns(b, s) {
		if len(turn.Moves) != 2 {
			continue
		}
		for _, m := range turn.Moves {
			assert.NotEqual(t, s.RoomOf(m.Piece), m.Dest)
		}
	}
}

func TestLegalTurns_TwoMoverRespectsCombinedBudget(t *testing.T) {
	b := ringBoard()
	s := board.NewGameState(b, 1, 0, 0) // dist_allowed = 2

	for _, turn := range LegalTurns(b, s) {
		if len(turn.Moves) != 2 {
			continue
		}
		total := 0
		for _, m := range turn.Moves {
			total += b.Distance(s.RoomOf(m.Piece), m.Dest)
		}
		assert.LessOrEqual(t, total, 2)
	}
}
