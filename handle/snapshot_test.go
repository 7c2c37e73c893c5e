package handle

import (
	"encoding/json"
	"testing"

	"github.com/jmegner/KillDoctorLuckyWeb-sub000/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImportStateJSON_RoundTrips(t *testing.T) {
	s := newTestSession(t)
	require.Empty(t, s.ApplyTurnPlan(planFor(t, "player1", 1)))

	data, err := s.ExportStateJSON()
	require.NoError(t, err)

	other := newTestSession(t)
	msg := other.ImportStateJSON(data)
	require.Empty(t, msg)

	assert.Equal(t, s.state.TurnID, other.state.TurnID)
	assert.Equal(t, s.state.Current, other.state.Current)
	assert.Equal(t, s.state.RoomOf(board.Player1), other.state.RoomOf(board.Player1))
	assert.Equal(t, s.state.DoctorRoom, other.state.DoctorRoom)
}

func TestImportStateJSON_RejectsUnknownRoom(t *testing.T) {
	s := newTestSession(t)
	data, err := s.ExportStateJSON()
	require.NoError(t, err)

	var snap stateSnapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	snap.DoctorRoom = 9999
	bad, err := json.Marshal(snap)
	require.NoError(t, err)

	before := s.state
	msg := s.ImportStateJSON(bad)
	assert.NotEmpty(t, msg)
	assert.Same(t, before, s.state)
}

func TestImportStateJSON_RejectsMalformedJSON(t *testing.T) {
	s := newTestSession(t)
	msg := s.ImportStateJSON([]byte("{not json"))
	assert.NotEmpty(t, msg)
}

func TestImportStateJSON_RejectsInvalidCurrentPlayer(t *testing.T) {
	s := newTestSession(t)
	data, err := s.ExportStateJSON()
	require.NoError(t, err)

	var snap stateSnapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	snap.Current = "stranger1"
	bad, err := json.Marshal(snap)
	require.NoError(t, err)

	msg := s.ImportStateJSON(bad)
	assert.NotEmpty(t, msg)
}

func TestPlayerStatsJSON_ReportsFourMovablePieces(t *testing.T) {
	s := newTestSession(t)
	require.Empty(t, s.StartNewGameWithSetup(2, 1, 1))

	out, err := s.PlayerStatsJSON()
	require.NoError(t, err)

	var rows []playerStatRow
	require.NoError(t, json.Unmarshal(out, &rows))
	require.Len(t, rows, 4)

	byId := map[string]playerStatRow{}
	for _, r := range rows {
		byId[r.PieceId] = r
	}
	require.Contains(t, byId, "player1")
	p1 := byId["player1"]
	assert.InDelta(t, 2, p1.MoveCards, board.EqTolerance)
	assert.InDelta(t, 1, p1.Weapons, board.EqTolerance)
	assert.InDelta(t, 1, p1.Failures, board.EqTolerance)
	wantClovers := 1*(50.0/24.0) + 1*1.0 + 2*1.0
	assert.InDelta(t, wantClovers, p1.EquivalentClovers, 1e-9)

	require.Contains(t, byId, "stranger1")
	assert.Equal(t, 0.0, byId["stranger1"].MoveCards)
}

func TestAnimationFrames_SingleFrameAtGameStart(t *testing.T) {
	s := newTestSession(t)
	out, err := s.AnimationFrames()
	require.NoError(t, err)

	var frames []int
	require.NoError(t, json.Unmarshal(out, &frames))
	assert.Len(t, frames, 5)
}

func TestAnimationFrames_InterpolatesAfterATurn(t *testing.T) {
	s := newTestSession(t)
	require.Empty(t, s.ApplyTurnPlan(planFor(t, "player1", 1)))

	out, err := s.AnimationFrames()
	require.NoError(t, err)

	var frames []int
	require.NoError(t, json.Unmarshal(out, &frames))
	require.True(t, len(frames)%5 == 0)
	require.GreaterOrEqual(t, len(frames), 5)

	numFrames := len(frames) / 5
	last := frames[(numFrames-1)*5+1] // Player1 is index 1 in CanonicalOrder
	assert.Equal(t, 1, last)
}
