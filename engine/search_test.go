package engine

import (
	"math"
	"testing"
	"time"

	"github.com/jmegner/KillDoctorLuckyWeb-sub000/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNegamax_FindsImmediateWinningAttack(t *testing.T) {
	b := ringBoard()
	s := board.NewGameState(b, 0, 0, 0) // Player1@1, doctor@0, adjacent

	ctx := NewSearchContext(time.Second)
	score, turn := negamax(b, s, 1, math.Inf(-1), math.Inf(1), ctx)

	require.Len(t, turn.Moves, 1)
	assert.Equal(t, board.Player1, turn.Moves[0].Piece)
	assert.Equal(t, board.RoomId(0), turn.Moves[0].Dest)
	assert.True(t, score > 0)
}

func TestNegamax_RespectsCancellation(t *testing.T) {
	b := ringBoard()
	s := board.NewGameState(b, 0, 0, 0)

	ctx := NewSearchContext(time.Nanosecond)
	time.Sleep(time.Millisecond)
	// Should return promptly without panicking even though the budget is
	// already exhausted before the first child is even expanded.
	_, _ = negamax(b, s, 3, math.Inf(-1), math.Inf(1), ctx)
}

func TestFindBestTurn_CachesCompletedLevelAndResumesFromIt(t *testing.T) {
	b := ringBoard()
	s := board.NewGameState(b, 0, 0, 0)
	cache := newTestCache(t)

	first := FindBestTurn(b, s, 1, 1, []time.Duration{time.Second}, cache, nil, nil)
	assert.Equal(t, 1, first.Level)
	assert.False(t, first.FromCache)

	second := FindBestTurn(b, s, 1, 1, []time.Duration{time.Second}, cache, nil, nil)
	assert.True(t, second.FromCache)
	assert.Equal(t, first.Turn, second.Turn)

	// Deepening past the cached level should resume at level 2, not redo 1.
	deeper := FindBestTurn(b, s, 1, 2, []time.Duration{time.Second, time.Second}, cache, nil, nil)
	assert.Equal(t, 2, deeper.Level)
	assert.False(t, deeper.FromCache)
}

func TestFindBestTurn_EmitsProgressPerLevel(t *testing.T) {
	b := ringBoard()
	s := board.NewGameState(b, 0, 0, 0)

	progress := make(chan Progress, 8)
	FindBestTurn(b, s, 1, 2, []time.Duration{time.Second, time.Second}, nil, progress, nil)
	close(progress)

	var levels []int
	for p := range progress {
		levels = append(levels, p.Result.Level)
	}
	assert.Equal(t, []int{1, 2}, levels)
}
