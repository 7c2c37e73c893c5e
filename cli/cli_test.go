package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmegner/KillDoctorLuckyWeb-sub000/config"
	"github.com/jmegner/KillDoctorLuckyWeb-sub000/handle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *handle.Session {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.DefaultBoardName = "Foyer"
	cfg.CacheDir = filepath.Join(dir, "cache")
	cfg.LogPath = filepath.Join(dir, "kdl.log")

	s, err := handle.NewSession(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRun_QuitReturnsZero(t *testing.T) {
	s := newTestSession(t)
	var out bytes.Buffer
	code := Run(s, strings.NewReader("q\n"), &out)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "goodbye")
}

func TestRun_EOFReturnsZero(t *testing.T) {
	s := newTestSession(t)
	var out bytes.Buffer
	code := Run(s, strings.NewReader(""), &out)
	assert.Equal(t, 0, code)
}

func TestRun_MoveDirectiveAdvancesState(t *testing.T) {
	s := newTestSession(t)
	var out bytes.Buffer
	code := Run(s, strings.NewReader("1@1\nq\n"), &out)
	assert.Equal(t, 0, code)
	assert.Equal(t, "player2", s.CurrentPlayerPieceId())
}

func TestRun_InvalidMoveReportsError(t *testing.T) {
	s := newTestSession(t)
	var out bytes.Buffer
	code := Run(s, strings.NewReader("1@2\nq\n"), &out)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "invalid turn")
}

func TestRun_ResetDirectiveRestoresStart(t *testing.T) {
	s := newTestSession(t)
	var out bytes.Buffer
	code := Run(s, strings.NewReader("1@1;r\nq\n"), &out)
	assert.Equal(t, 0, code)
	assert.Equal(t, "player1", s.CurrentPlayerPieceId())
}

func TestRun_AnalyzeThenExecuteAdvancesTurn(t *testing.T) {
	s := newTestSession(t)
	var out bytes.Buffer
	code := Run(s, strings.NewReader("e 0\nq\n"), &out)
	assert.Equal(t, 0, code)
	assert.Equal(t, "player2", s.CurrentPlayerPieceId())
	assert.Contains(t, out.String(), "best turn:")
}

func TestRun_PlayerCountRejectsNonTwo(t *testing.T) {
	s := newTestSession(t)
	var out bytes.Buffer
	code := Run(s, strings.NewReader("p 3\nq\n"), &out)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "ignoring")
}

func TestRun_ExportImportRoundTripsThroughFile(t *testing.T) {
	s := newTestSession(t)
	path := filepath.Join(t.TempDir(), "snap.json")
	var out bytes.Buffer
	code := Run(s, strings.NewReader("1@1;c "+path+"\nq\n"), &out)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "exported state to")

	other := newTestSession(t)
	var out2 bytes.Buffer
	code = Run(other, strings.NewReader("i "+path+"\nq\n"), &out2)
	assert.Equal(t, 0, code)
	assert.Equal(t, "player2", other.CurrentPlayerPieceId())
}
