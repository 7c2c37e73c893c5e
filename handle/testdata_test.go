package handle

import (
	"path/filepath"
	"testing"

	"github.com/jmegner/KillDoctorLuckyWeb-sub000/config"
)

// newTestSession builds a Session on the embedded "Foyer" board with a
// scratch cache directory and log file, so tests never touch the real
// developer cache/log paths.
func newTestSession(t *testing.T) *Session {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.DefaultBoardName = "Foyer"
	cfg.CacheDir = filepath.Join(dir, "cache")
	cfg.LogPath = filepath.Join(dir, "kdl.log")

	s, err := NewSession(cfg)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}
