package config

import (
	"embed"
	"fmt"
	"strings"

	"github.com/jmegner/KillDoctorLuckyWeb-sub000/board"
)

// boardFiles embeds every built-in board JSON asset (spec.md §6's wire
// format), so a host never needs a filesystem path to boot a default game.
//
//go:embed boards/*.json
var boardFiles embed.FS

// BoardJSON returns the raw embedded JSON for the named built-in board
// (case-insensitive), for hosts that want to hand it to board.LoadJSON
// themselves or re-serve it verbatim.
func BoardJSON(name string) ([]byte, error) {
	entries, err := boardFiles.ReadDir("boards")
	if err != nil {
		return nil, fmt.Errorf("config: reading embedded boards: %w", err)
	}
	for _, e := range entries {
		if !strings.EqualFold(strings.TrimSuffix(e.Name(), ".json"), name) {
			continue
		}
		return boardFiles.ReadFile("boards/" + e.Name())
	}
	return nil, fmt.Errorf("config: no built-in board named %q", name)
}

// LoadBoard looks up name among the embedded built-in boards and parses it
// via board.LoadJSON.
func LoadBoard(name string) (*board.Board, error) {
	data, err := BoardJSON(name)
	if err != nil {
		return nil, err
	}
	return board.LoadJSON(data)
}

// BoardNames lists every built-in board's name (its filename without the
// .json extension), for a host's board-picker UI or "b <BoardName>"
// directive completion.
func BoardNames() ([]string, error) {
	entries, err := boardFiles.ReadDir("boards")
	if err != nil {
		return nil, fmt.Errorf("config: reading embedded boards: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	return names, nil
}
