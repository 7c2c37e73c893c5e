package handle

import (
	"fmt"
	"time"

	"github.com/jmegner/KillDoctorLuckyWeb-sub000/board"
	"github.com/jmegner/KillDoctorLuckyWeb-sub000/config"
	"github.com/jmegner/KillDoctorLuckyWeb-sub000/engine"
)

// setup records the move/weapon/failure counts a fresh game starts with, so
// reset_game() can rebuild the same starting hand without the caller
// re-specifying it every time (mirrors the teacher's Session.Clear(),
// which resets search state back to the values the session was built with).
type setup struct {
	MoveCards float64
	Weapons   float64
	Failures  float64
}

// Session owns one game's live board, state, results cache, and logger. One
// Session is built per game, the way the teacher's Play() owns one board
// position plus one *Logger for the lifetime of an interactive game.
type Session struct {
	cfg    config.Config
	board  *board.Board
	state  *board.GameState
	cache  *engine.Cache
	logger *engine.Logger
	setup  setup
}

// NewSession loads cfg's default board, opens the results cache and logger
// it names, and starts a fresh default game.
func NewSession(cfg config.Config) (*Session, error) {
	s := &Session{
		cfg:   cfg,
		setup: setup{cfg.DefaultMoveCards, cfg.DefaultWeapons, cfg.DefaultFailures},
	}
	if err := s.loadBoard(cfg.DefaultBoardName, cfg.ClosedWings); err != nil {
		return nil, err
	}
	if cfg.CacheDir != "" {
		cache, err := engine.OpenCache(cfg.CacheDir)
		if err != nil {
			return nil, fmt.Errorf("handle: opening cache: %w", err)
		}
		s.cache = cache
	}
	if cfg.LogPath != "" {
		logger, err := engine.NewLogger(cfg.LogPath)
		if err != nil {
			return nil, fmt.Errorf("handle: opening logger: %w", err)
		}
		s.logger = logger
	}
	s.NewDefaultState()
	return s, nil
}

func (s *Session) loadBoard(name string, closedWings []string) error {
	b, err := config.LoadBoard(name)
	if err != nil {
		return boardInvalid("%v", err)
	}
	if len(closedWings) > 0 {
		if err := b.Close(closedWings...); err != nil {
			return boardInvalid("%v", err)
		}
	}
	s.board = b
	return nil
}

// SwitchBoard loads a different built-in board by name and starts a fresh
// default game on it, for the CLI's "b <BoardName>" directive.
func (s *Session) SwitchBoard(name string, closedWings []string) error {
	if err := s.loadBoard(name, closedWings); err != nil {
		return err
	}
	s.NewDefaultState()
	return nil
}

// NewDefaultState resets the live game on the current board to a fresh
// start, using the session's last-configured setup counts.
func (s *Session) NewDefaultState() {
	s.state = board.NewGameState(s.board, s.setup.MoveCards, s.setup.Weapons, s.setup.Failures)
	s.logEvent("reset", board.SimpleTurn{}, 0, 0, 0)
}

// Close flushes the results cache and closes the logger (spec.md §5:
// "releasing the handle releases the chain"). A second call is a no-op.
func (s *Session) Close() error {
	var first error
	if s.cache != nil {
		if err := s.cache.Close(); err != nil && first == nil {
			first = err
		}
		s.cache = nil
	}
	if s.logger != nil {
		if err := s.logger.Close(); err != nil && first == nil {
			first = err
		}
		s.logger = nil
	}
	return first
}

func (s *Session) logEvent(event string, turn board.SimpleTurn, score float64, level int, states int64) {
	if s.logger == nil {
		return
	}
	s.logger.Log(engine.LogInfo{
		Timestamp:     time.Now(),
		Event:         event,
		TurnText:      turn.String(),
		Score:         fmt.Sprintf("%.4f", score),
		Level:         level,
		StatesVisited: states,
	})
}

// BoardRoomsJSON renders the live board's rooms (spec.md §6's
// board_rooms_json()).
func (s *Session) BoardRoomsJSON() ([]byte, error) {
	return s.board.RoomsJSON()
}

// PiecePositions returns the five pieces' current rooms in canonical order.
func (s *Session) PiecePositions() []board.RoomId {
	out := make([]board.RoomId, 0, len(board.CanonicalOrder))
	for _, p := range board.CanonicalOrder {
		out = append(out, s.state.RoomOf(p))
	}
	return out
}

// CurrentPlayerPieceId returns the wire id of the piece whose turn it is.
// While the game is undecided, ApplyTurn's stranger-cascade loop never
// leaves Current on a stranger, so this is "player1" or "player2"; after a
// stranger's winning attack it is that stranger's id.
func (s *Session) CurrentPlayerPieceId() string {
	return s.state.Current.String()
}

// WinnerPieceId returns the winning normal player's wire id, or "".
func (s *Session) WinnerPieceId() string {
	if s.state.Winner == nil {
		return ""
	}
	return s.state.Winner.String()
}

// HasWinner reports whether the live game has ended.
func (s *Session) HasWinner() bool {
	return s.state.HasWinner()
}

// BoardName returns the live board's display name, for the CLI's "d"/"b"
// directives.
func (s *Session) BoardName() string {
	return s.board.Name
}

// RoomName returns id's display name on the live board, or "" if it
// doesn't exist.
func (s *Session) RoomName(id board.RoomId) string {
	return s.board.RoomName(id)
}

// History returns the text of every turn applied so far, oldest first
// (spec.md §6's "h" CLI directive).
func (s *Session) History() []string {
	var turns []string
	for st := s.state; st != nil && st.PrevTurn != nil; st = st.PrevState {
		turns = append([]string{st.PrevTurn.String()}, turns...)
	}
	return turns
}
