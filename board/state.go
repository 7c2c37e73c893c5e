package board

// EqTolerance is the epsilon used whenever fractional card counts are
// compared for equality (spec.md §9: floating-point card counts are exact
// enough for gameplay but must not be compared with ==).
const EqTolerance = 1e-9

// GameState is the fully observable, mutable state of one game session. It
// is produced once by NewGameState and thereafter only ever replaced by
// rules.ApplyTurn (see package rules); GameState itself
// knows nothing about legality, only about representing a position.
type GameState struct {
	TurnID  int
	Current PieceId

	DoctorRoom  RoomId
	PlayerRooms [4]RoomId // indexed by PieceId.playerIndex(): P1, S1, P2, S2

	Strengths [4]float64
	MoveCards [4]float64
	Weapons   [4]float64
	Failures  [4]float64

	AttackerHistory []PieceId
	Winner          *PieceId

	PrevTurn  *SimpleTurn
	PrevState *GameState
}

// RoomOf returns the current room of piece p.
func (s *GameState) RoomOf(p PieceId) RoomId {
	if p == Doctor {
		return s.DoctorRoom
	}
	return s.PlayerRooms[p.playerIndex()]
}

// SetRoom moves piece p to room id.
func (s *GameState) SetRoom(p PieceId, id RoomId) {
	if p == Doctor {
		s.DoctorRoom = id
		return
	}
	s.PlayerRooms[p.playerIndex()] = id
}

// HasWinner reports whether the game has ended.
func (s *GameState) HasWinner() bool {
	return s.Winner != nil
}

// Strength, MoveCardsOf, WeaponsOf, and FailuresOf read p's per-piece
// counters (always zero for Doctor, and for strangers' cards, which are
// never consumed or held per spec.md §3).
func (s *GameState) Strength(p PieceId) float64 {
	if p == Doctor {
		return 0
	}
	return s.Strengths[p.playerIndex()]
}

func (s *GameState) SetStrength(p PieceId, v float64) {
	if p != Doctor {
		s.Strengths[p.playerIndex()] = v
	}
}

func (s *GameState) MoveCardsOf(p PieceId) float64 {
	if p == Doctor {
		return 0
	}
	return s.MoveCards[p.playerIndex()]
}

func (s *GameState) SetMoveCardsOf(p PieceId, v float64) {
	if p != Doctor {
		s.MoveCards[p.playerIndex()] = v
	}
}

func (s *GameState) WeaponsOf(p PieceId) float64 {
	if p == Doctor {
		return 0
	}
	return s.Weapons[p.playerIndex()]
}

func (s *GameState) SetWeaponsOf(p PieceId, v float64) {
	if p != Doctor {
		s.Weapons[p.playerIndex()] = v
	}
}

func (s *GameState) FailuresOf(p PieceId) float64 {
	if p == Doctor {
		return 0
	}
	return s.Failures[p.playerIndex()]
}

func (s *GameState) SetFailuresOf(p PieceId, v float64) {
	if p != Doctor {
		s.Failures[p.playerIndex()] = v
	}
}

// Clone returns a deep copy of s whose PrevState chain is shared (it is
// immutable once created) but whose own fields are independent; mutating
// the clone never affects s. Used by the turn generator and search engine,
// which must explore many hypothetical successors without disturbing the
// live state.
func (s *GameState) Clone() *GameState {
	clone := *s
	clone.AttackerHistory = append([]PieceId(nil), s.AttackerHistory...)
	if s.Winner != nil {
		w := *s.Winner
		clone.Winner = &w
	}
	if s.PrevTurn != nil {
		pt := *s.PrevTurn
		pt.Moves = append([]PlayerMove(nil), s.PrevTurn.Moves...)
		clone.PrevTurn = &pt
	}
	// PrevState is an append-only snapshot chain; sharing the pointer is
	// intentional and keeps Clone cheap for search, which clones states by
	// the thousand but never walks PrevState.
	clone.PrevState = s.PrevState
	return &clone
}

// withoutHistory returns a shallow-ish copy of s with PrevState and
// PrevTurn stripped, suitable as the basis for a search hypothesis or for a
// fingerprint: the history chain is explicitly excluded from the
// fingerprint domain (spec.md §3).
func (s *GameState) withoutHistory() *GameState {
	c := s.Clone()
	c.PrevState = nil
	c.PrevTurn = nil
	return c
}
