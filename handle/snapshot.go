package handle

import (
	"encoding/json"

	"github.com/jmegner/KillDoctorLuckyWeb-sub000/board"
	"github.com/jmegner/KillDoctorLuckyWeb-sub000/rules"
)

// stateSnapshot is the opaque wire shape of export_state_json /
// import_state_json. It deliberately excludes PrevState/PrevTurn, mirroring
// board.GameState.Fingerprint's exclusion of the history chain (spec.md §3):
// a snapshot only needs to reproduce the reachable-successor set, not the
// undo history.
type stateSnapshot struct {
	TurnID          int       `json:"turnId"`
	Current         string    `json:"current"`
	DoctorRoom      int       `json:"doctorRoom"`
	PlayerRooms     [4]int    `json:"playerRooms"`
	Strengths       [4]float64 `json:"strengths"`
	MoveCards       [4]float64 `json:"moveCards"`
	Weapons         [4]float64 `json:"weapons"`
	Failures        [4]float64 `json:"failures"`
	AttackerHistory []string  `json:"attackerHistory"`
	Winner          string    `json:"winner,omitempty"`
}

// ExportStateJSON serializes the live state to an opaque snapshot (spec.md
// §6's export_state_json).
func (s *Session) ExportStateJSON() ([]byte, error) {
	snap := stateSnapshot{
		TurnID:     s.state.TurnID,
		Current:    s.state.Current.String(),
		DoctorRoom: int(s.state.DoctorRoom),
		Strengths:  s.state.Strengths,
		MoveCards:  s.state.MoveCards,
		Weapons:    s.state.Weapons,
		Failures:   s.state.Failures,
	}
	for i, r := range s.state.PlayerRooms {
		snap.PlayerRooms[i] = int(r)
	}
	for _, p := range s.state.AttackerHistory {
		snap.AttackerHistory = append(snap.AttackerHistory, p.String())
	}
	if s.state.Winner != nil {
		snap.Winner = s.state.Winner.String()
	}
	return json.Marshal(snap)
}

// ImportStateJSON replaces the live state with snapshot, rejecting anything
// that doesn't fit the current board (spec.md §6's import_state_json).
// Returns "" on success; on failure the live state is untouched.
func (s *Session) ImportStateJSON(snapshot []byte) string {
	var snap stateSnapshot
	if err := json.Unmarshal(snapshot, &snap); err != nil {
		return invalidSnapshot("malformed snapshot: %v", err).Error()
	}

	current, ok := board.ParsePieceId(snap.Current)
	if !ok || !current.IsNormalPlayer() {
		return invalidSnapshot("snapshot has invalid current player %q", snap.Current).Error()
	}
	doctorRoom := board.RoomId(snap.DoctorRoom)
	if !s.board.RoomExists(doctorRoom) {
		return invalidSnapshot("snapshot doctor room %d does not exist on this board", snap.DoctorRoom).Error()
	}

	next := &board.GameState{
		TurnID:     snap.TurnID,
		Current:    current,
		DoctorRoom: doctorRoom,
		Strengths:  snap.Strengths,
		MoveCards:  snap.MoveCards,
		Weapons:    snap.Weapons,
		Failures:   snap.Failures,
	}
	for i, rid := range snap.PlayerRooms {
		r := board.RoomId(rid)
		if !s.board.RoomExists(r) {
			return invalidSnapshot("snapshot room %d does not exist on this board", rid).Error()
		}
		next.PlayerRooms[i] = r
	}
	for _, ps := range snap.AttackerHistory {
		p, ok := board.ParsePieceId(ps)
		if !ok {
			return invalidSnapshot("snapshot has invalid attacker history entry %q", ps).Error()
		}
		next.AttackerHistory = append(next.AttackerHistory, p)
	}
	if snap.Winner != "" {
		w, ok := board.ParsePieceId(snap.Winner)
		if !ok || !w.IsNormalPlayer() {
			return invalidSnapshot("snapshot has invalid winner %q", snap.Winner).Error()
		}
		next.Winner = &w
	}

	s.state = next
	s.logEvent("import", board.SimpleTurn{}, 0, 0, 0)
	return ""
}

type playerStatRow struct {
	PieceId           string  `json:"pieceId"`
	DoctorDistance    int     `json:"doctorDistance"`
	Strength          float64 `json:"strength"`
	MoveCards         float64 `json:"moveCards"`
	Weapons           float64 `json:"weapons"`
	Failures          float64 `json:"failures"`
	EquivalentClovers float64 `json:"equivalentClovers"`
}

// PlayerStatsJSON reports doctor distance, strength, card counts, and
// equivalent-clover defensive budget for each of the four movable pieces
// (spec.md §6's player_stats_json); the strangers' card counts are always
// zero. The doctor itself has none of these, so it is not a row here.
func (s *Session) PlayerStatsJSON() ([]byte, error) {
	pieces := []board.PieceId{board.Player1, board.Stranger1, board.Player2, board.Stranger2}
	rows := make([]playerStatRow, 0, len(pieces))
	for _, p := range pieces {
		rows = append(rows, playerStatRow{
			PieceId:        p.String(),
			DoctorDistance: s.board.Distance(s.state.RoomOf(p), s.state.DoctorRoom),
			Strength:       s.state.Strength(p),
			MoveCards:      s.state.MoveCardsOf(p),
			Weapons:        s.state.WeaponsOf(p),
			Failures:       s.state.FailuresOf(p),
			EquivalentClovers: s.state.FailuresOf(p)*rules.FailureCloverValue +
				s.state.WeaponsOf(p)*rules.WeaponCloverValue +
				s.state.MoveCardsOf(p)*rules.MoveCardCloverValue,
		})
	}
	return json.Marshal(rows)
}

// AnimationFrames interpolates intermediate room positions across the most
// recent normal turn (spec.md §6's animation_frames): one shortest-route
// path per non-doctor piece, one room-order traversal for the doctor (it
// always advances along room order, never by shortest board distance),
// padded to a common frame count by holding each piece at its final room.
// Flattened to num_frames*5 ints in canonical piece order.
//
// Open question resolution (recorded in DESIGN.md): ApplyTurn folds an
// entire human-turn-plus-stranger-cascade into a single PrevState link, so
// the exact sub-step positions within a cascade aren't separately recorded;
// interpolating start-to-end via shortest path is the best reconstruction
// available without threading per-substep state through rules.ApplyTurn.
func (s *Session) AnimationFrames() ([]byte, error) {
	if s.state.PrevState == nil {
		return json.Marshal(flattenFrame(s.PiecePositions()))
	}
	prev := s.state.PrevState

	paths := make([][]board.RoomId, len(board.CanonicalOrder))
	maxLen := 1
	for i, p := range board.CanonicalOrder {
		from, to := prev.RoomOf(p), s.state.RoomOf(p)
		var path []board.RoomId
		if p == board.Doctor {
			path = s.board.OrderPath(from, to)
		} else {
			path = s.board.Path(from, to)
		}
		if path == nil {
			path = []board.RoomId{from, to}
		}
		paths[i] = path
		if len(path) > maxLen {
			maxLen = len(path)
		}
	}

	frames := make([]int, 0, maxLen*len(board.CanonicalOrder))
	for f := 0; f < maxLen; f++ {
		for _, path := range paths {
			idx := f
			if idx >= len(path) {
				idx = len(path) - 1
			}
			frames = append(frames, int(path[idx]))
		}
	}
	return json.Marshal(frames)
}

func flattenFrame(rooms []board.RoomId) []int {
	out := make([]int, len(rooms))
	for i, r := range rooms {
		out[i] = int(r)
	}
	return out
}
