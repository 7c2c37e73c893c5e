package board

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// PlayerMove is one piece's move within a turn plan.
type PlayerMove struct {
	Piece PieceId
	Dest  RoomId
}

// SimpleTurn is an ordered list of 0-2 moves submitted for the side to move.
type SimpleTurn struct {
	Moves []PlayerMove
}

// String renders a turn as "<piece>@R<room>" entries joined by ", ",
// matching suggestedTurnText in spec.md §6.
func (t SimpleTurn) String() string {
	parts := make([]string, 0, len(t.Moves))
	for _, m := range t.Moves {
		parts = append(parts, fmt.Sprintf("%s@R%d", m.Piece, m.Dest))
	}
	return strings.Join(parts, ", ")
}

// Equal reports whether two turns move the same pieces to the same rooms,
// regardless of order.
func (t SimpleTurn) Equal(other SimpleTurn) bool {
	if len(t.Moves) != len(other.Moves) {
		return false
	}
	used := make([]bool, len(other.Moves))
outer:
	for _, m := range t.Moves {
		for j, om := range other.Moves {
			if used[j] {
				continue
			}
			if m.Piece == om.Piece && m.Dest == om.Dest {
				used[j] = true
				continue outer
			}
		}
		return false
	}
	return true
}

// Pieces returns the set of pieces moved by t.
func (t SimpleTurn) Pieces() []PieceId {
	out := make([]PieceId, 0, len(t.Moves))
	for _, m := range t.Moves {
		out = append(out, m.Piece)
	}
	return out
}

// wirePlayerMove mirrors spec.md §6's {pieceId, roomId}.
type wirePlayerMove struct {
	PieceId string `json:"pieceId"`
	RoomId  int    `json:"roomId"`
}

// ParsePlan decodes a []wirePlayerMove-shaped JSON plan into a SimpleTurn.
func ParsePlan(data []byte) (SimpleTurn, error) {
	var raw []wirePlayerMove
	if err := json.Unmarshal(data, &raw); err != nil {
		return SimpleTurn{}, fmt.Errorf("turn: invalid plan JSON: %w", err)
	}
	turn := SimpleTurn{}
	for _, wm := range raw {
		p, ok := ParsePieceId(wm.PieceId)
		if !ok {
			return SimpleTurn{}, fmt.Errorf("turn: unknown piece id %q", wm.PieceId)
		}
		turn.Moves = append(turn.Moves, PlayerMove{Piece: p, Dest: RoomId(wm.RoomId)})
	}
	return turn, nil
}

// EncodePlan encodes a SimpleTurn back into the wire plan shape.
func (t SimpleTurn) EncodePlan() ([]byte, error) {
	raw := make([]wirePlayerMove, 0, len(t.Moves))
	for _, m := range t.Moves {
		raw = append(raw, wirePlayerMove{PieceId: m.Piece.String(), RoomId: int(m.Dest)})
	}
	return json.Marshal(raw)
}

// ParseCLIPlan parses the CLI's "<pieceNum>@<roomId>" (optionally
// ";"-chained) directive syntax into a SimpleTurn. pieceNum 1 means the
// current player's own piece; 2/3 mean stranger1/stranger2 regardless of
// whose turn it is, matching the secondary CLI surface of spec.md §6.
func ParseCLIPlan(directive string, current PieceId) (SimpleTurn, error) {
	turn := SimpleTurn{}
	for _, clause := range strings.Split(directive, ";") {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}
		parts := strings.SplitN(clause, "@", 2)
		if len(parts) != 2 {
			return SimpleTurn{}, fmt.Errorf("turn: malformed directive %q", clause)
		}
		pieceNum, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return SimpleTurn{}, fmt.Errorf("turn: bad piece number in %q", clause)
		}
		roomNum, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return SimpleTurn{}, fmt.Errorf("turn: bad room id in %q", clause)
		}
		var piece PieceId
		switch pieceNum {
		case 1:
			piece = current
		case 2:
			piece = Stranger1
		case 3:
			piece = Stranger2
		default:
			return SimpleTurn{}, fmt.Errorf("turn: unknown piece number %d", pieceNum)
		}
		turn.Moves = append(turn.Moves, PlayerMove{Piece: piece, Dest: RoomId(roomNum)})
	}
	return turn, nil
}
