package board

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// Wing is a named group of rooms that can be closed to shrink the board.
type Wing struct {
	Name    string
	RoomIds []RoomId
}

// Board is the immutable, loaded-once graph of rooms plus everything
// materialized from it: all-pairs shortest paths, symmetric line-of-sight,
// and the stable cyclic room order used for doctor/stranger traversal.
//
// A Board is produced once by Load (or LoadJSON) and optionally narrowed by
// Close; every derived structure is recomputed against the pruned graph.
type Board struct {
	Name     string
	Rooms    []Room
	Wings    []Wing
	DoctorID RoomId
	// PlayerStarts holds the first two PlayerStartRoomIds (Player1,
	// Player2); StrangerStarts holds the first CatStartRoomIds and
	// DogStartRoomIds entries (Stranger1, Stranger2). NewGameState places
	// the pieces there.
	PlayerStarts   [2]RoomId
	StrangerStarts [2]RoomId

	distance  [][]int
	sight     [][]bool
	roomOrder []RoomId
	byID      map[RoomId]int // room id -> index into Rooms
}

// Infinity is the sentinel distance for unreachable room pairs.
const Infinity = 1 << 30

// boardJSON mirrors the wire format of spec.md §6.
type boardJSON struct {
	Name               string     `json:"Name"`
	PlayerStartRoomIds []RoomId   `json:"PlayerStartRoomIds"`
	DoctorStartRoomIds []RoomId   `json:"DoctorStartRoomIds"`
	CatStartRoomIds    []RoomId   `json:"CatStartRoomIds"`
	DogStartRoomIds    []RoomId   `json:"DogStartRoomIds"`
	Wings              []wingJSON `json:"Wings"`
	Rooms              []roomJSON `json:"Rooms"`
}

type wingJSON struct {
	Name    string   `json:"Name"`
	RoomIds []RoomId `json:"RoomIds"`
}

type roomJSON struct {
	Id       RoomId  `json:"Id"`
	Name     string  `json:"Name"`
	Adjacent []int   `json:"Adjacent"`
	Visible  []int   `json:"Visible"`
	Coords   *Coords `json:"Coords,omitempty"`
}

// LoadJSON parses a board description and materializes distances, sight,
// and room order. A structural defect (per spec.md §3 invariants) returns a
// BoardInvalid-class error listing every mistake found, not just the first.
func LoadJSON(data []byte) (*Board, error) {
	var raw boardJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("board: invalid JSON: %w", err)
	}

	b := &Board{
		Name: raw.Name,
		byID: make(map[RoomId]int, len(raw.Rooms)),
	}
	for _, rj := range raw.Rooms {
		r := Room{Id: rj.Id, Name: rj.Name}
		for _, a := range rj.Adjacent {
			r.Adjacent.Set(RoomId(a))
		}
		for _, v := range rj.Visible {
			r.Visible.Set(RoomId(v))
		}
		if rj.Coords != nil {
			r.Coords = *rj.Coords
		}
		b.byID[r.Id] = len(b.Rooms)
		b.Rooms = append(b.Rooms, r)
	}
	for _, w := range raw.Wings {
		b.Wings = append(b.Wings, Wing{Name: w.Name, RoomIds: append([]RoomId(nil), w.RoomIds...)})
	}

	if len(raw.DoctorStartRoomIds) == 0 {
		return nil, fmt.Errorf("board: %w: no doctor start rooms", errBoardInvalid)
	}
	b.DoctorID = raw.DoctorStartRoomIds[0]

	if len(raw.PlayerStartRoomIds) < 2 {
		return nil, fmt.Errorf("board: %w: need at least two player start rooms", errBoardInvalid)
	}
	b.PlayerStarts = [2]RoomId{raw.PlayerStartRoomIds[0], raw.PlayerStartRoomIds[1]}

	if len(raw.CatStartRoomIds) == 0 || len(raw.DogStartRoomIds) == 0 {
		return nil, fmt.Errorf("board: %w: need cat and dog start rooms", errBoardInvalid)
	}
	b.StrangerStarts = [2]RoomId{raw.CatStartRoomIds[0], raw.DogStartRoomIds[0]}

	if errs := b.validate(); len(errs) > 0 {
		return nil, fmt.Errorf("board: %w: %v", errBoardInvalid, errs)
	}

	b.materialize()
	return b, nil
}

var errBoardInvalid = fmt.Errorf("board invalid")

// IsBoardInvalid reports whether err was produced by a structural defect in
// the loaded board (spec.md §7's BoardInvalid error kind).
func IsBoardInvalid(err error) bool {
	return errors.Is(err, errBoardInvalid)
}

// validate checks the §3 room invariants and returns every mistake found.
func (b *Board) validate() []string {
	var errs []string
	ids := make(map[RoomId]bool, len(b.Rooms))
	for _, r := range b.Rooms {
		ids[r.Id] = true
	}
	for _, r := range b.Rooms {
		if r.Adjacent.Has(r.Id) {
			errs = append(errs, fmt.Sprintf("room %d (%s) is adjacent to itself", r.Id, r.Name))
		}
		if r.Visible.Has(r.Id) {
			errs = append(errs, fmt.Sprintf("room %d (%s) is visible to itself", r.Id, r.Name))
		}
		for _, a := range r.Adjacent.Rooms() {
			if !ids[a] {
				errs = append(errs, fmt.Sprintf("room %d (%s) adjacent to nonexistent room %d", r.Id, r.Name, a))
			}
		}
		for _, v := range r.Visible.Rooms() {
			if !ids[v] {
				errs = append(errs, fmt.Sprintf("room %d (%s) visible to nonexistent room %d", r.Id, r.Name, v))
			}
		}
	}
	for _, r := range b.Rooms {
		for _, a := range r.Adjacent.Rooms() {
			other := b.room(a)
			if other == nil || !other.Adjacent.Has(r.Id) {
				errs = append(errs, fmt.Sprintf("adjacency %d<->%d is not symmetric", r.Id, a))
			}
		}
		for _, v := range r.Visible.Rooms() {
			other := b.room(v)
			if other == nil || !other.Visible.Has(r.Id) {
				errs = append(errs, fmt.Sprintf("visibility %d<->%d is not symmetric", r.Id, v))
			}
		}
	}
	return errs
}

func (b *Board) room(id RoomId) *Room {
	i, ok := b.byID[id]
	if !ok {
		return nil
	}
	return &b.Rooms[i]
}

// Close removes every room named by the given wings (and all references to
// them) and recomputes derived structures. It returns an error if any wing
// name is unknown.
func (b *Board) Close(wingNames ...string) error {
	if len(wingNames) == 0 {
		return nil
	}
	remove := make(map[RoomId]bool)
	for _, name := range wingNames {
		found := false
		for _, w := range b.Wings {
			if w.Name == name {
				found = true
				for _, id := range w.RoomIds {
					remove[id] = true
				}
			}
		}
		if !found {
			return fmt.Errorf("board: %w: unknown wing %q", errBoardInvalid, name)
		}
	}

	var kept []Room
	for _, r := range b.Rooms {
		if remove[r.Id] {
			continue
		}
		for _, a := range r.Adjacent.Rooms() {
			if remove[a] {
				r.Adjacent.Clear(a)
			}
		}
		for _, v := range r.Visible.Rooms() {
			if remove[v] {
				r.Visible.Clear(v)
			}
		}
		kept = append(kept, r)
	}
	b.Rooms = kept
	b.byID = make(map[RoomId]int, len(kept))
	for i, r := range b.Rooms {
		b.byID[r.Id] = i
	}

	if remove[b.DoctorID] {
		return fmt.Errorf("board: %w: closed wing removes doctor start room", errBoardInvalid)
	}
	for _, id := range b.PlayerStarts {
		if remove[id] {
			return fmt.Errorf("board: %w: closed wing removes a player start room", errBoardInvalid)
		}
	}
	for _, id := range b.StrangerStarts {
		if remove[id] {
			return fmt.Errorf("board: %w: closed wing removes a stranger start room", errBoardInvalid)
		}
	}

	if errs := b.validate(); len(errs) > 0 {
		return fmt.Errorf("board: %w: %v", errBoardInvalid, errs)
	}
	b.materialize()
	return nil
}

// RoomExists reports whether id names a room on this (possibly pruned) board.
func (b *Board) RoomExists(id RoomId) bool {
	_, ok := b.byID[id]
	return ok
}

// RoomName returns id's display name, or "" if id does not exist on this
// board (for CLI/host display only, never used in rules logic).
func (b *Board) RoomName(id RoomId) string {
	r := b.room(id)
	if r == nil {
		return ""
	}
	return r.Name
}

// Distance returns the shortest-path distance between a and b, or Infinity
// if unreachable.
func (b *Board) Distance(a, bID RoomId) int {
	ai, aok := b.byID[a]
	bi, bok := b.byID[bID]
	if !aok || !bok {
		return Infinity
	}
	return b.distance[ai][bi]
}

// Sight reports whether a and b have line of sight (symmetric, reflexive).
func (b *Board) Sight(a, bID RoomId) bool {
	if a == bID {
		return true
	}
	ai, aok := b.byID[a]
	bi, bok := b.byID[bID]
	if !aok || !bok {
		return false
	}
	return b.sight[ai][bi]
}

// RoomOrder returns the stable cyclic traversal order used for doctor and
// stranger movement.
func (b *Board) RoomOrder() []RoomId {
	return b.roomOrder
}

// NextRoom indexes RoomOrder, adds delta with positive-modulo semantics, and
// returns the resulting room. Used by the doctor (delta=+1) and by
// strangers moving backward (delta=-1).
func (b *Board) NextRoom(room RoomId, delta int) RoomId {
	n := len(b.roomOrder)
	pos := -1
	for i, id := range b.roomOrder {
		if id == room {
			pos = i
			break
		}
	}
	if pos < 0 {
		return room
	}
	next := ((pos+delta)%n + n) % n
	return b.roomOrder[next]
}

// materialize (re)computes distance, sight, and room order against the
// current Rooms slice. Distances are all-pairs shortest paths via BFS from
// every room (the board is small enough that O(V*(V+E)) is negligible).
func (b *Board) materialize() {
	n := len(b.Rooms)
	b.distance = make([][]int, n)
	b.sight = make([][]bool, n)
	for i := range b.distance {
		b.distance[i] = make([]int, n)
		b.sight[i] = make([]bool, n)
		for j := range b.distance[i] {
			if i == j {
				b.distance[i][j] = 0
			} else {
				b.distance[i][j] = Infinity
			}
		}
	}

	for i, r := range b.Rooms {
		b.bfs(i, r)
	}
	for i, r := range b.Rooms {
		for _, v := range r.Visible.Rooms() {
			if j, ok := b.byID[v]; ok {
				b.sight[i][j] = true
			}
		}
		b.sight[i][i] = true
	}

	b.roomOrder = make([]RoomId, n)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(x, y int) bool { return b.Rooms[idx[x]].Id < b.Rooms[idx[y]].Id })
	for i, ri := range idx {
		b.roomOrder[i] = b.Rooms[ri].Id
	}
}

func (b *Board) bfs(startIdx int, start Room) {
	visited := make([]bool, len(b.Rooms))
	queue := []int{startIdx}
	visited[startIdx] = true
	b.distance[startIdx][startIdx] = 0

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curRoom := b.Rooms[cur]
		for _, a := range curRoom.Adjacent.Rooms() {
			j, ok := b.byID[a]
			if !ok || visited[j] {
				continue
			}
			visited[j] = true
			b.distance[startIdx][j] = b.distance[startIdx][cur] + 1
			queue = append(queue, j)
		}
	}
}

// RoomsJSON renders the rooms in the wire shape of board_rooms_json().
func (b *Board) RoomsJSON() ([]byte, error) {
	type wireRoom struct {
		Id       RoomId `json:"id"`
		Name     string `json:"name"`
		Coords   Coords `json:"coords"`
		Adjacent []int  `json:"adjacent"`
		Visible  []int  `json:"visible"`
	}
	out := make([]wireRoom, 0, len(b.Rooms))
	for _, r := range b.Rooms {
		wr := wireRoom{Id: r.Id, Name: r.Name, Coords: r.Coords}
		for _, a := range r.Adjacent.Rooms() {
			wr.Adjacent = append(wr.Adjacent, int(a))
		}
		for _, v := range r.Visible.Rooms() {
			wr.Visible = append(wr.Visible, int(v))
		}
		out = append(out, wr)
	}
	return json.Marshal(out)
}
