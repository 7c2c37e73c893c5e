package rules

import (
	"encoding/json"

	"github.com/jmegner/KillDoctorLuckyWeb-sub000/board"
)

// ringBoard builds a simple 6-room ring (0-1-2-3-4-5-0) with no visibility
// pairs except the ones passed in `sightPairs` (each entry {a,b} adds a
// symmetric sight edge). Doctor starts in room 0, Player1 in 1, Player2 in
// 2, Stranger1 in 3, Stranger2 in 4; room 5 is spare, reachable only
// through the ring.
func ringBoard(sightPairs [][2]int) *board.Board {
	type roomJSON struct {
		Id       int   `json:"Id"`
		Name     string `json:"Name"`
		Adjacent []int `json:"Adjacent"`
		Visible  []int `json:"Visible"`
	}
	vis := make(map[int][]int)
	for _, p := range sightPairs {
		vis[p[0]] = append(vis[p[0]], p[1])
		vis[p[1]] = append(vis[p[1]], p[0])
	}

	rooms := make([]roomJSON, 6)
	for i := 0; i < 6; i++ {
		rooms[i] = roomJSON{
			Id:       i,
			Name:     "room",
			Adjacent: []int{(i + 5) % 6, (i + 1) % 6},
			Visible:  vis[i],
		}
	}

	raw := struct {
		Name               string     `json:"Name"`
		PlayerStartRoomIds []int      `json:"PlayerStartRoomIds"`
		DoctorStartRoomIds []int      `json:"DoctorStartRoomIds"`
		CatStartRoomIds    []int      `json:"CatStartRoomIds"`
		DogStartRoomIds    []int      `json:"DogStartRoomIds"`
		Rooms              []roomJSON `json:"Rooms"`
	}{
		Name:               "Ring",
		PlayerStartRoomIds: []int{1, 2},
		DoctorStartRoomIds: []int{0},
		CatStartRoomIds:    []int{3},
		DogStartRoomIds:    []int{4},
		Rooms:              rooms,
	}

	data, err := json.Marshal(raw)
	if err != nil {
		panic(err)
	}
	b, err := board.LoadJSON(data)
	if err != nil {
		panic(err)
	}
	return b
}
