package engine

import (
	"encoding/json"

	"github.com/jmegner/KillDoctorLuckyWeb-sub000/board"
)

// ringBoard builds a 6-room ring (0-1-2-3-4-5-0), Doctor@0, Player1@1,
// Player2@2, Stranger1@3, Stranger2@4, matching the helper used by the
// rules and generator packages.
func ringBoard() *board.Board {
	type roomJSON struct {
		Id       int    `json:"Id"`
		Name     string `json:"Name"`
		Adjacent []int  `json:"Adjacent"`
	}
	rooms := make([]roomJSON, 6)
	for i := 0; i < 6; i++ {
		rooms[i] = roomJSON{Id: i, Name: "room", Adjacent: []int{(i + 5) % 6, (i + 1) % 6}}
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
