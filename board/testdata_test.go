package board

// sampleBoardJSON is a small, self-contained board used across board_test.go,
// turn_test.go, and fingerprint_test.go: five rooms in a ring (0-1-2-3-4-0)
// with room 2 visible from room 4 across the hall, one closeable wing.
const sampleBoardJSON = `{
  "Name": "Test Manor",
  "PlayerStartRoomIds": [0, 1],
  "DoctorStartRoomIds": [2],
  "CatStartRoomIds": [3],
  "DogStartRoomIds": [3],
  "Wings": [
    {"Name": "East Wing", "RoomIds": [4]}
  ],
  "Rooms": [
    {"Id": 0, "Name": "Foyer", "Adjacent": [1, 4], "Visible": [2]},
    {"Id": 1, "Name": "Parlor", "Adjacent": [0, 2]},
    {"Id": 2, "Name": "Library", "Adjacent": [1, 3], "Visible": [0, 4]},
    {"Id": 3, "Name": "Study", "Adjacent": [2, 4]},
    {"Id": 4, "Name": "Garden", "Adjacent": [3, 0], "Visible": [2]}
  ]
}`

func mustLoadSampleBoard() *Board {
	b, err := LoadJSON([]byte(sampleBoardJSON))
	if err != nil {
		panic(err)
	}
	return b
}
