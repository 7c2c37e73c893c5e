package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadJSON_Valid(t *testing.T) {
	b, err := LoadJSON([]byte(sampleBoardJSON))
	require.NoError(t, err)
	assert.Equal(t, "Test Manor", b.Name)
	assert.Len(t, b.Rooms, 5)
	assert.Equal(t, RoomId(2), b.DoctorID)
	assert.Equal(t, [2]RoomId{0, 1}, b.PlayerStarts)
	assert.Equal(t, [2]RoomId{3, 3}, b.StrangerStarts)
}

func TestLoadJSON_AsymmetricAdjacencyRejected(t *testing.T) {
	bad := `{
	  "Name": "Bad",
	  "PlayerStartRoomIds": [0, 1],
	  "DoctorStartRoomIds": [0],
	  "CatStartRoomIds": [0],
	  "DogStartRoomIds": [1],
	  "Rooms": [
	    {"Id": 0, "Name": "A", "Adjacent": [1]},
	    {"Id": 1, "Name": "B", "Adjacent": []}
	  ]
	}`
	_, err := LoadJSON([]byte(bad))
	require.Error(t, err)
	assert.True(t, IsBoardInvalid(err))
}

func TestLoadJSON_SelfAdjacencyRejected(t *testing.T) {
	bad := `{
	  "Name": "Bad",
	  "PlayerStartRoomIds": [0, 1],
	  "DoctorStartRoomIds": [0],
	  "CatStartRoomIds": [0],
	  "DogStartRoomIds": [1],
	  "Rooms": [
	    {"Id": 0, "Name": "A", "Adjacent": [0, 1]},
	    {"Id": 1, "Name": "B", "Adjacent": [0]}
	  ]
	}`
	_, err := LoadJSON([]byte(bad))
	require.Error(t, err)
}

func TestDistance(t *testing.T) {
	b := mustLoadSampleBoard()
	assert.Equal(t, 0, b.Distance(0, 0))
	assert.Equal(t, 1, b.Distance(0, 1))
	assert.Equal(t, 2, b.Distance(0, 2))
	assert.Equal(t, 1, b.Distance(0, 4))
}

func TestSight_SymmetricAndReflexive(t *testing.T) {
	b := mustLoadSampleBoard()
	assert.True(t, b.Sight(0, 2))
	assert.True(t, b.Sight(2, 0))
	assert.True(t, b.Sight(3, 3))
	assert.False(t, b.Sight(1, 3))
}

func TestNextRoom_WrapsPositiveAndNegative(t *testing.T) {
	b := mustLoadSampleBoard()
	order := b.RoomOrder()
	require.Len(t, order, 5)
	last := order[len(order)-1]
	assert.Equal(t, order[0], b.NextRoom(last, 1))
	assert.Equal(t, last, b.NextRoom(order[0], -1))
}

func TestClose_RemovesWingAndReferences(t *testing.T) {
	b := mustLoadSampleBoard()
	err := b.Close("East Wing")
	require.NoError(t, err)
	assert.False(t, b.RoomExists(4))
	assert.Len(t, b.Rooms, 4)
	for _, r := range b.Rooms {
		assert.False(t, r.Adjacent.Has(4))
		assert.False(t, r.Visible.Has(4))
	}
}

func TestClose_UnknownWingErrors(t *testing.T) {
	b := mustLoadSampleBoard()
	err := b.Close("Nonexistent")
	require.Error(t, err)
}

func TestClose_RemovingDoctorStartIsRejected(t *testing.T) {
	b := mustLoadSampleBoard()
	// Doctor starts in room 2, which isn't in any wing; build a board whose
	// wing does cover the doctor start to exercise the guard.
	doctoredJSON := `{
	  "Name": "Doctor Wing",
	  "PlayerStartRoomIds": [0, 1],
	  "DoctorStartRoomIds": [4],
	  "CatStartRoomIds": [3],
	  "DogStartRoomIds": [2],
	  "Wings": [{"Name": "W", "RoomIds": [4]}],
	  "Rooms": [
	    {"Id": 0, "Name": "A", "Adjacent": [1, 4]},
	    {"Id": 1, "Name": "B", "Adjacent": [0, 2]},
	    {"Id": 2, "Name": "C", "Adjacent": [1, 3]},
	    {"Id": 3, "Name": "D", "Adjacent": [2, 4]},
	    {"Id": 4, "Name": "E", "Adjacent": [3, 0]}
	  ]
	}`
	b2, err := LoadJSON([]byte(doctoredJSON))
	require.NoError(t, err)
	err = b2.Close("W")
	require.Error(t, err)
	_ = b
}

func TestRoomsJSON_RoundTripsShape(t *testing.T) {
	b := mustLoadSampleBoard()
	data, err := b.RoomsJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"id":0`)
	assert.Contains(t, string(data), `"name":"Foyer"`)
}
