package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	w := Default()
	assert.Equal(t, "Realms of Venture", w.Name())
	assert.Equal(t, 4, w.RoomCount())
	assert.Equal(t, 0, w.StartRoom().ID)
}

func TestDefaultNamed(t *testing.T) {
	w := DefaultNamed("Custom Realm")
	assert.Equal(t, "Custom Realm", w.Name())
	assert.Equal(t, 4, w.RoomCount())
	assert.Equal(t, 0, w.StartRoom().ID)
}

func TestDefault_UniqueDescriptions(t *testing.T) {
	w := Default()

	seen := make(map[string]int)
	for id := 0; id < 4; id++ {
		room, ok := w.Room(id)
		require.True(t, ok, "room %d must exist", id)
		assert.NotEmpty(t, room.Description)
		if other, dup := seen[room.Description]; dup {
			t.Fatalf("rooms %d and %d share a description", other, id)
		}
		seen[room.Description] = id
	}
}

func TestDefault_StarTopology(t *testing.T) {
	w := Default()

	// Hub exits: west, east, north lead to the leaves; south loops home.
	for _, tc := range []struct {
		dir  Direction
		dest int
	}{
		{West, 1},
		{East, 2},
		{North, 3},
		{South, 0},
	} {
		dest, err := w.Navigate(0, tc.dir)
		require.NoError(t, err, "hub exit %q", tc.dir)
		assert.Equal(t, tc.dest, dest.ID, "hub exit %q", tc.dir)
	}
}

func TestDefault_LeavesReturnToHub(t *testing.T) {
	w := Default()

	returns := map[int]Direction{
		1: East,
		2: West,
		3: South,
	}

	for id, dir := range returns {
		room, ok := w.Room(id)
		require.True(t, ok)
		assert.Len(t, room.Exits, 1, "leaf %d has exactly one exit", id)

		dest, err := w.Navigate(id, dir)
		require.NoError(t, err)
		assert.Equal(t, 0, dest.ID, "leaf %d returns to the hub", id)

		// Every other direction is blocked.
		for _, other := range StandardDirections {
			if other == dir {
				continue
			}
			_, err := w.Navigate(id, other)
			assert.Error(t, err, "leaf %d direction %q", id, other)
		}
	}
}
