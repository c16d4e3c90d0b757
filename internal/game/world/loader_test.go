package world

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWorldYAML = `
world:
  name: Test Realm
  start_room: 0
  rooms:
    - id: 0
      description: >-
        A round hub with doors on every wall.
      exits:
        - direction: west
          target: 1
        - direction: south
          target: 0
    - id: 1
      description: >-
        A narrow western chamber.
      exits:
        - direction: east
          target: 0
`

func TestLoadFromBytes(t *testing.T) {
	w, err := LoadFromBytes([]byte(testWorldYAML))
	require.NoError(t, err)

	assert.Equal(t, "Test Realm", w.Name())
	assert.Equal(t, 2, w.RoomCount())
	assert.Equal(t, 0, w.StartRoom().ID)

	room, ok := w.Room(1)
	require.True(t, ok)
	assert.Equal(t, "A narrow western chamber.", room.Description)

	dest, err := w.Navigate(0, West)
	require.NoError(t, err)
	assert.Equal(t, 1, dest.ID)

	// Self-loop exits survive the round trip.
	dest, err = w.Navigate(0, South)
	require.NoError(t, err)
	assert.Equal(t, 0, dest.ID)
}

func TestLoadFromBytes_BadYAML(t *testing.T) {
	_, err := LoadFromBytes([]byte("world: [not a mapping"))
	assert.Error(t, err)
}

func TestLoadFromBytes_InvalidWorld(t *testing.T) {
	_, err := LoadFromBytes([]byte(`
world:
  name: Broken Realm
  start_room: 5
  rooms:
    - id: 0
      description: The only room.
`))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "start room")
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testWorldYAML), 0644))

	w, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, w.RoomCount())
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/world.yaml")
	assert.Error(t, err)
}

func TestLoadShippedWorldMatchesDefault(t *testing.T) {
	w, err := LoadFromFile(filepath.Join("..", "..", "..", "content", "world.yaml"))
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.Name(), w.Name())
	assert.Equal(t, def.RoomCount(), w.RoomCount())
	for id := 0; id < def.RoomCount(); id++ {
		got, ok := w.Room(id)
		require.True(t, ok, "room %d", id)
		want, _ := def.Room(id)
		assert.Equal(t, want.Description, got.Description, "room %d description", id)
	}
}
