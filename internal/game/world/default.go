package world

import "fmt"

// DefaultName is the title of the compiled-in world.
const DefaultName = "Realms of Venture"

// Default returns the compiled-in four-room world under its standard name.
func Default() *World {
	return DefaultNamed(DefaultName)
}

// DefaultNamed returns the compiled-in four-room world under the given name,
// which appears in the greeting banner: a hub (room 0) with leaf rooms to the
// west (1), east (2), and north (3). Each leaf's only exit leads back to the
// hub. South from the hub is a self-loop: the direction is listed, but taking
// it leaves you where you started.
//
// Precondition: name must be non-empty.
// Postcondition: Returns a valid World; panics only if the compiled-in data
// is internally inconsistent.
func DefaultNamed(name string) *World {
	rooms := []*Room{
		{
			ID: 0,
			Description: "Happy rabbits hop contentedly in the center of the room" +
				" whose walls are a verdant green with large windows" +
				" looking out into a garden patio.",
			Exits: []Exit{
				{Direction: West, Target: 1},
				{Direction: East, Target: 2},
				{Direction: North, Target: 3},
				{Direction: South, Target: 0},
			},
		},
		{
			ID: 1,
			Description: "A dark pit of despair swirls red and black embers in" +
				" the center of a room painted with the dripping sorrow" +
				" of a thousand unfortunate souls.",
			Exits: []Exit{
				{Direction: East, Target: 0},
			},
		},
		{
			ID: 2,
			Description: "Arthur Dent stands forlornly in the room in his pajamas" +
				" and bunny slippers holding a towel for some reason as" +
				" a large, low rumble of construction machinery is rapidly" +
				" becoming louder",
			Exits: []Exit{
				{Direction: West, Target: 0},
			},
		},
		{
			ID: 3,
			Description: "The communal room of Seitch Tabr stretches out before you" +
				" high walls of lazgun carved caves. Stilgar approaches" +
				" and hands you your thumper and worm hooks.",
			Exits: []Exit{
				{Direction: South, Target: 0},
			},
		},
	}

	w, err := New(name, rooms, 0)
	if err != nil {
		panic(fmt.Sprintf("building default world: %v", err))
	}
	return w
}
