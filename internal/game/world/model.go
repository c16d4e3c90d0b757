// Package world provides the game world model: rooms, exits, and directions.
package world

import (
	"fmt"
	"strings"
	"sync"
)

// Direction represents a compass direction.
type Direction string

// The four compass directions used by the venture world.
const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
)

// StandardDirections contains the four compass directions.
var StandardDirections = []Direction{North, South, East, West}

// IsStandard reports whether d is one of the four compass directions.
func (d Direction) IsStandard() bool {
	for _, sd := range StandardDirections {
		if d == sd {
			return true
		}
	}
	return false
}

// Normalize converts raw user input into a Direction: lowercased with
// surrounding whitespace and line terminators removed.
func Normalize(raw string) Direction {
	return Direction(strings.ToLower(strings.TrimSpace(raw)))
}

// Exit represents a passage from one room to another. A self-loop
// (Target equal to the owning room) is legal and models a listed
// direction that leads nowhere new.
type Exit struct {
	// Direction is the compass direction of the passage.
	Direction Direction
	// Target is the ID of the destination room.
	Target int
}

// Room represents a location in the game world.
type Room struct {
	// ID uniquely identifies this room within the world.
	ID int
	// Description is the room description shown to players. Descriptions
	// are unique across the world.
	Description string
	// Exits lists all passages leading out of this room.
	Exits []Exit
}

// ExitForDirection returns the exit in the given direction, if one exists.
//
// Postcondition: Returns (exit, true) if found, or (Exit{}, false) otherwise.
func (r *Room) ExitForDirection(dir Direction) (Exit, bool) {
	for _, e := range r.Exits {
		if e.Direction == dir {
			return e, true
		}
	}
	return Exit{}, false
}

// World provides thread-safe access to a fixed room graph.
type World struct {
	mu    sync.RWMutex
	name  string
	rooms map[int]*Room
	start int
}

// New creates a World from the given rooms.
//
// Precondition: rooms must be non-empty and start must identify one of them.
// Postcondition: Returns a World with all invariants checked: unique room IDs,
// non-empty unique descriptions, and every exit target resolving to a room.
func New(name string, rooms []*Room, start int) (*World, error) {
	if name == "" {
		return nil, fmt.Errorf("world name must not be empty")
	}
	if len(rooms) == 0 {
		return nil, fmt.Errorf("world %q: must contain at least one room", name)
	}

	w := &World{
		name:  name,
		rooms: make(map[int]*Room, len(rooms)),
		start: start,
	}

	descriptions := make(map[string]int, len(rooms))
	for _, r := range rooms {
		if _, exists := w.rooms[r.ID]; exists {
			return nil, fmt.Errorf("world %q: duplicate room ID %d", name, r.ID)
		}
		if r.Description == "" {
			return nil, fmt.Errorf("world %q: room %d: description must not be empty", name, r.ID)
		}
		if other, exists := descriptions[r.Description]; exists {
			return nil, fmt.Errorf("world %q: rooms %d and %d share a description", name, other, r.ID)
		}
		descriptions[r.Description] = r.ID
		w.rooms[r.ID] = r
	}

	for _, r := range w.rooms {
		for _, exit := range r.Exits {
			if _, ok := w.rooms[exit.Target]; !ok {
				return nil, fmt.Errorf("world %q: room %d: exit %q targets unknown room %d",
					name, r.ID, exit.Direction, exit.Target)
			}
		}
	}

	if _, ok := w.rooms[start]; !ok {
		return nil, fmt.Errorf("world %q: start room %d not found", name, start)
	}

	return w, nil
}

// Name returns the world's display name, used in the greeting banner.
func (w *World) Name() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.name
}

// Room returns the room with the given ID.
//
// Postcondition: Returns (room, true) if found, or (nil, false) otherwise.
func (w *World) Room(id int) (*Room, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	r, ok := w.rooms[id]
	return r, ok
}

// StartRoom returns the room new sessions begin in.
func (w *World) StartRoom() *Room {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.rooms[w.start]
}

// RoomCount returns the total number of rooms.
func (w *World) RoomCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.rooms)
}

// Navigate resolves movement from a room in a direction.
//
// Precondition: fromID must exist in the world.
// Postcondition: Returns the destination room (which may be the origin, for
// self-loop exits), or an error if the exit doesn't exist.
func (w *World) Navigate(fromID int, dir Direction) (*Room, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	from, ok := w.rooms[fromID]
	if !ok {
		return nil, fmt.Errorf("room %d not found", fromID)
	}

	exit, ok := from.ExitForDirection(dir)
	if !ok {
		return nil, fmt.Errorf("no exit %q from room %d", dir, fromID)
	}

	target, ok := w.rooms[exit.Target]
	if !ok {
		return nil, fmt.Errorf("exit %q from room %d targets unknown room %d", dir, fromID, exit.Target)
	}

	return target, nil
}
