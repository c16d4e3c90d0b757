package world

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlWorldFile is the top-level YAML structure for world files.
type yamlWorldFile struct {
	World yamlWorld `yaml:"world"`
}

// yamlWorld is the YAML representation of a world.
type yamlWorld struct {
	Name      string     `yaml:"name"`
	StartRoom int        `yaml:"start_room"`
	Rooms     []yamlRoom `yaml:"rooms"`
}

// yamlRoom is the YAML representation of a room.
type yamlRoom struct {
	ID          int        `yaml:"id"`
	Description string     `yaml:"description"`
	Exits       []yamlExit `yaml:"exits"`
}

// yamlExit is the YAML representation of an exit.
type yamlExit struct {
	Direction string `yaml:"direction"`
	Target    int    `yaml:"target"`
}

// LoadFromFile reads and validates a world YAML file.
//
// Precondition: path must point to a valid YAML world file.
// Postcondition: Returns a validated World or a non-nil error.
func LoadFromFile(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading world file %s: %w", path, err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses and validates a world from YAML bytes.
//
// Precondition: data must be valid YAML conforming to the world schema.
// Postcondition: Returns a validated World or a non-nil error.
func LoadFromBytes(data []byte) (*World, error) {
	var file yamlWorldFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing world YAML: %w", err)
	}

	rooms := make([]*Room, 0, len(file.World.Rooms))
	for _, yr := range file.World.Rooms {
		room := &Room{
			ID:          yr.ID,
			Description: strings.TrimSpace(yr.Description),
		}
		for _, ye := range yr.Exits {
			room.Exits = append(room.Exits, Exit{
				Direction: Direction(ye.Direction),
				Target:    ye.Target,
			})
		}
		rooms = append(rooms, room)
	}

	w, err := New(file.World.Name, rooms, file.World.StartRoom)
	if err != nil {
		return nil, fmt.Errorf("validating world: %w", err)
	}
	return w, nil
}
