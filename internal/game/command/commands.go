// Package command provides the command registry, parser, and built-in command definitions.
package command

// Categories for organizing commands.
const (
	CategoryMovement      = "movement"
	CategoryCommunication = "communication"
	CategorySystem        = "system"
)

// Handler identifiers mapping commands to session operations.
const (
	HandlerMove = "move"
	HandlerSay  = "say"
	HandlerQuit = "quit"
)

// Command defines a player-invocable command.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Help is the short help text for the command.
	Help string
	// Category groups the command (movement, communication, system).
	Category string
	// Handler maps to the session operation that executes the command.
	Handler string
}

// BuiltinCommands returns all built-in commands for the game.
// The wire protocol recognizes exactly these three command words; no aliases
// are registered so that every other first token is an invalid command.
func BuiltinCommands() []Command {
	return []Command{
		{Name: "move", Help: "Move in a direction (move <north|south|east|west>)", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "say", Help: "Say something out loud", Category: CategoryCommunication, Handler: HandlerSay},
		{Name: "quit", Help: "Disconnect from the game", Category: CategorySystem, Handler: HandlerQuit},
	}
}
