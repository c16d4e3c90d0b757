// Package session implements the connection-scoped game session state machine.
//
// A Session owns one client's interaction from greeting to termination: the
// current room, the single pending response body, and the lifecycle state.
// It consumes one command line per cycle and always produces exactly one
// response; protocol-level mistakes are answered, never raised.
package session

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/venture/internal/game/command"
	"github.com/cory-johannsen/venture/internal/game/world"
)

// State identifies where a session is in its lifecycle.
type State int

// Session lifecycle states. A session is created in StateGreeting, loops in
// StateAwaitingCommand, and ends in StateTerminated.
const (
	StateGreeting State = iota
	StateAwaitingCommand
	StateTerminated
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateGreeting:
		return "greeting"
	case StateAwaitingCommand:
		return "awaiting_command"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// CantGoThatWay is the response body for an invalid move. An invalid move is
// a normal, user-visible outcome, not an error.
const CantGoThatWay = "Oops! You can't go that way"

// Farewell is the final response body sent before the session closes.
const Farewell = "Goodbye!"

// Session drives one client's game from connection to termination. A Session
// is strictly sequential and never shared between connections; no operation
// is safe for concurrent use.
type Session struct {
	id       string
	world    *world.World
	registry *command.Registry
	logger   *zap.Logger

	room   int
	output string
	state  State
}

// New creates a Session positioned at the world's start room.
//
// Precondition: w, registry, and logger must be non-nil.
// Postcondition: Returns a Session in StateGreeting; Greet must be called
// before the first command is routed.
func New(w *world.World, registry *command.Registry, logger *zap.Logger) *Session {
	id := uuid.NewString()
	return &Session{
		id:       id,
		world:    w,
		registry: registry,
		logger:   logger.With(zap.String("session_id", id)),
		room:     w.StartRoom().ID,
		state:    StateGreeting,
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Room returns the ID of the room the session currently occupies.
func (s *Session) Room() int { return s.room }

// State returns the session's lifecycle state.
func (s *Session) State() State { return s.state }

// Terminated reports whether the session has ended.
func (s *Session) Terminated() bool { return s.state == StateTerminated }

// Output returns the single pending response body. Each operation fully
// replaces it; nothing ever appends.
func (s *Session) Output() string { return s.output }

// Greet produces the welcome banner and the start room's description, and
// moves the session into its command loop.
//
// Precondition: The session must still be in StateGreeting.
// Postcondition: Output holds the greeting; state is StateAwaitingCommand.
func (s *Session) Greet() {
	if s.state != StateGreeting {
		s.logger.Warn("greet called twice", zap.Stringer("state", s.state))
		return
	}

	start := s.world.StartRoom()
	s.room = start.ID
	s.output = fmt.Sprintf("Welcome to %s!\n %s", s.world.Name(), start.Description)
	s.state = StateAwaitingCommand

	s.logger.Info("session greeted", zap.Int("room", s.room))
}

// Route examines one input line and performs the matching operation on
// behalf of the client. Exactly one dispatch occurs per call, and every
// dispatch ends in a write to the output value; Route never fails.
//
// Dispatch is by first token (see command.Parse): quit terminates, say
// echoes its argument, move takes its first argument word as a direction,
// and anything else is an invalid command carrying the original line.
func (s *Session) Route(line string) {
	parsed := command.Parse(line)

	cmd, ok := s.registry.Resolve(parsed.Command)
	if !ok {
		s.InvalidCommand(line)
		return
	}

	switch cmd.Handler {
	case command.HandlerQuit:
		s.Quit("exit requested by user")
	case command.HandlerSay:
		s.Say(parsed.Arg)
	case command.HandlerMove:
		dir := parsed.Arg
		if idx := strings.IndexByte(dir, ' '); idx >= 0 {
			// Extra words after the direction are discarded.
			dir = dir[:idx]
		}
		s.Move(dir)
	default:
		s.InvalidCommand(line)
	}
}

// Move attempts to leave the current room in the given direction.
//
// A valid exit transitions the session and sets the output to the
// destination's description. The hub's south exit is a self-loop, so moving
// south from room 0 re-emits room 0's description. An unknown direction
// leaves the room unchanged and answers CantGoThatWay.
func (s *Session) Move(argument string) {
	dir := world.Normalize(argument)

	dest, err := s.world.Navigate(s.room, dir)
	if err != nil {
		s.logger.Debug("blocked move",
			zap.Int("room", s.room),
			zap.String("direction", string(dir)),
		)
		s.output = CantGoThatWay
		return
	}

	s.logger.Debug("move",
		zap.Int("from", s.room),
		zap.Int("to", dest.ID),
		zap.String("direction", string(dir)),
	)
	s.room = dest.ID
	s.output = dest.Description
}

// Say echoes the client's utterance. The argument is not validated or
// filtered in any way.
func (s *Session) Say(argument string) {
	s.output = fmt.Sprintf("\nYou say, \"%s\"", strings.Trim(argument, "\r\n"))
}

// InvalidCommand answers an unrecognized line with an error message carrying
// the original input. The session state is otherwise unchanged.
func (s *Session) InvalidCommand(message string) {
	s.logger.Debug("invalid command", zap.String("input", message))
	s.output = fmt.Sprintf("\nError: %s", strings.Trim(message, "\r\n"))
}

// Quit ends the session. The reason is logged only; the client always sees
// the same farewell.
//
// Postcondition: Output is Farewell and the session is terminated.
func (s *Session) Quit(reason string) {
	s.logger.Info("session quitting", zap.String("reason", reason), zap.Int("room", s.room))
	s.output = "\n" + Farewell
	s.state = StateTerminated
}

// Payload frames the pending output as a wire message: a leading blank line,
// the "OK! " prefix, the newline-trimmed body, and a trailing newline. This
// is the only place a response leaves the session.
//
// Postcondition: Stripping the "\nOK! " prefix and trailing newline from the
// result yields exactly the newline-trimmed output value.
func (s *Session) Payload() string {
	return fmt.Sprintf("\nOK! %s\n", strings.Trim(s.output, "\n"))
}
