// Package handlers bridges transport connections to game sessions.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"

	"go.uber.org/zap"

	"github.com/cory-johannsen/venture/internal/frontend/tcp"
	"github.com/cory-johannsen/venture/internal/game/command"
	"github.com/cory-johannsen/venture/internal/game/session"
	"github.com/cory-johannsen/venture/internal/game/world"
)

// GameHandler runs the game loop for each accepted connection. The world and
// registry are immutable shared lookups; all mutable state lives in the
// per-connection Session.
type GameHandler struct {
	world    *world.World
	registry *command.Registry
	logger   *zap.Logger
}

// NewGameHandler creates a handler serving the given world.
//
// Precondition: w, registry, and logger must be non-nil.
func NewGameHandler(w *world.World, registry *command.Registry, logger *zap.Logger) *GameHandler {
	return &GameHandler{
		world:    w,
		registry: registry,
		logger:   logger,
	}
}

// HandleSession drives one client from greeting to termination:
// greet, emit, then repeat read-route-emit until the session terminates.
// The greeting is always emitted before the first read.
//
// A peer that disconnects mid-session ends the loop gracefully rather than
// crashing the server.
//
// Postcondition: Returns nil on clean termination or peer disconnect, or a
// non-nil error on transport failure.
func (h *GameHandler) HandleSession(ctx context.Context, conn *tcp.Conn) error {
	sess := session.New(h.world, h.registry, h.logger)
	log := h.logger.With(
		zap.String("session_id", sess.ID()),
		zap.String("remote_addr", conn.RemoteAddr().String()),
	)

	sess.Greet()
	if err := conn.WriteString(sess.Payload()); err != nil {
		return fmt.Errorf("sending greeting: %w", err)
	}

	for !sess.Terminated() {
		select {
		case <-ctx.Done():
			log.Info("session cancelled")
			return ctx.Err()
		default:
		}

		line, err := conn.ReadLine()
		if err != nil {
			if isDisconnect(err) {
				log.Info("client disconnected", zap.Int("room", sess.Room()))
				return nil
			}
			return fmt.Errorf("reading command: %w", err)
		}

		sess.Route(line)
		if err := conn.WriteString(sess.Payload()); err != nil {
			return fmt.Errorf("sending response: %w", err)
		}
	}

	log.Info("session terminated", zap.Int("room", sess.Room()))
	return nil
}

// isDisconnect reports whether err indicates the peer or acceptor closed the
// connection, as opposed to an unexpected transport fault.
func isDisconnect(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, net.ErrClosed) ||
		errors.Is(err, os.ErrDeadlineExceeded)
}
