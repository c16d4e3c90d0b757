package tcp

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/venture/internal/config"
)

// SessionHandler processes a connected client session.
// Implementations handle the command loop for a single client.
type SessionHandler interface {
	HandleSession(ctx context.Context, conn *Conn) error
}

// Acceptor listens for TCP connections and dispatches each to a
// SessionHandler on its own goroutine with no shared session state.
// When cfg.Once is set the acceptor shuts down after its first session
// completes, giving the process a connect-serve-exit lifetime.
type Acceptor struct {
	cfg     config.ServerConfig
	handler SessionHandler
	logger  *zap.Logger

	listener net.Listener
	wg       sync.WaitGroup
	quit     chan struct{}
	stopOnce sync.Once
	mu       sync.Mutex
	running  bool
}

// NewAcceptor creates an acceptor with the given configuration.
//
// Precondition: handler and logger must be non-nil.
// Postcondition: Returns an Acceptor ready to be started with ListenAndServe.
func NewAcceptor(cfg config.ServerConfig, handler SessionHandler, logger *zap.Logger) *Acceptor {
	return &Acceptor{
		cfg:     cfg,
		handler: handler,
		logger:  logger,
		quit:    make(chan struct{}),
	}
}

// ListenAndServe starts the TCP listener and accepts connections until Stop
// is called (or, in once mode, until the first session finishes). This
// method blocks until the acceptor is stopped.
//
// Precondition: The acceptor must not already be running.
// Postcondition: The listener is closed when this method returns.
func (a *Acceptor) ListenAndServe() error {
	start := time.Now()

	listener, err := net.Listen("tcp", a.cfg.Addr())
	if err != nil {
		return fmt.Errorf("listening on %s: %w", a.cfg.Addr(), err)
	}

	a.mu.Lock()
	a.listener = listener
	a.running = true
	a.mu.Unlock()

	a.logger.Info("acceptor listening",
		zap.String("addr", listener.Addr().String()),
		zap.Bool("once", a.cfg.Once),
		zap.Duration("startup", time.Since(start)),
	)

	for {
		conn, err := listener.Accept()
		if err != nil {
			select {
			case <-a.quit:
				a.wg.Wait()
				return nil
			default:
				a.logger.Error("accepting connection", zap.Error(err))
				continue
			}
		}

		a.wg.Add(1)
		go a.handleConn(conn)
	}
}

// handleConn serves a single TCP connection with a fresh session.
func (a *Acceptor) handleConn(raw net.Conn) {
	defer a.wg.Done()
	start := time.Now()
	addr := raw.RemoteAddr().String()

	a.logger.Info("client connected", zap.String("remote_addr", addr))

	conn := NewConn(raw, a.cfg.ReadTimeout, a.cfg.WriteTimeout)
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// On shutdown, cancel the session context and close the connection so a
	// read blocked with no deadline unblocks with net.ErrClosed.
	go func() {
		select {
		case <-a.quit:
			cancel()
			conn.Close()
		case <-ctx.Done():
		}
	}()

	if err := a.handler.HandleSession(ctx, conn); err != nil {
		a.logger.Debug("session ended",
			zap.String("remote_addr", addr),
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
	} else {
		a.logger.Info("session ended cleanly",
			zap.String("remote_addr", addr),
			zap.Duration("duration", time.Since(start)),
		)
	}

	if a.cfg.Once {
		a.closeListener()
	}
}

// closeListener signals shutdown and closes the listener without waiting for
// in-flight sessions. Safe to call from a session goroutine.
func (a *Acceptor) closeListener() {
	a.stopOnce.Do(func() {
		close(a.quit)
		a.mu.Lock()
		if a.listener != nil {
			a.listener.Close()
		}
		a.running = false
		a.mu.Unlock()
	})
}

// Stop gracefully stops the acceptor, closing the listener and waiting for
// all active sessions to finish.
//
// Postcondition: All connections are closed and goroutines have exited.
func (a *Acceptor) Stop() {
	a.closeListener()
	a.wg.Wait()
	a.logger.Info("acceptor stopped")
}

// Addr returns the actual listening address, or empty string if not yet listening.
func (a *Acceptor) Addr() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.listener != nil {
		return a.listener.Addr().String()
	}
	return ""
}

// IsRunning returns whether the acceptor is currently accepting connections.
func (a *Acceptor) IsRunning() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}
