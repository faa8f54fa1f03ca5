package listener

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"syscall"

	"github.com/iammegalith/telnet"
)

// TelnetListener plays one session per telnet connection.
type TelnetListener struct {
	port uint16
	cm   *ConnectionManager
}

func NewTelnetListener(port uint16, cm *ConnectionManager) *TelnetListener {
	return &TelnetListener{
		port: port,
		cm:   cm,
	}
}

func (l *TelnetListener) Start(ctx context.Context) error {
	sessions := newTelnetSessions(l.cm)
	svr := telnet.NewServer(fmt.Sprintf(":%d", l.port), sessions)

	served := make(chan struct{})
	defer close(served)
	go func() {
		select {
		case <-ctx.Done():
			svr.Stop()
			sessions.shutdown()
		case <-served:
		}
	}()

	slog.InfoContext(ctx, "listening for telnet", "port", l.port)
	err := svr.ListenAndServe()
	switch {
	case errors.Is(err, syscall.EADDRINUSE):
		return fmt.Errorf("telnet port %d is already in use", l.port)
	case err != nil:
		return fmt.Errorf("serving telnet on port %d: %w", l.port, err)
	}
	return nil
}

// telnetSessions tracks the sessions started by a telnet server so that
// shutdown can end them all and wait for them.
type telnetSessions struct {
	cm     *ConnectionManager
	log    *slog.Logger
	ctx    context.Context
	cancel context.CancelFunc
	active sync.WaitGroup
}

func newTelnetSessions(cm *ConnectionManager) *telnetSessions {
	// Sessions outlive the listener's context until shutdown cancels them.
	ctx, cancel := context.WithCancel(context.Background())
	return &telnetSessions{
		cm:     cm,
		log:    slog.Default().With("listener", "telnet"),
		ctx:    ctx,
		cancel: cancel,
	}
}

func (s *telnetSessions) HandleTelnet(conn *telnet.Connection) {
	s.active.Add(1)
	defer s.active.Done()

	// Closing the connection unblocks a session waiting for input.
	closed := make(chan struct{})
	stop := context.AfterFunc(s.ctx, func() {
		conn.Close()
		close(closed)
	})

	s.cm.AcceptConnection(s.ctx, conn)

	if !stop() {
		<-closed
		return
	}
	if err := conn.Close(); err != nil {
		s.log.Error("closing telnet connection", "error", err)
	}
}

func (s *telnetSessions) shutdown() {
	s.cancel()
	s.active.Wait()
}
