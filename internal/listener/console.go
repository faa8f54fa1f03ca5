package listener

import (
	"context"
	"io"
	"log/slog"
)

// ConsoleListener plays a single session on a local terminal.
type ConsoleListener struct {
	in  io.Reader
	out io.Writer
	cm  *ConnectionManager
}

func NewConsoleListener(in io.Reader, out io.Writer, cm *ConnectionManager) *ConsoleListener {
	return &ConsoleListener{
		in:  in,
		out: out,
		cm:  cm,
	}
}

// Start runs the session and returns when it ends or ctx is canceled. A
// read blocked on the terminal is abandoned on cancel.
func (l *ConsoleListener) Start(ctx context.Context) error {
	slog.InfoContext(ctx, "starting console session")

	done := make(chan struct{})
	go func() {
		defer close(done)
		l.cm.AcceptConnection(ctx, &console{Reader: l.in, Writer: l.out})
	}()

	select {
	case <-done:
	case <-ctx.Done():
	}
	return nil
}

type console struct {
	io.Reader
	io.Writer
}
