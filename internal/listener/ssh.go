package listener

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"golang.org/x/crypto/ssh"
)

const sshBanner = "Welcome to the maze. No password is needed.\n"

// SshListener accepts ssh connections without authentication and plays one
// session per shell channel.
type SshListener struct {
	port   uint16
	cm     *ConnectionManager
	config *ssh.ServerConfig
}

func NewSshListener(port uint16, cm *ConnectionManager, hostKey ssh.Signer) *SshListener {
	config := &ssh.ServerConfig{
		NoClientAuth: true,
		BannerCallback: func(ssh.ConnMetadata) string {
			return sshBanner
		},
	}
	config.AddHostKey(hostKey)

	return &SshListener{
		port:   port,
		cm:     cm,
		config: config,
	}
}

func (l *SshListener) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", l.port))
	if err != nil {
		return fmt.Errorf("listening on port %d: %w", l.port, err)
	}
	slog.InfoContext(ctx, "listening for ssh", "port", l.port)

	return l.serve(ctx, ln)
}

// serve accepts connections from ln until ctx is canceled, then waits for
// every open connection to finish.
func (l *SshListener) serve(ctx context.Context, ln net.Listener) error {
	connCtx, cancelConns := context.WithCancel(context.Background())
	defer cancelConns()
	var wg sync.WaitGroup

	stopClose := context.AfterFunc(ctx, func() { ln.Close() })
	defer stopClose()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				cancelConns()
				wg.Wait()
				return nil
			}
			slog.ErrorContext(ctx, "accepting ssh connection", "error", err)
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			l.handleConnection(connCtx, conn)
		}()
	}
}

func (l *SshListener) handleConnection(ctx context.Context, conn net.Conn) {
	defer conn.Close()
	log := slog.Default().With("listener", "ssh", "remote", conn.RemoteAddr().String())

	sshConn, chans, reqs, err := ssh.NewServerConn(conn, l.config)
	if err != nil {
		log.ErrorContext(ctx, "ssh handshake", "error", err)
		return
	}
	defer sshConn.Close()
	log.InfoContext(ctx, "ssh connection established", "user", sshConn.User())

	// Closing the connection on shutdown ends the channel loop below and
	// unblocks a session waiting for input.
	stopClose := context.AfterFunc(ctx, func() { sshConn.Close() })
	defer stopClose()

	go ssh.DiscardRequests(reqs)

	for newChan := range chans {
		if newChan.ChannelType() != "session" {
			newChan.Reject(ssh.UnknownChannelType, "unknown channel type")
			continue
		}

		ch, requests, err := newChan.Accept()
		if err != nil {
			log.ErrorContext(ctx, "accepting ssh channel", "error", err)
			continue
		}

		if waitForShell(ctx, requests) {
			l.cm.AcceptConnection(ctx, newCRLFReadWriter(ch))
		}
		ch.Close()
	}
}

// waitForShell answers channel requests until the client asks for a shell.
// Clients do not send input before the shell request is accepted. A pty is
// refused so the client keeps local echo and line editing.
func waitForShell(ctx context.Context, requests <-chan *ssh.Request) bool {
	shell := make(chan struct{})
	go func() {
		started := false
		for req := range requests {
			ok := req.Type == "shell" && !started
			if req.WantReply {
				req.Reply(ok, nil)
			}
			if ok {
				started = true
				close(shell)
			}
		}
	}()

	select {
	case <-shell:
		return true
	case <-ctx.Done():
		return false
	}
}
