package command

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"log/slog"
	"os"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-maze/internal/listener"
	"github.com/pixil98/go-service"
	"golang.org/x/crypto/ssh"
)

// ListenerType is the protocol a listener serves sessions over.
type ListenerType int

const (
	ListenerTypeTelnet ListenerType = iota
	ListenerTypeSSH
)

var listenerTypeNames = map[ListenerType]string{
	ListenerTypeTelnet: "telnet",
	ListenerTypeSSH:    "ssh",
}

func (lt *ListenerType) UnmarshalText(text []byte) error {
	for t, name := range listenerTypeNames {
		if name == string(text) {
			*lt = t
			return nil
		}
	}
	return fmt.Errorf("unknown listener protocol %q", text)
}

func (lt ListenerType) String() string {
	if name, ok := listenerTypeNames[lt]; ok {
		return name
	}
	return fmt.Sprintf("listener(%d)", int(lt))
}

// ListenerConfig describes one network listener. Every connection it accepts
// plays its own game.
type ListenerConfig struct {
	Protocol    ListenerType `json:"protocol"`
	Port        uint16       `json:"port"`
	HostKeyPath string       `json:"host_key_path,omitempty"`
}

func (cl *ListenerConfig) validate() error {
	el := errors.NewErrorList()
	if cl.Port == 0 {
		el.Add(fmt.Errorf("%s port must be set to a positive integer", cl.Protocol))
	}
	if cl.HostKeyPath != "" && cl.Protocol != ListenerTypeSSH {
		el.Add(fmt.Errorf("host_key_path is only used by ssh listeners"))
	}
	return el.Err()
}

func (cl *ListenerConfig) BuildListener(cm *listener.ConnectionManager) (service.Worker, error) {
	if cl.Protocol == ListenerTypeTelnet {
		return listener.NewTelnetListener(cl.Port, cm), nil
	}
	if cl.Protocol != ListenerTypeSSH {
		return nil, fmt.Errorf("unknown listener protocol %s", cl.Protocol)
	}

	hostKey, err := cl.loadOrGenerateHostKey()
	if err != nil {
		return nil, fmt.Errorf("ssh host key for port %d: %w", cl.Port, err)
	}
	return listener.NewSshListener(cl.Port, cm, hostKey), nil
}

// loadOrGenerateHostKey reads the configured host key. Without one, a fresh
// ed25519 key is made, so clients see a new host key on every start.
func (cl *ListenerConfig) loadOrGenerateHostKey() (ssh.Signer, error) {
	if cl.HostKeyPath == "" {
		slog.Warn("ssh listener has no host_key_path, using an ephemeral key", "port", cl.Port)
		return ephemeralHostKey()
	}

	pemBytes, err := os.ReadFile(cl.HostKeyPath)
	if err != nil {
		return nil, fmt.Errorf("reading host key %q: %w", cl.HostKeyPath, err)
	}
	signer, err := ssh.ParsePrivateKey(pemBytes)
	if err != nil {
		return nil, fmt.Errorf("parsing host key %q: %w", cl.HostKeyPath, err)
	}
	return signer, nil
}

func ephemeralHostKey() (ssh.Signer, error) {
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generating host key: %w", err)
	}
	return ssh.NewSignerFromKey(key)
}
