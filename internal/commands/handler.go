package commands

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/pixil98/go-maze/internal/game"
)

// Handler dispatches lines of player input to registered commands.
type Handler struct {
	commands map[string]*Command
}

// NewHandler creates a handler with the built-in commands registered.
func NewHandler() *Handler {
	h := &Handler{
		commands: make(map[string]*Command),
	}
	for _, c := range builtins(h) {
		if err := h.Register(c); err != nil {
			panic(err)
		}
	}
	return h
}

// Register adds a command. Names must be unique.
func (h *Handler) Register(c *Command) error {
	if c == nil {
		return fmt.Errorf("command cannot be nil")
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if _, exists := h.commands[c.Name]; exists {
		return fmt.Errorf("command %q already registered", c.Name)
	}
	h.commands[c.Name] = c
	return nil
}

// Commands returns the registered commands sorted by name.
func (h *Handler) Commands() []*Command {
	out := make([]*Command, 0, len(h.commands))
	for _, c := range h.commands {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b *Command) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// Exec parses line and runs the matching command against state. A blank
// line does nothing. An unknown verb returns ErrUnknownCommand.
func (h *Handler) Exec(ctx context.Context, state *game.GameState, line string) (*CommandContext, error) {
	verb, arg := Parse(line)
	cmdCtx := &CommandContext{State: state, Verb: verb, Arg: arg}
	if verb == "" {
		return cmdCtx, nil
	}

	c, ok := h.commands[verb]
	if !ok {
		return cmdCtx, ErrUnknownCommand
	}
	if err := c.Run(ctx, cmdCtx); err != nil {
		return cmdCtx, fmt.Errorf("running %s: %w", verb, err)
	}
	return cmdCtx, nil
}
