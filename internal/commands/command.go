package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/pixil98/go-maze/internal/game"
)

// CommandFunc runs one command against the game held by cmdCtx.
type CommandFunc func(ctx context.Context, cmdCtx *CommandContext) error

// Command is a verb the player can type.
type Command struct {
	Name        string
	Usage       string
	Description string
	Run         CommandFunc
}

func (c *Command) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("command name not set")
	}
	if strings.ContainsFunc(c.Name, isSpace) {
		return fmt.Errorf("command %q: name must be a single word", c.Name)
	}
	if c.Run == nil {
		return fmt.Errorf("command %q: run function not set", c.Name)
	}
	return nil
}

// CommandContext is the input to one command and collects what it
// produced for the player.
type CommandContext struct {
	State *game.GameState
	Verb  string
	Arg   string

	Flags []game.Flag
	Lines []string
	Moved bool
	Quit  bool
}

// Report records the outcome of a game action.
func (c *CommandContext) Report(f game.Flag) {
	c.Flags = append(c.Flags, f)
	if f == game.Moved {
		c.Moved = true
	}
}

// Print records text to show the player.
func (c *CommandContext) Print(lines ...string) {
	c.Lines = append(c.Lines, lines...)
}

// Parse splits a line of input into a lower-cased verb and the remaining
// words joined by single spaces.
func Parse(line string) (verb, arg string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", ""
	}
	return strings.ToLower(fields[0]), strings.Join(fields[1:], " ")
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
