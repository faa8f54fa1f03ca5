package commands

import (
	"context"
	"strings"

	"github.com/pixil98/go-maze/internal/game"
)

var helpTemplate = MustTemplate("help", `Your command words are: {{ .Names | join " " }}
{{- range .Commands }}
  {{ printf "%-16s" .Usage }}{{ .Description }}
{{- end }}`)

func builtins(h *Handler) []*Command {
	return []*Command{
		{
			Name:        "go",
			Usage:       "go <direction>",
			Description: "Walk through the door in a direction.",
			Run: func(_ context.Context, c *CommandContext) error {
				c.Report(c.State.Go(c.Arg))
				return nil
			},
		},
		{
			Name:        "back",
			Usage:       "back",
			Description: "Return the way you came.",
			Run: func(_ context.Context, c *CommandContext) error {
				c.Report(c.State.GoBack())
				return nil
			},
		},
		{
			Name:        "take",
			Usage:       "take <name>",
			Description: "Pick up an item or bring someone along.",
			Run: func(_ context.Context, c *CommandContext) error {
				c.Report(c.State.PlayerTakes(c.Arg))
				return nil
			},
		},
		{
			Name:        "drop",
			Usage:       "drop <name>",
			Description: "Put down an item or leave someone behind.",
			Run: func(_ context.Context, c *CommandContext) error {
				c.Report(c.State.PlayerDrops(c.Arg))
				return nil
			},
		},
		{
			Name:        "look",
			Usage:       "look [name]",
			Description: "Describe the room, or something you can see.",
			Run:         look,
		},
		{
			Name:        "open",
			Usage:       "open <direction>",
			Description: "Unlock a door with a key you carry.",
			Run: func(_ context.Context, c *CommandContext) error {
				c.Report(c.State.OpenDoor(c.Arg))
				return nil
			},
		},
		{
			Name:        "interact",
			Usage:       "interact <name>",
			Description: "Talk to someone or work a mechanism.",
			Run: func(_ context.Context, c *CommandContext) error {
				c.Report(c.State.Interact(c.Arg))
				return nil
			},
		},
		{
			Name:        "hint",
			Usage:       "hint",
			Description: "Ask for a nudge in the right direction.",
			Run: func(_ context.Context, c *CommandContext) error {
				c.State.Hint()
				return nil
			},
		},
		{
			Name:        "help",
			Usage:       "help",
			Description: "List the commands.",
			Run: func(_ context.Context, c *CommandContext) error {
				text, err := help(h)
				if err != nil {
					return err
				}
				c.Print(text)
				return nil
			},
		},
		{
			Name:        "quit",
			Usage:       "quit",
			Description: "Leave the game.",
			Run: func(_ context.Context, c *CommandContext) error {
				c.Quit = true
				return nil
			},
		},
	}
}

func look(_ context.Context, c *CommandContext) error {
	if strings.TrimSpace(c.Arg) == "" {
		c.Print(c.State.StateDescription(), c.State.PartyDescription())
		return nil
	}
	desc, ok := c.State.FindDescription(c.Arg)
	if !ok {
		c.Report(game.NoObject)
		return nil
	}
	c.Print(desc)
	return nil
}

func help(h *Handler) (string, error) {
	cmds := h.Commands()
	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, c.Name)
	}
	return helpTemplate.Expand(struct {
		Names    []string
		Commands []*Command
	}{names, cmds})
}
