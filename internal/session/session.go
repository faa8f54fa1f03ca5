package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pixil98/go-maze/internal"
	"github.com/pixil98/go-maze/internal/commands"
	"github.com/pixil98/go-maze/internal/content"
	"github.com/pixil98/go-maze/internal/display"
	"github.com/pixil98/go-maze/internal/storage"
)

var welcomeTemplate = commands.MustTemplate("welcome", `
{{ .Title }}
{{- with .Welcome }}
{{ trim . }}
{{- end }}
Type help if you need help.
`)

const separator = "------------------------------------------------------------"

// Session is one player's connection. It plays one game at a time, each on
// a freshly built world.
type Session struct {
	id      uuid.UUID
	log     *slog.Logger
	manager *Manager
	prompt  *internal.Prompter
	games   int
}

func (s *Session) init(conn io.ReadWriter) {
	s.prompt = internal.NewPrompter(conn)
}

// Id returns the session's id.
func (s *Session) Id() uuid.UUID {
	return s.id
}

// Run plays games until the player declines another, quits or the
// connection closes.
func (s *Session) Run(ctx context.Context) error {
	for {
		outcome, err := s.play(ctx)
		if err != nil {
			if isClosed(err) {
				return nil
			}
			return err
		}
		s.games++
		s.log.InfoContext(ctx, "game over", "outcome", outcome)

		if outcome == Disconnected || outcome == Quit {
			return nil
		}

		again, err := s.prompt.PromptYN("Play again? ")
		if err != nil {
			if isClosed(err) {
				return nil
			}
			return err
		}
		if !again {
			return s.writeln("Thank you for playing.  Good bye.")
		}
	}
}

func (s *Session) play(ctx context.Context) (Outcome, error) {
	m := s.manager
	menu := storage.NewMenu(m.dict.Scenarios)
	scenarioId, err := menu.Prompt(s.prompt, "Choose a scenario:")
	if err != nil {
		return Disconnected, fmt.Errorf("choosing scenario: %w", err)
	}

	g, err := content.Build(m.dict, scenarioId, m.newRand())
	if err != nil {
		s.log.ErrorContext(ctx, "building world", "scenario", scenarioId, "error", err)
		return Disconnected, fmt.Errorf("building scenario %s: %w", scenarioId, err)
	}
	s.log.InfoContext(ctx, "game started", "scenario", scenarioId)

	welcome, err := welcomeTemplate.Expand(struct {
		Title   string
		Welcome string
	}{m.painter.Paint(display.ColorTitle, display.Title(g.Scenario.Title)), g.Scenario.Welcome})
	if err != nil {
		return Disconnected, err
	}
	if err := s.writeln(welcome, g.State.StateDescription()); err != nil {
		return Disconnected, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return Disconnected, nil
		}

		line, err := s.prompt.Prompt("> ")
		if err != nil {
			if isClosed(err) {
				return Disconnected, nil
			}
			return Disconnected, err
		}

		cmdCtx, err := m.handler.Exec(ctx, g.State, line)
		var userErr *commands.UserError
		if errors.As(err, &userErr) {
			if err := s.writeln(userErr.Message); err != nil {
				return Disconnected, err
			}
			continue
		}
		if err != nil {
			return Disconnected, err
		}
		if cmdCtx.Verb == "" {
			continue
		}

		if err := s.render(g, cmdCtx); err != nil {
			return Disconnected, err
		}

		if cmdCtx.Quit {
			return Quit, s.writeln("Thank you for playing.  Good bye.")
		}
		if g.Lose.Satisfied() {
			return Lost, s.writeln(m.painter.Paint(display.ColorLose, g.Lose.Message()))
		}
		if g.Victory.Satisfied() {
			return Won, s.writeln(m.painter.Paint(display.ColorVictory, g.Victory.Message()))
		}
	}
}

// render writes the narration a command produced, then its flags, then any
// text it printed, then the new room after a move.
func (s *Session) render(g *content.Game, cmdCtx *commands.CommandContext) error {
	m := s.manager
	var out []string
	out = append(out, g.State.Messages()...)
	for _, f := range cmdCtx.Flags {
		out = append(out, m.painter.Flag(f))
	}
	out = append(out, cmdCtx.Lines...)
	if cmdCtx.Moved {
		out = append(out, g.State.StateDescription())
	}
	if len(out) == 0 {
		return nil
	}
	return s.writeln(separator, strings.Join(out, "\n"), separator)
}

func (s *Session) writeln(lines ...string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(s.prompt, display.WrapWidth(l, s.manager.width)); err != nil {
			return err
		}
	}
	return nil
}

func isClosed(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrClosedPipe) || errors.Is(err, context.Canceled)
}
