package display

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/pixil98/go-maze/internal/game"
)

var (
	ColorSuccess = color.Style{color.FgGreen}
	ColorFailure = color.Style{color.FgRed, color.OpBold}
	ColorTitle   = color.Style{color.FgCyan, color.OpBold}
	ColorVictory = color.Style{color.FgGreen, color.OpBold}
	ColorLose    = color.Style{color.FgRed, color.OpBold}
)

// Painter adds ANSI colour to text sent to a player. The escape codes are
// written regardless of the local terminal since the reader is usually a
// remote client.
type Painter struct {
	Enabled bool
}

// Paint wraps s in style when colour is enabled.
func (p Painter) Paint(style color.Style, s string) string {
	if !p.Enabled || len(style) == 0 || s == "" {
		return s
	}
	return fmt.Sprintf("\x1b[%sm%s\x1b[0m", style.Code(), s)
}

// Flag renders the message of f, green for success and red for failure.
func (p Painter) Flag(f game.Flag) string {
	if f.Success() {
		return p.Paint(ColorSuccess, f.Message())
	}
	return p.Paint(ColorFailure, f.Message())
}
