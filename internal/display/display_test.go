package display

import (
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/pixil98/go-maze/internal/game"
	"github.com/pixil98/go-testutil"
)

func TestWrapWidth(t *testing.T) {
	tests := map[string]struct {
		text  string
		width int
		exp   string
	}{
		"short line": {
			text:  "a yard",
			width: 20,
			exp:   "a yard",
		},
		"wraps at word": {
			text:  "outside the main entrance",
			width: 12,
			exp:   "outside the\nmain\nentrance",
		},
		"zero width": {
			text:  "outside the main entrance",
			width: 0,
			exp:   "outside the main entrance",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "wrapped", WrapWidth(tt.text, tt.width), tt.exp)
		})
	}
}

func TestCapitalize(t *testing.T) {
	tests := map[string]struct {
		in  string
		exp string
	}{
		"empty":      {in: "", exp: ""},
		"lower":      {in: "phil", exp: "Phil"},
		"already up": {in: "Phil", exp: "Phil"},
		"sentence":   {in: "a tall man", exp: "A tall man"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "capitalized", Capitalize(tt.in), tt.exp)
		})
	}
}

func TestTitle(t *testing.T) {
	testutil.AssertEqual(t, "title", Title("night shift"), "Night Shift")
}

func TestPainter(t *testing.T) {
	tests := map[string]struct {
		enabled bool
		flag    game.Flag
		exp     string
	}{
		"disabled": {
			flag: game.Moved,
			exp:  game.Moved.Message(),
		},
		"success": {
			enabled: true,
			flag:    game.Moved,
			exp:     "\x1b[" + ColorSuccess.Code() + "m" + game.Moved.Message() + "\x1b[0m",
		},
		"failure": {
			enabled: true,
			flag:    game.Locked,
			exp:     "\x1b[" + ColorFailure.Code() + "m" + game.Locked.Message() + "\x1b[0m",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := Painter{Enabled: tt.enabled}
			testutil.AssertEqual(t, "rendered", p.Flag(tt.flag), tt.exp)
		})
	}
}

func TestPainter_EmptyStyle(t *testing.T) {
	p := Painter{Enabled: true}
	testutil.AssertEqual(t, "unstyled", p.Paint(color.Style{}, "plain"), "plain")
	if strings.Contains(p.Paint(ColorTitle, ""), "\x1b") {
		t.Error("empty text should not be painted")
	}
}
