package game

// DefaultHints are given when a world supplies none.
var DefaultHints = []string{
	"You can look at doors by entering 'look <direction>'.\n" +
		"Looking at locked doors gives you an idea of what their key might be, then use 'open <direction>' once you find it.",
	"The puzzles in the rooms require you to interact with the mechanisms in the correct order.\n" +
		"If you get the order wrong, the puzzle resets.",
	"The correct order of the puzzles spells out an English word.",
}

// Hints hands out hints one at a time.
type Hints struct {
	hints []string
	given int
}

// NewHints creates a hint list. With no hints, DefaultHints are used.
func NewHints(hints ...string) *Hints {
	if len(hints) == 0 {
		hints = DefaultHints
	}
	return &Hints{hints: hints}
}

// Next returns the next unseen hint. Once every hint has been given, all of
// them are returned together.
func (h *Hints) Next() []string {
	if h.given >= len(h.hints) {
		return append([]string(nil), h.hints...)
	}
	hint := h.hints[h.given]
	h.given++
	return []string{hint}
}
