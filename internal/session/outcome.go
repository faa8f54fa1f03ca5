package session

// Outcome is how a single game ended.
type Outcome int

const (
	Disconnected Outcome = iota
	Won
	Lost
	Quit
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Quit:
		return "quit"
	default:
		return "disconnected"
	}
}
