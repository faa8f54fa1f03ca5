package game

import "github.com/zyedidia/generic/mapset"

// Condition is checked once per turn to decide whether the game is over.
type Condition interface {
	Satisfied() bool
	Message() string
}

// VictoryCondition is met when the player stands in the exit room with every
// required object in the party.
type VictoryCondition struct {
	message  string
	state    *GameState
	exit     *Room
	required mapset.Set[*Interactive]
}

// NewVictoryCondition creates a victory check for state.
func NewVictoryCondition(message string, state *GameState, exit *Room, required ...*Interactive) *VictoryCondition {
	set := mapset.New[*Interactive]()
	for _, o := range required {
		set.Put(o)
	}
	return &VictoryCondition{
		message:  message,
		state:    state,
		exit:     exit,
		required: set,
	}
}

func (c *VictoryCondition) Satisfied() bool {
	if !c.state.IsAt(c.exit) {
		return false
	}
	all := true
	c.required.Each(func(o *Interactive) {
		if !c.state.ContainsObject(o) {
			all = false
		}
	})
	return all
}

func (c *VictoryCondition) Message() string {
	return c.message
}

// LoseCondition is met when the player has no health left.
type LoseCondition struct {
	message string
	player  *Player
}

// NewLoseCondition creates a defeat check for player.
func NewLoseCondition(message string, player *Player) *LoseCondition {
	return &LoseCondition{message: message, player: player}
}

func (c *LoseCondition) Satisfied() bool {
	return c.player.IsDead()
}

func (c *LoseCondition) Message() string {
	return c.message
}
