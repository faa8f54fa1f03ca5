package content

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-maze/internal/game"
	"github.com/pixil98/go-maze/internal/storage"
)

// Scenario ties a set of rooms into a playable game: where the player starts,
// where they must escape to, and who they must bring along.
type Scenario struct {
	Title    string                                `json:"title" yaml:"title"`
	Welcome  string                                `json:"welcome,omitempty" yaml:"welcome,omitempty"`
	Start    storage.SmartIdentifier[*Room]        `json:"start" yaml:"start"`
	Exit     storage.SmartIdentifier[*Room]        `json:"exit" yaml:"exit"`
	Required []storage.SmartIdentifier[*Character] `json:"required,omitempty" yaml:"required,omitempty"`
	Player   PlayerSpec                            `json:"player" yaml:"player"`
	Victory  string                                `json:"victory" yaml:"victory"`
	Lose     string                                `json:"lose" yaml:"lose"`
	Hints    []string                              `json:"hints,omitempty" yaml:"hints,omitempty"`
	Words    []string                              `json:"puzzle_words,omitempty" yaml:"puzzle_words,omitempty"`
}

// PlayerSpec describes the player character of a scenario.
type PlayerSpec struct {
	Name        string                           `json:"name" yaml:"name"`
	Description string                           `json:"description" yaml:"description"`
	Health      int                              `json:"health,omitempty" yaml:"health,omitempty"`
	Inventory   []storage.SmartIdentifier[*Item] `json:"inventory,omitempty" yaml:"inventory,omitempty"`
}

// Selector satisfies storage.Selectable.
func (s *Scenario) Selector() string {
	return s.Title
}

// Validate satisfies storage.ValidatingSpec.
func (s *Scenario) Validate() error {
	el := errors.NewErrorList()

	if s.Title == "" {
		el.Add(fmt.Errorf("title is required"))
	}
	el.Add(s.Start.Validate())
	el.Add(s.Exit.Validate())
	for _, r := range s.Required {
		el.Add(r.Validate())
	}

	if s.Player.Name == "" {
		el.Add(fmt.Errorf("player name is required"))
	}
	if s.Player.Health < 0 {
		el.Add(fmt.Errorf("player health must not be negative"))
	}
	for _, it := range s.Player.Inventory {
		el.Add(it.Validate())
	}

	if s.Victory == "" {
		el.Add(fmt.Errorf("victory message is required"))
	}
	if s.Lose == "" {
		el.Add(fmt.Errorf("lose message is required"))
	}
	for _, w := range s.Words {
		el.Add(validateWord(w))
	}

	return el.Err()
}

// Resolve resolves room, character and item references.
func (s *Scenario) Resolve(d *Dictionary) error {
	el := errors.NewErrorList()
	el.Add(s.Start.Resolve(d.Rooms))
	el.Add(s.Exit.Resolve(d.Rooms))
	for i := range s.Required {
		el.Add(s.Required[i].Resolve(d.Characters))
	}
	for i := range s.Player.Inventory {
		el.Add(s.Player.Inventory[i].Resolve(d.Items))
	}
	return el.Err()
}

// Room is a location in the maze.
type Room struct {
	Name        string                                `json:"name" yaml:"name"`
	Description string                                `json:"description" yaml:"description"`
	Items       []storage.SmartIdentifier[*Item]      `json:"items,omitempty" yaml:"items,omitempty"`
	Characters  []storage.SmartIdentifier[*Character] `json:"characters,omitempty" yaml:"characters,omitempty"`

	// Exits are keyed by direction. Unless marked one way, an exit also
	// creates the matching door back from the destination.
	Exits map[string]*Exit `json:"exits,omitempty" yaml:"exits,omitempty"`
}

// Exit is a door leading out of a room. An exit with a key starts locked.
type Exit struct {
	Room              storage.SmartIdentifier[*Room] `json:"room" yaml:"room"`
	Name              string                         `json:"name,omitempty" yaml:"name,omitempty"`
	Description       string                         `json:"description,omitempty" yaml:"description,omitempty"`
	ClosedDescription string                         `json:"closed_description,omitempty" yaml:"closed_description,omitempty"`
	Key               storage.SmartIdentifier[*Item] `json:"key,omitempty" yaml:"key,omitempty"`
	OneWay            bool                           `json:"one_way,omitempty" yaml:"one_way,omitempty"`
}

// Locked reports whether the exit needs a key.
func (e *Exit) Locked() bool {
	return e.Key.Get() != ""
}

// Validate satisfies storage.ValidatingSpec.
func (r *Room) Validate() error {
	el := errors.NewErrorList()

	if r.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	for _, it := range r.Items {
		el.Add(it.Validate())
	}
	for _, c := range r.Characters {
		el.Add(c.Validate())
	}
	for dir, e := range r.Exits {
		if !game.ParseDirection(dir).IsValid() {
			el.Add(fmt.Errorf("exit %q: unknown direction", dir))
		}
		if e == nil {
			el.Add(fmt.Errorf("exit %q: must not be empty", dir))
			continue
		}
		if err := e.Room.Validate(); err != nil {
			el.Add(fmt.Errorf("exit %q: %w", dir, err))
		}
		if e.Locked() && e.ClosedDescription == "" {
			el.Add(fmt.Errorf("exit %q: locked exits need a closed_description", dir))
		}
	}

	return el.Err()
}

// Resolve resolves item, character and exit references.
func (r *Room) Resolve(d *Dictionary) error {
	el := errors.NewErrorList()
	for i := range r.Items {
		el.Add(r.Items[i].Resolve(d.Items))
	}
	for i := range r.Characters {
		el.Add(r.Characters[i].Resolve(d.Characters))
	}
	for dir, e := range r.Exits {
		if err := e.Room.Resolve(d.Rooms); err != nil {
			el.Add(fmt.Errorf("exit %q: %w", dir, err))
		}
		if e.Locked() {
			if err := e.Key.Resolve(d.Items); err != nil {
				el.Add(fmt.Errorf("exit %q: %w", dir, err))
			}
		}
	}
	return el.Err()
}

// Item is something the player can carry.
type Item struct {
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Weight      float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// Validate satisfies storage.ValidatingSpec.
func (i *Item) Validate() error {
	el := errors.NewErrorList()
	if i.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	if i.Weight < 0 {
		el.Add(fmt.Errorf("weight must not be negative"))
	}
	return el.Err()
}

// Character is someone the player can talk to and bring along.
type Character struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Greeting    string `json:"greeting" yaml:"greeting"`
	Dialogue    string `json:"dialogue" yaml:"dialogue"`
}

// Validate satisfies storage.ValidatingSpec.
func (c *Character) Validate() error {
	el := errors.NewErrorList()
	if c.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	if c.Greeting == "" && c.Dialogue == "" {
		el.Add(fmt.Errorf("greeting or dialogue is required"))
	}
	return el.Err()
}

// Puzzle is a sequence of mechanisms in Room that unlocks the way to
// Target. Trapped defaults to true.
type Puzzle struct {
	Room      storage.SmartIdentifier[*Room] `json:"room" yaml:"room"`
	Target    storage.SmartIdentifier[*Room] `json:"target" yaml:"target"`
	Direction string                         `json:"direction" yaml:"direction"`
	Word      string                         `json:"word,omitempty" yaml:"word,omitempty"`
	Trapped   *bool                          `json:"trapped,omitempty" yaml:"trapped,omitempty"`
	OneWay    bool                           `json:"one_way,omitempty" yaml:"one_way,omitempty"`

	PuzzleText `yaml:",inline"`
}

// PuzzleText is the flavor text of a sequence puzzle and the door it opens.
type PuzzleText struct {
	Door              string `json:"door" yaml:"door"`
	OpenDescription   string `json:"open_description" yaml:"open_description"`
	ClosedDescription string `json:"closed_description" yaml:"closed_description"`
	Mechanism         string `json:"mechanism" yaml:"mechanism"`
	Failure           string `json:"failure" yaml:"failure"`
	Success           string `json:"success" yaml:"success"`
	Final             string `json:"final" yaml:"final"`
}

// IsTrapped reports whether mistakes hurt the player.
func (p *Puzzle) IsTrapped() bool {
	return p.Trapped == nil || *p.Trapped
}

// Validate satisfies storage.ValidatingSpec.
func (p *Puzzle) Validate() error {
	el := errors.NewErrorList()

	el.Add(p.Room.Validate())
	el.Add(p.Target.Validate())
	if !game.ParseDirection(p.Direction).IsValid() {
		el.Add(fmt.Errorf("unknown direction %q", p.Direction))
	}
	if p.Word != "" {
		el.Add(validateWord(p.Word))
	}
	if p.Door == "" {
		el.Add(fmt.Errorf("door is required"))
	}
	if p.Mechanism == "" {
		el.Add(fmt.Errorf("mechanism is required"))
	}

	return el.Err()
}

// Resolve resolves the room references.
func (p *Puzzle) Resolve(d *Dictionary) error {
	el := errors.NewErrorList()
	el.Add(p.Room.Resolve(d.Rooms))
	el.Add(p.Target.Resolve(d.Rooms))
	return el.Err()
}
