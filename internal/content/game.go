package content

import (
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"

	"github.com/pixil98/go-maze/internal/game"
	"github.com/pixil98/go-maze/internal/storage"
	"github.com/zyedidia/generic/mapset"
)

// Game is a freshly built world ready to play.
type Game struct {
	Scenario *Scenario
	State    *game.GameState
	Victory  game.Condition
	Lose     game.Condition
}

type exitSlot struct {
	room *game.Room
	dir  game.Direction
}

// world collects the game objects made from a dictionary while building.
type world struct {
	dict       *Dictionary
	builder    *Builder
	objects    *game.Registry
	rooms      map[storage.Identifier]*game.Room
	items      map[storage.Identifier]*game.Item
	characters map[storage.Identifier]*game.Interactive

	placedItems mapset.Set[storage.Identifier]
	placedChars mapset.Set[storage.Identifier]
	exits       mapset.Set[exitSlot]
}

// Build creates a new, independent world for the scenario with the given id.
// Random puzzle words are drawn from rng.
func Build(d *Dictionary, scenarioId storage.Identifier, rng *rand.Rand) (*Game, error) {
	sc := d.Scenarios.Get(scenarioId)
	if sc == nil {
		return nil, fmt.Errorf("scenario %q not found", scenarioId)
	}

	objects := game.NewRegistry()
	w := &world{
		dict:        d,
		builder:     NewBuilder(objects, rng, sc.Words),
		objects:     objects,
		rooms:       map[storage.Identifier]*game.Room{},
		items:       map[storage.Identifier]*game.Item{},
		characters:  map[storage.Identifier]*game.Interactive{},
		placedItems: mapset.New[storage.Identifier](),
		placedChars: mapset.New[storage.Identifier](),
		exits:       mapset.New[exitSlot](),
	}

	for _, id := range sortedIds(d.Items) {
		it := d.Items.Get(id)
		w.items[id] = game.NewItem(it.Name, it.Description, it.Weight)
	}
	for _, id := range sortedIds(d.Characters) {
		c := d.Characters.Get(id)
		w.characters[id] = objects.NewCharacter(c.Name, c.Description, c.Greeting, c.Dialogue)
	}
	for _, id := range sortedIds(d.Rooms) {
		r := d.Rooms.Get(id)
		w.rooms[id] = game.NewRoom(r.Name, r.Description)
	}

	for _, id := range sortedIds(d.Rooms) {
		if err := w.furnish(id); err != nil {
			return nil, fmt.Errorf("room %s: %w", id, err)
		}
	}
	for _, id := range sortedIds(d.Rooms) {
		if err := w.connect(id); err != nil {
			return nil, fmt.Errorf("room %s: %w", id, err)
		}
	}
	for _, id := range sortedIds(d.Puzzles) {
		if err := w.addPuzzle(d.Puzzles.Get(id)); err != nil {
			return nil, fmt.Errorf("puzzle %s: %w", id, err)
		}
	}

	player := game.NewPlayer(sc.Player.Name, sc.Player.Description, sc.Player.Health)
	for _, it := range sc.Player.Inventory {
		item, err := w.place(storage.Identifier(it.Get()))
		if err != nil {
			return nil, fmt.Errorf("player inventory: %w", err)
		}
		player.AddItem(item)
	}
	if err := w.checkKeys(); err != nil {
		return nil, err
	}

	state := game.NewGameState(player, w.rooms[storage.Identifier(sc.Start.Get())], objects, game.NewHints(sc.Hints...))

	var required []*game.Interactive
	for _, r := range sc.Required {
		required = append(required, w.characters[storage.Identifier(r.Get())])
	}

	return &Game{
		Scenario: sc,
		State:    state,
		Victory:  game.NewVictoryCondition(sc.Victory, state, w.rooms[storage.Identifier(sc.Exit.Get())], required...),
		Lose:     game.NewLoseCondition(sc.Lose, player),
	}, nil
}

// furnish puts a room's items and characters in it. Each item and character
// may only be placed once.
func (w *world) furnish(id storage.Identifier) error {
	spec := w.dict.Rooms.Get(id)
	room := w.rooms[id]

	for _, it := range spec.Items {
		item, err := w.place(storage.Identifier(it.Get()))
		if err != nil {
			return err
		}
		room.AddItem(item)
	}

	for _, c := range spec.Characters {
		cid := storage.Identifier(c.Get())
		if w.placedChars.Has(cid) {
			return fmt.Errorf("character %q is placed more than once", cid)
		}
		w.placedChars.Put(cid)
		room.AddInteractive(w.characters[cid])
	}

	return nil
}

func (w *world) place(id storage.Identifier) (*game.Item, error) {
	if w.placedItems.Has(id) {
		return nil, fmt.Errorf("item %q is placed more than once", id)
	}
	w.placedItems.Put(id)
	return w.items[id], nil
}

// connect builds the doors for a room's exits.
func (w *world) connect(id storage.Identifier) error {
	spec := w.dict.Rooms.Get(id)
	room := w.rooms[id]

	for _, dirName := range sortedKeys(spec.Exits) {
		e := spec.Exits[dirName]
		d := game.ParseDirection(dirName)
		dest := w.rooms[storage.Identifier(e.Room.Get())]

		if err := w.claim(room, d, dest, e.OneWay); err != nil {
			return fmt.Errorf("exit %s: %w", d, err)
		}

		switch {
		case e.Locked():
			key := w.items[storage.Identifier(e.Key.Get())]
			if e.OneWay {
				room.SetExit(d, game.NewLockedDoor(e.Name, e.Description, e.ClosedDescription, dest, key))
			} else {
				w.builder.LockRooms(room, dest, d, e.Name, e.Description, e.ClosedDescription, key)
			}
		case e.OneWay:
			w.builder.LinkRoomsOneWay(room, dest, d, e.Name, e.Description)
		default:
			w.builder.LinkRooms(room, dest, d, e.Name, e.Description)
		}
	}

	return nil
}

func (w *world) addPuzzle(p *Puzzle) error {
	room := w.rooms[storage.Identifier(p.Room.Get())]
	target := w.rooms[storage.Identifier(p.Target.Get())]
	d := game.ParseDirection(p.Direction)

	if err := w.claim(room, d, target, p.OneWay); err != nil {
		return err
	}

	_, err := w.builder.AddPuzzle(room, target, d, p.Word, p.PuzzleText, p.IsTrapped(), p.OneWay)
	return err
}

// claim reserves the door slots an exit will fill, so two definitions can
// never silently replace each other's door.
func (w *world) claim(room *game.Room, d game.Direction, dest *game.Room, oneWay bool) error {
	slots := []exitSlot{{room: room, dir: d}}
	if !oneWay {
		slots = append(slots, exitSlot{room: dest, dir: d.Reverse()})
	}
	for _, s := range slots {
		if w.exits.Has(s) {
			return fmt.Errorf("%s of %s is defined more than once", s.dir, s.room.Name())
		}
	}
	for _, s := range slots {
		w.exits.Put(s)
	}
	return nil
}

// checkKeys makes sure every key for a locked exit can be found somewhere.
func (w *world) checkKeys() error {
	for _, id := range sortedIds(w.dict.Rooms) {
		spec := w.dict.Rooms.Get(id)
		for _, dirName := range sortedKeys(spec.Exits) {
			e := spec.Exits[dirName]
			if e.Locked() && !w.placedItems.Has(storage.Identifier(e.Key.Get())) {
				return fmt.Errorf("room %s: exit %s: key %q is never placed", id, dirName, e.Key.Get())
			}
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
