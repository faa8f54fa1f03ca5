package content

import (
	"fmt"
	"io/fs"
	"maps"
	"os"
	"slices"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-maze/internal/storage"
)

// Dictionary holds every asset store of a world. It is read-only once
// resolved and may be shared by any number of sessions, each building its
// own Game from it.
type Dictionary struct {
	Scenarios  storage.Storer[*Scenario]
	Rooms      storage.Storer[*Room]
	Items      storage.Storer[*Item]
	Characters storage.Storer[*Character]
	Puzzles    storage.Storer[*Puzzle]
}

// Load reads a world from a directory on disk.
func Load(dir string) (*Dictionary, error) {
	return LoadFS(os.DirFS(dir))
}

// LoadFS reads a world from fsys. The scenarios, rooms, items, characters
// and puzzles directories each hold one kind of asset.
func LoadFS(fsys fs.FS) (*Dictionary, error) {
	d := &Dictionary{}
	var err error

	if d.Scenarios, err = storage.NewFSStore[*Scenario](fsys, "scenarios"); err != nil {
		return nil, fmt.Errorf("loading scenarios: %w", err)
	}
	if d.Rooms, err = storage.NewFSStore[*Room](fsys, "rooms"); err != nil {
		return nil, fmt.Errorf("loading rooms: %w", err)
	}
	if d.Items, err = storage.NewFSStore[*Item](fsys, "items"); err != nil {
		return nil, fmt.Errorf("loading items: %w", err)
	}
	if d.Characters, err = storage.NewFSStore[*Character](fsys, "characters"); err != nil {
		return nil, fmt.Errorf("loading characters: %w", err)
	}
	if d.Puzzles, err = storage.NewFSStore[*Puzzle](fsys, "puzzles"); err != nil {
		return nil, fmt.Errorf("loading puzzles: %w", err)
	}

	if len(d.Scenarios.GetAll()) == 0 {
		return nil, fmt.Errorf("world has no scenarios")
	}

	if err := d.Resolve(); err != nil {
		return nil, fmt.Errorf("resolving references: %w", err)
	}

	return d, nil
}

// Resolve resolves all references between assets.
func (d *Dictionary) Resolve() error {
	el := errors.NewErrorList()

	for _, id := range sortedIds(d.Scenarios) {
		if err := d.Scenarios.Get(id).Resolve(d); err != nil {
			el.Add(fmt.Errorf("scenario %s: %w", id, err))
		}
	}
	for _, id := range sortedIds(d.Rooms) {
		if err := d.Rooms.Get(id).Resolve(d); err != nil {
			el.Add(fmt.Errorf("room %s: %w", id, err))
		}
	}
	for _, id := range sortedIds(d.Puzzles) {
		if err := d.Puzzles.Get(id).Resolve(d); err != nil {
			el.Add(fmt.Errorf("puzzle %s: %w", id, err))
		}
	}

	return el.Err()
}

// sortedIds lists a store's ids in a stable order so that building a world
// from the same seed always gives the same result.
func sortedIds[T storage.ValidatingSpec](st storage.Storer[T]) []storage.Identifier {
	return slices.Sorted(maps.Keys(st.GetAll()))
}
