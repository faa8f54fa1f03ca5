package game

import (
	"slices"
	"strings"
)

// Room is a location in the maze. It holds loose items, at most one exit per
// direction and the interactive objects currently present.
type Room struct {
	Container

	exits   map[Direction]*Door
	objects map[string]*Interactive
}

// NewRoom creates an empty room with no exits.
func NewRoom(name, description string) *Room {
	return &Room{
		Container: newContainer(name, description),
		exits:     make(map[Direction]*Door),
		objects:   make(map[string]*Interactive),
	}
}

// SetExit stores door as the exit in direction d, replacing any existing
// exit. Unknown is never stored.
func (r *Room) SetExit(d Direction, door *Door) {
	if !d.IsValid() || door == nil {
		return
	}
	r.exits[d] = door
}

// Exit returns the door in direction d, or nil.
func (r *Room) Exit(d Direction) *Door {
	return r.exits[d]
}

// Exits returns the directions that have a door, in display order.
func (r *Room) Exits() []Direction {
	var dirs []Direction
	for _, d := range AllDirections() {
		if _, ok := r.exits[d]; ok {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// AddInteractive places o in the room, taking it out of any other room.
func (r *Room) AddInteractive(o *Interactive) {
	if o == nil {
		return
	}
	if o.room != nil && o.room != r {
		o.room.removeObject(o.Name())
	}
	r.objects[nameKey(o.Name())] = o
	o.room = r
}

// Object returns the interactive object with the given name, or nil.
func (r *Room) Object(name string) *Interactive {
	return r.objects[nameKey(name)]
}

// Objects returns the objects present sorted by name.
func (r *Room) Objects() []*Interactive {
	return sortedObjects(r.objects)
}

func (r *Room) removeObject(name string) *Interactive {
	key := nameKey(name)
	o, ok := r.objects[key]
	if !ok {
		return nil
	}
	delete(r.objects, key)
	o.room = nil
	return o
}

// Describe returns the room's name, description, items and objects.
func (r *Room) Describe() string {
	var sb strings.Builder
	sb.WriteString("You are in " + r.Name() + ".\n" + r.Description())
	if !r.IsEmpty() {
		sb.WriteString("\n" + r.Name() + " contents:\n" + strings.TrimRight(r.inventoryString(), "\n"))
	}
	if len(r.objects) > 0 {
		sb.WriteString("\nYou see:")
		for _, o := range r.Objects() {
			sb.WriteString("\n  " + o.LongDescription())
		}
	}
	return sb.String()
}

// ExitsString lists the directions with a door.
func (r *Room) ExitsString() string {
	var sb strings.Builder
	sb.WriteString("There are exits in the directions:")
	for _, d := range r.Exits() {
		sb.WriteString("  " + d.String())
	}
	return sb.String()
}

func sortedObjects(m map[string]*Interactive) []*Interactive {
	objs := make([]*Interactive, 0, len(m))
	for _, o := range m {
		objs = append(objs, o)
	}
	slices.SortFunc(objs, func(a, b *Interactive) int {
		return strings.Compare(nameKey(a.Name()), nameKey(b.Name()))
	})
	return objs
}
