package game

import (
	"strings"

	"github.com/google/uuid"
)

// Entity represents the shared properties of every named thing in the maze
// (items, doors, rooms, characters and mechanisms).
type Entity struct {
	id          uuid.UUID
	name        string
	description string
}

func newEntity(name, description string) Entity {
	return Entity{
		id:          uuid.New(),
		name:        name,
		description: description,
	}
}

// Id returns the identity assigned to the entity when it was created. Two
// entities sharing a name never share an Id.
func (e *Entity) Id() uuid.UUID {
	return e.id
}

// Name returns the display name.
func (e *Entity) Name() string {
	return e.name
}

// Description returns the static flavor text.
func (e *Entity) Description() string {
	return e.description
}

// LongDescription returns "name: description".
func (e *Entity) LongDescription() string {
	return e.name + ": " + e.description
}

// Key is anything a locked door can be keyed to.
type Key interface {
	Id() uuid.UUID
	Name() string
}

// nameKey normalizes a name for lookups. Names match case-insensitively.
func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
