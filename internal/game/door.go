package game

import "github.com/google/uuid"

// DoorKind distinguishes the door variants.
type DoorKind int

const (
	DoorOpen DoorKind = iota
	DoorLocked
)

// Door is a one-way edge to a room. A doorway between two rooms is two
// doors, one stored on each side.
type Door struct {
	Entity

	kind        DoorKind
	destination *Room

	// Locked doors only.
	closedDescription string
	keyId             uuid.UUID
	keyName           string
	locked            bool
}

// NewDoor creates a door that is always passable.
func NewDoor(name, description string, destination *Room) *Door {
	return &Door{
		Entity:      newEntity(name, description),
		kind:        DoorOpen,
		destination: destination,
	}
}

// NewLockedDoor creates a locked door that only the exact key entity can
// open. Another entity sharing the key's name does not match.
func NewLockedDoor(name, openDescription, closedDescription string, destination *Room, key Key) *Door {
	return &Door{
		Entity:            newEntity(name, openDescription),
		kind:              DoorLocked,
		destination:       destination,
		closedDescription: closedDescription,
		keyId:             key.Id(),
		keyName:           key.Name(),
		locked:            true,
	}
}

// Kind returns the door variant.
func (d *Door) Kind() DoorKind {
	return d.kind
}

// IsLocked reports whether the door currently blocks passage.
func (d *Door) IsLocked() bool {
	switch d.kind {
	case DoorLocked:
		return d.locked
	default:
		return false
	}
}

// KeyName returns the name of the entity that opens the door, or "" for
// doors without a lock.
func (d *Door) KeyName() string {
	switch d.kind {
	case DoorLocked:
		return d.keyName
	default:
		return ""
	}
}

// IsKey reports whether the entity with the given id opens this door.
func (d *Door) IsKey(id uuid.UUID) bool {
	switch d.kind {
	case DoorLocked:
		return d.keyId == id
	default:
		return false
	}
}

// Room returns the destination, or nil while the door is locked.
func (d *Door) Room() *Room {
	if d.IsLocked() {
		return nil
	}
	return d.destination
}

// Description returns the closed description while locked.
func (d *Door) Description() string {
	if d.IsLocked() {
		return d.closedDescription
	}
	return d.Entity.Description()
}

// LongDescription returns "name: description" for the door's current state.
// The promoted Entity method would always show the open description.
func (d *Door) LongDescription() string {
	return d.Name() + ": " + d.Description()
}

// unlock opens a locked door when given its key. It reports whether the door
// changed state.
func (d *Door) unlock(keyId uuid.UUID) bool {
	if !d.IsLocked() || !d.IsKey(keyId) {
		return false
	}
	d.locked = false
	return true
}
