package game

import "fmt"

// ObjectKind distinguishes the interactive object variants.
type ObjectKind int

const (
	// KindCharacter can be talked to and brought into the party.
	KindCharacter ObjectKind = iota
	// KindMechanism is one step of an ordered puzzle chain.
	KindMechanism
	// KindLock is the last step of a chain; activating it unlocks its doors.
	KindLock
)

func (k ObjectKind) String() string {
	switch k {
	case KindCharacter:
		return "character"
	case KindMechanism:
		return "mechanism"
	case KindLock:
		return "lock"
	default:
		return "unknown"
	}
}

// ObjectID addresses an interactive object inside its Registry.
type ObjectID int

// NoPrevious marks a mechanism with no predecessor.
const NoPrevious ObjectID = -1

// maxLockDoors is the number of doors a lock can open: one per side of a
// doorway.
const maxLockDoors = 2

// Interactive is an entity with behavior triggered by the player.
type Interactive struct {
	Entity

	id   ObjectID
	kind ObjectKind

	// initialDialogue is shown until the object is active, defaultDialogue
	// afterwards. For mechanisms these are the failure and success messages.
	initialDialogue string
	defaultDialogue string
	active          bool
	removable       bool

	// Mechanisms and locks only.
	previous ObjectID
	trapped  bool
	doors    []*Door

	room *Room
}

// ObjectId returns the object's handle in its registry.
func (o *Interactive) ObjectId() ObjectID {
	return o.id
}

// Kind returns the object variant.
func (o *Interactive) Kind() ObjectKind {
	return o.kind
}

// IsActive reports whether the object has been triggered.
func (o *Interactive) IsActive() bool {
	return o.active
}

// IsRemovable reports whether the object may move between a room and the party.
func (o *Interactive) IsRemovable() bool {
	return o.removable
}

// IsTrapped reports whether a wrong-order activation hurts the player.
func (o *Interactive) IsTrapped() bool {
	return o.trapped
}

// Previous returns the predecessor in the puzzle chain, or NoPrevious.
func (o *Interactive) Previous() ObjectID {
	return o.previous
}

// Doors returns the doors a lock opens.
func (o *Interactive) Doors() []*Door {
	return o.doors
}

// Dialogue returns the text for the object's current state.
func (o *Interactive) Dialogue() string {
	if o.active {
		return o.defaultDialogue
	}
	return o.initialDialogue
}

// BindDoor registers a door to be unlocked when the lock activates. The door
// must be keyed to the lock.
func (o *Interactive) BindDoor(d *Door) error {
	if o.kind != KindLock {
		return fmt.Errorf("%s %q cannot open doors", o.kind, o.Name())
	}
	if d == nil {
		return fmt.Errorf("lock %q: door is nil", o.Name())
	}
	if !d.IsKey(o.Id()) {
		return fmt.Errorf("lock %q: door %q is not keyed to it", o.Name(), d.Name())
	}
	if len(o.doors) >= maxLockDoors {
		return fmt.Errorf("lock %q already opens %d doors", o.Name(), maxLockDoors)
	}
	o.doors = append(o.doors, d)
	return nil
}

// Registry owns every interactive object of a world and hands out stable
// ObjectIDs. Chains link through ObjectIDs, and a mechanism can only link to
// one created before it, so chains never loop.
type Registry struct {
	objects []*Interactive
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Get returns the object with the given id, or nil.
func (r *Registry) Get(id ObjectID) *Interactive {
	if id < 0 || int(id) >= len(r.objects) {
		return nil
	}
	return r.objects[id]
}

// Len returns the number of registered objects.
func (r *Registry) Len() int {
	return len(r.objects)
}

// NewCharacter registers a character. Characters can join the party.
func (r *Registry) NewCharacter(name, description, greeting, dialogue string) *Interactive {
	return r.add(&Interactive{
		Entity:          newEntity(name, description),
		kind:            KindCharacter,
		initialDialogue: greeting,
		defaultDialogue: dialogue,
		removable:       true,
		previous:        NoPrevious,
	})
}

// NewMechanism registers a puzzle step following previous (NoPrevious for the
// first step).
func (r *Registry) NewMechanism(name, description, failure, success string, previous ObjectID, trapped bool) (*Interactive, error) {
	return r.newLink(KindMechanism, name, description, failure, success, previous, trapped)
}

// NewLockMechanism registers the final step of a chain. Bind the doors it
// opens with BindDoor.
func (r *Registry) NewLockMechanism(name, description, failure, success string, previous ObjectID, trapped bool) (*Interactive, error) {
	return r.newLink(KindLock, name, description, failure, success, previous, trapped)
}

func (r *Registry) newLink(kind ObjectKind, name, description, failure, success string, previous ObjectID, trapped bool) (*Interactive, error) {
	if previous != NoPrevious {
		prev := r.Get(previous)
		if prev == nil {
			return nil, fmt.Errorf("mechanism %q: previous object %d not found", name, previous)
		}
		if prev.kind == KindCharacter {
			return nil, fmt.Errorf("mechanism %q: previous object %q is not a mechanism", name, prev.Name())
		}
	}

	return r.add(&Interactive{
		Entity:          newEntity(name, description),
		kind:            kind,
		initialDialogue: failure,
		defaultDialogue: success,
		previous:        previous,
		trapped:         trapped,
	}), nil
}

func (r *Registry) add(o *Interactive) *Interactive {
	o.id = ObjectID(len(r.objects))
	r.objects = append(r.objects, o)
	return o
}
