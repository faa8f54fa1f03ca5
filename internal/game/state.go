package game

import (
	"strings"

	"github.com/google/uuid"
)

// GameState is the single owner of a running maze. It holds the current
// room, the path taken, the player and the party, and is the only place the
// world graph is mutated. A GameState is not safe for concurrent use; each
// session owns its own.
type GameState struct {
	currentRoom *Room
	history     []Direction
	player      *Player
	party       map[string]*Interactive
	objects     *Registry
	hints       *Hints

	messages []string
}

// NewGameState starts a game with player standing in start. A nil registry
// or hint list is replaced by an empty registry and DefaultHints.
func NewGameState(player *Player, start *Room, objects *Registry, hints *Hints) *GameState {
	if objects == nil {
		objects = NewRegistry()
	}
	if hints == nil {
		hints = NewHints()
	}
	return &GameState{
		currentRoom: start,
		player:      player,
		party:       make(map[string]*Interactive),
		objects:     objects,
		hints:       hints,
	}
}

// Go moves the player through the door in the named direction.
func (g *GameState) Go(direction string) Flag {
	if isBlank(direction) {
		return NoArgument
	}
	return g.GoDirection(ParseDirection(direction))
}

// GoDirection moves the player in d and records the step for GoBack.
func (g *GameState) GoDirection(d Direction) Flag {
	flag := g.move(d)
	if flag.Success() {
		g.history = append(g.history, d)
	}
	return flag
}

func (g *GameState) move(d Direction) Flag {
	door := g.currentRoom.Exit(d)
	switch {
	case door == nil:
		return NoDoor
	case door.IsLocked():
		return Locked
	}
	g.currentRoom = door.Room()
	return Moved
}

// GoBack retraces the most recent step. The step stays in the history when
// the way back is blocked.
func (g *GameState) GoBack() Flag {
	if len(g.history) == 0 {
		return NoHistory
	}
	last := g.history[len(g.history)-1]
	flag := g.move(last.Reverse())
	if flag.Success() {
		g.history = g.history[:len(g.history)-1]
	}
	return flag
}

// PlayerTakes picks up an item from the current room, or failing that brings
// an interactive object from the room into the party. Nothing moves when the
// player already has something else with that name.
func (g *GameState) PlayerTakes(name string) Flag {
	if isBlank(name) {
		return NoArgument
	}
	if g.currentRoom.Item(name) != nil {
		if !g.currentRoom.transferTo(&g.player.Container, name) {
			return AlreadyCarried
		}
		return ItemTaken
	}
	flag := g.moveObjectFrom(g.currentRoom, name)
	if flag.Success() {
		return CharacterTaken
	}
	return flag
}

// PlayerDrops leaves an item in the current room, or failing that leaves a
// party member there. Nothing moves when the room already holds something
// else with that name.
func (g *GameState) PlayerDrops(name string) Flag {
	if isBlank(name) {
		return NoArgument
	}
	if g.player.Item(name) != nil {
		if !g.player.transferTo(&g.currentRoom.Container, name) {
			return AlreadyHere
		}
		return ItemDropped
	}
	flag := g.moveObjectTo(g.currentRoom, name)
	if flag.Success() {
		return CharacterDropped
	}
	return flag
}

func (g *GameState) moveObjectFrom(room *Room, name string) Flag {
	o := room.Object(name)
	switch {
	case o == nil:
		return NoObjectRoom
	case !o.IsRemovable():
		return Immovable
	}
	key := nameKey(o.Name())
	if member, ok := g.party[key]; ok && member != o {
		return AlreadyInParty
	}
	room.removeObject(name)
	g.party[key] = o
	return ObjectMoved
}

func (g *GameState) moveObjectTo(room *Room, name string) Flag {
	key := nameKey(name)
	o, ok := g.party[key]
	if !ok {
		return NoObjectParty
	}
	if held := room.Object(name); held != nil && held != o {
		return AlreadyHere
	}
	delete(g.party, key)
	room.AddInteractive(o)
	return ObjectMoved
}

// OpenDoor unlocks the door in the named direction with a key from the
// player's inventory. The key must be the exact item the door was made for;
// it is used up.
func (g *GameState) OpenDoor(direction string) Flag {
	if isBlank(direction) {
		return NoArgument
	}
	door := g.currentRoom.Exit(ParseDirection(direction))
	switch {
	case door == nil:
		return NoDoor
	case !door.IsLocked():
		return Unlocked
	}

	key := g.player.Item(door.KeyName())
	if key == nil || !door.IsKey(key.Id()) {
		return WrongKey
	}
	door.unlock(key.Id())
	g.unlockTwin(door, key.Id())
	g.player.detach(key)
	return Opened
}

// unlockTwin opens the door leading back from the other side of door when it
// was made for the same key.
func (g *GameState) unlockTwin(door *Door, key uuid.UUID) {
	for _, back := range door.destination.exits {
		if back != door && back.destination == g.currentRoom {
			back.unlock(key)
		}
	}
}

// Interact triggers the named object in the current room or the party.
func (g *GameState) Interact(name string) Flag {
	if isBlank(name) {
		return NoArgument
	}
	o := g.currentRoom.Object(name)
	if o == nil {
		o = g.party[nameKey(name)]
	}
	if o == nil {
		return NoInteractive
	}
	return g.activate(o)
}

func (g *GameState) activate(o *Interactive) Flag {
	switch o.kind {
	case KindCharacter:
		g.say(o.Dialogue())
		o.active = true
		return Interacted
	case KindMechanism:
		return g.advanceChain(o)
	case KindLock:
		flag := g.advanceChain(o)
		if o.active {
			for _, d := range o.doors {
				d.unlock(o.Id())
			}
		}
		return flag
	default:
		return NoEffect
	}
}

// advanceChain activates o when it starts the chain or its predecessor is
// active. Otherwise the whole chain resets and a trapped mechanism hurts the
// player.
func (g *GameState) advanceChain(o *Interactive) Flag {
	if o.active {
		return NoEffect
	}

	prev := g.objects.Get(o.previous)
	if prev == nil || prev.active {
		o.active = true
	} else {
		if o.trapped {
			g.GetHit()
		}
		g.resetChain(o.previous)
	}
	g.say(o.Dialogue())
	return Interacted
}

func (g *GameState) resetChain(id ObjectID) {
	for o := g.objects.Get(id); o != nil; o = g.objects.Get(o.previous) {
		o.active = false
	}
}

// StateDescription describes the current room and its exits.
func (g *GameState) StateDescription() string {
	return g.currentRoom.Describe() + "\n" + g.currentRoom.ExitsString()
}

// PartyDescription describes the player's inventory and party.
func (g *GameState) PartyDescription() string {
	var sb strings.Builder
	if !g.player.IsEmpty() {
		sb.WriteString(strings.TrimRight(g.player.InventoryString(), "\n"))
	}
	if len(g.party) > 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("In the party:")
		for _, o := range sortedObjects(g.party) {
			sb.WriteString("\n  " + o.LongDescription())
		}
	}
	if sb.Len() == 0 {
		return "You are all alone in the party."
	}
	return sb.String()
}

// FindDescription looks up something the player can see by name: "party",
// "room", "player", a direction, a carried item, or anything in the room or
// party.
func (g *GameState) FindDescription(name string) (string, bool) {
	switch nameKey(name) {
	case "party":
		return g.PartyDescription(), true
	case "room":
		return g.StateDescription(), true
	}

	if d := ParseDirection(name); d != Unknown {
		if door := g.currentRoom.Exit(d); door != nil {
			return door.LongDescription(), true
		}
		return "", false
	}
	if desc, ok := g.player.findDescription(name); ok {
		return desc, true
	}
	if desc, ok := g.currentRoom.findDescription(name); ok {
		return desc, true
	}
	if o := g.currentRoom.Object(name); o != nil {
		return o.Description(), true
	}
	if o, ok := g.party[nameKey(name)]; ok {
		return o.Description(), true
	}
	return "", false
}

// CurrentRoom returns the room the player is in.
func (g *GameState) CurrentRoom() *Room {
	return g.currentRoom
}

// Player returns the player.
func (g *GameState) Player() *Player {
	return g.player
}

// Objects returns the registry of interactive objects.
func (g *GameState) Objects() *Registry {
	return g.objects
}

// HistoryLen returns the number of steps GoBack can retrace.
func (g *GameState) HistoryLen() int {
	return len(g.history)
}

// Party returns the party members sorted by name.
func (g *GameState) Party() []*Interactive {
	return sortedObjects(g.party)
}

// IsAt reports whether the player is in room.
func (g *GameState) IsAt(room *Room) bool {
	return g.currentRoom == room
}

// ContainsObject reports whether o is in the party.
func (g *GameState) ContainsObject(o *Interactive) bool {
	if o == nil {
		return false
	}
	return g.party[nameKey(o.Name())] == o
}

// GetHit takes one point of health from the player.
func (g *GameState) GetHit() {
	g.player.getHit()
}

// Hint queues the next hint as a message.
func (g *GameState) Hint() {
	for _, h := range g.hints.Next() {
		g.say(h)
	}
}

// Messages returns and clears the narration produced since the last call.
func (g *GameState) Messages() []string {
	msgs := g.messages
	g.messages = nil
	return msgs
}

func (g *GameState) say(msg string) {
	if msg != "" {
		g.messages = append(g.messages, msg)
	}
}
