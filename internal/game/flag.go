package game

// Flag is the outcome of a player action. Every mutating GameState method
// returns exactly one.
type Flag int

const (
	NoArgument Flag = iota
	NoDoor
	Locked
	Moved
	Opened
	WrongKey
	Unlocked
	Interacted
	NoObject
	NoInteractive
	NoObjectRoom
	ObjectMoved
	ItemTaken
	ItemDropped
	CharacterTaken
	CharacterDropped
	NoObjectParty
	Immovable
	NoEffect
	NoHistory
	AlreadyCarried
	AlreadyInParty
	AlreadyHere
)

type flagInfo struct {
	name    string
	message string
	success bool
}

var flagTable = [...]flagInfo{
	NoArgument:       {"no_argument", "This command requires an argument.", false},
	NoDoor:           {"no_door", "There is no door in that direction!", false},
	Locked:           {"locked", "The door is locked.", false},
	Moved:            {"moved", "You have moved.", true},
	Opened:           {"opened", "The door has been opened.", true},
	WrongKey:         {"wrong_key", "You do not have the right key in inventory.", false},
	Unlocked:         {"unlocked", "This door is already unlocked.", false},
	Interacted:       {"interacted", "You have interacted with the object.", true},
	NoObject:         {"no_object", "There's no such object.", false},
	NoInteractive:    {"no_interactive", "There's no such object that you can interact with.", false},
	NoObjectRoom:     {"no_object_room", "There's no object with that name in the room.", false},
	ObjectMoved:      {"object_moved", "The object has been moved.", true},
	ItemTaken:        {"item_taken", "You have taken the item.", true},
	ItemDropped:      {"item_dropped", "You have dropped the item.", true},
	CharacterTaken:   {"character_taken", "You have brought a character into your party.", true},
	CharacterDropped: {"character_dropped", "You have removed a character from your party.", true},
	NoObjectParty:    {"no_object_party", "There's no object with that name in the party.", false},
	Immovable:        {"immovable", "This object can't be moved.", false},
	NoEffect:         {"no_effect", "Interacting with this object had no effect.", false},
	NoHistory:        {"no_history", "You do not have any previously visited locations.", false},
	AlreadyCarried:   {"already_carried", "You already carry something with that name.", false},
	AlreadyInParty:   {"already_in_party", "Someone with that name is already in your party.", false},
	AlreadyHere:      {"already_here", "There is already something with that name here.", false},
}

func (f Flag) info() flagInfo {
	if f < 0 || int(f) >= len(flagTable) {
		return flagInfo{name: "unknown", message: "Nothing happens."}
	}
	return flagTable[f]
}

// Message returns the player-facing text for the outcome.
func (f Flag) Message() string {
	return f.info().message
}

// Success reports whether the action took effect.
func (f Flag) Success() bool {
	return f.info().success
}

func (f Flag) String() string {
	return f.info().name
}
