package game

import "testing"

// assertSame fails unless got and exp are the same instance. Deep equality
// would also accept a different instance with the same fields.
func assertSame[T any](t *testing.T, label string, got, exp *T) {
	t.Helper()
	if got != exp {
		t.Errorf("%s: got %p, expected %p", label, got, exp)
	}
}

// testWorld is a small maze used across the tests:
//
//	theater --west/east-- outside --west/east [locked by key]-- pub
//	                         |
//	                       south/north
//	                         |
//	                        lab
type testWorld struct {
	state    *GameState
	reg      *Registry
	outside  *Room
	theater  *Room
	pub      *Room
	lab      *Room
	key      *Item
	pubDoor  *Door
	backDoor *Door
	phil     *Interactive
}

func newTestWorld() *testWorld {
	w := &testWorld{
		reg:     NewRegistry(),
		outside: NewRoom("outside", "outside the main entrance"),
		theater: NewRoom("theater", "in a lecture theater"),
		pub:     NewRoom("pub", "in the campus pub"),
		lab:     NewRoom("lab", "in a computing lab"),
	}

	w.outside.SetExit(East, NewDoor("theater door", "a nice door", w.theater))
	w.theater.SetExit(West, NewDoor("theater exit", "", w.outside))
	w.outside.SetExit(South, NewDoor("lab door", "a lovely door", w.lab))
	w.lab.SetExit(North, NewDoor("lab exit", "", w.outside))

	w.key = NewItem("key", "a shiny key", 2)
	w.pubDoor = NewLockedDoor("pub entry", "an open pub door", "a heavy locked door", w.pub, w.key)
	w.backDoor = NewLockedDoor("pub exit", "an open pub door", "a heavy locked door", w.outside, w.key)
	w.outside.SetExit(West, w.pubDoor)
	w.pub.SetExit(East, w.backDoor)

	w.lab.AddItem(w.key)
	w.pub.AddItem(NewItem("glass", "an empty glass", 0.2))

	w.phil = w.reg.NewCharacter("phil", "a tall man", "Hello!", "Where are we going?")
	w.theater.AddInteractive(w.phil)

	w.state = NewGameState(NewPlayer("Alexander", "a student", 3), w.outside, w.reg, NewHints("first", "second"))
	return w
}

// newChain builds mechanisms named after the letters of word in room. The
// last letter is a lock bound to doors.
func newChain(reg *Registry, room *Room, word string, trapped bool, doorsTo ...*Room) ([]*Interactive, []*Door) {
	var links []*Interactive
	prev := NoPrevious
	for i, r := range word {
		var o *Interactive
		var err error
		if i == len(word)-1 {
			o, err = reg.NewLockMechanism(string(r), "a button", "clunk", "click", prev, trapped)
		} else {
			o, err = reg.NewMechanism(string(r), "a button", "clunk", "click", prev, trapped)
		}
		if err != nil {
			panic(err)
		}
		room.AddInteractive(o)
		links = append(links, o)
		prev = o.ObjectId()
	}

	lock := links[len(links)-1]
	var doors []*Door
	for _, dest := range doorsTo {
		d := NewLockedDoor("vault door", "open", "sealed", dest, lock)
		if err := lock.BindDoor(d); err != nil {
			panic(err)
		}
		doors = append(doors, d)
	}
	return links, doors
}
