package game

import (
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestGameState_Go(t *testing.T) {
	tests := map[string]struct {
		direction  string
		expFlag    Flag
		expRoom    string
		expHistory int
	}{
		"open door": {
			direction:  "east",
			expFlag:    Moved,
			expRoom:    "theater",
			expHistory: 1,
		},
		"no argument": {
			direction: "  ",
			expFlag:   NoArgument,
			expRoom:   "outside",
		},
		"no door": {
			direction: "north",
			expFlag:   NoDoor,
			expRoom:   "outside",
		},
		"unparseable direction": {
			direction: "sideways",
			expFlag:   NoDoor,
			expRoom:   "outside",
		},
		"locked door": {
			direction: "west",
			expFlag:   Locked,
			expRoom:   "outside",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := newTestWorld()

			flag := w.state.Go(tt.direction)

			testutil.AssertEqual(t, "flag", flag, tt.expFlag)
			testutil.AssertEqual(t, "room", w.state.CurrentRoom().Name(), tt.expRoom)
			testutil.AssertEqual(t, "history", w.state.HistoryLen(), tt.expHistory)
		})
	}
}

func TestGameState_GoBack(t *testing.T) {
	w := newTestWorld()

	testutil.AssertEqual(t, "empty history", w.state.GoBack(), NoHistory)

	testutil.AssertEqual(t, "go south", w.state.Go("south"), Moved)
	testutil.AssertEqual(t, "history after move", w.state.HistoryLen(), 1)

	testutil.AssertEqual(t, "go back", w.state.GoBack(), Moved)
	if !w.state.IsAt(w.outside) {
		t.Errorf("expected to be back outside, in %q", w.state.CurrentRoom().Name())
	}
	testutil.AssertEqual(t, "history after back", w.state.HistoryLen(), 0)
	testutil.AssertEqual(t, "nothing left", w.state.GoBack(), NoHistory)
}

func TestGameState_GoBack_BlockedKeepsHistory(t *testing.T) {
	start := NewRoom("start", "")
	cell := NewRoom("cell", "")
	start.SetExit(North, NewDoor("gate", "", cell))
	cell.SetExit(South, NewLockedDoor("gate", "", "barred", start, NewItem("bar key", "", 0)))
	gs := NewGameState(NewPlayer("p", "", 0), start, nil, nil)

	testutil.AssertEqual(t, "go north", gs.Go("north"), Moved)
	testutil.AssertEqual(t, "go back", gs.GoBack(), Locked)
	testutil.AssertEqual(t, "history kept", gs.HistoryLen(), 1)
	if !gs.IsAt(cell) {
		t.Error("player should not have moved")
	}
}

func TestGameState_TakeAndDrop(t *testing.T) {
	tests := map[string]struct {
		setup   func(w *testWorld)
		action  func(gs *GameState) Flag
		expFlag Flag
	}{
		"take item": {
			setup:   func(w *testWorld) { w.state.Go("south") },
			action:  func(gs *GameState) Flag { return gs.PlayerTakes("key") },
			expFlag: ItemTaken,
		},
		"take missing": {
			action:  func(gs *GameState) Flag { return gs.PlayerTakes("sword") },
			expFlag: NoObjectRoom,
		},
		"take no argument": {
			action:  func(gs *GameState) Flag { return gs.PlayerTakes("") },
			expFlag: NoArgument,
		},
		"take character": {
			setup:   func(w *testWorld) { w.state.Go("east") },
			action:  func(gs *GameState) Flag { return gs.PlayerTakes("Phil") },
			expFlag: CharacterTaken,
		},
		"drop item": {
			setup: func(w *testWorld) {
				w.state.Go("south")
				w.state.PlayerTakes("key")
			},
			action:  func(gs *GameState) Flag { return gs.PlayerDrops("key") },
			expFlag: ItemDropped,
		},
		"drop character": {
			setup: func(w *testWorld) {
				w.state.Go("east")
				w.state.PlayerTakes("phil")
				w.state.GoBack()
			},
			action:  func(gs *GameState) Flag { return gs.PlayerDrops("phil") },
			expFlag: CharacterDropped,
		},
		"drop missing": {
			action:  func(gs *GameState) Flag { return gs.PlayerDrops("phil") },
			expFlag: NoObjectParty,
		},
		"drop no argument": {
			action:  func(gs *GameState) Flag { return gs.PlayerDrops(" ") },
			expFlag: NoArgument,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := newTestWorld()
			if tt.setup != nil {
				tt.setup(w)
			}

			testutil.AssertEqual(t, "flag", tt.action(w.state), tt.expFlag)
		})
	}
}

func TestGameState_TakeImmovable(t *testing.T) {
	w := newTestWorld()
	links, _ := newChain(w.reg, w.outside, "ab", true)

	testutil.AssertEqual(t, "flag", w.state.PlayerTakes("a"), Immovable)
	assertSame(t, "still in room", w.outside.Object("a"), links[0])
	testutil.AssertEqual(t, "not in party", w.state.ContainsObject(links[0]), false)
}

func TestGameState_CharacterNeverInTwoPlaces(t *testing.T) {
	w := newTestWorld()
	w.state.Go("east")

	w.state.PlayerTakes("phil")
	if w.theater.Object("phil") != nil {
		t.Error("phil should have left the theater")
	}
	testutil.AssertEqual(t, "in party", w.state.ContainsObject(w.phil), true)

	w.state.GoBack()
	w.state.PlayerDrops("phil")
	testutil.AssertEqual(t, "in party after drop", w.state.ContainsObject(w.phil), false)
	assertSame(t, "outside", w.outside.Object("phil"), w.phil)
	if w.theater.Object("phil") != nil {
		t.Error("phil should not reappear in the theater")
	}
}

func TestGameState_ItemsAreConserved(t *testing.T) {
	w := newTestWorld()
	count := func() int {
		return len(w.outside.Items()) + len(w.theater.Items()) + len(w.pub.Items()) +
			len(w.lab.Items()) + len(w.state.Player().Items())
	}
	before := count()

	steps := []func(){
		func() { w.state.Go("south") },
		func() { w.state.PlayerTakes("key") },
		func() { w.state.PlayerTakes("key") },
		func() { w.state.PlayerDrops("key") },
		func() { w.state.PlayerTakes("key") },
		func() { w.state.GoBack() },
		func() { w.state.PlayerDrops("key") },
		func() { w.state.PlayerDrops("key") },
	}
	for _, step := range steps {
		step()
		testutil.AssertEqual(t, "item count", count(), before)
	}
	assertSame(t, "key outside", w.outside.Item("key"), w.key)
}

func TestGameState_SameNameNeverLost(t *testing.T) {
	tests := map[string]struct {
		setup   func(w *testWorld) *Item
		action  func(gs *GameState) Flag
		expFlag Flag
	}{
		"take while carrying a namesake": {
			setup: func(w *testWorld) *Item {
				decoy := NewItem("KEY", "a fake key", 2)
				w.state.Player().AddItem(decoy)
				w.state.Go("south")
				return decoy
			},
			action:  func(gs *GameState) Flag { return gs.PlayerTakes("key") },
			expFlag: AlreadyCarried,
		},
		"drop onto a namesake": {
			setup: func(w *testWorld) *Item {
				decoy := NewItem("key", "a fake key", 2)
				w.state.Player().AddItem(decoy)
				w.state.Go("south")
				return decoy
			},
			action:  func(gs *GameState) Flag { return gs.PlayerDrops("key") },
			expFlag: AlreadyHere,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := newTestWorld()
			decoy := tt.setup(w)
			total := len(w.lab.Items()) + len(w.state.Player().Items())

			testutil.AssertEqual(t, "flag", tt.action(w.state), tt.expFlag)

			testutil.AssertEqual(t, "item count", len(w.lab.Items())+len(w.state.Player().Items()), total)
			assertSame(t, "key in lab", w.lab.Item("key"), w.key)
			assertSame(t, "decoy carried", w.state.Player().Item("key"), decoy)
		})
	}
}

func TestGameState_SameNamePartyMember(t *testing.T) {
	w := newTestWorld()
	twin := w.reg.NewCharacter("Phil", "another tall man", "Hi!", "Again?")
	w.outside.AddInteractive(twin)

	testutil.AssertEqual(t, "take first", w.state.PlayerTakes("phil"), CharacterTaken)
	w.state.Go("east")
	testutil.AssertEqual(t, "take namesake", w.state.PlayerTakes("phil"), AlreadyInParty)
	assertSame(t, "namesake stays", w.theater.Object("phil"), w.phil)
	testutil.AssertEqual(t, "first still in party", w.state.ContainsObject(twin), true)

	testutil.AssertEqual(t, "drop onto namesake", w.state.PlayerDrops("phil"), AlreadyHere)
	assertSame(t, "room unchanged", w.theater.Object("phil"), w.phil)
	testutil.AssertEqual(t, "party unchanged", w.state.ContainsObject(twin), true)
	testutil.AssertEqual(t, "party size", len(w.state.Party()), 1)
}

func TestGameState_OpenDoor(t *testing.T) {
	w := newTestWorld()

	testutil.AssertEqual(t, "no argument", w.state.OpenDoor(""), NoArgument)
	testutil.AssertEqual(t, "no door", w.state.OpenDoor("north"), NoDoor)
	testutil.AssertEqual(t, "already open", w.state.OpenDoor("east"), Unlocked)
	testutil.AssertEqual(t, "no key", w.state.OpenDoor("west"), WrongKey)

	decoy := NewItem("key", "a fake key", 2)
	w.outside.AddItem(decoy)
	testutil.AssertEqual(t, "take decoy", w.state.PlayerTakes("key"), ItemTaken)
	testutil.AssertEqual(t, "decoy key", w.state.OpenDoor("west"), WrongKey)
	testutil.AssertEqual(t, "still locked", w.pubDoor.IsLocked(), true)
	assertSame(t, "decoy kept", w.state.Player().Item("key"), decoy)
	testutil.AssertEqual(t, "drop decoy", w.state.PlayerDrops("key"), ItemDropped)

	w.state.Go("south")
	w.state.PlayerTakes("key")
	w.state.GoBack()

	testutil.AssertEqual(t, "real key", w.state.OpenDoor("west"), Opened)
	testutil.AssertEqual(t, "unlocked", w.pubDoor.IsLocked(), false)
	if w.state.Player().Item("key") != nil {
		t.Error("key should be used up")
	}
	testutil.AssertEqual(t, "repeat", w.state.OpenDoor("west"), Unlocked)
	testutil.AssertEqual(t, "go west", w.state.Go("west"), Moved)
	testutil.AssertEqual(t, "in pub", w.state.IsAt(w.pub), true)
}

func TestGameState_VaultScenario(t *testing.T) {
	hall := NewRoom("hall", "")
	vault := NewRoom("vault", "")
	key := NewItem("key", "the vault key", 1)
	hall.SetExit(East, NewLockedDoor("vault door", "open", "sealed", vault, key))
	gs := NewGameState(NewPlayer("p", "", 0), hall, nil, nil)

	testutil.AssertEqual(t, "without key", gs.OpenDoor("east"), WrongKey)

	hall.AddItem(NewItem("key", "a decoy", 1))
	gs.PlayerTakes("key")
	testutil.AssertEqual(t, "with decoy", gs.OpenDoor("east"), WrongKey)
	gs.PlayerDrops("key")
	hall.AddItem(key)
	gs.PlayerTakes("key")

	testutil.AssertEqual(t, "with key", gs.OpenDoor("east"), Opened)
	testutil.AssertEqual(t, "go east", gs.Go("east"), Moved)
	testutil.AssertEqual(t, "in vault", gs.IsAt(vault), true)
}

func TestGameState_OpenDoor_UnlocksBothSides(t *testing.T) {
	hall := NewRoom("hall", "")
	vault := NewRoom("vault", "")
	key := NewItem("key", "the vault key", 1)
	there := NewLockedDoor("vault door", "open", "sealed", vault, key)
	back := NewLockedDoor("vault door", "open", "sealed", hall, key)
	hall.SetExit(East, there)
	vault.SetExit(West, back)
	hall.AddItem(key)
	gs := NewGameState(NewPlayer("p", "", 0), hall, nil, nil)

	gs.PlayerTakes("key")
	testutil.AssertEqual(t, "open", gs.OpenDoor("east"), Opened)
	testutil.AssertEqual(t, "back unlocked", back.IsLocked(), false)
	testutil.AssertEqual(t, "go east", gs.Go("east"), Moved)
	testutil.AssertEqual(t, "go back", gs.GoBack(), Moved)
	testutil.AssertEqual(t, "in hall", gs.IsAt(hall), true)
}

func TestGameState_Interact_Character(t *testing.T) {
	w := newTestWorld()

	testutil.AssertEqual(t, "no argument", w.state.Interact(""), NoArgument)
	testutil.AssertEqual(t, "absent", w.state.Interact("phil"), NoInteractive)

	w.state.Go("east")
	testutil.AssertEqual(t, "first", w.state.Interact("phil"), Interacted)
	testutil.AssertEqual(t, "greeting", strings.Join(w.state.Messages(), "|"), "Hello!")

	w.state.PlayerTakes("phil")
	w.state.GoBack()
	testutil.AssertEqual(t, "from party", w.state.Interact("phil"), Interacted)
	testutil.AssertEqual(t, "dialogue", strings.Join(w.state.Messages(), "|"), "Where are we going?")
}

func TestGameState_Interact_Chain(t *testing.T) {
	tests := map[string]struct {
		order     []string
		expFlags  []Flag
		expActive []bool
		expLocked bool
		expHealth int
		trapped   bool
	}{
		"correct order": {
			order:     []string{"a", "b", "c"},
			expFlags:  []Flag{Interacted, Interacted, Interacted},
			expActive: []bool{true, true, true},
			expLocked: false,
			expHealth: 3,
			trapped:   true,
		},
		"wrong first step": {
			order:     []string{"b"},
			expFlags:  []Flag{Interacted},
			expActive: []bool{false, false, false},
			expLocked: true,
			expHealth: 2,
			trapped:   true,
		},
		"wrong step resets progress": {
			order:     []string{"a", "c"},
			expFlags:  []Flag{Interacted, Interacted},
			expActive: []bool{false, false, false},
			expLocked: true,
			expHealth: 2,
			trapped:   true,
		},
		"untrapped mistake costs nothing": {
			order:     []string{"a", "c"},
			expFlags:  []Flag{Interacted, Interacted},
			expActive: []bool{false, false, false},
			expLocked: true,
			expHealth: 3,
			trapped:   false,
		},
		"repeat has no effect": {
			order:     []string{"a", "a"},
			expFlags:  []Flag{Interacted, NoEffect},
			expActive: []bool{true, false, false},
			expLocked: true,
			expHealth: 3,
			trapped:   true,
		},
		"recover after mistake": {
			order:     []string{"a", "c", "a", "b", "c"},
			expFlags:  []Flag{Interacted, Interacted, Interacted, Interacted, Interacted},
			expActive: []bool{true, true, true},
			expLocked: false,
			expHealth: 2,
			trapped:   true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := newTestWorld()
			vault := NewRoom("vault", "")
			links, doors := newChain(w.reg, w.outside, "abc", tt.trapped, vault, w.outside)
			w.outside.SetExit(North, doors[0])
			vault.SetExit(South, doors[1])

			for i, obj := range tt.order {
				testutil.AssertEqual(t, "flag "+obj, w.state.Interact(obj), tt.expFlags[i])
			}

			for i, l := range links {
				testutil.AssertEqual(t, "active "+l.Name(), l.IsActive(), tt.expActive[i])
			}
			for _, d := range doors {
				testutil.AssertEqual(t, "door locked", d.IsLocked(), tt.expLocked)
			}
			testutil.AssertEqual(t, "health", w.state.Player().Health(), tt.expHealth)
		})
	}
}

func TestGameState_Interact_ChainDialogue(t *testing.T) {
	w := newTestWorld()
	newChain(w.reg, w.outside, "ab", true)

	w.state.Interact("b")
	testutil.AssertEqual(t, "failure", strings.Join(w.state.Messages(), "|"), "clunk")
	w.state.Interact("a")
	testutil.AssertEqual(t, "success", strings.Join(w.state.Messages(), "|"), "click")
	testutil.AssertEqual(t, "drained", len(w.state.Messages()), 0)
}

func TestGameState_FindDescription(t *testing.T) {
	tests := map[string]struct {
		name  string
		exp   string
		expOk bool
	}{
		"player":      {name: "player", exp: "a student", expOk: true},
		"locked door": {name: "west", exp: "pub entry: a heavy locked door", expOk: true},
		"open door":   {name: "east", exp: "theater door: a nice door", expOk: true},
		"no door":     {name: "north", expOk: false},
		"party":       {name: "party", exp: "You are all alone in the party.", expOk: true},
		"unknown":     {name: "unicorn", expOk: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := newTestWorld()
			desc, ok := w.state.FindDescription(tt.name)
			testutil.AssertEqual(t, "ok", ok, tt.expOk)
			testutil.AssertEqual(t, "description", desc, tt.exp)
		})
	}
}

func TestGameState_StateDescription(t *testing.T) {
	w := newTestWorld()
	w.state.Go("east")

	desc := w.state.StateDescription()
	for _, want := range []string{"You are in theater.", "phil: a tall man", "There are exits in the directions:  west"} {
		if !strings.Contains(desc, want) {
			t.Errorf("description %q missing %q", desc, want)
		}
	}
}

func TestGameState_PartyDescription(t *testing.T) {
	w := newTestWorld()
	w.state.Go("south")
	w.state.PlayerTakes("key")
	w.state.GoBack()
	w.state.Go("east")
	w.state.PlayerTakes("phil")

	testutil.AssertEqual(t, "party", w.state.PartyDescription(),
		"Alexander inventory:\n  key has weight of 2\nIn the party:\n  phil: a tall man")
}

func TestGameState_Hint(t *testing.T) {
	w := newTestWorld()

	w.state.Hint()
	testutil.AssertEqual(t, "first", strings.Join(w.state.Messages(), "|"), "first")
	w.state.Hint()
	testutil.AssertEqual(t, "second", strings.Join(w.state.Messages(), "|"), "second")
	w.state.Hint()
	testutil.AssertEqual(t, "all", strings.Join(w.state.Messages(), "|"), "first|second")
}

func TestGameState_GetHit(t *testing.T) {
	w := newTestWorld()
	for range 5 {
		w.state.GetHit()
	}
	testutil.AssertEqual(t, "health floors at zero", w.state.Player().Health(), 0)
	testutil.AssertEqual(t, "dead", w.state.Player().IsDead(), true)
}
