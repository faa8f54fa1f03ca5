package game

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestContainer_AddItem(t *testing.T) {
	c := newContainer("box", "a box")
	key := NewItem("Key", "a shiny key", 2)

	c.AddItem(key)

	assertSame(t, "lookup is case-insensitive", c.Item("key"), key)
	if key.owner != &c {
		t.Error("item owner should be the container")
	}
	testutil.AssertEqual(t, "empty", c.IsEmpty(), false)
}

func TestContainer_AddItem_ReplacesSameName(t *testing.T) {
	c := newContainer("box", "a box")
	first := NewItem("key", "first", 1)
	second := NewItem("key", "second", 1)

	c.AddItem(first)
	c.AddItem(second)

	assertSame(t, "last write wins", c.Item("key"), second)
	testutil.AssertEqual(t, "item count", len(c.Items()), 1)
	if first.owner != nil {
		t.Error("replaced item should have no owner")
	}
}

func TestContainer_AddItem_DetachesFromPreviousOwner(t *testing.T) {
	a := newContainer("a", "")
	b := newContainer("b", "")
	item := NewItem("lamp", "", 1)

	a.AddItem(item)
	b.AddItem(item)

	if a.Item("lamp") != nil {
		t.Error("item should no longer be in the first container")
	}
	assertSame(t, "second container", b.Item("lamp"), item)
}

func TestContainer_TransferTo(t *testing.T) {
	tests := map[string]struct {
		item    string
		held    *Item
		expOk   bool
		expFrom int
		expTo   int
	}{
		"present item moves": {
			item:    "glass",
			expOk:   true,
			expFrom: 1,
			expTo:   1,
		},
		"absent item changes nothing": {
			item:    "sword",
			expOk:   false,
			expFrom: 2,
			expTo:   0,
		},
		"name taken changes nothing": {
			item:    "glass",
			held:    NewItem("Glass", "a plastic cup", 0.1),
			expOk:   false,
			expFrom: 2,
			expTo:   1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			from := newContainer("pub", "")
			to := newContainer("player", "")
			from.AddItem(NewItem("glass", "", 0.2))
			from.AddItem(NewItem("chair", "", 2))
			if tt.held != nil {
				to.AddItem(tt.held)
			}

			ok := from.transferTo(&to, tt.item)

			testutil.AssertEqual(t, "ok", ok, tt.expOk)
			testutil.AssertEqual(t, "from count", len(from.Items()), tt.expFrom)
			testutil.AssertEqual(t, "to count", len(to.Items()), tt.expTo)
			if tt.held != nil {
				assertSame(t, "held item kept", to.Item(tt.item), tt.held)
			}
		})
	}
}

func TestContainer_RemoveItem(t *testing.T) {
	c := newContainer("box", "")
	item := NewItem("coin", "", 0)
	c.AddItem(item)

	assertSame(t, "removed", c.removeItem("COIN"), item)
	if c.removeItem("coin") != nil {
		t.Error("second remove should find nothing")
	}
	testutil.AssertEqual(t, "empty", c.IsEmpty(), true)
}

func TestNewItem_NegativeWeight(t *testing.T) {
	testutil.AssertEqual(t, "weight", NewItem("feather", "", -1).Weight(), 0.0)
}
