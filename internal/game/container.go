package game

import (
	"fmt"
	"slices"
	"strings"
)

// Container owns a collection of items keyed by name. An item is referenced
// by at most one container; adding it somewhere detaches it from its
// previous owner.
type Container struct {
	Entity

	items map[string]*Item
}

func newContainer(name, description string) Container {
	return Container{
		Entity: newEntity(name, description),
		items:  make(map[string]*Item),
	}
}

// AddItem places item in the container. An item already stored under the
// same name is replaced.
func (c *Container) AddItem(item *Item) {
	if item == nil {
		return
	}
	if item.owner != nil && item.owner != c {
		item.owner.detach(item)
	}

	key := nameKey(item.Name())
	if prev, ok := c.items[key]; ok && prev != item {
		prev.owner = nil
	}
	c.items[key] = item
	item.owner = c
}

// Item returns the item with the given name, or nil if it is not here.
func (c *Container) Item(name string) *Item {
	return c.items[nameKey(name)]
}

// Items returns the held items sorted by name.
func (c *Container) Items() []*Item {
	items := make([]*Item, 0, len(c.items))
	for _, it := range c.items {
		items = append(items, it)
	}
	slices.SortFunc(items, func(a, b *Item) int {
		return strings.Compare(nameKey(a.Name()), nameKey(b.Name()))
	})
	return items
}

// IsEmpty reports whether the container holds no items.
func (c *Container) IsEmpty() bool {
	return len(c.items) == 0
}

// removeItem detaches and returns the named item, or nil if absent.
func (c *Container) removeItem(name string) *Item {
	key := nameKey(name)
	item, ok := c.items[key]
	if !ok {
		return nil
	}
	delete(c.items, key)
	item.owner = nil
	return item
}

// detach removes item only if this exact instance is the one stored.
func (c *Container) detach(item *Item) {
	key := nameKey(item.Name())
	if c.items[key] == item {
		delete(c.items, key)
	}
	item.owner = nil
}

// holdsOther reports whether a different item is stored under item's name.
func (c *Container) holdsOther(item *Item) bool {
	held := c.items[nameKey(item.Name())]
	return held != nil && held != item
}

// transferTo moves the named item into other. Nothing changes in either
// container when the item is absent or other already holds a different item
// with that name.
func (c *Container) transferTo(other *Container, name string) bool {
	item := c.Item(name)
	if item == nil || other.holdsOther(item) {
		return false
	}
	c.removeItem(name)
	other.AddItem(item)
	return true
}

func (c *Container) inventoryString() string {
	var sb strings.Builder
	for _, it := range c.Items() {
		fmt.Fprintf(&sb, "  %s has weight of %g\n", it.Name(), it.Weight())
	}
	return sb.String()
}

// findDescription describes the container itself or one of its items.
func (c *Container) findDescription(name string) (string, bool) {
	if nameKey(name) == nameKey(c.Name()) {
		return c.Description(), true
	}
	if it := c.Item(name); it != nil {
		return it.Description(), true
	}
	return "", false
}
