package game

// Item is a movable entity with no behavior of its own. It is held by
// exactly one container at a time.
type Item struct {
	Entity

	weight float64
	owner  *Container
}

// NewItem creates an item. Negative weights are treated as zero.
func NewItem(name, description string, weight float64) *Item {
	if weight < 0 {
		weight = 0
	}
	return &Item{
		Entity: newEntity(name, description),
		weight: weight,
	}
}

// Weight returns the item's weight.
func (i *Item) Weight() float64 {
	return i.weight
}
