package game

// DefaultHealth is the health a player starts with when none is given.
const DefaultHealth = 3

// Player is the inventory carried through the maze. Location is tracked by
// the GameState, not the player.
type Player struct {
	Container

	health int
}

// NewPlayer creates a player with an empty inventory. A non-positive health
// falls back to DefaultHealth.
func NewPlayer(name, description string, health int) *Player {
	if health <= 0 {
		health = DefaultHealth
	}
	return &Player{
		Container: newContainer(name, description),
		health:    health,
	}
}

// Health returns the remaining health.
func (p *Player) Health() int {
	return p.health
}

// IsDead reports whether the player has run out of health.
func (p *Player) IsDead() bool {
	return p.health <= 0
}

// InventoryString lists carried items with their weights.
func (p *Player) InventoryString() string {
	return p.Name() + " inventory:\n" + p.inventoryString()
}

func (p *Player) getHit() {
	if p.health > 0 {
		p.health--
	}
}

func (p *Player) findDescription(name string) (string, bool) {
	if nameKey(name) == "player" {
		return p.Description(), true
	}
	return p.Container.findDescription(name)
}
