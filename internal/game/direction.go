package game

import "strings"

// Direction represents a cardinal direction an exit can face.
type Direction int

const (
	North Direction = iota
	East
	South
	West
	// Unknown is the result of parsing anything that is not a direction.
	// No exit is ever stored under it.
	Unknown
)

// AllDirections returns the cardinal directions in display order.
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// ParseDirection converts player input into a Direction. Unrecognized input
// yields Unknown.
func ParseDirection(s string) Direction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n":
		return North
	case "east", "e":
		return East
	case "south", "s":
		return South
	case "west", "w":
		return West
	default:
		return Unknown
	}
}

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "?"
	}
}

// IsValid returns true if the direction is a cardinal direction.
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Reverse returns the opposite direction. Unknown reverses to itself.
func (d Direction) Reverse() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return Unknown
	}
}
