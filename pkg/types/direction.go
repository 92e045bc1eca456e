package types

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Direction is a compass heading on the grid. Stop is the terminal
// pseudo-direction: checkpoints may resolve to it, but a walker never
// moves on it.
type Direction uint8

// The four compass directions plus the terminal pseudo-direction.
const (
	North Direction = iota
	South
	East
	West
	Stop
)

// ErrInvalidDirection reports a direction that cannot be moved on.
var ErrInvalidDirection = errors.New("invalid direction")

// directionsByName maps the textual direction names to their values.
var directionsByName = map[string]Direction{
	"north": North,
	"south": South,
	"east":  East,
	"west":  West,
	"stop":  Stop,
}

// ParseDirection returns the Direction named by s. The name must be one of
// "north", "south", "east", "west", or "stop".
func ParseDirection(s string) (Direction, error) {
	d, ok := directionsByName[s]
	if !ok {
		return Stop, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
	return d, nil
}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	case Stop:
		return "stop"
	default:
		return "unknown"
	}
}

// Compass reports whether d is one of the four movement directions.
func (d Direction) Compass() bool {
	switch d {
	case North, South, East, West:
		return true
	}
	return false
}

// MarshalJSON encodes the direction as its textual name.
func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
