package types

import (
	"errors"
	"fmt"
)

// Checkpoint construction and resolution errors.
var (
	ErrUnknownCheckpoint      = errors.New("unknown checkpoint")
	ErrUnresolvableDeflection = errors.New("no outgoing direction for this incoming direction")
)

// Checkpoint names as they appear in course files.
const (
	CheckpointStartNorth = "start_north"
	CheckpointStartSouth = "start_south"
	CheckpointStartEast  = "start_east"
	CheckpointStartWest  = "start_west"
	CheckpointGoNorth    = "go_north"
	CheckpointGoSouth    = "go_south"
	CheckpointGoEast     = "go_east"
	CheckpointGoWest     = "go_west"
	CheckpointTurnLeft   = "turn_left"
	CheckpointTurnRight  = "turn_right"
	CheckpointGoBack     = "go_back"
	CheckpointStop       = "stop"
)

// checkpointKind discriminates the resolve behaviours. The zero kind marks
// an unconstructed Checkpoint.
type checkpointKind uint8

const (
	kindInvalid checkpointKind = iota
	kindFixed
	kindDeflect
	kindStop
)

// Checkpoint is a directional instruction bound to one intersection. It is
// an immutable value; construct it with NewCheckpoint. The zero value is
// not a valid checkpoint.
type Checkpoint struct {
	name  string
	kind  checkpointKind
	fixed Direction
	start bool
}

// checkpoints is the static registry of recognized checkpoint names.
var checkpoints = map[string]Checkpoint{
	CheckpointStartNorth: {name: CheckpointStartNorth, kind: kindFixed, fixed: North, start: true},
	CheckpointStartSouth: {name: CheckpointStartSouth, kind: kindFixed, fixed: South, start: true},
	CheckpointStartEast:  {name: CheckpointStartEast, kind: kindFixed, fixed: East, start: true},
	CheckpointStartWest:  {name: CheckpointStartWest, kind: kindFixed, fixed: West, start: true},
	CheckpointGoNorth:    {name: CheckpointGoNorth, kind: kindFixed, fixed: North},
	CheckpointGoSouth:    {name: CheckpointGoSouth, kind: kindFixed, fixed: South},
	CheckpointGoEast:     {name: CheckpointGoEast, kind: kindFixed, fixed: East},
	CheckpointGoWest:     {name: CheckpointGoWest, kind: kindFixed, fixed: West},
	CheckpointTurnLeft:   {name: CheckpointTurnLeft, kind: kindDeflect},
	CheckpointTurnRight:  {name: CheckpointTurnRight, kind: kindDeflect},
	CheckpointGoBack:     {name: CheckpointGoBack, kind: kindDeflect},
	CheckpointStop:       {name: CheckpointStop, kind: kindStop},
}

// deflections holds the fixed (incoming -> outgoing) table for each
// deflection checkpoint, exhaustive over the compass directions.
var deflections = map[string]map[Direction]Direction{
	CheckpointTurnRight: {South: West, West: North, North: East, East: South},
	CheckpointTurnLeft:  {South: East, West: South, North: West, East: North},
	CheckpointGoBack:    {South: North, West: East, North: South, East: West},
}

// NewCheckpoint returns the checkpoint registered under name.
// Returns ErrUnknownCheckpoint for any name outside the fixed set.
func NewCheckpoint(name string) (Checkpoint, error) {
	c, ok := checkpoints[name]
	if !ok {
		return Checkpoint{}, fmt.Errorf("%w: %q", ErrUnknownCheckpoint, name)
	}
	return c, nil
}

// Resolve converts the incoming travel direction into the outgoing one.
// Fixed-direction checkpoints (start_*, go_*) ignore the incoming
// direction. Deflection checkpoints (turn_left, turn_right, go_back)
// require one of the four compass directions and return
// ErrUnresolvableDeflection otherwise, e.g. for the undefined heading at
// the beginning of a walk. The stop checkpoint always resolves to Stop.
// A zero Checkpoint returns ErrUnknownCheckpoint.
func (c Checkpoint) Resolve(incoming Direction) (Direction, error) {
	switch c.kind {
	case kindFixed:
		return c.fixed, nil
	case kindDeflect:
		out, ok := deflections[c.name][incoming]
		if !ok {
			return Stop, fmt.Errorf("%w: %s heading %s", ErrUnresolvableDeflection, c.name, incoming)
		}
		return out, nil
	case kindStop:
		return Stop, nil
	default:
		return Stop, fmt.Errorf("%w: zero checkpoint", ErrUnknownCheckpoint)
	}
}

// Name returns the checkpoint name as written in course files.
func (c Checkpoint) Name() string { return c.name }

// IsStart reports whether the checkpoint designates a walk start.
func (c Checkpoint) IsStart() bool { return c.start }

// Heading returns the built-in outgoing direction of a fixed-direction
// checkpoint, or Stop for checkpoints whose outcome depends on the walk.
func (c Checkpoint) Heading() Direction {
	if c.kind == kindFixed {
		return c.fixed
	}
	return Stop
}
