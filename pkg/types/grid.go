package types

import (
	"errors"
	"fmt"
)

// Grid construction errors.
var (
	ErrDuplicatePlacement = errors.New("intersection already holds a checkpoint")
	ErrMissingStart       = errors.New("no start checkpoint designated")
)

// Grid is a sparse street grid: checkpoints at some intersections plus one
// designated start. A grid is read-only during a walk and may be shared by
// concurrent walks; each walk keeps its own state.
type Grid struct {
	dim         Dimensions
	checkpoints map[Position]Checkpoint
	start       Position
	hasStart    bool
}

// NewGrid returns an empty grid of the given size.
func NewGrid(dim Dimensions) (*Grid, error) {
	if err := dim.Validate(); err != nil {
		return nil, err
	}
	return &Grid{
		dim:         dim,
		checkpoints: make(map[Position]Checkpoint),
	}, nil
}

// Place binds a checkpoint to an intersection. At most one checkpoint may
// occupy an intersection; a second placement is a configuration error.
func (g *Grid) Place(pos Position, c Checkpoint) error {
	if _, taken := g.checkpoints[pos]; taken {
		return fmt.Errorf("%w: %s", ErrDuplicatePlacement, pos.Corner())
	}
	g.checkpoints[pos] = c
	return nil
}

// CheckpointAt returns the checkpoint at pos. Absence means the walk
// continues straight through the intersection.
func (g *Grid) CheckpointAt(pos Position) (Checkpoint, bool) {
	c, ok := g.checkpoints[pos]
	return c, ok
}

// SetStart designates the intersection a walk begins at. Later calls
// replace earlier ones; the loader relies on this so that the last start
// checkpoint in a course wins.
func (g *Grid) SetStart(pos Position) {
	g.start = pos
	g.hasStart = true
}

// Start returns the designated start intersection, if one was set.
func (g *Grid) Start() (Position, bool) {
	return g.start, g.hasStart
}

// Dimensions returns the grid size.
func (g *Grid) Dimensions() Dimensions { return g.dim }

// Len returns the number of placed checkpoints.
func (g *Grid) Len() int { return len(g.checkpoints) }
