// Package walk implements the step-by-step grid traversal: a walker starts
// at the designated start checkpoint, advances one block at a time,
// resolves each checkpoint it lands on, and ends with one of the three
// terminal outcomes (success, out of bounds, infinite loop).
package walk

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/flaneur/pkg/types"
)

// Walker traverses one grid. Create a fresh Walker per walk; the grid is
// only read and may be shared.
type Walker struct {
	grid *types.Grid

	pos     types.Position
	dir     types.Direction
	segment int
	total   int
	history *History
	events  []types.Event
}

// New returns a walker for the given grid.
func New(grid *types.Grid) *Walker {
	return &Walker{
		grid:    grid,
		history: NewHistory(),
	}
}

// Walk runs the traversal to its terminal status. Configuration problems
// return an error: a grid without a start (ErrMissingStart), a deflection
// checkpoint at the start intersection (ErrUnresolvableDeflection), or a
// start intersection with no checkpoint at all (ErrInvalidDirection).
// OutOfBounds and InfiniteLoop are not errors; they are outcomes carried
// by the report, alongside every event emitted up to that point.
//
// The history bounds the walk: each iteration either terminates or records
// a new (intersection, heading) state, of which a grid holds finitely many.
func (w *Walker) Walk() (*types.Report, error) {
	start, ok := w.grid.Start()
	if !ok {
		return nil, types.ErrMissingStart
	}
	w.pos = start
	w.dir = types.Stop // undefined until the start checkpoint resolves it

	runID := generateUUID()
	logrus.WithFields(logrus.Fields{
		"run_id": runID,
		"start":  start.Corner(),
		"grid":   w.grid.Dimensions(),
	}).Debug("walk started")

	for {
		if !w.pos.InBounds(w.grid.Dimensions()) {
			return w.report(runID, types.StatusOutOfBounds, w.pos.Corner()), nil
		}

		if c, ok := w.grid.CheckpointAt(w.pos); ok {
			out, err := c.Resolve(w.dir)
			if err != nil {
				return nil, fmt.Errorf("at %s: %w", w.pos.Corner(), err)
			}
			w.dir = out
			w.events = append(w.events, types.Event{
				Corner:     w.pos.Corner(),
				Checkpoint: c.Name(),
				Heading:    out,
				Blocks:     w.segment,
			})
			w.segment = 0
			logrus.WithFields(logrus.Fields{
				"run_id":     runID,
				"corner":     w.pos.Corner(),
				"checkpoint": c.Name(),
				"heading":    out,
			}).Debug("checkpoint resolved")
		}

		if w.history.Record(w.pos, w.dir) {
			return w.report(runID, types.StatusInfiniteLoop, w.pos.Corner()), nil
		}

		// A Stop heading ends the walk only once a checkpoint produced it;
		// before the first event the heading is merely undefined and the
		// walk cannot move.
		if w.dir == types.Stop && len(w.events) > 0 {
			return w.report(runID, types.StatusSuccess, ""), nil
		}

		if err := w.pos.Move(w.dir); err != nil {
			return nil, fmt.Errorf("at %s: %w", w.pos.Corner(), err)
		}
		w.segment++
		w.total++
	}
}

// report assembles the terminal report and logs the outcome.
func (w *Walker) report(runID string, status types.Status, at string) *types.Report {
	logrus.WithFields(logrus.Fields{
		"run_id": runID,
		"status": status,
		"blocks": w.total,
		"events": len(w.events),
	}).Debug("walk finished")

	// An eventless walk reports an empty list, not null.
	events := w.events
	if events == nil {
		events = []types.Event{}
	}

	return &types.Report{
		RunID:  runID,
		Status: status,
		Blocks: w.total,
		At:     at,
		Events: events,
	}
}

// generateUUID generates a new UUID v7 for walk run IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
