// Package course loads walking courses from their textual description.
//
// A course file is line-oriented: `#` starts a comment, blank lines are
// ignored, and fields are separated by whitespace. The first significant
// line must be the grid directive `grid <streets>x<avenues>`; every other
// line places a checkpoint on a corner, e.g. `3&B turn_left`.
package course

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/flaneur/pkg/types"
)

// gridDirective opens every course file and fixes the grid size.
const gridDirective = "grid"

// Load reads the course file at path.
func Load(path string) (*types.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening course: %w", err)
	}
	defer f.Close()

	grid, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return grid, nil
}

// Parse reads a course from r and returns the fully validated grid. All
// problems are fatal: a malformed or missing grid directive, an unknown
// checkpoint name, a corner outside the grid, a duplicate placement, or a
// course with no start checkpoint.
func Parse(r io.Reader) (*types.Grid, error) {
	var (
		grid   *types.Grid
		lineNo int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		if grid == nil {
			if fields[0] != gridDirective {
				return nil, fmt.Errorf("line %d: a course must open with \"%s <streets>x<avenues>\"", lineNo, gridDirective)
			}
			dim, err := parseDimensions(fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			grid, err = types.NewGrid(dim)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			continue
		}

		if fields[0] == gridDirective {
			return nil, fmt.Errorf("line %d: duplicate %s directive", lineNo, gridDirective)
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: want \"<corner> <checkpoint>\", got %d fields", lineNo, len(fields))
		}

		pos, err := types.ParseCorner(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if !pos.InBounds(grid.Dimensions()) {
			return nil, fmt.Errorf("line %d: corner %s lies outside the %s grid", lineNo, pos.Corner(), grid.Dimensions())
		}
		c, err := types.NewCheckpoint(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err := grid.Place(pos, c); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if c.IsStart() {
			// The last start checkpoint in the file wins.
			grid.SetStart(pos)
		}

		logrus.WithFields(logrus.Fields{
			"corner":     pos.Corner(),
			"checkpoint": c.Name(),
		}).Debug("checkpoint placed")
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading course: %w", err)
	}

	if grid == nil {
		return nil, errors.New("empty course: missing grid directive")
	}
	if _, ok := grid.Start(); !ok {
		return nil, types.ErrMissingStart
	}
	return grid, nil
}

// parseDimensions reads the `grid <streets>x<avenues>` directive fields.
func parseDimensions(fields []string) (types.Dimensions, error) {
	if len(fields) != 2 {
		return types.Dimensions{}, fmt.Errorf("want \"%s <streets>x<avenues>\", got %d fields", gridDirective, len(fields))
	}
	streets, avenues, ok := strings.Cut(fields[1], "x")
	if !ok {
		return types.Dimensions{}, fmt.Errorf("malformed grid size %q (want \"<streets>x<avenues>\")", fields[1])
	}
	rows, err := strconv.Atoi(streets)
	if err != nil {
		return types.Dimensions{}, fmt.Errorf("malformed street count %q", streets)
	}
	cols, err := strconv.Atoi(avenues)
	if err != nil {
		return types.Dimensions{}, fmt.Errorf("malformed avenue count %q", avenues)
	}
	return types.Dimensions{Columns: cols, Rows: rows}, nil
}
