package types

import (
	"errors"
	"fmt"
)

// ErrBadDimensions reports a grid size outside the supported range.
var ErrBadDimensions = errors.New("bad grid dimensions")

// Grid size caps. The canonical corner form allows one avenue letter and a
// three-digit street number.
const (
	MaxColumns = 26
	MaxRows    = 999
)

// Dimensions is the size of a grid: Columns avenues crossed by Rows streets.
type Dimensions struct {
	Columns int
	Rows    int
}

// Validate checks that the dimensions fit the supported range.
func (d Dimensions) Validate() error {
	if d.Columns < 1 || d.Columns > MaxColumns {
		return fmt.Errorf("%w: %d avenues (want 1-%d)", ErrBadDimensions, d.Columns, MaxColumns)
	}
	if d.Rows < 1 || d.Rows > MaxRows {
		return fmt.Errorf("%w: %d streets (want 1-%d)", ErrBadDimensions, d.Rows, MaxRows)
	}
	return nil
}

// String renders the size as "<streets>x<avenues>", the form used by course
// files.
func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Rows, d.Columns)
}
