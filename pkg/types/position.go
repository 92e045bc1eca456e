package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadCorner reports a corner string that is not in canonical form.
var ErrBadCorner = errors.New("malformed corner")

// Position is a grid intersection. Column counts avenues westward from
// avenue A at the eastern limit; Row counts streets northward from 1st
// street at the southern limit. The zero value is the south-east corner.
//
// Positions are comparable and serve directly as map keys.
type Position struct {
	Column int
	Row    int
}

// Move shifts the position by exactly one cell in the given compass
// direction. Moving east decreases the column, west increases it; moving
// north increases the row, south decreases it. The position is left
// unchanged when the direction is Stop or unknown.
func (p *Position) Move(d Direction) error {
	switch d {
	case North:
		p.Row++
	case South:
		p.Row--
	case East:
		p.Column--
	case West:
		p.Column++
	default:
		return fmt.Errorf("%w: cannot move %s", ErrInvalidDirection, d)
	}
	return nil
}

// InBounds reports whether the position lies on a grid of the given size.
func (p Position) InBounds(dim Dimensions) bool {
	return p.Column >= 0 && p.Column < dim.Columns &&
		p.Row >= 0 && p.Row < dim.Rows
}

// Corner returns the canonical corner form "<street>&<avenue>", e.g. "3&B"
// for 3rd street crossing avenue B. Positions outside the printable range
// fall back to a numeric "(column C, row R)" form so that off-grid
// positions in failure reports stay readable.
func (p Position) Corner() string {
	if p.Column < 0 || p.Column >= MaxColumns || p.Row < 0 || p.Row >= MaxRows {
		return fmt.Sprintf("(column %d, row %d)", p.Column, p.Row)
	}
	return fmt.Sprintf("%d&%c", p.Row+1, rune('A'+p.Column))
}

// ParseCorner parses the canonical corner form produced by Corner. The
// avenue letter is accepted in either case.
func ParseCorner(s string) (Position, error) {
	street, avenue, ok := strings.Cut(s, "&")
	if !ok {
		return Position{}, fmt.Errorf("%w: %q (want \"<street>&<avenue>\")", ErrBadCorner, s)
	}
	row, err := strconv.Atoi(street)
	if err != nil || row < 1 || row > MaxRows {
		return Position{}, fmt.Errorf("%w: bad street number in %q", ErrBadCorner, s)
	}
	if len(avenue) != 1 {
		return Position{}, fmt.Errorf("%w: bad avenue letter in %q", ErrBadCorner, s)
	}
	letter := strings.ToUpper(avenue)[0]
	if letter < 'A' || letter > 'Z' {
		return Position{}, fmt.Errorf("%w: bad avenue letter in %q", ErrBadCorner, s)
	}
	return Position{Column: int(letter - 'A'), Row: row - 1}, nil
}
