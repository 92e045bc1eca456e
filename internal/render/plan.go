package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mesh-intelligence/flaneur/pkg/types"
)

// Plan glyphs keyed by checkpoint name. Styled output upgrades to the
// unicode set; plain output sticks to ASCII.
var (
	plainGlyphs = map[string]string{
		types.CheckpointStartNorth: "S",
		types.CheckpointStartSouth: "S",
		types.CheckpointStartEast:  "S",
		types.CheckpointStartWest:  "S",
		types.CheckpointGoNorth:    "^",
		types.CheckpointGoSouth:    "v",
		types.CheckpointGoEast:     ">",
		types.CheckpointGoWest:     "<",
		types.CheckpointTurnLeft:   "L",
		types.CheckpointTurnRight:  "R",
		types.CheckpointGoBack:     "B",
		types.CheckpointStop:       "#",
	}
	fancyGlyphs = map[string]string{
		types.CheckpointStartNorth: "S",
		types.CheckpointStartSouth: "S",
		types.CheckpointStartEast:  "S",
		types.CheckpointStartWest:  "S",
		types.CheckpointGoNorth:    "⇡",
		types.CheckpointGoSouth:    "⇣",
		types.CheckpointGoEast:     "⇢",
		types.CheckpointGoWest:     "⇠",
		types.CheckpointTurnLeft:   "↰",
		types.CheckpointTurnRight:  "↱",
		types.CheckpointGoBack:     "↩",
		types.CheckpointStop:       "■",
	}
)

const (
	plainEmpty = "."
	fancyEmpty = "◦"
)

// Map writes a plan of the course: north at the top, avenue A at the
// eastern (right) edge, street numbers down the left side.
func (r Renderer) Map(w io.Writer, grid *types.Grid) error {
	dim := grid.Dimensions()
	glyphs, empty := plainGlyphs, plainEmpty
	if r.Styled {
		glyphs, empty = fancyGlyphs, fancyEmpty
	}
	margin := len(strconv.Itoa(dim.Rows))

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", margin))
	for col := dim.Columns - 1; col >= 0; col-- {
		fmt.Fprintf(&b, " %c", 'A'+col)
	}
	b.WriteByte('\n')

	for row := dim.Rows - 1; row >= 0; row-- {
		fmt.Fprintf(&b, "%*d", margin, row+1)
		for col := dim.Columns - 1; col >= 0; col-- {
			cell := empty
			if c, ok := grid.CheckpointAt(types.Position{Column: col, Row: row}); ok {
				cell = glyphs[c.Name()]
				if r.Styled {
					cell = glyphStyle(c.Name()).Render(cell)
				}
			}
			b.WriteByte(' ')
			b.WriteString(cell)
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// glyphStyle picks the color for a checkpoint glyph.
func glyphStyle(name string) lipgloss.Style {
	switch name {
	case types.CheckpointStartNorth, types.CheckpointStartSouth,
		types.CheckpointStartEast, types.CheckpointStartWest:
		return styles.Start
	case types.CheckpointStop:
		return styles.Stop
	case types.CheckpointTurnLeft, types.CheckpointTurnRight, types.CheckpointGoBack:
		return styles.Turn
	default:
		return styles.Go
	}
}
