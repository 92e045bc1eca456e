// Package render formats walk reports and course plans for the terminal:
// a plain or styled text narrative, a table view, JSON, and an ASCII
// street map.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/mesh-intelligence/flaneur/pkg/types"
)

// Renderer writes reports in the configured presentation. Styled output
// colors status lines and map glyphs; unstyled output is stable plain
// text suitable for pipes and tests.
type Renderer struct {
	Styled bool
}

// Text writes the human-readable narrative: one line per checkpoint event,
// then the status line.
func (r Renderer) Text(w io.Writer, rep *types.Report) error {
	for _, ev := range rep.Events {
		corner, name := ev.Corner, ev.Checkpoint
		if r.Styled {
			corner = styles.Corner.Render(corner)
			name = styles.Muted.Render(name)
		}
		if _, err := fmt.Fprintf(w, "%s  %s -> %s  (%s)\n", corner, name, ev.Heading, blocks(ev.Blocks)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, r.statusLine(rep))
	return err
}

// JSON writes the report as indented JSON.
func (r Renderer) JSON(w io.Writer, rep *types.Report) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// statusLine renders the terminal status of a walk.
func (r Renderer) statusLine(rep *types.Report) string {
	var (
		line  string
		style lipgloss.Style
	)
	switch rep.Status {
	case types.StatusSuccess:
		line = fmt.Sprintf("arrived after %s", blocks(rep.Blocks))
		style = styles.Success
	case types.StatusOutOfBounds:
		line = fmt.Sprintf("left the grid at %s after %s", rep.At, blocks(rep.Blocks))
		style = styles.Warning
	case types.StatusInfiniteLoop:
		line = fmt.Sprintf("caught in a loop at %s after %s", rep.At, blocks(rep.Blocks))
		style = styles.Error
	default:
		line = string(rep.Status)
	}
	if r.Styled {
		return style.Render(line)
	}
	return line
}

// blocks formats a block count with its unit.
func blocks(n int) string {
	if n == 1 {
		return "1 block"
	}
	return fmt.Sprintf("%d blocks", n)
}
