package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/mesh-intelligence/flaneur/pkg/types"
)

// Table writes the events as a bordered table with the status line beneath.
func (r Renderer) Table(w io.Writer, rep *types.Report) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"CORNER", "CHECKPOINT", "HEADING", "BLOCKS"})
	for _, ev := range rep.Events {
		table.Append([]string{ev.Corner, ev.Checkpoint, ev.Heading.String(), strconv.Itoa(ev.Blocks)})
	}
	table.Render()

	_, err := fmt.Fprintln(w, r.statusLine(rep))
	return err
}
