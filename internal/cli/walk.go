package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/flaneur/internal/course"
	"github.com/mesh-intelligence/flaneur/internal/render"
	"github.com/mesh-intelligence/flaneur/internal/walk"
)

func newWalkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "walk <course-file>",
		Short: "Walk a course and report the path taken",
		Long: "Walk loads a course file, starts at its start checkpoint, and\n" +
			"follows headings corner to corner. The report lists every\n" +
			"checkpoint passed and how the walk ended. Leaving the grid or\n" +
			"repeating a corner with the same heading are outcomes, not errors.",
		Args: cobra.ExactArgs(1),
		RunE: runWalk,
	}
}

func runWalk(cmd *cobra.Command, args []string) error {
	grid, err := course.Load(args[0])
	if err != nil {
		return err
	}

	report, err := walk.New(grid).Walk()
	if err != nil {
		return err
	}

	r := render.Renderer{Styled: styledOutput(cmd)}
	out := cmd.OutOrStdout()

	switch flags.format {
	case formatTable:
		err = r.Table(out, report)
	case formatJSON:
		err = r.JSON(out, report)
	default:
		err = r.Text(out, report)
	}
	if err != nil {
		return exitError(cmd, exitSysError, fmt.Sprintf("write report: %s", err))
	}
	return nil
}
