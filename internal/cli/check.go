package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/flaneur/internal/course"
	"github.com/mesh-intelligence/flaneur/pkg/types"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <course-file>",
		Short: "Validate a course file without walking it",
		Long: "Check parses a course file and reports whether it is well formed:\n" +
			"a grid directive, known checkpoints on distinct in-bounds corners,\n" +
			"and exactly one effective start.",
		Args: cobra.ExactArgs(1),
		RunE: runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	grid, err := course.Load(args[0])
	if err != nil {
		return err
	}

	start, _ := grid.Start()
	heading := types.Stop
	if cp, ok := grid.CheckpointAt(start); ok {
		heading = cp.Heading()
	}

	dim := grid.Dimensions()
	fmt.Fprintf(cmd.OutOrStdout(), "course ok: %d streets, %d avenues, %d checkpoints, start %s facing %s\n",
		dim.Rows, dim.Columns, grid.Len(), start.Corner(), heading)
	return nil
}
