package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/flaneur/internal/course"
	"github.com/mesh-intelligence/flaneur/internal/render"
)

func newMapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "map <course-file>",
		Short: "Draw a course as a street plan",
		Long: "Map draws the course grid with north at the top and avenue A at\n" +
			"the eastern (right) edge.\n" +
			"\n" +
			"Glyphs: S start, ^ v < > fixed headings, L turn left, R turn\n" +
			"right, B go back, # stop, . empty corner.",
		Args: cobra.ExactArgs(1),
		RunE: runMap,
	}
}

func runMap(cmd *cobra.Command, args []string) error {
	grid, err := course.Load(args[0])
	if err != nil {
		return err
	}

	r := render.Renderer{Styled: styledOutput(cmd)}
	if err := r.Map(cmd.OutOrStdout(), grid); err != nil {
		return exitError(cmd, exitSysError, fmt.Sprintf("write plan: %s", err))
	}
	return nil
}
