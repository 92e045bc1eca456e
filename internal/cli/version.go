package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/flaneur/pkg/flaneur"
)

const modulePath = "github.com/mesh-intelligence/flaneur"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the stroll version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "stroll v%s\nmodule: %s\n", flaneur.Version, modulePath)
			return nil
		},
	}
}
