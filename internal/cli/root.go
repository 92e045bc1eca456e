// Package cli implements the stroll command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/flaneur/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Output formats accepted by --format.
const (
	formatText  = "text"
	formatTable = "table"
	formatJSON  = "json"
)

// validFormats is the set of recognized --format values.
var validFormats = map[string]bool{
	formatText:  true,
	formatTable: true,
	formatJSON:  true,
}

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	format    string
	noColor   bool
	verbose   bool
}

var flags rootFlags

// NewRootCmd creates the top-level "stroll" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "stroll",
		Short: "Walk checkpoint courses across a street grid",
		Long: "Stroll walks pedestrian courses across a rectilinear street grid.\n" +
			"A course places checkpoints on corners; the walk starts at the start\n" +
			"checkpoint and follows headings until it stops, leaves the grid, or\n" +
			"repeats itself.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:      true,
		PersistentPreRunE: initConfig,
	}

	// Global persistent flags.
	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&flags.format, "format", formatText, "report format: text, table, or json")
	root.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "disable styled output")
	root.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "enable debug logging")

	root.AddCommand(newWalkCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newMapCmd())
	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitUserError)
	}
}

// initConfig merges config.yaml into the global flags and initializes
// logging. Flags beat config values; config values beat defaults.
func initConfig(cmd *cobra.Command, args []string) error {
	// Version and init must work without a readable configuration.
	switch cmd.Name() {
	case "version", "init":
		return nil
	}

	dir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config directory: %w", err)
	}

	cfg, err := loadConfig(dir)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("format") && cfg.Format != "" {
		flags.format = cfg.Format
	}
	if !cmd.Flags().Changed("no-color") && cfg.NoColor {
		flags.noColor = true
	}
	if !cmd.Flags().Changed("verbose") && cfg.Verbose {
		flags.verbose = true
	}

	if !validFormats[flags.format] {
		return fmt.Errorf("unknown format %q (want %s, %s, or %s)",
			flags.format, formatText, formatTable, formatJSON)
	}

	level := logrus.WarnLevel
	if flags.verbose {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)
	logrus.SetOutput(cmd.ErrOrStderr())
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return nil
}

// styledOutput reports whether reports should carry color: stdout must
// be a terminal, and neither --no-color nor NO_COLOR may be set.
func styledOutput(cmd *cobra.Command) bool {
	if flags.noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// exitError prints the error to stderr and returns the given exit code.
func exitError(cmd *cobra.Command, code int, msg string) error {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
	return nil // unreachable
}
