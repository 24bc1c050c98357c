package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the apsp CLI and returns an error if any command fails.
//
// Logging defaults to info level on stderr; --verbose (-v) raises it to
// debug. The logger is attached to the command context and retrieved by
// subcommands via loggerFromContext.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "apsp",
		Short:        "apsp computes all-pairs shortest paths for undirected weighted graphs",
		Long: `apsp reads an undirected weighted graph from an edge-list file and
settles every pairwise shortest distance at once, optionally
reconstructing the cheapest route between two vertices.

Edge-list format, one edge per line:
  <from> <to> <weight>
Blank lines and lines starting with '#' are ignored.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newTableCmd())
	root.AddCommand(newPathCmd())

	return root.ExecuteContext(context.Background())
}
