package main

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mincut/internal/logging"
)

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	logLevel string
	logJSON  bool
	noColor  bool
}

// newRootCmd builds the command tree. Each call returns a fresh tree so
// tests can execute commands independently.
func newRootCmd() *cobra.Command {
	gf := &globalFlags{}
	root := &cobra.Command{
		Use:   "mincut",
		Short: "Estimate minimum cuts with Karger's contraction algorithm",
		Long: `mincut estimates the minimum cut of an undirected multigraph by repeated
randomized edge contraction.

Subcommands:
  run     - Estimate the min cut of a graph file or inline edges
  demo    - Run the 4-cycle example in both modes
  bounds  - Print trial counts needed for a target confidence`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&gf.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error, disabled)")
	root.PersistentFlags().BoolVar(&gf.logJSON, "log-json", false, "Write logs as JSON lines")
	root.PersistentFlags().BoolVar(&gf.noColor, "no-color", false, "Disable colored console logs")

	root.AddCommand(
		newRunCmd(gf),
		newDemoCmd(gf),
		newBoundsCmd(),
	)

	return root
}

// logger builds the command logger; level overrides the flag when the flag is unset.
func (gf *globalFlags) logger(w io.Writer, fallbackLevel string) (zerolog.Logger, error) {
	level := gf.logLevel
	if level == "" {
		level = fallbackLevel
	}

	return logging.New(w, logging.Options{Level: level, JSON: gf.logJSON, NoColor: gf.noColor})
}
