package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/karger"
)

const demoTrials = 50

// demoEdges is the 4-cycle whose min cut is 2.
var demoEdges = []string{"1 -- 2", "2 -- 3", "3 -- 4", "4 -- 1"}

func newDemoCmd(gf *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the 4-cycle example sequentially and concurrently",
		Long: `Build the 4-cycle 1-2-3-4-1 and estimate its min cut with 50 sequential
trials and with 50 workers. Both results should be 2; if they differ, the
number of trials is too low.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := gf.logger(cmd.ErrOrStderr(), "")
			if err != nil {
				return err
			}

			g := core.NewGraph()
			if _, err := g.AddEdges(demoEdges); err != nil {
				return err
			}

			seq, err := karger.MinCut(g, demoTrials, karger.WithLogger(log))
			if err != nil {
				return err
			}
			conc, err := karger.MinCutWithConcurrency(g, demoTrials, true, karger.WithLogger(log))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sequential min cut found: %d\n", seq)
			fmt.Fprintf(out, "concurrent min cut found: %d\n", conc)

			return nil
		},
	}
}
