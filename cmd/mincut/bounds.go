package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mincut/karger"
)

func newBoundsCmd() *cobra.Command {
	var (
		vertices   int
		confidence float64
	)
	cmd := &cobra.Command{
		Use:   "bounds",
		Short: "Print success bounds and the trial count for a confidence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			trials, err := karger.RecommendedTrials(vertices, confidence)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "vertices:            %d\n", vertices)
			fmt.Fprintf(out, "per-trial success >= %.6g\n", karger.SuccessProbability(vertices))
			fmt.Fprintf(out, "trials for %.4g:    %d\n", confidence, trials)
			fmt.Fprintf(out, "failure bound:       %.6g\n", karger.FailureProbability(vertices, trials))

			return nil
		},
	}
	cmd.Flags().IntVarP(&vertices, "vertices", "v", 0, "Number of vertices")
	cmd.Flags().Float64Var(&confidence, "confidence", 0.99, "Target success confidence in (0,1)")
	_ = cmd.MarkFlagRequired("vertices")

	return cmd
}
