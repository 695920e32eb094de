package main

import (
	"github.com/spf13/cobra"

	"github.com/fadedpez/martingale/pkg/services/montecarlo"
)

func newMonteCarloCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "montecarlo",
		Aliases: []string{"mc"},
		Short:   "Run many independent trials and print aggregate statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := bindFlags(cmd)
			if err != nil {
				return err
			}
			cfg := simConfig(v)
			iterations := v.GetInt("iterations")
			workers := v.GetInt("workers")

			// The seed flag doubles as the base seed: trial i runs
			// with seed+i, so one number reproduces the whole run.
			orch := montecarlo.NewOrchestrator(workers)
			result, err := orch.Run(cfg, iterations, cfg.Seed)
			if err != nil {
				return err
			}

			renderStats(result.Stats)
			if err := renderHistogram(result.Summaries); err != nil {
				return err
			}
			return renderSummaries(result.Summaries, v.GetInt("show"))
		},
	}

	addSimFlags(cmd)
	cmd.Flags().Int("iterations", 1000, "number of independent trials")
	cmd.Flags().Int("workers", 0, "concurrent trial workers (0 = one per CPU)")
	cmd.Flags().Int("show", 20, "per-trial rows to print (0 = none)")
	return cmd
}
