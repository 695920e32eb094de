package main

import (
	"github.com/spf13/cobra"

	"github.com/fadedpez/martingale/pkg/services/martingale"
	"github.com/fadedpez/martingale/pkg/services/montecarlo"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a single trial and print the hand-by-hand ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := bindFlags(cmd)
			if err != nil {
				return err
			}
			cfg := simConfig(v)

			ledger, err := martingale.RunTrial(cfg)
			if err != nil {
				return err
			}

			if err := renderLedger(ledger); err != nil {
				return err
			}
			renderTrialSummary(cfg, montecarlo.Summarize(1, cfg, ledger))
			return nil
		},
	}

	addSimFlags(cmd)
	return cmd
}
