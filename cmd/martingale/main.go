package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "martingale",
		Short:        "Blackjack Martingale strategy simulator",
		Long:         "Simulates a Martingale betting progression against a blackjack table to study bankroll survival, profit distribution, and bust probability.",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newRunCmd(),
		newMonteCarloCmd(),
		newServeCmd(),
		newVersionCmd(),
	)

	return rootCmd
}
