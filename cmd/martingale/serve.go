package main

import (
	"github.com/spf13/cobra"

	"github.com/fadedpez/martingale/internal/config"
	"github.com/fadedpez/martingale/internal/logging"
	"github.com/fadedpez/martingale/internal/server"
	"github.com/fadedpez/martingale/pkg/repositories/results"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the simulation engine as a JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			logger := logging.NewLogger(logging.ParseLevel(cfg.LogLevel))
			repo := results.NewMemoryRepository()
			defer repo.Close()

			return server.New(cfg, logger, repo).ListenAndServe()
		},
	}
}
