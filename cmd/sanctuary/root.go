package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sanctuary/internal/config"
	"sanctuary/internal/core"
	"sanctuary/internal/logging"
)

var exitFunc = os.Exit

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "sanctuary",
		Short:         "Wildlife sanctuary taxonomy demo",
		Long:          `Creates a mammal, an endangered flying bird and a reptile, then prints their interactions, the population and each animal's behaviors.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			roster, err := core.OpenRoster(ctx, cfg.RosterDriver)
			if err != nil {
				return fmt.Errorf("open roster: %w", err)
			}
			logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
			svc := core.NewService(roster, core.WithLogger(logger))
			defer func() { _ = svc.Close() }()
			return runDemo(ctx, cmd.OutOrStdout(), svc)
		},
	}
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		exitFunc(1)
	}
}
