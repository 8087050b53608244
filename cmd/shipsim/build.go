package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jwmdev/shipsim/internal/config"
	"github.com/jwmdev/shipsim/internal/sim"
)

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Load a network config and report its locations, segments, and fleets",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			net, fleets, _, _, err := sim.Build(cfg)
			if err != nil {
				return fmt.Errorf("build network: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "locations: %d\n", len(net.Locations()))
			fmt.Fprintf(cmd.OutOrStdout(), "segments: %d\n", len(net.Segments()))
			fmt.Fprintf(cmd.OutOrStdout(), "fleets: %d\n", len(fleets.All()))
			for _, f := range fleets.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", f.Name)
			}
			return nil
		},
	}
}
