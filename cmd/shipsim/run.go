package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jwmdev/shipsim/internal/config"
	"github.com/jwmdev/shipsim/internal/sim"
	"github.com/jwmdev/shipsim/internal/value"
)

func newRunCmd() *cobra.Command {
	var hours float64
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Advance virtual time to the given horizon and print per-customer stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			_, _, _, manager, err := sim.Build(cfg)
			if err != nil {
				return fmt.Errorf("build network: %w", err)
			}

			manager.TimeIs(value.MustHour(hours))

			for _, c := range manager.Customers() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: received=%d avg_latency=%.2fh total_cost=%.2f\n",
					c.Location.Name(), c.ShipmentsReceived(), c.AverageLatency().Float64(), c.TotalCost().Float64())
			}
			return nil
		},
	}
	cmd.Flags().Float64VarP(&hours, "hours", "t", 24, "virtual hours to advance to")
	return cmd
}
