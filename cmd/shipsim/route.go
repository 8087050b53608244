package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jwmdev/shipsim/internal/config"
	"github.com/jwmdev/shipsim/internal/path"
	"github.com/jwmdev/shipsim/internal/sim"
	"github.com/jwmdev/shipsim/internal/types"
)

func newRouteCmd() *cobra.Command {
	var (
		source, sink         string
		expedited, unexpedited bool
		explore              bool
	)
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Run a one-shot connect/explore path query against a network config",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			net, _, conn, _, err := sim.Build(cfg)
			if err != nil {
				return fmt.Errorf("build network: %w", err)
			}

			from, ok := net.Location(source)
			if !ok {
				return fmt.Errorf("location %q not found", source)
			}

			modes := types.PathModeSet{}
			if expedited {
				modes.Add(types.Expedited)
			}
			if unexpedited || !expedited {
				modes.Add(types.Unexpedited)
			}

			selector := path.PathSelector{Source: from, Modes: modes}
			formatter := path.FormatExplore
			if explore {
				selector.Mode = path.Explore
			} else {
				selector.Mode = path.Connect
				to, ok := net.Location(sink)
				if !ok {
					return fmt.Errorf("location %q not found", sink)
				}
				selector.Sink = to
				formatter = path.FormatConnect
			}

			paths := conn.Find(selector)
			for _, line := range path.FormatLines(paths, formatter) {
				fmt.Fprint(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&source, "from", "", "source location name")
	cmd.Flags().StringVar(&sink, "to", "", "sink location name (required unless --explore)")
	cmd.Flags().BoolVar(&explore, "explore", false, "explore from source without a fixed sink")
	cmd.Flags().BoolVar(&expedited, "expedited", false, "consider expedited path mode")
	cmd.Flags().BoolVar(&unexpedited, "unexpedited", false, "consider unexpedited path mode")
	return cmd
}
