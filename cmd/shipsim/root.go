package main

import "github.com/spf13/cobra"

var configPath string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "shipsim",
		Short: "Discrete-event package-shipping network simulator",
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "testdata/configs/simple.yaml", "path to the network config YAML file")

	root.AddCommand(newBuildCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newRouteCmd())
	root.AddCommand(newServeCmd())
	return root
}
