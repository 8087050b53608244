package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/jwmdev/shipsim/internal/config"
	"github.com/jwmdev/shipsim/internal/sim"
	"github.com/jwmdev/shipsim/internal/telemetry"
	"github.com/jwmdev/shipsim/internal/value"
)

// newServeCmd is the one place this simulator uses more than one
// goroutine: an HTTP server answers /metrics scrapes concurrently with
// the advancing-time loop below. It only ever reads a Prometheus
// snapshot taken between ticks, never while the manager is mid-TimeIs,
// so the "exclusively owned by the manager" rule of spec.md §5 still
// holds — see DESIGN.md.
func newServeCmd() *cobra.Command {
	var (
		addr string
		step float64
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Advance virtual time continuously while serving /metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			net, _, _, manager, err := sim.Build(cfg)
			if err != nil {
				return fmt.Errorf("build network: %w", err)
			}

			reg := prometheus.NewRegistry()
			exporter := telemetry.New(reg, net.Stats(), manager)
			exporter.Refresh()

			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			server := &http.Server{Addr: addr, Handler: mux}

			go func() {
				log.Printf("serving metrics on %s/metrics", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Printf("metrics server stopped: %v", err)
				}
			}()

			now := manager.Now()
			for {
				now = value.MustHour(now.Float64() + step)
				manager.TimeIs(now)
				exporter.Refresh()
				time.Sleep(100 * time.Millisecond)
			}
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":9110", "address to serve /metrics on")
	cmd.Flags().Float64Var(&step, "step", 1, "virtual hours advanced per tick")
	return cmd
}
