// Package telemetry exports internal/stats and internal/sim state as
// Prometheus metrics, the way 99souls-ariadne and rockstar-0000-aistore
// register their own domain gauges/counters.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jwmdev/shipsim/internal/sim"
	"github.com/jwmdev/shipsim/internal/stats"
	"github.com/jwmdev/shipsim/internal/types"
)

// Exporter registers and refreshes the gauges/counters SPEC_FULL.md
// names for a running simulation. Metrics are pull-based: Refresh must
// be called (typically from a periodic collector or before each scrape)
// since stats.Stats and sim.Manager expose no change notifications of
// their own.
type Exporter struct {
	stats   *stats.Stats
	manager *sim.Manager

	locationsTotal   *prometheus.GaugeVec
	segmentsByMode   *prometheus.GaugeVec
	segmentsByPath   *prometheus.GaugeVec
	expeditePercent  prometheus.Gauge
	shipmentsRecv    *prometheus.GaugeVec
	shipmentsRefused *prometheus.GaugeVec
	avgLatency       *prometheus.GaugeVec
	virtualTime      prometheus.Gauge
}

// New builds an Exporter and registers its metrics against reg.
func New(reg prometheus.Registerer, st *stats.Stats, m *sim.Manager) *Exporter {
	e := &Exporter{
		stats:   st,
		manager: m,
		locationsTotal: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "shipsim_locations_total",
			Help: "Number of locations registered, by kind.",
		}, []string{"kind"}),
		segmentsByMode: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "shipsim_segments_total",
			Help: "Number of segments registered, by transport mode.",
		}, []string{"mode"}),
		segmentsByPath: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "shipsim_path_mode_segments_total",
			Help: "Number of segments supporting a path mode.",
		}, []string{"path_mode"}),
		expeditePercent: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "shipsim_expedite_percentage",
			Help: "Percentage of segments that support the expedited path mode.",
		}),
		shipmentsRecv: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "shipsim_shipments_received_total",
			Help: "Shipments received, by destination customer.",
		}, []string{"customer"}),
		shipmentsRefused: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "shipsim_shipments_refused_total",
			Help: "Shipments refused at segment entry, by segment.",
		}, []string{"segment"}),
		avgLatency: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "shipsim_average_latency_hours",
			Help: "Average shipment latency in hours, by destination customer.",
		}, []string{"customer"}),
		virtualTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "shipsim_virtual_time_hours",
			Help: "Current simulation virtual time in hours.",
		}),
	}
	reg.MustRegister(
		e.locationsTotal, e.segmentsByMode, e.segmentsByPath, e.expeditePercent,
		e.shipmentsRecv, e.shipmentsRefused, e.avgLatency, e.virtualTime,
	)
	return e
}

// Refresh re-reads stats and the manager's customers and writes current
// values into every registered metric.
func (e *Exporter) Refresh() {
	snap := e.stats.Snapshot()
	for _, k := range types.AllLocationKinds {
		e.locationsTotal.WithLabelValues(string(k)).Set(float64(snap.LocationCount[k]))
	}
	for _, tm := range types.AllTransportModes {
		e.segmentsByMode.WithLabelValues(string(tm)).Set(float64(snap.SegmentCount[tm]))
	}
	for _, pm := range types.AllPathModes {
		e.segmentsByPath.WithLabelValues(string(pm)).Set(float64(snap.PathModeCount[pm]))
	}
	e.expeditePercent.Set(e.stats.ExpeditePercentage())

	for _, c := range e.manager.Customers() {
		name := c.Location.Name()
		e.shipmentsRecv.WithLabelValues(name).Set(float64(c.ShipmentsReceived()))
		e.avgLatency.WithLabelValues(name).Set(c.AverageLatency().Float64())
	}
	for _, seg := range e.manager.Network().Segments() {
		name := seg.Name()
		e.shipmentsRefused.WithLabelValues(name).Set(float64(e.manager.SegmentShipmentsRefused(name)))
	}
	e.virtualTime.Set(e.manager.Now().Float64())
}
