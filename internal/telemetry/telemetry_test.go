package telemetry

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwmdev/shipsim/internal/fleet"
	"github.com/jwmdev/shipsim/internal/network"
	"github.com/jwmdev/shipsim/internal/path"
	"github.com/jwmdev/shipsim/internal/sim"
	"github.com/jwmdev/shipsim/internal/types"
)

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, g.Write(&m))
	return m.GetGauge().GetValue()
}

func TestRefreshReflectsNetworkAndSimState(t *testing.T) {
	n := network.New()
	n.LocationNew("A", types.Customer)
	n.LocationNew("B", types.Port)

	fleets := fleet.NewRegistry()
	fleets.Add(fleet.New("default"))
	conn := path.New("c", n, fleets)
	m := sim.NewManager(n, fleets, conn)

	reg := prometheus.NewRegistry()
	e := New(reg, n.Stats(), m)
	e.Refresh()

	assert.Equal(t, 1.0, gaugeValue(t, e.locationsTotal.WithLabelValues(string(types.Customer))))
	assert.Equal(t, 1.0, gaugeValue(t, e.locationsTotal.WithLabelValues(string(types.Port))))
	assert.Equal(t, 0.0, gaugeValue(t, e.virtualTime))

	m.TimeIs(3)
	e.Refresh()
	assert.Equal(t, 3.0, gaugeValue(t, e.virtualTime))
}
