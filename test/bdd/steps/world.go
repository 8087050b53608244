// Package steps wires Gherkin step text to the internal network, fleet,
// path and sim packages, following the context-struct-with-reset pattern
// used throughout this project's BDD suite. All step groups here share one
// world instance per scenario so a Given in one group is visible to a When
// or Then registered by another.
package steps

import (
	"context"

	"github.com/cucumber/godog"

	"github.com/jwmdev/shipsim/internal/fleet"
	"github.com/jwmdev/shipsim/internal/network"
	"github.com/jwmdev/shipsim/internal/path"
	"github.com/jwmdev/shipsim/internal/sim"
)

type world struct {
	net     *network.ShippingNetwork
	second  *network.ShippingNetwork
	fleets  *fleet.Registry
	conn    *path.Conn
	manager *sim.Manager

	paths []*path.Path
}

func (w *world) reset() {
	*w = world{}
}

func (w *world) ensureFleets() *fleet.Registry {
	if w.fleets == nil {
		w.fleets = fleet.NewRegistry()
		w.fleets.Add(fleet.New("default"))
	}
	return w.fleets
}

func (w *world) ensureConn() *path.Conn {
	if w.conn == nil {
		w.conn = path.New("bdd", w.net, w.ensureFleets())
	}
	return w.conn
}

// InitializeNetworkAndSimulationScenarios registers every step group
// against one shared world. Order is not load-bearing here: the two
// groups use disjoint step vocabularies.
func InitializeNetworkAndSimulationScenarios(sc *godog.ScenarioContext) {
	w := &world{}
	sc.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		w.reset()
		return ctx, nil
	})

	registerNetworkSteps(sc, w)
	registerSimulationSteps(sc, w)
}
