package bdd

import (
	"testing"

	"github.com/cucumber/godog"

	"github.com/jwmdev/shipsim/test/bdd/steps"
)

// TestFeatures runs the Gherkin scenarios in features/ against the same
// package API exercised by the unit tests in internal/network, internal/path
// and internal/sim, as SPEC_FULL.md §8 describes.
func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}
	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

// InitializeScenario registers every step against one shared world so a
// Given from the network vocabulary and a When from the simulation
// vocabulary can cooperate within the same scenario.
func InitializeScenario(sc *godog.ScenarioContext) {
	steps.InitializeNetworkAndSimulationScenarios(sc)
}
