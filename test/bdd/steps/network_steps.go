package steps

import (
	"fmt"

	"github.com/cucumber/godog"

	"github.com/jwmdev/shipsim/internal/network"
	"github.com/jwmdev/shipsim/internal/path"
	"github.com/jwmdev/shipsim/internal/types"
)

func crossLink(n *network.ShippingNetwork, from, to string, length float64) error {
	outName := from + "-" + to
	backName := to + "-" + from
	n.SegmentNew(outName, types.Truck)
	n.SegmentNew(backName, types.Truck)
	if err := n.SetSegmentSource(outName, from); err != nil {
		return err
	}
	if err := n.SetSegmentSource(backName, to); err != nil {
		return err
	}
	if err := n.SetSegmentReturn(outName, backName); err != nil {
		return err
	}
	if err := n.SetSegmentLength(outName, length); err != nil {
		return err
	}
	return n.SetSegmentLength(backName, length)
}

func registerNetworkSteps(sc *godog.ScenarioContext, w *world) {
	aNetworkWithPorts := func(a, b string) error {
		w.net = network.New()
		w.net.LocationNew(a, types.Port)
		w.net.LocationNew(b, types.Port)
		return nil
	}

	truckSegmentsCrossLinked := func(outName, backName, a, b string) error {
		return crossLink(w.net, a, b, 1)
	}

	truckSegmentsCrossLinkedWithLength := func(outName, backName, a, b string, length float64) error {
		return crossLink(w.net, a, b, length)
	}

	aSecondIndependentNetworkWithPorts := func(a, b string) error {
		w.second = network.New()
		w.second.LocationNew(a, types.Port)
		w.second.LocationNew(b, types.Port)
		return nil
	}

	iConnectFirstNetworksToSeconds := func(a, b string) error {
		from, _ := w.net.Location(a)
		to, _ := w.second.Location(b)
		w.paths = w.ensureConn().Find(path.PathSelector{
			Mode:   path.Connect,
			Source: from,
			Sink:   to,
			Modes:  types.NewPathModeSet(types.Unexpedited, types.Expedited),
		})
		return nil
	}

	iConnect := func(a, b string) error {
		from, ok := w.net.Location(a)
		if !ok {
			return fmt.Errorf("location %q not found", a)
		}
		to, ok := w.net.Location(b)
		if !ok {
			return fmt.Errorf("location %q not found", b)
		}
		w.paths = w.ensureConn().Find(path.PathSelector{
			Mode:   path.Connect,
			Source: from,
			Sink:   to,
			Modes:  types.NewPathModeSet(types.Unexpedited, types.Expedited),
		})
		return nil
	}

	iExploreWithUnexpeditedMode := func(a string) error {
		from, ok := w.net.Location(a)
		if !ok {
			return fmt.Errorf("location %q not found", a)
		}
		w.paths = w.ensureConn().Find(path.PathSelector{
			Mode:   path.Explore,
			Source: from,
			Modes:  types.NewPathModeSet(types.Unexpedited),
		})
		return nil
	}

	exactlyNPathsAreFound := func(n int) error {
		if len(w.paths) != n {
			return fmt.Errorf("expected %d paths, got %d", n, len(w.paths))
		}
		return nil
	}

	theFirstPathHasNSegments := func(n int) error {
		if len(w.paths) == 0 {
			return fmt.Errorf("no paths found")
		}
		if got := w.paths[0].Len(); got != n {
			return fmt.Errorf("expected path length %d, got %d", n, got)
		}
		return nil
	}

	theFirstPathHasDistance := func(d float64) error {
		if len(w.paths) == 0 {
			return fmt.Errorf("no paths found")
		}
		if got := w.paths[0].Distance().Float64(); got != d {
			return fmt.Errorf("expected distance %v, got %v", d, got)
		}
		return nil
	}

	sc.Step(`^a network with ports "([^"]*)" and "([^"]*)"$`, aNetworkWithPorts)
	sc.Step(`^truck segments "([^"]*)" and "([^"]*)" cross-linked between "([^"]*)" and "([^"]*)"$`, truckSegmentsCrossLinked)
	sc.Step(`^truck segments "([^"]*)" and "([^"]*)" cross-linked between "([^"]*)" and "([^"]*)" with length (\d+)$`, truckSegmentsCrossLinkedWithLength)
	sc.Step(`^a second independent network with ports "([^"]*)" and "([^"]*)"$`, aSecondIndependentNetworkWithPorts)
	sc.Step(`^I connect the first network's "([^"]*)" to the second network's "([^"]*)"$`, iConnectFirstNetworksToSeconds)
	sc.Step(`^I connect "([^"]*)" to "([^"]*)" with both path modes$`, iConnect)
	sc.Step(`^I connect "([^"]*)" to "([^"]*)"$`, iConnect)
	sc.Step(`^I explore from "([^"]*)" with unexpedited mode$`, iExploreWithUnexpeditedMode)
	sc.Step(`^exactly (\d+) paths? (?:is|are) found$`, exactlyNPathsAreFound)
	sc.Step(`^the first path has (\d+) segments?$`, theFirstPathHasNSegments)
	sc.Step(`^the first path has distance (\d+(?:\.\d+)?)$`, theFirstPathHasDistance)
}
