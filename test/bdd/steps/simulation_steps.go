package steps

import (
	"fmt"

	"github.com/cucumber/godog"

	"github.com/jwmdev/shipsim/internal/fleet"
	"github.com/jwmdev/shipsim/internal/network"
	"github.com/jwmdev/shipsim/internal/path"
	"github.com/jwmdev/shipsim/internal/sim"
	"github.com/jwmdev/shipsim/internal/types"
	"github.com/jwmdev/shipsim/internal/value"
)

func registerSimulationSteps(sc *godog.ScenarioContext, w *world) {
	aLineNetworkWithSegmentLengthAndDifficulty := func(a, b, cName string, length, difficulty float64) error {
		w.net = network.New()
		for _, n := range []string{a, b, cName} {
			w.net.LocationNew(n, types.Port)
		}
		if err := crossLink(w.net, a, b, length); err != nil {
			return err
		}
		if err := crossLink(w.net, b, cName, length); err != nil {
			return err
		}
		for _, segName := range []string{a + "-" + b, b + "-" + a, b + "-" + cName, cName + "-" + b} {
			if err := w.net.SetSegmentDifficulty(segName, difficulty); err != nil {
				return err
			}
		}
		return nil
	}

	aLineNetworkWithExpeditedSupportOnEverySegment := func(a, b, cName string) error {
		w.net = network.New()
		for _, n := range []string{a, b, cName} {
			w.net.LocationNew(n, types.Port)
		}
		if err := crossLink(w.net, a, b, 1); err != nil {
			return err
		}
		if err := crossLink(w.net, b, cName, 1); err != nil {
			return err
		}
		for _, segName := range []string{a + "-" + b, b + "-" + a, b + "-" + cName, cName + "-" + b} {
			if err := w.net.SetSegmentMode(segName, types.Expedited, true); err != nil {
				return err
			}
		}
		return nil
	}

	aLineNetworkWithSegmentLength := func(a, b string, length float64) error {
		w.net = network.New()
		w.net.LocationNew(a, types.Port)
		w.net.LocationNew(b, types.Port)
		return crossLink(w.net, a, b, length)
	}

	aFleetWithTruckCost := func(cost float64) error {
		w.fleets = fleet.NewRegistry()
		f := fleet.New("default")
		rate, err := value.NewDollarPerMile(cost)
		if err != nil {
			return err
		}
		f.SetCost(types.Truck, rate)
		w.fleets.Add(f)
		return nil
	}

	aFleetWithSpeedAndCostMultiplierForExpedited := func(speedMult, costMult float64) error {
		w.fleets = fleet.NewRegistry()
		f := fleet.New("default")
		f.SetSpeedMultiplier(types.Expedited, speedMult)
		f.SetCostMultiplier(types.Expedited, costMult)
		w.fleets.Add(f)
		return nil
	}

	aFleetWithTruckSpeedAndTruckCost := func(speed, cost float64) error {
		w.fleets = fleet.NewRegistry()
		f := fleet.New("default")
		mph, err := value.NewMilePerHour(speed)
		if err != nil {
			return err
		}
		rate, err := value.NewDollarPerMile(cost)
		if err != nil {
			return err
		}
		f.SetSpeed(types.Truck, mph)
		f.SetCost(types.Truck, rate)
		w.fleets.Add(f)
		return nil
	}

	customersJoinedByLengthOneTruckSegmentWithCapacity := func(a, b string, capacity int) error {
		w.net = network.New()
		w.net.LocationNew(a, types.Customer)
		w.net.LocationNew(b, types.Customer)
		if err := crossLink(w.net, a, b, 1); err != nil {
			return err
		}
		if err := w.net.SetSegmentCapacity(a+"-"+b, capacity); err != nil {
			return err
		}
		return w.net.SetSegmentCapacity(b+"-"+a, capacity)
	}

	iExploreWithUnexpeditedModeAndMaxDistance := func(a string, maxDistance float64) error {
		from, ok := w.net.Location(a)
		if !ok {
			return fmt.Errorf("location %q not found", a)
		}
		mile, err := value.NewMile(maxDistance)
		if err != nil {
			return err
		}
		w.paths = w.ensureConn().Find(path.PathSelector{
			Mode:        path.Explore,
			Source:      from,
			Modes:       types.NewPathModeSet(types.Unexpedited),
			Constraints: []path.Constraint{path.DistanceConstraint{Max: mile}},
		})
		return nil
	}

	shipsPackagesPerDayInShipmentsOf := func(customerName string, rate float64, size int) error {
		dest, ok := w.net.Location("B")
		if !ok {
			return fmt.Errorf("destination location B not found")
		}
		src, ok := w.net.Location(customerName)
		if !ok {
			return fmt.Errorf("location %q not found", customerName)
		}
		w.conn = path.New("bdd", w.net, w.ensureFleets())
		w.manager = sim.NewManager(w.net, w.fleets, w.conn)
		w.manager.AddCustomer(sim.NewCustomer(src, dest, rate, value.MustPackageNum(size)))
		return nil
	}

	twoFleetsWithTruckSpeedsStartingAtHours := func(s1, s2, t1, t2 float64) error {
		w.fleets = fleet.NewRegistry()
		day := fleet.New("day")
		mph1, err := value.NewMilePerHour(s1)
		if err != nil {
			return err
		}
		day.SetSpeed(types.Truck, mph1)
		day.SetStartTime(value.MustHour(t1))
		w.fleets.Add(day)

		night := fleet.New("night")
		mph2, err := value.NewMilePerHour(s2)
		if err != nil {
			return err
		}
		night.SetSpeed(types.Truck, mph2)
		night.SetStartTime(value.MustHour(t2))
		w.fleets.Add(night)

		w.conn = path.New("bdd", w.net, w.fleets)
		w.manager = sim.NewManager(w.net, w.fleets, w.conn)
		return nil
	}

	virtualTimeAdvancesTo := func(hours float64) error {
		w.manager.TimeIs(value.MustHour(hours))
		return nil
	}

	bHasReceivedShipmentWithAverageLatencyAndTotalCost := func(n int, latency, cost float64) error {
		cust, ok := w.manager.Customer("B")
		if !ok {
			return fmt.Errorf("customer B not found")
		}
		if cust.ShipmentsReceived() != n {
			return fmt.Errorf("expected %d shipments, got %d", n, cust.ShipmentsReceived())
		}
		if got := cust.AverageLatency().Float64(); got != latency {
			return fmt.Errorf("expected latency %v, got %v", latency, got)
		}
		if got := cust.TotalCost().Float64(); got != cost {
			return fmt.Errorf("expected total cost %v, got %v", cost, got)
		}
		return nil
	}

	bHasReceivedShipments := func(n int) error {
		cust, ok := w.manager.Customer("B")
		if !ok {
			return fmt.Errorf("customer B not found")
		}
		if cust.ShipmentsReceived() != n {
			return fmt.Errorf("expected %d shipments, got %d", n, cust.ShipmentsReceived())
		}
		return nil
	}

	thePathTimeFromToIs := func(a, b string, expected float64) error {
		from, ok := w.net.Location(a)
		if !ok {
			return fmt.Errorf("location %q not found", a)
		}
		to, ok := w.net.Location(b)
		if !ok {
			return fmt.Errorf("location %q not found", b)
		}
		paths := w.conn.Find(path.PathSelector{
			Mode:   path.Connect,
			Source: from,
			Sink:   to,
			Modes:  types.NewPathModeSet(types.Unexpedited),
		})
		best := w.conn.Best(paths)
		if best == nil && len(paths) == 1 {
			best = paths[0]
		}
		if best == nil {
			return fmt.Errorf("no path found between %q and %q", a, b)
		}
		if got := best.Time().Float64(); got != expected {
			return fmt.Errorf("expected path time %v, got %v", expected, got)
		}
		return nil
	}

	sc.Step(`^a line network "([^"]*)" - "([^"]*)" - "([^"]*)" with segment length (\d+(?:\.\d+)?) and difficulty (\d+(?:\.\d+)?)$`, aLineNetworkWithSegmentLengthAndDifficulty)
	sc.Step(`^a line network "([^"]*)" - "([^"]*)" - "([^"]*)" with expedited support on every segment$`, aLineNetworkWithExpeditedSupportOnEverySegment)
	sc.Step(`^a line network "([^"]*)" - "([^"]*)" with segment length (\d+(?:\.\d+)?)$`, aLineNetworkWithSegmentLength)
	sc.Step(`^a fleet with truck cost (\d+(?:\.\d+)?)$`, aFleetWithTruckCost)
	sc.Step(`^a fleet with speed multiplier (\d+(?:\.\d+)?) and cost multiplier (\d+(?:\.\d+)?) for expedited$`, aFleetWithSpeedAndCostMultiplierForExpedited)
	sc.Step(`^a fleet with truck speed (\d+(?:\.\d+)?) and truck cost (\d+(?:\.\d+)?)$`, aFleetWithTruckSpeedAndTruckCost)
	sc.Step(`^customers "([^"]*)" and "([^"]*)" joined by a length-1 truck segment with capacity (\d+)$`, customersJoinedByLengthOneTruckSegmentWithCapacity)
	sc.Step(`^I explore from "([^"]*)" with unexpedited mode and max distance (\d+(?:\.\d+)?)$`, iExploreWithUnexpeditedModeAndMaxDistance)
	sc.Step(`^"([^"]*)" ships (\d+(?:\.\d+)?) packages per day in shipments of (\d+)$`, shipsPackagesPerDayInShipmentsOf)
	sc.Step(`^two fleets with truck speeds (\d+(?:\.\d+)?) and (\d+(?:\.\d+)?) starting at hours (\d+(?:\.\d+)?) and (\d+(?:\.\d+)?)$`, twoFleetsWithTruckSpeedsStartingAtHours)
	sc.Step(`^virtual time advances to (\d+(?:\.\d+)?)$`, virtualTimeAdvancesTo)
	sc.Step(`^"B" has received (\d+) shipments? with average latency (\d+(?:\.\d+)?) and total cost (\d+(?:\.\d+)?)$`, bHasReceivedShipmentWithAverageLatencyAndTotalCost)
	sc.Step(`^"B" has received (\d+) shipments?$`, bHasReceivedShipments)
	sc.Step(`^the path time from "([^"]*)" to "([^"]*)" is (\d+(?:\.\d+)?)$`, thePathTimeFromToIs)
}
