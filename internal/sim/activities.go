package sim

import (
	"github.com/jwmdev/shipsim/internal/activity"
	"github.com/jwmdev/shipsim/internal/ids"
	"github.com/jwmdev/shipsim/internal/path"
	"github.com/jwmdev/shipsim/internal/value"
)

// forwarderState is the mutable progress record a single SegmentForwarder
// activity carries as it advances a shipment hop by hop. Rather than
// posting one activity per segment up front, the same activity instance
// re-schedules itself at each hand-off (spec.md §4.3: "schedules itself
// ... for hand-off to the next segment"), advancing idx until it reaches
// the last element, at which point it credits the destination customer
// instead of entering another segment. id identifies this shipment in
// the log lines written at generation and delivery; it is separate from
// the forwarder activity's own ID.
type forwarderState struct {
	id        string
	customer  *Customer
	route     *path.Path
	idx       int
	startTime value.Hour
}

// generatorFire builds the recurring ShipmentGenerator activity for
// customer c: every interval hours it creates a shipment of c.ShipmentSize
// packages toward c.Destination and, if a route exists, starts a
// SegmentForwarder walking it.
func (m *Manager) generatorFire(c *Customer, interval value.Hour) activity.Fire {
	return func(acts *activity.Manager, now value.Hour, self *activity.Activity) {
		acts.Schedule(self, value.MustHour(now.Float64()+interval.Float64()))

		route := m.selectRoute(c.Location, c.Destination)
		if route == nil || route.Len() == 0 {
			return
		}
		st := &forwarderState{id: ids.NewShipmentID(), customer: c, route: route, idx: 0, startTime: now}
		m.log.Printf("shipment %s generated at %s bound for %s", st.id, c.Location.Name(), c.Destination.Name())
		fwd := activity.New("SegmentForwarder:"+c.Location.Name(), 2, m.forwarderFire(st))
		acts.Schedule(fwd, now)
	}
}

// forwarderFire implements spec.md §4.3's SegmentForwarder: on each
// firing it either attempts entry into the segment at st.idx (refusing
// if the segment is already at capacity) or, once every hop has been
// traversed, credits the destination customer with the completed
// shipment's latency and cost.
func (m *Manager) forwarderFire(st *forwarderState) activity.Fire {
	return func(acts *activity.Manager, now value.Hour, self *activity.Activity) {
		if st.idx >= st.route.Len() {
			m.deliver(st, now)
			return
		}

		elem := st.route.Elements()[st.idx]
		seg := elem.Segment
		rt := m.runtimeFor(seg)

		if rt.inTransit >= seg.Capacity().Int() {
			rt.shipmentsRefused++
			return
		}
		rt.inTransit++
		rt.shipmentsReceived++

		if st.idx > 0 {
			prevRt := m.runtimeFor(st.route.Elements()[st.idx-1].Segment)
			prevRt.inTransit--
		}

		effSpeed := m.fleets.Active().EffectiveSpeed(seg.TransportMode(), elem.Mode)
		var transit float64
		if effSpeed > 0 {
			transit = seg.Length().Float64() / effSpeed
		}
		st.idx++
		acts.Schedule(self, value.MustHour(now.Float64()+transit))
	}
}

func (m *Manager) deliver(st *forwarderState, now value.Hour) {
	last := st.route.Elements()[st.route.Len()-1].Segment
	m.runtimeFor(last).inTransit--

	destLoc := st.customer.Destination
	dest, ok := m.customers[destLoc.Name()]
	if !ok {
		dest = NewCustomer(destLoc, nil, 0, 0)
		m.customers[destLoc.Name()] = dest
	}
	latency := value.MustHour(now.Float64() - st.startTime.Float64())
	dest.credit(latency, st.route.Cost())
	m.log.Printf("shipment %s delivered to %s at %.2fh, latency %.2fh", st.id, dest.Location.Name(), now.Float64(), latency.Float64())
}
