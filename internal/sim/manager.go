// Package sim wires internal/network, internal/fleet, internal/path and
// internal/activity into the simulation described in spec.md §4.3:
// per-customer shipment generation, per-segment forwarding against
// capacity, and scheduled fleet switching.
package sim

import (
	"log"

	"github.com/jwmdev/shipsim/internal/activity"
	"github.com/jwmdev/shipsim/internal/fleet"
	"github.com/jwmdev/shipsim/internal/logging"
	"github.com/jwmdev/shipsim/internal/network"
	"github.com/jwmdev/shipsim/internal/path"
	"github.com/jwmdev/shipsim/internal/types"
	"github.com/jwmdev/shipsim/internal/value"
)

// Manager owns one running simulation: a network, its fleets, the path
// engine used for routing decisions, the activity scheduler, and every
// customer/segment runtime counter the activities update. There is no
// process-wide singleton (design note 9); a caller builds one Manager
// per simulation run.
type Manager struct {
	network *network.ShippingNetwork
	fleets  *fleet.Registry
	conn    *path.Conn
	acts    *activity.Manager
	log     *log.Logger

	customers        map[string]*Customer
	segmentRuntimes  map[string]*segmentRuntime
}

func NewManager(net *network.ShippingNetwork, fleets *fleet.Registry, conn *path.Conn) *Manager {
	m := &Manager{
		network:         net,
		fleets:          fleets,
		conn:            conn,
		acts:            activity.NewManager(),
		log:             logging.New("sim"),
		customers:       make(map[string]*Customer),
		segmentRuntimes: make(map[string]*segmentRuntime),
	}
	m.scheduleFleetSwitches()
	return m
}

func (m *Manager) Now() value.Hour { return m.acts.Now() }

// Network returns the network this manager is simulating over, so a
// caller (internal/telemetry, cmd/shipsim) can enumerate segments
// without duplicating the manager's own reference.
func (m *Manager) Network() *network.ShippingNetwork { return m.network }

// TimeIs advances virtual time, firing every due activity, per spec.md
// §4.3/§6.
func (m *Manager) TimeIs(t value.Hour) { m.acts.TimeIs(t) }

func (m *Manager) Customer(locationName string) (*Customer, bool) {
	c, ok := m.customers[locationName]
	return c, ok
}

func (m *Manager) Customers() []*Customer {
	out := make([]*Customer, 0, len(m.customers))
	for _, c := range m.customers {
		out = append(out, c)
	}
	return out
}

// AddCustomer registers c and, if its transfer rate is non-zero,
// schedules its recurring ShipmentGenerator activity, first firing one
// interval (24/TransferRate hours) after the manager's current virtual
// time.
func (m *Manager) AddCustomer(c *Customer) {
	m.customers[c.Location.Name()] = c
	if c.TransferRate <= 0 {
		return
	}
	interval := value.MustHour(24.0 / c.TransferRate)
	gen := activity.New("ShipmentGenerator:"+c.Location.Name(), 0, m.generatorFire(c, interval))
	m.acts.Schedule(gen, value.MustHour(m.acts.Now().Float64()+interval.Float64()))
}

// scheduleFleetSwitches creates one FleetSwitch activity per scheduled
// fleet (internal/fleet.Registry.Scheduled), each re-enqueuing itself
// every 24 hours, per spec.md §4.3.
func (m *Manager) scheduleFleetSwitches() {
	for _, f := range m.fleets.Scheduled() {
		start, _ := f.StartTime()
		fl := f
		sw := activity.New("FleetSwitch:"+fl.Name, 1, m.fleetSwitchFire(fl))
		m.acts.Schedule(sw, start)
	}
}

func (m *Manager) fleetSwitchFire(fl *fleet.Fleet) activity.Fire {
	return func(acts *activity.Manager, now value.Hour, self *activity.Activity) {
		m.fleets.Activate(fl)
		acts.Schedule(self, value.MustHour(now.Float64()+24))
	}
}

// routingModes is the facade's fixed set of PathModes a shipment's route
// search considers; spec.md leaves per-shipment PathMode choice to the
// routing policy, not to the customer, so both modes are always offered.
var routingModes = types.NewPathModeSet(types.Expedited, types.Unexpedited)

// selectRoute picks the path a new shipment will travel along, per
// spec.md §4.3's "consults the routing policy to select a current
// path". With no destination-reaching path at all, it returns nil.
func (m *Manager) selectRoute(from, to *network.Location) *path.Path {
	paths := m.conn.Find(path.PathSelector{
		Mode:   path.Connect,
		Source: from,
		Sink:   to,
		Modes:  routingModes,
	})
	return m.conn.Best(paths)
}
