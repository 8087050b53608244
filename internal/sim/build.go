package sim

import (
	"fmt"

	"github.com/jwmdev/shipsim/internal/config"
	"github.com/jwmdev/shipsim/internal/fleet"
	"github.com/jwmdev/shipsim/internal/network"
	"github.com/jwmdev/shipsim/internal/path"
	"github.com/jwmdev/shipsim/internal/types"
	"github.com/jwmdev/shipsim/internal/value"
)

// Build realizes a config.Network as a live ShippingNetwork, Fleet
// Registry, Conn and Manager, wiring locations/segments/fleets/customers
// from the parsed config into the packages that give them behavior.
// This is what cmd/shipsim's build/run/route/serve subcommands call.
func Build(cfg *config.Network) (*network.ShippingNetwork, *fleet.Registry, *path.Conn, *Manager, error) {
	net := network.New()
	for _, l := range cfg.Locations {
		kind := types.LocationKind(l.Kind)
		if !kind.Valid() {
			return nil, nil, nil, nil, fmt.Errorf("location %q: invalid kind %q", l.Name, l.Kind)
		}
		net.LocationNew(l.Name, kind)
	}

	for _, s := range cfg.Segments {
		mode := types.TransportMode(s.Mode)
		if !mode.Valid() {
			return nil, nil, nil, nil, fmt.Errorf("segment %q: invalid mode %q", s.Name, s.Mode)
		}
		net.SegmentNew(s.Name, mode)
		if err := net.SetSegmentSource(s.Name, s.Source); err != nil {
			return nil, nil, nil, nil, fmt.Errorf("segment %q source: %w", s.Name, err)
		}
		if err := net.SetSegmentLength(s.Name, s.Length); err != nil {
			return nil, nil, nil, nil, fmt.Errorf("segment %q length: %w", s.Name, err)
		}
		if s.Difficulty > 0 {
			if err := net.SetSegmentDifficulty(s.Name, s.Difficulty); err != nil {
				return nil, nil, nil, nil, fmt.Errorf("segment %q difficulty: %w", s.Name, err)
			}
		}
		if s.Capacity > 0 {
			if err := net.SetSegmentCapacity(s.Name, s.Capacity); err != nil {
				return nil, nil, nil, nil, fmt.Errorf("segment %q capacity: %w", s.Name, err)
			}
		}
		for _, pm := range s.PathModes {
			mode := types.PathMode(pm)
			if !mode.Valid() {
				return nil, nil, nil, nil, fmt.Errorf("segment %q: invalid path mode %q", s.Name, pm)
			}
			if err := net.SetSegmentMode(s.Name, mode, true); err != nil {
				return nil, nil, nil, nil, fmt.Errorf("segment %q path mode: %w", s.Name, err)
			}
		}
	}
	// Return-segment pairing is set in a second pass since a segment's
	// return segment may be declared later in the file.
	for _, s := range cfg.Segments {
		if s.ReturnSegment == "" {
			continue
		}
		if err := net.SetSegmentReturn(s.Name, s.ReturnSegment); err != nil {
			return nil, nil, nil, nil, fmt.Errorf("segment %q return segment: %w", s.Name, err)
		}
	}

	fleets := fleet.NewRegistry()
	for _, fc := range cfg.Fleets {
		f := fleet.New(fc.Name)
		for mode, v := range fc.Speed {
			f.SetSpeed(types.TransportMode(mode), value.MustMilePerHour(v))
		}
		for mode, v := range fc.Cost {
			f.SetCost(types.TransportMode(mode), value.MustDollarPerMile(v))
		}
		for mode, v := range fc.Capacity {
			f.SetCapacity(types.TransportMode(mode), value.MustPackageNum(int(v)))
		}
		if fc.StartTime != nil {
			f.SetStartTime(value.MustHour(*fc.StartTime))
		}
		fleets.Add(f)
	}

	conn := path.New("default", net, fleets)
	manager := NewManager(net, fleets, conn)

	for _, cc := range cfg.Customers {
		loc, ok := net.Location(cc.Location)
		if !ok {
			return nil, nil, nil, nil, fmt.Errorf("customer location %q not found", cc.Location)
		}
		dest, ok := net.Location(cc.Destination)
		if !ok {
			return nil, nil, nil, nil, fmt.Errorf("customer destination %q not found", cc.Destination)
		}
		manager.AddCustomer(NewCustomer(loc, dest, cc.TransferRate, value.MustPackageNum(cc.ShipmentSize)))
	}

	return net, fleets, conn, manager, nil
}
