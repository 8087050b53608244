// Package fleet implements the per-transport-mode speed/cost/capacity
// tables and the expedited/unexpedited multipliers described in
// spec.md §3/§4.4, plus the optional time-of-day fleet schedule used by
// internal/sim's FleetSwitch activity.
package fleet

import (
	"sort"

	"github.com/jwmdev/shipsim/internal/types"
	"github.com/jwmdev/shipsim/internal/value"
)

// Defaults applied to any (mode, attribute) pair nobody has set.
const (
	defaultSpeed    = 1.0
	defaultCapacity = 1
	defaultCost     = 1.0
)

// Default path-mode multipliers from spec.md §3.
var (
	defaultCostMultiplier = map[types.PathMode]float64{
		types.Expedited:   1.5,
		types.Unexpedited: 1.0,
	}
	defaultSpeedMultiplier = map[types.PathMode]float64{
		types.Expedited:   1.3,
		types.Unexpedited: 1.0,
	}
)

// Fleet holds one named configuration of speed/cost/capacity per
// transport mode, plus the path-mode multipliers applied on top of them.
// A Fleet with a StartTime set is a scheduled fleet: it becomes active
// when its FleetSwitch activity fires (internal/sim). The first fleet
// added to a Registry is active from the start, whether or not it has a
// StartTime.
type Fleet struct {
	Name string

	speed    map[types.TransportMode]value.MilePerHour
	capacity map[types.TransportMode]value.PackageNum
	cost     map[types.TransportMode]value.DollarPerMile

	costMultiplier  map[types.PathMode]float64
	speedMultiplier map[types.PathMode]float64

	startTime    value.Hour
	hasStartTime bool
}

// New builds a Fleet with every table empty; accessors fall back to the
// spec.md §3 defaults until a mutator sets a mode explicitly.
func New(name string) *Fleet {
	return &Fleet{
		Name:            name,
		speed:           make(map[types.TransportMode]value.MilePerHour),
		capacity:        make(map[types.TransportMode]value.PackageNum),
		cost:            make(map[types.TransportMode]value.DollarPerMile),
		costMultiplier:  cloneFloatMap(defaultCostMultiplier),
		speedMultiplier: cloneFloatMap(defaultSpeedMultiplier),
	}
}

func cloneFloatMap(m map[types.PathMode]float64) map[types.PathMode]float64 {
	out := make(map[types.PathMode]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (f *Fleet) Speed(mode types.TransportMode) value.MilePerHour {
	if v, ok := f.speed[mode]; ok {
		return v
	}
	return value.MustMilePerHour(defaultSpeed)
}

func (f *Fleet) SetSpeed(mode types.TransportMode, v value.MilePerHour) { f.speed[mode] = v }

func (f *Fleet) Capacity(mode types.TransportMode) value.PackageNum {
	if v, ok := f.capacity[mode]; ok {
		return v
	}
	return value.MustPackageNum(defaultCapacity)
}

func (f *Fleet) SetCapacity(mode types.TransportMode, v value.PackageNum) { f.capacity[mode] = v }

func (f *Fleet) Cost(mode types.TransportMode) value.DollarPerMile {
	if v, ok := f.cost[mode]; ok {
		return v
	}
	return value.MustDollarPerMile(defaultCost)
}

func (f *Fleet) SetCost(mode types.TransportMode, v value.DollarPerMile) { f.cost[mode] = v }

func (f *Fleet) CostMultiplier(pm types.PathMode) float64 {
	if v, ok := f.costMultiplier[pm]; ok {
		return v
	}
	return 1.0
}

func (f *Fleet) SetCostMultiplier(pm types.PathMode, v float64) { f.costMultiplier[pm] = v }

func (f *Fleet) SpeedMultiplier(pm types.PathMode) float64 {
	if v, ok := f.speedMultiplier[pm]; ok {
		return v
	}
	return 1.0
}

func (f *Fleet) SetSpeedMultiplier(pm types.PathMode, v float64) { f.speedMultiplier[pm] = v }

// StartTime returns the fleet's scheduled activation hour-of-day and
// whether one was set at all.
func (f *Fleet) StartTime() (value.Hour, bool) { return f.startTime, f.hasStartTime }

func (f *Fleet) SetStartTime(h value.Hour) {
	f.startTime = h
	f.hasStartTime = true
}

// EffectiveSpeed is fleet.speed[transportMode] * fleet.speedMultiplier[pathMode],
// the "effective speed" of the glossary.
func (f *Fleet) EffectiveSpeed(tm types.TransportMode, pm types.PathMode) float64 {
	return f.Speed(tm).Float64() * f.SpeedMultiplier(pm)
}

// EffectiveCostRate is fleet.cost[transportMode] * fleet.costMultiplier[pathMode],
// the per-mile rate a segment traversal is billed at.
func (f *Fleet) EffectiveCostRate(tm types.TransportMode, pm types.PathMode) float64 {
	return f.Cost(tm).Float64() * f.CostMultiplier(pm)
}

// Registry holds every Fleet a network knows about and tracks which one
// is currently active. In the absence of any FleetSwitch firing, the
// first-created fleet is active (spec.md §4.4).
type Registry struct {
	fleets  []*Fleet
	active  int
}

func NewRegistry() *Registry { return &Registry{active: -1} }

// Add registers f. The first fleet ever added becomes active immediately.
func (r *Registry) Add(f *Fleet) {
	r.fleets = append(r.fleets, f)
	if r.active == -1 {
		r.active = 0
	}
}

// Active returns the currently active fleet, or a fresh default Fleet if
// none has ever been added.
func (r *Registry) Active() *Fleet {
	if r.active >= 0 && r.active < len(r.fleets) {
		return r.fleets[r.active]
	}
	return New("default")
}

// Activate switches the active fleet to f. f must have been added via Add.
func (r *Registry) Activate(f *Fleet) {
	for i, candidate := range r.fleets {
		if candidate == f {
			r.active = i
			return
		}
	}
}

// Scheduled returns every registered fleet with a start time, sorted by
// start time ascending; internal/sim uses this to seed one FleetSwitch
// activity per scheduled fleet.
func (r *Registry) Scheduled() []*Fleet {
	out := make([]*Fleet, 0, len(r.fleets))
	for _, f := range r.fleets {
		if _, ok := f.StartTime(); ok {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ti, _ := out[i].StartTime()
		tj, _ := out[j].StartTime()
		return ti.Less(tj)
	})
	return out
}

func (r *Registry) All() []*Fleet {
	out := make([]*Fleet, len(r.fleets))
	copy(out, r.fleets)
	return out
}
