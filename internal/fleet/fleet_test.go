package fleet

import (
	"testing"

	"github.com/jwmdev/shipsim/internal/types"
	"github.com/jwmdev/shipsim/internal/value"
	"github.com/stretchr/testify/assert"
)

func TestDefaultsApplyUntilSet(t *testing.T) {
	f := New("f")
	assert.Equal(t, 1.0, f.Speed(types.Truck).Float64())
	assert.Equal(t, 1, f.Capacity(types.Truck).Int())
	assert.Equal(t, 1.0, f.Cost(types.Truck).Float64())

	f.SetSpeed(types.Truck, value.MustMilePerHour(40))
	assert.Equal(t, 40.0, f.Speed(types.Truck).Float64())
}

func TestPathModeMultiplierDefaults(t *testing.T) {
	f := New("f")
	assert.Equal(t, 1.5, f.CostMultiplier(types.Expedited))
	assert.Equal(t, 1.0, f.CostMultiplier(types.Unexpedited))
	assert.Equal(t, 1.3, f.SpeedMultiplier(types.Expedited))
	assert.Equal(t, 1.0, f.SpeedMultiplier(types.Unexpedited))
}

func TestEffectiveSpeedAndCost(t *testing.T) {
	f := New("f")
	f.SetSpeed(types.Truck, value.MustMilePerHour(10))
	f.SetCost(types.Truck, value.MustDollarPerMile(2))
	assert.InDelta(t, 13.0, f.EffectiveSpeed(types.Truck, types.Expedited), 1e-9)
	assert.InDelta(t, 3.0, f.EffectiveCostRate(types.Truck, types.Expedited), 1e-9)
	assert.InDelta(t, 10.0, f.EffectiveSpeed(types.Truck, types.Unexpedited), 1e-9)
}

func TestRegistryFirstFleetIsActiveByDefault(t *testing.T) {
	r := NewRegistry()
	a := New("a")
	b := New("b")
	r.Add(a)
	r.Add(b)
	assert.Same(t, a, r.Active())

	r.Activate(b)
	assert.Same(t, b, r.Active())
}

func TestRegistryScheduledSortedByStartTime(t *testing.T) {
	r := NewRegistry()
	late := New("late")
	late.SetStartTime(value.MustHour(12))
	early := New("early")
	early.SetStartTime(value.MustHour(0))
	unscheduled := New("unscheduled")
	r.Add(late)
	r.Add(early)
	r.Add(unscheduled)

	scheduled := r.Scheduled()
	if assert.Len(t, scheduled, 2) {
		assert.Same(t, early, scheduled[0])
		assert.Same(t, late, scheduled[1])
	}
}

func TestRegistryActiveWithNoFleetsReturnsDefault(t *testing.T) {
	r := NewRegistry()
	d := r.Active()
	assert.NotNil(t, d)
	assert.Equal(t, 1.0, d.Speed(types.Truck).Float64())
}
