package activity

import (
	"testing"

	"github.com/jwmdev/shipsim/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiresInTimeOrder(t *testing.T) {
	m := NewManager()
	var order []string

	a := New("a", 0, func(m *Manager, now value.Hour, self *Activity) { order = append(order, "a") })
	b := New("b", 0, func(m *Manager, now value.Hour, self *Activity) { order = append(order, "b") })
	c := New("c", 0, func(m *Manager, now value.Hour, self *Activity) { order = append(order, "c") })

	m.Schedule(b, value.MustHour(5))
	m.Schedule(a, value.MustHour(1))
	m.Schedule(c, value.MustHour(10))

	m.TimeIs(value.MustHour(100))
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestTiesBrokenByPriorityDescending(t *testing.T) {
	m := NewManager()
	var order []string

	low := New("low", 1, func(m *Manager, now value.Hour, self *Activity) { order = append(order, "low") })
	high := New("high", 9, func(m *Manager, now value.Hour, self *Activity) { order = append(order, "high") })

	m.Schedule(low, value.MustHour(1))
	m.Schedule(high, value.MustHour(1))

	m.TimeIs(value.MustHour(1))
	assert.Equal(t, []string{"high", "low"}, order)
}

func TestActivityCanRescheduleItself(t *testing.T) {
	m := NewManager()
	fireCount := 0

	self := New("repeating", 0, func(m *Manager, now value.Hour, self *Activity) {
		fireCount++
		if fireCount < 3 {
			m.Schedule(self, value.MustHour(now.Float64()+1))
		}
	})
	m.Schedule(self, value.MustHour(1))

	m.RunUntilIdle()
	assert.Equal(t, 3, fireCount)
	assert.False(t, m.Pending())
}

func TestCancelRemovesBeforeFiring(t *testing.T) {
	m := NewManager()
	fired := false
	a := New("a", 0, func(m *Manager, now value.Hour, self *Activity) { fired = true })
	m.Schedule(a, value.MustHour(5))
	m.Cancel(a)

	m.TimeIs(value.MustHour(10))
	assert.False(t, fired)
	assert.Equal(t, Cancelled, a.Status())
}

func TestReschedulingAnAlreadyQueuedActivityMovesIt(t *testing.T) {
	m := NewManager()
	var order []string
	a := New("a", 0, func(m *Manager, now value.Hour, self *Activity) { order = append(order, "a") })
	b := New("b", 0, func(m *Manager, now value.Hour, self *Activity) { order = append(order, "b") })

	m.Schedule(a, value.MustHour(10))
	m.Schedule(b, value.MustHour(1))
	m.Schedule(a, value.MustHour(0.5)) // a now fires before b

	m.TimeIs(value.MustHour(20))
	assert.Equal(t, []string{"a", "b"}, order)
}

func TestOneActivityFiringCanScheduleAnother(t *testing.T) {
	m := NewManager()
	var order []string
	second := New("second", 0, func(m *Manager, now value.Hour, self *Activity) { order = append(order, "second") })
	first := New("first", 0, func(m *Manager, now value.Hour, self *Activity) {
		order = append(order, "first")
		m.Schedule(second, now)
	})
	m.Schedule(first, value.MustHour(1))

	m.TimeIs(value.MustHour(1))
	require.Equal(t, []string{"first", "second"}, order)
}

func TestFireSeesItsOwnNextTimeNotTheRequestedHorizon(t *testing.T) {
	m := NewManager()
	var seen []value.Hour

	a := New("a", 0, func(m *Manager, now value.Hour, self *Activity) { seen = append(seen, now) })
	b := New("b", 0, func(m *Manager, now value.Hour, self *Activity) { seen = append(seen, now) })
	m.Schedule(a, value.MustHour(3))
	m.Schedule(b, value.MustHour(7))

	m.TimeIs(value.MustHour(10))

	require.Equal(t, []value.Hour{value.MustHour(3), value.MustHour(7)}, seen)
	assert.Equal(t, value.MustHour(10), m.Now())
}

func TestTimeIsIgnoresBackwardJumps(t *testing.T) {
	m := NewManager()
	fired := false
	a := New("a", 0, func(m *Manager, now value.Hour, self *Activity) { fired = true })
	m.Schedule(a, value.MustHour(10))
	m.TimeIs(value.MustHour(5))
	m.TimeIs(value.MustHour(2)) // backward: ignored
	assert.False(t, fired)
	assert.Equal(t, value.MustHour(5), m.Now())
}
