// Package activity implements the discrete-event scheduler of spec.md
// §4.3/§5: Activities ordered by virtual time on a priority queue, fired
// in a single-threaded dispatch loop that lets a firing activity
// reschedule itself or schedule others before the loop advances.
package activity

import (
	"github.com/jwmdev/shipsim/internal/ids"
	"github.com/jwmdev/shipsim/internal/value"
)

// Status is an Activity's lifecycle state.
type Status int

const (
	// Uninit is the zero value: never scheduled.
	Uninit Status = iota
	// Free means the activity ran to completion and was not rescheduled.
	Free
	// Executing is set only while Manager.TimeIs is invoking the activity's
	// Fire callback, so a callback can tell it is being re-entered.
	Executing
	// NextTimeScheduled means the activity is sitting on the heap awaiting
	// a future firing.
	NextTimeScheduled
	// Cancelled means Manager.Cancel removed the activity before it fired.
	Cancelled
)

// Fire is the callback an Activity runs when its scheduled time arrives.
// now is always the activity's own nextTime at the moment it fires, even
// when a TimeIs call fast-forwards past several activities in one call:
// the manager advances now to each popped activity's nextTime before
// invoking it, and only settles at the requested horizon once the queue
// is drained. self is the firing Activity itself, passed back so a
// callback can reschedule or cancel itself without needing a separate
// forward-declared reference.
type Fire func(m *Manager, now value.Hour, self *Activity)

// Activity is one scheduled unit of work. Name exists for debugging and
// log correlation only; nothing keys off it. ID is a uuid stamped at
// construction, used to correlate log lines with a specific firing when
// many activities share the same Name (e.g. every customer's
// ShipmentGenerator).
type Activity struct {
	Name     string
	Priority uint8
	ID       string
	fire     Fire

	status   Status
	nextTime value.Hour

	heapIndex int
}

// New builds an activity in the Uninit state. Priority breaks ties
// between activities scheduled at the same virtual time: higher fires
// first.
func New(name string, priority uint8, fire Fire) *Activity {
	return &Activity{Name: name, Priority: priority, ID: ids.NewActivityID(), fire: fire, status: Uninit, heapIndex: -1}
}

func (a *Activity) Status() Status { return a.status }

func (a *Activity) NextTime() value.Hour { return a.nextTime }

// sameTime implements the manager's equal-time tolerance: two times
// within this delta are treated as simultaneous when ordering the heap,
// since virtual time accumulates float rounding error across many hops.
const sameTimeEpsilon = 5e-4

func sameTime(a, b value.Hour) bool {
	d := a.Float64() - b.Float64()
	if d < 0 {
		d = -d
	}
	return d < sameTimeEpsilon
}
