package activity

import (
	"container/heap"

	"github.com/jwmdev/shipsim/internal/value"
)

// activityHeap orders by nextTime ascending, Priority descending on a
// tie (within sameTimeEpsilon). It implements container/heap.Interface;
// no library in the example pack ships a generic priority queue, so this
// is one of the few stdlib-only pieces of the simulator.
type activityHeap []*Activity

func (h activityHeap) Len() int { return len(h) }

func (h activityHeap) Less(i, j int) bool {
	if sameTime(h[i].nextTime, h[j].nextTime) {
		return h[i].Priority > h[j].Priority
	}
	return h[i].nextTime.Less(h[j].nextTime)
}

func (h activityHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].heapIndex = i
	h[j].heapIndex = j
}

func (h *activityHeap) Push(x any) {
	a := x.(*Activity)
	a.heapIndex = len(*h)
	*h = append(*h, a)
}

func (h *activityHeap) Pop() any {
	old := *h
	n := len(old)
	a := old[n-1]
	old[n-1] = nil
	a.heapIndex = -1
	*h = old[:n-1]
	return a
}

// Manager owns virtual time and the activity queue. There is one Manager
// per running simulation; spec.md's design note 9 rules out a
// process-wide scheduler singleton.
type Manager struct {
	now   value.Hour
	queue activityHeap
}

func NewManager() *Manager {
	return &Manager{queue: activityHeap{}}
}

// Now returns the manager's current virtual time.
func (m *Manager) Now() value.Hour { return m.now }

// Schedule places activity on the queue to fire at t. Scheduling an
// activity that is already queued moves it (cancel, then re-add);
// scheduling one that is Executing is how a firing activity
// reschedules itself.
func (m *Manager) Schedule(a *Activity, t value.Hour) {
	if a.status == NextTimeScheduled {
		heap.Remove(&m.queue, a.heapIndex)
	}
	a.nextTime = t
	a.status = NextTimeScheduled
	heap.Push(&m.queue, a)
}

// Cancel removes activity from the queue if present. A no-op if it was
// not scheduled.
func (m *Manager) Cancel(a *Activity) {
	if a.status != NextTimeScheduled {
		return
	}
	heap.Remove(&m.queue, a.heapIndex)
	a.status = Cancelled
}

// Pending reports whether any activity remains on the queue.
func (m *Manager) Pending() bool { return m.queue.Len() > 0 }

// PeekTime returns the virtual time of the next activity to fire, and
// false if the queue is empty.
func (m *Manager) PeekTime() (value.Hour, bool) {
	if m.queue.Len() == 0 {
		return 0, false
	}
	return m.queue[0].nextTime, true
}

// TimeIs advances virtual time to t, firing every activity whose
// nextTime is <= t, in heap order. Before each activity fires, m.now is
// set to that activity's own nextTime — not to t — so a Fire callback
// always sees the time it was actually scheduled for, matching
// Manager::nowIs in the original implementation. Only once the queue
// has no more due activities does m.now settle at t. An activity popped
// this way runs to completion — including any Schedule/Cancel calls it
// makes on other activities or on itself — before the next activity is
// popped, per spec.md §4.3's single-threaded re-entrancy rule. An
// activity is fully popped off the heap (status set to Executing) before
// its Fire callback runs, so a self-reschedule inside Fire is
// indistinguishable from a fresh Schedule call; an activity that did not
// reschedule or cancel itself ends up Free.
func (m *Manager) TimeIs(t value.Hour) {
	if t.Less(m.now) {
		return
	}
	for m.queue.Len() > 0 && !t.Less(m.queue[0].nextTime) {
		a := heap.Pop(&m.queue).(*Activity)
		m.now = a.nextTime
		a.status = Executing
		a.fire(m, m.now, a)
		if a.status == Executing {
			a.status = Free
		}
	}
	m.now = t
}

// NowIs jumps virtual time directly to t without requiring intermediate
// activities to fire at every value in between; this is the same
// operation as TimeIs under spec.md's model (time only ever moves
// forward to the next thing that must happen), kept as a distinct name
// because callers use it to express "fast forward to the next event"
// rather than "advance by a tick".
func (m *Manager) NowIs(t value.Hour) { m.TimeIs(t) }

// RunUntilIdle fires every activity on the queue in order until none
// remain, advancing Now to each activity's nextTime as it goes. Used by
// batch-mode runs that simulate to completion rather than to a fixed
// horizon.
func (m *Manager) RunUntilIdle() {
	for m.queue.Len() > 0 {
		next := m.queue[0].nextTime
		m.TimeIs(next)
	}
}
