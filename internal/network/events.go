package network

import "github.com/jwmdev/shipsim/internal/types"

// Event is the closed union of mutations a ShippingNetwork dispatches to
// its registered Handlers, fired after the state change it describes has
// already been applied. This replaces the virtual-notifiee hierarchy of
// the system this simulator is modeled on with a fixed set of event
// structs and a type switch in each Handler — see design note 9.
type Event interface{ isNetworkEvent() }

type SegmentNewEvent struct{ Segment *Segment }

func (SegmentNewEvent) isNetworkEvent() {}

type SegmentDelEvent struct{ Segment *Segment }

func (SegmentDelEvent) isNetworkEvent() {}

type LocationNewEvent struct{ Location *Location }

func (LocationNewEvent) isNetworkEvent() {}

type LocationDelEvent struct{ Location *Location }

func (LocationDelEvent) isNetworkEvent() {}

// SegmentSourceChangedEvent fires whenever a segment's source endpoint
// actually changes (idempotent re-assignment fires nothing).
type SegmentSourceChangedEvent struct {
	Segment  *Segment
	Old, New *Location
}

func (SegmentSourceChangedEvent) isNetworkEvent() {}

// SegmentReturnChangedEvent fires whenever a segment's return-segment
// pointer actually changes.
type SegmentReturnChangedEvent struct {
	Segment  *Segment
	Old, New *Segment
}

func (SegmentReturnChangedEvent) isNetworkEvent() {}

// SegmentModeChangedEvent fires whenever a PathMode is added to or
// removed from a segment's supported mode set.
type SegmentModeChangedEvent struct {
	Segment *Segment
	Mode    types.PathMode
	Enabled bool
}

func (SegmentModeChangedEvent) isNetworkEvent() {}

// Handler observes ShippingNetwork mutations. Handlers may themselves
// call back into the network that is dispatching to them (the built-in
// reactors do, to maintain symmetric links); the network tolerates this
// by keying idempotency on current state rather than on event order, per
// spec.md §4.1.
type Handler interface {
	HandleEvent(n *ShippingNetwork, ev Event)
}

// dispatch fans ev out to every registered handler. A handler that
// panics is recovered and ignored so one misbehaving subscriber cannot
// abort the mutation that triggered it (spec.md §7).
func (n *ShippingNetwork) dispatch(ev Event) {
	for _, h := range n.handlers {
		n.safeHandle(h, ev)
	}
}

func (n *ShippingNetwork) safeHandle(h Handler, ev Event) {
	defer func() { _ = recover() }()
	h.HandleEvent(n, ev)
}
