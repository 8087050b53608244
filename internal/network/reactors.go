package network

import "github.com/jwmdev/shipsim/internal/stats"

// segmentReactor maintains the two symmetric invariants of spec.md §8:
// a segment's source is exactly the location whose list contains it, and
// a segment's return segment names it back. Both handlers below may
// re-enter the network (setSegmentReturn calls itself on the peer); the
// re-entrant call is a no-op whenever the target state already holds,
// which is what stops the recursion at one level deep.
type segmentReactor struct{}

func (segmentReactor) HandleEvent(n *ShippingNetwork, ev Event) {
	switch e := ev.(type) {
	case SegmentSourceChangedEvent:
		if e.Old != nil {
			e.Old.detach(e.Segment)
		}
		if e.New != nil {
			e.New.attach(e.Segment)
		}
	case SegmentReturnChangedEvent:
		if e.Old != nil && e.Old.returnSegment == e.Segment {
			_ = n.setSegmentReturn(e.Old, nil)
		}
		if e.New != nil && e.New.returnSegment != e.Segment {
			_ = n.setSegmentReturn(e.New, e.Segment)
		}
	}
}

// networkReactor cascades deletion: removing a segment clears its source
// and return-segment fields (which drives segmentReactor's cleanup), and
// removing a location clears the source of every segment that pointed to
// it.
type networkReactor struct{}

func (networkReactor) HandleEvent(n *ShippingNetwork, ev Event) {
	switch e := ev.(type) {
	case SegmentDelEvent:
		_ = n.setSegmentSource(e.Segment, nil)
		_ = n.setSegmentReturn(e.Segment, nil)
	case LocationDelEvent:
		for _, seg := range e.Location.Segments() {
			_ = n.setSegmentSource(seg, nil)
		}
	}
}

// statsReactor keeps internal/stats.Stats in sync with every mutation
// that changes a counted attribute: location/segment creation and
// deletion, and PathMode membership changes (which determine both the
// per-PathMode segment counts and the derived expedite percentage).
type statsReactor struct{ stats *stats.Stats }

func (r statsReactor) HandleEvent(n *ShippingNetwork, ev Event) {
	switch e := ev.(type) {
	case LocationNewEvent:
		r.stats.IncrLocation(e.Location.Kind())
	case LocationDelEvent:
		r.stats.DecrLocation(e.Location.Kind())
	case SegmentNewEvent:
		r.stats.IncrSegment(e.Segment.TransportMode())
	case SegmentDelEvent:
		r.stats.DecrSegment(e.Segment.TransportMode())
	case SegmentModeChangedEvent:
		if e.Enabled {
			r.stats.IncrPathMode(e.Mode)
		} else {
			r.stats.DecrPathMode(e.Mode)
		}
	}
}
