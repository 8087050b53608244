package network

import "github.com/jwmdev/shipsim/internal/types"

// Location is a node in the shipping network, identified by a name
// unique within its ShippingNetwork. Segments is the ordered, 1-indexed
// (externally) list of segments whose source currently equals this
// location; the network's segment reactor is the only code that mutates
// it, keeping invariant 2 of spec.md §8 (source back-link) true by
// construction.
type Location struct {
	name     string
	kind     types.LocationKind
	segments []*Segment
}

func (l *Location) Name() string { return l.name }

func (l *Location) Kind() types.LocationKind { return l.kind }

// Segments returns the location's outgoing segments in insertion order.
// The slice is a copy; callers cannot corrupt the location's back-link
// list through it.
func (l *Location) Segments() []*Segment {
	out := make([]*Segment, len(l.segments))
	copy(out, l.segments)
	return out
}

// SegmentAt returns the Nth outgoing segment using the facade's 1-indexed
// convention (spec.md §6, Location "segmentN" attribute), or nil if out
// of range.
func (l *Location) SegmentAt(n int) *Segment {
	if n < 1 || n > len(l.segments) {
		return nil
	}
	return l.segments[n-1]
}

// AcceptsTransportMode reports whether a segment of the given transport
// mode may be attached as this location's outgoing segment. Terminal
// kinds only accept their own mode; Customer and Port accept any mode.
func (l *Location) AcceptsTransportMode(m types.TransportMode) bool {
	required, restricted := l.kind.RequiredTransportMode()
	if !restricted {
		return true
	}
	return required == m
}

func (l *Location) attach(s *Segment) {
	for _, existing := range l.segments {
		if existing == s {
			return
		}
	}
	l.segments = append(l.segments, s)
}

func (l *Location) detach(s *Segment) {
	for i, existing := range l.segments {
		if existing == s {
			l.segments = append(l.segments[:i], l.segments[i+1:]...)
			return
		}
	}
}
