// Package network implements the shipping network graph: Location and
// Segment entities, the ShippingNetwork registry that owns them, and the
// reactor protocol that keeps their back-links and statistics consistent
// under mutation (spec.md §3, §4.1).
package network

import (
	"errors"
	"fmt"

	"github.com/jwmdev/shipsim/internal/stats"
	"github.com/jwmdev/shipsim/internal/types"
	"github.com/jwmdev/shipsim/internal/value"
)

// ErrRejected is returned by a setter that refuses a mutation on type- or
// range-compatibility grounds. Per spec.md §7 this is never fatal; a
// facade layer built on top of this package is expected to swallow it.
var ErrRejected = errors.New("rejected")

// ShippingNetwork is the registry owning a network's locations, segments,
// Stats, and reactor list. It holds no fleet: fleets live in a separate
// fleet.Registry that callers pass to path.Conn. There is no process-wide
// singleton (design note 9): every caller constructs and passes its own
// instance.
type ShippingNetwork struct {
	locations map[string]*Location
	segments  map[string]*Segment
	handlers  []Handler
	stats     *stats.Stats
}

// New builds an empty network with the three required reactors attached:
// the segment reactor (back-link symmetry), the network reactor (cascade
// delete) and the stats reactor (counters).
func New() *ShippingNetwork {
	n := &ShippingNetwork{
		locations: make(map[string]*Location),
		segments:  make(map[string]*Segment),
		stats:     stats.New(),
	}
	n.handlers = []Handler{
		segmentReactor{},
		networkReactor{},
		statsReactor{stats: n.stats},
	}
	return n
}

// AddHandler registers an additional observer. Built-in reactors always
// run first, in the order listed in New, so a caller's handler sees
// network state already consistent.
func (n *ShippingNetwork) AddHandler(h Handler) { n.handlers = append(n.handlers, h) }

func (n *ShippingNetwork) Stats() *stats.Stats { return n.stats }

// Location looks up a location by name.
func (n *ShippingNetwork) Location(name string) (*Location, bool) {
	l, ok := n.locations[name]
	return l, ok
}

// Segment looks up a segment by name.
func (n *ShippingNetwork) Segment(name string) (*Segment, bool) {
	s, ok := n.segments[name]
	return s, ok
}

// Locations returns every location in the registry; order is unspecified.
func (n *ShippingNetwork) Locations() []*Location {
	out := make([]*Location, 0, len(n.locations))
	for _, l := range n.locations {
		out = append(out, l)
	}
	return out
}

// Segments returns every segment in the registry; order is unspecified.
func (n *ShippingNetwork) Segments() []*Segment {
	out := make([]*Segment, 0, len(n.segments))
	for _, s := range n.segments {
		out = append(out, s)
	}
	return out
}

// Owns reports whether loc belongs to this network's registry, by
// reference identity. Conn uses this to reject cross-network queries
// (spec.md §4.2 edge cases) without comparing names, which could
// collide across independently constructed networks.
func (n *ShippingNetwork) Owns(loc *Location) bool {
	if loc == nil {
		return false
	}
	existing, ok := n.locations[loc.name]
	return ok && existing == loc
}

// LocationNew returns the existing location if name is taken, else
// creates one of the given kind and emits LocationNewEvent.
func (n *ShippingNetwork) LocationNew(name string, kind types.LocationKind) *Location {
	if existing, ok := n.locations[name]; ok {
		return existing
	}
	loc := &Location{name: name, kind: kind}
	n.locations[name] = loc
	n.dispatch(LocationNewEvent{Location: loc})
	return loc
}

// SegmentNew returns the existing segment if name is taken, else creates
// one of the given transport mode with spec.md §3 defaults (length 1,
// difficulty 1, mode {unexpedited}, capacity 10) and emits
// SegmentNewEvent.
func (n *ShippingNetwork) SegmentNew(name string, mode types.TransportMode) *Segment {
	if existing, ok := n.segments[name]; ok {
		return existing
	}
	seg := &Segment{
		name:          name,
		transportMode: mode,
		length:        value.MustMile(1),
		difficulty:    value.MustDifficulty(1),
		modes:         types.NewPathModeSet(types.Unexpedited),
		capacity:      value.MustPackageNum(10),
	}
	n.segments[name] = seg
	n.dispatch(SegmentNewEvent{Segment: seg})
	n.dispatch(SegmentModeChangedEvent{Segment: seg, Mode: types.Unexpedited, Enabled: true})
	return seg
}

// LocationDel removes and returns the named location (nil if absent).
// Deletion cascades: every segment still naming this location as source
// is cleared via the network reactor.
func (n *ShippingNetwork) LocationDel(name string) *Location {
	loc, ok := n.locations[name]
	if !ok {
		return nil
	}
	delete(n.locations, name)
	n.dispatch(LocationDelEvent{Location: loc})
	return loc
}

// SegmentDel removes and returns the named segment (nil if absent).
// Deletion cascades: the segment's source and return-segment links are
// cleared via the network reactor, which in turn breaks return-segment
// symmetry and source back-links on the other side.
func (n *ShippingNetwork) SegmentDel(name string) *Segment {
	seg, ok := n.segments[name]
	if !ok {
		return nil
	}
	delete(n.segments, name)
	for _, m := range seg.Modes() {
		n.setSegmentMode(seg, m, false)
	}
	n.dispatch(SegmentDelEvent{Segment: seg})
	return seg
}

// SetSegmentSource attaches segment to locationName's outgoing list, or
// detaches it if locationName is empty. Rejected (with ErrRejected) if
// the location does not accept the segment's transport mode; a no-op
// (returns nil) if source is already set to the requested location.
func (n *ShippingNetwork) SetSegmentSource(segmentName, locationName string) error {
	seg, ok := n.segments[segmentName]
	if !ok {
		return fmt.Errorf("segment %q: %w: not found", segmentName, ErrRejected)
	}
	var loc *Location
	if locationName != "" {
		loc, ok = n.locations[locationName]
		if !ok {
			return fmt.Errorf("location %q: %w: not found", locationName, ErrRejected)
		}
	}
	return n.setSegmentSource(seg, loc)
}

func (n *ShippingNetwork) setSegmentSource(seg *Segment, loc *Location) error {
	if seg.source == loc {
		return nil
	}
	if !segmentSourceOK(loc, seg.transportMode) {
		return fmt.Errorf("location %q does not accept transport mode %q: %w", loc.name, seg.transportMode, ErrRejected)
	}
	old := seg.source
	seg.source = loc
	n.dispatch(SegmentSourceChangedEvent{Segment: seg, Old: old, New: loc})
	return nil
}

// SetSegmentReturn pairs segment with peerName bidirectionally, or
// clears the pairing if peerName is empty. Rejected if the two segments'
// transport modes differ.
func (n *ShippingNetwork) SetSegmentReturn(segmentName, peerName string) error {
	seg, ok := n.segments[segmentName]
	if !ok {
		return fmt.Errorf("segment %q: %w: not found", segmentName, ErrRejected)
	}
	var peer *Segment
	if peerName != "" {
		peer, ok = n.segments[peerName]
		if !ok {
			return fmt.Errorf("segment %q: %w: not found", peerName, ErrRejected)
		}
	}
	return n.setSegmentReturn(seg, peer)
}

func (n *ShippingNetwork) setSegmentReturn(seg, peer *Segment) error {
	if seg.returnSegment == peer {
		return nil
	}
	if peer != nil && peer.transportMode != seg.transportMode {
		return fmt.Errorf("segment %q transport mode %q does not match %q: %w", peer.name, peer.transportMode, seg.transportMode, ErrRejected)
	}
	old := seg.returnSegment
	seg.returnSegment = peer
	n.dispatch(SegmentReturnChangedEvent{Segment: seg, Old: old, New: peer})
	return nil
}

// SetSegmentMode adds or removes a PathMode from segment's supported set.
func (n *ShippingNetwork) SetSegmentMode(segmentName string, mode types.PathMode, enabled bool) error {
	seg, ok := n.segments[segmentName]
	if !ok {
		return fmt.Errorf("segment %q: %w: not found", segmentName, ErrRejected)
	}
	return n.setSegmentMode(seg, mode, enabled)
}

func (n *ShippingNetwork) setSegmentMode(seg *Segment, mode types.PathMode, enabled bool) error {
	if seg.modes.Has(mode) == enabled {
		return nil
	}
	if enabled {
		seg.modes.Add(mode)
	} else {
		seg.modes.Remove(mode)
	}
	n.dispatch(SegmentModeChangedEvent{Segment: seg, Mode: mode, Enabled: enabled})
	return nil
}

// SetSegmentLength validates and assigns a new length.
func (n *ShippingNetwork) SetSegmentLength(segmentName string, miles float64) error {
	seg, ok := n.segments[segmentName]
	if !ok {
		return fmt.Errorf("segment %q: %w: not found", segmentName, ErrRejected)
	}
	m, err := value.NewMile(miles)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRejected, err)
	}
	seg.length = m
	return nil
}

// SetSegmentDifficulty validates and assigns a new difficulty.
func (n *ShippingNetwork) SetSegmentDifficulty(segmentName string, d float64) error {
	seg, ok := n.segments[segmentName]
	if !ok {
		return fmt.Errorf("segment %q: %w: not found", segmentName, ErrRejected)
	}
	diff, err := value.NewDifficulty(d)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRejected, err)
	}
	seg.difficulty = diff
	return nil
}

// SetSegmentCapacity validates and assigns a new capacity.
func (n *ShippingNetwork) SetSegmentCapacity(segmentName string, capacity int) error {
	seg, ok := n.segments[segmentName]
	if !ok {
		return fmt.Errorf("segment %q: %w: not found", segmentName, ErrRejected)
	}
	c, err := value.NewPackageNum(capacity)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRejected, err)
	}
	seg.capacity = c
	return nil
}
