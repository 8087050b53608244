package network

import (
	"github.com/jwmdev/shipsim/internal/types"
	"github.com/jwmdev/shipsim/internal/value"
)

// Segment is a directed transport link, identified by a name unique
// within its ShippingNetwork. TransportMode is fixed at creation;
// everything else is mutable through ShippingNetwork's setters, which
// enforce the invariants of spec.md §3 before applying a change.
type Segment struct {
	name          string
	transportMode types.TransportMode

	source        *Location
	returnSegment *Segment

	length     value.Mile
	difficulty value.Difficulty
	modes      types.PathModeSet
	capacity   value.PackageNum
}

func (s *Segment) Name() string { return s.name }

func (s *Segment) TransportMode() types.TransportMode { return s.transportMode }

func (s *Segment) Source() *Location { return s.source }

func (s *Segment) ReturnSegment() *Segment { return s.returnSegment }

func (s *Segment) Length() value.Mile { return s.length }

func (s *Segment) Difficulty() value.Difficulty { return s.difficulty }

func (s *Segment) Capacity() value.PackageNum { return s.capacity }

// Modes returns the segment's supported PathModes in stable order.
func (s *Segment) Modes() []types.PathMode { return s.modes.Ordered() }

func (s *Segment) HasMode(m types.PathMode) bool { return s.modes.Has(m) }

// Routable reports whether the segment has a source, a return segment,
// and that return segment itself has a source — the three conditions
// spec.md's glossary requires before Conn will ever traverse it.
func (s *Segment) Routable() bool {
	return s.source != nil && s.returnSegment != nil && s.returnSegment.source != nil
}

// segmentSourceOK enforces the type-compatibility invariant of spec.md
// §3: a segment may only be attached as the source of a location that
// permits its transport mode.
func segmentSourceOK(loc *Location, mode types.TransportMode) bool {
	if loc == nil {
		return true
	}
	return loc.AcceptsTransportMode(mode)
}
