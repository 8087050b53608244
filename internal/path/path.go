// Package path implements Path/PathElement and the Conn enumeration
// engine of spec.md §4.2: a constrained depth-first search over a
// ShippingNetwork's routable segments.
package path

import (
	"github.com/jwmdev/shipsim/internal/fleet"
	"github.com/jwmdev/shipsim/internal/network"
	"github.com/jwmdev/shipsim/internal/types"
	"github.com/jwmdev/shipsim/internal/value"
)

// PathElement records one traversed segment and the PathMode the path
// chose for it.
type PathElement struct {
	Segment *network.Segment
	Mode    types.PathMode
}

// Path is an ordered, non-empty sequence of PathElements together with
// the cumulative metrics spec.md §3 derives incrementally as elements
// are appended. Once built it is treated as immutable: append returns a
// new Path rather than mutating the receiver, since the same prefix is
// shared by many DFS branches.
type Path struct {
	elements []PathElement
	distance value.Mile
	cost     value.Dollar
	time     value.Hour
	visited  map[string]bool
}

// newSeed builds the single-element path produced by step 1 of the
// enumeration algorithm.
func newSeed(seg *network.Segment, mode types.PathMode, f *fleet.Fleet) *Path {
	p := &Path{visited: make(map[string]bool, 2)}
	return p.appended(seg, mode, f)
}

// appended returns a new Path with (seg, mode) appended and the
// cumulative metrics updated per the per-step formula in spec.md §4.2.
func (p *Path) appended(seg *network.Segment, mode types.PathMode, f *fleet.Fleet) *Path {
	tm := seg.TransportMode()
	length := seg.Length()

	distance := p.distance.Add(length)

	costDelta := seg.Difficulty().Float64() * length.Float64() * f.EffectiveCostRate(tm, mode)
	cost := value.Dollar(p.cost.Float64() + costDelta)

	var timeDelta float64
	if effSpeed := f.EffectiveSpeed(tm, mode); effSpeed > 0 {
		timeDelta = length.Float64() / effSpeed
	}
	time := value.Hour(p.time.Float64() + timeDelta)

	visited := make(map[string]bool, len(p.visited)+2)
	for k := range p.visited {
		visited[k] = true
	}
	visited[seg.Source().Name()] = true
	visited[seg.ReturnSegment().Source().Name()] = true

	elements := make([]PathElement, len(p.elements)+1)
	copy(elements, p.elements)
	elements[len(elements)-1] = PathElement{Segment: seg, Mode: mode}

	return &Path{elements: elements, distance: distance, cost: cost, time: time, visited: visited}
}

func (p *Path) Elements() []PathElement {
	out := make([]PathElement, len(p.elements))
	copy(out, p.elements)
	return out
}

func (p *Path) Len() int { return len(p.elements) }

func (p *Path) Distance() value.Mile { return p.distance }

func (p *Path) Cost() value.Dollar { return p.cost }

func (p *Path) Time() value.Hour { return p.time }

// LastLocation is the far end of the path's last hop: the location named
// by that hop's segment's return segment's source.
func (p *Path) LastLocation() *network.Location {
	if len(p.elements) == 0 {
		return nil
	}
	last := p.elements[len(p.elements)-1]
	return last.Segment.ReturnSegment().Source()
}

// FirstLocation is the path's source: the location the first hop departed
// from.
func (p *Path) FirstLocation() *network.Location {
	if len(p.elements) == 0 {
		return nil
	}
	return p.elements[0].Segment.Source()
}

// Visited reports whether locationName was entered anywhere along the
// path (used for loop detection during enumeration and exposed for
// testing invariant 4 of spec.md §8).
func (p *Path) Visited(locationName string) bool { return p.visited[locationName] }

// HasExpedited reports whether any element of the path used the
// expedited PathMode; the facade's connect query line uses this for its
// "yes"/"no" field.
func (p *Path) HasExpedited() bool {
	for _, e := range p.elements {
		if e.Mode == types.Expedited {
			return true
		}
	}
	return false
}
