package path

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jwmdev/shipsim/internal/fleet"
	"github.com/jwmdev/shipsim/internal/network"
	"github.com/jwmdev/shipsim/internal/types"
)

// RoutingPolicy selects the metric Conn.NextHop minimizes over.
type RoutingPolicy string

const (
	RoutingNone         RoutingPolicy = "none"
	RoutingMinHops      RoutingPolicy = "minHops"
	RoutingMinDistance  RoutingPolicy = "minDistance"
	RoutingMinTime      RoutingPolicy = "minTime"
)

// Conn is the path-enumeration engine of spec.md §4.2, bound to one
// ShippingNetwork and the fleet whose cost/speed tables size its metrics.
type Conn struct {
	Name    string
	Routing RoutingPolicy

	network *network.ShippingNetwork
	fleets  *fleet.Registry
}

func New(name string, net *network.ShippingNetwork, fleets *fleet.Registry) *Conn {
	return &Conn{Name: name, Routing: RoutingNone, network: net, fleets: fleets}
}

// Find enumerates every loop-free path satisfying selector, in DFS
// discovery order, per spec.md §4.2. A selector naming a source or sink
// this Conn's network does not own (by reference identity) yields zero
// paths, the cross-network isolation edge case.
func (c *Conn) Find(selector PathSelector) []*Path {
	if selector.Source == nil || !c.network.Owns(selector.Source) {
		return nil
	}
	if selector.Sink != nil && !c.network.Owns(selector.Sink) {
		return nil
	}
	if selector.Mode == Connect && selector.Sink == nil {
		return nil
	}
	if len(selector.Modes) == 0 {
		return nil
	}

	active := c.fleets.Active()
	var results []*Path

	var visit func(p *Path)
	visit = func(p *Path) {
		if !selector.satisfiesAll(p) {
			return
		}
		atSink := selector.Sink != nil && p.LastLocation() == selector.Sink
		if (selector.Mode == Explore && selector.Sink == nil) || atSink {
			results = append(results, p)
		}
		if selector.Sink != nil && atSink {
			return // optimization: do not extend once at the sink
		}
		last := p.LastLocation()
		for _, seg := range last.Segments() {
			if !seg.Routable() {
				continue
			}
			other := seg.ReturnSegment().Source()
			if p.Visited(other.Name()) {
				continue
			}
			for _, m := range dfsModeOrder {
				if !selector.Modes.Has(m) || !seg.HasMode(m) {
					continue
				}
				visit(p.appended(seg, m, active))
			}
		}
	}

	for _, seg := range selector.Source.Segments() {
		if !seg.Routable() {
			continue
		}
		for _, m := range dfsModeOrder {
			if !selector.Modes.Has(m) || !seg.HasMode(m) {
				continue
			}
			visit(newSeed(seg, m, active))
		}
	}

	return results
}

// NextHop returns the name of the first segment on the minimum-weight
// path from source to sink under c.Routing, or "" if no path exists or
// Routing is RoutingNone. Ties are broken by DFS discovery order (the
// first-discovered minimum wins), matching spec.md §4.2.
func (c *Conn) NextHop(source, sink *network.Location) string {
	if c.Routing == RoutingNone {
		return ""
	}
	paths := c.Find(PathSelector{
		Mode:   Connect,
		Source: source,
		Sink:   sink,
		Modes:  types.NewPathModeSet(types.Expedited, types.Unexpedited),
	})
	best := c.Best(paths)
	if best == nil {
		return ""
	}
	return best.Elements()[0].Segment.Name()
}

// Best returns the minimum-weight path under c.Routing, or the first
// path in paths if Routing is RoutingNone. Ties favor the
// first-discovered path. Returns nil for an empty slice.
func (c *Conn) Best(paths []*Path) *Path {
	if len(paths) == 0 {
		return nil
	}
	best := paths[0]
	for _, p := range paths[1:] {
		if c.less(p, best) {
			best = p
		}
	}
	return best
}

func (c *Conn) less(a, b *Path) bool {
	switch c.Routing {
	case RoutingMinHops:
		return a.Len() < b.Len()
	case RoutingMinDistance:
		return a.Distance().Less(b.Distance())
	case RoutingMinTime:
		return a.Time().Less(b.Time())
	default:
		return false
	}
}

// FormatConnect renders p using the facade's connect line format from
// spec.md §6: "<cost> <time> <yes|no>; <firstSource>(<seg>:<len>:<returnSeg>) ... <lastLocation>".
func FormatConnect(p *Path) string {
	yn := "no"
	if p.HasExpedited() {
		yn = "yes"
	}
	return fmt.Sprintf("%.2f %.2f %s; %s\n", p.Cost().Float64(), p.Time().Float64(), yn, formatRoute(p))
}

// FormatExplore renders p using the facade's explore line format from
// spec.md §6: "<firstSource>(<seg>:<len>:<returnSeg>) ... <lastLocation>".
func FormatExplore(p *Path) string {
	return fmt.Sprintf("%s\n", formatRoute(p))
}

func formatRoute(p *Path) string {
	var b strings.Builder
	b.WriteString(p.FirstLocation().Name())
	for _, e := range p.Elements() {
		b.WriteString(fmt.Sprintf("(%s:%.2f:%s)", e.Segment.Name(), e.Segment.Length().Float64(), e.Segment.ReturnSegment().Name()))
	}
	b.WriteString(p.LastLocation().Name())
	return b.String()
}

// FormatLines renders every path in paths using formatter, deduplicates
// identical lines (spec.md §6's "set semantics"), and orders expedited
// paths before unexpedited ones while otherwise preserving discovery
// order — the presentation-layer sort a facade applies on top of Find's
// raw DFS order.
func FormatLines(paths []*Path, formatter func(*Path) string) []string {
	sorted := make([]*Path, len(paths))
	copy(sorted, paths)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].HasExpedited() && !sorted[j].HasExpedited()
	})

	seen := make(map[string]bool, len(sorted))
	lines := make([]string, 0, len(sorted))
	for _, p := range sorted {
		line := formatter(p)
		if seen[line] {
			continue
		}
		seen[line] = true
		lines = append(lines, line)
	}
	return lines
}
