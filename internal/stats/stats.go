// Package stats holds the passive counters described in spec.md §3/§4.5.
// Counters are only ever mutated through the reactor protocol: nothing
// outside internal/network's dispatch loop calls the increment/decrement
// methods directly.
package stats

import (
	"sync"

	"github.com/jwmdev/shipsim/internal/types"
)

// Stats aggregates location/segment counts for one ShippingNetwork.
// Reads and writes are serialized by a mutex. Every caller in this
// repository runs on the simulation loop's goroutine, including
// internal/telemetry's Refresh in cmd/shipsim serve; the metrics HTTP
// goroutine reads only the Prometheus registry, never Stats.
type Stats struct {
	mu sync.Mutex

	locationCount map[types.LocationKind]int
	segmentCount  map[types.TransportMode]int
	pathModeCount map[types.PathMode]int
	totalSegments int
}

func New() *Stats {
	return &Stats{
		locationCount: make(map[types.LocationKind]int),
		segmentCount:  make(map[types.TransportMode]int),
		pathModeCount: make(map[types.PathMode]int),
	}
}

func (s *Stats) IncrLocation(k types.LocationKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locationCount[k]++
}

func (s *Stats) DecrLocation(k types.LocationKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clampedDecr(s.locationCount, k)
}

func (s *Stats) IncrSegment(m types.TransportMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.segmentCount[m]++
	s.totalSegments++
}

func (s *Stats) DecrSegment(m types.TransportMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clampedDecr(s.segmentCount, m)
	if s.totalSegments > 0 {
		s.totalSegments--
	}
}

func (s *Stats) IncrPathMode(m types.PathMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pathModeCount[m]++
}

func (s *Stats) DecrPathMode(m types.PathMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clampedDecr(s.pathModeCount, m)
}

// clampedDecr decrements m[k], never letting it go below zero. Per
// spec.md §4.5 this is defensive: correct reactor discipline never
// triggers the clamp.
func clampedDecr[K comparable](m map[K]int, k K) {
	if m[k] > 0 {
		m[k]--
	}
}

func (s *Stats) LocationCount(k types.LocationKind) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locationCount[k]
}

func (s *Stats) SegmentCount(m types.TransportMode) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.segmentCount[m]
}

func (s *Stats) PathModeCount(m types.PathMode) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pathModeCount[m]
}

func (s *Stats) TotalSegments() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalSegments
}

// ExpeditePercentage is 100 * (segments with expedited support) / total,
// or 0 when there are no segments at all.
func (s *Stats) ExpeditePercentage() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.totalSegments == 0 {
		return 0
	}
	return 100 * float64(s.pathModeCount[types.Expedited]) / float64(s.totalSegments)
}

// Snapshot is a point-in-time, lock-free copy safe to hand to a metrics
// exporter or a facade query.
type Snapshot struct {
	LocationCount      map[types.LocationKind]int
	SegmentCount       map[types.TransportMode]int
	PathModeCount      map[types.PathMode]int
	TotalSegments      int
	ExpeditePercentage float64
}

func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		LocationCount: make(map[types.LocationKind]int, len(s.locationCount)),
		SegmentCount:  make(map[types.TransportMode]int, len(s.segmentCount)),
		PathModeCount: make(map[types.PathMode]int, len(s.pathModeCount)),
		TotalSegments: s.totalSegments,
	}
	for k, v := range s.locationCount {
		snap.LocationCount[k] = v
	}
	for k, v := range s.segmentCount {
		snap.SegmentCount[k] = v
	}
	for k, v := range s.pathModeCount {
		snap.PathModeCount[k] = v
	}
	if snap.TotalSegments > 0 {
		snap.ExpeditePercentage = 100 * float64(snap.PathModeCount[types.Expedited]) / float64(snap.TotalSegments)
	}
	return snap
}
