package sim

import "github.com/jwmdev/shipsim/internal/network"

// segmentRuntime holds the per-segment shipment counters spec.md §4.3
// describes (in-transit count against capacity, shipments received,
// shipments refused). These live alongside the network rather than on
// network.Segment itself: the network package models structural
// topology, and nothing outside internal/sim needs a segment's
// traffic counters.
type segmentRuntime struct {
	inTransit         int
	shipmentsReceived int
	shipmentsRefused  int
}

func (m *Manager) runtimeFor(seg *network.Segment) *segmentRuntime {
	rt, ok := m.segmentRuntimes[seg.Name()]
	if !ok {
		rt = &segmentRuntime{}
		m.segmentRuntimes[seg.Name()] = rt
	}
	return rt
}

// SegmentShipmentsReceived is the read-only "Shipments Received" counter
// for segmentName in the attribute facade (spec.md §6).
func (m *Manager) SegmentShipmentsReceived(segmentName string) int {
	if rt, ok := m.segmentRuntimes[segmentName]; ok {
		return rt.shipmentsReceived
	}
	return 0
}

// SegmentShipmentsRefused is the read-only "Shipments Refused" counter.
func (m *Manager) SegmentShipmentsRefused(segmentName string) int {
	if rt, ok := m.segmentRuntimes[segmentName]; ok {
		return rt.shipmentsRefused
	}
	return 0
}
