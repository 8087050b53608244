package network

import (
	"testing"

	"github.com/jwmdev/shipsim/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentNewIsIdempotentByName(t *testing.T) {
	n := New()
	a := n.SegmentNew("s1", types.Truck)
	b := n.SegmentNew("s1", types.Boat)
	assert.Same(t, a, b)
	assert.Equal(t, types.Truck, b.TransportMode())
}

func TestLocationNewIsIdempotentByName(t *testing.T) {
	n := New()
	a := n.LocationNew("l1", types.Port)
	b := n.LocationNew("l1", types.Customer)
	assert.Same(t, a, b)
	assert.Equal(t, types.Port, b.Kind())
}

func TestSegmentDefaults(t *testing.T) {
	n := New()
	s := n.SegmentNew("s1", types.Truck)
	assert.Equal(t, 1.0, s.Length().Float64())
	assert.Equal(t, 1.0, s.Difficulty().Float64())
	assert.True(t, s.HasMode(types.Unexpedited))
	assert.False(t, s.HasMode(types.Expedited))
	assert.Equal(t, 10, s.Capacity().Int())
}

func TestSourceBackLinkInvariant(t *testing.T) {
	n := New()
	l1 := n.LocationNew("l1", types.Port)
	s := n.SegmentNew("s1", types.Truck)

	require.NoError(t, n.SetSegmentSource("s1", "l1"))
	assert.Same(t, l1, s.Source())
	require.Len(t, l1.Segments(), 1)
	assert.Same(t, s, l1.Segments()[0])

	// idempotent re-assignment is a no-op
	require.NoError(t, n.SetSegmentSource("s1", "l1"))
	assert.Len(t, l1.Segments(), 1)
}

func TestSettingSourceMovesTailOfNewLocation(t *testing.T) {
	n := New()
	n.LocationNew("l1", types.Port)
	n.LocationNew("l2", types.Port)
	n.SegmentNew("other", types.Truck)
	require.NoError(t, n.SetSegmentSource("other", "l2"))
	s := n.SegmentNew("s1", types.Truck)
	require.NoError(t, n.SetSegmentSource("s1", "l1"))

	require.NoError(t, n.SetSegmentSource("s1", "l2"))
	l1, _ := n.Location("l1")
	l2, _ := n.Location("l2")
	assert.Empty(t, l1.Segments())
	require.Len(t, l2.Segments(), 2)
	assert.Same(t, s, l2.Segments()[1]) // appended at tail
}

func TestTypeCompatibilityRejectsMismatchedTerminal(t *testing.T) {
	n := New()
	n.LocationNew("boatterm", types.BoatTerminal)
	n.SegmentNew("plane-seg", types.Plane)
	err := n.SetSegmentSource("plane-seg", "boatterm")
	require.Error(t, err)
	seg, _ := n.Segment("plane-seg")
	assert.Nil(t, seg.Source())
}

func TestTerminalAcceptsMatchingMode(t *testing.T) {
	n := New()
	n.LocationNew("truckterm", types.TruckTerminal)
	n.SegmentNew("truck-seg", types.Truck)
	require.NoError(t, n.SetSegmentSource("truck-seg", "truckterm"))
}

func TestReturnSegmentSymmetry(t *testing.T) {
	n := New()
	a := n.SegmentNew("a", types.Truck)
	b := n.SegmentNew("b", types.Truck)
	require.NoError(t, n.SetSegmentReturn("a", "b"))
	assert.Same(t, b, a.ReturnSegment())
	assert.Same(t, a, b.ReturnSegment())
}

func TestReassigningReturnSegmentBreaksOldPairing(t *testing.T) {
	n := New()
	a := n.SegmentNew("a", types.Truck)
	b := n.SegmentNew("b", types.Truck)
	c := n.SegmentNew("c", types.Truck)
	require.NoError(t, n.SetSegmentReturn("a", "b"))
	require.NoError(t, n.SetSegmentReturn("a", "c"))
	assert.Nil(t, b.ReturnSegment())
	assert.Same(t, c, a.ReturnSegment())
	assert.Same(t, a, c.ReturnSegment())
}

func TestClearingReturnSegmentLeavesBothSidesEmpty(t *testing.T) {
	n := New()
	n.SegmentNew("a", types.Truck)
	n.SegmentNew("b", types.Truck)
	require.NoError(t, n.SetSegmentReturn("a", "b"))
	require.NoError(t, n.SetSegmentReturn("a", ""))
	a, _ := n.Segment("a")
	b, _ := n.Segment("b")
	assert.Nil(t, a.ReturnSegment())
	assert.Nil(t, b.ReturnSegment())
}

func TestReturnSegmentRejectsModeMismatch(t *testing.T) {
	n := New()
	n.SegmentNew("truck1", types.Truck)
	n.SegmentNew("boat1", types.Boat)
	err := n.SetSegmentReturn("truck1", "boat1")
	require.Error(t, err)
}

func TestRoutableRequiresBothEndsConnected(t *testing.T) {
	n := New()
	n.LocationNew("l1", types.Port)
	n.LocationNew("l2", types.Port)
	a := n.SegmentNew("a", types.Truck)
	b := n.SegmentNew("b", types.Truck)
	assert.False(t, a.Routable())

	require.NoError(t, n.SetSegmentSource("a", "l1"))
	assert.False(t, a.Routable()) // no return segment yet

	require.NoError(t, n.SetSegmentReturn("a", "b"))
	assert.False(t, a.Routable()) // return segment b has no source yet

	require.NoError(t, n.SetSegmentSource("b", "l2"))
	assert.True(t, a.Routable())
}

func TestSegmentDelCascadesSourceAndReturn(t *testing.T) {
	n := New()
	n.LocationNew("l1", types.Port)
	n.SegmentNew("a", types.Truck)
	n.SegmentNew("b", types.Truck)
	require.NoError(t, n.SetSegmentSource("a", "l1"))
	require.NoError(t, n.SetSegmentReturn("a", "b"))

	removed := n.SegmentDel("a")
	require.NotNil(t, removed)
	l1, _ := n.Location("l1")
	assert.Empty(t, l1.Segments())
	b, _ := n.Segment("b")
	assert.Nil(t, b.ReturnSegment())
}

func TestLocationDelClearsOutgoingSegmentSources(t *testing.T) {
	n := New()
	n.LocationNew("l1", types.Port)
	a := n.SegmentNew("a", types.Truck)
	require.NoError(t, n.SetSegmentSource("a", "l1"))

	n.LocationDel("l1")
	assert.Nil(t, a.Source())
}

func TestDeleteOfUnknownNameIsNoOp(t *testing.T) {
	n := New()
	assert.Nil(t, n.SegmentDel("nope"))
	assert.Nil(t, n.LocationDel("nope"))
}

func TestStatsTrackLocationAndSegmentCounts(t *testing.T) {
	n := New()
	n.LocationNew("l1", types.Port)
	n.LocationNew("l2", types.Customer)
	n.SegmentNew("s1", types.Truck)
	n.SegmentNew("s2", types.Boat)

	st := n.Stats()
	assert.Equal(t, 1, st.LocationCount(types.Port))
	assert.Equal(t, 1, st.LocationCount(types.Customer))
	assert.Equal(t, 1, st.SegmentCount(types.Truck))
	assert.Equal(t, 1, st.SegmentCount(types.Boat))
	assert.Equal(t, 2, st.TotalSegments())
}

func TestStatsTrackExpeditePercentage(t *testing.T) {
	n := New()
	s1 := n.SegmentNew("s1", types.Truck)
	n.SegmentNew("s2", types.Truck)
	assert.NoError(t, n.SetSegmentMode(s1.Name(), types.Expedited, true))

	st := n.Stats()
	assert.InDelta(t, 50.0, st.ExpeditePercentage(), 1e-9)
}

func TestStatsDecrementOnDelete(t *testing.T) {
	n := New()
	n.LocationNew("l1", types.Port)
	n.SegmentNew("s1", types.Truck)
	n.LocationDel("l1")
	n.SegmentDel("s1")

	st := n.Stats()
	assert.Equal(t, 0, st.LocationCount(types.Port))
	assert.Equal(t, 0, st.SegmentCount(types.Truck))
	assert.Equal(t, 0, st.TotalSegments())
	assert.Equal(t, 0, st.PathModeCount(types.Unexpedited))
}

func TestOwnsRejectsCrossNetworkLocation(t *testing.T) {
	n1 := New()
	n2 := New()
	l1 := n1.LocationNew("l1", types.Port)
	n2.LocationNew("l1", types.Port)
	assert.True(t, n1.Owns(l1))
	assert.False(t, n2.Owns(l1))
}
