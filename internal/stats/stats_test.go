package stats

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jwmdev/shipsim/internal/types"
)

func TestIncrAndDecrTrackCounts(t *testing.T) {
	s := New()
	s.IncrLocation(types.Port)
	s.IncrLocation(types.Port)
	s.IncrLocation(types.Customer)
	require.Equal(t, 2, s.LocationCount(types.Port))
	require.Equal(t, 1, s.LocationCount(types.Customer))

	s.DecrLocation(types.Port)
	require.Equal(t, 1, s.LocationCount(types.Port))
}

func TestDecrClampsAtZero(t *testing.T) {
	s := New()
	s.DecrLocation(types.Port)
	require.Equal(t, 0, s.LocationCount(types.Port))

	s.DecrSegment(types.Truck)
	require.Equal(t, 0, s.SegmentCount(types.Truck))
	require.Equal(t, 0, s.TotalSegments())
}

func TestSegmentCountsTrackTotal(t *testing.T) {
	s := New()
	s.IncrSegment(types.Truck)
	s.IncrSegment(types.Truck)
	s.IncrSegment(types.Boat)
	require.Equal(t, 2, s.SegmentCount(types.Truck))
	require.Equal(t, 1, s.SegmentCount(types.Boat))
	require.Equal(t, 3, s.TotalSegments())

	s.DecrSegment(types.Truck)
	require.Equal(t, 1, s.SegmentCount(types.Truck))
	require.Equal(t, 2, s.TotalSegments())
}

func TestExpeditePercentageIsZeroWithNoSegments(t *testing.T) {
	s := New()
	require.Equal(t, 0.0, s.ExpeditePercentage())
}

func TestExpeditePercentageReflectsPathModeCounts(t *testing.T) {
	s := New()
	s.IncrSegment(types.Truck)
	s.IncrSegment(types.Truck)
	s.IncrPathMode(types.Expedited)

	require.InDelta(t, 50.0, s.ExpeditePercentage(), 1e-9)
}

func TestSnapshotIsAnIndependentCopy(t *testing.T) {
	s := New()
	s.IncrLocation(types.Port)
	s.IncrSegment(types.Truck)
	s.IncrPathMode(types.Unexpedited)

	snap := s.Snapshot()
	require.Equal(t, 1, snap.LocationCount[types.Port])
	require.Equal(t, 1, snap.SegmentCount[types.Truck])
	require.Equal(t, 1, snap.PathModeCount[types.Unexpedited])
	require.Equal(t, 1, snap.TotalSegments)
	require.Equal(t, 0.0, snap.ExpeditePercentage)

	s.IncrLocation(types.Port)
	require.Equal(t, 1, snap.LocationCount[types.Port], "snapshot must not mutate when source changes")
}
