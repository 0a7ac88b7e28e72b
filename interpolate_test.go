package cheapruler

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointAtRatioBetween(t *testing.T) {
	r := New[float64](WGS84)
	assert.Equal(t, empireState, r.PointAtRatioBetween(empireState, flatiron, 0))
	end := r.PointAtRatioBetween(empireState, flatiron, 1)
	assert.InDelta(t, flatiron.Lon, end.Lon, 1e-12)
	assert.InDelta(t, flatiron.Lat, end.Lat, 1e-12)

	got := r.PointAtRatioBetween(empireState, flatiron, 0.15)
	assert.InDelta(t, -73.9863, got.Lon, 1e-9)
	assert.InDelta(t, 40.74730500, got.Lat, 1e-9)

	// against the geodesic midpoint
	half := exactDistance(empireState, flatiron) / 2
	mid := exactDestination(empireState, exactBearing(empireState, flatiron), half)
	assert.Less(t, exactDistance(mid, r.PointAtRatioBetween(empireState, flatiron, 0.5)), 0.1)
}

func TestPointAtDistanceBetween(t *testing.T) {
	const distance = 100.
	for _, a := range arctangents {
		t.Run(a.String(), func(t *testing.T) {
			r := New[float64](WGS84, WithArctangent(a))
			want := exactDestination(empireState, exactBearing(empireState, flatiron), distance)
			got := r.PointAtDistanceBetween(empireState, flatiron, distance)
			assert.Less(t, exactDistance(want, got)/distance, relativeError)
		})
	}
}

func checkSpacing(t *testing.T, points []Point[float64], maxDistance float64) {
	t.Helper()
	for i := 1; i < len(points); i++ {
		d := exactDistance(points[i-1], points[i])
		assert.LessOrEqual(t, d, maxDistance*(1+relativeError), "segment %d", i)
	}
}

func TestPointsAlongLineWithoutEnds(t *testing.T) {
	const maxDistance = 100.
	r := New[float64](WGS84)

	points := slices.Collect(r.PointsAlongLine(empireState, flatiron, maxDistance, false).All())
	require.NotEmpty(t, points)
	assert.Len(t, points, 8) // ratios 1..8 of 100/878
	assert.NotContains(t, points, empireState)
	assert.NotContains(t, points, flatiron)
	checkSpacing(t, points, maxDistance)
}

func TestPointsAlongLineWithEnds(t *testing.T) {
	const maxDistance = 100.
	r := New[float64](WGS84)

	points := slices.Collect(r.PointsAlongLine(empireState, flatiron, maxDistance, true).All())
	require.Len(t, points, 10)
	assert.Equal(t, empireState, points[0])
	assert.Equal(t, flatiron, points[len(points)-1])
	checkSpacing(t, points, maxDistance)
}

func TestPointsAlongLineSinglePass(t *testing.T) {
	r := New[float64](WGS84)
	li := r.PointsAlongLine(empireState, flatiron, 100, true)

	first, ok := li.Next()
	require.True(t, ok)
	assert.Equal(t, empireState, first)

	rest := slices.Collect(li.All())
	assert.Len(t, rest, 9)
	assert.NotContains(t, rest, empireState)

	// drained
	assert.Empty(t, slices.Collect(li.All()))
	_, ok = li.Next()
	assert.False(t, ok)
}

func TestPointsAlongLineBreak(t *testing.T) {
	r := New[float64](WGS84)
	li := r.PointsAlongLine(empireState, flatiron, 100, true)
	for range li.All() {
		break
	}
	p, ok := li.Next()
	require.True(t, ok)
	assert.NotEqual(t, empireState, p)
}

func TestPointsAlongLineDegenerate(t *testing.T) {
	r := New[float64](WGS84)

	t.Run("ZeroDistance", func(t *testing.T) {
		assert.Empty(t, slices.Collect(r.PointsAlongLine(empireState, empireState, 100, false).All()))
		assert.Equal(t,
			[]Point[float64]{empireState},
			slices.Collect(r.PointsAlongLine(empireState, empireState, 100, true).All()))
	})
	t.Run("NonPositiveStep", func(t *testing.T) {
		for _, m := range []float64{0, -5} {
			assert.Empty(t, slices.Collect(r.PointsAlongLine(empireState, flatiron, m, false).All()))
			assert.Equal(t,
				[]Point[float64]{empireState, flatiron},
				slices.Collect(r.PointsAlongLine(empireState, flatiron, m, true).All()))
		}
	})
	t.Run("StepBeyondEnd", func(t *testing.T) {
		assert.Empty(t, slices.Collect(r.PointsAlongLine(empireState, flatiron, 5000, false).All()))
		assert.Equal(t,
			[]Point[float64]{empireState, flatiron},
			slices.Collect(r.PointsAlongLine(empireState, flatiron, 5000, true).All()))
	})
}

func TestPointsAlongLineFloat32(t *testing.T) {
	r := New[float32](WGS84)
	start := Point[float32]{Lon: -73.9857, Lat: 40.7484}
	end := Point[float32]{Lon: -73.9897, Lat: 40.7411}

	// ratios are not accumulated in float32, so the count stays exact
	var n int
	for range r.PointsAlongLine(start, end, 0.05, false).All() {
		n++
	}
	assert.InDelta(t, 878.2/0.05, n, 20)
}
