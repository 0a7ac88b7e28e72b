package cheapruler

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidwall/cheapruler/internal/geodesic"
)

const relativeError = 0.01

var (
	empireState = Point[float64]{Lon: -73.9857, Lat: 40.7484}
	flatiron    = Point[float64]{Lon: -73.9897, Lat: 40.7411}
)

var arctangents = []Arctangent{ArctangentExact, ArctangentDeg3, ArctangentDeg5}

// exactDistance measures with the exact WGS84 solution.
func exactDistance(a, b Point[float64]) float64 {
	var s12 float64
	geodesic.WGS84.Inverse(a.Lat, a.Lon, b.Lat, b.Lon, &s12, nil, nil)
	return s12
}

func exactBearing(a, b Point[float64]) float64 {
	var azi1 float64
	geodesic.WGS84.Inverse(a.Lat, a.Lon, b.Lat, b.Lon, nil, &azi1, nil)
	return math.Mod(azi1+360, 360)
}

func exactDestination(origin Point[float64], bearing, distance float64) Point[float64] {
	var p Point[float64]
	geodesic.WGS84.Direct(origin.Lat, origin.Lon, bearing, distance, &p.Lat, &p.Lon, nil)
	return p
}

// angleDiff returns the absolute difference between two bearings (degrees).
func angleDiff(a, b float64) float64 {
	return math.Abs(math.Mod(a-b+540, 360) - 180)
}

func newRand(t *testing.T) *rand.Rand {
	seed := time.Now().UnixNano()
	t.Logf("seed %d", seed)
	return rand.New(rand.NewSource(seed))
}

func TestNew(t *testing.T) {
	r := New[float64](WGS84)
	assert.Equal(t, ArctangentExact, r.Arctangent())
	assert.Equal(t, WGS84, r.Ellipsoid())

	r = New[float64](Mars, WithArctangent(ArctangentDeg5))
	assert.Equal(t, ArctangentDeg5, r.Arctangent())
	assert.Equal(t, Mars, r.Ellipsoid())
}

func TestDistance(t *testing.T) {
	want := exactDistance(empireState, flatiron)
	require.InDelta(t, 878.2, want, 0.1)

	got := New[float64](WGS84).Distance(empireState, flatiron)
	assert.InEpsilon(t, want, got, relativeError)

	got32 := New[float32](WGS84).Distance(
		Point[float32]{Lon: -73.9857, Lat: 40.7484},
		Point[float32]{Lon: -73.9897, Lat: 40.7411},
	)
	assert.InEpsilon(t, want, float64(got32), relativeError)

	assert.Zero(t, New[float64](WGS84).Distance(empireState, empireState))
}

func TestBearing(t *testing.T) {
	want := exactBearing(empireState, flatiron)
	require.InDelta(t, 202.6, want, 0.1)

	for _, a := range arctangents {
		t.Run(a.String(), func(t *testing.T) {
			got := New[float64](WGS84, WithArctangent(a)).Bearing(empireState, flatiron)
			assert.InEpsilon(t, want, got, relativeError)
		})
	}
}

func TestBearingRange(t *testing.T) {
	o := Point[float64]{Lon: 13.4, Lat: 52.5}
	cases := []struct {
		name string
		d    Point[float64]
		want float64
	}{
		{"North", Point[float64]{Lon: 13.4, Lat: 52.6}, 0},
		{"East", Point[float64]{Lon: 13.5, Lat: 52.5}, 90},
		{"South", Point[float64]{Lon: 13.4, Lat: 52.4}, 180},
		{"West", Point[float64]{Lon: 13.3, Lat: 52.5}, 270},
		{"Same", o, 0},
	}
	for _, a := range arctangents {
		r := New[float64](WGS84, WithArctangent(a))
		for _, tc := range cases {
			t.Run(a.String()+"/"+tc.name, func(t *testing.T) {
				got := r.Bearing(o, tc.d)
				assert.GreaterOrEqual(t, got, 0.0)
				assert.Less(t, got, 360.0)
				assert.InDelta(t, 0, angleDiff(tc.want, got), 0.6)
			})
		}
	}

	r := New[float32](WGS84)
	got := r.Bearing(Point[float32]{Lon: 0, Lat: 0}, Point[float32]{Lon: -1e-30, Lat: 1})
	assert.Less(t, got, float32(360))
}

func TestDestination(t *testing.T) {
	const distance, bearing = 100., 45.

	want := exactDestination(empireState, bearing, distance)
	got := New[float64](WGS84).Destination(empireState, bearing, distance)

	assert.Less(t, exactDistance(want, got)/distance, relativeError)
}

func TestDistanceIsPrecise(t *testing.T) {
	rng := newRand(t)
	r := New[float64](WGS84)
	for i := 0; i < 10_000; i++ {
		d := 100 + rng.Float64()*900
		b := rng.Float64() * 360
		target := exactDestination(empireState, b, d)
		assert.Less(t, math.Abs(r.Distance(empireState, target)-d)/d, relativeError)
	}
}

func TestBearingIsPrecise(t *testing.T) {
	tolerance := map[Arctangent]float64{
		ArctangentExact: 0.1,
		ArctangentDeg3:  0.7,
		ArctangentDeg5:  0.1,
	}
	rng := newRand(t)
	for _, a := range arctangents {
		t.Run(a.String(), func(t *testing.T) {
			r := New[float64](WGS84, WithArctangent(a))
			for i := 0; i < 10_000; i++ {
				d := 100 + rng.Float64()*900
				b := rng.Float64() * 360
				target := exactDestination(empireState, b, d)
				diff := angleDiff(b, r.Bearing(empireState, target))
				if diff > tolerance[a] {
					t.Fatalf("bearing %f distance %f: off by %f degrees", b, d, diff)
				}
			}
		})
	}
}

func TestDestinationIsPrecise(t *testing.T) {
	rng := newRand(t)
	r := New[float64](WGS84)
	for i := 0; i < 10_000; i++ {
		d := 100 + rng.Float64()*900
		b := rng.Float64() * 360
		want := exactDestination(empireState, b, d)
		got := r.Destination(empireState, b, d)
		assert.Less(t, exactDistance(want, got)/d, relativeError)
	}
}

func TestRoundTrip(t *testing.T) {
	rng := newRand(t)
	r := New[float64](WGS84)
	for i := 0; i < 10_000; i++ {
		d := 100 + rng.Float64()*900
		b := rng.Float64() * 360
		dest := r.Destination(empireState, b, d)
		assert.InEpsilon(t, d, r.Distance(empireState, dest), relativeError)
	}
}

func TestDestinationIsInvolutory(t *testing.T) {
	rng := newRand(t)
	r := New[float64](WGS84)
	for i := 0; i < 10_000; i++ {
		d := 100 + rng.Float64()*900
		b := rng.Float64() * 360
		dest := r.Destination(empireState, b, d)
		back := r.Destination(dest, math.Mod(b+180, 360), d)
		assert.Less(t, exactDistance(empireState, back)/d, relativeError)
	}
}

func TestDistanceIsNearlySymmetric(t *testing.T) {
	rng := newRand(t)
	r := New[float64](WGS84)
	for i := 0; i < 10_000; i++ {
		d := 100 + rng.Float64()*900
		b := rng.Float64() * 360
		dest := r.Destination(empireState, b, d)
		diff := math.Abs(r.Distance(empireState, dest) - r.Distance(dest, empireState))
		assert.Less(t, diff/d, relativeError)
	}
}

func TestNonStandardModel(t *testing.T) {
	olympusMons := Point[float64]{Lon: -226.2, Lat: 18.65}
	karzokCrater := Point[float64]{Lon: -226.192, Lat: 18.2292}

	const f = (3396200. - 3376200.) / 3396200.
	mars := geodesic.NewEllipsoid(3396200, f)
	var want float64
	mars.Inverse(olympusMons.Lat, olympusMons.Lon, karzokCrater.Lat, karzokCrater.Lon, &want, nil, nil)

	got := New[float64](Mars).Distance(olympusMons, karzokCrater)
	assert.InEpsilon(t, want, got, relativeError)
}
