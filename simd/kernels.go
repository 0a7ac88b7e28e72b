package simd

import (
	"fmt"
	"math"
)

var (
	lengthImpl       = lengthGeneric
	bearingsImpl     = bearingsGeneric
	destinationsImpl = destinationsGeneric
)

// Length returns the length in meters of the polyline whose vertices are
// (lons[i], lats[i]) on WGS84. Polylines with fewer than two vertices have
// length 0.
//
// It returns *ErrLengthMismatch if the slices differ in length.
func Length(lons, lats []float32) (float32, error) {
	if err := checkLengths(lons, lats); err != nil {
		return 0, err
	}
	return lengthImpl(lons, lats), nil
}

// Bearings writes the bearing (degrees in [0, 360)) of every segment of the
// polyline to out, which must hold at least len(lons)-1 values. The
// bearings use the deg3 atan2, good to about 0.6°.
//
// It returns *ErrLengthMismatch if lons and lats differ in length and
// ErrShortOutput if out is too small.
func Bearings(lons, lats, out []float32) error {
	if err := checkLengths(lons, lats); err != nil {
		return err
	}
	if len(lons) < 2 {
		return nil
	}
	segments := len(lons) - 1
	if len(out) < segments {
		return fmt.Errorf("%w: need %d, got %d", ErrShortOutput, segments, len(out))
	}
	bearingsImpl(lons, lats, out[:segments])
	return nil
}

// Destinations moves every vertex (lons[i], lats[i]) distance meters along
// bearing (degrees) and writes the results to outLons and outLats, which
// must each hold at least len(lons) values. Each vertex uses the scaling
// coefficients of its own latitude.
//
// It returns *ErrLengthMismatch if lons and lats differ in length and
// ErrShortOutput if either output is too small.
func Destinations(lons, lats []float32, bearing, distance float32, outLons, outLats []float32) error {
	if err := checkLengths(lons, lats); err != nil {
		return err
	}
	n := len(lons)
	if len(outLons) < n || len(outLats) < n {
		return fmt.Errorf("%w: need %d, got %d and %d", ErrShortOutput, n, len(outLons), len(outLats))
	}
	sin, cos := math.Sincos(float64(bearing) * toRadians)
	destinationsImpl(lons, lats, float32(sin), float32(cos), distance, outLons[:n], outLats[:n])
	return nil
}

func lengthLanes(lons, lats []float32) float32 {
	n := len(lons)
	if n < 2 {
		return 0
	}
	pairs := n - 1
	batches := pairs / Lanes

	var total float32
	for b := 0; b < batches; b++ {
		// the destinations of the last full batch end at pairs+1 == n
		i := b * Lanes
		d := distancex4(load(lons, i), load(lats, i), load(lons, i+1), load(lats, i+1))
		total += d.reduceAdd()
	}

	if rem := pairs % Lanes; rem > 0 {
		i := batches * Lanes
		d := distancex4(
			loadOrZero(lons, i), loadOrZero(lats, i),
			loadOrZero(lons, i+1), loadOrZero(lats, i+1),
		)
		total += lanesBelow(rem).blend(d, splat(0)).reduceAdd()
	}
	return total
}

func lengthGeneric(lons, lats []float32) float32 {
	var total float32
	for i := 1; i < len(lons); i++ {
		total += distancex1(lons[i-1], lats[i-1], lons[i], lats[i])
	}
	return total
}

// bearingsLanes expects len(out) == len(lons)-1.
func bearingsLanes(lons, lats, out []float32) {
	pairs := len(out)
	batches := pairs / Lanes
	for b := 0; b < batches; b++ {
		i := b * Lanes
		bearingx4(load(lons, i), load(lats, i), load(lons, i+1), load(lats, i+1)).store(out, i)
	}
	if pairs%Lanes > 0 {
		i := batches * Lanes
		// store stops at len(out), so the padding lanes are dropped
		bearingx4(
			loadOrZero(lons, i), loadOrZero(lats, i),
			loadOrZero(lons, i+1), loadOrZero(lats, i+1),
		).store(out, i)
	}
}

func bearingsGeneric(lons, lats, out []float32) {
	for i := range out {
		out[i] = bearingx1(lons[i], lats[i], lons[i+1], lats[i+1])
	}
}

// destinationsLanes expects all four slices to have the same length.
func destinationsLanes(lons, lats []float32, sin, cos, distance float32, outLons, outLats []float32) {
	n := len(lons)
	i := 0
	for ; i+Lanes <= n; i += Lanes {
		x, y := destinationx4(load(lons, i), load(lats, i), sin, cos, distance)
		x.store(outLons, i)
		y.store(outLats, i)
	}
	if i < n {
		x, y := destinationx4(loadOrZero(lons, i), loadOrZero(lats, i), sin, cos, distance)
		x.store(outLons, i)
		y.store(outLats, i)
	}
}

func destinationsGeneric(lons, lats []float32, sin, cos, distance float32, outLons, outLats []float32) {
	for i := range lons {
		outLons[i], outLats[i] = destinationx1(lons[i], lats[i], sin, cos, distance)
	}
}
