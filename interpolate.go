package cheapruler

import (
	"iter"
	"math"
)

// PointAtRatioBetween interpolates linearly in coordinate space:
// start + ratio*(end-start). This is not a geodesic interpolation and is
// only good over short distances.
func (r *Ruler[T]) PointAtRatioBetween(start, end Point[T], ratio T) Point[T] {
	return pointAtRatio(start, end, ratio)
}

func pointAtRatio[T Float](start, end Point[T], ratio T) Point[T] {
	return Point[T]{
		Lon: start.Lon + (end.Lon-start.Lon)*ratio,
		Lat: start.Lat + (end.Lat-start.Lat)*ratio,
	}
}

// PointAtDistanceBetween returns the point distance meters from start in
// the direction of end.
func (r *Ruler[T]) PointAtDistanceBetween(start, end Point[T], distance T) Point[T] {
	return r.Destination(start, r.Bearing(start, end), distance)
}

// PointsAlongLine returns the points between start and end spaced at most
// maxDistance meters apart. With includeEnds the first point is exactly
// start and the last exactly end; otherwise neither is produced.
//
// When start and end coincide the sequence is empty, or holds just end
// with includeEnds. A maxDistance that is not a positive number yields
// only the ends, if requested.
//
// The returned interpolator is a single cursor: it cannot be restarted.
func (r *Ruler[T]) PointsAlongLine(start, end Point[T], maxDistance T, includeEnds bool) *LineInterpolator[T] {
	li := &LineInterpolator[T]{
		start:       start,
		end:         end,
		includeLast: includeEnds,
	}

	d := float64(r.Distance(start, end))
	step := float64(maxDistance) / d
	switch {
	case d == 0 || math.IsNaN(d):
		li.next = 1
		li.step = 1
	case !(step > 0) || math.IsInf(step, 0):
		// start only, then end
		li.step = 1
		if !includeEnds {
			li.next = 1
		}
	default:
		li.step = step
		if !includeEnds {
			li.next = 1
		}
	}
	return li
}

// LineInterpolator walks the points produced by Ruler.PointsAlongLine.
type LineInterpolator[T Float] struct {
	start, end  Point[T]
	step        float64
	next        int // index of the next interior ratio
	includeLast bool
}

// Next returns the next point, or false when the line is exhausted.
func (li *LineInterpolator[T]) Next() (Point[T], bool) {
	// ratio is k*step rather than a running sum so it never stalls on
	// float32 rounding
	if ratio := float64(li.next) * li.step; ratio < 1 {
		li.next++
		return pointAtRatio(li.start, li.end, T(ratio)), true
	}
	if li.includeLast {
		li.includeLast = false
		return li.end, true
	}
	return Point[T]{}, false
}

// All drains the interpolator as an iterator. Points already taken with
// Next are not repeated.
func (li *LineInterpolator[T]) All() iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		for p, ok := li.Next(); ok; p, ok = li.Next() {
			if !yield(p) {
				return
			}
		}
	}
}
