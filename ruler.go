// Package cheapruler provides fast approximations of common geodesic
// measurements for city-scale distances.
//
// Around a reference latitude a small patch of the ellipsoid is treated as a
// plane whose axes are scaled by the local meters-per-degree factors (see
// Ellipsoid.Coefficients). Within a few hundred kilometers the error stays
// well under 1%, at a fraction of the cost of an exact geodesic solution.
//
// The reference latitude is always the origin's. Distance is therefore not
// exactly symmetric: Distance(a, b) and Distance(b, a) differ slightly when
// the two points are at different latitudes.
//
// This is based on Mapbox's Cheap Ruler
// https://blog.mapbox.com/fast-geodesic-approximations-with-cheap-ruler-106f229ad016
package cheapruler

import "math"

// Float is the set of floating point types a Ruler can measure with.
type Float interface {
	~float32 | ~float64
}

// Point is a position in decimal degrees. Values are not range checked.
type Point[T Float] struct {
	Lon, Lat T
}

// Ruler measures distances, bearings and destinations on an ellipsoid.
// It is immutable and safe for concurrent use.
type Ruler[T Float] struct {
	e          Ellipsoid
	arctangent Arctangent
	atan2      func(y, x T) T
}

// New returns a Ruler for ellipsoid e.
func New[T Float](e Ellipsoid, opts ...Option) *Ruler[T] {
	o := options{arctangent: ArctangentExact}
	for _, opt := range opts {
		opt(&o)
	}
	return &Ruler[T]{
		e:          e,
		arctangent: o.arctangent,
		atan2:      atan2Func[T](o.arctangent),
	}
}

// Ellipsoid returns the ellipsoid the ruler was built for.
func (r *Ruler[T]) Ellipsoid() Ellipsoid {
	return r.e
}

// Arctangent returns the arctangent used by Bearing.
func (r *Ruler[T]) Arctangent() Arctangent {
	return r.arctangent
}

func (r *Ruler[T]) delta(origin, destination Point[T]) (dx, dy T) {
	kx, ky := r.e.Coefficients(float64(origin.Lat))
	dx = (destination.Lon - origin.Lon) * T(kx)
	dy = (destination.Lat - origin.Lat) * T(ky)
	return dx, dy
}

// Distance returns the distance between two points (meters).
func (r *Ruler[T]) Distance(origin, destination Point[T]) T {
	dx, dy := r.delta(origin, destination)
	return T(math.Sqrt(float64(dx*dx + dy*dy)))
}

// Bearing returns the bearing from origin to destination in degrees
// clockwise from north, in the range [0, 360).
func (r *Ruler[T]) Bearing(origin, destination Point[T]) T {
	dx, dy := r.delta(origin, destination)
	return normalizeBearing[T](float64(r.atan2(dx, dy)) * degrees)
}

// Destination returns the point reached by traveling distance meters from
// origin along bearing (degrees).
func (r *Ruler[T]) Destination(origin Point[T], bearing, distance T) Point[T] {
	kx, ky := r.e.Coefficients(float64(origin.Lat))
	sin, cos := math.Sincos(float64(bearing) * radians)
	d := float64(distance)
	return Point[T]{
		Lon: origin.Lon + T(d*sin/kx),
		Lat: origin.Lat + T(d*cos/ky),
	}
}

func normalizeBearing[T Float](deg float64) T {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	b := T(deg)
	if b >= 360 {
		// a tiny negative angle rounds up to 360
		b = 0
	}
	return b
}
