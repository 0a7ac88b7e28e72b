package cheapruler

import "math"

const radians = math.Pi / 180
const degrees = 180 / math.Pi

// WGS84 conforming ellispoid
// https://en.wikipedia.org/wiki/World_Geodetic_System
var WGS84 = EllipsoidFromFlattening(6378137, float64(1.)/298.257223563)

// Mars is the IAU 2000 reference ellipsoid for Mars.
var Mars = NewEllipsoid(3396200, 3376200)

// Ellipsoid holds the two parameters the ruler needs: the equatorial
// radius and the first eccentricity squared. The zero value is not useful;
// use NewEllipsoid, EllipsoidFromFlattening, or one of the presets.
type Ellipsoid struct {
	radius float64
	e2     float64
}

// NewEllipsoid initializes an ellipsoid from its semi-axes.
//
// Param major is the equatorial radius (meters).
// Param minor is the polar radius (meters), with 0 < minor <= major.
func NewEllipsoid(major, minor float64) Ellipsoid {
	r := minor / major
	return Ellipsoid{radius: major, e2: 1 - r*r}
}

// EllipsoidFromFlattening initializes an ellipsoid from its equatorial
// radius (meters) and flattening, f = (a-b)/a.
func EllipsoidFromFlattening(radius, flattening float64) Ellipsoid {
	return Ellipsoid{radius: radius, e2: flattening * (2 - flattening)}
}

// Radius of the Ellipsoid
func (e Ellipsoid) Radius() float64 {
	return e.radius
}

// E2 returns the first eccentricity squared, 1 - (b/a)².
func (e Ellipsoid) E2() float64 {
	return e.e2
}

// Coefficients returns the local scaling factors at latitude lat (degrees):
// kx is meters per degree of longitude and ky meters per degree of
// latitude. They are only valid close to lat.
//
// kx goes to zero at the poles.
func (e Ellipsoid) Coefficients(lat float64) (kx, ky float64) {
	c := math.Cos(lat * radians)
	w := 1 / (1 - e.e2*(1-c*c))
	k := math.Sqrt(w) * e.radius * radians
	return k * c, k * w * (1 - e.e2)
}
