// Package geodesic solves the direct and inverse geodesic problems exactly
// (to well below a millimeter) on an ellipsoid of revolution.
//
// It is the yardstick the approximations in the parent module are measured
// against, so it favors accuracy over speed.
package geodesic

// WGS84 conforming ellispoid
// https://en.wikipedia.org/wiki/World_Geodetic_System
var WGS84 = NewEllipsoid(6378137, float64(1.)/298.257223563)

// Ellipsoid is an object for performing geodesic operations.
type Ellipsoid struct {
	radius     float64
	flattening float64
	spherical  bool
}

// NewEllipsoid initializes a new geodesic ellipsoid object.
//
// Param radius is the equatorial radius (meters).
// Param flattening is the flattening factor of the ellipsoid.
func NewEllipsoid(radius, flattening float64) *Ellipsoid {
	return &Ellipsoid{radius: radius, flattening: flattening}
}

// NewSpherical initializes a new geodesic ellipsoid object that uses
// simplified operations on a sphere (haversine and great-circle formulas).
func NewSpherical(radius float64) *Ellipsoid {
	e := NewEllipsoid(radius, 0)
	e.spherical = true
	return e
}

// Radius of the Ellipsoid
func (e *Ellipsoid) Radius() float64 {
	return e.radius
}

// Flattening of the Ellipsoid
func (e *Ellipsoid) Flattening() float64 {
	return e.flattening
}

// Spherical returns true if the ellipsoid was initialized using NewSpherical.
func (e *Ellipsoid) Spherical() bool {
	return e.spherical
}

// Inverse solve the inverse geodesic problem.
//
// Param lat1 is latitude of point 1 (degrees).
// Param lon1 is longitude of point 1 (degrees).
// Param lat2 is latitude of point 2 (degrees).
// Param lon2 is longitude of point 2 (degrees).
// Out param s12 is a pointer to the distance from point 1 to point 2 (meters).
// Out param azi1 is a pointer to the azimuth at point 1 (degrees).
// Out param azi2 is a pointer to the (forward) azimuth at point 2 (degrees).
//
// The values of azi1 and azi2 returned are in the range [-180,+180].
// Any of the out params may be nil.
//
// Nearly antipodal points may not converge; the last iterate is returned.
func (e *Ellipsoid) Inverse(
	lat1, lon1, lat2, lon2 float64,
	s12, azi1, azi2 *float64,
) {
	var s, a1, a2 float64
	if e.spherical {
		s, a1, a2 = sphericalInverse(e.radius, lat1, lon1, lat2, lon2)
	} else {
		s, a1, a2 = vincentyInverse(e.radius, e.flattening, lat1, lon1, lat2, lon2)
	}
	if s12 != nil {
		*s12 = s
	}
	if azi1 != nil {
		*azi1 = a1
	}
	if azi2 != nil {
		*azi2 = a2
	}
}

// Direct solves the direct geodesic problem.
//
// Param lat1 is the latitude of point 1 (degrees).
// Param lon1 is the longitude of point 1 (degrees).
// Param azi1 is the azimuth at point 1 (degrees).
// Param s12 is the distance from point 1 to point 2 (meters). negative is ok.
// Out param lat2 is a pointer to the latitude of point 2 (degrees).
// Out param lon2 is a pointer to the longitude of point 2 (degrees).
// Out param azi2 is a pointer to the (forward) azimuth at point 2 (degrees).
//
// The values of lon2 and azi2 returned are in the range [-180,+180].
// Any of the out params may be nil.
func (e *Ellipsoid) Direct(
	lat1, lon1, azi1, s12 float64,
	lat2, lon2, azi2 *float64,
) {
	var la, lo, az float64
	if e.spherical {
		la, lo, az = sphericalDirect(e.radius, lat1, lon1, azi1, s12)
	} else {
		la, lo, az = vincentyDirect(e.radius, e.flattening, lat1, lon1, azi1, s12)
	}
	if lat2 != nil {
		*lat2 = la
	}
	if lon2 != nil {
		*lon2 = lo
	}
	if azi2 != nil {
		*azi2 = az
	}
}

// Polyline accumulates the length of a sequence of vertices.
// This must be initialized from Ellipsoid.PolylineInit before use.
type Polyline struct {
	e        *Ellipsoid
	started  bool
	lat, lon float64
	length   float64
}

// PolylineInit initializes an empty polyline.
func (e *Ellipsoid) PolylineInit() Polyline {
	return Polyline{e: e}
}

// AddPoint adds a vertex to the polyline.
//
// Param lat is the latitude of the point (degrees).
// Param lon is the longitude of the point (degrees).
func (p *Polyline) AddPoint(lat, lon float64) {
	if p.started {
		var s12 float64
		p.e.Inverse(p.lat, p.lon, lat, lon, &s12, nil, nil)
		p.length += s12
	}
	p.lat, p.lon = lat, lon
	p.started = true
}

// Length returns the length of the polyline so far (meters).
func (p *Polyline) Length() float64 {
	return p.length
}
