// Spherical routines in Go
//
// Copyright (c) Joshua Baker (2021) and licensed under the MIT License.
//
// After Chris Veness' latlon-spherical, (c) 2002-2019, MIT Licence
// (www.movable-type.co.uk/scripts/latlong.html).

package geodesic

import "math"

const radians = math.Pi / 180
const degrees = 180 / math.Pi

func sphericalInverse(radius, lat1, lon1, lat2, lon2 float64) (s12, azi1, azi2 float64) {
	s12 = haversine(radius, lat1, lon1, lat2, lon2)
	azi1 = initialBearing(lat1, lon1, lat2, lon2)
	azi2 = wrap180(initialBearing(lat2, lon2, lat1, lon1) + 180)
	return s12, azi1, azi2
}

func sphericalDirect(radius, lat1, lon1, azi1, s12 float64) (lat2, lon2, azi2 float64) {
	// sinφ2 = sinφ1⋅cosδ + cosφ1⋅sinδ⋅cosθ
	// tanΔλ = sinθ⋅sinδ⋅cosφ1 / cosδ−sinφ1⋅sinφ2
	δ := s12 / radius
	θ := azi1 * radians
	φ1 := lat1 * radians
	λ1 := lon1 * radians
	φ2 := math.Asin(math.Sin(φ1)*math.Cos(δ) +
		math.Cos(φ1)*math.Sin(δ)*math.Cos(θ))
	λ2 := λ1 + math.Atan2(math.Sin(θ)*math.Sin(δ)*math.Cos(φ1),
		math.Cos(δ)-math.Sin(φ1)*math.Sin(φ2))
	lat2 = φ2 * degrees
	lon2 = wrap180(λ2 * degrees)
	azi2 = wrap180(initialBearing(lat2, lon2, lat1, lon1) + 180)
	return lat2, lon2, azi2
}

func haversine(radius, lat1, lon1, lat2, lon2 float64) float64 {
	φ1 := lat1 * radians
	φ2 := lat2 * radians
	sΔφ2 := math.Sin((φ2 - φ1) / 2)
	sΔλ2 := math.Sin((lon2 - lon1) * radians / 2)
	haver := sΔφ2*sΔφ2 + math.Cos(φ1)*math.Cos(φ2)*sΔλ2*sΔλ2
	return radius * 2 * math.Asin(math.Sqrt(haver))
}

func initialBearing(lat1, lon1, lat2, lon2 float64) float64 {
	// tanθ = sinΔλ⋅cosφ2 / cosφ1⋅sinφ2 − sinφ1⋅cosφ2⋅cosΔλ
	φ1 := lat1 * radians
	φ2 := lat2 * radians
	Δλ := (lon2 - lon1) * radians
	y := math.Sin(Δλ) * math.Cos(φ2)
	x := math.Cos(φ1)*math.Sin(φ2) - math.Sin(φ1)*math.Cos(φ2)*math.Cos(Δλ)
	return wrap180(math.Atan2(y, x) * degrees)
}

func wrap180(degs float64) float64 {
	if degs < -180 || degs > 180 {
		degs = math.Mod(degs, 360)
		if degs < -180 {
			degs += 360
		} else if degs > 180 {
			degs -= 360
		}
	}
	return degs
}
