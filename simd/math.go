package simd

import "math"

// WGS84, the only ellipsoid the kernels are specialized for.
const (
	radius     = 6378137
	flattening = 1 / 298.257223563
	e2         = flattening * (2 - flattening)

	metersPerDegree = radius * math.Pi / 180
	toRadians       = math.Pi / 180
	toDegrees       = 180 / math.Pi
)

// Even polynomial for cos on [0, π/2]; max error about 0.02 at π/2 and
// below 3e-4 up to 45°.
const (
	cosA0 = 1
	cosA2 = -0.4999999
	cosA4 = 0.04166368
)

// Odd polynomial for atan on [-1, 1], max error about 0.01 rad.
const (
	atanA1 = 0.9817
	atanA3 = 0.1963
)

// cosx4 reduces x into [0, π/2] and evaluates the polynomial there.
func cosx4(x f32x4) f32x4 {
	m := x.lt(splat(0))
	x = m.blend(x.add(splat(2*math.Pi)), x)

	// cos(x) = -cos(x-π)
	m = x.gt(splat(math.Pi))
	x = m.blend(x.sub(splat(math.Pi)), x)
	sign := m.blend(splat(-1), splat(1))

	// cos(x) = -cos(π-x)
	m = x.gt(splat(math.Pi / 2))
	x = m.blend(splat(math.Pi).sub(x), x)
	sign = m.blend(sign.neg(), sign)

	x2 := x.mul(x)
	return sign.mul(splat(cosA0).add(x2.mul(splat(cosA2).add(x2.mul(splat(cosA4))))))
}

func cosx1(x float32) float32 {
	if x < 0 {
		x += 2 * math.Pi
	}
	var sign float32 = 1
	if x > math.Pi {
		x -= math.Pi
		sign = -1
	}
	if x > math.Pi/2 {
		x = math.Pi - x
		sign = -sign
	}
	x2 := x * x
	return sign * (cosA0 + x2*(cosA2+x2*cosA4))
}

// atan2x4 is the lane form of the deg3 atan2: the angle is measured from
// the diagonal π/4 (or 3π/4 when x < 0). atan2x4(0, 0) is 0.
func atan2x4(y, x f32x4) f32x4 {
	zero := splat(0)
	ay := y.abs()
	r := x.sub(ay).div(x.add(ay))

	left := x.lt(zero)
	res := left.blend(splat(3*math.Pi/4), splat(math.Pi/4))
	r = left.blend(splat(-1).div(r), r)
	res = res.add(r.mul(splat(-atanA1).add(splat(atanA3).mul(r).mul(r))))

	res = y.lt(zero).blend(res.neg(), res)
	return x.eq(zero).and(y.eq(zero)).blend(zero, res)
}

func atan2x1(y, x float32) float32 {
	if x == 0 && y == 0 {
		return 0
	}
	ay := y
	if ay < 0 {
		ay = -ay
	}
	var r, res float32
	if x < 0 {
		r = (x + ay) / (ay - x)
		res = 3 * math.Pi / 4
	} else {
		r = (x - ay) / (x + ay)
		res = math.Pi / 4
	}
	res += r * (-atanA1 + atanA3*r*r)
	if y < 0 {
		res = -res
	}
	return res
}

func coefsx4(lat f32x4) (kx, ky f32x4) {
	c := cosx4(lat.mul(splat(toRadians)))
	one := splat(1)
	w := one.div(one.sub(splat(e2).mul(one.sub(c.mul(c)))))
	k := w.sqrt().mul(splat(metersPerDegree))
	return k.mul(c), k.mul(w).mul(splat(1 - e2))
}

func coefsx1(lat float32) (kx, ky float32) {
	c := cosx1(lat * toRadians)
	w := 1 / (1 - e2*(1-c*c))
	k := float32(math.Sqrt(float64(w))) * metersPerDegree
	return k * c, k * w * (1 - e2)
}

// deltax4 returns the scaled offsets from origin to destination, using the
// coefficients at the origin latitude.
func deltax4(olon, olat, dlon, dlat f32x4) (dx, dy f32x4) {
	kx, ky := coefsx4(olat)
	return dlon.sub(olon).mul(kx), dlat.sub(olat).mul(ky)
}

func deltax1(olon, olat, dlon, dlat float32) (dx, dy float32) {
	kx, ky := coefsx1(olat)
	return (dlon - olon) * kx, (dlat - olat) * ky
}

func distancex4(olon, olat, dlon, dlat f32x4) f32x4 {
	dx, dy := deltax4(olon, olat, dlon, dlat)
	return dx.mul(dx).add(dy.mul(dy)).sqrt()
}

func distancex1(olon, olat, dlon, dlat float32) float32 {
	dx, dy := deltax1(olon, olat, dlon, dlat)
	return float32(math.Sqrt(float64(dx*dx + dy*dy)))
}

func bearingx4(olon, olat, dlon, dlat f32x4) f32x4 {
	dx, dy := deltax4(olon, olat, dlon, dlat)
	deg := atan2x4(dx, dy).mul(splat(toDegrees))
	deg = deg.lt(splat(0)).blend(deg.add(splat(360)), deg)
	return deg.ge(splat(360)).blend(deg.sub(splat(360)), deg)
}

func bearingx1(olon, olat, dlon, dlat float32) float32 {
	dx, dy := deltax1(olon, olat, dlon, dlat)
	deg := atan2x1(dx, dy) * toDegrees
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg -= 360
	}
	return deg
}

// destinationx4 moves each origin distance meters along a shared bearing
// given as its sine and cosine.
func destinationx4(olon, olat f32x4, sin, cos, distance float32) (lon, lat f32x4) {
	kx, ky := coefsx4(olat)
	d := splat(distance)
	return olon.add(d.mul(splat(sin)).div(kx)), olat.add(d.mul(splat(cos)).div(ky))
}

func destinationx1(olon, olat, sin, cos, distance float32) (lon, lat float32) {
	kx, ky := coefsx1(olat)
	return olon + distance*sin/kx, olat + distance*cos/ky
}
