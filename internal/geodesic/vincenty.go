package geodesic

import "math"

const (
	vincentyTolerance = 1e-12
	vincentyMaxIter   = 200
)

// vincentyInverse is T. Vincenty's iterative inverse solution, "Direct and
// Inverse Solutions of Geodesics on the Ellipsoid" (Survey Review, 1975).
func vincentyInverse(a, f, lat1, lon1, lat2, lon2 float64) (s12, azi1, azi2 float64) {
	b := a * (1 - f)
	L := (lon2 - lon1) * radians
	tanU1 := (1 - f) * math.Tan(lat1*radians)
	tanU2 := (1 - f) * math.Tan(lat2*radians)
	cosU1 := 1 / math.Sqrt(1+tanU1*tanU1)
	sinU1 := tanU1 * cosU1
	cosU2 := 1 / math.Sqrt(1+tanU2*tanU2)
	sinU2 := tanU2 * cosU2

	var sinλ, cosλ, sinσ, cosσ, σ, cos2α, cos2σm float64
	λ := L
	for i := 0; i < vincentyMaxIter; i++ {
		sinλ, cosλ = math.Sincos(λ)
		t1 := cosU2 * sinλ
		t2 := cosU1*sinU2 - sinU1*cosU2*cosλ
		sinσ = math.Sqrt(t1*t1 + t2*t2)
		if sinσ == 0 {
			// coincident points
			return 0, 0, 0
		}
		cosσ = sinU1*sinU2 + cosU1*cosU2*cosλ
		σ = math.Atan2(sinσ, cosσ)
		sinα := cosU1 * cosU2 * sinλ / sinσ
		cos2α = 1 - sinα*sinα
		cos2σm = 0 // equatorial line
		if cos2α != 0 {
			cos2σm = cosσ - 2*sinU1*sinU2/cos2α
		}
		C := f / 16 * cos2α * (4 + f*(4-3*cos2α))
		prev := λ
		λ = L + (1-C)*f*sinα*(σ+C*sinσ*(cos2σm+C*cosσ*(-1+2*cos2σm*cos2σm)))
		if math.Abs(λ-prev) <= vincentyTolerance {
			break
		}
	}

	A, B := vincentyAB(cos2α * (a*a - b*b) / (b * b))
	Δσ := vincentyDeltaSigma(B, sinσ, cosσ, cos2σm)
	s12 = b * A * (σ - Δσ)
	azi1 = math.Atan2(cosU2*sinλ, cosU1*sinU2-sinU1*cosU2*cosλ) * degrees
	azi2 = math.Atan2(cosU1*sinλ, -sinU1*cosU2+cosU1*sinU2*cosλ) * degrees
	return s12, wrap180(azi1), wrap180(azi2)
}

// vincentyDirect is the companion direct solution.
func vincentyDirect(a, f, lat1, lon1, azi1, s12 float64) (lat2, lon2, azi2 float64) {
	b := a * (1 - f)
	sinα1, cosα1 := math.Sincos(azi1 * radians)
	tanU1 := (1 - f) * math.Tan(lat1*radians)
	cosU1 := 1 / math.Sqrt(1+tanU1*tanU1)
	sinU1 := tanU1 * cosU1
	σ1 := math.Atan2(tanU1, cosα1)
	sinα := cosU1 * sinα1
	cos2α := 1 - sinα*sinα

	A, B := vincentyAB(cos2α * (a*a - b*b) / (b * b))

	var sinσ, cosσ, cos2σm float64
	σ := s12 / (b * A)
	for i := 0; i < vincentyMaxIter; i++ {
		cos2σm = math.Cos(2*σ1 + σ)
		sinσ, cosσ = math.Sincos(σ)
		prev := σ
		σ = s12/(b*A) + vincentyDeltaSigma(B, sinσ, cosσ, cos2σm)
		if math.Abs(σ-prev) <= vincentyTolerance {
			break
		}
	}
	cos2σm = math.Cos(2*σ1 + σ)
	sinσ, cosσ = math.Sincos(σ)

	x := sinU1*sinσ - cosU1*cosσ*cosα1
	φ2 := math.Atan2(sinU1*cosσ+cosU1*sinσ*cosα1, (1-f)*math.Sqrt(sinα*sinα+x*x))
	λ := math.Atan2(sinσ*sinα1, cosU1*cosσ-sinU1*sinσ*cosα1)
	C := f / 16 * cos2α * (4 + f*(4-3*cos2α))
	L := λ - (1-C)*f*sinα*(σ+C*sinσ*(cos2σm+C*cosσ*(-1+2*cos2σm*cos2σm)))

	lat2 = φ2 * degrees
	lon2 = wrap180(lon1 + L*degrees)
	azi2 = wrap180(math.Atan2(sinα, -x) * degrees)
	return lat2, lon2, azi2
}

func vincentyAB(u2 float64) (A, B float64) {
	A = 1 + u2/16384*(4096+u2*(-768+u2*(320-175*u2)))
	B = u2 / 1024 * (256 + u2*(-128+u2*(74-47*u2)))
	return A, B
}

func vincentyDeltaSigma(B, sinσ, cosσ, cos2σm float64) float64 {
	return B * sinσ * (cos2σm + B/4*(cosσ*(-1+2*cos2σm*cos2σm)-
		B/6*cos2σm*(-3+4*sinσ*sinσ)*(-3+4*cos2σm*cos2σm)))
}
