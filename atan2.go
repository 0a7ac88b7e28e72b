package cheapruler

import (
	"fmt"
	"math"
	"strings"
)

// Arctangent selects how Bearing evaluates atan2. Only one is active per
// Ruler.
type Arctangent uint8

const (
	// ArctangentExact uses math.Atan2.
	ArctangentExact Arctangent = iota
	// ArctangentDeg3 uses a 3rd degree polynomial. Max error about 0.01 rad.
	ArctangentDeg3
	// ArctangentDeg5 uses a 5th degree polynomial. Max error about 0.001 rad.
	ArctangentDeg5
)

func (a Arctangent) String() string {
	switch a {
	case ArctangentExact:
		return "exact"
	case ArctangentDeg3:
		return "deg3"
	case ArctangentDeg5:
		return "deg5"
	default:
		return fmt.Sprintf("Arctangent(%d)", uint8(a))
	}
}

// ParseArctangent parses "exact", "deg3" or "deg5".
func ParseArctangent(s string) (Arctangent, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact", "":
		return ArctangentExact, true
	case "deg3":
		return ArctangentDeg3, true
	case "deg5":
		return ArctangentDeg5, true
	default:
		return ArctangentExact, false
	}
}

func atan2Func[T Float](a Arctangent) func(y, x T) T {
	switch a {
	case ArctangentDeg3:
		return Atan2Deg3[T]
	case ArctangentDeg5:
		return Atan2Deg5[T]
	default:
		return Atan2Exact[T]
	}
}

// Atan2Exact is math.Atan2 for any Float.
func Atan2Exact[T Float](y, x T) T {
	return T(math.Atan2(float64(y), float64(x)))
}

// Atan2Deg3 approximates atan2(y, x) with a 3rd degree polynomial.
//
// The angle is measured from the nearest diagonal, π/4 or 3π/4, using
// r = (x-|y|)/(x+|y|) which stays in [-1, 1]. Atan2Deg3(0, 0) is 0.
func Atan2Deg3[T Float](y, x T) T {
	if x == 0 && y == 0 {
		return 0
	}
	const a1, a3 = 0.9817, 0.1963

	ay := abs(y)
	var r, res T
	if x < 0 {
		r = (x + ay) / (ay - x)
		res = 3 * math.Pi / 4
	} else {
		r = (x - ay) / (x + ay)
		res = math.Pi / 4
	}
	res += (a3*r*r - a1) * r

	if math.Signbit(float64(y)) {
		res = -res
	}
	return res
}

// Atan2Deg5 approximates atan2(y, x) with a 5th degree odd polynomial
// evaluated on min(|x|,|y|)/max(|x|,|y|) and reflected into the right
// octant. Atan2Deg5(0, 0) is 0.
func Atan2Deg5[T Float](y, x T) T {
	if x == 0 && y == 0 {
		return 0
	}
	ax, ay := abs(x), abs(y)

	var res T
	if ax < ay {
		res = math.Pi/2 - atan5(ax/ay)
	} else {
		res = atan5(ay / ax)
	}
	if x < 0 {
		res = math.Pi - res
	}
	if math.Signbit(float64(y)) {
		res = -res
	}
	return res
}

// atan5 approximates atan(x) on [0, 1].
func atan5[T Float](x T) T {
	const a1, a3, a5 = 0.995354, -0.288679, 0.079331
	x2 := x * x
	return x * (a1 + x2*(a3+x2*a5))
}

func abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
