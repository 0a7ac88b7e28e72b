package simd

import "math"

// Lanes is the number of float32 values processed together.
const Lanes = 4

// f32x4 is one 128-bit register worth of float32 lanes. The methods are
// written as fixed-length, branch-free loops so the compiler keeps them
// in registers and drops bounds checks.
type f32x4 [Lanes]float32

// m32x4 is a per-lane predicate.
type m32x4 [Lanes]bool

func splat(v float32) f32x4 {
	return f32x4{v, v, v, v}
}

// load reads Lanes contiguous elements starting at offset. It panics
// rather than read past len(s), even when s has spare capacity, so callers
// only use it for full batches.
func load(s []float32, offset int) f32x4 {
	return f32x4(s[offset : offset+Lanes : len(s)])
}

// loadOrZero reads up to Lanes elements starting at offset and zero fills
// the lanes past the end of s.
func loadOrZero(s []float32, offset int) f32x4 {
	var v f32x4
	if offset < len(s) {
		copy(v[:], s[offset:])
	}
	return v
}

// store writes up to Lanes values to dst starting at offset, stopping at
// the end of dst.
func (a f32x4) store(dst []float32, offset int) {
	if offset < len(dst) {
		copy(dst[offset:], a[:])
	}
}

func (a f32x4) add(b f32x4) f32x4 {
	return f32x4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func (a f32x4) sub(b f32x4) f32x4 {
	return f32x4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func (a f32x4) mul(b f32x4) f32x4 {
	return f32x4{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

func (a f32x4) div(b f32x4) f32x4 {
	return f32x4{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]}
}

func (a f32x4) neg() f32x4 {
	return f32x4{-a[0], -a[1], -a[2], -a[3]}
}

func (a f32x4) abs() f32x4 {
	for i := range a {
		a[i] = math.Float32frombits(math.Float32bits(a[i]) &^ (1 << 31))
	}
	return a
}

func (a f32x4) sqrt() f32x4 {
	for i := range a {
		a[i] = float32(math.Sqrt(float64(a[i])))
	}
	return a
}

func (a f32x4) lt(b f32x4) m32x4 {
	return m32x4{a[0] < b[0], a[1] < b[1], a[2] < b[2], a[3] < b[3]}
}

func (a f32x4) gt(b f32x4) m32x4 {
	return m32x4{a[0] > b[0], a[1] > b[1], a[2] > b[2], a[3] > b[3]}
}

func (a f32x4) ge(b f32x4) m32x4 {
	return m32x4{a[0] >= b[0], a[1] >= b[1], a[2] >= b[2], a[3] >= b[3]}
}

func (a f32x4) eq(b f32x4) m32x4 {
	return m32x4{a[0] == b[0], a[1] == b[1], a[2] == b[2], a[3] == b[3]}
}

// reduceAdd sums the lanes pairwise, as a horizontal add would.
func (a f32x4) reduceAdd() float32 {
	return (a[0] + a[1]) + (a[2] + a[3])
}

func (m m32x4) and(o m32x4) m32x4 {
	return m32x4{m[0] && o[0], m[1] && o[1], m[2] && o[2], m[3] && o[3]}
}

// blend picks t where m is set and f elsewhere.
func (m m32x4) blend(t, f f32x4) f32x4 {
	for i := range m {
		if !m[i] {
			t[i] = f[i]
		}
	}
	return t
}

// lanesBelow sets the first n lanes.
func lanesBelow(n int) m32x4 {
	return m32x4{0 < n, 1 < n, 2 < n, 3 < n}
}
