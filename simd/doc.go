// Package simd measures whole polylines with a lane-parallel version of the
// cheap ruler.
//
// Pairs of consecutive vertices are processed Lanes at a time: the scaling
// coefficients, deltas and norms of four segments are computed together and
// summed horizontally. Cosine and atan2 are replaced by low degree
// polynomials, and everything runs in float32, so results differ from the
// scalar ruler by well under 1%.
//
// # Kernels
//
// There are two kernels, both pure Go: a lane kernel written over the
// fixed width f32x4 type so the compiler can keep four values in one
// 128-bit register, and a scalar loop over the same math. The ISA values
// only choose between them. SSE2 (always present on x86-64) and NEON both
// select the lane kernel; every other platform, or CHEAPRULER_SIMD=generic,
// selects the scalar loop. No instruction specific assembly is involved.
//
// # Bounds
//
// Inputs of any length are accepted. Full batches are only loaded where all
// Lanes elements exist; the final partial batch is loaded element by element
// into a zero padded register and the padding lanes are masked out before
// summing. Nothing is ever read past the end of either slice.
package simd
