// Package prim implements the numeric kernel for 3D graphics: tolerant
// scalar comparison, tuple algebra, matrices, rays and affine transforms.
package prim

import "math"

// Epsilon is the tolerance used throughout the renderer for float
// comparisons: equality, coplanar rejection, backface rejection, and the
// over/under-point offsets that guard against self-intersection.
const Epsilon = 1e-5

// Eq reports whether a and b are equal within Epsilon.
func Eq(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Clamp restricts x to the closed interval [min, max].
func Clamp(x, min, max float64) float64 {
	return math.Min(math.Max(x, min), max)
}
