package prim

import (
	"fmt"
	"math"
)

// Tuple is a 4-component (x, y, z, w) value. W == 1 marks a point, W == 0
// marks a vector; other W values arise as intermediate results of affine
// multiplication.
type Tuple struct {
	X, Y, Z, W float64
}

// Point constructs a point tuple (w=1).
func Point(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// Vector constructs a vector tuple (w=0).
func Vector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

func (t Tuple) String() string {
	return fmt.Sprintf("Tuple(%.5f, %.5f, %.5f, %.5f)", t.X, t.Y, t.Z, t.W)
}

// IsPoint reports whether t is (approximately) a point.
func (t Tuple) IsPoint() bool {
	return Eq(t.W, 1)
}

// IsVector reports whether t is (approximately) a vector.
func (t Tuple) IsVector() bool {
	return Eq(t.W, 0)
}

// Equal compares two tuples componentwise within Epsilon.
func (t Tuple) Equal(o Tuple) bool {
	return Eq(t.X, o.X) && Eq(t.Y, o.Y) && Eq(t.Z, o.Z) && Eq(t.W, o.W)
}

func (t Tuple) Add(o Tuple) Tuple {
	return Tuple{t.X + o.X, t.Y + o.Y, t.Z + o.Z, t.W + o.W}
}

func (t Tuple) Sub(o Tuple) Tuple {
	return Tuple{t.X - o.X, t.Y - o.Y, t.Z - o.Z, t.W - o.W}
}

func (t Tuple) Neg() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

func (t Tuple) Scale(s float64) Tuple {
	return Tuple{t.X * s, t.Y * s, t.Z * s, t.W * s}
}

func (t Tuple) Div(s float64) Tuple {
	return Tuple{t.X / s, t.Y / s, t.Z / s, t.W / s}
}

func (t Tuple) Dot(o Tuple) float64 {
	return t.X*o.X + t.Y*o.Y + t.Z*o.Z + t.W*o.W
}

// Cross is only meaningful for vectors (w is ignored, result is a vector).
func (t Tuple) Cross(o Tuple) Tuple {
	return Vector(
		t.Y*o.Z-t.Z*o.Y,
		t.Z*o.X-t.X*o.Z,
		t.X*o.Y-t.Y*o.X,
	)
}

func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.Dot(t))
}

// Normalize returns the unit tuple in the direction of t, or the zero tuple
// if t has zero magnitude.
func (t Tuple) Normalize() Tuple {
	m := t.Magnitude()
	if m == 0 {
		return Tuple{}
	}
	return t.Div(m)
}

// Reflect reflects t around normal: self - normal*2*dot(self, normal).
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Sub(normal.Scale(2 * t.Dot(normal)))
}
