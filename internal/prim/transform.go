package prim

import "math"

// Translation builds a translation matrix.
func Translation(x, y, z float64) Matrix {
	return NewMatrix(4, []float64{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	})
}

// Scaling builds a scaling matrix.
func Scaling(x, y, z float64) Matrix {
	return NewMatrix(4, []float64{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	})
}

// RotationX builds a rotation matrix of r radians about the x axis.
func RotationX(r float64) Matrix {
	cos, sin := math.Cos(r), math.Sin(r)
	return NewMatrix(4, []float64{
		1, 0, 0, 0,
		0, cos, -sin, 0,
		0, sin, cos, 0,
		0, 0, 0, 1,
	})
}

// RotationY builds a rotation matrix of r radians about the y axis.
func RotationY(r float64) Matrix {
	cos, sin := math.Cos(r), math.Sin(r)
	return NewMatrix(4, []float64{
		cos, 0, sin, 0,
		0, 1, 0, 0,
		-sin, 0, cos, 0,
		0, 0, 0, 1,
	})
}

// RotationZ builds a rotation matrix of r radians about the z axis.
func RotationZ(r float64) Matrix {
	cos, sin := math.Cos(r), math.Sin(r)
	return NewMatrix(4, []float64{
		cos, -sin, 0, 0,
		sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

// Shearing builds a shearing ("skew") matrix. Each parameter controls how
// much one component is affected in proportion to another, e.g. xy moves x
// in proportion to y.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	return NewMatrix(4, []float64{
		1, xy, xz, 0,
		yx, 1, yz, 0,
		zx, zy, 1, 0,
		0, 0, 0, 1,
	})
}

// ViewTransform builds the matrix that moves the world so the eye is at
// from, looking toward to, with up oriented as closely to up as orthogonal
// to the view direction allows.
func ViewTransform(from, to, up Tuple) Matrix {
	forward := to.Sub(from).Normalize()
	upn := up.Normalize()
	left := forward.Cross(upn)
	trueUp := left.Cross(forward)
	orientation := NewMatrix(4, []float64{
		left.X, left.Y, left.Z, 0,
		trueUp.X, trueUp.Y, trueUp.Z, 0,
		-forward.X, -forward.Y, -forward.Z, 0,
		0, 0, 0, 1,
	})
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z))
}
