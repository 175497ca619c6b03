package prim

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMatrixMultiply(t *testing.T) {
	a := NewMatrix(4, []float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 8, 7, 6,
		5, 4, 3, 2,
	})
	b := NewMatrix(4, []float64{
		-2, 1, 2, 3,
		3, 2, 1, -1,
		4, 3, 6, 5,
		1, 2, 7, 8,
	})
	want := NewMatrix(4, []float64{
		20, 22, 50, 48,
		44, 54, 114, 108,
		40, 58, 110, 102,
		16, 26, 46, 42,
	})
	got := a.Multiply(b)
	if !got.Equal(want) {
		t.Errorf("Multiply() = %v, want %v", got, want)
	}
}

func TestMatrixMultiplyTuple(t *testing.T) {
	a := NewMatrix(4, []float64{
		1, 2, 3, 4,
		2, 4, 4, 2,
		8, 6, 4, 1,
		0, 0, 0, 1,
	})
	tup := Tuple{1, 2, 3, 1}
	want := Tuple{18, 24, 33, 1}
	if diff := cmp.Diff(a.MultiplyTuple(tup), want, approxOpts); diff != "" {
		t.Errorf("MultiplyTuple mismatch (-got +want):\n%s", diff)
	}
}

func TestIdentityMultiply(t *testing.T) {
	a := NewMatrix(4, []float64{
		0, 1, 2, 4,
		1, 2, 4, 8,
		2, 4, 8, 16,
		4, 8, 16, 32,
	})
	if got := a.Multiply(Identity4()); !got.Equal(a) {
		t.Errorf("A * identity = %v, want %v", got, a)
	}
}

func TestTranspose(t *testing.T) {
	a := NewMatrix(4, []float64{
		0, 9, 3, 0,
		9, 8, 0, 8,
		1, 8, 5, 3,
		0, 0, 5, 8,
	})
	want := NewMatrix(4, []float64{
		0, 9, 1, 0,
		9, 8, 8, 0,
		3, 0, 5, 5,
		0, 8, 3, 8,
	})
	if got := a.Transpose(); !got.Equal(want) {
		t.Errorf("Transpose() = %v, want %v", got, want)
	}
}

func TestDeterminant2x2(t *testing.T) {
	a := NewMatrix(2, []float64{1, 5, -3, 2})
	if got, want := a.Determinant(), 17.0; got != want {
		t.Errorf("Determinant() = %v, want %v", got, want)
	}
}

func TestSubmatrix(t *testing.T) {
	a := NewMatrix(3, []float64{
		1, 5, 0,
		-3, 2, 7,
		0, 6, -3,
	})
	want := NewMatrix(2, []float64{-3, 2, 0, 6})
	if got := a.Submatrix(0, 2); !got.Equal(want) {
		t.Errorf("Submatrix(0,2) = %v, want %v", got, want)
	}
}

func TestMinorAndCofactor(t *testing.T) {
	a := NewMatrix(3, []float64{
		3, 5, 0,
		2, -1, -7,
		6, -1, 5,
	})
	if got, want := a.Minor(1, 0), 25.0; got != want {
		t.Errorf("Minor(1,0) = %v, want %v", got, want)
	}
	if got, want := a.Cofactor(0, 0), -12.0; got != want {
		t.Errorf("Cofactor(0,0) = %v, want %v", got, want)
	}
	if got, want := a.Cofactor(1, 0), -25.0; got != want {
		t.Errorf("Cofactor(1,0) = %v, want %v", got, want)
	}
}

func TestDeterminant4x4(t *testing.T) {
	a := NewMatrix(4, []float64{
		-2, -8, 3, 5,
		-3, 1, 7, 3,
		1, 2, -9, 6,
		-6, 7, 7, -9,
	})
	if got, want := a.Determinant(), -4071.0; got != want {
		t.Errorf("Determinant() = %v, want %v", got, want)
	}
}

func TestInvertible(t *testing.T) {
	a := NewMatrix(4, []float64{
		6, 4, 4, 4,
		5, 5, 7, 6,
		4, -9, 3, -7,
		9, 1, 7, -6,
	})
	if !a.Invertible() {
		t.Errorf("Invertible() = false, want true")
	}

	b := NewMatrix(4, []float64{
		-4, 2, -2, -3,
		9, 6, 2, 6,
		0, -5, 1, -5,
		0, 0, 0, 0,
	})
	if b.Invertible() {
		t.Errorf("Invertible() = true, want false")
	}
}

func TestInverse(t *testing.T) {
	a := NewMatrix(4, []float64{
		-5, 2, 6, -8,
		1, -5, 1, 8,
		7, 7, -6, -7,
		1, -3, 7, 4,
	})
	want := NewMatrix(4, []float64{
		0.21805, 0.45113, 0.24060, -0.04511,
		-0.80827, -1.45677, -0.44361, 0.52068,
		-0.07895, -0.22368, -0.05263, 0.19737,
		-0.52256, -0.81391, -0.30075, 0.30639,
	})
	if got := a.Inverse(); !got.Equal(want) {
		t.Errorf("Inverse() = %v, want %v", got, want)
	}
}

func TestInverseUndoesMultiply(t *testing.T) {
	a := NewMatrix(4, []float64{
		3, -9, 7, 3,
		3, -8, 2, -9,
		-4, 4, 4, 1,
		-6, 5, -1, 1,
	})
	b := NewMatrix(4, []float64{
		8, 2, 2, 2,
		3, -1, 7, 0,
		7, 0, 5, 4,
		6, -2, 0, 5,
	})
	c := a.Multiply(b)
	if got := c.Multiply(b.Inverse()); !got.Equal(a) {
		t.Errorf("(a*b) * b^-1 = %v, want %v", got, a)
	}
}

func TestInverseOfSingularPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Inverse() of singular matrix did not panic")
		}
	}()
	singular := NewMatrix(2, []float64{1, 1, 1, 1})
	singular.Inverse()
}
