package prim

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approxOpts = cmpopts.EquateApprox(1e-7, 0.0)

func TestPointAndVectorW(t *testing.T) {
	p := Point(4, -4, 3)
	if !p.IsPoint() || p.IsVector() {
		t.Errorf("Point(4,-4,3) = %v, want w=1 point", p)
	}
	v := Vector(4, -4, 3)
	if !v.IsVector() || v.IsPoint() {
		t.Errorf("Vector(4,-4,3) = %v, want w=0 vector", v)
	}
}

func TestTupleArithmetic(t *testing.T) {
	a1 := Tuple{3, -2, 5, 1}
	a2 := Tuple{-2, 3, 1, 0}
	if diff := cmp.Diff(a1.Add(a2), Tuple{1, 1, 6, 1}, approxOpts); diff != "" {
		t.Errorf("Add mismatch (-got +want):\n%s", diff)
	}

	p1 := Point(3, 2, 1)
	p2 := Point(5, 6, 7)
	if diff := cmp.Diff(p1.Sub(p2), Vector(-2, -4, -6), approxOpts); diff != "" {
		t.Errorf("point-point mismatch (-got +want):\n%s", diff)
	}

	zero := Vector(0, 0, 0)
	v := Vector(1, -2, 3)
	if diff := cmp.Diff(zero.Sub(v), Vector(-1, 2, -3), approxOpts); diff != "" {
		t.Errorf("negating via subtraction mismatch (-got +want):\n%s", diff)
	}

	a := Tuple{1, -2, 3, -4}
	if diff := cmp.Diff(a.Neg(), Tuple{-1, 2, -3, 4}, approxOpts); diff != "" {
		t.Errorf("Neg mismatch (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(a.Scale(3.5), Tuple{3.5, -7, 10.5, -14}, approxOpts); diff != "" {
		t.Errorf("Scale mismatch (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(a.Scale(0.5), Tuple{0.5, -1, 1.5, -2}, approxOpts); diff != "" {
		t.Errorf("Scale(0.5) mismatch (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(a.Div(2), Tuple{0.5, -1, 1.5, -2}, approxOpts); diff != "" {
		t.Errorf("Div mismatch (-got +want):\n%s", diff)
	}
}

func TestMagnitudeAndNormalize(t *testing.T) {
	tests := []struct {
		v    Tuple
		mag  float64
		norm Tuple
	}{
		{Vector(1, 0, 0), 1, Vector(1, 0, 0)},
		{Vector(0, 1, 0), 1, Vector(0, 1, 0)},
		{Vector(0, 0, 1), 1, Vector(0, 0, 1)},
		{Vector(1, 2, 3), math.Sqrt(14), Vector(1/math.Sqrt(14), 2/math.Sqrt(14), 3/math.Sqrt(14))},
		{Vector(-1, -2, -3), math.Sqrt(14), Vector(-1/math.Sqrt(14), -2/math.Sqrt(14), -3/math.Sqrt(14))},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.v.Magnitude(), tt.mag, approxOpts); diff != "" {
			t.Errorf("Magnitude(%v) mismatch (-got +want):\n%s", tt.v, diff)
		}
		if diff := cmp.Diff(tt.v.Normalize(), tt.norm, approxOpts); diff != "" {
			t.Errorf("Normalize(%v) mismatch (-got +want):\n%s", tt.v, diff)
		}
	}
}

func TestZeroVectorNormalizes(t *testing.T) {
	zero := Vector(0, 0, 0)
	if diff := cmp.Diff(zero.Normalize(), Tuple{}, approxOpts); diff != "" {
		t.Errorf("Normalize of zero vector mismatch (-got +want):\n%s", diff)
	}
}

func TestDotAndCross(t *testing.T) {
	a := Vector(1, 2, 3)
	b := Vector(2, 3, 4)
	if diff := cmp.Diff(a.Dot(b), 20.0, approxOpts); diff != "" {
		t.Errorf("Dot mismatch (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(a.Cross(b), Vector(-1, 2, -1), approxOpts); diff != "" {
		t.Errorf("a.Cross(b) mismatch (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(b.Cross(a), Vector(1, -2, 1), approxOpts); diff != "" {
		t.Errorf("b.Cross(a) mismatch (-got +want):\n%s", diff)
	}
}

func TestReflect(t *testing.T) {
	v := Vector(1, -1, 0)
	n := Vector(0, 1, 0)
	if diff := cmp.Diff(v.Reflect(n), Vector(1, 1, 0), approxOpts); diff != "" {
		t.Errorf("45-degree reflect mismatch (-got +want):\n%s", diff)
	}

	v2 := Vector(0, -1, 0)
	n2 := Vector(math.Sqrt2/2, math.Sqrt2/2, 0)
	if diff := cmp.Diff(v2.Reflect(n2), Vector(1, 0, 0), approxOpts); diff != "" {
		t.Errorf("slanted reflect mismatch (-got +want):\n%s", diff)
	}
}
