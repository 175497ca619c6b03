package wray

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kestrel-render/wray/internal/prim"
)

// TestPrepareComputationsOverAndUnderPoint is invariant 3: the over point is
// offset toward the eye (z more negative than the hit point's z when the
// normal points along -z for a ray travelling in +z), keeping it above the
// surface for shadow tests, while the under point is offset the other way,
// keeping it below the surface for refraction rays.
func TestPrepareComputationsOverAndUnderPoint(t *testing.T) {
	arena := NewArena()
	id := NewGlassSphere(arena)
	SetTransform(arena, id, prim.Translation(0, 0, 1))

	ray := prim.NewRay(prim.Point(0, 0, -5), prim.Vector(0, 0, 1))
	xs := []Intersection{{T: 5, ObjectID: id}}
	comps := PrepareComputations(arena, xs[0], ray, xs)

	if comps.OverPoint.Z >= comps.Point.Z {
		t.Errorf("OverPoint.Z = %v, want < Point.Z (%v)", comps.OverPoint.Z, comps.Point.Z)
	}
	if comps.UnderPoint.Z <= comps.Point.Z {
		t.Errorf("UnderPoint.Z = %v, want > Point.Z (%v)", comps.UnderPoint.Z, comps.Point.Z)
	}
	if comps.OverPoint.Z > -epsilon/2 {
		t.Errorf("OverPoint.Z = %v, want comfortably negative (above the surface)", comps.OverPoint.Z)
	}
	if comps.UnderPoint.Z < epsilon/2 {
		t.Errorf("UnderPoint.Z = %v, want comfortably positive (below the surface)", comps.UnderPoint.Z)
	}
}

// TestSchlickPerpendicularGlassToAir is half of invariant 6: looking
// straight on from inside glass (n1=1.5) out into air (n2=1.0) reflects very
// little light (the textbook 0.04 value).
func TestSchlickPerpendicularGlassToAir(t *testing.T) {
	arena := NewArena()
	id := NewGlassSphere(arena)
	ray := prim.NewRay(prim.Point(0, 0, 0), prim.Vector(0, 0, 1))
	xs := []Intersection{
		{T: -1, ObjectID: id},
		{T: 1, ObjectID: id},
	}
	comps := PrepareComputations(arena, xs[1], ray, xs)
	comps.N1, comps.N2 = 1.5, 1.0

	got := Schlick(comps)
	if diff := cmp.Diff(got, 0.04, approxOpts); diff != "" {
		t.Errorf("Schlick mismatch (-got +want):\n%s", diff)
	}
}

// TestSchlickTotalInternalReflection is the other half of invariant 6: past
// the critical angle, Schlick must saturate to full reflectance.
func TestSchlickTotalInternalReflection(t *testing.T) {
	arena := NewArena()
	id := NewGlassSphere(arena)
	ray := prim.NewRay(prim.Point(0, 0, math.Sqrt2/2), prim.Vector(0, 1, 0))
	xs := []Intersection{
		{T: -math.Sqrt2 / 2, ObjectID: id},
		{T: math.Sqrt2 / 2, ObjectID: id},
	}
	comps := PrepareComputations(arena, xs[1], ray, xs)

	got := Schlick(comps)
	if diff := cmp.Diff(got, 1.0, approxOpts); diff != "" {
		t.Errorf("Schlick mismatch (-got +want):\n%s", diff)
	}
}
