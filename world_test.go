package wray

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/kestrel-render/wray/internal/prim"
)

// TestColorAtDefaultWorldFirstHit is spec.md §8's E2: shading the closest
// hit in the canonical default world against a ray down its own axis.
func TestColorAtDefaultWorldFirstHit(t *testing.T) {
	w, _, _, _ := defaultTestWorld()
	ray := prim.NewRay(prim.Point(0, 0, -5), prim.Vector(0, 0, 1))

	got := w.ColorAt(ray, 4)
	want := Color{0.38066, 0.47583, 0.2855}
	if diff := cmp.Diff(got, want, approxOpts); diff != "" {
		t.Errorf("ColorAt() mismatch (-got +want):\n%s", diff)
	}
}

// TestColorAtAmbientOneUsesInnerMaterialColor is spec.md §8's E3: with
// ambient forced to 1 on every object, color_at looks straight through to
// the inner sphere's own material color with no shading attenuation.
func TestColorAtAmbientOneUsesInnerMaterialColor(t *testing.T) {
	w, arena, outer, inner := defaultTestWorld()

	outerMat := arena.Get(outer).Material
	outerMat.Ambient = 1
	SetMaterial(arena, outer, outerMat)

	innerMat := arena.Get(inner).Material
	innerMat.Ambient = 1
	SetMaterial(arena, inner, innerMat)

	ray := prim.NewRay(prim.Point(0, 0, 0.75), prim.Vector(0, 0, -1))
	got := w.ColorAt(ray, 4)
	want := arena.Get(inner).Material.Color
	if diff := cmp.Diff(got, want, approxOpts); diff != "" {
		t.Errorf("ColorAt() mismatch (-got +want):\n%s", diff)
	}
}

// TestShadeHitReflectivePlane is spec.md §8's E5: a reflective plane under
// the default world mixes its own shading with the reflected color.
func TestShadeHitReflectivePlane(t *testing.T) {
	w, arena, _, _ := defaultTestWorld()

	planeID := NewPlane(arena)
	mat := DefaultMaterial()
	mat.Reflective = 0.5
	SetMaterial(arena, planeID, mat)
	SetTransform(arena, planeID, prim.Translation(0, -1, 0))
	w.Objects = append(w.Objects, planeID)

	ray := prim.NewRay(prim.Point(0, 0, -3), prim.Vector(0, -math.Sqrt2/2, math.Sqrt2/2))
	xs := []Intersection{{T: math.Sqrt2, ObjectID: planeID}}
	comps := PrepareComputations(arena, xs[0], ray, xs)

	got := w.ShadeHit(comps, 4)
	want := Color{0.87675, 0.92434, 0.82917}
	if diff := cmp.Diff(got, want, approxOpts); diff != "" {
		t.Errorf("ShadeHit() mismatch (-got +want):\n%s", diff)
	}
}

// TestColorAtMutuallyReflectivePlanesTerminates is spec.md §8's E6: two
// facing, fully-reflective planes must not recurse forever; ColorAt must
// return once the recursion budget is spent.
func TestColorAtMutuallyReflectivePlanesTerminates(t *testing.T) {
	arena := NewArena()
	w := NewWorld(arena)
	w.Lights = []Light{NewPointLight(prim.Point(0, 0, 0), White)}

	lowerID := NewPlane(arena)
	lowerMat := DefaultMaterial()
	lowerMat.Reflective = 1
	SetMaterial(arena, lowerID, lowerMat)
	SetTransform(arena, lowerID, prim.Translation(0, -1, 0))

	upperID := NewPlane(arena)
	upperMat := DefaultMaterial()
	upperMat.Reflective = 1
	SetMaterial(arena, upperID, upperMat)
	SetTransform(arena, upperID, prim.Translation(0, 1, 0))

	w.Objects = []int{lowerID, upperID}

	done := make(chan struct{})
	go func() {
		ray := prim.NewRay(prim.Point(0, 0, 0), prim.Vector(0, 1, 0))
		w.ColorAt(ray, w.MaxRecursion)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("ColorAt() did not return; mutually reflective planes recursed without bound")
	}
}
