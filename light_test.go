package wray

import (
	"testing"

	"github.com/kestrel-render/wray/internal/prim"
)

func defaultTestWorld() (*World, *Arena, int, int) {
	arena := NewArena()
	w := NewWorld(arena)
	w.Lights = []Light{NewPointLight(prim.Point(-10, 10, -10), White)}

	outer := NewSphere(arena)
	mat := DefaultMaterial()
	mat.Color = Color{0.8, 1.0, 0.6}
	mat.Diffuse = 0.7
	mat.Specular = 0.2
	SetMaterial(arena, outer, mat)

	inner := NewSphere(arena)
	SetTransform(arena, inner, prim.Scaling(0.5, 0.5, 0.5))

	w.Objects = []int{outer, inner}
	return w, arena, outer, inner
}

// TestAreaLightFullyUnoccluded is half of invariant 5: a point with a clear
// line of sight to every sample point averages to the light's own intensity.
func TestAreaLightFullyUnoccluded(t *testing.T) {
	arena := NewArena()
	w := NewWorld(arena)
	light := NewAreaLight(prim.Point(0, 10, 0), White, 0.5, 50, 1)

	avg := light.computeAverageRaysTo(w, prim.Point(0, 0, 0))
	if avg.R < 0 || avg.R > 1 || avg.G < 0 || avg.G > 1 || avg.B < 0 || avg.B > 1 {
		t.Fatalf("computeAverageRaysTo() = %+v, want channels within [0,1]", avg)
	}
	if avg.R != 1 || avg.G != 1 || avg.B != 1 {
		t.Errorf("computeAverageRaysTo() = %+v, want (1,1,1) with nothing in the world to occlude", avg)
	}
}

// TestAreaLightFullyOccluded is the other half of invariant 5: a point
// entirely blocked from every sample point averages to zero.
func TestAreaLightFullyOccluded(t *testing.T) {
	arena := NewArena()
	w := NewWorld(arena)
	blockerID := NewPlane(arena)
	SetTransform(arena, blockerID, prim.Translation(0, 5, 0))
	w.Objects = []int{blockerID}

	light := NewAreaLight(prim.Point(0, 10, 0), White, 0.5, 50, 1)
	avg := light.computeAverageRaysTo(w, prim.Point(0, 0, 0))
	if avg.R != 0 || avg.G != 0 || avg.B != 0 {
		t.Errorf("computeAverageRaysTo() = %+v, want (0,0,0) with a plane blocking every sample ray", avg)
	}
}

// TestShadeHitTwoSphereOcclusion is spec.md §8's E4: with a sphere sitting
// between the point light and the shaded point, shade_hit falls back to
// ambient-only.
func TestShadeHitTwoSphereOcclusion(t *testing.T) {
	arena := NewArena()
	w := NewWorld(arena)
	w.Lights = []Light{NewPointLight(prim.Point(0, 0, -10), White)}

	s1 := NewSphere(arena)
	s2 := NewSphere(arena)
	SetTransform(arena, s2, prim.Translation(0, 0, 10))
	w.Objects = []int{s1, s2}

	ray := prim.NewRay(prim.Point(0, 0, 5), prim.Vector(0, 0, 1))
	xs := []Intersection{{T: 4, ObjectID: s2}}
	comps := PrepareComputations(arena, xs[0], ray, xs)

	got := w.ShadeHit(comps, 4)
	want := Color{0.1, 0.1, 0.1}
	if got != want {
		t.Errorf("ShadeHit() = %+v, want %+v (ambient only, in shadow)", got, want)
	}
}
