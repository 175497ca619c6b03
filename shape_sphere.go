package wray

import (
	"math"

	"github.com/kestrel-render/wray/internal/prim"
)

// NewSphere registers a unit sphere at the origin and returns its id.
func NewSphere(arena *Arena) int {
	return arena.Put(newShapeTemplate(KindSphere))
}

// NewGlassSphere is a convenience constructor for a unit sphere with the
// glass material preset, commonly used in refraction scenes.
func NewGlassSphere(arena *Arena) int {
	id := NewSphere(arena)
	SetMaterial(arena, id, GlassMaterial())
	return id
}

func sphereLocalIntersect(ray prim.Ray) []float64 {
	sphereToRay := ray.Origin.Sub(prim.Point(0, 0, 0))
	a := ray.Direction.Dot(ray.Direction)
	b := ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - a*c
	if discriminant < 0 {
		return nil
	}
	sqrtDisc := math.Sqrt(discriminant)
	t1 := (-b - sqrtDisc) / a
	t2 := (-b + sqrtDisc) / a
	return []float64{t1, t2}
}

func sphereLocalNormalAt(point prim.Tuple) prim.Tuple {
	return point.Sub(prim.Point(0, 0, 0))
}
