package wray

import "github.com/kestrel-render/wray/internal/prim"

// NewPlane registers the infinite xz plane (y=0) and returns its id.
func NewPlane(arena *Arena) int {
	return arena.Put(newShapeTemplate(KindPlane))
}

func planeLocalIntersect(ray prim.Ray) []float64 {
	if eq(ray.Direction.Y, 0) {
		return nil
	}
	t := -ray.Origin.Y / ray.Direction.Y
	return []float64{t}
}

func planeLocalNormalAt() prim.Tuple {
	return prim.Vector(0, 1, 0)
}
