package wray

import (
	"math"

	"github.com/kestrel-render/wray/internal/prim"
)

// NewCube registers an axis-aligned cube spanning [-1,1]^3 and returns its id.
func NewCube(arena *Arena) int {
	return arena.Put(newShapeTemplate(KindCube))
}

// NewCubeIncludingPoints fits the unit cube around an arbitrary AABB
// (min..max) via a translation to its center and an anisotropic scale to
// its half-extents, then returns the new shape's id.
func NewCubeIncludingPoints(arena *Arena, min, max prim.Tuple) int {
	id := NewCube(arena)
	center := prim.Point((min.X+max.X)/2, (min.Y+max.Y)/2, (min.Z+max.Z)/2)
	halfX, halfY, halfZ := (max.X-min.X)/2, (max.Y-min.Y)/2, (max.Z-min.Z)/2
	if halfX == 0 {
		halfX = epsilon
	}
	if halfY == 0 {
		halfY = epsilon
	}
	if halfZ == 0 {
		halfZ = epsilon
	}
	xform := prim.Translation(center.X, center.Y, center.Z).Multiply(prim.Scaling(halfX, halfY, halfZ))
	SetTransform(arena, id, xform)
	return id
}

func cubeCheckAxis(origin, direction float64) (float64, float64) {
	tminNumerator := -1 - origin
	tmaxNumerator := 1 - origin

	var tmin, tmax float64
	if math.Abs(direction) >= epsilon {
		tmin = tminNumerator / direction
		tmax = tmaxNumerator / direction
	} else {
		tmin = tminNumerator * math.Inf(1)
		tmax = tmaxNumerator * math.Inf(1)
	}
	if tmin > tmax {
		tmin, tmax = tmax, tmin
	}
	return tmin, tmax
}

func cubeLocalIntersect(ray prim.Ray) []float64 {
	xtmin, xtmax := cubeCheckAxis(ray.Origin.X, ray.Direction.X)
	ytmin, ytmax := cubeCheckAxis(ray.Origin.Y, ray.Direction.Y)
	ztmin, ztmax := cubeCheckAxis(ray.Origin.Z, ray.Direction.Z)

	tmin := math.Max(xtmin, math.Max(ytmin, ztmin))
	tmax := math.Min(xtmax, math.Min(ytmax, ztmax))
	if tmin > tmax {
		return nil
	}
	return []float64{tmin, tmax}
}

func cubeLocalNormalAt(point prim.Tuple) prim.Tuple {
	maxc := math.Max(math.Abs(point.X), math.Max(math.Abs(point.Y), math.Abs(point.Z)))
	switch {
	case maxc == math.Abs(point.X):
		return prim.Vector(point.X, 0, 0)
	case maxc == math.Abs(point.Y):
		return prim.Vector(0, point.Y, 0)
	default:
		return prim.Vector(0, 0, point.Z)
	}
}
