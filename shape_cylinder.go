package wray

import (
	"math"

	"github.com/kestrel-render/wray/internal/prim"
)

// NewCylinder registers an unbounded, uncapped cylinder around the y axis
// and returns its id. Use SetCylinderExtent (or mutate Minimum, Maximum,
// Closed directly via arena.Get/Put) to bound and cap it.
func NewCylinder(arena *Arena) int {
	return arena.Put(newShapeTemplate(KindCylinder))
}

// SetCylinderExtent sets the [minimum, maximum] y-range and whether the
// cylinder (or cone) is capped, re-persisting through the arena.
func SetCylinderExtent(arena *Arena, id int, minimum, maximum float64, closed bool) {
	s := arena.Get(id)
	s.Minimum = minimum
	s.Maximum = maximum
	s.Closed = closed
	arena.Put(s)
	recomputeBoundsUpward(arena, s.ParentID)
}

func cylinderCheckCap(ray prim.Ray, t, radius float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return (x*x + z*z) <= radius*radius
}

func cylinderIntersectCaps(s *Shape, ray prim.Ray, xs []float64) []float64 {
	if !s.Closed || eq(ray.Direction.Y, 0) {
		return xs
	}
	t := (s.Minimum - ray.Origin.Y) / ray.Direction.Y
	if cylinderCheckCap(ray, t, 1) {
		xs = append(xs, t)
	}
	t = (s.Maximum - ray.Origin.Y) / ray.Direction.Y
	if cylinderCheckCap(ray, t, 1) {
		xs = append(xs, t)
	}
	return xs
}

func cylinderLocalIntersect(s *Shape, ray prim.Ray) []float64 {
	var xs []float64

	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z
	if !eq(a, 0) {
		b := 2 * (ray.Origin.X*ray.Direction.X + ray.Origin.Z*ray.Direction.Z)
		c := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1

		disc := b*b - 4*a*c
		if disc < 0 {
			return cylinderIntersectCaps(s, ray, xs)
		}

		sqrtDisc := math.Sqrt(disc)
		t0 := (-b - sqrtDisc) / (2 * a)
		t1 := (-b + sqrtDisc) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		y0 := ray.Origin.Y + t0*ray.Direction.Y
		if s.Minimum < y0 && y0 < s.Maximum {
			xs = append(xs, t0)
		}
		y1 := ray.Origin.Y + t1*ray.Direction.Y
		if s.Minimum < y1 && y1 < s.Maximum {
			xs = append(xs, t1)
		}
	}

	return cylinderIntersectCaps(s, ray, xs)
}

func cylinderLocalNormalAt(s *Shape, point prim.Tuple) prim.Tuple {
	dist := point.X*point.X + point.Z*point.Z
	if dist < 1 && point.Y >= s.Maximum-epsilon {
		return prim.Vector(0, 1, 0)
	}
	if dist < 1 && point.Y <= s.Minimum+epsilon {
		return prim.Vector(0, -1, 0)
	}
	return prim.Vector(point.X, 0, point.Z)
}
