package wray

import (
	"math"

	"github.com/kestrel-render/wray/internal/prim"
)

// NewCone registers an unbounded, uncapped double-napped cone around the y
// axis and returns its id. Use SetCylinderExtent to bound and cap it (cones
// and cylinders share the same minimum/maximum/closed fields and mutator).
func NewCone(arena *Arena) int {
	return arena.Put(newShapeTemplate(KindCone))
}

func coneIntersectCaps(s *Shape, ray prim.Ray, xs []float64) []float64 {
	if !s.Closed || eq(ray.Direction.Y, 0) {
		return xs
	}
	t := (s.Minimum - ray.Origin.Y) / ray.Direction.Y
	if cylinderCheckCap(ray, t, math.Abs(s.Minimum)) {
		xs = append(xs, t)
	}
	t = (s.Maximum - ray.Origin.Y) / ray.Direction.Y
	if cylinderCheckCap(ray, t, math.Abs(s.Maximum)) {
		xs = append(xs, t)
	}
	return xs
}

func coneLocalIntersect(s *Shape, ray prim.Ray) []float64 {
	var xs []float64

	a := ray.Direction.X*ray.Direction.X - ray.Direction.Y*ray.Direction.Y + ray.Direction.Z*ray.Direction.Z
	b := 2 * (ray.Origin.X*ray.Direction.X - ray.Origin.Y*ray.Direction.Y + ray.Origin.Z*ray.Direction.Z)
	c := ray.Origin.X*ray.Origin.X - ray.Origin.Y*ray.Origin.Y + ray.Origin.Z*ray.Origin.Z

	if eq(a, 0) {
		if !eq(b, 0) {
			t := -c / (2 * b)
			y := ray.Origin.Y + t*ray.Direction.Y
			if s.Minimum < y && y < s.Maximum {
				xs = append(xs, t)
			}
		}
		return coneIntersectCaps(s, ray, xs)
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return coneIntersectCaps(s, ray, xs)
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

	return coneIntersectCaps(s, ray, xs)
}

func coneLocalNormalAt(s *Shape, point prim.Tuple) prim.Tuple {
	dist := point.X*point.X + point.Z*point.Z
	if dist < math.Abs(s.Maximum) && point.Y >= s.Maximum-epsilon {
		return prim.Vector(0, 1, 0)
	}
	if dist < math.Abs(s.Minimum) && point.Y <= s.Minimum+epsilon {
		return prim.Vector(0, -1, 0)
	}
	y := math.Sqrt(point.X*point.X + point.Z*point.Z)
	if point.Y > 0 {
		y = -y
	}
	return prim.Vector(point.X, y, point.Z)
}
