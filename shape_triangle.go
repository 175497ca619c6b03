package wray

import (
	"math"

	"github.com/kestrel-render/wray/internal/prim"
)

// NewTriangle registers a triangle with the three given world-space-local
// vertices (edges and the constant face normal are precomputed once) and
// returns its id.
func NewTriangle(arena *Arena, p1, p2, p3 prim.Tuple) int {
	s := newShapeTemplate(KindTriangle)
	s.P1, s.P2, s.P3 = p1, p2, p3
	s.E1 = p2.Sub(p1)
	s.E2 = p3.Sub(p1)
	s.TriNormal = s.E2.Cross(s.E1).Normalize()
	return arena.Put(s)
}

// triangleLocalIntersect implements the Moller-Trumbore algorithm.
func triangleLocalIntersect(s *Shape, ray prim.Ray) []float64 {
	dirCrossE2 := ray.Direction.Cross(s.E2)
	det := s.E1.Dot(dirCrossE2)
	if math.Abs(det) < epsilon {
		return nil
	}

	f := 1.0 / det
	p1ToOrigin := ray.Origin.Sub(s.P1)
	u := f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return nil
	}

	originCrossE1 := p1ToOrigin.Cross(s.E1)
	v := f * ray.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return nil
	}

	t := f * s.E2.Dot(originCrossE1)
	return []float64{t}
}
