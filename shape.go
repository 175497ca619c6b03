package wray

import (
	"math"
	"sort"

	"github.com/kestrel-render/wray/internal/prim"
)

// ShapeKind is the closed set of shape variants. Shapes are modeled as a
// tagged sum type rather than as open interface-based polymorphism: the
// capability set is small and fixed, so a single struct with a Kind tag and
// variant-specific fields avoids a proliferation of near-empty interface
// implementations for the common transform/material/parent plumbing.
type ShapeKind int

const (
	KindSphere ShapeKind = iota
	KindPlane
	KindCube
	KindCylinder
	KindCone
	KindTriangle
	KindGroup
	KindCSG
	KindTest
)

// CSGOperation is the closed set of constructive-solid-geometry combinators.
type CSGOperation int

const (
	CSGUnion CSGOperation = iota
	CSGIntersection
	CSGDifference
)

// Shape is the single record type for every shape variant. Fields not used
// by a given Kind are left at their zero value.
type Shape struct {
	ID        int
	Kind      ShapeKind
	ParentID  int
	Transform prim.Matrix
	Material  Material

	// Cylinder, Cone.
	Minimum, Maximum float64
	Closed           bool

	// Triangle.
	P1, P2, P3 prim.Tuple
	E1, E2     prim.Tuple
	TriNormal  prim.Tuple

	// Group.
	Children []int
	Bounds   Bounds

	// CSG.
	Operation   CSGOperation
	Left, Right int

	// TestShape: records the last ray it was asked to intersect, in its own
	// local space, so tests can assert on how callers transform rays.
	SavedRay prim.Ray
}

func newShapeTemplate(kind ShapeKind) Shape {
	return Shape{
		ID:        unregistered,
		Kind:      kind,
		ParentID:  noParent,
		Transform: prim.Identity4(),
		Material:  DefaultMaterial(),
		Minimum:   math.Inf(-1),
		Maximum:   math.Inf(1),
		Left:      noParent,
		Right:     noParent,
	}
}

// SetTransform installs a new local-to-world transform for id, re-persisting
// through the arena, and recomputes any ancestor group's bounds.
func SetTransform(arena *Arena, id int, m prim.Matrix) {
	s := arena.Get(id)
	s.Transform = m
	arena.Put(s)
	recomputeBoundsUpward(arena, s.ParentID)
}

// SetMaterial installs a new material for id.
func SetMaterial(arena *Arena, id int, m Material) {
	s := arena.Get(id)
	s.Material = m
	arena.Put(s)
}

// AddChild appends childID to the group at groupID, sets the child's
// parent_id, and recomputes the group's bounds (and any of its own
// ancestors' bounds in turn).
func AddChild(arena *Arena, groupID, childID int) {
	g := arena.Get(groupID)
	if g.Kind != KindGroup {
		panic("wray: AddChild called on a non-group shape")
	}
	g.Children = append(g.Children, childID)
	arena.Put(g)

	child := arena.Get(childID)
	child.ParentID = groupID
	arena.Put(child)

	recomputeBoundsUpward(arena, groupID)
}

func recomputeBoundsUpward(arena *Arena, id int) {
	if id == noParent {
		return
	}
	g := arena.Get(id)
	if g.Kind != KindGroup {
		return
	}
	var b Bounds
	first := true
	for _, childID := range g.Children {
		childBounds := objectSpaceBounds(arena, childID)
		child := arena.Get(childID)
		transformed := childBounds.TransformBy(child.Transform)
		if first {
			b = transformed
			first = false
		} else {
			b = UnionBounds(b, transformed)
		}
	}
	if first {
		b = Bounds{Min: prim.Point(0, 0, 0), Max: prim.Point(0, 0, 0)}
	}
	g.Bounds = b
	arena.Put(g)
	recomputeBoundsUpward(arena, g.ParentID)
}

// objectSpaceBounds returns a shape's AABB in its own local space, before
// its transform is applied. For a group this is the recursive union of its
// children's bounds (each already transformed by the child's transform,
// since that union is exactly what the group's own Bounds field holds).
func objectSpaceBounds(arena *Arena, id int) Bounds {
	s := arena.Get(id)
	switch s.Kind {
	case KindSphere, KindCube:
		return Bounds{Min: prim.Point(-1, -1, -1), Max: prim.Point(1, 1, 1)}
	case KindPlane:
		return Bounds{
			Min: prim.Point(math.Inf(-1), -epsilon, math.Inf(-1)),
			Max: prim.Point(math.Inf(1), epsilon, math.Inf(1)),
		}
	case KindCylinder, KindCone:
		return Bounds{
			Min: prim.Point(-1, s.Minimum, -1),
			Max: prim.Point(1, s.Maximum, 1),
		}
	case KindTriangle:
		min := prim.Point(
			math.Min(s.P1.X, math.Min(s.P2.X, s.P3.X)),
			math.Min(s.P1.Y, math.Min(s.P2.Y, s.P3.Y)),
			math.Min(s.P1.Z, math.Min(s.P2.Z, s.P3.Z)),
		)
		max := prim.Point(
			math.Max(s.P1.X, math.Max(s.P2.X, s.P3.X)),
			math.Max(s.P1.Y, math.Max(s.P2.Y, s.P3.Y)),
			math.Max(s.P1.Z, math.Max(s.P2.Z, s.P3.Z)),
		)
		return Bounds{Min: min, Max: max}
	case KindGroup:
		return s.Bounds
	case KindCSG:
		left := objectSpaceBounds(arena, s.Left).TransformBy(arena.Get(s.Left).Transform)
		right := objectSpaceBounds(arena, s.Right).TransformBy(arena.Get(s.Right).Transform)
		return UnionBounds(left, right)
	default:
		return Bounds{Min: prim.Point(-1, -1, -1), Max: prim.Point(1, 1, 1)}
	}
}

// Intersection pairs a ray parameter with the id of the shape it hit.
type Intersection struct {
	T        float64
	ObjectID int
}

// Intersect tests ray (given in id's parent coordinate space, or world space
// for a root-level shape) against shape id and its descendants, returning
// an unordered slice of intersections in id's own local space's callers'
// frame (i.e. object ids are absolute, t values are relative to the ray as
// passed in).
func Intersect(arena *Arena, id int, ray prim.Ray) []Intersection {
	s := arena.Get(id)
	localRay := ray.Transform(s.Transform.Inverse())

	switch s.Kind {
	case KindGroup:
		if !s.Bounds.Hits(localRay) {
			return nil
		}
		var xs []Intersection
		for _, childID := range s.Children {
			xs = append(xs, Intersect(arena, childID, localRay)...)
		}
		return xs
	case KindCSG:
		left := Intersect(arena, s.Left, localRay)
		right := Intersect(arena, s.Right, localRay)
		xs := append(left, right...)
		sort.Slice(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
		return filterCSG(arena, s, xs)
	default:
		ts := localIntersect(&s, localRay)
		out := make([]Intersection, len(ts))
		for i, t := range ts {
			out[i] = Intersection{T: t, ObjectID: id}
		}
		return out
	}
}

// includes reports whether targetID is containerID itself, or (recursively,
// for groups and CSG nodes) one of its descendants.
func includes(arena *Arena, containerID, targetID int) bool {
	if containerID == targetID {
		return true
	}
	c := arena.Get(containerID)
	switch c.Kind {
	case KindGroup:
		for _, childID := range c.Children {
			if includes(arena, childID, targetID) {
				return true
			}
		}
	case KindCSG:
		return includes(arena, c.Left, targetID) || includes(arena, c.Right, targetID)
	}
	return false
}

// csgIncludes implements Table 1: whether a hit belonging (or not) to the
// left subtree is kept, given the current (inl, inr) toggle state.
func csgIncludes(op CSGOperation, lhit, inl, inr bool) bool {
	switch op {
	case CSGUnion:
		return (lhit && !inr) || (!lhit && !inl)
	case CSGIntersection:
		return (lhit && inr) || (!lhit && inl)
	case CSGDifference:
		return (lhit && !inr) || (!lhit && inl)
	default:
		return false
	}
}

func filterCSG(arena *Arena, csg Shape, xs []Intersection) []Intersection {
	inl, inr := false, false
	result := make([]Intersection, 0, len(xs))
	for _, x := range xs {
		lhit := includes(arena, csg.Left, x.ObjectID)
		if csgIncludes(csg.Operation, lhit, inl, inr) {
			result = append(result, x)
		}
		if lhit {
			inl = !inl
		} else {
			inr = !inr
		}
	}
	return result
}

// WorldToObject maps a world-space point down through id's parent chain
// into id's own local space.
func WorldToObject(arena *Arena, id int, point prim.Tuple) prim.Tuple {
	s := arena.Get(id)
	if s.ParentID != noParent {
		point = WorldToObject(arena, s.ParentID, point)
	}
	return s.Transform.Inverse().MultiplyTuple(point)
}

// NormalToWorld maps a local-space normal up through id's parent chain into
// world space, renormalizing at every level.
func NormalToWorld(arena *Arena, id int, normal prim.Tuple) prim.Tuple {
	s := arena.Get(id)
	n := s.Transform.Inverse().Transpose().MultiplyTuple(normal)
	n.W = 0
	n = n.Normalize()
	if s.ParentID != noParent {
		n = NormalToWorld(arena, s.ParentID, n)
	}
	return n
}

// NormalAt computes the shading normal at a world-space point on shape id:
// map down to object space, compute the local normal, apply any normal
// perturbation, then map back up to world space.
func NormalAt(arena *Arena, id int, worldPoint prim.Tuple) prim.Tuple {
	s := arena.Get(id)
	localPoint := WorldToObject(arena, id, worldPoint)
	localNormal := localNormalAt(&s, localPoint)
	if s.Material.Perturbation != nil {
		localNormal = localNormal.Add(perturbNormal(s.Material.Perturbation, localPoint)).Normalize()
	}
	return NormalToWorld(arena, id, localNormal)
}

func perturbNormal(p *Perturbation, point prim.Tuple) prim.Tuple {
	switch p.Kind {
	case PerturbationSinY:
		return prim.Vector(0, math.Sin(point.Y*p.Factor), 0)
	case PerturbationPerlin:
		field := newPerlin(p.Seed)
		n := field.sample(point.X, point.Y, point.Z) * p.Factor
		return prim.Vector(n, n, n)
	default:
		return prim.Vector(0, 0, 0)
	}
}

// localIntersect dispatches to the per-variant local intersection test. The
// ray is already in the shape's own local space.
func localIntersect(s *Shape, ray prim.Ray) []float64 {
	switch s.Kind {
	case KindSphere:
		return sphereLocalIntersect(ray)
	case KindPlane:
		return planeLocalIntersect(ray)
	case KindCube:
		return cubeLocalIntersect(ray)
	case KindCylinder:
		return cylinderLocalIntersect(s, ray)
	case KindCone:
		return coneLocalIntersect(s, ray)
	case KindTriangle:
		return triangleLocalIntersect(s, ray)
	case KindTest:
		s.SavedRay = ray
		return nil
	default:
		return nil
	}
}

// localNormalAt dispatches to the per-variant local normal computation. CSG
// and Group are structural-only: a correctly assembled scene never asks a
// composite node for its normal directly, only a leaf reached through the
// world_to_object/normal_to_world pipeline, so both panic rather than
// returning a meaningless sphere-like fallback.
func localNormalAt(s *Shape, point prim.Tuple) prim.Tuple {
	switch s.Kind {
	case KindSphere:
		return sphereLocalNormalAt(point)
	case KindPlane:
		return planeLocalNormalAt()
	case KindCube:
		return cubeLocalNormalAt(point)
	case KindCylinder:
		return cylinderLocalNormalAt(s, point)
	case KindCone:
		return coneLocalNormalAt(s, point)
	case KindTriangle:
		return s.TriNormal
	case KindTest:
		return prim.Vector(point.X, point.Y, point.Z).Normalize()
	case KindGroup, KindCSG:
		panic("wray: invariant_violated: normal_at called on a structural (group/CSG) shape")
	default:
		panic("wray: invariant_violated: normal_at called on unknown shape kind")
	}
}
