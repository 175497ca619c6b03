package wray

import (
	"math"

	"github.com/kestrel-render/wray/internal/prim"
)

// Computations is the precomputed shading context built from a hit, the ray
// that produced it, and the full sorted intersection list (needed to stack
// refractive indices through overlapping transparent objects).
type Computations struct {
	T        float64
	ObjectID int

	Point      prim.Tuple
	OverPoint  prim.Tuple
	UnderPoint prim.Tuple
	Eyev       prim.Tuple
	Normalv    prim.Tuple
	Reflectv   prim.Tuple
	Inside     bool

	N1, N2 float64
}

// Hit returns the intersection with the smallest strictly-positive t, or
// false if none exists. It scans the whole slice rather than returning on
// the first positive t encountered, so it is correct whether or not the
// caller has sorted xs first (World.intersects always sorts before calling
// this, so the scan is defense-in-depth rather than a behavior change for
// any caller honoring that contract).
func Hit(xs []Intersection) (Intersection, bool) {
	var best Intersection
	found := false
	for _, x := range xs {
		if x.T <= 0 {
			continue
		}
		if !found || x.T < best.T {
			best = x
			found = true
		}
	}
	return best, found
}

// PrepareComputations builds the shading context for hit, given the ray
// that produced it and the full sorted list of intersections xs (used to
// walk the refractive-index container stack).
func PrepareComputations(arena *Arena, hit Intersection, ray prim.Ray, xs []Intersection) Computations {
	c := Computations{
		T:        hit.T,
		ObjectID: hit.ObjectID,
	}
	c.Point = ray.Position(hit.T)
	c.Eyev = ray.Direction.Neg()
	c.Normalv = NormalAt(arena, hit.ObjectID, c.Point)

	if c.Normalv.Dot(c.Eyev) < 0 {
		c.Inside = true
		c.Normalv = c.Normalv.Neg()
	}

	c.Reflectv = ray.Direction.Reflect(c.Normalv)
	c.OverPoint = c.Point.Add(c.Normalv.Scale(epsilon))
	c.UnderPoint = c.Point.Sub(c.Normalv.Scale(epsilon))

	c.N1, c.N2 = refractiveIndices(arena, hit, xs)

	return c
}

func refractiveIndices(arena *Arena, hit Intersection, xs []Intersection) (n1, n2 float64) {
	var containers []int

	isHit := func(x Intersection) bool {
		return x.T == hit.T && x.ObjectID == hit.ObjectID
	}

	for _, x := range xs {
		if isHit(x) {
			if len(containers) == 0 {
				n1 = 1.0
			} else {
				n1 = arena.Get(containers[len(containers)-1]).Material.RefractiveIndex
			}
		}

		containers = toggleContainer(containers, x.ObjectID)

		if isHit(x) {
			if len(containers) == 0 {
				n2 = 1.0
			} else {
				n2 = arena.Get(containers[len(containers)-1]).Material.RefractiveIndex
			}
			break
		}
	}

	return n1, n2
}

func toggleContainer(containers []int, id int) []int {
	for i, c := range containers {
		if c == id {
			return append(containers[:i], containers[i+1:]...)
		}
	}
	return append(containers, id)
}

// Schlick returns the Fresnel reflectance approximation for c, including
// the total-internal-reflection case.
func Schlick(c Computations) float64 {
	cos := c.Eyev.Dot(c.Normalv)

	if c.N1 > c.N2 {
		n := c.N1 / c.N2
		sin2t := n * n * (1 - cos*cos)
		if sin2t > 1 {
			return 1.0
		}
		cos = math.Sqrt(1 - sin2t)
	}

	r0 := math.Pow((c.N1-c.N2)/(c.N1+c.N2), 2)
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
