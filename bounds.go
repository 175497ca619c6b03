package wray

import (
	"math"

	"github.com/kestrel-render/wray/internal/prim"
)

// Bounds is an axis-aligned bounding box in some shape's own local space.
// Every Group owns one, recomputed whenever a child is added or a child's
// transform changes; it gates group traversal so a ray that misses the
// group's overall extent never has to test each child individually.
//
// The spec models this as an AABB plus a Cube shape whose transform maps
// the unit cube onto it. This implementation tests the slab directly
// against Min/Max instead of materializing that Cube shape: groups such as
// an unbounded plane or an open cylinder have an infinite half-extent along
// some axis, and a translation+scaling matrix built from an infinite scale
// factor cannot be inverted by the general cofactor/adjugate method without
// producing NaNs. Testing the AABB's slab bounds directly sidesteps that
// without changing the traversal-gating behavior the spec describes.
type Bounds struct {
	Min, Max prim.Tuple
}

// UnionBounds returns the smallest Bounds containing both a and b.
func UnionBounds(a, b Bounds) Bounds {
	return Bounds{
		Min: prim.Point(
			math.Min(a.Min.X, b.Min.X),
			math.Min(a.Min.Y, b.Min.Y),
			math.Min(a.Min.Z, b.Min.Z),
		),
		Max: prim.Point(
			math.Max(a.Max.X, b.Max.X),
			math.Max(a.Max.Y, b.Max.Y),
			math.Max(a.Max.Z, b.Max.Z),
		),
	}
}

// TransformBy returns b mapped through m, by transforming all eight corners
// and taking their componentwise extrema.
func (b Bounds) TransformBy(m prim.Matrix) Bounds {
	corners := [8]prim.Tuple{
		prim.Point(b.Min.X, b.Min.Y, b.Min.Z),
		prim.Point(b.Min.X, b.Min.Y, b.Max.Z),
		prim.Point(b.Min.X, b.Max.Y, b.Min.Z),
		prim.Point(b.Min.X, b.Max.Y, b.Max.Z),
		prim.Point(b.Max.X, b.Min.Y, b.Min.Z),
		prim.Point(b.Max.X, b.Min.Y, b.Max.Z),
		prim.Point(b.Max.X, b.Max.Y, b.Min.Z),
		prim.Point(b.Max.X, b.Max.Y, b.Max.Z),
	}
	out := Bounds{
		Min: prim.Point(math.Inf(1), math.Inf(1), math.Inf(1)),
		Max: prim.Point(math.Inf(-1), math.Inf(-1), math.Inf(-1)),
	}
	for _, c := range corners {
		tc := m.MultiplyTuple(c)
		out.Min.X = math.Min(out.Min.X, tc.X)
		out.Min.Y = math.Min(out.Min.Y, tc.Y)
		out.Min.Z = math.Min(out.Min.Z, tc.Z)
		out.Max.X = math.Max(out.Max.X, tc.X)
		out.Max.Y = math.Max(out.Max.Y, tc.Y)
		out.Max.Z = math.Max(out.Max.Z, tc.Z)
	}
	return out
}

func axisSlab(origin, direction, min, max float64) (float64, float64) {
	tminNumerator := min - origin
	tmaxNumerator := max - origin

	var tmin, tmax float64
	if direction != 0 {
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

// Hits reports whether ray (already in the bounds' own coordinate space)
// intersects the box at all, using the same per-axis slab test as Cube.
func (b Bounds) Hits(ray prim.Ray) bool {
	xtmin, xtmax := axisSlab(ray.Origin.X, ray.Direction.X, b.Min.X, b.Max.X)
	ytmin, ytmax := axisSlab(ray.Origin.Y, ray.Direction.Y, b.Min.Y, b.Max.Y)
	ztmin, ztmax := axisSlab(ray.Origin.Z, ray.Direction.Z, b.Min.Z, b.Max.Z)

	tmin := math.Max(xtmin, math.Max(ytmin, ztmin))
	tmax := math.Min(xtmax, math.Min(ytmax, ztmax))
	return tmin <= tmax
}
