package prim

// Ray is a half-line in object or world space: all points Origin + t*Direction
// for t >= 0.
type Ray struct {
	Origin    Tuple
	Direction Tuple
}

// NewRay builds a ray from a point origin and a vector direction.
func NewRay(origin, direction Tuple) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at distance t along the ray.
func (r Ray) Position(t float64) Tuple {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Transform applies m to both the origin and direction of r.
func (r Ray) Transform(m Matrix) Ray {
	return Ray{
		Origin:    m.MultiplyTuple(r.Origin),
		Direction: m.MultiplyTuple(r.Direction),
	}
}
