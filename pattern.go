package wray

import (
	"math"

	"github.com/kestrel-render/wray/internal/prim"
)

// PatternKind is the closed set of procedural color fields, mirroring the
// closed shape-kind sum type: a small fixed capability set, not open
// inheritance.
type PatternKind int

const (
	PatternStripe PatternKind = iota
	PatternRing
	PatternChecker
	PatternGradient
	PatternBlended
	PatternPerturbed
	PatternTest
)

// Pattern is a procedural color field with its own transform, evaluated in
// an object's local space.
type Pattern struct {
	Kind      PatternKind
	Transform prim.Matrix

	A, B prim.Tuple // encode colors as tuples (x,y,z) so patterns compose without a separate Color import cycle concern; see colorOf/tupleOf below

	Sub1, Sub2 *Pattern // Blended's two operands; Perturbed's single wrapped sub-pattern (Sub1)
	NoiseField *perlin
	Factor     float64
}

func colorOf(t prim.Tuple) Color { return Color{R: t.X, G: t.Y, B: t.Z} }
func tupleOf(c Color) prim.Tuple { return prim.Tuple{X: c.R, Y: c.G, Z: c.B} }

// NewStripePattern alternates between a and b along x.
func NewStripePattern(a, b Color) *Pattern {
	return &Pattern{Kind: PatternStripe, Transform: prim.Identity4(), A: tupleOf(a), B: tupleOf(b)}
}

// NewRingPattern alternates between a and b along sqrt(x^2+z^2).
func NewRingPattern(a, b Color) *Pattern {
	return &Pattern{Kind: PatternRing, Transform: prim.Identity4(), A: tupleOf(a), B: tupleOf(b)}
}

// NewCheckerPattern alternates between a and b along floor(x)+floor(y)+floor(z).
func NewCheckerPattern(a, b Color) *Pattern {
	return &Pattern{Kind: PatternChecker, Transform: prim.Identity4(), A: tupleOf(a), B: tupleOf(b)}
}

// NewGradientPattern linearly interpolates from a to b along fractional x.
func NewGradientPattern(a, b Color) *Pattern {
	return &Pattern{Kind: PatternGradient, Transform: prim.Identity4(), A: tupleOf(a), B: tupleOf(b)}
}

// NewBlendedPattern averages the colors of two sub-patterns at each point.
func NewBlendedPattern(p1, p2 *Pattern) *Pattern {
	return &Pattern{Kind: PatternBlended, Transform: prim.Identity4(), Sub1: p1, Sub2: p2}
}

// NewPerturbedPattern wraps sub, perturbing the sample point by a Perlin
// noise field scaled by factor before delegating.
func NewPerturbedPattern(sub *Pattern, factor float64, seed int64) *Pattern {
	return &Pattern{Kind: PatternPerturbed, Transform: prim.Identity4(), Sub1: sub, Factor: factor, NoiseField: newPerlin(seed)}
}

// NewTestPattern returns the point itself as a color, useful for asserting
// the pattern/shape transform composition in tests.
func NewTestPattern() *Pattern {
	return &Pattern{Kind: PatternTest, Transform: prim.Identity4()}
}

// SetTransform returns a copy of p with its transform replaced.
func (p *Pattern) SetTransform(m prim.Matrix) *Pattern {
	cp := *p
	cp.Transform = m
	return &cp
}

// ColorAt evaluates the pattern at a point already in the pattern's own
// local space.
func (p *Pattern) ColorAt(point prim.Tuple) Color {
	switch p.Kind {
	case PatternStripe:
		if int(math.Floor(point.X))%2 == 0 {
			return colorOf(p.A)
		}
		return colorOf(p.B)
	case PatternRing:
		r := math.Sqrt(point.X*point.X + point.Z*point.Z)
		if int(math.Floor(r))%2 == 0 {
			return colorOf(p.A)
		}
		return colorOf(p.B)
	case PatternChecker:
		sum := math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z)
		if int(sum)%2 == 0 {
			return colorOf(p.A)
		}
		return colorOf(p.B)
	case PatternGradient:
		a, b := colorOf(p.A), colorOf(p.B)
		frac := point.X - math.Floor(point.X)
		return a.Add(b.Sub(a).Scale(frac))
	case PatternBlended:
		c1 := p.Sub1.colorAtLocalChain(point)
		c2 := p.Sub2.colorAtLocalChain(point)
		return c1.Add(c2).Scale(0.5)
	case PatternPerturbed:
		n := p.NoiseField.sample(point.X, point.Y, point.Z) * p.Factor
		perturbed := prim.Point(point.X+n, point.Y+n, point.Z+n)
		return p.Sub1.colorAtLocalChain(perturbed)
	case PatternTest:
		return Color{point.X, point.Y, point.Z}
	default:
		return Black
	}
}

// colorAtLocalChain applies p's own transform before evaluating, used when a
// composite pattern (blended/perturbed) delegates to a sub-pattern: the
// sub-pattern's transform still applies relative to the same local point.
func (p *Pattern) colorAtLocalChain(objectPoint prim.Tuple) Color {
	localPoint := p.Transform.Inverse().MultiplyTuple(objectPoint)
	return p.ColorAt(localPoint)
}

// ColorAtObject evaluates the pattern for a shape at a world-space point:
// color_at(patternTransform^-1 * shapeTransform^-1 * world_point).
func (p *Pattern) ColorAtObject(arena *Arena, shapeID int, worldPoint prim.Tuple) Color {
	objectPoint := WorldToObject(arena, shapeID, worldPoint)
	return p.colorAtLocalChain(objectPoint)
}
