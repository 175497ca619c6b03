package wray

import (
	"math"
	"math/rand"

	"github.com/kestrel-render/wray/internal/prim"
)

// LightKind distinguishes point lights (binary shadow test) from area
// lights (soft-shadow sampling). The two share a struct but are evaluated
// by genuinely distinct code paths in Lighting, per the source's own
// behavior: preserved verbatim rather than unified into one averaged path.
type LightKind int

const (
	LightPoint LightKind = iota
	LightArea
)

// defaultAreaLightSamples is the default sample-ray count for area lights.
const defaultAreaLightSamples = 100

// Light is a point or area light source. Area lights carry their own RNG,
// seeded explicitly by the caller, rather than drawing from a process-wide
// generator: a given seed and render order reproduce the same samples. The
// generator is shared by every copy of the Light and advances with each
// sample, so results depend on the order pixels are shaded, and it is not
// safe for concurrent use.
type Light struct {
	Kind        LightKind
	Position    prim.Tuple
	Intensity   Color
	Radius      float64
	SampleCount int

	rng *rand.Rand
}

// NewPointLight builds a point light.
func NewPointLight(position prim.Tuple, intensity Color) Light {
	return Light{Kind: LightPoint, Position: position, Intensity: intensity}
}

// NewAreaLight builds an area light sampling sampleCount rays (0 defaults
// to 100) within a ball of radius around position, using seed to construct
// its own explicit random source.
func NewAreaLight(position prim.Tuple, intensity Color, radius float64, sampleCount int, seed int64) Light {
	if sampleCount == 0 {
		sampleCount = defaultAreaLightSamples
	}
	return Light{
		Kind:        LightArea,
		Position:    position,
		Intensity:   intensity,
		Radius:      radius,
		SampleCount: sampleCount,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

// sampleInBall draws a point uniformly distributed within a ball of the
// given radius centered on the origin: an isotropic direction scaled by the
// cube root of a uniform [0,1) draw, which gives uniform volume density
// (not just uniform on the direction).
func sampleInBall(rng *rand.Rand, radius float64) prim.Tuple {
	dir := prim.Vector(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()).Normalize()
	scale := math.Cbrt(rng.Float64()) * radius
	return dir.Scale(scale)
}

// computeAverageRaysTo casts l.SampleCount rays from point toward points
// sampled in a ball of radius l.Radius around l.Position, and returns a
// gray Color whose channels equal (sampleCount-occluded)/sampleCount: the
// fraction of samples that reached the light unoccluded.
func (l *Light) computeAverageRaysTo(world *World, point prim.Tuple) Color {
	occluded := 0
	for i := 0; i < l.SampleCount; i++ {
		target := l.Position.Add(sampleInBall(l.rng, l.Radius))
		toLight := target.Sub(point)
		distance := toLight.Magnitude()
		direction := toLight.Normalize()
		ray := prim.NewRay(point, direction)
		if world.rayHitsBefore(ray, distance) {
			occluded++
		}
	}
	avg := float64(l.SampleCount-occluded) / float64(l.SampleCount)
	return Color{avg, avg, avg}
}

// Lighting implements the Phong shading equation, with point and area
// lights following distinct code paths per the source behavior: the point
// light branch early-exits to ambient-only on a back-facing normal or hard
// shadow, while the area light branch always proceeds to diffuse/specular
// using its softened intensity.
func Lighting(arena *Arena, objectID int, mat Material, world *World, light Light, point, overPoint, eyev, normalv prim.Tuple, inShadow bool) Color {
	surfaceColor := mat.Color
	if mat.Pattern != nil {
		surfaceColor = mat.Pattern.ColorAtObject(arena, objectID, point)
	}

	effective := surfaceColor.Mul(light.Intensity)
	lightv := light.Position.Sub(point).Normalize()
	ambient := effective.Scale(mat.Ambient)

	var lightIntensity Color

	switch light.Kind {
	case LightArea:
		lightIntensity = light.Intensity.Mul(light.computeAverageRaysTo(world, overPoint))
	default:
		if inShadow || lightv.Dot(normalv) < 0 {
			return ambient
		}
		lightIntensity = light.Intensity
	}

	diffuse := Black
	specular := Black

	lightDotNormal := lightv.Dot(normalv)
	if lightDotNormal > 0 {
		diffuse = surfaceColor.Mul(lightIntensity).Scale(mat.Diffuse * lightDotNormal)

		reflectv := lightv.Neg().Reflect(normalv)
		reflectDotEye := reflectv.Dot(eyev)
		if reflectDotEye > 0 {
			factor := math.Pow(reflectDotEye, mat.Shininess)
			specular = lightIntensity.Scale(mat.Specular * factor)
		}
	}

	return ambient.Add(diffuse).Add(specular)
}
