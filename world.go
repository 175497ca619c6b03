package wray

import (
	"math"
	"sort"

	"github.com/kestrel-render/wray/internal/prim"
)

// World is the scene: an object list, a light list, and the recursion bound
// shared by every color_at/shade_hit call.
type World struct {
	Arena        *Arena
	Objects      []int
	Lights       []Light
	MaxRecursion int
}

// NewWorld returns an empty world backed by arena, with the default
// recursion depth of 4.
func NewWorld(arena *Arena) *World {
	return &World{Arena: arena, MaxRecursion: 4}
}

// Intersects returns every object's intersections with ray, sorted
// ascending by t. Stable ordering on ties is not required or guaranteed.
func (w *World) Intersects(ray prim.Ray) []Intersection {
	var xs []Intersection
	for _, id := range w.Objects {
		xs = append(xs, Intersect(w.Arena, id, ray)...)
	}
	sort.Slice(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
	return xs
}

// ColorAt finds the closest hit for ray and shades it, or returns black if
// ray hits nothing.
func (w *World) ColorAt(ray prim.Ray, remaining int) Color {
	xs := w.Intersects(ray)
	hit, ok := Hit(xs)
	if !ok {
		return Black
	}
	comps := PrepareComputations(w.Arena, hit, ray, xs)
	return w.ShadeHit(comps, remaining)
}

// ShadeHit computes the full shaded color at a prepared hit context, mixing
// direct lighting with reflection and refraction. Per original_source's
// world.rs, only the world's first light (w.Lights[0]) is ever shaded or
// shadow-tested; a world with no lights shades with a zero-intensity light.
func (w *World) ShadeHit(comps Computations, remaining int) Color {
	obj := w.Arena.Get(comps.ObjectID)

	var light Light
	if len(w.Lights) > 0 {
		light = w.Lights[0]
	}
	surface := Lighting(w.Arena, comps.ObjectID, obj.Material, w, light, comps.Point, comps.OverPoint, comps.Eyev, comps.Normalv, w.IsShadowed(comps.OverPoint))

	reflected := w.ReflectedColor(comps, remaining)
	refracted := w.RefractedColor(comps, remaining)

	mat := obj.Material
	if mat.Reflective > 0 && mat.Transparency > 0 {
		reflectance := Schlick(comps)
		return surface.Add(reflected.Scale(reflectance)).Add(refracted.Scale(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ReflectedColor returns the contribution of the mirror-reflection ray, or
// black if the surface is non-reflective or the recursion bound is spent.
func (w *World) ReflectedColor(comps Computations, remaining int) Color {
	obj := w.Arena.Get(comps.ObjectID)
	if remaining < 1 || obj.Material.Reflective == 0 {
		return Black
	}
	reflectRay := prim.NewRay(comps.OverPoint, comps.Reflectv)
	color := w.ColorAt(reflectRay, remaining-1)
	return color.Scale(obj.Material.Reflective)
}

// RefractedColor returns the contribution of the transmitted (refracted)
// ray, or black if the surface is opaque, the recursion bound is spent, or
// the incident angle triggers total internal reflection.
func (w *World) RefractedColor(comps Computations, remaining int) Color {
	obj := w.Arena.Get(comps.ObjectID)
	if remaining < 1 || obj.Material.Transparency == 0 {
		return Black
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.Eyev.Dot(comps.Normalv)
	sin2t := nRatio * nRatio * (1 - cosI*cosI)
	if sin2t > 1 {
		return Black
	}

	cosT := math.Sqrt(1 - sin2t)
	direction := comps.Normalv.Scale(nRatio*cosI - cosT).Sub(comps.Eyev.Scale(nRatio))
	refractRay := prim.NewRay(comps.UnderPoint, direction)
	color := w.ColorAt(refractRay, remaining-1)
	return color.Scale(obj.Material.Transparency)
}

// IsShadowed reports whether point is occluded from the world's first
// configured light, per the source's single-shadow-light contract.
func (w *World) IsShadowed(point prim.Tuple) bool {
	if len(w.Lights) == 0 {
		return false
	}
	light := w.Lights[0]
	toLight := light.Position.Sub(point)
	distance := toLight.Magnitude()
	direction := toLight.Normalize()
	ray := prim.NewRay(point, direction)
	return w.rayHitsBefore(ray, distance)
}

// rayHitsBefore reports whether any intersection of ray with the world has
// 0 < t < maxT.
func (w *World) rayHitsBefore(ray prim.Ray, maxT float64) bool {
	xs := w.Intersects(ray)
	for _, x := range xs {
		if x.T > 0 && x.T < maxT {
			return true
		}
	}
	return false
}
