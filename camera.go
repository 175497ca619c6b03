package wray

import (
	"math"

	"github.com/kestrel-render/wray/internal/canvas"
	"github.com/kestrel-render/wray/internal/prim"
	"github.com/kestrel-render/wray/internal/progress"
)

// Camera generates one ray per pixel from a field-of-view and view
// transform, and drives the (only) hot loop: rendering is embarrassingly
// parallel per pixel, but Render itself is sequential.
type Camera struct {
	HSize, VSize int
	FieldOfView  float64
	Transform    prim.Matrix

	halfWidth, halfHeight, pixelSize float64
}

// NewCamera builds a camera for an hsize x vsize viewport at the given
// field of view (radians), with an identity view transform.
func NewCamera(hsize, vsize int, fov float64) *Camera {
	c := &Camera{HSize: hsize, VSize: vsize, FieldOfView: fov, Transform: prim.Identity4()}

	halfView := math.Tan(fov / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = (c.halfWidth * 2) / float64(hsize)

	return c
}

// RayForPixel returns the world-space ray through the center of pixel (x, y).
func (c *Camera) RayForPixel(x, y int) prim.Ray {
	xoffset := (float64(x) + 0.5) * c.pixelSize
	yoffset := (float64(y) + 0.5) * c.pixelSize

	worldX := c.halfWidth - xoffset
	worldY := c.halfHeight - yoffset

	inv := c.Transform.Inverse()
	pixel := inv.MultiplyTuple(prim.Point(worldX, worldY, -1))
	origin := inv.MultiplyTuple(prim.Point(0, 0, 0))
	direction := pixel.Sub(origin).Normalize()

	return prim.NewRay(origin, direction)
}

// Render shoots one ray per pixel through world and returns the resulting
// canvas. Each pixel is independent; this is the only place a concurrent
// implementation would need to fan out.
func (c *Camera) Render(world *World) *canvas.Canvas {
	return c.RenderWithProgress(world, progress.Noop)
}

// RenderWithProgress is Render plus a row-by-row report to reporter,
// letting the CLI surface a percentage line without changing Render's own
// literal one-ray-per-pixel contract.
func (c *Camera) RenderWithProgress(world *World, reporter progress.Reporter) *canvas.Canvas {
	img := canvas.New(c.HSize, c.VSize)
	for y := 0; y < c.VSize; y++ {
		for x := 0; x < c.HSize; x++ {
			ray := c.RayForPixel(x, y)
			color := world.ColorAt(ray, world.MaxRecursion).Clamped()
			img.Set(x, y, color.R, color.G, color.B)
		}
		reporter.Report(y+1, c.VSize)
	}
	reporter.Done()
	return img
}
