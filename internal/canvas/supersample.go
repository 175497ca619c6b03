package canvas

import "github.com/disintegration/imaging"

// Downscale resizes a canvas rendered at factor-times the target resolution
// back down to (c.Width/factor, c.Height/factor) using a Lanczos filter,
// giving free antialiasing for supersampled renders. factor=1 is a no-op
// passthrough.
func Downscale(c *Canvas, factor int) *Canvas {
	if factor <= 1 {
		return c
	}
	targetW := c.Width / factor
	targetH := c.Height / factor
	resized := imaging.Resize(c.ToImage(), targetW, targetH, imaging.Lanczos)
	return FromImage(resized)
}
