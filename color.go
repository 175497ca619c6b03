package wray

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an (r, g, b) triple in linear space; components are not clamped
// until they reach the canvas.
type Color struct {
	R, G, B float64
}

// Black, White and a handful of named colors used by the canned examples.
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
	Red   = Color{1, 0, 0}
	Green = Color{0, 1, 0}
	Blue  = Color{0, 0, 1}
)

// ColorFromHex parses a "RRGGBB" hex string into a Color, each channel
// divided by 255. Delegates the parsing itself to go-colorful so malformed
// input is rejected the same way any other consumer of that library would
// reject it.
func ColorFromHex(hex string) (Color, error) {
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return Color{}, fmt.Errorf("wray: parsing hex color %q: %w", hex, err)
	}
	return Color{R: c.R, G: c.G, B: c.B}, nil
}

func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

func (c Color) Sub(o Color) Color {
	return Color{c.R - o.R, c.G - o.G, c.B - o.B}
}

func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Mul is the Hadamard (componentwise) product of two colors.
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B}
}

func (c Color) Equal(o Color) bool {
	return eq(c.R, o.R) && eq(c.G, o.G) && eq(c.B, o.B)
}

// Clamped returns c with every channel restricted to [0,1], using
// go-colorful's own clamp rather than a hand-rolled min/max so the rest of
// the renderer's color math stays in the same library's hands as the
// parsing above. Camera.RenderWithProgress calls this on every pixel before
// it reaches the canvas; direct-canvas demos that skip the camera still
// rely on the canvas's own per-channel clamp at encode time.
func (c Color) Clamped() Color {
	cc := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped()
	return Color{R: cc.R, G: cc.G, B: cc.B}
}
