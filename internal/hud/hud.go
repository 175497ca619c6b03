// Package hud burns a small one-line caption into the bottom-left corner
// of a rendered image (SPEC_FULL.md §3/§4.14), off by default. Grounded on
// golang.org/x/image/font/basicfont and golang.org/x/image/math/fixed:
// unlike fogleman/gg or golang/freetype (gmittal-go-raytracer's text-
// rendering dependencies), basicfont ships its bitmap glyphs as Go source
// and needs no external .ttf asset, which this sandboxed environment and
// the retrieval pack do not provide.
package hud

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const margin = 6

// Caption draws text in the bottom-left corner of img (which must support
// draw.Image, as image.RGBA does) in white basicfont glyphs over a thin
// black backing rectangle so the text stays legible against any
// background.
func Caption(img draw.Image, text string) {
	bounds := img.Bounds()
	face := basicfont.Face7x13
	textWidth := font.MeasureString(face, text).Ceil()
	lineHeight := face.Height

	boxW := textWidth + 2*margin
	boxH := lineHeight + 2*margin
	boxX0 := bounds.Min.X
	boxY0 := bounds.Max.Y - boxH
	if boxY0 < bounds.Min.Y {
		boxY0 = bounds.Min.Y
	}

	backing := image.Rect(boxX0, boxY0, boxX0+boxW, boxY0+boxH).Intersect(bounds)
	draw.Draw(img, backing, image.NewUniform(color.RGBA{0, 0, 0, 200}), image.Point{}, draw.Over)

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(boxX0 + margin),
			Y: fixed.I(boxY0 + margin + face.Ascent),
		},
	}
	drawer.DrawString(text)
}
