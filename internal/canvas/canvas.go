// Package canvas implements the pixel buffer and PPM (ASCII P3) codec that
// Camera.Render writes into. It is a pure byte formatter over a pixel grid,
// deliberately kept free of any dependency on the renderer itself so it can
// be unit-tested (and reused by the supersampling downscale) in isolation.
package canvas

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
)

// Canvas is a row-major grid of linear (unclamped) RGB pixels.
type Canvas struct {
	Width, Height int
	pixels        []float64 // 3 floats per pixel: r, g, b
}

// New returns a black canvas of the given size.
func New(width, height int) *Canvas {
	return &Canvas{Width: width, Height: height, pixels: make([]float64, width*height*3)}
}

func (c *Canvas) index(x, y int) int {
	return (y*c.Width + x) * 3
}

// Set writes the pixel at (x, y). Values are not clamped here; clamping
// happens at encode time (PPM) or image-conversion time (ToImage).
func (c *Canvas) Set(x, y int, r, g, b float64) {
	i := c.index(x, y)
	c.pixels[i] = r
	c.pixels[i+1] = g
	c.pixels[i+2] = b
}

// At returns the raw (unclamped) pixel at (x, y).
func (c *Canvas) At(x, y int) (r, g, b float64) {
	i := c.index(x, y)
	return c.pixels[i], c.pixels[i+1], c.pixels[i+2]
}

func toChannel(v float64) uint8 {
	scaled := math.Round(v * 255)
	if scaled < 0 {
		scaled = 0
	}
	if scaled > 255 {
		scaled = 255
	}
	return uint8(scaled)
}

// ToImage converts the canvas to a standard library image.Image, clamping
// each channel to [0,255]. disintegration/imaging (used for supersample
// downscaling) and the HUD caption overlay both operate on this.
func (c *Canvas) ToImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			r, g, b := c.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: toChannel(r), G: toChannel(g), B: toChannel(b), A: 255})
		}
	}
	return img
}

// FromImage builds a Canvas from a decoded image, dividing each channel
// back down to [0,1].
func FromImage(img image.Image) *Canvas {
	bounds := img.Bounds()
	c := New(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			c.Set(x-bounds.Min.X, y-bounds.Min.Y, float64(r)/65535, float64(g)/65535, float64(b)/65535)
		}
	}
	return c
}

const ppmMaxLineLength = 70

// EncodePPM writes c in ASCII P3 PPM format: header "P3\n<w> <h>\n255\n",
// then one clamped-and-rounded integer per channel, red/green/blue per
// pixel, row by row top to bottom, wrapped so no line exceeds 70
// characters. The file ends with a trailing newline.
func EncodePPM(w io.Writer, c *Canvas) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.Width, c.Height); err != nil {
		return fmt.Errorf("canvas: writing PPM header: %w", err)
	}

	lineLen := 0
	writeValue := func(v uint8) error {
		token := fmt.Sprintf("%d", v)
		need := len(token)
		if lineLen > 0 {
			need++ // separating space
		}
		if lineLen+need > ppmMaxLineLength {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
			lineLen = 0
			need = len(token)
		} else if lineLen > 0 {
			if err := bw.WriteByte(' '); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(token); err != nil {
			return err
		}
		lineLen += need
		return nil
	}

	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			r, g, b := c.At(x, y)
			for _, ch := range [3]uint8{toChannel(r), toChannel(g), toChannel(b)} {
				if err := writeValue(ch); err != nil {
					return fmt.Errorf("canvas: writing PPM body: %w", err)
				}
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("canvas: writing PPM body: %w", err)
		}
		lineLen = 0
	}

	return bw.Flush()
}

// DecodePPM reads back an ASCII P3 PPM stream into a Canvas, dividing each
// channel by 255. It is the inverse of EncodePPM, used for round-trip
// testing.
func DecodePPM(r io.Reader) (*Canvas, error) {
	br := bufio.NewReader(r)

	var magic string
	if _, err := fmt.Fscan(br, &magic); err != nil {
		return nil, fmt.Errorf("canvas: reading PPM magic: %w", err)
	}
	if magic != "P3" {
		return nil, fmt.Errorf("canvas: unsupported PPM magic %q", magic)
	}

	var width, height, maxVal int
	if _, err := fmt.Fscan(br, &width, &height, &maxVal); err != nil {
		return nil, fmt.Errorf("canvas: reading PPM header: %w", err)
	}

	c := New(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var r, g, b int
			if _, err := fmt.Fscan(br, &r, &g, &b); err != nil {
				return nil, fmt.Errorf("canvas: reading PPM pixel (%d,%d): %w", x, y, err)
			}
			c.Set(x, y, float64(r)/float64(maxVal), float64(g)/float64(maxVal), float64(b)/float64(maxVal))
		}
	}

	return c, nil
}
