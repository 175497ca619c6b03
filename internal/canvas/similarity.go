package canvas

import (
	"fmt"
	"math"
)

// similarityWindow is the side length of the sliding window Similarity
// averages SSIM over; windows are square and non-overlapping is not
// required, but the canvas must be at least this large in both dimensions.
const similarityWindow = 8

// ssimK1, ssimK2 are the stabilizing constants from the SSIM paper (Wang et
// al. 2004), scaled for a [0,1] dynamic range.
const (
	ssimK1 = 0.01
	ssimK2 = 0.03
	ssimC1 = ssimK1 * ssimK1
	ssimC2 = ssimK2 * ssimK2
)

// Similarity reports the mean structural-similarity index between a and b,
// computed per window over each color channel and averaged across the
// three channels and every window. It operates directly on each Canvas's
// own linear float64 pixels, with no intermediate image.Image conversion.
// Used by the supersampling downscale's own tests to confirm a downscale
// pass preserves image structure rather than scrambling it.
func Similarity(a, b *Canvas) (float64, error) {
	if a.Width != b.Width || a.Height != b.Height {
		return 0, fmt.Errorf("canvas: comparing mismatched sizes (%dx%d vs %dx%d)", a.Width, a.Height, b.Width, b.Height)
	}
	if a.Width < similarityWindow || a.Height < similarityWindow {
		return 0, fmt.Errorf("canvas: %dx%d canvas is smaller than the %dx%d similarity window", a.Width, a.Height, similarityWindow, similarityWindow)
	}

	kernel := gaussianKernel(similarityWindow, 1.5)

	var sum float64
	var n int
	for y := 0; y <= a.Height-similarityWindow; y++ {
		for x := 0; x <= a.Width-similarityWindow; x++ {
			sum += windowSSIM(a, b, x, y, kernel)
			n++
		}
	}
	return sum / float64(n), nil
}

// windowSSIM computes the SSIM of the similarityWindow x similarityWindow
// block starting at (x0, y0), averaged over the red, green and blue
// channels.
func windowSSIM(a, b *Canvas, x0, y0 int, kernel []float64) float64 {
	var aMean, bMean [3]float64
	for dy := 0; dy < similarityWindow; dy++ {
		for dx := 0; dx < similarityWindow; dx++ {
			w := kernel[dy*similarityWindow+dx]
			ar, ag, ab := a.At(x0+dx, y0+dy)
			br, bg, bb := b.At(x0+dx, y0+dy)
			aMean[0] += w * ar
			aMean[1] += w * ag
			aMean[2] += w * ab
			bMean[0] += w * br
			bMean[1] += w * bg
			bMean[2] += w * bb
		}
	}

	var aVar, bVar, covar [3]float64
	for dy := 0; dy < similarityWindow; dy++ {
		for dx := 0; dx < similarityWindow; dx++ {
			w := kernel[dy*similarityWindow+dx]
			ar, ag, ab := a.At(x0+dx, y0+dy)
			br, bg, bb := b.At(x0+dx, y0+dy)
			for i, av := range [3]float64{ar, ag, ab} {
				bv := [3]float64{br, bg, bb}[i]
				aVar[i] += w * square(av-aMean[i])
				bVar[i] += w * square(bv-bMean[i])
				covar[i] += w * (av - aMean[i]) * (bv - bMean[i])
			}
		}
	}

	var total float64
	for i := range aMean {
		num := (2*aMean[i]*bMean[i] + ssimC1) * (2*covar[i] + ssimC2)
		den := (aMean[i]*aMean[i] + bMean[i]*bMean[i] + ssimC1) * (aVar[i] + bVar[i] + ssimC2)
		total += num / den
	}
	return total / 3
}

func square(v float64) float64 { return v * v }

// gaussianKernel builds a normalized size x size Gaussian weight matrix
// with the given standard deviation, centered on the block.
func gaussianKernel(size int, stddev float64) []float64 {
	kernel := make([]float64, size*size)
	center := float64(size-1) / 2
	var total float64
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) - center
			dy := float64(y) - center
			w := math.Exp(-(dx*dx + dy*dy) / (2 * stddev * stddev))
			kernel[y*size+x] = w
			total += w
		}
	}
	for i := range kernel {
		kernel[i] /= total
	}
	return kernel
}
