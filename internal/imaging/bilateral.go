//go:build !opencv

package imaging

import (
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/clone"
)

// BilateralFilter smooths img while preserving edges. Each output pixel is
// the average of a circular neighbourhood of diameter d, weighted by spatial
// distance (sigmaSpace) and by colour distance (sigmaColor, on the 0-255
// scale). A non-positive d derives the diameter from sigmaSpace.
//
// bild has no bilateral filter; with the opencv build tag this call goes to
// cv::bilateralFilter instead.
func BilateralFilter(img image.Image, d int, sigmaColor, sigmaSpace float64) (image.Image, error) {
	src := clone.AsRGBA(img)
	if sigmaColor <= 0 || sigmaSpace <= 0 {
		return src, nil
	}

	radius := d / 2
	if d <= 0 {
		radius = int(math.Round(sigmaSpace * 1.5))
	}
	if radius < 1 {
		return src, nil
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))

	spaceCoeff := -0.5 / (sigmaSpace * sigmaSpace)
	colorCoeff := -0.5 / (sigmaColor * sigmaColor)

	// Precompute spatial weights over the circular window
	type tap struct {
		dx, dy int
		w      float64
	}
	taps := make([]tap, 0, (2*radius+1)*(2*radius+1))
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			r2 := float64(dx*dx + dy*dy)
			if r2 > float64(radius*radius) {
				continue
			}
			taps = append(taps, tap{dx, dy, math.Exp(r2 * spaceCoeff)})
		}
	}

	at := func(x, y int) color.RGBA {
		return src.RGBAAt(bounds.Min.X+x, bounds.Min.Y+y)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			center := at(x, y)
			var sumR, sumG, sumB, sumW float64

			for _, t := range taps {
				c := at(reflect101(x+t.dx, width), reflect101(y+t.dy, height))
				diff := math.Abs(float64(c.R)-float64(center.R)) +
					math.Abs(float64(c.G)-float64(center.G)) +
					math.Abs(float64(c.B)-float64(center.B))
				w := t.w * math.Exp(diff*diff*colorCoeff)

				sumR += w * float64(c.R)
				sumG += w * float64(c.G)
				sumB += w * float64(c.B)
				sumW += w
			}

			dst.SetRGBA(x, y, color.RGBA{
				R: clampUint8(sumR / sumW),
				G: clampUint8(sumG / sumW),
				B: clampUint8(sumB / sumW),
				A: center.A,
			})
		}
	}

	return dst, nil
}
