//go:build !opencv

package imaging

import (
	"image"
	"math"
)

// Canny performs Canny edge detection on img.
//
// The result is a grayscale image where white pixels (255) are edges and
// black pixels (0) are not.
//
// # Algorithm
//
//  1. Luminance conversion (ITU-R BT.601 weights)
//  2. 3×3 Sobel gradients, magnitude = |Gx| + |Gy|
//  3. Non-maximum suppression along the quantized gradient direction
//  4. Hysteresis: pixels above high are edges, pixels above low are edges
//     when 8-connected to an edge, everything else is discarded
//
// Thresholds are in gradient units on the 0-255 luminance scale, matching
// OpenCV's Canny.
func Canny(img image.Image, low, high float64) (*image.Gray, error) {
	lum := Luminance(img)
	width, height := lum.Width, lum.Height

	gx := Sobel(lum, 1, 0, 3)
	gy := Sobel(lum, 0, 1, 3)
	magnitude := gx.Combine(gy, func(a, b float64) float64 {
		return math.Abs(a) + math.Abs(b)
	})

	// Non-maximum suppression
	suppressed := NewField(width, height)
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			mag := magnitude.At(x, y)
			if mag <= low {
				continue
			}

			angle := math.Atan2(gy.At(x, y), gx.At(x, y))

			var n1, n2 float64
			switch {
			case (angle >= -math.Pi/8 && angle < math.Pi/8) || angle >= 7*math.Pi/8 || angle < -7*math.Pi/8:
				n1 = magnitude.At(x-1, y)
				n2 = magnitude.At(x+1, y)
			case (angle >= math.Pi/8 && angle < 3*math.Pi/8) || (angle >= -7*math.Pi/8 && angle < -5*math.Pi/8):
				n1 = magnitude.At(x-1, y-1)
				n2 = magnitude.At(x+1, y+1)
			case (angle >= 3*math.Pi/8 && angle < 5*math.Pi/8) || (angle >= -5*math.Pi/8 && angle < -3*math.Pi/8):
				n1 = magnitude.At(x, y-1)
				n2 = magnitude.At(x, y+1)
			default:
				n1 = magnitude.At(x+1, y-1)
				n2 = magnitude.At(x-1, y+1)
			}

			if mag >= n1 && mag > n2 {
				suppressed.Set(x, y, mag)
			}
		}
	}

	// Hysteresis, seeded from strong edges
	result := image.NewGray(image.Rect(0, 0, width, height))
	stack := make([]image.Point, 0, 64)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if suppressed.At(x, y) > high && result.Pix[y*result.Stride+x] == 0 {
				result.Pix[y*result.Stride+x] = 255
				stack = append(stack, image.Pt(x, y))
			}
		}
	}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for ky := -1; ky <= 1; ky++ {
			for kx := -1; kx <= 1; kx++ {
				nx := clamp(p.X+kx, 0, width-1)
				ny := clamp(p.Y+ky, 0, height-1)
				idx := ny*result.Stride + nx
				if result.Pix[idx] == 0 && suppressed.At(nx, ny) > low {
					result.Pix[idx] = 255
					stack = append(stack, image.Pt(nx, ny))
				}
			}
		}
	}

	return result, nil
}
