package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorSpaces lists the targets accepted by ConvertColor.
var ColorSpaces = []string{"hsv", "hsl", "lab", "luv", "xyz", "bgr"}

// ConvertColor re-encodes img in another color space, packing the three
// components into the R, G and B channels with the same 8-bit scaling
// OpenCV's cvtColor uses:
//
//	hsv: H/2, S*255, V*255
//	hsl: H/2, S*255, L*255
//	lab: L*255/100, a+128, b+128
//	luv: L*255/100, (u+134)*255/354, (v+140)*255/262
//	xyz: X*255, Y*255, Z*255
//	bgr: channels swapped
//
// Alpha is preserved.
func ConvertColor(img image.Image, space string) (*image.NRGBA, error) {
	var pack func(c colorful.Color) (float64, float64, float64)

	switch space {
	case "hsv":
		pack = func(c colorful.Color) (float64, float64, float64) {
			h, s, v := c.Hsv()
			return h / 2, s * 255, v * 255
		}
	case "hsl":
		pack = func(c colorful.Color) (float64, float64, float64) {
			h, s, l := c.Hsl()
			return h / 2, s * 255, l * 255
		}
	case "lab":
		pack = func(c colorful.Color) (float64, float64, float64) {
			l, a, b := c.Lab()
			return l * 255, a*100 + 128, b*100 + 128
		}
	case "luv":
		pack = func(c colorful.Color) (float64, float64, float64) {
			l, u, v := c.Luv()
			return l * 255, (u*100 + 134) * 255 / 354, (v*100 + 140) * 255 / 262
		}
	case "xyz":
		pack = func(c colorful.Color) (float64, float64, float64) {
			x, y, z := c.Xyz()
			return x * 255, y * 255, z * 255
		}
	case "bgr":
		pack = func(c colorful.Color) (float64, float64, float64) {
			return c.B * 255, c.G * 255, c.R * 255
		}
	default:
		return nil, fmt.Errorf("unknown color space: %s", space)
	}

	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			n := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			c := colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}
			a, b, d := pack(c)
			dst.SetNRGBA(x-bounds.Min.X, y-bounds.Min.Y, color.NRGBA{
				R: clampUint8(a),
				G: clampUint8(b),
				B: clampUint8(d),
				A: n.A,
			})
		}
	}
	return dst, nil
}

// FilterChannels zeroes the given RGB channel indices (0=R, 1=G, 2=B).
// Alpha is preserved.
func FilterChannels(img image.Image, channels []int) *image.NRGBA {
	var drop [3]bool
	for _, c := range channels {
		if c >= 0 && c < 3 {
			drop[c] = true
		}
	}

	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			n := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if drop[0] {
				n.R = 0
			}
			if drop[1] {
				n.G = 0
			}
			if drop[2] {
				n.B = 0
			}
			dst.SetNRGBA(x-bounds.Min.X, y-bounds.Min.Y, n)
		}
	}
	return dst
}

// ParseHexColor parses "#RRGGBB" or "#RGB" into an opaque color.
func ParseHexColor(hex string) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// HSLColor represents a color in HSL space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// ColorFrequency represents a color and its occurrence frequency in an image.
type ColorFrequency struct {
	Hex        string   `json:"hex"`        // Hex color "#RRGGBB" (quantized)
	Percentage float64  `json:"percentage"` // Percentage of pixels with this color (0-100)
	RGB        RGBColor `json:"rgb"`        // RGB components (quantized)
	HSL        HSLColor `json:"hsl"`        // HSL of the quantized color
}

// DominantColorsResult contains the most frequently occurring colors in an image.
//
// Colors are sorted by frequency in descending order (most common first).
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// DominantColors extracts the count most common colors from img.
//
// # Color Quantization
//
// Similar colors are grouped by dividing each component by 16 and rounding
// down, so #F0F0F0 and #FAFAFA both count as #F0F0F0. Ties are broken by
// hex value so the result is deterministic.
func DominantColors(img image.Image, count int) *DominantColorsResult {
	bounds := img.Bounds()

	counts := make(map[RGBColor]int)
	total := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			n := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			key := RGBColor{R: n.R / 16 * 16, G: n.G / 16 * 16, B: n.B / 16 * 16}
			counts[key]++
			total++
		}
	}

	colors := make([]ColorFrequency, 0, len(counts))
	for rgb, cnt := range counts {
		c := colorful.Color{R: float64(rgb.R) / 255, G: float64(rgb.G) / 255, B: float64(rgb.B) / 255}
		h, s, l := c.Hsl()
		if math.IsNaN(h) {
			h = 0
		}

		colors = append(colors, ColorFrequency{
			Hex:        fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B),
			Percentage: float64(cnt) / float64(total) * 100,
			RGB:        rgb,
			HSL:        HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)},
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}

	return &DominantColorsResult{Colors: colors}
}
