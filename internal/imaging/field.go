package imaging

import (
	"image"
	"image/color"
	"math"
)

// Field is a single-channel float64 image, row-major. Gradient operators
// produce signed values that do not fit an 8-bit image, so they return
// Fields instead.
type Field struct {
	Width  int
	Height int
	Data   []float64
}

// NewField allocates a zeroed width×height field.
func NewField(width, height int) *Field {
	return &Field{Width: width, Height: height, Data: make([]float64, width*height)}
}

// At returns the value at (x, y).
func (f *Field) At(x, y int) float64 {
	return f.Data[y*f.Width+x]
}

// Set stores v at (x, y).
func (f *Field) Set(x, y int, v float64) {
	f.Data[y*f.Width+x] = v
}

// Map returns a new field with fn applied to every value.
func (f *Field) Map(fn func(v float64) float64) *Field {
	out := NewField(f.Width, f.Height)
	for i, v := range f.Data {
		out.Data[i] = fn(v)
	}
	return out
}

// Combine returns a new field with fn applied to matching values of f and g.
// Both fields must have the same dimensions.
func (f *Field) Combine(g *Field, fn func(a, b float64) float64) *Field {
	out := NewField(f.Width, f.Height)
	for i := range f.Data {
		out.Data[i] = fn(f.Data[i], g.Data[i])
	}
	return out
}

// FieldStats summarizes the values of a field.
type FieldStats struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
}

// Stats returns min, max, mean and population variance.
func (f *Field) Stats() FieldStats {
	if len(f.Data) == 0 {
		return FieldStats{}
	}

	s := FieldStats{Min: math.Inf(1), Max: math.Inf(-1)}
	var sum float64
	for _, v := range f.Data {
		sum += v
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	s.Mean = sum / float64(len(f.Data))

	var sq float64
	for _, v := range f.Data {
		d := v - s.Mean
		sq += d * d
	}
	s.Variance = sq / float64(len(f.Data))
	return s
}

// Gray8 converts the field to an 8-bit image by rounding and clamping each
// value to 0-255.
func (f *Field) Gray8() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, f.Width, f.Height))
	for i, v := range f.Data {
		img.Pix[i] = clampUint8(v)
	}
	return img
}

// Normalized maps the field's value range linearly onto 0-255. A constant
// field maps to black.
func (f *Field) Normalized() *image.Gray {
	s := f.Stats()
	img := image.NewGray(image.Rect(0, 0, f.Width, f.Height))
	span := s.Max - s.Min
	if span == 0 {
		return img
	}
	for i, v := range f.Data {
		img.Pix[i] = clampUint8((v - s.Min) / span * 255)
	}
	return img
}

// Luminance converts img to a 0-255 luminance field using ITU-R BT.601
// weights (0.299*R + 0.587*G + 0.114*B). Gray images are copied as is.
func Luminance(img image.Image) *Field {
	bounds := img.Bounds()
	f := NewField(bounds.Dx(), bounds.Dy())

	if g, ok := img.(*image.Gray); ok {
		for y := 0; y < f.Height; y++ {
			for x := 0; x < f.Width; x++ {
				f.Set(x, y, float64(g.GrayAt(x+bounds.Min.X, y+bounds.Min.Y).Y))
			}
		}
		return f
	}

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := color.NRGBAModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.NRGBA)
			f.Set(x, y, 0.299*float64(c.R)+0.587*float64(c.G)+0.114*float64(c.B))
		}
	}
	return f
}

// Grayscale returns img as a single-channel 8-bit image. Gray input is
// returned unchanged.
func Grayscale(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	return Luminance(img).Gray8()
}

func clampUint8(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// clamp constrains an integer value to the range [lo, hi].
func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// reflect101 maps an out-of-range index back into [0, n) by mirroring
// around the edge pixel, the border mode OpenCV uses by default.
func reflect101(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		}
		if i >= n {
			i = 2*n - 2 - i
		}
	}
	return i
}
