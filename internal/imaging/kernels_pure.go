//go:build !opencv

package imaging

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/convolution"
	"github.com/anthonynsimon/bild/effect"
)

// Backend names the kernel implementation compiled into the binary.
const Backend = "bild"

// BoxBlur averages each pixel over a size×size window.
func BoxBlur(img image.Image, size int) (image.Image, error) {
	if size <= 1 {
		return clone.AsRGBA(img), nil
	}
	return blur.Box(img, float64(size/2)), nil
}

// GaussianBlur convolves img with a size×size Gaussian kernel. A sigma of
// zero derives sigma from the kernel size the way OpenCV does.
func GaussianBlur(img image.Image, size int, sigma float64) (image.Image, error) {
	if size <= 1 {
		return clone.AsRGBA(img), nil
	}
	k := gaussianKernel1D(size, sigma).Normalized()

	options := convolution.Options{Bias: 0, Wrap: false, KeepAlpha: true}
	result := convolution.Convolve(img, k, &options)
	return convolution.Convolve(result, k.Transposed(), &options), nil
}

// MedianBlur replaces each pixel with the median of its size×size window.
func MedianBlur(img image.Image, size int) (image.Image, error) {
	if size <= 1 {
		return clone.AsRGBA(img), nil
	}
	return effect.Median(img, float64(size/2)), nil
}

// Sobel computes the dx/dy derivative of f with a ksize×ksize Sobel
// operator. ksize 1 uses a 3-tap derivative with no smoothing.
func Sobel(f *Field, dx, dy, ksize int) *Field {
	kx := sobelKernel(dx, ksize)
	ky := sobelKernel(dy, ksize)
	return convolveSeparable(f, kx, ky)
}

// Laplacian computes the 3×3 aperture Laplacian of f.
func Laplacian(f *Field) *Field {
	out := NewField(f.Width, f.Height)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := f.At(x, y)
			l := f.At(reflect101(x-1, f.Width), y)
			r := f.At(reflect101(x+1, f.Width), y)
			u := f.At(x, reflect101(y-1, f.Height))
			d := f.At(x, reflect101(y+1, f.Height))
			out.Set(x, y, l+r+u+d-4*c)
		}
	}
	return out
}

func gaussianKernel1D(size int, sigma float64) *convolution.Kernel {
	if sigma <= 0 {
		sigma = 0.3*(float64(size-1)*0.5-1) + 0.8
	}
	k := convolution.NewKernel(size, 1)
	r := size / 2
	for i := 0; i < size; i++ {
		x := float64(i - r)
		k.Matrix[i] = math.Exp(-(x * x) / (2 * sigma * sigma))
	}
	return k
}

// sobelKernel returns the 1D Sobel kernel of the given derivative order:
// binomial smoothing taps multiplied by order first differences.
func sobelKernel(order, ksize int) []float64 {
	if ksize == 1 {
		if order == 0 {
			return []float64{1}
		}
		ksize = 3
	}

	k := []float64{1}
	for i := 0; i < ksize-1-order; i++ {
		k = polyMul(k, []float64{1, 1})
	}
	for i := 0; i < order; i++ {
		k = polyMul(k, []float64{-1, 1})
	}
	return k
}

func polyMul(a, b []float64) []float64 {
	out := make([]float64, len(a)+len(b)-1)
	for i, av := range a {
		for j, bv := range b {
			out[i+j] += av * bv
		}
	}
	return out
}

// convolveSeparable correlates f with kx along rows then ky along columns.
func convolveSeparable(f *Field, kx, ky []float64) *Field {
	tmp := NewField(f.Width, f.Height)
	rx := len(kx) / 2
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			var sum float64
			for i, k := range kx {
				sum += k * f.At(reflect101(x+i-rx, f.Width), y)
			}
			tmp.Set(x, y, sum)
		}
	}

	out := NewField(f.Width, f.Height)
	ry := len(ky) / 2
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			var sum float64
			for i, k := range ky {
				sum += k * tmp.At(x, reflect101(y+i-ry, f.Height))
			}
			out.Set(x, y, sum)
		}
	}
	return out
}
