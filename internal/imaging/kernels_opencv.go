//go:build opencv

package imaging

import (
	"image"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// Backend names the kernel implementation compiled into the binary.
const Backend = "opencv"

// BoxBlur averages each pixel over a size×size window (cv::blur).
func BoxBlur(img image.Image, size int) (image.Image, error) {
	return withMat(img, func(src gocv.Mat, dst *gocv.Mat) {
		gocv.Blur(src, dst, image.Pt(size, size))
	})
}

// GaussianBlur convolves img with a size×size Gaussian kernel
// (cv::GaussianBlur). A sigma of zero derives sigma from the kernel size.
func GaussianBlur(img image.Image, size int, sigma float64) (image.Image, error) {
	return withMat(img, func(src gocv.Mat, dst *gocv.Mat) {
		gocv.GaussianBlur(src, dst, image.Pt(size, size), sigma, sigma, gocv.BorderDefault)
	})
}

// MedianBlur replaces each pixel with the median of its size×size window
// (cv::medianBlur).
func MedianBlur(img image.Image, size int) (image.Image, error) {
	return withMat(img, func(src gocv.Mat, dst *gocv.Mat) {
		gocv.MedianBlur(src, dst, size)
	})
}

// BilateralFilter smooths img while preserving edges (cv::bilateralFilter).
func BilateralFilter(img image.Image, d int, sigmaColor, sigmaSpace float64) (image.Image, error) {
	return withMat(img, func(src gocv.Mat, dst *gocv.Mat) {
		gocv.BilateralFilter(src, dst, d, sigmaColor, sigmaSpace)
	})
}

// Sobel computes the dx/dy derivative of f (cv::Sobel, CV_64F output).
func Sobel(f *Field, dx, dy, ksize int) *Field {
	return withField(f, func(src gocv.Mat, dst *gocv.Mat) {
		gocv.Sobel(src, dst, gocv.MatTypeCV64F, dx, dy, ksize, 1, 0, gocv.BorderDefault)
	})
}

// Laplacian computes the 3×3 aperture Laplacian of f (cv::Laplacian).
func Laplacian(f *Field) *Field {
	return withField(f, func(src gocv.Mat, dst *gocv.Mat) {
		gocv.Laplacian(src, dst, gocv.MatTypeCV64F, 1, 1, 0, gocv.BorderDefault)
	})
}

// Canny performs Canny edge detection on img (cv::Canny).
func Canny(img image.Image, low, high float64) (*image.Gray, error) {
	if img.Bounds().Empty() {
		return nil, errEmptyImage
	}
	gray, err := gocv.ImageGrayToMatGray(Grayscale(img))
	if err != nil {
		return nil, errors.Wrap(err, "converting image to Mat")
	}
	defer gray.Close()

	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(gray, &edges, float32(low), float32(high))

	out, err := edges.ToImage()
	if err != nil {
		return nil, errors.Wrap(err, "converting Canny result to image")
	}
	if g, ok := out.(*image.Gray); ok {
		return g, nil
	}
	return Grayscale(out), nil
}

// OpenCV asserts on empty Mats instead of returning an error.
var errEmptyImage = errors.New("opencv: empty image")

// withMat runs op on img converted to a BGR Mat and converts the result
// back.
func withMat(img image.Image, op func(src gocv.Mat, dst *gocv.Mat)) (image.Image, error) {
	if img.Bounds().Empty() {
		return nil, errEmptyImage
	}
	src, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, errors.Wrap(err, "converting image to Mat")
	}
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()
	op(src, &dst)

	out, err := dst.ToImage()
	if err != nil {
		return nil, errors.Wrap(err, "converting result to image")
	}
	return out, nil
}

// withField runs op on f stored as a CV_64F Mat and reads the CV_64F result.
func withField(f *Field, op func(src gocv.Mat, dst *gocv.Mat)) *Field {
	src := gocv.NewMatWithSize(f.Height, f.Width, gocv.MatTypeCV64F)
	defer src.Close()
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			src.SetDoubleAt(y, x, f.At(x, y))
		}
	}

	dst := gocv.NewMat()
	defer dst.Close()
	op(src, &dst)

	out := NewField(f.Width, f.Height)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			out.Set(x, y, dst.GetDoubleAt(y, x))
		}
	}
	return out
}
