//go:build !opencv

package imaging

import (
	"image"
	"image/color"
	"math"
	"reflect"
	"testing"
)

func TestSobelKernel(t *testing.T) {
	tests := []struct {
		name  string
		order int
		ksize int
		want  []float64
	}{
		{"smooth 3", 0, 3, []float64{1, 2, 1}},
		{"derivative 3", 1, 3, []float64{-1, 0, 1}},
		{"second derivative 3", 2, 3, []float64{1, -2, 1}},
		{"smooth 5", 0, 5, []float64{1, 4, 6, 4, 1}},
		{"derivative 5", 1, 5, []float64{-1, -2, 0, 2, 1}},
		{"ksize 1 smooth", 0, 1, []float64{1}},
		{"ksize 1 derivative", 1, 1, []float64{-1, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sobelKernel(tt.order, tt.ksize)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("sobelKernel(%d, %d): got %v, want %v", tt.order, tt.ksize, got, tt.want)
			}
		})
	}
}

func TestSobel_HorizontalRamp(t *testing.T) {
	// f(x, y) = 2x, so d/dx with the 3x3 operator is 2 * 2 * 4 = 16
	f := NewField(10, 6)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			f.Set(x, y, float64(2*x))
		}
	}

	gx := Sobel(f, 1, 0, 3)
	gy := Sobel(f, 0, 1, 3)

	for y := 0; y < f.Height; y++ {
		for x := 1; x < f.Width-1; x++ {
			if gx.At(x, y) != 16 {
				t.Fatalf("gx at (%d,%d): got %v, want 16", x, y, gx.At(x, y))
			}
			if gy.At(x, y) != 0 {
				t.Fatalf("gy at (%d,%d): got %v, want 0", x, y, gy.At(x, y))
			}
		}
	}

	// Reflected borders cancel the derivative at the edge columns
	if gx.At(0, 2) != 0 {
		t.Errorf("gx at left border: got %v, want 0", gx.At(0, 2))
	}
}

func TestLaplacian(t *testing.T) {
	f := NewField(5, 5)
	f.Set(2, 2, 1)

	l := Laplacian(f)
	if l.At(2, 2) != -4 {
		t.Errorf("center: got %v, want -4", l.At(2, 2))
	}
	for _, p := range [][2]int{{1, 2}, {3, 2}, {2, 1}, {2, 3}} {
		if l.At(p[0], p[1]) != 1 {
			t.Errorf("neighbor %v: got %v, want 1", p, l.At(p[0], p[1]))
		}
	}
	if l.At(0, 0) != 0 {
		t.Errorf("corner: got %v, want 0", l.At(0, 0))
	}
}

func TestGaussianKernel1D(t *testing.T) {
	k := gaussianKernel1D(5, 0).Normalized()
	if k.MaxX() != 5 || k.MaxY() != 1 {
		t.Fatalf("kernel size: got %dx%d, want 5x1", k.MaxX(), k.MaxY())
	}

	var sum float64
	for i := 0; i < 5; i++ {
		sum += k.At(i, 0)
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("normalized kernel sum: got %v, want 1", sum)
	}
	if k.At(0, 0) != k.At(4, 0) || k.At(1, 0) != k.At(3, 0) {
		t.Error("kernel not symmetric")
	}
	if k.At(2, 0) <= k.At(1, 0) {
		t.Error("kernel should peak at the center")
	}
}

func TestBlurs_PreserveBounds(t *testing.T) {
	img := createEdgeTestImage(40, 30)

	blurs := map[string]func(size int) (image.Image, error){
		"BoxBlur":         func(size int) (image.Image, error) { return BoxBlur(img, size) },
		"GaussianBlur":    func(size int) (image.Image, error) { return GaussianBlur(img, size, 0) },
		"MedianBlur":      func(size int) (image.Image, error) { return MedianBlur(img, size) },
		"BilateralFilter": func(size int) (image.Image, error) { return BilateralFilter(img, size, 75, 75) },
	}

	for name, blur := range blurs {
		for _, size := range []int{1, 3, 5, 9} {
			out, err := blur(size)
			if err != nil {
				t.Fatalf("%s(%d): %v", name, size, err)
			}
			if b := out.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
				t.Errorf("%s(%d): got %dx%d, want 40x30", name, size, b.Dx(), b.Dy())
			}
		}
	}
}

func TestGaussianBlur_UniformImageUnchanged(t *testing.T) {
	img := createInMemoryImage(20, 20, color.RGBA{100, 150, 200, 255})

	out, err := GaussianBlur(img, 5, 1.5)
	if err != nil {
		t.Fatal(err)
	}
	r, g, b, _ := out.At(10, 10).RGBA()
	got := []int{int(r >> 8), int(g >> 8), int(b >> 8)}
	want := []int{100, 150, 200}
	for i := range want {
		// bild truncates the weighted sum, so allow one step of rounding loss
		if d := want[i] - got[i]; d < 0 || d > 1 {
			t.Errorf("uniform blur changed color: got %v, want %v", got, want)
			break
		}
	}
}

func TestBlur_SoftensEdge(t *testing.T) {
	img := createEdgeTestImage(40, 40)

	// (9, 20) is just outside the black rectangle starting at x=10
	before := Luminance(img).At(9, 20)
	blurred, err := BoxBlur(img, 5)
	if err != nil {
		t.Fatal(err)
	}
	after := Luminance(blurred).At(9, 20)
	if after >= before {
		t.Errorf("box blur should darken pixels next to the rectangle: before %v, after %v", before, after)
	}
}
