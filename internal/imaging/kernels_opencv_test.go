//go:build opencv

package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestOpenCV_EmptyImage(t *testing.T) {
	empty := image.NewRGBA(image.Rect(0, 0, 0, 0))

	if _, err := BoxBlur(empty, 3); err == nil {
		t.Error("BoxBlur on an empty image should fail")
	}
	if _, err := GaussianBlur(empty, 3, 0); err == nil {
		t.Error("GaussianBlur on an empty image should fail")
	}
	if _, err := MedianBlur(empty, 3); err == nil {
		t.Error("MedianBlur on an empty image should fail")
	}
	if _, err := BilateralFilter(empty, 5, 75, 75); err == nil {
		t.Error("BilateralFilter on an empty image should fail")
	}
	if _, err := Canny(empty, 50, 150); err == nil {
		t.Error("Canny on an empty image should fail")
	}
}

func TestOpenCV_BlurPreservesBounds(t *testing.T) {
	img := createInMemoryImage(40, 30, color.RGBA{100, 150, 200, 255})

	out, err := GaussianBlur(img, 5, 0)
	if err != nil {
		t.Fatal(err)
	}
	if b := out.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Errorf("got %dx%d, want 40x30", b.Dx(), b.Dy())
	}
}
