package imaging

import (
	"image"
	"image/color"
	"testing"
)

func mustCanny(t *testing.T, img image.Image, low, high float64) *image.Gray {
	t.Helper()

	edges, err := Canny(img, low, high)
	if err != nil {
		t.Fatalf("Canny(%v, %v): %v", low, high, err)
	}
	return edges
}

func TestCanny(t *testing.T) {
	img := createEdgeTestImage(100, 100)

	edges := mustCanny(t, img, 100, 200)

	if edges.Bounds().Dx() != 100 || edges.Bounds().Dy() != 100 {
		t.Errorf("dimensions: got %dx%d, want 100x100", edges.Bounds().Dx(), edges.Bounds().Dy())
	}

	edgeCount := 0
	for _, v := range edges.Pix {
		switch v {
		case 255:
			edgeCount++
		case 0:
		default:
			t.Fatalf("edge image must be binary, found value %d", v)
		}
	}

	if edgeCount == 0 {
		t.Error("expected edges around the black rectangle")
	}

	// Far from the rectangle border there should be no edges
	if edges.GrayAt(50, 50).Y != 0 {
		t.Error("center of the rectangle should not be an edge")
	}
	if edges.GrayAt(5, 5).Y != 0 {
		t.Error("background corner should not be an edge")
	}
}

func TestCanny_UniformImage(t *testing.T) {
	img := createInMemoryImage(50, 50, color.RGBA{128, 128, 128, 255})

	edges := mustCanny(t, img, 50, 150)
	for i, v := range edges.Pix {
		if v != 0 {
			t.Fatalf("uniform image produced edge pixel at index %d", i)
		}
	}
}

func TestCanny_HighThresholdSuppressesEdges(t *testing.T) {
	// A faint step: 100 -> 110 gives a Sobel L1 magnitude of at most 40
	img := createInMemoryImage(40, 40, color.Gray{100})
	for y := 0; y < 40; y++ {
		for x := 20; x < 40; x++ {
			img.Set(x, y, color.Gray{110})
		}
	}

	loose := mustCanny(t, img, 10, 20)
	strict := mustCanny(t, img, 100, 200)

	count := func(pix []uint8) int {
		n := 0
		for _, v := range pix {
			if v == 255 {
				n++
			}
		}
		return n
	}

	if count(loose.Pix) == 0 {
		t.Error("low thresholds should detect the faint step")
	}
	if count(strict.Pix) != 0 {
		t.Error("high thresholds should suppress the faint step")
	}
}

func TestCanny_SmallImage(t *testing.T) {
	img := createInMemoryImage(3, 3, color.White)
	edges := mustCanny(t, img, 50, 150)
	if edges.Bounds().Dx() != 3 || edges.Bounds().Dy() != 3 {
		t.Errorf("dimensions: got %dx%d, want 3x3", edges.Bounds().Dx(), edges.Bounds().Dy())
	}
}
