package ocr

import (
	"image"
	"testing"
)

func TestNewResult(t *testing.T) {
	boxes := []box{
		{rect: image.Rect(10, 5, 40, 20), word: "Hello", confidence: 91},
		{rect: image.Rect(45, 5, 80, 20), word: "  ", confidence: 12},
		{rect: image.Rect(85, 5, 120, 20), word: "World\n", confidence: 87.5},
	}

	result := newResult("Hello World\n", boxes, image.Point{})

	if result.FullText != "Hello World\n" {
		t.Errorf("FullText: got %q", result.FullText)
	}
	if len(result.Regions) != 2 {
		t.Fatalf("expected 2 regions (blank dropped), got %d", len(result.Regions))
	}

	first := result.Regions[0]
	if first.Text != "Hello" {
		t.Errorf("Text: got %q, want Hello", first.Text)
	}
	if first.Confidence != 0.91 {
		t.Errorf("Confidence: got %v, want 0.91", first.Confidence)
	}
	if first.Bounds != (Bounds{X1: 10, Y1: 5, X2: 40, Y2: 20}) {
		t.Errorf("Bounds: got %+v", first.Bounds)
	}

	if result.Regions[1].Text != "World" {
		t.Errorf("trailing whitespace should be trimmed, got %q", result.Regions[1].Text)
	}
}

func TestNewResult_Offset(t *testing.T) {
	boxes := []box{{rect: image.Rect(10, 20, 30, 40), word: "x", confidence: 50}}

	result := newResult("x", boxes, image.Pt(100, 50))

	want := Bounds{X1: 110, Y1: 70, X2: 130, Y2: 90}
	if result.Regions[0].Bounds != want {
		t.Errorf("Bounds: got %+v, want %+v", result.Regions[0].Bounds, want)
	}
}

func TestNewResult_NoBoxes(t *testing.T) {
	result := newResult("text only", nil, image.Point{})
	if result.Regions == nil {
		t.Error("Regions should be an empty slice, not nil, so it encodes as []")
	}
	if len(result.Regions) != 0 {
		t.Errorf("expected no regions, got %d", len(result.Regions))
	}
}

func TestLevels(t *testing.T) {
	want := []string{"word", "line", "block"}
	if len(Levels) != len(want) {
		t.Fatalf("Levels: got %v, want %v", Levels, want)
	}
	for i := range want {
		if Levels[i] != want[i] {
			t.Errorf("Levels[%d]: got %s, want %s", i, Levels[i], want[i])
		}
	}
}
