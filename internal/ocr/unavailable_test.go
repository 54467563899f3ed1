//go:build !tesseract

package ocr

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/rs/zerolog"
)

func TestUnavailable(t *testing.T) {
	engine := New(zerolog.Nop(), "")

	_, err := engine.Recognize(context.Background(), image.NewGray(image.Rect(0, 0, 4, 4)), "eng", LevelWord)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}

	info := engine.Info()
	if info.Available {
		t.Error("engine without tesseract must not report available")
	}
	if info.Backend != "none" {
		t.Errorf("Backend: got %s, want none", info.Backend)
	}
}
