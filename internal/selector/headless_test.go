//go:build !gui

package selector

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/rs/zerolog"
)

func TestHeadless(t *testing.T) {
	s := New(zerolog.Nop())
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	ctx := context.Background()

	if _, err := s.Rectangle(ctx, img); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Rectangle: got %v, want ErrUnavailable", err)
	}
	if _, err := s.Ellipse(ctx, img); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Ellipse: got %v, want ErrUnavailable", err)
	}
	if _, err := s.Points(ctx, img, 2); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Points: got %v, want ErrUnavailable", err)
	}
}
