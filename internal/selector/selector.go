// Package selector lets a user pick a region of an image interactively.
//
// The Selector interface is what the select transform talks to. The default
// build has no windowing dependency and New returns a selector that fails
// with ErrUnavailable; building with the gui tag swaps in a fyne window.
// Static returns preset answers and is used where no user is present.
package selector

import (
	"context"
	"errors"
	"image"
)

// ErrUnavailable is returned when the binary was built without a GUI.
var ErrUnavailable = errors.New("interactive selection is not available in this build (rebuild with -tags gui)")

// Point is a location in image pixel coordinates.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned box given by its top-left corner and size.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Ellipse is an axis-aligned ellipse given by its bounding box.
type Ellipse struct {
	Center Point
	Width  float64
	Height float64
}

// Selector asks a user to mark a region of img.
//
// Implementations return whatever the user left on screen when the
// selection ended; validating that it is non-empty is up to the caller.
type Selector interface {
	Rectangle(ctx context.Context, img image.Image) (Rect, error)
	Ellipse(ctx context.Context, img image.Image) (Ellipse, error)
	Points(ctx context.Context, img image.Image, n int) ([]Point, error)
}

// Static is a Selector that returns fixed answers.
type Static struct {
	Box   Rect
	Oval  Ellipse
	Marks []Point
	Err   error
}

func (s *Static) Rectangle(ctx context.Context, _ image.Image) (Rect, error) {
	if err := s.check(ctx); err != nil {
		return Rect{}, err
	}
	return s.Box, nil
}

func (s *Static) Ellipse(ctx context.Context, _ image.Image) (Ellipse, error) {
	if err := s.check(ctx); err != nil {
		return Ellipse{}, err
	}
	return s.Oval, nil
}

// Points returns the preset points, at most n of them.
func (s *Static) Points(ctx context.Context, _ image.Image, n int) ([]Point, error) {
	if err := s.check(ctx); err != nil {
		return nil, err
	}
	if len(s.Marks) > n {
		return s.Marks[:n], nil
	}
	return s.Marks, nil
}

func (s *Static) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.Err
}
