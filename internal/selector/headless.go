//go:build !gui

package selector

import (
	"context"
	"image"

	"github.com/rs/zerolog"
)

// New returns the interactive selector for this build. Without the gui tag
// every call fails with ErrUnavailable.
func New(logger zerolog.Logger) Selector {
	return headless{logger: logger}
}

type headless struct {
	logger zerolog.Logger
}

func (h headless) Rectangle(context.Context, image.Image) (Rect, error) {
	h.logger.Debug().Msg("rectangle selection requested in headless build")
	return Rect{}, ErrUnavailable
}

func (h headless) Ellipse(context.Context, image.Image) (Ellipse, error) {
	h.logger.Debug().Msg("ellipse selection requested in headless build")
	return Ellipse{}, ErrUnavailable
}

func (h headless) Points(context.Context, image.Image, int) ([]Point, error) {
	h.logger.Debug().Msg("point selection requested in headless build")
	return nil, ErrUnavailable
}
