//go:build !tesseract

package ocr

import (
	"context"
	"image"

	"github.com/rs/zerolog"
)

type unavailable struct {
	logger zerolog.Logger
}

// New returns an engine that always fails with ErrUnavailable.
func New(logger zerolog.Logger, _ string) Engine {
	return unavailable{logger: logger}
}

func (u unavailable) Recognize(context.Context, image.Image, string, Level) (*Result, error) {
	u.logger.Debug().Msg("ocr requested in a build without tesseract")
	return nil, ErrUnavailable
}

func (unavailable) Info() Info {
	return Info{Backend: "none"}
}
