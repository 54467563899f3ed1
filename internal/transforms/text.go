package transforms

import (
	"context"
	"image"

	"github.com/ironsheep/easycv/internal/ocr"
	"github.com/ironsheep/easycv/internal/validators"
)

// OCR recognizes text and reports it with per-region bounding boxes.
type OCR struct {
	base
	engine ocr.Engine
}

func NewOCR(engine ocr.Engine) *OCR {
	return &OCR{
		base: base{
			name:        "ocr",
			description: "Extract text from an image with Tesseract, returning the full text and region bounding boxes",
			schema: validators.Schema{
				"language": validators.NewType[string]().WithDefault("eng"),
				"level":    validators.NewOption(ocr.Levels...).WithDefault(0),
			},
		},
		engine: engine,
	}
}

func (t *OCR) Process(ctx context.Context, img image.Image, args validators.Args) (*Output, error) {
	result, err := t.engine.Recognize(ctx, img, args.String("language"), ocr.Level(args.String("level")))
	if err != nil {
		return nil, err
	}
	return dataOutput(result), nil
}
