//go:build tesseract

package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	"github.com/otiai10/gosseract/v2"
	"github.com/rs/zerolog"
)

var pageLevels = map[Level]gosseract.PageIteratorLevel{
	LevelWord:  gosseract.RIL_WORD,
	LevelLine:  gosseract.RIL_TEXTLINE,
	LevelBlock: gosseract.RIL_BLOCK,
}

type tesseract struct {
	logger   zerolog.Logger
	tessdata string
}

// New returns a Tesseract engine. tessdata overrides the language data
// directory when non-empty.
func New(logger zerolog.Logger, tessdata string) Engine {
	return &tesseract{logger: logger, tessdata: tessdata}
}

func (t *tesseract) Recognize(ctx context.Context, img image.Image, language string, level Level) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ril, ok := pageLevels[level]
	if !ok {
		return nil, fmt.Errorf("unknown ocr level: %s", level)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if t.tessdata != "" {
		if err := client.SetTessdataPrefix(t.tessdata); err != nil {
			return nil, fmt.Errorf("failed to set tessdata path: %w", err)
		}
	}
	if err := client.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	raw, err := client.GetBoundingBoxes(ril)
	if err != nil {
		t.logger.Warn().Err(err).Str("level", string(level)).Msg("bounding boxes unavailable")
		return newResult(text, nil, image.Point{}), nil
	}

	boxes := make([]box, 0, len(raw))
	for _, b := range raw {
		boxes = append(boxes, box{rect: b.Box, word: b.Word, confidence: b.Confidence})
	}

	// Tesseract reports coordinates relative to the encoded image, which
	// always starts at the origin.
	return newResult(text, boxes, img.Bounds().Min), nil
}

func (t *tesseract) Info() Info {
	return Info{
		Available: true,
		Version:   gosseract.Version(),
		Backend:   "gosseract",
	}
}
