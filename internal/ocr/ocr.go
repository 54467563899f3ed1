package ocr

import (
	"context"
	"errors"
	"image"
	"strings"
)

// ErrUnavailable is returned when the binary was built without Tesseract.
var ErrUnavailable = errors.New("ocr: tesseract is not available in this build (rebuild with -tags tesseract)")

// Level selects the granularity of the reported regions.
type Level string

const (
	LevelWord  Level = "word"
	LevelLine  Level = "line"
	LevelBlock Level = "block"
)

// Levels lists the accepted levels, finest first.
var Levels = []string{string(LevelWord), string(LevelLine), string(LevelBlock)}

// Bounds represents a rectangular bounding box in pixel coordinates.
type Bounds struct {
	X1 int `json:"x1"` // Left edge
	Y1 int `json:"y1"` // Top edge
	X2 int `json:"x2"` // Right edge
	Y2 int `json:"y2"` // Bottom edge
}

// TextRegion is a word, line or block with its location and confidence.
type TextRegion struct {
	Text string `json:"text"`

	// Confidence is the OCR confidence score (0.0 to 1.0).
	Confidence float64 `json:"confidence"`

	Bounds Bounds `json:"bounds"`
}

// Result contains the text recognized in an image.
type Result struct {
	// FullText is all recognized text with original spacing and newlines.
	FullText string `json:"full_text"`

	// Regions may be empty if bounding box extraction fails.
	Regions []TextRegion `json:"regions"`
}

// Info describes the OCR backend compiled into the binary.
type Info struct {
	Available bool   `json:"available"`
	Version   string `json:"version,omitempty"`
	Backend   string `json:"backend"`
}

// Engine recognizes text.
type Engine interface {
	Recognize(ctx context.Context, img image.Image, language string, level Level) (*Result, error)
	Info() Info
}

// box is a backend-neutral bounding box as reported by Tesseract, with the
// confidence on a 0-100 scale.
type box struct {
	rect       image.Rectangle
	word       string
	confidence float64
}

// newResult builds a Result from raw boxes, dropping blank ones and shifting
// bounds by offset.
func newResult(text string, boxes []box, offset image.Point) *Result {
	regions := make([]TextRegion, 0, len(boxes))
	for _, b := range boxes {
		word := strings.TrimSpace(b.word)
		if word == "" {
			continue
		}
		r := b.rect.Add(offset)
		regions = append(regions, TextRegion{
			Text:       word,
			Confidence: b.confidence / 100.0,
			Bounds:     Bounds{X1: r.Min.X, Y1: r.Min.Y, X2: r.Max.X, Y2: r.Max.Y},
		})
	}

	return &Result{
		FullText: text,
		Regions:  regions,
	}
}
