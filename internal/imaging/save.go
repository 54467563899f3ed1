package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/easycv/internal/errs"
)

// ImageResult carries an output image encoded as base64 PNG.
type ImageResult struct {
	// Width of the image in pixels.
	Width int `json:"width"`

	// Height of the image in pixels.
	Height int `json:"height"`

	// ImageBase64 is the image encoded as base64 PNG.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png".
	MimeType string `json:"mime_type"`
}

// EncodeResult encodes img as a base64 PNG ImageResult.
func EncodeResult(img image.Image) (*ImageResult, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, &errs.ImageSaveError{Path: "<memory>", Err: err}
	}

	return &ImageResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// Save writes img to path. The format is chosen from the extension
// (.png, .jpg, .jpeg, .gif, .tif, .tiff, .bmp). Missing parent directories
// are created.
func Save(img image.Image, path string) error {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return &errs.ImageSaveError{Path: path, Err: err}
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &errs.ImageSaveError{Path: path, Err: err}
		}
	}
	if err := imaging.Save(img, path); err != nil {
		return &errs.ImageSaveError{Path: path, Err: err}
	}
	return nil
}
