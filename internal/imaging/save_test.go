package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/easycv/internal/errs"
)

func TestEncodeResult(t *testing.T) {
	img := createInMemoryImage(12, 7, color.RGBA{0, 255, 0, 255})

	result, err := EncodeResult(img)
	if err != nil {
		t.Fatalf("EncodeResult failed: %v", err)
	}

	if result.Width != 12 || result.Height != 7 {
		t.Errorf("dimensions: got %dx%d, want 12x7", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}

	raw, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("invalid base64: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("invalid PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 12 {
		t.Errorf("decoded width: got %d, want 12", decoded.Bounds().Dx())
	}
}

func TestSave(t *testing.T) {
	img := createEdgeTestImage(30, 20)
	dir := t.TempDir()

	for _, name := range []string{"out.png", "out.jpg", "nested/deeper/out.bmp"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := Save(img, path); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			loaded, err := NewImageCache().Load(path)
			if err != nil {
				t.Fatalf("reloading saved image: %v", err)
			}
			if loaded.Bounds().Dx() != 30 || loaded.Bounds().Dy() != 20 {
				t.Errorf("dimensions: got %dx%d, want 30x20", loaded.Bounds().Dx(), loaded.Bounds().Dy())
			}
		})
	}
}

func TestSave_Errors(t *testing.T) {
	img := createInMemoryImage(2, 2, color.White)
	dir := t.TempDir()

	// A regular file where a directory is expected
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"unsupported extension", filepath.Join(dir, "out.xyz")},
		{"no extension", filepath.Join(dir, "out")},
		{"parent is a file", filepath.Join(blocker, "out.png")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Save(img, tt.path)
			var saveErr *errs.ImageSaveError
			if !errors.As(err, &saveErr) {
				t.Fatalf("expected ImageSaveError, got %v", err)
			}
			if saveErr.Path != tt.path {
				t.Errorf("Path: got %s, want %s", saveErr.Path, tt.path)
			}
		})
	}
}
