// Package ocr recognizes text in images with Tesseract.
//
// The Tesseract binding (gosseract) needs cgo and the tesseract and
// leptonica libraries, so it is only compiled with the tesseract build tag:
//
//	go build -tags tesseract ./...
//
// Other builds get an Engine that reports ErrUnavailable.
//
// # Prerequisites
//
// Tesseract must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr libtesseract-dev
//   - macOS: brew install tesseract
//
// Language data files are required for each language:
//   - Ubuntu/Debian: apt-get install tesseract-ocr-eng (for English)
//   - Other languages: tesseract-ocr-<lang> packages
//
// A custom tessdata directory can be set with the ocr.tessdata config key.
//
// # Levels
//
// Recognize reports regions at one of three granularities: LevelWord,
// LevelLine and LevelBlock. FullText always holds the whole recognized text.
//
// If bounding box extraction fails (e.g., Tesseract version mismatch),
// Recognize still returns the text with an empty Regions slice.
package ocr
