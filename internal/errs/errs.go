// Package errs defines the typed errors returned by transforms, validators and
// the image loader.
//
// Callers match them with errors.As:
//
//	var argErr *errs.InvalidArgumentError
//	if errors.As(err, &argErr) {
//	    log.Printf("bad argument %s", argErr.Argument)
//	}
package errs

import (
	"fmt"
	"strings"
)

// InvalidArgumentError reports a value rejected by a validator, or an
// argument name the transform does not accept.
type InvalidArgumentError struct {
	Transform string
	Argument  string
	Value     interface{}
	Reason    string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%sinvalid value %v for argument %q: %s",
		prefix(e.Transform), e.Value, e.Argument, e.Reason)
}

// ArgumentNotProvidedError reports a required argument that was neither
// provided nor defaulted. Method is set when the argument is only required by
// the selected method.
type ArgumentNotProvidedError struct {
	Transform string
	Argument  string
	Method    string
}

func (e *ArgumentNotProvidedError) Error() string {
	if e.Method != "" {
		return fmt.Sprintf("%sargument %q must be provided for method %q",
			prefix(e.Transform), e.Argument, e.Method)
	}
	return fmt.Sprintf("%sargument %q must be provided", prefix(e.Transform), e.Argument)
}

// InvalidMethodError reports a method name not declared by a Method validator.
type InvalidMethodError struct {
	Transform string
	Method    string
	Allowed   []string
}

func (e *InvalidMethodError) Error() string {
	return fmt.Sprintf("%sinvalid method %q, must be one of: %s",
		prefix(e.Transform), e.Method, strings.Join(e.Allowed, ", "))
}

// UnknownTransformError is returned by registry lookups.
type UnknownTransformError struct {
	Name string
}

func (e *UnknownTransformError) Error() string {
	return fmt.Sprintf("unknown transform: %s", e.Name)
}

// InvalidPathError reports an image path that does not point at a readable file.
type InvalidPathError struct {
	Path string
	Err  error
}

func (e *InvalidPathError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid image path %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("invalid image path %q", e.Path)
}

func (e *InvalidPathError) Unwrap() error { return e.Err }

// ImageDownloadError reports a failed fetch of an image URL. StatusCode is
// zero when the request never got a response.
type ImageDownloadError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *ImageDownloadError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to download image %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("failed to download image %s: %v", e.URL, e.Err)
}

func (e *ImageDownloadError) Unwrap() error { return e.Err }

// ImageDecodeError reports bytes that could not be decoded as an image.
type ImageDecodeError struct {
	Source string
	Err    error
}

func (e *ImageDecodeError) Error() string {
	return fmt.Sprintf("failed to decode image %s: %v", e.Source, e.Err)
}

func (e *ImageDecodeError) Unwrap() error { return e.Err }

// ImageSaveError reports a failure to encode or write an output image.
type ImageSaveError struct {
	Path string
	Err  error
}

func (e *ImageSaveError) Error() string {
	return fmt.Sprintf("failed to save image %s: %v", e.Path, e.Err)
}

func (e *ImageSaveError) Unwrap() error { return e.Err }

// InvalidSelectionError reports an interactive selection that is empty or
// incomplete.
type InvalidSelectionError struct {
	Reason string
}

func (e *InvalidSelectionError) Error() string {
	return "invalid selection: " + e.Reason
}

func prefix(transform string) string {
	if transform == "" {
		return ""
	}
	return transform + ": "
}
