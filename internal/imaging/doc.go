// Package imaging provides the pixel-level operations behind the transforms.
//
// The package is organized around three kinds of values:
//   - image.Image for ordinary 8-bit results (blur, crop, color conversion)
//   - Field for single-channel float64 results such as gradients, whose
//     values are signed or exceed the 0-255 range
//   - plain Go structs for measured data (ImageInfo, DominantColorsResult)
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner, X
// increasing rightward and Y increasing downward. For regions, (x1,y1) is
// inclusive and (x2,y2) is exclusive.
//
// # Backends
//
// Convolution kernels (BoxBlur, GaussianBlur, MedianBlur, BilateralFilter,
// Sobel, Laplacian, Canny) come in two builds. The default build is pure Go
// on top of bild. Building with the opencv tag routes the same functions
// through gocv and requires OpenCV 4 at link time. Backend reports which one
// was compiled in.
//
// # Loading
//
// ImageCache loads images from local paths or http(s) URLs, decodes PNG,
// JPEG, GIF, BMP, TIFF and WebP, and caches decoded images by source. It is
// safe for concurrent use.
//
// # Errors
//
// Loading and saving failures are reported with the typed errors of package
// errs (InvalidPathError, ImageDownloadError, ImageDecodeError,
// ImageSaveError) so callers can match them with errors.As.
package imaging
