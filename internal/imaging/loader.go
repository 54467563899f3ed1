package imaging

import (
	"bytes"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder

	"github.com/ironsheep/easycv/internal/errs"
)

// DefaultDownloadTimeout bounds a single image download.
const DefaultDownloadTimeout = 30 * time.Second

type cachedImage struct {
	img    image.Image
	format string
	size   int64
}

// ImageCache provides thread-safe caching of loaded images to avoid redundant
// disk reads and downloads.
//
// Images are keyed by the exact source string passed to Load, which is either
// a file path or an http(s) URL. Cached images remain in memory until
// removed via Evict() or Clear().
//
//	cache := imaging.NewImageCache()
//	img, err := cache.Load("https://example.com/lena.png")
type ImageCache struct {
	mu       sync.RWMutex
	images   map[string]cachedImage
	client   *http.Client
	disabled bool
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]cachedImage),
		client: &http.Client{Timeout: DefaultDownloadTimeout},
	}
}

// SetHTTPClient replaces the client used for URL sources.
func (c *ImageCache) SetHTTPClient(client *http.Client) {
	c.mu.Lock()
	c.client = client
	c.mu.Unlock()
}

// SetEnabled turns caching on or off. A disabled cache still loads images but
// never stores them.
func (c *ImageCache) SetEnabled(enabled bool) {
	c.mu.Lock()
	c.disabled = !enabled
	if c.disabled {
		c.images = make(map[string]cachedImage)
	}
	c.mu.Unlock()
}

// Load retrieves an image from the cache or loads it from its source.
//
// # Errors
//
//   - InvalidPathError if a file source does not exist or is a directory
//   - ImageDownloadError if a URL source cannot be fetched or returns non-2xx
//   - ImageDecodeError if the bytes are not a PNG, JPEG, GIF, WebP, BMP or TIFF image
func (c *ImageCache) Load(source string) (image.Image, error) {
	entry, err := c.load(source)
	if err != nil {
		return nil, err
	}
	return entry.img, nil
}

func (c *ImageCache) load(source string) (cachedImage, error) {
	c.mu.RLock()
	if entry, ok := c.images[source]; ok {
		c.mu.RUnlock()
		return entry, nil
	}
	client := c.client
	c.mu.RUnlock()

	var (
		data []byte
		err  error
	)
	if IsURL(source) {
		data, err = download(client, source)
	} else {
		data, err = readFile(source)
	}
	if err != nil {
		return cachedImage{}, err
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return cachedImage{}, &errs.ImageDecodeError{Source: source, Err: err}
	}

	entry := cachedImage{img: img, format: format, size: int64(len(data))}

	c.mu.Lock()
	if !c.disabled {
		c.images[source] = entry
	}
	c.mu.Unlock()

	return entry, nil
}

// Clear removes all images from the cache, freeing the associated memory.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]cachedImage)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its source.
// If the source is not in the cache, this method does nothing.
func (c *ImageCache) Evict(source string) {
	c.mu.Lock()
	delete(c.images, source)
	c.mu.Unlock()
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// IsURL reports whether source is an http or https URL.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func readFile(path string) ([]byte, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, &errs.InvalidPathError{Path: path, Err: err}
	}
	if stat.IsDir() {
		return nil, &errs.InvalidPathError{Path: path, Err: errors.New("is a directory")}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errs.InvalidPathError{Path: path, Err: errors.Wrap(err, "read failed")}
	}
	return data, nil
}

func download(client *http.Client, url string) ([]byte, error) {
	resp, err := client.Get(url)
	if err != nil {
		return nil, &errs.ImageDownloadError{URL: url, Err: errors.Wrapf(err, "GET %s", url)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &errs.ImageDownloadError{URL: url, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &errs.ImageDownloadError{URL: url, Err: errors.Wrap(err, "reading body")}
	}
	return data, nil
}

// ImageInfo contains metadata about a loaded image.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the decoder that recognized the data: "png", "jpeg", "gif",
	// "webp", "bmp" or "tiff".
	Format string `json:"format"`

	// ColorDepth indicates the bit depth per channel: "8-bit" or "16-bit".
	ColorDepth string `json:"color_depth"`

	// Channels is 1 for grayscale images and 3 or 4 otherwise.
	Channels int `json:"channels"`

	// HasAlpha indicates whether the image has an alpha (transparency) channel.
	HasAlpha bool `json:"has_alpha"`

	// SizeBytes is the size of the encoded source in bytes.
	SizeBytes int64 `json:"size_bytes"`
}

// LoadImageInfo loads an image and returns metadata about it.
//
// Format comes from the decoder, so it is correct for URLs and files with
// misleading extensions. Color depth and alpha are derived from the Go image
// type:
//   - *image.RGBA64, *image.NRGBA64, *image.Gray16 -> "16-bit"
//   - all other types -> "8-bit"
func LoadImageInfo(cache *ImageCache, source string) (*ImageInfo, error) {
	entry, err := cache.load(source)
	if err != nil {
		return nil, err
	}

	bounds := entry.img.Bounds()

	channels := 3
	hasAlpha := false
	colorDepth := "8-bit"
	switch entry.img.(type) {
	case *image.RGBA, *image.NRGBA:
		hasAlpha = true
		channels = 4
	case *image.RGBA64, *image.NRGBA64:
		hasAlpha = true
		channels = 4
		colorDepth = "16-bit"
	case *image.Gray:
		channels = 1
	case *image.Gray16:
		channels = 1
		colorDepth = "16-bit"
	}

	return &ImageInfo{
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
		Format:     entry.format,
		ColorDepth: colorDepth,
		Channels:   channels,
		HasAlpha:   hasAlpha,
		SizeBytes:  entry.size,
	}, nil
}
