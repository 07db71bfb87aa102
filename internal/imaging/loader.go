package imaging

import (
	"image"
	"os"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/seam-carver/internal/seam"
)

// ImageCache provides thread-safe caching of decoded source images so that
// reloading the same file to start a new editing session skips disk I/O.
//
// The cache stores decoded images, never grids: grids are mutated by seam
// edits, so LoadGrid builds a fresh grid from the cached source every time.
//
// ImageCache is safe for concurrent use by multiple goroutines.
//
// # Memory Management
//
// Cached images remain in memory until explicitly removed via Evict() or
// Clear().
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load retrieves a decoded image from the cache or reads it from disk.
//
// The image is cached using the exact path string provided. Different paths
// to the same file (e.g., relative vs absolute) result in separate entries.
// Failures are returned as *DecodeError.
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Source: path, Err: err}
	}
	defer f.Close()

	img, err := decodeImage(f)
	if err != nil {
		return nil, &DecodeError{Source: path, Err: err}
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// LoadGrid returns a new grid built from the (possibly cached) image at path.
func (c *ImageCache) LoadGrid(path string) (*seam.Grid, error) {
	img, err := c.Load(path)
	if err != nil {
		return nil, err
	}
	return GridFromImage(img), nil
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// Clear removes all images from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its path. Unknown paths
// are ignored.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// ImageInfo contains metadata about a source image file.
type ImageInfo struct {
	// Width and Height are the image dimensions in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Format is "png", "jpeg", "gif", "tiff", "bmp" or "unknown", detected
	// from the file extension.
	Format string `json:"format"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image through the cache and returns its metadata.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, &DecodeError{Source: path, Err: err}
	}

	format := "unknown"
	if f, err := imaging.FormatFromFilename(path); err == nil {
		format = formatName(f)
	}

	bounds := img.Bounds()
	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		FileSizeBytes: stat.Size(),
	}, nil
}

func formatName(f imaging.Format) string {
	switch f {
	case imaging.JPEG:
		return "jpeg"
	case imaging.PNG:
		return "png"
	case imaging.GIF:
		return "gif"
	case imaging.TIFF:
		return "tiff"
	case imaging.BMP:
		return "bmp"
	default:
		return "unknown"
	}
}
