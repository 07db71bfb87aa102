package imaging

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder

	"github.com/ironsheep/seam-carver/internal/seam"
)

// DecodeError reports a source that could not be read or parsed as a
// supported raster format.
type DecodeError struct {
	Source string // File path, or "stream" for readers
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode image %s: %v", e.Source, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports a grid that could not be serialised or written.
type EncodeError struct {
	Dest string // File path, or "stream" for writers
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("failed to encode image %s: %v", e.Dest, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// Decode reads a PNG, JPEG, GIF, BMP, TIFF or WebP image and builds a
// row-linked grid with one pixel per source pixel. EXIF orientation is
// applied and alpha is dropped.
func Decode(r io.Reader) (*seam.Grid, error) {
	img, err := decodeImage(r)
	if err != nil {
		return nil, &DecodeError{Source: "stream", Err: err}
	}
	return GridFromImage(img), nil
}

func decodeImage(r io.Reader) (image.Image, error) {
	return imaging.Decode(r, imaging.AutoOrientation(true))
}

// GridFromImage converts any image.Image into a grid.
func GridFromImage(img image.Image) *seam.Grid {
	src := imaging.Clone(img)
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	rows := make([][]seam.Color, height)
	for y := 0; y < height; y++ {
		rows[y] = make([]seam.Color, width)
		i := y * src.Stride
		for x := 0; x < width; x++ {
			rows[y][x] = seam.Color{R: src.Pix[i], G: src.Pix[i+1], B: src.Pix[i+2]}
			i += 4
		}
	}
	return seam.NewGrid(rows)
}

// Encode writes the grid's live pixels row-major in the given format. A grid
// with no rows or no columns produces no output and no error.
func Encode(w io.Writer, g *seam.Grid, format imaging.Format) error {
	if g.Rows() == 0 || g.Width() == 0 {
		return nil
	}
	if err := imaging.Encode(w, Render(g), format); err != nil {
		return &EncodeError{Dest: "stream", Err: err}
	}
	return nil
}

// Load opens and decodes the image at path.
func Load(path string) (*seam.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Source: path, Err: err}
	}
	defer f.Close()

	img, err := decodeImage(f)
	if err != nil {
		return nil, &DecodeError{Source: path, Err: err}
	}
	return GridFromImage(img), nil
}

// Save writes the grid to path, choosing the format from the file extension.
// A degenerate grid produces an empty file.
func Save(path string, g *seam.Grid) error {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return &EncodeError{Dest: path, Err: err}
	}

	var buf bytes.Buffer
	if g.Rows() > 0 && g.Width() > 0 {
		if err := imaging.Encode(&buf, Render(g), format); err != nil {
			return &EncodeError{Dest: path, Err: err}
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return &EncodeError{Dest: path, Err: err}
	}
	return nil
}

// ParseFormat maps a format name such as "png" or "jpg" to an imaging.Format.
func ParseFormat(name string) (imaging.Format, error) {
	return imaging.FormatFromExtension(name)
}
