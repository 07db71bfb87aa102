package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/seam-carver/internal/seam"
)

// PreviewResult contains a rendered grid encoded as base64 PNG.
type PreviewResult struct {
	// Width and Height are the dimensions of the encoded image, after scaling.
	Width  int `json:"width"`
	Height int `json:"height"`

	// GridWidth and GridHeight are the dimensions of the grid itself.
	GridWidth  int `json:"grid_width"`
	GridHeight int `json:"grid_height"`

	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Render draws the grid's live pixels into an opaque NRGBA image. Rows are
// read by traversal, so the image reflects deleted seams. The image width is
// the width of the first row.
func Render(g *seam.Grid) *image.NRGBA {
	width, height := g.Width(), g.Rows()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		i := y * img.Stride
		x := 0
		for id := g.Head(y); id != seam.NoPixel && x < width; id = g.Pixel(id).Right {
			c := g.Pixel(id).Color
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = 255
			i += 4
			x++
		}
	}
	return img
}

// Preview renders the grid as base64 PNG.
//
// Parameters:
//   - g: The grid to render. Must have at least one row and one column.
//   - scale: Optional magnification. Values other than 1.0 (and > 0) resize
//     with nearest-neighbour sampling so individual pixels stay crisp.
//
// Returns an error wrapping seam.ErrEmptyGrid for a degenerate grid.
func Preview(g *seam.Grid, scale float64) (*PreviewResult, error) {
	if g.Rows() == 0 || g.Width() == 0 {
		return nil, fmt.Errorf("nothing to preview: %w", seam.ErrEmptyGrid)
	}
	return encodePreview(Render(g), g, scale)
}

func encodePreview(img image.Image, g *seam.Grid, scale float64) (*PreviewResult, error) {
	img = scaleImage(img, scale)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}

	return &PreviewResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		GridWidth:   g.Width(),
		GridHeight:  g.Rows(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

func scaleImage(img image.Image, scale float64) image.Image {
	if scale == 1.0 || scale <= 0 {
		return img
	}
	newWidth := max(1, int(float64(img.Bounds().Dx())*scale))
	newHeight := max(1, int(float64(img.Bounds().Dy())*scale))
	return imaging.Resize(img, newWidth, newHeight, imaging.NearestNeighbor)
}
