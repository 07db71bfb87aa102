package seam

import "fmt"

// PixelID is a stable handle to a pixel slot in a Grid's arena.
type PixelID int32

// NoPixel marks a missing neighbour or an empty row.
const NoPixel PixelID = -1

// Color is an 8-bit RGB triple.
type Color struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Marker and test colours.
var (
	White = Color{R: 255, G: 255, B: 255}
	Black = Color{}
	Blue  = Color{B: 255}
	Red   = Color{R: 255}
)

// Brightness is the unweighted integer average of the three channels.
func (c Color) Brightness() int {
	return (int(c.R) + int(c.G) + int(c.B)) / 3
}

// Hex returns the colour as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Pixel is one cell of a Grid.
//
// Left and Right are back-references used for traversal and relinking; the
// Grid owns the canonical row order. A pixel never changes rows.
type Pixel struct {
	Color

	// Energy is the contrast energy from the last energy pass.
	Energy float64

	// Left and Right are the neighbouring pixels in the row, or NoPixel at
	// the row edges. For a deleted pixel they keep their values from the
	// moment of deletion.
	Left, Right PixelID

	row     int
	deleted bool
}

// Row returns the index of the row the pixel belongs to.
func (p Pixel) Row() int { return p.row }

// Deleted reports whether the pixel has been spliced out by a seam delete
// that has not been undone.
func (p Pixel) Deleted() bool { return p.deleted }
