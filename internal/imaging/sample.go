package imaging

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/seam-carver/internal/seam"
)

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// PixelSample describes one grid pixel at its current position.
type PixelSample struct {
	X          int        `json:"x"`
	Y          int        `json:"y"`
	Hex        string     `json:"hex"`
	RGB        seam.Color `json:"rgb"`
	HSL        HSLColor   `json:"hsl"`
	Brightness int        `json:"brightness"`
	Energy     float64    `json:"energy"`
}

// SamplePixel returns the colour, brightness and energy of the pixel at
// column x of row y. Energies are recomputed first so they reflect the
// current geometry.
//
// Coordinates are 0-based from the top-left and refer to the grid after any
// deletions, so column indices shift left once a seam has been removed.
func SamplePixel(g *seam.Grid, x, y int) (*PixelSample, error) {
	if y < 0 || y >= g.Rows() || x < 0 || x >= g.RowLen(y) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside grid bounds (%dx%d)", x, y, g.Width(), g.Rows())
	}

	seam.ComputeEnergies(g)
	p := g.Pixel(g.At(x, y))

	return &PixelSample{
		X:          x,
		Y:          y,
		Hex:        p.Hex(),
		RGB:        p.Color,
		HSL:        toHSL(p.Color),
		Brightness: p.Brightness(),
		Energy:     math.Round(p.Energy*100) / 100,
	}, nil
}

func toHSL(c seam.Color) HSLColor {
	h, s, l := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hsl()
	return HSLColor{
		H: int(math.Round(h)) % 360,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}
