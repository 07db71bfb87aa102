package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/blend"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/seam-carver/internal/seam"
)

// Heat-map gradient end points: low energy is deep blue, high is yellow.
var (
	heatLow  = colorful.Color{R: 0.05, G: 0.03, B: 0.35}
	heatHigh = colorful.Color{R: 1.0, G: 0.9, B: 0.1}
)

// EnergyMap recomputes the grid's energies and renders them as a heat map.
//
// Energies are normalised by the largest energy in the grid and mapped onto a
// gradient blended in HCL space, which keeps perceived lightness increasing
// monotonically with energy. A grid of uniform brightness renders entirely
// in the low colour.
func EnergyMap(g *seam.Grid) *image.NRGBA {
	seam.ComputeEnergies(g)

	width, height := g.Width(), g.Rows()
	var peak float64
	for y := 0; y < height; y++ {
		for id := g.Head(y); id != seam.NoPixel; id = g.Pixel(id).Right {
			if e := g.Pixel(id).Energy; e > peak {
				peak = e
			}
		}
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		i := y * img.Stride
		x := 0
		for id := g.Head(y); id != seam.NoPixel && x < width; id = g.Pixel(id).Right {
			t := 0.0
			if peak > 0 {
				t = g.Pixel(id).Energy / peak
			}
			r, gr, b := heatColor(t).RGB255()
			img.Pix[i+0] = r
			img.Pix[i+1] = gr
			img.Pix[i+2] = b
			img.Pix[i+3] = 255
			i += 4
			x++
		}
	}
	return img
}

func heatColor(t float64) colorful.Color {
	return heatLow.BlendHcl(heatHigh, t).Clamped()
}

// EnergyPreview renders the energy heat map as base64 PNG. With overlay
// strictly between 0 and 1 the heat map is blended over the grid's colours
// at that opacity; any other value renders the bare heat map.
func EnergyPreview(g *seam.Grid, scale, overlay float64) (*PreviewResult, error) {
	if g.Rows() == 0 || g.Width() == 0 {
		return nil, fmt.Errorf("nothing to render: %w", seam.ErrEmptyGrid)
	}

	return encodePreview(energyImage(g, overlay), g, scale)
}

func energyImage(g *seam.Grid, overlay float64) image.Image {
	var img image.Image = EnergyMap(g)
	if overlay > 0 && overlay < 1 {
		img = blend.Opacity(Render(g), img, overlay)
	}
	return img
}

// SaveEnergyMap writes the energy heat map of g to path, choosing the format
// from the extension. overlay behaves as in EnergyPreview.
func SaveEnergyMap(path string, g *seam.Grid, overlay float64) error {
	if g.Rows() == 0 || g.Width() == 0 {
		return &EncodeError{Dest: path, Err: seam.ErrEmptyGrid}
	}

	if err := imaging.Save(energyImage(g, overlay), path); err != nil {
		return &EncodeError{Dest: path, Err: err}
	}
	return nil
}
