package imaging

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/ironsheep/seam-carver/internal/seam"
)

func TestEnergyMap_Uniform(t *testing.T) {
	g := seam.NewFilledGrid(5, 5, seam.Color{R: 90, G: 90, B: 90})
	img := EnergyMap(g)

	r, gr, b := heatColor(0).RGB255()
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			c := img.NRGBAAt(x, y)
			if c.R != r || c.G != gr || c.B != b || c.A != 255 {
				t.Fatalf("pixel (%d,%d): got %+v, want low heat colour", x, y, c)
			}
		}
	}
}

func TestEnergyMap_EdgeIsBrighter(t *testing.T) {
	rows := make([][]seam.Color, 3)
	for y := range rows {
		rows[y] = []seam.Color{seam.Black, seam.Black, seam.White, seam.White}
	}
	img := EnergyMap(seam.NewGrid(rows))

	lum := func(x, y int) int {
		c := img.NRGBAAt(x, y)
		return int(c.R) + int(c.G) + int(c.B)
	}
	// Columns 1 and 2 straddle the edge.
	if lum(1, 1) <= lum(0, 1) {
		t.Errorf("edge column should be brighter than flat column: %d <= %d", lum(1, 1), lum(0, 1))
	}
	r, gr, b := heatColor(1).RGB255()
	if c := img.NRGBAAt(1, 1); c.R != r || c.G != gr || c.B != b {
		t.Errorf("peak energy pixel: got %+v, want high heat colour", c)
	}
}

func TestEnergyPreview(t *testing.T) {
	rows := [][]seam.Color{
		{seam.Black, seam.White, seam.Black},
		{seam.White, seam.Black, seam.White},
	}
	g := seam.NewGrid(rows)

	for _, overlay := range []float64{0, 0.5, 1} {
		res, err := EnergyPreview(g, 2.0, overlay)
		if err != nil {
			t.Fatalf("EnergyPreview(overlay=%v) failed: %v", overlay, err)
		}
		if res.Width != 6 || res.Height != 4 {
			t.Errorf("overlay=%v: size got %dx%d, want 6x4", overlay, res.Width, res.Height)
		}
		if res.ImageBase64 == "" {
			t.Errorf("overlay=%v: empty image data", overlay)
		}
	}

	if _, err := EnergyPreview(seam.NewGrid(nil), 1.0, 0); !errors.Is(err, seam.ErrEmptyGrid) {
		t.Errorf("expected ErrEmptyGrid, got %v", err)
	}
}

func TestSaveEnergyMap(t *testing.T) {
	rows := [][]seam.Color{
		{seam.Black, seam.White},
		{seam.White, seam.Black},
	}
	g := seam.NewGrid(rows)
	path := filepath.Join(t.TempDir(), "energy.png")

	if err := SaveEnergyMap(path, g, 0); err != nil {
		t.Fatalf("SaveEnergyMap failed: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if back.Width() != 2 || back.Rows() != 2 {
		t.Errorf("dimensions: got %dx%d, want 2x2", back.Width(), back.Rows())
	}

	var ee *EncodeError
	if err := SaveEnergyMap(filepath.Join(t.TempDir(), "e.png"), seam.NewGrid(nil), 0); !errors.As(err, &ee) {
		t.Errorf("empty grid: expected *EncodeError, got %v", err)
	}
	if err := SaveEnergyMap(filepath.Join(t.TempDir(), "e.nope"), g, 0.5); !errors.As(err, &ee) {
		t.Errorf("bad extension: expected *EncodeError, got %v", err)
	}
}
