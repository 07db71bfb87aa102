package seam

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Mode selects the seam metric.
type Mode int

const (
	// MaxBlue picks the seam with the greatest total blue channel.
	MaxBlue Mode = iota
	// MinEnergy picks the seam with the smallest total energy.
	MinEnergy
)

// String returns "blue" or "energy".
func (m Mode) String() string {
	switch m {
	case MaxBlue:
		return "blue"
	case MinEnergy:
		return "energy"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "blue"/"b" and "energy"/"e"/"red"/"r", case-insensitive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blue", "b", "bluest", "max-blue":
		return MaxBlue, nil
	case "energy", "e", "red", "r", "min-energy":
		return MinEnergy, nil
	default:
		return 0, fmt.Errorf("unknown seam mode %q (want blue or energy)", s)
	}
}

// Marker is the colour a highlighted seam is painted with: blue for MaxBlue,
// red otherwise.
func (m Mode) Marker() Color {
	if m == MaxBlue {
		return Blue
	}
	return Red
}

func (m Mode) metric(p *Pixel) float64 {
	if m == MaxBlue {
		return float64(p.B)
	}
	return p.Energy
}

// better reports whether a is strictly better than b.
func (m Mode) better(a, b float64) bool {
	if m == MaxBlue {
		return a > b
	}
	return a < b
}

// Seam is one pixel per row, top row first.
type Seam []PixelID

// FindSeam recomputes energies and returns the best seam for mode. A grid
// with no rows or no columns yields an empty seam.
//
// # Algorithm
//
// A single top-to-bottom dynamic-programming pass. Row 0 scores are the
// pixel metrics. For each later row and column c the predecessor starts at
// column c of the previous row; c-1 replaces it only if strictly better, then
// c+1 replaces the current choice only if strictly better. So ties keep the
// centre, and the left neighbour wins over an equal right neighbour. The
// final column is the first best score of the last row.
func FindSeam(g *Grid, mode Mode) Seam {
	return findSeam(g, mode, 1)
}

func findSeam(g *Grid, mode Mode, workers int) Seam {
	ComputeEnergiesParallel(g, workers)

	rows, width := g.Rows(), g.Width()
	if rows == 0 || width == 0 {
		return Seam{}
	}

	ids := make([][]PixelID, rows)
	from := make([][]int, rows)
	prev := make([]float64, width)
	cur := make([]float64, width)

	ids[0] = g.Row(0)
	for c, id := range ids[0] {
		prev[c] = mode.metric(&g.pixels[id])
	}

	for r := 1; r < rows; r++ {
		ids[r] = g.Row(r)
		from[r] = make([]int, width)
		for c := 0; c < width; c++ {
			best, ref := prev[c], c
			if c > 0 && mode.better(prev[c-1], best) {
				best, ref = prev[c-1], c-1
			}
			if c < width-1 && mode.better(prev[c+1], best) {
				best, ref = prev[c+1], c+1
			}
			cur[c] = best + mode.metric(&g.pixels[ids[r][c]])
			from[r][c] = ref
		}
		prev, cur = cur, prev
	}

	col := BestIndex(prev, mode)
	s := make(Seam, rows)
	for r := rows - 1; r >= 0; r-- {
		s[r] = ids[r][col]
		if r > 0 {
			col = from[r][col]
		}
	}
	return s
}

// BestIndex returns the index of the largest (MaxBlue) or smallest
// (MinEnergy) score. The first occurrence wins on ties. It returns -1 for an
// empty slice.
func BestIndex(scores []float64, mode Mode) int {
	if len(scores) == 0 {
		return -1
	}
	if mode == MaxBlue {
		return floats.MaxIdx(scores)
	}
	return floats.MinIdx(scores)
}
