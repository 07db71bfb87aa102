package seam

import (
	"math"
	"sync"
)

// ComputeEnergies sets the Energy of every live pixel from its 3x3
// neighbourhood. Links and colours are not modified, so repeated calls are
// safe.
//
// # Algorithm
//
// For a pixel m with up and down being the pixels in the same column of the
// previous and next rows (m itself at the top or bottom edge), and b the
// integer brightness (R+G+B)/3 with a missing neighbour replaced by m:
//
//	hTop    = b(up.Left)   + 2*b(up)      + b(up.Right)
//	hBottom = b(down.Left) + 2*b(down)    + b(down.Right)
//	vLeft   = b(up.Left)   + 2*b(m.Left)  + b(down.Left)
//	vRight  = b(up.Right)  + 2*b(m.Right) + b(down.Right)
//	energy  = sqrt((hBottom-hTop)² + (vRight-vLeft)²)
//
// The energy of a pixel surrounded by uniform brightness is 0.
func ComputeEnergies(g *Grid) {
	g.computeRows(0, g.Rows())
}

// ComputeEnergiesParallel is ComputeEnergies split into row bands processed
// by up to workers goroutines. Each goroutine writes only the energy fields
// of its own band and reads only colours and links, so no locking is needed
// and the result equals the sequential pass.
func ComputeEnergiesParallel(g *Grid, workers int) {
	rows := g.Rows()
	if workers <= 1 || rows < 2 {
		g.computeRows(0, rows)
		return
	}
	if workers > rows {
		workers = rows
	}

	band := (rows + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < rows; start += band {
		end := min(start+band, rows)
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			g.computeRows(start, end)
		}(start, end)
	}
	wg.Wait()
}

// computeRows walks rows [start, end) column by column together with the
// rows above and below.
func (g *Grid) computeRows(start, end int) {
	last := g.Rows() - 1
	for r := start; r < end; r++ {
		m := g.heads[r]
		up, down := m, m
		if r > 0 {
			up = g.heads[r-1]
		}
		if r < last {
			down = g.heads[r+1]
		}

		for m != NoPixel {
			// Rows of unequal length only occur mid-edit; fall back to m.
			if up == NoPixel {
				up = m
			}
			if down == NoPixel {
				down = m
			}
			g.pixels[m].Energy = g.energy(up, m, down)

			up = g.pixels[up].Right
			down = g.pixels[down].Right
			m = g.pixels[m].Right
		}
	}
}

func (g *Grid) energy(up, m, down PixelID) float64 {
	b := func(id PixelID) int {
		if id == NoPixel {
			id = m
		}
		return g.pixels[id].Brightness()
	}

	u, c, d := &g.pixels[up], &g.pixels[m], &g.pixels[down]

	hTop := b(u.Left) + 2*b(up) + b(u.Right)
	hBottom := b(d.Left) + 2*b(down) + b(d.Right)
	vLeft := b(u.Left) + 2*b(c.Left) + b(d.Left)
	vRight := b(u.Right) + 2*b(c.Right) + b(d.Right)

	dh := float64(hBottom - hTop)
	dv := float64(vRight - vLeft)
	return math.Sqrt(dh*dh + dv*dv)
}
