package seam

import "fmt"

// Grid is an ordered sequence of rows, each a doubly linked chain of pixels
// stored in a shared arena.
//
// Arena slots are never freed or reused. A deleted pixel stays addressable
// (tombstoned) so that the history entry that removed it can put it back.
type Grid struct {
	pixels  []Pixel
	heads   []PixelID
	lengths []int
}

// NewGrid builds a grid from row-major colours. Rows may be empty; callers
// that want a rectangular grid must pass rows of equal length.
func NewGrid(rows [][]Color) *Grid {
	total := 0
	for _, row := range rows {
		total += len(row)
	}

	g := &Grid{
		pixels:  make([]Pixel, 0, total),
		heads:   make([]PixelID, len(rows)),
		lengths: make([]int, len(rows)),
	}

	for y, row := range rows {
		g.heads[y] = NoPixel
		prev := NoPixel
		for _, c := range row {
			id := PixelID(len(g.pixels))
			g.pixels = append(g.pixels, Pixel{Color: c, Left: prev, Right: NoPixel, row: y})
			if prev == NoPixel {
				g.heads[y] = id
			} else {
				g.pixels[prev].Right = id
			}
			prev = id
		}
		g.lengths[y] = len(row)
	}
	return g
}

// NewFilledGrid builds a width x height grid with every pixel set to c.
func NewFilledGrid(width, height int, c Color) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	rows := make([][]Color, height)
	for y := range rows {
		rows[y] = make([]Color, width)
		for x := range rows[y] {
			rows[y][x] = c
		}
	}
	return NewGrid(rows)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return len(g.heads) }

// Width returns the number of live pixels in the first row, or 0 for a grid
// with no rows.
func (g *Grid) Width() int {
	if len(g.lengths) == 0 {
		return 0
	}
	return g.lengths[0]
}

// RowLen returns the number of live pixels in row r.
func (g *Grid) RowLen(r int) int { return g.lengths[r] }

// Head returns the leftmost pixel of row r, or NoPixel if the row is empty.
func (g *Grid) Head(r int) PixelID { return g.heads[r] }

// Pixel returns a copy of the pixel stored at id.
func (g *Grid) Pixel(id PixelID) Pixel { return g.pixels[id] }

// Live reports whether id addresses a pixel currently linked into its row.
func (g *Grid) Live(id PixelID) bool {
	return g.valid(id) && !g.pixels[id].deleted
}

// SetColor overwrites the colour of the pixel at id.
func (g *Grid) SetColor(id PixelID, c Color) { g.pixels[id].Color = c }

// Row returns the live pixels of row r in column order.
func (g *Grid) Row(r int) []PixelID {
	ids := make([]PixelID, 0, g.lengths[r])
	for id := g.heads[r]; id != NoPixel; id = g.pixels[id].Right {
		ids = append(ids, id)
	}
	return ids
}

// At returns the pixel at column x of row y, or NoPixel if out of range.
func (g *Grid) At(x, y int) PixelID {
	if y < 0 || y >= len(g.heads) || x < 0 {
		return NoPixel
	}
	id := g.heads[y]
	for ; id != NoPixel && x > 0; x-- {
		id = g.pixels[id].Right
	}
	return id
}

// Locate returns the current column and row of a live pixel.
func (g *Grid) Locate(id PixelID) (x, y int, err error) {
	if !g.Live(id) {
		return 0, 0, fmt.Errorf("pixel %d is not in the grid", id)
	}
	for p := g.pixels[id].Left; p != NoPixel; p = g.pixels[p].Left {
		x++
	}
	return x, g.pixels[id].row, nil
}

// Colors returns the live pixel colours row by row, in traversal order.
func (g *Grid) Colors() [][]Color {
	out := make([][]Color, len(g.heads))
	for y := range g.heads {
		row := make([]Color, 0, g.lengths[y])
		for id := g.heads[y]; id != NoPixel; id = g.pixels[id].Right {
			row = append(row, g.pixels[id].Color)
		}
		out[y] = row
	}
	return out
}

func (g *Grid) valid(id PixelID) bool {
	return id >= 0 && int(id) < len(g.pixels)
}

// linked reports whether id is live and its neighbours point back at it.
func (g *Grid) linked(id PixelID) bool {
	if !g.Live(id) {
		return false
	}
	p := &g.pixels[id]
	if p.Left == NoPixel {
		if g.heads[p.row] != id {
			return false
		}
	} else if !g.valid(p.Left) || g.pixels[p.Left].Right != id {
		return false
	}
	if p.Right != NoPixel && (!g.valid(p.Right) || g.pixels[p.Right].Left != id) {
		return false
	}
	return true
}

// unlink splices id out of its row and tombstones it. The pixel keeps its
// own Left and Right values.
func (g *Grid) unlink(id PixelID) {
	p := &g.pixels[id]
	switch {
	case p.Left != NoPixel && p.Right != NoPixel:
		g.pixels[p.Left].Right = p.Right
		g.pixels[p.Right].Left = p.Left
	case p.Left == NoPixel:
		g.heads[p.row] = p.Right
		if p.Right != NoPixel {
			g.pixels[p.Right].Left = NoPixel
		}
	default:
		g.pixels[p.Left].Right = NoPixel
	}
	p.deleted = true
	g.lengths[p.row]--
}

// relink puts id back between its recorded neighbours. For a pixel that was
// never unlinked this rewrites links to the values they already have.
func (g *Grid) relink(id PixelID) {
	p := &g.pixels[id]
	if p.Left != NoPixel {
		g.pixels[p.Left].Right = id
	} else {
		g.heads[p.row] = id
	}
	if p.Right != NoPixel {
		g.pixels[p.Right].Left = id
	}
	if p.deleted {
		p.deleted = false
		g.lengths[p.row]++
	}
}
