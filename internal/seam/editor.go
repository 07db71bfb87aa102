package seam

import "fmt"

// Entry is one history record: the pixels of a highlighted seam and their
// colours before highlighting. The two slices are parallel.
//
// Entries hold pixel handles, not copies, so a deleted pixel stays reachable
// through its entry until the entry is popped.
type Entry struct {
	Pixels []PixelID
	Colors []Color
}

// Option configures an Editor.
type Option func(*Editor)

// WithWorkers sets the number of goroutines used for the energy pass that
// precedes every seam search. Values below 2 keep the pass sequential.
func WithWorkers(n int) Option {
	return func(e *Editor) {
		e.workers = n
	}
}

// Editor highlights, deletes and restores seams on a Grid it exclusively
// owns.
//
// The seam lifecycle is Clean -> Highlighted -> Deleted, with Undo taking
// either Highlighted or Deleted back to Clean. Delete reuses the history
// entry pushed by the preceding Highlight.
type Editor struct {
	grid    *Grid
	history []Entry
	workers int
}

// NewEditor creates an editor over g with an empty history.
func NewEditor(g *Grid, opts ...Option) *Editor {
	e := &Editor{grid: g, workers: 1}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Grid returns the edited grid.
func (e *Editor) Grid() *Grid { return e.grid }

// EditCount returns the depth of the history stack.
func (e *Editor) EditCount() int { return len(e.history) }

// History returns a copy of the history stack, oldest entry first.
func (e *Editor) History() []Entry {
	out := make([]Entry, len(e.history))
	for i, h := range e.history {
		out[i] = Entry{
			Pixels: append([]PixelID(nil), h.Pixels...),
			Colors: append([]Color(nil), h.Colors...),
		}
	}
	return out
}

// Highlight finds the best seam for mode, records its current colours as a
// new history entry and paints it with mode's marker colour. The grid's links
// are not changed. It returns ErrEmptyGrid, and pushes nothing, when the grid
// has no rows or no columns.
func (e *Editor) Highlight(mode Mode) (Seam, error) {
	if e.grid.Rows() == 0 || e.grid.Width() == 0 {
		return nil, ErrEmptyGrid
	}

	s := findSeam(e.grid, mode, e.workers)
	entry := Entry{
		Pixels: make([]PixelID, len(s)),
		Colors: make([]Color, len(s)),
	}
	marker := mode.Marker()
	for i, id := range s {
		p := &e.grid.pixels[id]
		entry.Pixels[i] = id
		entry.Colors[i] = p.Color
		p.Color = marker
	}
	e.history = append(e.history, entry)
	return s, nil
}

// Delete splices every pixel of s out of its row. Only the seam most
// recently returned by Highlight should be passed; a seam that is not fully
// linked into the grid is rejected with ErrInconsistentSeam before anything
// is modified.
func (e *Editor) Delete(s Seam) error {
	if err := e.check(s); err != nil {
		return err
	}
	for _, id := range s {
		e.grid.unlink(id)
	}
	return nil
}

func (e *Editor) check(s Seam) error {
	if len(s) != e.grid.Rows() {
		return fmt.Errorf("%w: seam has %d pixels for %d rows", ErrInconsistentSeam, len(s), e.grid.Rows())
	}
	for r, id := range s {
		if !e.grid.linked(id) {
			return fmt.Errorf("%w: pixel %d in row %d", ErrInconsistentSeam, id, r)
		}
		if e.grid.pixels[id].row != r {
			return fmt.Errorf("%w: pixel %d belongs to row %d, not %d", ErrInconsistentSeam, id, e.grid.pixels[id].row, r)
		}
	}
	return nil
}

// Undo pops the most recent history entry, restores the recorded colours and
// re-splices each pixel between its recorded neighbours. It reverts either a
// highlight alone or a highlight followed by a delete. It returns false, and
// changes nothing, when the history is empty.
func (e *Editor) Undo() bool {
	n := len(e.history)
	if n == 0 {
		return false
	}
	entry := e.history[n-1]
	e.history[n-1] = Entry{}
	e.history = e.history[:n-1]

	for i, id := range entry.Pixels {
		e.grid.pixels[id].Color = entry.Colors[i]
		e.grid.relink(id)
	}
	return true
}
