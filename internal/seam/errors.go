package seam

import "errors"

var (
	// ErrEmptyGrid is returned when a seam is requested from a grid with no
	// rows or no columns.
	ErrEmptyGrid = errors.New("seam: grid is empty")

	// ErrHistoryEmpty reports that there is nothing to undo. Editor.Undo
	// signals this with a false return; drivers use the sentinel for messages.
	ErrHistoryEmpty = errors.New("seam: no edits to undo")

	// ErrInconsistentSeam is returned by Editor.Delete when the seam is not
	// fully linked into the grid, for example because it was already deleted.
	ErrInconsistentSeam = errors.New("seam: seam is not linked into the grid")
)
