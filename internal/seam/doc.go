// Package seam finds, highlights, removes and restores vertical seams in a
// row-linked pixel grid.
//
// A seam is a top-to-bottom path of exactly one pixel per row in which
// consecutive pixels are at most one column apart. Seams are chosen either by
// maximum aggregate blue channel (MaxBlue) or by minimum aggregate contrast
// energy (MinEnergy).
//
// # Grid Representation
//
// Pixels live in an arena owned by a Grid and are addressed by stable PixelID
// handles. Each row stores the handle of its leftmost pixel (the row head) and
// every pixel stores the handles of its left and right neighbours. Removing a
// seam is therefore O(1) per row: the removed pixel is spliced out of its row
// and tombstoned, but its slot and its stale neighbour links are kept so that
// the removal can be reverted exactly.
//
// # Editing
//
// An Editor owns a Grid and a history stack. Removing a seam is a two-step
// operation:
//
//	ed := seam.NewEditor(grid)
//	s, err := ed.Highlight(seam.MaxBlue) // paints the seam, pushes history
//	if err != nil {
//	    return err
//	}
//	// preview or export the grid here
//	if err := ed.Delete(s); err != nil { // splices the seam out
//	    return err
//	}
//	ed.Undo() // restores colours and links of the last highlight
//
// # Thread Safety
//
// Grid and Editor are not safe for concurrent use. The only internal
// parallelism is ComputeEnergiesParallel, which reads colours and links and
// writes each pixel's own energy field.
package seam
