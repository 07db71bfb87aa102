package server

import (
	"errors"

	"github.com/ironsheep/seam-carver/internal/seam"
)

var (
	errNoImage   = errors.New("no image loaded; call seam_load first")
	errNoPending = errors.New("no highlighted seam; call seam_highlight first")
)

// session is the editing state of the currently loaded image.
//
// pending is the seam returned by the last highlight that has been neither
// deleted nor undone. Deletion only ever targets it, so a client can never
// delete a seam the editor did not produce.
type session struct {
	path    string
	editor  *seam.Editor
	pending seam.Seam
	mode    seam.Mode
}

func newSession(path string, g *seam.Grid, workers int) *session {
	return &session{
		path:   path,
		editor: seam.NewEditor(g, seam.WithWorkers(workers)),
	}
}

func (s *session) grid() *seam.Grid { return s.editor.Grid() }

// highlight marks a new seam, first reverting a pending one.
func (s *session) highlight(mode seam.Mode) (seam.Seam, error) {
	if s.pending != nil {
		s.editor.Undo()
		s.pending = nil
	}
	sm, err := s.editor.Highlight(mode)
	if err != nil {
		return nil, err
	}
	s.pending = sm
	s.mode = mode
	return sm, nil
}

func (s *session) deletePending() error {
	if s.pending == nil {
		return errNoPending
	}
	if err := s.editor.Delete(s.pending); err != nil {
		return err
	}
	s.pending = nil
	return nil
}

// undo reverts the last edit and reports whether it was a pending highlight.
func (s *session) undo() (highlight bool, err error) {
	if !s.editor.Undo() {
		return false, seam.ErrHistoryEmpty
	}
	highlight = s.pending != nil
	s.pending = nil
	return highlight, nil
}

// columns returns the x position of each seam pixel, top row first.
func columns(g *seam.Grid, sm seam.Seam) ([]int, error) {
	cols := make([]int, len(sm))
	for i, id := range sm {
		x, _, err := g.Locate(id)
		if err != nil {
			return nil, err
		}
		cols[i] = x
	}
	return cols, nil
}
