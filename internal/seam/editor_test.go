package seam

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// removeColumns returns rows with column cols[y] dropped from row y.
func removeColumns(rows [][]Color, cols []int) [][]Color {
	out := make([][]Color, len(rows))
	for y, row := range rows {
		out[y] = append(append([]Color(nil), row[:cols[y]]...), row[cols[y]+1:]...)
	}
	return out
}

func TestEditor_InitialState(t *testing.T) {
	ed := NewEditor(NewFilledGrid(3, 3, White))
	require.Equal(t, 0, ed.EditCount())
	require.False(t, ed.Undo(), "undo on empty history must report a no-op")
	require.Equal(t, 0, ed.EditCount())
}

func TestEditor_HighlightColors(t *testing.T) {
	tests := []struct {
		mode Mode
		want Color
	}{
		{MaxBlue, Color{0, 0, 255}},
		{MinEnergy, Color{255, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			g := NewFilledGrid(3, 3, White)
			ed := NewEditor(g)

			s, err := ed.Highlight(tt.mode)
			require.NoError(t, err)
			require.Len(t, s, 3)
			for _, id := range s {
				require.Equal(t, tt.want, g.Pixel(id).Color)
			}
			require.Equal(t, 1, ed.EditCount())
			requireLinked(t, g)
			require.Equal(t, 3, g.Width())
		})
	}
}

func TestEditor_HighlightThenUndo(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		for _, mode := range []Mode{MaxBlue, MinEnergy} {
			rows := randomColors(seed, 3+int(seed), 2+int(seed%4))
			g := NewGrid(rows)
			ed := NewEditor(g)

			_, err := ed.Highlight(mode)
			require.NoError(t, err)
			require.True(t, ed.Undo())

			require.Equal(t, rows, g.Colors())
			require.Equal(t, 0, ed.EditCount())
			requireLinked(t, g)
		}
	}
}

func TestEditor_DeleteRemovesOneColumn(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		for _, mode := range []Mode{MaxBlue, MinEnergy} {
			rows := randomColors(100+seed, 6, 5)
			g := NewGrid(rows)
			ed := NewEditor(g)

			s, err := ed.Highlight(mode)
			require.NoError(t, err)
			cols := seamColumns(t, g, s)

			require.NoError(t, ed.Delete(s))
			require.Equal(t, 1, ed.EditCount(), "delete must not push history")

			for r := 0; r < g.Rows(); r++ {
				require.Equal(t, 5, g.RowLen(r))
				for _, id := range g.Row(r) {
					require.NotEqual(t, s[r], id, "deleted pixel still reachable in row %d", r)
				}
			}
			require.Equal(t, removeColumns(rows, cols), g.Colors())
			requireLinked(t, g)

			for _, id := range s {
				require.False(t, g.Live(id))
				require.True(t, g.Pixel(id).Deleted())
			}
		}
	}
}

func TestEditor_DeleteThenUndo(t *testing.T) {
	rows := randomColors(7, 8, 6)
	g := NewGrid(rows)
	ed := NewEditor(g)

	s, err := ed.Highlight(MinEnergy)
	require.NoError(t, err)
	require.NoError(t, ed.Delete(s))
	require.True(t, ed.Undo())

	require.Equal(t, rows, g.Colors())
	require.Equal(t, 8, g.Width())
	requireLinked(t, g)
	for _, id := range s {
		require.True(t, g.Live(id))
	}
}

func TestEditor_RepeatedCarveAndUndo(t *testing.T) {
	rows := randomColors(11, 7, 5)
	g := NewGrid(rows)
	ed := NewEditor(g)

	snapshots := [][][]Color{g.Colors()}
	modes := []Mode{MaxBlue, MinEnergy, MinEnergy, MaxBlue, MinEnergy, MaxBlue, MaxBlue}
	for i, mode := range modes {
		s, err := ed.Highlight(mode)
		require.NoError(t, err)
		require.NoError(t, ed.Delete(s))
		require.Equal(t, 7-i-1, g.Width())
		requireLinked(t, g)
		snapshots = append(snapshots, g.Colors())
	}
	require.Equal(t, 0, g.Width())
	require.Equal(t, len(modes), ed.EditCount())

	_, err := ed.Highlight(MaxBlue)
	require.ErrorIs(t, err, ErrEmptyGrid)

	for i := len(modes) - 1; i >= 0; i-- {
		require.True(t, ed.Undo())
		require.Equal(t, snapshots[i], g.Colors(), "after undo %d", len(modes)-i)
		requireLinked(t, g)
	}
	require.False(t, ed.Undo())
	require.Equal(t, rows, g.Colors())
}

func TestEditor_HighlightWithoutDeleteThenDeletePrevious(t *testing.T) {
	rows := randomColors(21, 5, 4)
	g := NewGrid(rows)
	ed := NewEditor(g)

	first, err := ed.Highlight(MaxBlue)
	require.NoError(t, err)
	require.NoError(t, ed.Delete(first))

	// Highlight only, then undo it: the earlier delete must survive.
	_, err = ed.Highlight(MinEnergy)
	require.NoError(t, err)
	highlighted := g.Colors()
	require.True(t, ed.Undo())
	require.Equal(t, 4, g.Width())
	requireLinked(t, g)
	require.NotEqual(t, highlighted, g.Colors(), "highlight colours should be gone")

	require.True(t, ed.Undo())
	require.Equal(t, rows, g.Colors())
}

func TestEditor_DeleteRejectsStaleSeam(t *testing.T) {
	g := NewGrid(randomColors(5, 4, 3))
	ed := NewEditor(g)

	s, err := ed.Highlight(MaxBlue)
	require.NoError(t, err)
	require.NoError(t, ed.Delete(s))
	before := g.Colors()

	err = ed.Delete(s)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInconsistentSeam))
	require.Equal(t, before, g.Colors())
	requireLinked(t, g)

	require.ErrorIs(t, ed.Delete(s[:1]), ErrInconsistentSeam)
	require.ErrorIs(t, ed.Delete(Seam{g.At(0, 1), g.At(0, 0), g.At(0, 2)}), ErrInconsistentSeam)
	require.ErrorIs(t, ed.Delete(Seam{PixelID(-7), g.At(0, 1), g.At(0, 2)}), ErrInconsistentSeam)
}

func TestEditor_EdgeColumns(t *testing.T) {
	tests := []struct {
		name string
		col  int
	}{
		{"leftmost", 0},
		{"rightmost", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const width, height = 4, 3
			rows := make([][]Color, height)
			for y := range rows {
				rows[y] = make([]Color, width)
				rows[y][tt.col] = Blue
			}
			g := NewGrid(rows)
			ed := NewEditor(g)

			s, err := ed.Highlight(MaxBlue)
			require.NoError(t, err)
			require.Equal(t, []int{tt.col, tt.col, tt.col}, seamColumns(t, g, s))
			require.NoError(t, ed.Delete(s))

			require.Equal(t, removeColumns(rows, []int{tt.col, tt.col, tt.col}), g.Colors())
			requireLinked(t, g)

			require.True(t, ed.Undo())
			require.Equal(t, rows, g.Colors())
			requireLinked(t, g)
		})
	}
}

func TestEditor_SingleColumn(t *testing.T) {
	rows := [][]Color{{White}, {Black}, {Blue}}
	g := NewGrid(rows)
	ed := NewEditor(g)

	s, err := ed.Highlight(MinEnergy)
	require.NoError(t, err)
	require.NoError(t, ed.Delete(s))
	require.Equal(t, 0, g.Width())
	for r := 0; r < g.Rows(); r++ {
		require.Equal(t, NoPixel, g.Head(r))
	}

	require.True(t, ed.Undo())
	require.Equal(t, rows, g.Colors())
	requireLinked(t, g)
}

func TestEditor_EmptyGrid(t *testing.T) {
	ed := NewEditor(NewGrid(nil))
	s, err := ed.Highlight(MaxBlue)
	require.ErrorIs(t, err, ErrEmptyGrid)
	require.Empty(t, s)
	require.Equal(t, 0, ed.EditCount())
}

func TestEditor_History(t *testing.T) {
	g := NewFilledGrid(3, 2, White)
	ed := NewEditor(g, WithWorkers(4))

	s, err := ed.Highlight(MaxBlue)
	require.NoError(t, err)

	h := ed.History()
	require.Len(t, h, 1)
	require.Equal(t, []PixelID(s), h[0].Pixels)
	require.Equal(t, []Color{White, White}, h[0].Colors)

	// The copy is detached from the editor.
	h[0].Colors[0] = Black
	require.True(t, ed.Undo())
	require.Equal(t, White, g.Pixel(s[0]).Color)
}
