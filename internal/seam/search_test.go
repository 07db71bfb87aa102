package seam

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// seamColumns returns the column of every seam pixel.
func seamColumns(t *testing.T, g *Grid, s Seam) []int {
	t.Helper()
	cols := make([]int, len(s))
	for i, id := range s {
		x, y, err := g.Locate(id)
		require.NoError(t, err)
		require.Equal(t, i, y, "seam pixel %d is in row %d", i, y)
		cols[i] = x
	}
	return cols
}

func TestFindSeam_Shape(t *testing.T) {
	sizes := []struct{ w, h int }{
		{1, 1}, {1, 7}, {7, 1}, {2, 2}, {5, 9}, {13, 4}, {32, 32},
	}
	for i, sz := range sizes {
		for _, mode := range []Mode{MaxBlue, MinEnergy} {
			g := NewGrid(randomColors(int64(10+i), sz.w, sz.h))
			s := FindSeam(g, mode)

			require.Len(t, s, sz.h)
			cols := seamColumns(t, g, s)
			for r := 1; r < len(cols); r++ {
				d := cols[r] - cols[r-1]
				require.True(t, d >= -1 && d <= 1, "%dx%d %s: rows %d-%d jump %d", sz.w, sz.h, mode, r-1, r, d)
			}
		}
	}
}

func TestFindSeam_Empty(t *testing.T) {
	require.Empty(t, FindSeam(NewGrid(nil), MaxBlue))
	require.Empty(t, FindSeam(NewFilledGrid(0, 4, White), MinEnergy))
}

func TestFindSeam_SingleRow(t *testing.T) {
	g := NewGrid([][]Color{{{B: 10}, {B: 200}, {B: 30}}})
	s := FindSeam(g, MaxBlue)
	require.Equal(t, Seam{g.At(1, 0)}, s)
}

func TestFindSeam_BlueColumn(t *testing.T) {
	const width, height = 6, 5
	rows := make([][]Color, height)
	for y := range rows {
		rows[y] = make([]Color, width)
		rows[y][3] = Blue
	}
	g := NewGrid(rows)

	s := FindSeam(g, MaxBlue)
	require.Equal(t, []int{3, 3, 3, 3, 3}, seamColumns(t, g, s))
}

func TestFindSeam_BluePixelInOffWhite(t *testing.T) {
	offWhite := Color{R: 250, G: 250, B: 250}
	g := NewFilledGrid(3, 3, offWhite)
	g.SetColor(g.At(1, 1), Blue)

	s := FindSeam(g, MaxBlue)
	cols := seamColumns(t, g, s)
	require.Equal(t, 1, cols[1])
	require.Equal(t, []int{1, 1, 0}, cols)
}

func TestFindSeam_AllTiedPicksFirstColumn(t *testing.T) {
	// Marker blue and white have the same blue channel, so every path ties
	// and the leftmost column wins.
	g := NewFilledGrid(3, 3, White)
	g.SetColor(g.At(1, 1), Blue)

	for _, mode := range []Mode{MaxBlue, MinEnergy} {
		flat := NewFilledGrid(4, 4, White)
		require.Equal(t, []int{0, 0, 0, 0}, seamColumns(t, flat, FindSeam(flat, mode)), mode.String())
	}
	require.Equal(t, []int{0, 0, 0}, seamColumns(t, g, FindSeam(g, MaxBlue)))
}

func TestFindSeam_LeftBeatsEqualRight(t *testing.T) {
	rows := [][]Color{
		{{B: 5}, {B: 0}, {B: 5}},
		{{B: 0}, {B: 100}, {B: 0}},
	}
	g := NewGrid(rows)
	require.Equal(t, []int{0, 1}, seamColumns(t, g, FindSeam(g, MaxBlue)))
}

func TestFindSeam_MinEnergyAvoidsEdges(t *testing.T) {
	// Energies per column are 1020, 1020, 0, 0; the first zero column wins.
	row := []Color{Black, White, White, White}
	g := NewGrid([][]Color{row, row, row, row, row})

	s := FindSeam(g, MinEnergy)
	require.Equal(t, []int{2, 2, 2, 2, 2}, seamColumns(t, g, s))
	for _, id := range s {
		require.Zero(t, g.Pixel(id).Energy)
	}
}

func TestBestIndex(t *testing.T) {
	require.Equal(t, 3, BestIndex([]float64{1, 3, 2, 5, 4}, MaxBlue))
	require.Equal(t, 2, BestIndex([]float64{1, 3, 0.5, 5, 4}, MinEnergy))

	same := []float64{2, 2, 2, 2, 2}
	require.Equal(t, 0, BestIndex(same, MaxBlue))
	require.Equal(t, 0, BestIndex(same, MinEnergy))

	require.Equal(t, -1, BestIndex(nil, MaxBlue))
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"blue", MaxBlue, false},
		{"B", MaxBlue, false},
		{" energy ", MinEnergy, false},
		{"e", MinEnergy, false},
		{"r", MinEnergy, false},
		{"green", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestMode_Marker(t *testing.T) {
	require.Equal(t, Blue, MaxBlue.Marker())
	require.Equal(t, Red, MinEnergy.Marker())
	require.Equal(t, "blue", MaxBlue.String())
	require.Equal(t, "energy", MinEnergy.String())
}
