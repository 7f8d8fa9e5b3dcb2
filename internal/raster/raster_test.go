package raster

import "testing"

// renderGrid rasterizes pts into a w×h boolean grid.
func renderGrid(pts []float64, w, h int, rule FillRule) [][]bool {
	grid := make([][]bool, h)
	for y := range grid {
		grid[y] = make([]bool, w)
	}
	FillPolygon(pts, w, h, rule, func(y, x0, x1 int) {
		for x := x0; x < x1; x++ {
			grid[y][x] = true
		}
	})
	return grid
}

func countFilled(grid [][]bool) int {
	n := 0
	for _, row := range grid {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

func TestFillPolygonSquare(t *testing.T) {
	square := []float64{0, 0, 10, 0, 10, 10, 0, 10}
	grid := renderGrid(square, 20, 20, FillEvenOdd)

	if got := countFilled(grid); got != 100 {
		t.Errorf("expected 100 filled pixels, got %d", got)
	}
	if !grid[0][0] || !grid[9][9] {
		t.Error("interior corners should be filled")
	}
	if grid[10][5] || grid[5][10] {
		t.Error("pixels outside the square should be empty")
	}
}

func TestFillPolygonTriangle(t *testing.T) {
	tri := []float64{0, 0, 10, 0, 0, 10}
	grid := renderGrid(tri, 12, 12, FillEvenOdd)

	if got := countFilled(grid); got != 45 {
		t.Errorf("expected 45 filled pixels, got %d", got)
	}
	// Rows shrink as the hypotenuse closes in; the last row is empty.
	if !grid[0][8] || grid[0][9] {
		t.Error("row 0 should span [0,9)")
	}
	if !grid[8][0] || grid[8][1] {
		t.Error("row 8 should span [0,1)")
	}
	if grid[9][0] {
		t.Error("row 9 should be empty")
	}
}

func TestFillPolygonFillRules(t *testing.T) {
	// A pentagram's center has winding 2 and crossing parity 0: hollow
	// under even-odd, solid under non-zero. The spikes fill either way.
	star := []float64{50, 0, 79, 90, 2, 35, 98, 35, 21, 90}

	evenOdd := renderGrid(star, 100, 100, FillEvenOdd)
	nonZero := renderGrid(star, 100, 100, FillNonZero)

	if evenOdd[50][50] {
		t.Error("even-odd: star center should be hollow")
	}
	if !nonZero[50][50] {
		t.Error("non-zero: star center should be filled")
	}
	if !evenOdd[20][50] || !nonZero[20][50] {
		t.Error("top spike should be filled under both rules")
	}
}

func TestFillPolygonClipsToBounds(t *testing.T) {
	big := []float64{-5, -5, 15, -5, 15, 15, -5, 15}
	grid := renderGrid(big, 10, 10, FillEvenOdd)
	if got := countFilled(grid); got != 100 {
		t.Errorf("expected the full 10x10 grid filled, got %d", got)
	}
}

func TestFillPolygonDegenerate(t *testing.T) {
	spans := 0
	count := func(y, x0, x1 int) { spans++ }

	FillPolygon([]float64{0, 0, 5, 5}, 10, 10, FillEvenOdd, count)
	FillPolygon([]float64{0, 0, 10, 0, 5, 5}, 0, 10, FillEvenOdd, count)
	FillPolygon([]float64{0, 0, 10, 0, 5, 5}, 10, -1, FillEvenOdd, count)
	FillPolygon([]float64{0, 5, 5, 5, 10, 5}, 10, 10, FillEvenOdd, count)

	if spans != 0 {
		t.Errorf("expected no spans from degenerate inputs, got %d", spans)
	}
}

func TestFillPolygonOffGridAbove(t *testing.T) {
	above := []float64{0, -20, 10, -20, 5, -10}
	grid := renderGrid(above, 10, 10, FillEvenOdd)
	if got := countFilled(grid); got != 0 {
		t.Errorf("polygon fully above the grid should fill nothing, got %d", got)
	}
}
