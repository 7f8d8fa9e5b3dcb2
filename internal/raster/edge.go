package raster

// horizontalEps is the minimum |dy| for an edge to participate in
// scanline crossings. Horizontal edges never cross a scanline.
const horizontalEps = 0.001

// edge is a non-horizontal polygon edge prepared for scanline traversal.
// Stored with yTop < yBot regardless of the input direction; dir keeps
// the original winding for the non-zero fill rule.
type edge struct {
	yTop, yBot float64
	xTop       float64 // x at yTop
	dxdy       float64 // x increment per unit y
	dir        int     // +1 if the input edge pointed down, -1 if up
}

// newEdge builds an edge from two endpoints. ok is false for edges too
// close to horizontal to matter.
func newEdge(x0, y0, x1, y1 float64) (e edge, ok bool) {
	dy := y1 - y0
	if dy > -horizontalEps && dy < horizontalEps {
		return edge{}, false
	}
	e.dir = 1
	if dy < 0 {
		x0, y0, x1, y1 = x1, y1, x0, y0
		e.dir = -1
	}
	e.yTop = y0
	e.yBot = y1
	e.xTop = x0
	e.dxdy = (x1 - x0) / (y1 - y0)
	return e, true
}

// xAt returns the x coordinate where the edge crosses the scanline y.
func (e edge) xAt(y float64) float64 {
	return e.xTop + (y-e.yTop)*e.dxdy
}

// crossing is one edge/scanline intersection.
type crossing struct {
	x   float64
	dir int
}

// sortCrossings orders crossings by x with an insertion sort. Crossing
// lists are short and nearly sorted between neighboring scanlines, where
// insertion sort beats the general-purpose algorithms.
func sortCrossings(cs []crossing) {
	for i := 1; i < len(cs); i++ {
		c := cs[i]
		j := i - 1
		for j >= 0 && cs[j].x > c.x {
			cs[j+1] = cs[j]
			j--
		}
		cs[j+1] = c
	}
}
