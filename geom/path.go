package geom

// Path is a polyline or polygon stored as a flat sequence of coordinate
// pairs: [x0, y0, x1, y1, ...]. The length is always even. A path with at
// least 3 points (6 values) forms a valid polygon; polygons are implicitly
// closed (the last point connects back to the first).
//
// Path is the wire-friendly representation used throughout the canvas
// core: freehand strokes, lasso selections, and mask outlines are all
// paths. Appending a point is plain slice appending:
//
//	p = append(p, x, y)
type Path []float64

// PointCount returns the number of points in the path.
func (p Path) PointCount() int {
	return len(p) / 2
}

// At returns the i-th point. The caller must ensure i < PointCount().
func (p Path) At(i int) Point {
	return Point{X: p[2*i], Y: p[2*i+1]}
}

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Translate shifts every point by (dx, dy) in place.
func (p Path) Translate(dx, dy float64) {
	for i := 0; i+1 < len(p); i += 2 {
		p[i] += dx
		p[i+1] += dy
	}
}

// BoundingBox returns the axis-aligned bounding rectangle of the path.
// Returns the zero Rect for an empty path.
func (p Path) BoundingBox() Rect {
	n := p.PointCount()
	if n == 0 {
		return Rect{}
	}
	minX, minY := p[0], p[1]
	maxX, maxY := p[0], p[1]
	for i := 1; i < n; i++ {
		pt := p.At(i)
		minX = min(minX, pt.X)
		minY = min(minY, pt.Y)
		maxX = max(maxX, pt.X)
		maxY = max(maxY, pt.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
