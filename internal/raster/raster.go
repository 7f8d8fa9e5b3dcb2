// Package raster provides scanline polygon filling for mask synthesis
// and page snapshots. It rasterizes a single implicitly closed polygon
// per call; there are no curves, strokes, or anti-aliasing.
package raster

import "math"

// FillRule specifies how the polygon interior is determined.
type FillRule int

const (
	// FillEvenOdd alternates inside/outside at each edge crossing.
	// This matches the even-odd point-in-polygon test used for hit
	// testing, so masks and hit tests agree on interior pixels.
	FillEvenOdd FillRule = iota
	// FillNonZero uses the non-zero winding rule.
	FillNonZero
)

// SpanFunc receives one filled horizontal run per call. The run covers
// pixels [x0, x1) on row y; coordinates are already clamped to the
// target dimensions.
type SpanFunc func(y, x0, x1 int)

// FillPolygon rasterizes a polygon onto a w×h pixel grid, invoking span
// for every interior run. pts is a flat [x0,y0,x1,y1,...] sequence; the
// polygon is implicitly closed. Sampling happens at pixel centers
// (y + 0.5), so a polygon aligned to integer coordinates fills exactly
// the pixels whose centers it contains.
//
// Fewer than 3 points, non-positive dimensions, or a fully horizontal
// polygon produce no spans. Regions outside the grid are clipped.
func FillPolygon(pts []float64, w, h int, rule FillRule, span SpanFunc) {
	n := len(pts) / 2
	if n < 3 || w <= 0 || h <= 0 {
		return
	}

	// Build the edge list, including the closing edge.
	edges := make([]edge, 0, n)
	yMin := math.MaxFloat64
	yMax := -math.MaxFloat64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		e, ok := newEdge(pts[2*i], pts[2*i+1], pts[2*j], pts[2*j+1])
		if !ok {
			continue
		}
		edges = append(edges, e)
		yMin = min(yMin, e.yTop)
		yMax = max(yMax, e.yBot)
	}
	if len(edges) == 0 {
		return
	}

	yStart := int(math.Floor(yMin))
	yEnd := int(math.Ceil(yMax))
	if yStart < 0 {
		yStart = 0
	}
	if yEnd > h {
		yEnd = h
	}

	crossings := make([]crossing, 0, len(edges))
	for y := yStart; y < yEnd; y++ {
		scanY := float64(y) + 0.5

		crossings = crossings[:0]
		for _, e := range edges {
			if e.yTop <= scanY && scanY < e.yBot {
				crossings = append(crossings, crossing{x: e.xAt(scanY), dir: e.dir})
			}
		}
		if len(crossings) == 0 {
			continue
		}
		sortCrossings(crossings)

		if rule == FillNonZero {
			fillNonZero(crossings, y, w, span)
		} else {
			fillEvenOdd(crossings, y, w, span)
		}
	}
}

// fillEvenOdd emits a span for every second crossing interval.
func fillEvenOdd(cs []crossing, y, w int, span SpanFunc) {
	for i := 0; i+1 < len(cs); i += 2 {
		emitSpan(int(cs[i].x), int(cs[i+1].x), y, w, span)
	}
}

// fillNonZero accumulates winding and emits a span each time the winding
// count returns to zero.
func fillNonZero(cs []crossing, y, w int, span SpanFunc) {
	winding := 0
	var x0 float64
	for _, c := range cs {
		if winding == 0 {
			x0 = c.x
		}
		winding += c.dir
		if winding == 0 {
			emitSpan(int(x0), int(c.x), y, w, span)
		}
	}
}

// emitSpan clamps a run to [0, w) and forwards it if non-empty.
func emitSpan(x0, x1, y, w int, span SpanFunc) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 > w {
		x1 = w
	}
	if x0 >= x1 {
		return
	}
	span(y, x0, x1)
}
