package mask

import "iter"

// Span is a maximal horizontal run of opaque pixels on a single row.
// The range is half-open: pixels X0 <= x < X1 are covered.
type Span struct {
	Y  int
	X0 int
	X1 int
}

// Spans yields every maximal run of fully-opaque pixels, top to bottom,
// left to right. Compositing code iterates runs instead of testing
// pixels one by one, which keeps tinting and blending loops tight for
// masks with long horizontal extents.
func (m *Mask) Spans() iter.Seq[Span] {
	return func(yield func(Span) bool) {
		for y := 0; y < m.height; y++ {
			row := m.data[y*m.width : (y+1)*m.width]
			x := 0
			for x < m.width {
				if row[x] != 255 {
					x++
					continue
				}
				x0 := x
				for x < m.width && row[x] == 255 {
					x++
				}
				if !yield(Span{Y: y, X0: x0, X1: x}) {
					return
				}
			}
		}
	}
}

// Coverage returns the covered fraction of the mask area in [0, 1].
// Partial alpha contributes proportionally.
func (m *Mask) Coverage() float64 {
	if len(m.data) == 0 {
		return 0
	}
	var sum uint64
	for _, a := range m.data {
		sum += uint64(a)
	}
	return float64(sum) / (255 * float64(len(m.data)))
}
