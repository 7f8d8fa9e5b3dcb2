package mask

import (
	"fmt"

	"github.com/easelkit/easel/geom"
	"github.com/easelkit/easel/internal/raster"
)

// FromPolygon rasterizes a closed polygon into a mask of the given
// dimensions. Pixels inside the polygon under the even-odd rule are set
// to 255; all others stay 0. The polygon is implicitly closed and its
// coordinates are interpreted in the mask's own pixel space, so callers
// transform selection paths into image-local coordinates first.
//
// Coverage is binary. A pixel is either fully inside or fully outside,
// decided at its center; there is no anti-aliasing along edges.
// Backends treat any partial alpha as ambiguous, so edges stay hard.
//
// Returns ErrInvalidPath if the polygon has fewer than 3 points and
// ErrInvalidSize if either dimension is not positive.
func FromPolygon(path geom.Path, width, height int) (*Mask, error) {
	if path.PointCount() < 3 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidPath, path.PointCount())
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	m := New(width, height)
	raster.FillPolygon(path, width, height, raster.FillEvenOdd, func(y, x0, x1 int) {
		row := m.data[y*m.width : (y+1)*m.width]
		for x := x0; x < x1; x++ {
			row[x] = 255
		}
	})
	return m, nil
}
