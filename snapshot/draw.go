package snapshot

import (
	"image"
	"image/color"
	"math"

	"github.com/easelkit/easel/geom"
	"github.com/easelkit/easel/internal/raster"
)

// blendPixel composites c over the destination pixel with source-over.
// The destination stores premultiplied alpha, so the source channels
// are premultiplied before mixing.
func blendPixel(img *image.RGBA, x, y int, c RGBA) {
	sa := c.A
	if sa <= 0 {
		return
	}
	d := img.RGBAAt(x, y)
	inv := 1 - sa
	img.SetRGBA(x, y, color.RGBA{
		R: uint8(clamp255(c.R*sa*255 + float64(d.R)*inv)),
		G: uint8(clamp255(c.G*sa*255 + float64(d.G)*inv)),
		B: uint8(clamp255(c.B*sa*255 + float64(d.B)*inv)),
		A: uint8(clamp255(sa*255 + float64(d.A)*inv)),
	})
}

// fillSpan blends c over the half-open pixel run [x0, x1) on row y.
func fillSpan(img *image.RGBA, y, x0, x1 int, c RGBA) {
	for x := x0; x < x1; x++ {
		blendPixel(img, x, y, c)
	}
}

// fillPath fills a polygon given in snapshot pixel coordinates.
// The scanline filler clips to the image, so callers never clip.
func fillPath(img *image.RGBA, path geom.Path, c RGBA) {
	b := img.Bounds()
	raster.FillPolygon(path, b.Dx(), b.Dy(), raster.FillEvenOdd, func(y, x0, x1 int) {
		fillSpan(img, y, x0, x1, c)
	})
}

// rectPath builds the four-corner polygon of an axis-aligned rectangle.
func rectPath(x, y, w, h float64) geom.Path {
	return geom.Path{x, y, x + w, y, x + w, y + h, x, y + h}
}

// strokeRect paints a rectangle outline of the given line width.
func strokeRect(img *image.RGBA, x, y, w, h, lw float64, c RGBA) {
	fillPath(img, rectPath(x, y, w, lw), c)
	fillPath(img, rectPath(x, y+h-lw, w, lw), c)
	fillPath(img, rectPath(x, y+lw, lw, h-2*lw), c)
	fillPath(img, rectPath(x+w-lw, y+lw, lw, h-2*lw), c)
}

// circlePath approximates a circle with a 48-gon, which keeps the edge
// error under half a pixel for page-scale radii.
func circlePath(cx, cy, r float64) geom.Path {
	const segments = 48
	path := make(geom.Path, 0, segments*2)
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		path = append(path, cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
	return path
}

// strokePolyline paints each segment of pts as a filled quad of the
// given stroke width. Joins are butt-ended.
func strokePolyline(img *image.RGBA, pts geom.Path, width float64, c RGBA) {
	n := pts.PointCount()
	if n == 0 {
		return
	}
	half := width / 2
	if n == 1 {
		p := pts.At(0)
		fillPath(img, rectPath(p.X-half, p.Y-half, width, width), c)
		return
	}
	for i := 0; i+1 < n; i++ {
		p0 := pts.At(i)
		p1 := pts.At(i + 1)
		dx, dy := p1.X-p0.X, p1.Y-p0.Y
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		// Perpendicular unit vector scaled to half the stroke width.
		px, py := -dy/length*half, dx/length*half
		fillPath(img, geom.Path{
			p0.X + px, p0.Y + py,
			p1.X + px, p1.Y + py,
			p1.X - px, p1.Y - py,
			p0.X - px, p0.Y - py,
		}, c)
	}
}

// strokeClosed strokes pts plus the closing segment back to the start.
func strokeClosed(img *image.RGBA, pts geom.Path, width float64, c RGBA) {
	if pts.PointCount() < 3 {
		strokePolyline(img, pts, width, c)
		return
	}
	closed := make(geom.Path, 0, len(pts)+2)
	closed = append(closed, pts...)
	closed = append(closed, pts[0], pts[1])
	strokePolyline(img, closed, width, c)
}
