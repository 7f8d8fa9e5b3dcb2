// Package snapshot renders session pages to raster images.
//
// The renderer is headless. It paints the page background, the elements
// that touch the page in list order, and the active selection tint into
// an image.RGBA, then encodes PNG on request. Asset pixels come from an
// ImageSource; everything else is drawn from element geometry. Text
// elements render as their measured extent with a baseline rule rather
// than shaped glyphs.
package snapshot

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/easelkit/easel"
	"github.com/easelkit/easel/cache"
	"github.com/easelkit/easel/geom"
	"github.com/easelkit/easel/mask"
	"github.com/easelkit/easel/textmetrics"
)

// scaledCapacity is the per-shard limit of the rescaled pixel cache.
const scaledCapacity = 32

// Renderer paints session pages. It is safe for concurrent use as long
// as the sessions passed in are externally synchronized.
type Renderer struct {
	source ImageSource
	shaper *textmetrics.Shaper
	scale  float64
	scaled *cache.ShardedCache[string, *image.RGBA]
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithImageSource sets where asset pixels are decoded from.
// The default source handles data URLs only.
func WithImageSource(src ImageSource) Option {
	return func(r *Renderer) {
		if src != nil {
			r.source = src
		}
	}
}

// WithTextShaper supplies font metrics for text baseline placement.
// Without one, the baseline falls back to a fixed fraction of the font size.
func WithTextShaper(s *textmetrics.Shaper) Option {
	return func(r *Renderer) {
		r.shaper = s
	}
}

// WithScale sets the output resolution as a fraction of world units.
// Scale 1 renders a page at its native pixel size; 0.25 yields thumbnails.
func WithScale(scale float64) Option {
	return func(r *Renderer) {
		if scale > 0 {
			r.scale = scale
		}
	}
}

// NewRenderer creates a page renderer.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		source: DataURLSource{},
		scale:  1,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.scaled = cache.NewSharded[string, *image.RGBA](scaledCapacity, cache.StringHasher)
	return r
}

// CacheStats reports hit and eviction counters of the pixel cache.
func (r *Renderer) CacheStats() cache.Stats {
	return r.scaled.Stats()
}

// RenderPage paints one page of the session and returns the image.
// The page must already exist in the session's stack.
func (r *Renderer) RenderPage(s *easel.Session, pageNumber int) (*image.RGBA, error) {
	if pageNumber < 1 || pageNumber > s.PageCount() {
		return nil, fmt.Errorf("%w: page %d of %d", ErrUnknownPage, pageNumber, s.PageCount())
	}

	layout := s.Layout()
	top, bottom := layout.Span(pageNumber)
	w := int(math.Round(layout.Width * r.scale))
	h := int(math.Round(layout.Height * r.scale))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(Paper.Color()), image.Point{}, draw.Src)

	// Elements whose vertical span overlaps the page, in list order.
	for _, el := range s.Elements() {
		b := el.Bounds()
		if b.Y >= bottom || b.MaxY() <= top {
			continue
		}
		r.drawElement(img, s, el, top)
	}

	r.drawSelection(img, s, top)

	easel.Logger().Debug("page rendered", "page", pageNumber, "size", fmt.Sprintf("%dx%d", w, h))
	return img, nil
}

// EncodePage renders a page and writes it to w as PNG.
func (r *Renderer) EncodePage(w io.Writer, s *easel.Session, pageNumber int) error {
	img, err := r.RenderPage(s, pageNumber)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// PagePNG renders a page and returns the encoded PNG bytes.
func (r *Renderer) PagePNG(s *easel.Session, pageNumber int) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.EncodePage(&buf, s, pageNumber); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// toPage maps world coordinates to snapshot pixels for a page starting
// at pageTop.
func (r *Renderer) toPage(wx, wy, pageTop float64) (float64, float64) {
	return wx * r.scale, (wy - pageTop) * r.scale
}

// lineWidth is the stroke width in snapshot pixels, never thinner than
// one pixel.
func (r *Renderer) lineWidth() float64 {
	return max(1, 2*r.scale)
}

// localPoints maps an origin-relative point list to snapshot pixels.
func (r *Renderer) localPoints(ox, oy float64, pts geom.Path, pageTop float64) geom.Path {
	out := make(geom.Path, len(pts))
	for i := 0; i+1 < len(pts); i += 2 {
		out[i] = (ox + pts[i]) * r.scale
		out[i+1] = (oy + pts[i+1] - pageTop) * r.scale
	}
	return out
}

// colorOr parses an element color, falling back when it is unset.
func colorOr(hex string, fallback RGBA) RGBA {
	if hex == "" {
		return fallback
	}
	return Hex(hex)
}

func (r *Renderer) drawElement(img *image.RGBA, s *easel.Session, el easel.Element, pageTop float64) {
	switch e := el.(type) {
	case *easel.Rectangle:
		x, y := r.toPage(e.X, e.Y, pageTop)
		w, h := e.Width*r.scale, e.Height*r.scale
		c := colorOr(e.Color, ShapeBlue)
		fillPath(img, rectPath(x, y, w, h), c.WithAlpha(0.35))
		strokeRect(img, x, y, w, h, r.lineWidth(), c)

	case *easel.Sticky:
		x, y := r.toPage(e.X, e.Y, pageTop)
		w, h := e.Width*r.scale, e.Height*r.scale
		c := colorOr(e.Color, StickyYellow)
		fillPath(img, rectPath(x, y, w, h), c)
		strokeRect(img, x, y, w, h, r.lineWidth(), c.Lerp(Ink, 0.3))

	case *easel.Text:
		r.drawText(img, e, pageTop)

	case *easel.Circle:
		cx, cy := r.toPage(e.X, e.Y, pageTop)
		c := colorOr(e.Color, ShapeBlue)
		outline := circlePath(cx, cy, e.Radius*r.scale)
		fillPath(img, outline, c.WithAlpha(0.35))
		strokeClosed(img, outline, r.lineWidth(), c)

	case *easel.Freehand:
		strokePolyline(img, r.localPoints(e.X, e.Y, e.Points, pageTop), r.lineWidth(), colorOr(e.Color, Ink))

	case *easel.Line:
		strokePolyline(img, r.localPoints(e.X, e.Y, e.Points, pageTop), r.lineWidth(), colorOr(e.Color, Ink))

	case *easel.Image:
		r.drawImage(img, s, e, pageTop)
	}
}

// drawText paints the measured extent of a text element: a faint box
// over the line plus a baseline rule of the measured width.
func (r *Renderer) drawText(img *image.RGBA, e *easel.Text, pageTop float64) {
	b := e.Bounds()
	if b.Width <= 0 {
		return
	}
	x, y := r.toPage(e.X, e.Y, pageTop)
	w, h := b.Width*r.scale, b.Height*r.scale
	c := colorOr(e.Color, Ink)
	fillPath(img, rectPath(x, y, w, h), c.WithAlpha(0.12))

	ascent := 0.8 * e.FontSize
	if r.shaper != nil {
		ascent = r.shaper.Metrics(e.FontSize).Ascent
	}
	baseline := y + ascent*r.scale
	fillPath(img, rectPath(x, baseline, w, max(1, r.scale)), c)
}

func (r *Renderer) drawImage(img *image.RGBA, s *easel.Session, e *easel.Image, pageTop float64) {
	x, y := r.toPage(e.X, e.Y, pageTop)
	w := int(math.Round(e.Width * r.scale))
	h := int(math.Round(e.Height * r.scale))
	if w < 1 || h < 1 {
		return
	}

	pixels := r.scaledPixels(s, e.AssetID, w, h)
	if pixels == nil {
		// Placeholder keeps the layout readable when pixels are missing.
		fillPath(img, rectPath(x, y, float64(w), float64(h)), Placeholder)
		strokeRect(img, x, y, float64(w), float64(h), r.lineWidth(), Placeholder.Lerp(Ink, 0.4))
		return
	}

	x0, y0 := int(math.Round(x)), int(math.Round(y))
	draw.Draw(img, image.Rect(x0, y0, x0+w, y0+h), pixels, image.Point{}, draw.Over)
}

// scaledPixels returns the asset rescaled to w by h, consulting the
// shared cache first. Decode failures are cached as nil so a bad asset
// is not re-decoded on every render.
func (r *Renderer) scaledPixels(s *easel.Session, assetID string, w, h int) *image.RGBA {
	key := fmt.Sprintf("%s@%dx%d", assetID, w, h)
	if cached, ok := r.scaled.Get(key); ok {
		return cached
	}

	scaled := r.buildScaled(s, assetID, w, h)
	r.scaled.Set(key, scaled)
	return scaled
}

func (r *Renderer) buildScaled(s *easel.Session, assetID string, w, h int) *image.RGBA {
	asset, err := s.AssetByID(assetID)
	if err != nil {
		easel.Logger().Warn("image element references unknown asset", "asset", assetID)
		return nil
	}

	src, err := r.source.ImageForAsset(asset)
	if err != nil {
		easel.Logger().Warn("asset pixels unavailable", "asset", assetID, "err", err)
		return nil
	}

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(out, out.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return out
}

// drawSelection tints the lasso region and strokes its outline when a
// selection is active over this page.
func (r *Renderer) drawSelection(img *image.RGBA, s *easel.Session, pageTop float64) {
	state := s.SelectionState()
	if state == easel.SelectionIdle {
		return
	}
	hull := s.SelectionPath()
	if hull.PointCount() == 0 {
		return
	}

	local := make(geom.Path, len(hull))
	for i := 0; i+1 < len(hull); i += 2 {
		local[i] = hull[i] * r.scale
		local[i+1] = (hull[i+1] - pageTop) * r.scale
	}

	if state != easel.SelectionDrawing && local.PointCount() >= 3 {
		b := img.Bounds()
		if m, err := mask.FromPolygon(local, b.Dx(), b.Dy()); err == nil {
			for span := range m.Spans() {
				fillSpan(img, span.Y, span.X0, span.X1, Accent.WithAlpha(0.25))
			}
		}
		strokeClosed(img, local, r.lineWidth(), Accent)
		return
	}

	// While drawing, only the open polyline exists.
	strokePolyline(img, local, r.lineWidth(), Accent)
}
