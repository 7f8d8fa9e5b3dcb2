package easel

import "github.com/easelkit/easel/geom"

// ElementKind identifies the concrete type of a canvas element.
type ElementKind string

// Element kinds, as they appear in serialized canvases and tool calls.
const (
	KindRectangle ElementKind = "rectangle"
	KindSticky    ElementKind = "sticky"
	KindText      ElementKind = "text"
	KindCircle    ElementKind = "circle"
	KindFreehand  ElementKind = "freehand"
	KindLine      ElementKind = "line"
	KindImage     ElementKind = "image"
)

// TextLineHeight converts a font size to the vertical extent of a
// single-line text element.
const TextLineHeight = 1.5

// Element is a drawable item on the canvas. The concrete types are
// Rectangle, Sticky, Text, Circle, Freehand, Line, and Image.
//
// Bounds is the element's axis-aligned bounding rectangle in world units.
// Page replacement and overlap resolution both operate on these bounds,
// so every type defines them to cover its full drawn extent.
type Element interface {
	// ID returns the element's canvas-unique identifier.
	ID() string
	// Kind returns the element's type tag.
	Kind() ElementKind
	// Bounds returns the world-space axis-aligned bounding rectangle.
	Bounds() geom.Rect
	// Translate moves the element by (dx, dy) world units.
	Translate(dx, dy float64)

	setID(string)
}

// elemID carries the identity shared by every element kind.
type elemID struct {
	id string
}

func (e *elemID) ID() string      { return e.id }
func (e *elemID) setID(id string) { e.id = id }

// Rectangle is an axis-aligned filled rectangle.
type Rectangle struct {
	elemID
	X      float64
	Y      float64
	Width  float64
	Height float64
	Color  string
}

// NewRectangle creates a rectangle at (x, y) with the given size.
func NewRectangle(x, y, width, height float64) *Rectangle {
	return &Rectangle{X: x, Y: y, Width: width, Height: height}
}

func (r *Rectangle) Kind() ElementKind { return KindRectangle }

func (r *Rectangle) Bounds() geom.Rect {
	return geom.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

func (r *Rectangle) Translate(dx, dy float64) {
	r.X += dx
	r.Y += dy
}

// Sticky is a square note with a short text body.
type Sticky struct {
	elemID
	X      float64
	Y      float64
	Width  float64
	Height float64
	Text   string
	Color  string
}

// NewSticky creates a sticky note at (x, y) with the given size and text.
func NewSticky(x, y, width, height float64, text string) *Sticky {
	return &Sticky{X: x, Y: y, Width: width, Height: height, Text: text}
}

func (s *Sticky) Kind() ElementKind { return KindSticky }

func (s *Sticky) Bounds() geom.Rect {
	return geom.Rect{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}
}

func (s *Sticky) Translate(dx, dy float64) {
	s.X += dx
	s.Y += dy
}

// Text is a single line of text anchored at its top-left corner.
//
// Width is the measured advance width of Content at FontSize. The session
// fills it in on insert when a text measurer is configured; a zero Width
// makes the element's bounds degenerate but is otherwise harmless.
type Text struct {
	elemID
	X        float64
	Y        float64
	Content  string
	FontSize float64
	Width    float64
	Color    string
}

// NewText creates a text element at (x, y) with the given content and size.
func NewText(x, y float64, content string, fontSize float64) *Text {
	return &Text{X: x, Y: y, Content: content, FontSize: fontSize}
}

func (t *Text) Kind() ElementKind { return KindText }

// Bounds approximates the text extent as measured width by one line height.
func (t *Text) Bounds() geom.Rect {
	return geom.Rect{X: t.X, Y: t.Y, Width: t.Width, Height: t.FontSize * TextLineHeight}
}

func (t *Text) Translate(dx, dy float64) {
	t.X += dx
	t.Y += dy
}

// Circle is a filled circle. X and Y are the center.
type Circle struct {
	elemID
	X      float64
	Y      float64
	Radius float64
	Color  string
}

// NewCircle creates a circle centered at (x, y).
func NewCircle(x, y, radius float64) *Circle {
	return &Circle{X: x, Y: y, Radius: radius}
}

func (c *Circle) Kind() ElementKind { return KindCircle }

func (c *Circle) Bounds() geom.Rect {
	return geom.Rect{
		X:      c.X - c.Radius,
		Y:      c.Y - c.Radius,
		Width:  2 * c.Radius,
		Height: 2 * c.Radius,
	}
}

func (c *Circle) Translate(dx, dy float64) {
	c.X += dx
	c.Y += dy
}

// Freehand is a hand-drawn stroke. Points are stored relative to the
// (X, Y) origin so dragging moves the origin only.
type Freehand struct {
	elemID
	X      float64
	Y      float64
	Points geom.Path
	Color  string
}

// NewFreehand creates a freehand stroke at (x, y) from origin-relative points.
func NewFreehand(x, y float64, points geom.Path) *Freehand {
	return &Freehand{X: x, Y: y, Points: points}
}

func (f *Freehand) Kind() ElementKind { return KindFreehand }

func (f *Freehand) Bounds() geom.Rect {
	bb := f.Points.BoundingBox()
	return geom.Rect{X: f.X + bb.X, Y: f.Y + bb.Y, Width: bb.Width, Height: bb.Height}
}

func (f *Freehand) Translate(dx, dy float64) {
	f.X += dx
	f.Y += dy
}

// Line is a straight segment or polyline. Points are stored relative to
// the (X, Y) origin, like Freehand.
type Line struct {
	elemID
	X      float64
	Y      float64
	Points geom.Path
	Color  string
}

// NewLine creates a line at (x, y) from origin-relative points.
func NewLine(x, y float64, points geom.Path) *Line {
	return &Line{X: x, Y: y, Points: points}
}

func (l *Line) Kind() ElementKind { return KindLine }

func (l *Line) Bounds() geom.Rect {
	bb := l.Points.BoundingBox()
	return geom.Rect{X: l.X + bb.X, Y: l.Y + bb.Y, Width: bb.Width, Height: bb.Height}
}

func (l *Line) Translate(dx, dy float64) {
	l.X += dx
	l.Y += dy
}

// Image is a placed image asset. AssetID links to the session's asset
// registry for the native pixel dimensions and source URL.
type Image struct {
	elemID
	X       float64
	Y       float64
	Width   float64
	Height  float64
	AssetID string
}

// NewImage creates an image element at (x, y) with the given world size.
func NewImage(x, y, width, height float64, assetID string) *Image {
	return &Image{X: x, Y: y, Width: width, Height: height, AssetID: assetID}
}

func (im *Image) Kind() ElementKind { return KindImage }

func (im *Image) Bounds() geom.Rect {
	return geom.Rect{X: im.X, Y: im.Y, Width: im.Width, Height: im.Height}
}

func (im *Image) Translate(dx, dy float64) {
	im.X += dx
	im.Y += dy
}
