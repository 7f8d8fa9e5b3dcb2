package easel

import (
	"fmt"

	"github.com/easelkit/easel/mask"
)

// TextMeasurer reports the advance width of a single line of text at a
// font size, in the same units as the font size. textmetrics.Shaper
// implements it.
type TextMeasurer interface {
	MeasureWidth(text string, fontSize float64) float64
}

// fallbackAdvance sizes text when no measurer is configured: a flat
// per-rune advance at 60% of the font size.
const fallbackAdvance = 0.6

// Session owns one canvas: its pages, elements, viewport, assets, and the
// lasso-selection lifecycle. Every mutation goes through a Session method,
// and list mutations swap in a fully-built slice, so a replace-style
// placement is observable either completely or not at all.
//
// A Session confines itself to a single goroutine; see the package
// documentation for the concurrency model.
type Session struct {
	layout  PageLayout
	screenW float64
	screenH float64

	viewport Viewport
	pages    []Page
	elements []Element
	assets   map[string]Asset

	sel     selection
	maskCtx *MaskContext

	measurer TextMeasurer
	newID    func() string
}

// NewSession creates a session with one empty page and the viewport at
// the top of the stack.
func NewSession(opts ...SessionOption) *Session {
	o := defaultSessionOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Session{
		layout:   o.layout,
		screenW:  o.screenW,
		screenH:  o.screenH,
		viewport: Viewport{Scale: 1},
		pages:    []Page{{ID: 1, Y: 0}},
		assets:   make(map[string]Asset),
		measurer: o.measurer,
		newID:    o.newID,
	}
	s.viewport = s.viewport.Constrain(s.layout, len(s.pages), s.screenW, s.screenH)
	return s
}

// Layout returns the session's page geometry.
func (s *Session) Layout() PageLayout { return s.layout }

// Viewport returns the current screen-to-world mapping.
func (s *Session) Viewport() Viewport { return s.viewport }

// SetViewportSize updates the screen dimensions and re-constrains the
// viewport. Call it on window resize.
func (s *Session) SetViewportSize(width, height float64) {
	s.screenW = width
	s.screenH = height
	s.viewport = s.viewport.Constrain(s.layout, len(s.pages), s.screenW, s.screenH)
}

// Scroll moves the viewport vertically by dy screen pixels. The result is
// clamped to the page stack; horizontal panning does not exist, so there
// is no dx.
func (s *Session) Scroll(dy float64) {
	s.viewport.Y += dy
	s.viewport = s.viewport.Constrain(s.layout, len(s.pages), s.screenW, s.screenH)
}

// Zoom scales the viewport by factor, keeping the world point under the
// focus position fixed on screen. The resulting scale is clamped to
// [MinZoom, MaxZoom] and the viewport re-constrained.
func (s *Session) Zoom(factor float64, focus ScreenPoint) {
	oldScale := s.viewport.Scale
	newScale := clampZoom(oldScale * factor)
	if newScale == oldScale {
		return
	}

	w := s.viewport.ToWorld(focus)
	s.viewport.Scale = newScale
	s.viewport.X = focus.X - w.X*newScale
	s.viewport.Y = focus.Y - w.Y*newScale
	s.viewport = s.viewport.Constrain(s.layout, len(s.pages), s.screenW, s.screenH)
}

// ZoomIn applies one zoom step centered on the viewport.
func (s *Session) ZoomIn() {
	s.Zoom(ZoomStep, ScreenPoint{X: s.screenW / 2, Y: s.screenH / 2})
}

// ZoomOut applies one inverse zoom step centered on the viewport.
func (s *Session) ZoomOut() {
	s.Zoom(1/ZoomStep, ScreenPoint{X: s.screenW / 2, Y: s.screenH / 2})
}

// Pages returns a copy of the page stack, top to bottom.
func (s *Session) Pages() []Page {
	out := make([]Page, len(s.pages))
	copy(out, s.pages)
	return out
}

// PageCount returns the number of pages in the stack.
func (s *Session) PageCount() int { return len(s.pages) }

// EnsurePage grows the stack until the given 1-based page exists. Pages
// are only ever appended; asking for an existing page is a no-op.
func (s *Session) EnsurePage(pageNumber int) error {
	if pageNumber < 1 {
		return fmt.Errorf("%w: %d", ErrNoPage, pageNumber)
	}
	if pageNumber <= len(s.pages) {
		return nil
	}
	s.pages = EnsurePages(s.pages, pageNumber, s.layout)
	s.viewport = s.viewport.Constrain(s.layout, len(s.pages), s.screenW, s.screenH)
	Logger().Info("page stack grown", "pages", len(s.pages))
	return nil
}

// Elements returns the canvas elements in list order. The slice is a
// copy; the elements themselves are shared, so treat them as read-only
// and mutate through session methods.
func (s *Session) Elements() []Element {
	out := make([]Element, len(s.elements))
	copy(out, s.elements)
	return out
}

// ElementByID finds an element by its ID.
func (s *Session) ElementByID(id string) (Element, error) {
	for _, el := range s.elements {
		if el.ID() == id {
			return el, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownElement, id)
}

// Add appends an element to the canvas and returns its ID, assigning one
// if the element has none. Text elements with no width are measured here.
func (s *Session) Add(el Element) string {
	if el.ID() == "" {
		el.setID(s.newID())
	}
	if t, ok := el.(*Text); ok && t.Width == 0 {
		t.Width = s.measureText(t.Content, t.FontSize)
	}
	s.elements = append(s.elements, el)
	return el.ID()
}

// Remove deletes an element by ID. Removing the mask context's target
// image invalidates the selection.
func (s *Session) Remove(id string) error {
	for i, el := range s.elements {
		if el.ID() != id {
			continue
		}
		out := make([]Element, 0, len(s.elements)-1)
		out = append(out, s.elements[:i]...)
		out = append(out, s.elements[i+1:]...)
		s.elements = out
		s.dropStaleMaskContext()
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownElement, id)
}

// MoveElement translates an element by (dx, dy) world units.
func (s *Session) MoveElement(id string, dx, dy float64) error {
	el, err := s.ElementByID(id)
	if err != nil {
		return err
	}
	el.Translate(dx, dy)
	return nil
}

// RegisterAsset records an asset, assigning an ID if it has none, and
// returns the stored record. Registering an existing ID overwrites it.
func (s *Session) RegisterAsset(a Asset) Asset {
	if a.ID == "" {
		a.ID = s.newID()
	}
	s.assets[a.ID] = a
	return a
}

// AssetByID finds a registered asset.
func (s *Session) AssetByID(id string) (Asset, error) {
	a, ok := s.assets[id]
	if !ok {
		return Asset{}, fmt.Errorf("%w: %s", ErrUnknownAsset, id)
	}
	return a, nil
}

// PlaceImage places a registered asset on the given 1-based page,
// creating the page if needed. With replace set, elements overlapping the
// page's vertical span are removed in the same step; the swap is atomic,
// so observers never see the page half-cleared. Returns the new image
// element.
func (s *Session) PlaceImage(pageNumber int, assetID string, replace bool) (*Image, error) {
	a, err := s.AssetByID(assetID)
	if err != nil {
		return nil, err
	}
	if err := s.EnsurePage(pageNumber); err != nil {
		return nil, err
	}

	img := CenteredImage(pageNumber, s.layout, a)
	img.setID(s.newID())
	s.elements = PlaceOnPage(s.elements, pageNumber, s.layout, img, replace)
	s.dropStaleMaskContext()
	Logger().Info("image placed", "page", pageNumber, "asset", assetID, "replace", replace)
	return img, nil
}

// HandlePlacement services a generation-service response: the referenced
// image is registered as an asset with canonical page dimensions and
// placed on the requested page.
func (s *Session) HandlePlacement(req PlacementRequest) (*Image, error) {
	a := Asset{
		URL:    req.ImageURL,
		Width:  int(s.layout.Width),
		Height: int(s.layout.Height),
	}
	if img, _, err := DecodeDataURL(req.ImageURL); err == nil {
		b := img.Bounds()
		a.Width, a.Height = b.Dx(), b.Dy()
	}
	a = s.RegisterAsset(a)
	return s.PlaceImage(req.PageNumber, a.ID, req.Replace)
}

// BuildMaskSubmission rasterizes the active selection into an inpainting
// payload for the target image. It requires a completed selection with a
// resolved mask context; otherwise it returns ErrNoMaskContext. The mask
// is rendered at the target asset's native resolution so it aligns with
// the asset pixel-for-pixel.
func (s *Session) BuildMaskSubmission(editPrompt string) (MaskSubmission, error) {
	if s.maskCtx == nil || s.sel.state != SelectionCompleted {
		return MaskSubmission{}, ErrNoMaskContext
	}

	el, err := s.ElementByID(s.maskCtx.TargetImageID)
	if err != nil {
		return MaskSubmission{}, fmt.Errorf("mask target vanished: %w", err)
	}
	img, ok := el.(*Image)
	if !ok {
		return MaskSubmission{}, fmt.Errorf("mask target vanished: %w", ErrNoMaskContext)
	}

	nw, nh := s.assetNativeSize(img)
	m, err := mask.FromPolygon(s.maskCtx.SelectionPathImage, nw, nh)
	if err != nil {
		return MaskSubmission{}, err
	}

	b64, err := m.Base64()
	if err != nil {
		return MaskSubmission{}, err
	}

	Logger().Debug("mask built",
		"target", s.maskCtx.TargetImageID,
		"size", fmt.Sprintf("%dx%d", nw, nh),
		"coverage", m.Coverage())
	return MaskSubmission{
		TargetImageID: s.maskCtx.TargetImageID,
		MaskPNG:       b64,
		EditPrompt:    editPrompt,
	}, nil
}

// assetNativeSize returns the native pixel dimensions for an image
// element: the registered asset's size, or the canonical page size when
// the asset is unknown or degenerate.
func (s *Session) assetNativeSize(img *Image) (w, h int) {
	if a, err := s.AssetByID(img.AssetID); err == nil && a.Width > 0 && a.Height > 0 {
		return a.Width, a.Height
	}
	return int(s.layout.Width), int(s.layout.Height)
}

// dropStaleMaskContext clears the mask context when its target image has
// left the canvas, and prunes captured IDs that no longer resolve.
func (s *Session) dropStaleMaskContext() {
	if s.maskCtx == nil {
		return
	}
	if _, err := s.ElementByID(s.maskCtx.TargetImageID); err != nil {
		s.resetSelection()
	}
}

// measureText returns the advance width of a line of text, using the
// configured measurer when present.
func (s *Session) measureText(text string, fontSize float64) float64 {
	if s.measurer != nil {
		return s.measurer.MeasureWidth(text, fontSize)
	}
	return float64(len([]rune(text))) * fontSize * fallbackAdvance
}

// ScreenToWorld converts a screen position through the current viewport.
func (s *Session) ScreenToWorld(p ScreenPoint) WorldPoint {
	return s.viewport.ToWorld(p)
}

// WorldToScreen converts a world position through the current viewport.
func (s *Session) WorldToScreen(p WorldPoint) ScreenPoint {
	return s.viewport.ToScreen(p)
}

// PageAt returns the 1-based page number containing the world point, or
// 0 when the point is in a margin or outside the stack.
func (s *Session) PageAt(p WorldPoint) int {
	if p.X < 0 || p.X >= s.layout.Width {
		return 0
	}
	for i := range s.pages {
		top, bottom := s.layout.Span(i + 1)
		if p.Y >= top && p.Y < bottom {
			return i + 1
		}
	}
	return 0
}
