package easel

import "github.com/easelkit/easel/geom"

// SelectionState tracks the lasso lifecycle.
type SelectionState int

const (
	// SelectionIdle means no selection is in progress or on screen.
	SelectionIdle SelectionState = iota
	// SelectionDrawing accumulates vertices while the pointer is down.
	SelectionDrawing
	// SelectionCompleted holds a normalized, closed selection hull.
	// It is the only state in which a mask context may exist.
	SelectionCompleted
	// SelectionDragging moves the hull and its captured elements with
	// the pointer.
	SelectionDragging
)

// String returns the state name as used in logs and tool responses.
func (s SelectionState) String() string {
	switch s {
	case SelectionIdle:
		return "idle"
	case SelectionDrawing:
		return "drawing"
	case SelectionCompleted:
		return "completed"
	case SelectionDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// selection holds the in-progress lasso state.
type selection struct {
	state    SelectionState
	path     geom.Path // world-space vertices
	captured []string  // IDs of elements overlapped at completion
	lastDrag WorldPoint
}

// SelectionState returns the current lasso state.
func (s *Session) SelectionState() SelectionState {
	return s.sel.state
}

// SelectionPath returns a copy of the current selection hull in world
// units. It is empty in the idle state.
func (s *Session) SelectionPath() geom.Path {
	return s.sel.path.Clone()
}

// MaskContext returns the active mask context, or nil when the selection
// is not completed or resolved to no image. The returned value is shared;
// callers must treat it as read-only.
func (s *Session) MaskContext() *MaskContext {
	return s.maskCtx
}

// BeginSelection starts a new lasso at the given screen position. Any
// prior selection, completed or not, is discarded along with its mask
// context.
func (s *Session) BeginSelection(p ScreenPoint) {
	w := s.viewport.ToWorld(p)
	s.sel = selection{
		state: SelectionDrawing,
		path:  geom.Path{w.X, w.Y},
	}
	s.maskCtx = nil
}

// ExtendSelection appends a vertex to the lasso being drawn. Outside the
// drawing state it does nothing.
func (s *Session) ExtendSelection(p ScreenPoint) {
	if s.sel.state != SelectionDrawing {
		return
	}
	w := s.viewport.ToWorld(p)
	s.sel.path = append(s.sel.path, w.X, w.Y)
}

// CompleteSelection closes the lasso: the path is normalized, elements
// under the hull are captured for dragging, and the overlap resolver
// picks the image the selection edits. It returns the resulting mask
// context, which is nil when no image overlaps the hull.
//
// A lasso with fewer than 3 vertices is degenerate: the selection resets
// to idle with no error, matching the pointer-up-without-drag gesture.
func (s *Session) CompleteSelection() *MaskContext {
	if s.sel.state != SelectionDrawing {
		return s.maskCtx
	}
	if s.sel.path.PointCount() < 3 {
		s.resetSelection()
		return nil
	}

	s.sel.path = geom.NormalizePolygon(s.sel.path)
	s.sel.state = SelectionCompleted
	s.sel.captured = s.captureElements(s.sel.path)

	img := ResolveMaskTarget(s.elements, s.sel.path)
	if img == nil {
		s.maskCtx = nil
		Logger().Warn("selection resolved to no image target",
			"vertices", s.sel.path.PointCount())
		return nil
	}

	nw, nh := s.assetNativeSize(img)
	s.maskCtx = &MaskContext{
		TargetImageID:      img.ID(),
		SelectionPathWorld: s.sel.path.Clone(),
		SelectionPathImage: WorldPathToImage(s.sel.path, img.Bounds(), nw, nh),
	}
	return s.maskCtx
}

// CancelSelection discards the selection and returns to idle.
func (s *Session) CancelSelection() {
	s.resetSelection()
}

// BeginDrag starts dragging a completed selection if the pointer is
// inside the hull. It reports whether the drag started; a press outside
// the hull leaves the state unchanged so the caller can begin a new
// selection instead.
func (s *Session) BeginDrag(p ScreenPoint) bool {
	if s.sel.state != SelectionCompleted {
		return false
	}
	w := s.viewport.ToWorld(p)
	if !geom.PointInPolygon(geom.Pt(w.X, w.Y), s.sel.path) {
		return false
	}
	s.sel.state = SelectionDragging
	s.sel.lastDrag = w
	return true
}

// DragTo moves the hull and every captured element by the pointer delta.
// The mask context's world path shifts with the hull; its image-local
// path is unchanged because the target image moves by the same delta.
func (s *Session) DragTo(p ScreenPoint) {
	if s.sel.state != SelectionDragging {
		return
	}
	w := s.viewport.ToWorld(p)
	dx := w.X - s.sel.lastDrag.X
	dy := w.Y - s.sel.lastDrag.Y
	s.sel.lastDrag = w

	s.sel.path.Translate(dx, dy)
	for _, id := range s.sel.captured {
		if el, err := s.ElementByID(id); err == nil {
			el.Translate(dx, dy)
		}
	}
	if s.maskCtx != nil {
		s.maskCtx.SelectionPathWorld.Translate(dx, dy)
	}
}

// EndDrag finishes a drag, returning the selection to the completed state.
func (s *Session) EndDrag() {
	if s.sel.state == SelectionDragging {
		s.sel.state = SelectionCompleted
	}
}

func (s *Session) resetSelection() {
	s.sel = selection{}
	s.maskCtx = nil
}

// captureElements returns the IDs of all elements whose bounds overlap
// the selection polygon, in canvas list order. Dragging moves exactly
// this set.
func (s *Session) captureElements(hull geom.Path) []string {
	var ids []string
	for _, el := range s.elements {
		if OverlapsSelection(el.Bounds(), hull) {
			ids = append(ids, el.ID())
		}
	}
	return ids
}
