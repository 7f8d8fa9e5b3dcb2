package easel

import (
	"testing"

	"github.com/easelkit/easel/geom"
)

// newTestSession returns a session with deterministic IDs (e1, e2, ...)
// and the default 1920x1080 viewport at scale 1, so screen coordinates
// map to world coordinates through an X-centering offset only.
func newTestSession(t *testing.T) *Session {
	t.Helper()
	n := 0
	return NewSession(WithIDSource(func() string {
		n++
		return "e" + string(rune('0'+n))
	}))
}

// screenAt maps a world position through the session viewport so tests
// can think in world coordinates while driving the screen-space API.
func screenAt(s *Session, x, y float64) ScreenPoint {
	return s.WorldToScreen(WorldPoint{X: x, Y: y})
}

func placeTestImage(t *testing.T, s *Session) *Image {
	t.Helper()
	s.RegisterAsset(Asset{ID: "asset", Width: 1024, Height: 1536})
	img, err := s.PlaceImage(1, "asset", false)
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}
	return img
}

func TestSelectionLifecycle(t *testing.T) {
	s := newTestSession(t)
	img := placeTestImage(t, s)

	if s.SelectionState() != SelectionIdle {
		t.Fatalf("expected idle, got %v", s.SelectionState())
	}

	s.BeginSelection(screenAt(s, 100, 100))
	if s.SelectionState() != SelectionDrawing {
		t.Fatalf("expected drawing, got %v", s.SelectionState())
	}

	s.ExtendSelection(screenAt(s, 400, 100))
	s.ExtendSelection(screenAt(s, 400, 400))
	s.ExtendSelection(screenAt(s, 100, 400))

	ctx := s.CompleteSelection()
	if s.SelectionState() != SelectionCompleted {
		t.Fatalf("expected completed, got %v", s.SelectionState())
	}
	if ctx == nil {
		t.Fatal("expected a mask context over the placed image")
	}
	if ctx.TargetImageID != img.ID() {
		t.Errorf("expected target %q, got %q", img.ID(), ctx.TargetImageID)
	}
	if ctx.SelectionPathImage.PointCount() < 3 {
		t.Errorf("expected an image-local polygon, got %d points", ctx.SelectionPathImage.PointCount())
	}

	s.CancelSelection()
	if s.SelectionState() != SelectionIdle || s.MaskContext() != nil {
		t.Error("expected cancel to reset selection and mask context")
	}
}

func TestDegenerateSelectionResetsToIdle(t *testing.T) {
	s := newTestSession(t)
	placeTestImage(t, s)

	s.BeginSelection(screenAt(s, 100, 100))
	s.ExtendSelection(screenAt(s, 200, 100))

	if ctx := s.CompleteSelection(); ctx != nil {
		t.Errorf("expected nil context for a 2-point lasso, got %+v", ctx)
	}
	if s.SelectionState() != SelectionIdle {
		t.Errorf("expected idle after degenerate lasso, got %v", s.SelectionState())
	}
}

func TestSelectionOverEmptyCanvasHasNoContext(t *testing.T) {
	s := newTestSession(t)

	s.BeginSelection(screenAt(s, 100, 100))
	s.ExtendSelection(screenAt(s, 400, 100))
	s.ExtendSelection(screenAt(s, 250, 400))

	if ctx := s.CompleteSelection(); ctx != nil {
		t.Errorf("expected nil context with no images, got %+v", ctx)
	}
	if s.SelectionState() != SelectionCompleted {
		t.Errorf("selection should still complete without a target, got %v", s.SelectionState())
	}
}

func TestNewSelectionReplacesCompletedOne(t *testing.T) {
	s := newTestSession(t)
	placeTestImage(t, s)

	s.BeginSelection(screenAt(s, 100, 100))
	s.ExtendSelection(screenAt(s, 400, 100))
	s.ExtendSelection(screenAt(s, 250, 400))
	first := s.CompleteSelection()
	if first == nil {
		t.Fatal("expected a context from the first selection")
	}

	// Starting a new lasso discards the old context immediately.
	s.BeginSelection(screenAt(s, 5000, 5000))
	if s.MaskContext() != nil {
		t.Error("expected the mask context cleared on new selection")
	}
	s.ExtendSelection(screenAt(s, 5100, 5000))
	s.ExtendSelection(screenAt(s, 5050, 5100))
	if ctx := s.CompleteSelection(); ctx != nil {
		t.Errorf("expected the off-canvas selection to resolve to nil, got %+v", ctx)
	}
}

func TestDragMovesHullAndCapturedElements(t *testing.T) {
	s := newTestSession(t)
	img := placeTestImage(t, s)
	rectID := s.Add(NewRectangle(150, 150, 50, 50))  // inside the lasso
	farID := s.Add(NewRectangle(5000, 5000, 50, 50)) // far away

	s.BeginSelection(screenAt(s, 100, 100))
	s.ExtendSelection(screenAt(s, 400, 100))
	s.ExtendSelection(screenAt(s, 400, 400))
	s.ExtendSelection(screenAt(s, 100, 400))
	if ctx := s.CompleteSelection(); ctx == nil {
		t.Fatal("expected a completed selection with context")
	}

	imgYBefore := img.Bounds().Y
	imageLocalBefore := s.MaskContext().SelectionPathImage.Clone()

	if !s.BeginDrag(screenAt(s, 250, 250)) {
		t.Fatal("expected drag to start inside the hull")
	}
	if s.SelectionState() != SelectionDragging {
		t.Fatalf("expected dragging, got %v", s.SelectionState())
	}

	s.DragTo(screenAt(s, 280, 310))
	s.EndDrag()

	if s.SelectionState() != SelectionCompleted {
		t.Fatalf("expected completed after drag, got %v", s.SelectionState())
	}

	rect, err := s.ElementByID(rectID)
	if err != nil {
		t.Fatal(err)
	}
	if b := rect.Bounds(); b.X != 180 || b.Y != 210 {
		t.Errorf("captured rect should move by (30,60), got origin (%g,%g)", b.X, b.Y)
	}
	if img.Bounds().Y != imgYBefore+60 {
		t.Errorf("captured image should move with the hull")
	}

	far, err := s.ElementByID(farID)
	if err != nil {
		t.Fatal(err)
	}
	if b := far.Bounds(); b.X != 5000 || b.Y != 5000 {
		t.Errorf("uncaptured element must not move, got origin (%g,%g)", b.X, b.Y)
	}

	// Hull and image moved together: the image-local path is unchanged.
	after := s.MaskContext().SelectionPathImage
	for i := range imageLocalBefore {
		if after[i] != imageLocalBefore[i] {
			t.Fatalf("image-local path changed at %d: %g -> %g", i, imageLocalBefore[i], after[i])
		}
	}

	// The world path did shift with the drag.
	if s.MaskContext().SelectionPathWorld.At(0) == geom.Pt(100, 100) {
		t.Error("world path should have moved with the drag")
	}
}

func TestBeginDragOutsideHullRefuses(t *testing.T) {
	s := newTestSession(t)
	placeTestImage(t, s)

	s.BeginSelection(screenAt(s, 100, 100))
	s.ExtendSelection(screenAt(s, 200, 100))
	s.ExtendSelection(screenAt(s, 150, 200))
	s.CompleteSelection()

	if s.BeginDrag(screenAt(s, 900, 900)) {
		t.Error("expected drag refusal outside the hull")
	}
	if s.SelectionState() != SelectionCompleted {
		t.Errorf("state should stay completed, got %v", s.SelectionState())
	}
}

func TestExtendOutsideDrawingIsNoOp(t *testing.T) {
	s := newTestSession(t)

	s.ExtendSelection(screenAt(s, 100, 100))
	if s.SelectionState() != SelectionIdle {
		t.Errorf("extend in idle must not change state, got %v", s.SelectionState())
	}
	if got := s.SelectionPath().PointCount(); got != 0 {
		t.Errorf("expected empty path, got %d points", got)
	}
}
