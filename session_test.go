package easel

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestSessionStartsWithOnePage(t *testing.T) {
	s := NewSession()

	pages := s.Pages()
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
	if pages[0].ID != 1 || pages[0].Y != 0 {
		t.Errorf("expected page {1, 0}, got %+v", pages[0])
	}
	if s.Viewport().Scale != 1 {
		t.Errorf("expected scale 1, got %g", s.Viewport().Scale)
	}
}

func TestAddAssignsIDs(t *testing.T) {
	s := newTestSession(t)

	id1 := s.Add(NewRectangle(0, 0, 10, 10))
	id2 := s.Add(NewCircle(50, 50, 10))

	if id1 == "" || id2 == "" || id1 == id2 {
		t.Errorf("expected distinct non-empty IDs, got %q and %q", id1, id2)
	}
	if len(s.Elements()) != 2 {
		t.Errorf("expected 2 elements, got %d", len(s.Elements()))
	}
}

func TestAddKeepsExistingID(t *testing.T) {
	s := newTestSession(t)

	r := NewRectangle(0, 0, 10, 10)
	r.setID("keep")
	if got := s.Add(r); got != "keep" {
		t.Errorf("expected existing ID preserved, got %q", got)
	}
}

func TestAddMeasuresText(t *testing.T) {
	s := NewSession() // no measurer configured: fallback estimate

	id := s.Add(NewText(0, 0, "hello", 20))
	el, err := s.ElementByID(id)
	if err != nil {
		t.Fatal(err)
	}

	txt := el.(*Text)
	want := 5 * 20 * fallbackAdvance
	if txt.Width != want {
		t.Errorf("expected fallback width %g, got %g", want, txt.Width)
	}
}

type fixedMeasurer struct{ width float64 }

func (m fixedMeasurer) MeasureWidth(string, float64) float64 { return m.width }

func TestAddUsesConfiguredMeasurer(t *testing.T) {
	s := NewSession(WithTextMeasurer(fixedMeasurer{width: 123}))

	id := s.Add(NewText(0, 0, "hello", 20))
	el, _ := s.ElementByID(id)
	if got := el.(*Text).Width; got != 123 {
		t.Errorf("expected measured width 123, got %g", got)
	}
}

func TestRemoveElement(t *testing.T) {
	s := newTestSession(t)
	id := s.Add(NewRectangle(0, 0, 10, 10))

	if err := s.Remove(id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Elements()) != 0 {
		t.Errorf("expected empty canvas, got %d elements", len(s.Elements()))
	}
	if err := s.Remove(id); !errors.Is(err, ErrUnknownElement) {
		t.Errorf("expected ErrUnknownElement, got %v", err)
	}
}

func TestRemovingMaskTargetInvalidatesSelection(t *testing.T) {
	s := newTestSession(t)
	img := placeTestImage(t, s)

	s.BeginSelection(screenAt(s, 100, 100))
	s.ExtendSelection(screenAt(s, 400, 100))
	s.ExtendSelection(screenAt(s, 250, 400))
	if ctx := s.CompleteSelection(); ctx == nil {
		t.Fatal("expected a mask context")
	}

	if err := s.Remove(img.ID()); err != nil {
		t.Fatal(err)
	}
	if s.MaskContext() != nil {
		t.Error("expected mask context dropped with its target")
	}
	if s.SelectionState() != SelectionIdle {
		t.Errorf("expected idle after target removal, got %v", s.SelectionState())
	}
}

func TestMoveElement(t *testing.T) {
	s := newTestSession(t)
	id := s.Add(NewSticky(10, 10, 50, 50, "n"))

	if err := s.MoveElement(id, 5, -3); err != nil {
		t.Fatal(err)
	}
	el, _ := s.ElementByID(id)
	if b := el.Bounds(); b.X != 15 || b.Y != 7 {
		t.Errorf("expected origin (15,7), got (%g,%g)", b.X, b.Y)
	}

	if err := s.MoveElement("missing", 1, 1); !errors.Is(err, ErrUnknownElement) {
		t.Errorf("expected ErrUnknownElement, got %v", err)
	}
}

func TestAssetRegistry(t *testing.T) {
	s := newTestSession(t)

	a := s.RegisterAsset(Asset{URL: "https://example.test/img.png", Width: 1024, Height: 1536})
	if a.ID == "" {
		t.Fatal("expected an assigned asset ID")
	}

	got, err := s.AssetByID(a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.URL != a.URL {
		t.Errorf("expected URL %q, got %q", a.URL, got.URL)
	}

	if _, err := s.AssetByID("missing"); !errors.Is(err, ErrUnknownAsset) {
		t.Errorf("expected ErrUnknownAsset, got %v", err)
	}
}

func TestPlaceImageUnknownAsset(t *testing.T) {
	s := newTestSession(t)
	if _, err := s.PlaceImage(1, "missing", false); !errors.Is(err, ErrUnknownAsset) {
		t.Errorf("expected ErrUnknownAsset, got %v", err)
	}
}

func TestPlaceImageGrowsStack(t *testing.T) {
	s := newTestSession(t)
	s.RegisterAsset(Asset{ID: "asset", Width: 1024, Height: 1536})

	img, err := s.PlaceImage(3, "asset", false)
	if err != nil {
		t.Fatal(err)
	}
	if s.PageCount() != 3 {
		t.Errorf("expected 3 pages, got %d", s.PageCount())
	}
	wantY := DefaultLayout().PageTop(2)
	if b := img.Bounds(); b.Y != wantY {
		t.Errorf("expected image at page 3 top %g, got %g", wantY, b.Y)
	}
}

func TestPlaceImageReplaceIsAtomic(t *testing.T) {
	s := newTestSession(t)
	s.RegisterAsset(Asset{ID: "asset", Width: 1024, Height: 1536})
	s.Add(NewRectangle(100, 0, 200, 100))
	stickyID := s.Add(NewSticky(100, 2000, 100, 100, "keep"))

	img, err := s.PlaceImage(1, "asset", true)
	if err != nil {
		t.Fatal(err)
	}

	els := s.Elements()
	if len(els) != 2 {
		t.Fatalf("expected sticky + image, got %d elements", len(els))
	}
	if els[0].ID() != stickyID || els[1].ID() != img.ID() {
		t.Errorf("unexpected element order: %q, %q", els[0].ID(), els[1].ID())
	}
}

func TestHandlePlacement(t *testing.T) {
	s := newTestSession(t)

	img, err := s.HandlePlacement(PlacementRequest{
		ImageURL:   "https://example.test/gen.png",
		PageNumber: 2,
		Replace:    true,
	})
	if err != nil {
		t.Fatal(err)
	}

	if s.PageCount() != 2 {
		t.Errorf("expected the stack grown to 2 pages, got %d", s.PageCount())
	}
	a, err := s.AssetByID(img.AssetID)
	if err != nil {
		t.Fatalf("placement should have registered the asset: %v", err)
	}
	if a.Width != 1024 || a.Height != 1536 {
		t.Errorf("expected canonical asset dims, got %dx%d", a.Width, a.Height)
	}
}

func TestBuildMaskSubmission(t *testing.T) {
	s := newTestSession(t)
	img := placeTestImage(t, s)

	s.BeginSelection(screenAt(s, 100, 100))
	s.ExtendSelection(screenAt(s, 400, 100))
	s.ExtendSelection(screenAt(s, 400, 400))
	s.ExtendSelection(screenAt(s, 100, 400))
	if ctx := s.CompleteSelection(); ctx == nil {
		t.Fatal("expected a mask context")
	}

	sub, err := s.BuildMaskSubmission("make it night")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.TargetImageID != img.ID() {
		t.Errorf("expected target %q, got %q", img.ID(), sub.TargetImageID)
	}
	if sub.EditPrompt != "make it night" {
		t.Errorf("unexpected prompt %q", sub.EditPrompt)
	}

	raw, err := base64.StdEncoding.DecodeString(sub.MaskPNG)
	if err != nil {
		t.Fatalf("mask is not valid base64: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("mask is not a valid PNG: %v", err)
	}

	// Native asset resolution, selection interior opaque, outside clear.
	if b := decoded.Bounds(); b.Dx() != 1024 || b.Dy() != 1536 {
		t.Errorf("expected 1024x1536 mask, got %dx%d", b.Dx(), b.Dy())
	}
	if _, _, _, a := decoded.At(250, 250).RGBA(); a != 0xffff {
		t.Error("expected opaque pixel inside the selection")
	}
	if _, _, _, a := decoded.At(900, 1400).RGBA(); a != 0 {
		t.Error("expected transparent pixel outside the selection")
	}
}

func TestBuildMaskSubmissionRequiresContext(t *testing.T) {
	s := newTestSession(t)

	if _, err := s.BuildMaskSubmission("p"); !errors.Is(err, ErrNoMaskContext) {
		t.Errorf("expected ErrNoMaskContext, got %v", err)
	}

	// A completed selection with no image target is still not enough.
	s.BeginSelection(screenAt(s, 100, 100))
	s.ExtendSelection(screenAt(s, 200, 100))
	s.ExtendSelection(screenAt(s, 150, 200))
	s.CompleteSelection()
	if _, err := s.BuildMaskSubmission("p"); !errors.Is(err, ErrNoMaskContext) {
		t.Errorf("expected ErrNoMaskContext, got %v", err)
	}
}

func TestDecodeDataURL(t *testing.T) {
	// Encode a tiny PNG and round it through the data URL path.
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	src.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())

	img, format, err := DecodeDataURL(dataURL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if format != "png" {
		t.Errorf("expected format png, got %q", format)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("expected 3x2, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestDecodeDataURLRejectsGarbage(t *testing.T) {
	cases := []string{
		"https://example.test/not-a-data-url.png",
		"data:image/png,missing-base64-marker",
		"data:image/png;base64,!!!not-base64!!!",
	}
	for _, c := range cases {
		if _, _, err := DecodeDataURL(c); err == nil {
			t.Errorf("expected error for %q", c)
		}
	}
}

func TestAssetFromDataURL(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 4))
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())

	a, err := AssetFromDataURL(dataURL, "a prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Width != 8 || a.Height != 4 {
		t.Errorf("expected 8x4, got %dx%d", a.Width, a.Height)
	}
	if a.Format != "png" || a.SourcePrompt != "a prompt" {
		t.Errorf("unexpected metadata: %+v", a)
	}
	if a.ID != "" {
		t.Errorf("expected ID left for registration, got %q", a.ID)
	}
}
