package snapshot

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/easelkit/easel"
	"github.com/easelkit/easel/geom"
)

// testSession builds a session whose viewport maps screen coordinates
// onto world coordinates one to one.
func testSession(t *testing.T, opts ...easel.SessionOption) *easel.Session {
	t.Helper()
	base := []easel.SessionOption{easel.WithViewportSize(1024, 1536)}
	return easel.NewSession(append(base, opts...)...)
}

// solidDataURL encodes a w by h image of one color as a PNG data URL.
func solidDataURL(t *testing.T, w, h int, c color.NRGBA) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode fixture png: %v", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestRenderPageSize(t *testing.T) {
	r := NewRenderer()
	s := testSession(t)

	img, err := r.RenderPage(s, 1)
	if err != nil {
		t.Fatalf("RenderPage failed: %v", err)
	}
	if got := img.Bounds(); got.Dx() != 1024 || got.Dy() != 1536 {
		t.Errorf("expected 1024x1536 image, got %dx%d", got.Dx(), got.Dy())
	}

	for _, p := range []image.Point{{0, 0}, {1023, 0}, {0, 1535}, {512, 768}} {
		px := img.RGBAAt(p.X, p.Y)
		if px.R != 255 || px.G != 255 || px.B != 255 || px.A != 255 {
			t.Errorf("expected white background at %v, got %v", p, px)
		}
	}
}

func TestRenderPageUnknown(t *testing.T) {
	r := NewRenderer()
	s := testSession(t)

	for _, n := range []int{-1, 0, 2} {
		if _, err := r.RenderPage(s, n); !errors.Is(err, ErrUnknownPage) {
			t.Errorf("page %d: expected ErrUnknownPage, got %v", n, err)
		}
	}
}

func TestRenderScale(t *testing.T) {
	r := NewRenderer(WithScale(0.25))
	s := testSession(t)

	img, err := r.RenderPage(s, 1)
	if err != nil {
		t.Fatalf("RenderPage failed: %v", err)
	}
	if got := img.Bounds(); got.Dx() != 256 || got.Dy() != 384 {
		t.Errorf("expected 256x384 thumbnail, got %dx%d", got.Dx(), got.Dy())
	}
}

func TestRenderSticky(t *testing.T) {
	r := NewRenderer()
	s := testSession(t)
	s.Add(easel.NewSticky(100, 100, 200, 150, "note"))

	img, err := r.RenderPage(s, 1)
	if err != nil {
		t.Fatalf("RenderPage failed: %v", err)
	}

	inside := img.RGBAAt(200, 175)
	if inside.R < 240 || inside.B > 180 {
		t.Errorf("expected sticky yellow at center, got %v", inside)
	}
	outside := img.RGBAAt(50, 50)
	if outside.R != 255 || outside.G != 255 || outside.B != 255 {
		t.Errorf("expected white outside sticky, got %v", outside)
	}
}

func TestRenderShapes(t *testing.T) {
	r := NewRenderer()
	s := testSession(t)
	s.Add(easel.NewRectangle(400, 300, 100, 80))
	s.Add(easel.NewCircle(700, 500, 40))
	s.Add(easel.NewFreehand(600, 1000, geom.Path{0, 0, 60, 0}))

	img, err := r.RenderPage(s, 1)
	if err != nil {
		t.Fatalf("RenderPage failed: %v", err)
	}

	rect := img.RGBAAt(450, 340)
	if rect.B <= rect.R || rect.R > 245 {
		t.Errorf("expected blue-tinted rectangle fill, got %v", rect)
	}
	circ := img.RGBAAt(700, 500)
	if circ.B <= circ.R || circ.R > 245 {
		t.Errorf("expected blue-tinted circle fill, got %v", circ)
	}
	stroke := img.RGBAAt(630, 1000)
	if stroke.R > 120 {
		t.Errorf("expected ink freehand stroke, got %v", stroke)
	}
}

func TestRenderTextExtent(t *testing.T) {
	r := NewRenderer()
	s := testSession(t)
	s.Add(easel.NewText(100, 1000, "hello", 32))
	s.Add(easel.NewText(50, 50, "", 32))

	img, err := r.RenderPage(s, 1)
	if err != nil {
		t.Fatalf("RenderPage failed: %v", err)
	}

	// Fallback measurement gives "hello" a 96-unit box.
	tint := img.RGBAAt(120, 1010)
	if tint.R > 245 || tint.R < 200 {
		t.Errorf("expected faint text box tint, got %v", tint)
	}

	baseline := false
	for y := 1023; y <= 1029; y++ {
		if img.RGBAAt(120, y).R < 100 {
			baseline = true
			break
		}
	}
	if !baseline {
		t.Error("expected a baseline rule under the text box")
	}

	empty := img.RGBAAt(55, 55)
	if empty.R != 255 || empty.G != 255 || empty.B != 255 {
		t.Errorf("expected empty text to paint nothing, got %v", empty)
	}
}

func TestRenderScopesToPage(t *testing.T) {
	r := NewRenderer()
	s := testSession(t)
	if err := s.EnsurePage(2); err != nil {
		t.Fatalf("EnsurePage failed: %v", err)
	}

	// Page 2 starts at world y 1586; this sticky sits 50 units below it.
	s.Add(easel.NewSticky(100, 1636, 200, 150, "page two"))

	page1, err := r.RenderPage(s, 1)
	if err != nil {
		t.Fatalf("RenderPage(1) failed: %v", err)
	}
	page2, err := r.RenderPage(s, 2)
	if err != nil {
		t.Fatalf("RenderPage(2) failed: %v", err)
	}

	if px := page1.RGBAAt(200, 125); px.R != 255 || px.B != 255 {
		t.Errorf("expected page 1 untouched, got %v", px)
	}
	if px := page2.RGBAAt(200, 125); px.R < 240 || px.B > 180 {
		t.Errorf("expected sticky on page 2, got %v", px)
	}
}

func TestRenderStraddlingElement(t *testing.T) {
	r := NewRenderer()
	s := testSession(t)
	if err := s.EnsurePage(2); err != nil {
		t.Fatalf("EnsurePage failed: %v", err)
	}

	// Spans world y 1500..1600: the page 1 bottom, the gap, and the
	// page 2 top.
	s.Add(easel.NewSticky(300, 1500, 100, 100, "straddle"))

	page1, err := r.RenderPage(s, 1)
	if err != nil {
		t.Fatalf("RenderPage(1) failed: %v", err)
	}
	page2, err := r.RenderPage(s, 2)
	if err != nil {
		t.Fatalf("RenderPage(2) failed: %v", err)
	}

	if px := page1.RGBAAt(350, 1510); px.R < 240 || px.B > 180 {
		t.Errorf("expected straddling sticky on page 1 bottom, got %v", px)
	}
	if px := page2.RGBAAt(350, 5); px.R < 240 || px.B > 180 {
		t.Errorf("expected straddling sticky on page 2 top, got %v", px)
	}
}

func TestRenderSelectionTint(t *testing.T) {
	r := NewRenderer()
	s := testSession(t)

	s.BeginSelection(easel.ScreenPoint{X: 200, Y: 200})
	s.ExtendSelection(easel.ScreenPoint{X: 400, Y: 200})

	// While drawing, only the outline exists.
	img, err := r.RenderPage(s, 1)
	if err != nil {
		t.Fatalf("RenderPage failed: %v", err)
	}
	if px := img.RGBAAt(300, 300); px.R != 255 || px.B != 255 {
		t.Errorf("expected no fill while drawing, got %v", px)
	}

	s.ExtendSelection(easel.ScreenPoint{X: 400, Y: 400})
	s.ExtendSelection(easel.ScreenPoint{X: 200, Y: 400})
	s.CompleteSelection()

	img, err = r.RenderPage(s, 1)
	if err != nil {
		t.Fatalf("RenderPage failed: %v", err)
	}
	inside := img.RGBAAt(300, 300)
	if inside.B <= inside.R+20 || inside.R > 240 {
		t.Errorf("expected accent tint inside selection, got %v", inside)
	}
	outside := img.RGBAAt(600, 600)
	if outside.R != 255 || outside.G != 255 || outside.B != 255 {
		t.Errorf("expected white outside selection, got %v", outside)
	}
}

func TestRenderImagePixels(t *testing.T) {
	r := NewRenderer()
	s := testSession(t)

	url := solidDataURL(t, 8, 8, color.NRGBA{R: 200, G: 30, B: 40, A: 255})
	a, err := easel.AssetFromDataURL(url, "red square")
	if err != nil {
		t.Fatalf("AssetFromDataURL failed: %v", err)
	}
	a = s.RegisterAsset(a)
	s.Add(easel.NewImage(100, 200, 64, 64, a.ID))

	img, err := r.RenderPage(s, 1)
	if err != nil {
		t.Fatalf("RenderPage failed: %v", err)
	}
	px := img.RGBAAt(132, 232)
	if px.R < 180 || px.G > 80 {
		t.Errorf("expected red asset pixels, got %v", px)
	}

	if _, err := r.RenderPage(s, 1); err != nil {
		t.Fatalf("second RenderPage failed: %v", err)
	}
	if stats := r.CacheStats(); stats.Hits == 0 {
		t.Errorf("expected rescaled pixels to be cached, stats %+v", stats)
	}
}

func TestRenderImagePlaceholder(t *testing.T) {
	r := NewRenderer()
	s := testSession(t)
	s.Add(easel.NewImage(500, 900, 80, 60, "ghost"))

	img, err := r.RenderPage(s, 1)
	if err != nil {
		t.Fatalf("RenderPage failed: %v", err)
	}
	px := img.RGBAAt(540, 930)
	if px.R < 215 || px.R > 245 || px.B < px.R {
		t.Errorf("expected gray placeholder, got %v", px)
	}
}

func TestPagePNG(t *testing.T) {
	r := NewRenderer()
	s := testSession(t)

	data, err := r.PagePNG(s, 1)
	if err != nil {
		t.Fatalf("PagePNG failed: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding rendered PNG failed: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 1024 || b.Dy() != 1536 {
		t.Errorf("expected 1024x1536 PNG, got %dx%d", b.Dx(), b.Dy())
	}

	if _, err := r.PagePNG(s, 9); err == nil {
		t.Error("expected error for missing page")
	}
}
