package easel

import (
	"math"
	"testing"

	"github.com/easelkit/easel/geom"
)

const coordTolerance = 1e-9

func TestViewportRoundTrip(t *testing.T) {
	viewports := []Viewport{
		{X: 0, Y: 0, Scale: 1},
		{X: 448, Y: -506, Scale: 1},
		{X: 100, Y: 50, Scale: 2.5},
		{X: -37.5, Y: 12.25, Scale: 0.31},
	}
	points := []ScreenPoint{
		{X: 0, Y: 0},
		{X: 960, Y: 540},
		{X: 13.7, Y: -42.1},
	}

	for _, v := range viewports {
		for _, p := range points {
			back := v.ToScreen(v.ToWorld(p))
			if math.Abs(back.X-p.X) > coordTolerance || math.Abs(back.Y-p.Y) > coordTolerance {
				t.Errorf("viewport %+v: %+v round-tripped to %+v", v, p, back)
			}
		}
	}
}

func TestScreenToWorld(t *testing.T) {
	v := Viewport{X: 100, Y: 200, Scale: 2}
	w := v.ToWorld(ScreenPoint{X: 300, Y: 500})
	if w.X != 100 || w.Y != 150 {
		t.Errorf("expected world (100,150), got (%g,%g)", w.X, w.Y)
	}
}

func TestWorldToImage(t *testing.T) {
	// Image occupies world rect (0,0,1024,1536) at native 1024x1536:
	// identity in the common case.
	bounds := geom.Rect{X: 0, Y: 0, Width: 1024, Height: 1536}
	p := WorldToImage(WorldPoint{X: 512, Y: 768}, bounds, 1024, 1536)
	if p.X != 512 || p.Y != 768 {
		t.Errorf("expected image point (512,768), got (%g,%g)", p.X, p.Y)
	}

	// Image at a world offset with a doubled native resolution.
	bounds = geom.Rect{X: 100, Y: 1586, Width: 512, Height: 768}
	p = WorldToImage(WorldPoint{X: 356, Y: 1970}, bounds, 1024, 1536)
	if p.X != 512 || p.Y != 768 {
		t.Errorf("expected image point (512,768), got (%g,%g)", p.X, p.Y)
	}
}

func TestImageRoundTrip(t *testing.T) {
	bounds := geom.Rect{X: 37, Y: 1586, Width: 950, Height: 1400}
	pts := []WorldPoint{
		{X: 37, Y: 1586},
		{X: 512, Y: 2200},
		{X: 986.9, Y: 2985.9},
	}
	for _, p := range pts {
		back := ImageToWorld(WorldToImage(p, bounds, 1024, 1536), bounds, 1024, 1536)
		if math.Abs(back.X-p.X) > 1e-6 || math.Abs(back.Y-p.Y) > 1e-6 {
			t.Errorf("%+v round-tripped to %+v", p, back)
		}
	}
}

func TestWorldPathToImage(t *testing.T) {
	bounds := geom.Rect{X: 0, Y: 0, Width: 512, Height: 512}
	path := geom.Path{0, 0, 256, 0, 256, 512}
	got := WorldPathToImage(path, bounds, 1024, 1024)
	want := geom.Path{0, 0, 512, 0, 512, 1024}

	if len(got) != len(want) {
		t.Fatalf("expected %d coords, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("coord %d: expected %g, got %g", i, want[i], got[i])
		}
	}
}
