package easel

import "math"

// Zoom limits and the factor applied by one discrete zoom step.
const (
	MinZoom  = 0.1
	MaxZoom  = 10.0
	ZoomStep = 1.25
)

// Viewport maps between screen and world coordinates: a uniform scale
// followed by a screen-space translation. A world point w appears on
// screen at w*Scale + (X, Y).
type Viewport struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Scale float64 `json:"scale"`
}

// ToWorld converts a screen position to world coordinates.
// Scale must be positive.
func (v Viewport) ToWorld(p ScreenPoint) WorldPoint {
	return WorldPoint{
		X: (p.X - v.X) / v.Scale,
		Y: (p.Y - v.Y) / v.Scale,
	}
}

// ToScreen converts a world position to screen coordinates.
func (v Viewport) ToScreen(p WorldPoint) ScreenPoint {
	return ScreenPoint{
		X: p.X*v.Scale + v.X,
		Y: p.Y*v.Scale + v.Y,
	}
}

// ToWorldPath converts a screen-space point list to a world-space path.
func (v Viewport) ToWorldPath(pts []ScreenPoint) []WorldPoint {
	out := make([]WorldPoint, len(pts))
	for i, p := range pts {
		out[i] = v.ToWorld(p)
	}
	return out
}

// Constrain returns the viewport adjusted to keep the page column in view.
//
// The horizontal offset is always recomputed to center the fixed-width page
// column within the screen at the current scale; pages never pan
// horizontally, only zoom changes their apparent position. The vertical
// offset is clamped between min(0, screenH - Scale*stackHeight - margin),
// which stops scrolling at the bottom of the stack, and a small positive
// offset that keeps a visible margin above the first page.
//
// Constrain is re-evaluated on every zoom, scroll, and resize.
func (v Viewport) Constrain(layout PageLayout, pageCount int, screenW, screenH float64) Viewport {
	out := v
	out.X = (screenW - layout.Width*v.Scale) / 2

	minY := math.Min(0, screenH-v.Scale*layout.StackHeight(pageCount)-layout.Margin)
	maxY := layout.Margin
	if out.Y < minY {
		out.Y = minY
	}
	if out.Y > maxY {
		out.Y = maxY
	}
	return out
}

// clampZoom limits a scale factor to [MinZoom, MaxZoom].
func clampZoom(s float64) float64 {
	if s < MinZoom {
		return MinZoom
	}
	if s > MaxZoom {
		return MaxZoom
	}
	return s
}
