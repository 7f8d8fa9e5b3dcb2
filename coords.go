package easel

import "github.com/easelkit/easel/geom"

// ScreenPoint is a position in device pixels, origin at the viewport's
// top-left corner.
type ScreenPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// WorldPoint is a position in canvas units, origin at the first page's
// top-left corner.
type WorldPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ImagePoint is a position in pixels local to a single image asset,
// origin at the asset's top-left corner.
type ImagePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// WorldToImage maps a world-space point into the local pixel space of an
// image with the given world bounds and native pixel dimensions. The point
// is expressed as a fraction of the bounds and scaled to the native size,
// so the mapping holds even when the image's world extent differs from its
// pixel resolution.
//
// bounds must have positive width and height.
func WorldToImage(p WorldPoint, bounds geom.Rect, nativeWidth, nativeHeight int) ImagePoint {
	return ImagePoint{
		X: (p.X - bounds.X) / bounds.Width * float64(nativeWidth),
		Y: (p.Y - bounds.Y) / bounds.Height * float64(nativeHeight),
	}
}

// ImageToWorld maps an image-local point back to world space. It inverts
// WorldToImage for the same bounds and native dimensions.
func ImageToWorld(p ImagePoint, bounds geom.Rect, nativeWidth, nativeHeight int) WorldPoint {
	return WorldPoint{
		X: bounds.X + p.X/float64(nativeWidth)*bounds.Width,
		Y: bounds.Y + p.Y/float64(nativeHeight)*bounds.Height,
	}
}

// WorldPathToImage maps every vertex of a world-space path into the local
// pixel space of an image. See WorldToImage.
func WorldPathToImage(path geom.Path, bounds geom.Rect, nativeWidth, nativeHeight int) geom.Path {
	out := make(geom.Path, 0, len(path))
	for i := 0; i < path.PointCount(); i++ {
		pt := path.At(i)
		ip := WorldToImage(WorldPoint{X: pt.X, Y: pt.Y}, bounds, nativeWidth, nativeHeight)
		out = append(out, ip.X, ip.Y)
	}
	return out
}
