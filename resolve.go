package easel

import "github.com/easelkit/easel/geom"

// MaskContext ties a completed selection to the image element it edits.
//
// SelectionPathWorld is the normalized selection polygon in world units.
// SelectionPathImage is the same polygon mapped into the target asset's
// native pixel space, the frame mask rasterization runs in.
type MaskContext struct {
	TargetImageID      string    `json:"targetImageId"`
	SelectionPathWorld geom.Path `json:"selectionPathWorld"`
	SelectionPathImage geom.Path `json:"selectionPathImage"`
}

// OverlapsSelection reports whether a world-space bounding rectangle and a
// selection polygon overlap, using a coarse two-way vertex test: any
// polygon vertex inside the rectangle, or any rectangle corner inside the
// polygon. A thin polygon transecting the rectangle with no vertex inside
// it and no corner enclosed goes undetected; that is a documented
// limitation of the test, not a bug in callers.
func OverlapsSelection(bounds geom.Rect, selection geom.Path) bool {
	for i := 0; i < selection.PointCount(); i++ {
		if bounds.Contains(selection.At(i)) {
			return true
		}
	}
	for _, c := range bounds.Corners() {
		if geom.PointInPolygon(c, selection) {
			return true
		}
	}
	return false
}

// ResolveMaskTarget walks elements in canvas list order and returns the
// first image element whose bounds overlap the selection polygon, or nil
// when no image overlaps. List order is the only tie-break: when several
// images overlap the selection, the earliest inserted wins, deterministic
// across calls. Selections with fewer than 3 points never resolve.
func ResolveMaskTarget(elements []Element, selection geom.Path) *Image {
	if selection.PointCount() < 3 {
		return nil
	}
	for _, el := range elements {
		img, ok := el.(*Image)
		if !ok {
			continue
		}
		if OverlapsSelection(img.Bounds(), selection) {
			return img
		}
	}
	return nil
}
