package easel

// CenteredImage builds the image element for an asset placed on a page:
// centered horizontally within the page width and vertically within the
// page height. An asset matching the canonical page size fills the page
// exactly; a smaller one floats in the middle. Assets with unknown
// dimensions assume the canonical page size.
func CenteredImage(pageNumber int, layout PageLayout, a Asset) *Image {
	w := float64(a.Width)
	h := float64(a.Height)
	if w <= 0 || h <= 0 {
		w, h = layout.Width, layout.Height
	}
	top := layout.PageTop(pageNumber - 1)
	x := (layout.Width - w) / 2
	y := top + (layout.Height-h)/2
	return NewImage(x, y, w, h, a.ID)
}

// PlaceOnPage returns the element list with img placed on the given
// 1-based page. When replace is true, every element whose vertical
// bounding span overlaps the page's half-open span [top, bottom) is
// dropped first. Replacement is page-scoped: elements on other pages are
// never touched regardless of world-space proximity.
//
// The input slice is not modified; callers swap in the result, so a
// failed operation leaves no partial deletion behind.
func PlaceOnPage(elements []Element, pageNumber int, layout PageLayout, img *Image, replace bool) []Element {
	top, bottom := layout.Span(pageNumber)

	out := make([]Element, 0, len(elements)+1)
	for _, el := range elements {
		if replace && spanOverlapsPage(el, top, bottom) {
			continue
		}
		out = append(out, el)
	}
	return append(out, img)
}

// spanOverlapsPage reports whether el's vertical bounding span overlaps
// the half-open page span [top, bottom).
func spanOverlapsPage(el Element, top, bottom float64) bool {
	b := el.Bounds()
	return b.Y < bottom && b.MaxY() > top
}
