package easel

// Canonical page content dimensions in world units. They match the portrait
// full-page output size of the generation service; a mask rasterized at any
// other resolution would misalign with the asset it targets.
const (
	PageWidth  = 1024.0
	PageHeight = 1536.0

	// PageMargin is the vertical gap between stacked pages in world units.
	PageMargin = 50.0
)

// Page is one fixed-size page in the vertical stack. ID is 1-based and
// equals the page number; Y is the page's top edge in world units.
type Page struct {
	ID int     `json:"id"`
	Y  float64 `json:"y"`
}

// PageLayout fixes the page geometry for a session: the content size of
// every page and the gap between consecutive pages.
type PageLayout struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Margin float64 `json:"margin"`
}

// DefaultLayout returns the canonical 1024x1536 page layout with a 50-unit
// gap between pages.
func DefaultLayout() PageLayout {
	return PageLayout{Width: PageWidth, Height: PageHeight, Margin: PageMargin}
}

// PageTop returns the world-space Y of the top edge of the page at the
// given zero-based index.
func (l PageLayout) PageTop(index int) float64 {
	return float64(index) * (l.Height + l.Margin)
}

// Span returns the half-open vertical span [top, bottom) of the page with
// the given 1-based number. The span covers the page content only, not the
// margin below it.
func (l PageLayout) Span(pageNumber int) (top, bottom float64) {
	top = l.PageTop(pageNumber - 1)
	return top, top + l.Height
}

// StackHeight returns the world-space height of a stack of count pages:
// page heights plus the gaps between them, with no margin above or below.
func (l PageLayout) StackHeight(count int) float64 {
	if count <= 0 {
		return 0
	}
	return float64(count)*l.Height + float64(count-1)*l.Margin
}

// EnsurePages appends pages until the stack holds at least pageNumber of
// them, each new page at its layout position. The stack never shrinks, so
// calling with an already-existing page number returns it unchanged.
func EnsurePages(pages []Page, pageNumber int, layout PageLayout) []Page {
	for len(pages) < pageNumber {
		idx := len(pages)
		pages = append(pages, Page{ID: idx + 1, Y: layout.PageTop(idx)})
	}
	return pages
}
