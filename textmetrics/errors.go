package textmetrics

import "errors"

// Sentinel errors for textmetrics package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("textmetrics: empty font data")

	// ErrInvalidFont is returned when font data cannot be parsed.
	ErrInvalidFont = errors.New("textmetrics: invalid font data")
)
