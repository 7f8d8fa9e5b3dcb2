package mask

import "errors"

// Sentinel errors for mask synthesis.
var (
	// ErrInvalidPath is returned when a selection path has too few
	// points to enclose any area.
	ErrInvalidPath = errors.New("mask: path needs at least 3 points")

	// ErrInvalidSize is returned when the target dimensions are not
	// positive.
	ErrInvalidSize = errors.New("mask: invalid dimensions")
)
