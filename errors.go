package easel

import "errors"

// Sentinel errors for session operations.
var (
	// ErrNoMaskContext is returned when a mask submission is requested
	// without a completed, target-resolved selection.
	ErrNoMaskContext = errors.New("easel: no active mask context")

	// ErrNoPage is returned when an operation names a page number below 1.
	ErrNoPage = errors.New("easel: page number must be >= 1")

	// ErrUnknownAsset is returned when an asset ID has no registry entry.
	ErrUnknownAsset = errors.New("easel: unknown asset")

	// ErrUnknownElement is returned when an element ID is not on the canvas.
	ErrUnknownElement = errors.New("easel: unknown element")
)
