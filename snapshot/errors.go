package snapshot

import "errors"

// Sentinel errors for snapshot package.
var (
	// ErrUnknownPage is returned when rendering a page the session does not have.
	ErrUnknownPage = errors.New("snapshot: page not in session")
)
