package easel

import "github.com/google/uuid"

// SessionOption configures a Session during creation.
// Use functional options to customize Session behavior.
//
// Example:
//
//	// Canonical pages, default viewport
//	s := easel.NewSession()
//
//	// Smaller pages and a custom measurer
//	s := easel.NewSession(
//	    easel.WithPageLayout(easel.PageLayout{Width: 512, Height: 768, Margin: 25}),
//	    easel.WithTextMeasurer(shaper),
//	)
type SessionOption func(*sessionOptions)

// sessionOptions holds optional configuration for Session creation.
type sessionOptions struct {
	layout   PageLayout
	screenW  float64
	screenH  float64
	measurer TextMeasurer
	newID    func() string
}

// defaultSessionOptions returns the default session configuration.
func defaultSessionOptions() sessionOptions {
	return sessionOptions{
		layout:  DefaultLayout(),
		screenW: 1920,
		screenH: 1080,
		newID:   uuid.NewString,
	}
}

// WithPageLayout overrides the canonical page geometry. Masks for assets
// generated at the canonical size will only line up when the layout
// matches the generation service's output dimensions.
func WithPageLayout(l PageLayout) SessionOption {
	return func(o *sessionOptions) {
		o.layout = l
	}
}

// WithViewportSize sets the initial screen size in device pixels.
func WithViewportSize(width, height float64) SessionOption {
	return func(o *sessionOptions) {
		o.screenW = width
		o.screenH = height
	}
}

// WithTextMeasurer supplies the measurer used to size text elements on
// insert. Without one, text widths fall back to a fixed-advance estimate.
//
// Example:
//
//	shaper, _ := textmetrics.NewShaper(fontBytes)
//	s := easel.NewSession(easel.WithTextMeasurer(shaper))
func WithTextMeasurer(m TextMeasurer) SessionOption {
	return func(o *sessionOptions) {
		o.measurer = m
	}
}

// WithIDSource overrides the generator for element and asset IDs.
// The default draws random UUIDs. Tests use this for stable IDs.
func WithIDSource(fn func() string) SessionOption {
	return func(o *sessionOptions) {
		if fn != nil {
			o.newID = fn
		}
	}
}
