// Package easel provides the core state and geometry for a paged infinite
// canvas driven by image generation.
//
// # Overview
//
// easel models a vertical stack of fixed-size pages on an infinite canvas.
// Callers draw elements onto pages, lasso-select a region of a placed image,
// and turn the selection into an inpainting mask for an external generation
// service. The library owns selection geometry, coordinate transforms, mask
// synthesis, and page compositing. It owns no UI, no network calls, and no
// persistence.
//
// # Quick Start
//
//	s := easel.NewSession()
//	s.SetViewportSize(1920, 1080)
//
//	// Place a generated image on page 1.
//	s.RegisterAsset(easel.Asset{ID: "a1", URL: "https://...", Width: 1024, Height: 1536})
//	img, _ := s.PlaceImage(1, "a1", false)
//
//	// Lasso a region of it and build a mask submission.
//	s.BeginSelection(easel.ScreenPoint{X: 200, Y: 150})
//	s.ExtendSelection(easel.ScreenPoint{X: 400, Y: 160})
//	s.ExtendSelection(easel.ScreenPoint{X: 380, Y: 360})
//	s.CompleteSelection()
//	sub, _ := s.BuildMaskSubmission("replace the sky with an aurora")
//	_ = sub.MaskPNG // base64 PNG; white marks the region to edit
//	_ = img
//
// # Coordinate System
//
// Three coordinate frames appear throughout, with a distinct point type for
// each so frames cannot be mixed by accident:
//   - ScreenPoint: device pixels, origin at the viewport's top-left
//   - WorldPoint: canvas units, origin at the first page's top-left
//   - ImagePoint: pixels local to one image asset (0..width, 0..height)
//
// Y increases downward in all three frames. A Viewport maps between screen
// and world; image-local coordinates are derived from an image element's
// world bounds and the asset's native pixel size.
//
// # Concurrency
//
// A Session confines itself to one goroutine, matching the event-loop model
// of the editors that embed it. Wrap access in a mutex when sharing a
// Session across goroutines; the MCP server in cmd/easel-mcp does exactly
// that.
package easel

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
