// Package geom provides the 2D geometric primitives used by the canvas
// core: flat coordinate paths, axis-aligned rectangles, polygon
// normalization, and point/segment hit tests.
//
// All functions are pure and operate on plain float64 coordinates. The
// coordinate frame (screen, world, image-local) is contextual; values in
// this package never carry frame information. Frame-typed points and the
// conversions between frames live in the root package.
package geom
