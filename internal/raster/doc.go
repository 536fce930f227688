// Package raster provides the pixel containers shared by the gradient engines:
// 8-bit single-channel luma rasters and 32-bit float gradient fields.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner, X
// increasing rightward and Y increasing downward. Samples are stored row-major.
//
// # Mutability
//
// A Raster's dimensions are fixed at creation. Rasters handed to the gradient
// engines are treated as read-only; Fields are written once during a
// computation and never mutated afterwards. Neither type is synchronized:
// concurrent readers are safe, concurrent writers are the caller's problem.
package raster
