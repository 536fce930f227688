// Package gradient implements separable Sobel gradient computation over luma
// rasters, in two flavors:
//
//   - ComputeSpatial: the classical 2-D Sobel operator (Gx, Gy, magnitude,
//     direction) over a single raster, parallelized by decomposing the
//     raster interior into disjoint regions processed by one goroutine each.
//
//   - ComputeTemporal: a 3-D separable Sobel over a sliding three-frame
//     Window (prev, curr, next), producing spatial derivatives plus a
//     temporal derivative Gt for the center frame.
//
// Both engines use the same separable kernel: a derivative vector [-1 0 1]
// along the output axis and a smoothing vector [1 2 1] along every other
// axis. In 2-D this is exactly the textbook Sobel pair.
//
// # Border Policy
//
// The 3x3 (and 3x3x3) stencil has no complete neighborhood on the outermost
// 1-pixel border, so border cells of every output plane are left at zero.
// No edge-extension or padding mode is offered.
//
// # Concurrency
//
// ComputeSpatial spawns a fresh set of goroutines per call, one per region,
// and joins them all before returning. The input raster is shared read-only;
// each region's output cells are written by exactly one goroutine, so the
// result is bit-identical for any region count. There is no persistent pool,
// no cancellation mid-computation, and no timeout.
package gradient
