package gradient

import "errors"

// Sentinel errors returned by the gradient engines. Callers match them with
// errors.Is; every failure aborts the whole call and no partial field is
// ever returned.
var (
	// ErrInvalidDimensions reports a raster smaller than 3x3 in either
	// axis, or a frame window whose rasters disagree in size.
	ErrInvalidDimensions = errors.New("raster too small or dimensions mismatched")

	// ErrInsufficientFrames reports that a frame source ran out before a
	// window could be primed with three frames.
	ErrInsufficientFrames = errors.New("fewer than 3 frames available")

	// ErrWorkerStart reports that the parallel workers for a spatial
	// computation could not be dispatched, e.g. because the worker count
	// or region set is unusable.
	ErrWorkerStart = errors.New("cannot start gradient workers")
)
