package raster

import "math"

// Field holds per-pixel gradient planes for one raster: the axis derivatives
// Gx, Gy and (for spatiotemporal gradients) Gt, plus the derived Magnitude
// and, for 2-D gradients only, Theta.
//
// Planes are float32 slices in row-major order with the same dimensions as
// the source raster. All planes are zero-initialized; the gradient engines
// fill interior cells only, so border cells stay zero by construction.
type Field struct {
	// Width and Height match the source raster exactly.
	Width  int
	Height int

	// Gx and Gy are the horizontal and vertical derivative planes.
	Gx []float32
	Gy []float32

	// Gt is the temporal derivative plane; nil for 2-D fields.
	Gt []float32

	// Magnitude is sqrt(Gx²+Gy²) for 2-D fields and sqrt(Gx²+Gy²+Gt²)
	// for spatiotemporal fields.
	Magnitude []float32

	// Theta is atan2(Gy, Gx) in radians, range (-π, π]; nil for
	// spatiotemporal fields, where no single direction angle is defined.
	Theta []float32
}

// NewSpatialField allocates a zeroed 2-D gradient field (Gx, Gy, Magnitude,
// Theta) of the given dimensions.
func NewSpatialField(width, height int) *Field {
	n := width * height
	return &Field{
		Width:     width,
		Height:    height,
		Gx:        make([]float32, n),
		Gy:        make([]float32, n),
		Magnitude: make([]float32, n),
		Theta:     make([]float32, n),
	}
}

// NewTemporalField allocates a zeroed 3-axis gradient field (Gx, Gy, Gt,
// Magnitude) of the given dimensions.
func NewTemporalField(width, height int) *Field {
	n := width * height
	return &Field{
		Width:     width,
		Height:    height,
		Gx:        make([]float32, n),
		Gy:        make([]float32, n),
		Gt:        make([]float32, n),
		Magnitude: make([]float32, n),
	}
}

// Index returns the row-major plane index for (x, y).
func (f *Field) Index(x, y int) int {
	return y*f.Width + x
}

// Temporal reports whether the field carries a temporal derivative plane.
func (f *Field) Temporal() bool {
	return f.Gt != nil
}

// SetSpatial stores the 2-D gradient vector at (x, y) together with its
// derived magnitude and direction.
func (f *Field) SetSpatial(x, y int, gx, gy float32) {
	i := f.Index(x, y)
	f.Gx[i] = gx
	f.Gy[i] = gy
	f.Magnitude[i] = float32(math.Sqrt(float64(gx)*float64(gx) + float64(gy)*float64(gy)))
	f.Theta[i] = float32(math.Atan2(float64(gy), float64(gx)))
}

// SetTemporal stores the 3-axis gradient vector at (x, y) together with its
// derived magnitude.
func (f *Field) SetTemporal(x, y int, gx, gy, gt float32) {
	i := f.Index(x, y)
	f.Gx[i] = gx
	f.Gy[i] = gy
	f.Gt[i] = gt
	f.Magnitude[i] = float32(math.Sqrt(
		float64(gx)*float64(gx) + float64(gy)*float64(gy) + float64(gt)*float64(gt)))
}
