package gradient

// Axis selects which derivative a gradient plane measures.
type Axis int

const (
	// AxisX is the horizontal derivative (columns).
	AxisX Axis = iota
	// AxisY is the vertical derivative (rows).
	AxisY
	// AxisT is the temporal derivative (frames).
	AxisT
)

// The separable Sobel components. A full 2-D or 3-D kernel weight is the
// product of one coefficient per axis: the derivative coefficient on the
// output axis and the smoothing coefficient on every other axis. Indexed by
// offset+1 for offsets in {-1, 0, +1}.
var (
	smoothing  = [3]int{1, 2, 1}
	derivative = [3]int{-1, 0, 1}
)

// Weight2D returns the 2-D Sobel kernel weight for the given output axis at
// neighbor offset (dx, dy), each in {-1, 0, +1}. For AxisX this reproduces
// the classical Gx kernel, for AxisY the classical Gy kernel.
func Weight2D(axis Axis, dx, dy int) int {
	if axis == AxisX {
		return derivative[dx+1] * smoothing[dy+1]
	}
	return smoothing[dx+1] * derivative[dy+1]
}

// Weight3D returns the 3-D Sobel kernel weight for the given output axis at
// neighbor offset (dx, dy, dt), each in {-1, 0, +1}. The derivative vector
// is applied along the output axis and the smoothing vector along the two
// remaining axes, extending the 2-D Sobel pair to a 3x3x3 stencil.
func Weight3D(axis Axis, dx, dy, dt int) int {
	switch axis {
	case AxisX:
		return derivative[dx+1] * smoothing[dy+1] * smoothing[dt+1]
	case AxisY:
		return smoothing[dx+1] * derivative[dy+1] * smoothing[dt+1]
	default:
		return smoothing[dx+1] * smoothing[dy+1] * derivative[dt+1]
	}
}
