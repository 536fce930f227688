package gradient

import (
	"fmt"

	"github.com/hardye/sobel-tools/internal/raster"
)

// ComputeTemporal runs the 3-D separable Sobel over a frame window and
// returns the gradient field for the window's center frame, with Gx, Gy,
// Gt and Magnitude planes. No Theta plane exists in three dimensions.
//
// The frames must be at least 3x3, otherwise ErrInvalidDimensions. Spatial
// border cells stay zero as in ComputeSpatial; there are no temporal
// borders because the window already supplies prev and next.
//
// The computation is single-threaded: in a video pipeline the bottleneck is
// sequential frame arrival, not per-frame compute.
func ComputeTemporal(w *Window) (*raster.Field, error) {
	if w == nil {
		return nil, fmt.Errorf("%w: nil window", ErrInvalidDimensions)
	}
	curr := w.curr
	if curr.Width < 3 || curr.Height < 3 {
		return nil, fmt.Errorf("%w: temporal gradient needs at least 3x3, got %s",
			ErrInvalidDimensions, rasterSize(curr))
	}
	if !curr.SameSize(w.prev) || !curr.SameSize(w.next) {
		return nil, fmt.Errorf("%w: window frames %s, %s, %s",
			ErrInvalidDimensions, rasterSize(w.prev), rasterSize(curr), rasterSize(w.next))
	}

	planes := [3]*raster.Raster{w.prev, curr, w.next}
	field := raster.NewTemporalField(curr.Width, curr.Height)

	for y := 1; y < curr.Height-1; y++ {
		for x := 1; x < curr.Width-1; x++ {
			var sumX, sumY, sumT int
			for dt := -1; dt <= 1; dt++ {
				frame := planes[dt+1]
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						p := int(frame.At(x+dx, y+dy))
						sumX += p * Weight3D(AxisX, dx, dy, dt)
						sumY += p * Weight3D(AxisY, dx, dy, dt)
						sumT += p * Weight3D(AxisT, dx, dy, dt)
					}
				}
			}
			field.SetTemporal(x, y, float32(sumX), float32(sumY), float32(sumT))
		}
	}
	return field, nil
}
