package gradient

import (
	"math"

	"github.com/hardye/sobel-tools/internal/raster"
)

// Normalize rescales a float gradient plane to an 8-bit raster so the
// plane's minimum maps to 0 and its maximum to 255.
//
// A constant plane (min == max) has no meaningful scale; it normalizes to
// an all-zero raster by an explicit branch rather than dividing by zero.
func Normalize(plane []float32, width, height int) *raster.Raster {
	out := &raster.Raster{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
	if len(plane) == 0 {
		return out
	}

	min, max := plane[0], plane[0]
	for _, v := range plane[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min == max {
		return out
	}

	// Scale in float64 so the maximum lands on exactly 255 after rounding.
	scale := 255 / float64(max-min)
	for i, v := range plane {
		out.Pix[i] = uint8(math.Round(float64(v-min) * scale))
	}
	return out
}

// NormalizeAbs rescales the absolute values of a plane. Signed derivative
// planes (Gx, Gy, Gt) are visualized this way so that edges of either
// polarity show bright.
func NormalizeAbs(plane []float32, width, height int) *raster.Raster {
	abs := make([]float32, len(plane))
	for i, v := range plane {
		if v < 0 {
			v = -v
		}
		abs[i] = v
	}
	return Normalize(abs, width, height)
}
