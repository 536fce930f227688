package stream

import (
	"fmt"
	"image"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/hardye/sobel-tools/internal/raster"
)

// DirectionColormap renders a 2-D gradient field as the classical direction
// wheel: hue encodes Theta (0° = gradient pointing right, 90° = down) and
// brightness encodes Magnitude, min-max scaled over the field. Cells with
// no gradient come out black, so the zero border forms a black frame.
//
// Fields without a Theta plane (temporal fields) are rejected.
func DirectionColormap(field *raster.Field) (*image.RGBA, error) {
	if field.Theta == nil {
		return nil, fmt.Errorf("field has no direction plane")
	}

	minMag, maxMag := field.Magnitude[0], field.Magnitude[0]
	for _, m := range field.Magnitude[1:] {
		if m < minMag {
			minMag = m
		}
		if m > maxMag {
			maxMag = m
		}
	}

	out := image.NewRGBA(image.Rect(0, 0, field.Width, field.Height))
	for i, theta := range field.Theta {
		var value float64
		if maxMag > minMag {
			value = float64(field.Magnitude[i]-minMag) / float64(maxMag-minMag)
		}

		hue := float64(theta) * 180 / math.Pi
		if hue < 0 {
			hue += 360
		}

		r, g, b := colorful.Hsv(hue, 1, value).RGB255()
		p := i * 4
		out.Pix[p+0] = r
		out.Pix[p+1] = g
		out.Pix[p+2] = b
		out.Pix[p+3] = 255
	}
	return out, nil
}
