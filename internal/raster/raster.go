package raster

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Raster is a single-channel 8-bit luma image stored row-major.
//
// The zero value is not usable; create rasters with New or FromImage. Width
// and Height never change after creation. The gradient engines read rasters
// but never write them, so a Raster may be shared freely across goroutines
// as long as nobody calls Set concurrently.
type Raster struct {
	// Width of the raster in pixels.
	Width int

	// Height of the raster in pixels.
	Height int

	// Pix holds the luma samples in row-major order, length Width*Height.
	Pix []uint8
}

// New creates a zero-filled raster of the given dimensions.
func New(width, height int) (*Raster, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid raster dimensions %dx%d", width, height)
	}
	return &Raster{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}, nil
}

// At returns the luma sample at (x, y). Coordinates must be in bounds;
// out-of-range access panics like a slice access would.
func (r *Raster) At(x, y int) uint8 {
	return r.Pix[y*r.Width+x]
}

// Set stores a luma sample at (x, y).
func (r *Raster) Set(x, y int, v uint8) {
	r.Pix[y*r.Width+x] = v
}

// SameSize reports whether two rasters have identical dimensions.
func (r *Raster) SameSize(other *Raster) bool {
	return other != nil && r.Width == other.Width && r.Height == other.Height
}

// Gray converts the raster to a standard library grayscale image.
//
// The pixel data is copied, so the returned image does not alias the raster.
func (r *Raster) Gray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, r.Width, r.Height))
	copy(img.Pix, r.Pix)
	return img
}

// FromImage converts any image to a luma raster.
//
// Color images are converted with ITU-R BT.601 luminance weights
// (0.299*R + 0.587*G + 0.114*B) via the imaging package's grayscale
// conversion. Grayscale source images are copied directly.
func FromImage(img image.Image) *Raster {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	out := &Raster{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}

	if gray, ok := img.(*image.Gray); ok {
		for y := 0; y < height; y++ {
			off := gray.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(out.Pix[y*width:(y+1)*width], gray.Pix[off:off+width])
		}
		return out
	}

	// imaging.Grayscale produces an NRGBA with R=G=B=luma.
	nrgba := imaging.Grayscale(img)
	for y := 0; y < height; y++ {
		row := nrgba.Pix[y*nrgba.Stride:]
		for x := 0; x < width; x++ {
			out.Pix[y*width+x] = row[x*4]
		}
	}
	return out
}
