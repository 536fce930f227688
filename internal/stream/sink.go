package stream

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"
	xdraw "golang.org/x/image/draw"

	"github.com/hardye/sobel-tools/internal/raster"
)

// Sink accepts visualization rasters in presentation order. Close must be
// called once after the last Write; for buffering sinks it performs the
// actual encode.
type Sink interface {
	Write(r *raster.Raster) error
	Close() error
}

// SavePNG writes an image to a PNG file via the bild encoder.
func SavePNG(path string, img image.Image) error {
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// PNGSink writes each raster as a numbered PNG file <prefix>_0000.png,
// <prefix>_0001.png, ... in a directory.
type PNGSink struct {
	dir    string
	prefix string
	scale  int
	count  int
}

// NewPNGSink creates a PNG-sequence sink. scale > 1 upscales each frame by
// that integer factor with nearest-neighbor sampling before encoding.
func NewPNGSink(dir, prefix string, scale int) *PNGSink {
	return &PNGSink{dir: dir, prefix: prefix, scale: scale}
}

// Write encodes one frame.
func (s *PNGSink) Write(r *raster.Raster) error {
	path := filepath.Join(s.dir, fmt.Sprintf("%s_%04d.png", s.prefix, s.count))
	if err := SavePNG(path, upscaleGray(r.Gray(), s.scale)); err != nil {
		return err
	}
	s.count++
	return nil
}

// Close is a no-op; PNG frames are written eagerly.
func (s *PNGSink) Close() error { return nil }

// grayPalette maps palette index i to the gray level i, so luma rasters
// convert to paletted GIF frames by a straight pixel copy.
var grayPalette = func() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = color.Gray{Y: uint8(i)}
	}
	return p
}()

// GIFSink accumulates grayscale frames and writes an animated GIF with a
// fixed per-frame delay when closed.
type GIFSink struct {
	path   string
	delay  int // per frame, in 100ths of a second
	scale  int
	frames []*image.Paletted
}

// NewGIFSink creates an animated-GIF sink writing to path. delay is the
// per-frame delay in hundredths of a second; scale as in NewPNGSink.
func NewGIFSink(path string, delay, scale int) *GIFSink {
	return &GIFSink{path: path, delay: delay, scale: scale}
}

// Write buffers one frame. Nothing touches the filesystem until Close.
func (s *GIFSink) Write(r *raster.Raster) error {
	gray := upscaleGray(r.Gray(), s.scale)
	bounds := gray.Bounds()
	frame := image.NewPaletted(bounds, grayPalette)
	for y := 0; y < bounds.Dy(); y++ {
		copy(frame.Pix[y*frame.Stride:], gray.Pix[y*gray.Stride:y*gray.Stride+bounds.Dx()])
	}
	s.frames = append(s.frames, frame)
	return nil
}

// Close encodes the buffered frames as a looping animated GIF. Closing a
// sink that never received a frame is an error: the GIF format cannot
// represent an empty animation.
func (s *GIFSink) Close() error {
	if len(s.frames) == 0 {
		return fmt.Errorf("no frames written to %s", s.path)
	}

	delays := make([]int, len(s.frames))
	for i := range delays {
		delays[i] = s.delay
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", s.path, err)
	}
	if err := gif.EncodeAll(f, &gif.GIF{Image: s.frames, Delay: delays}); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", s.path, err)
	}
	return f.Close()
}

// Upscale enlarges an image by an integer factor with nearest-neighbor
// sampling. Factors below 2 return the input unchanged.
func Upscale(img image.Image, scale int) image.Image {
	if scale < 2 {
		return img
	}
	if gray, ok := img.(*image.Gray); ok {
		return upscaleGray(gray, scale)
	}
	bounds := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*scale, bounds.Dy()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
	return dst
}

// upscaleGray enlarges a grayscale image by an integer factor using
// nearest-neighbor sampling, keeping hard pixel edges in the output.
// Factors below 2 return the input unchanged.
func upscaleGray(img *image.Gray, scale int) *image.Gray {
	if scale < 2 {
		return img
	}
	bounds := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, bounds.Dx()*scale, bounds.Dy()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
	return dst
}
