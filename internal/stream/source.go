package stream

import (
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"io"
	"os"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"

	"github.com/hardye/sobel-tools/internal/raster"
)

// Source yields luma rasters in presentation order. Next returns io.EOF
// when the stream is exhausted; Reset seeks back to the first frame so the
// caller can loop playback.
type Source interface {
	Next() (*raster.Raster, error)
	Reset() error
}

// SliceSource serves a fixed in-memory sequence of rasters. It backs the
// GIF source and is handy for tests and synthetic pipelines.
type SliceSource struct {
	frames []*raster.Raster
	pos    int
}

// NewSliceSource creates a source over the given frames, served in order.
func NewSliceSource(frames ...*raster.Raster) *SliceSource {
	return &SliceSource{frames: frames}
}

// Next returns the next frame, or io.EOF past the last one.
func (s *SliceSource) Next() (*raster.Raster, error) {
	if s.pos >= len(s.frames) {
		return nil, io.EOF
	}
	frame := s.frames[s.pos]
	s.pos++
	return frame, nil
}

// Reset rewinds to the first frame.
func (s *SliceSource) Reset() error {
	s.pos = 0
	return nil
}

// Len returns the total number of frames the source serves per pass.
func (s *SliceSource) Len() int { return len(s.frames) }

// OpenStill loads a single image file as a one-frame source. maxWidth > 0
// downscales wider images proportionally before luma conversion.
func OpenStill(path string, maxWidth int) (*SliceSource, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return NewSliceSource(raster.FromImage(shrink(img, maxWidth))), nil
}

// OpenGIF decodes every frame of an animated GIF into a source.
//
// GIF frames may be partial updates with per-frame disposal modes, so each
// frame is composited onto a running canvas before luma conversion; the
// source then serves full-frame rasters of identical dimensions. maxWidth
// behaves as in OpenStill.
func OpenGIF(path string, maxWidth int) (*SliceSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open GIF: %w", err)
	}
	defer f.Close()

	g, err := gif.DecodeAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode GIF: %w", err)
	}
	return NewGIFSource(g, maxWidth)
}

// NewGIFSource builds a source from an already-decoded GIF. See OpenGIF.
func NewGIFSource(g *gif.GIF, maxWidth int) (*SliceSource, error) {
	if len(g.Image) == 0 {
		return nil, fmt.Errorf("GIF has no frames")
	}

	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() {
		bounds = g.Image[0].Bounds()
	}

	canvas := image.NewRGBA(bounds)
	frames := make([]*raster.Raster, 0, len(g.Image))

	for i, frame := range g.Image {
		var restore *image.RGBA
		if i < len(g.Disposal) && g.Disposal[i] == gif.DisposalPrevious {
			restore = image.NewRGBA(bounds)
			draw.Draw(restore, bounds, canvas, bounds.Min, draw.Src)
		}

		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		frames = append(frames, raster.FromImage(shrink(canvas, maxWidth)))

		if i < len(g.Disposal) {
			switch g.Disposal[i] {
			case gif.DisposalBackground:
				draw.Draw(canvas, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
			case gif.DisposalPrevious:
				draw.Draw(canvas, bounds, restore, bounds.Min, draw.Src)
			}
		}
	}
	return NewSliceSource(frames...), nil
}

// shrink downscales img proportionally when it is wider than maxWidth.
// maxWidth <= 0 disables resizing.
func shrink(img image.Image, maxWidth int) image.Image {
	if maxWidth <= 0 || img.Bounds().Dx() <= maxWidth {
		return img
	}
	return imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
}
