package gradient

import (
	"errors"
	"fmt"
	"io"

	"github.com/hardye/sobel-tools/internal/raster"
)

// FrameSource is the minimal iterator the temporal pipeline pulls frames
// from. Next returns the next luma raster in presentation order, or io.EOF
// when the stream is exhausted. The stream package's sources satisfy it.
type FrameSource interface {
	Next() (*raster.Raster, error)
}

// Window holds the three consecutive frames (prev, curr, next) needed to
// take a temporal derivative at curr. It is mutated only by Advance and
// must not be advanced while a computation over it is in progress.
type Window struct {
	prev *raster.Raster
	curr *raster.Raster
	next *raster.Raster
}

// NewWindow builds a window directly from three frames. All three must be
// non-nil and the same size, otherwise ErrInvalidDimensions.
func NewWindow(prev, curr, next *raster.Raster) (*Window, error) {
	if prev == nil || curr == nil || next == nil {
		return nil, fmt.Errorf("%w: window needs 3 frames", ErrInvalidDimensions)
	}
	if !curr.SameSize(prev) || !curr.SameSize(next) {
		return nil, fmt.Errorf("%w: window frames %s, %s, %s",
			ErrInvalidDimensions, rasterSize(prev), rasterSize(curr), rasterSize(next))
	}
	return &Window{prev: prev, curr: curr, next: next}, nil
}

// PrimeWindow pulls three frames from a source to fill a fresh window.
//
// If the source reaches end-of-stream before three frames have been read,
// the call fails with ErrInsufficientFrames. Any other source error is
// returned as-is. The window never refills itself on end-of-stream; looping
// is the caller's policy (re-open the source and prime again).
func PrimeWindow(src FrameSource) (*Window, error) {
	frames := make([]*raster.Raster, 0, 3)
	for len(frames) < 3 {
		frame, err := src.Next()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: got %d", ErrInsufficientFrames, len(frames))
		}
		if err != nil {
			return nil, fmt.Errorf("reading frame %d: %w", len(frames), err)
		}
		frames = append(frames, frame)
	}
	return NewWindow(frames[0], frames[1], frames[2])
}

// Prev returns the frame at time t-1.
func (w *Window) Prev() *raster.Raster { return w.prev }

// Curr returns the frame at time t, the one temporal gradients are
// computed for.
func (w *Window) Curr() *raster.Raster { return w.curr }

// Next returns the frame at time t+1.
func (w *Window) Next() *raster.Raster { return w.next }

// Advance shifts the window one time step: curr becomes prev, next becomes
// curr, and the given frame becomes next. After k advances from a window
// primed with frames [0,1,2], the window holds frames [k, k+1, k+2].
//
// The new frame must match the window's dimensions, otherwise the window is
// left unchanged and ErrInvalidDimensions is returned.
func (w *Window) Advance(next *raster.Raster) error {
	if next == nil || !w.curr.SameSize(next) {
		return fmt.Errorf("%w: advance frame %s into %s window",
			ErrInvalidDimensions, rasterSize(next), rasterSize(w.curr))
	}
	w.prev = w.curr
	w.curr = w.next
	w.next = next
	return nil
}
