package gradient

import (
	"errors"
	"io"
	"testing"

	"github.com/hardye/sobel-tools/internal/raster"
)

// markedFrame builds a frame whose top-left sample carries its sequence
// number, so window contents can be identified after shifting.
func markedFrame(t *testing.T, seq int) *raster.Raster {
	t.Helper()
	r, err := raster.New(4, 4)
	if err != nil {
		t.Fatalf("raster.New failed: %v", err)
	}
	r.Set(0, 0, uint8(seq))
	return r
}

// seqSource serves a fixed number of marked frames, then io.EOF.
type seqSource struct {
	frames []*raster.Raster
	pos    int
}

func newSeqSource(t *testing.T, n int) *seqSource {
	t.Helper()
	s := &seqSource{}
	for i := 0; i < n; i++ {
		s.frames = append(s.frames, markedFrame(t, i))
	}
	return s
}

func (s *seqSource) Next() (*raster.Raster, error) {
	if s.pos >= len(s.frames) {
		return nil, io.EOF
	}
	f := s.frames[s.pos]
	s.pos++
	return f, nil
}

func TestPrimeWindow_InsufficientFrames(t *testing.T) {
	for _, n := range []int{0, 1, 2} {
		src := newSeqSource(t, n)
		if _, err := PrimeWindow(src); !errors.Is(err, ErrInsufficientFrames) {
			t.Errorf("%d frames: got %v, want ErrInsufficientFrames", n, err)
		}
	}
}

func TestPrimeWindow_SourceError(t *testing.T) {
	src := &failingSource{after: 1}
	_, err := PrimeWindow(src)
	if err == nil || errors.Is(err, ErrInsufficientFrames) {
		t.Errorf("decode failures must not be reported as insufficient frames, got %v", err)
	}
}

type failingSource struct {
	after int
	count int
}

func (s *failingSource) Next() (*raster.Raster, error) {
	if s.count >= s.after {
		return nil, errors.New("decode failed")
	}
	s.count++
	r, _ := raster.New(4, 4)
	return r, nil
}

func TestPrimeWindow_AdvanceShifts(t *testing.T) {
	const total = 7
	src := newSeqSource(t, total)

	window, err := PrimeWindow(src)
	if err != nil {
		t.Fatalf("PrimeWindow failed: %v", err)
	}

	seq := func(r *raster.Raster) int { return int(r.At(0, 0)) }

	// After k advances the window must hold frames [k, k+1, k+2].
	for k := 0; ; k++ {
		if got := [3]int{seq(window.Prev()), seq(window.Curr()), seq(window.Next())}; got != [3]int{k, k + 1, k + 2} {
			t.Fatalf("after %d advances window holds %v, want [%d %d %d]", k, got, k, k+1, k+2)
		}

		frame, err := src.Next()
		if errors.Is(err, io.EOF) {
			if k != total-3 {
				t.Errorf("source drained after %d advances, want %d", k, total-3)
			}
			break
		}
		if err != nil {
			t.Fatalf("source failed: %v", err)
		}
		if err := window.Advance(frame); err != nil {
			t.Fatalf("Advance failed: %v", err)
		}
	}
}

func TestWindow_AdvanceDimensionMismatch(t *testing.T) {
	src := newSeqSource(t, 3)
	window, err := PrimeWindow(src)
	if err != nil {
		t.Fatalf("PrimeWindow failed: %v", err)
	}

	wrong, _ := raster.New(5, 4)
	if err := window.Advance(wrong); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("got %v, want ErrInvalidDimensions", err)
	}
	// The window must be untouched after a rejected advance.
	if int(window.Prev().At(0, 0)) != 0 || int(window.Curr().At(0, 0)) != 1 || int(window.Next().At(0, 0)) != 2 {
		t.Error("window contents changed by rejected Advance")
	}
}

func TestNewWindow_Validation(t *testing.T) {
	a, _ := raster.New(4, 4)
	b, _ := raster.New(4, 4)
	odd, _ := raster.New(4, 5)

	if _, err := NewWindow(a, b, odd); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("mismatched sizes: got %v, want ErrInvalidDimensions", err)
	}
	if _, err := NewWindow(a, nil, b); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("nil frame: got %v, want ErrInvalidDimensions", err)
	}
	if _, err := NewWindow(a, b, a); err != nil {
		t.Errorf("valid window rejected: %v", err)
	}
}
