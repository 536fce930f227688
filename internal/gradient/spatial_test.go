package gradient

import (
	"errors"
	"math"
	"testing"

	"github.com/hardye/sobel-tools/internal/raster"
)

// newTestRaster builds a raster whose samples come from a generator
// function, so tests can describe inputs as formulas.
func newTestRaster(t *testing.T, width, height int, sample func(x, y int) uint8) *raster.Raster {
	t.Helper()
	r, err := raster.New(width, height)
	if err != nil {
		t.Fatalf("raster.New failed: %v", err)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r.Set(x, y, sample(x, y))
		}
	}
	return r
}

// noiseSample is a deterministic pseudo-random generator, enough to make
// every gradient plane non-trivial.
func noiseSample(x, y int) uint8 {
	return uint8((x*31 + y*17 + x*y*7) % 251)
}

func TestComputeSpatial_LiteralScenario(t *testing.T) {
	// 3x3 raster, every row [0, 128, 255]: a pure horizontal ramp.
	r := newTestRaster(t, 3, 3, func(x, y int) uint8 {
		return []uint8{0, 128, 255}[x]
	})

	field, err := ComputeSpatial(r)
	if err != nil {
		t.Fatalf("ComputeSpatial failed: %v", err)
	}

	i := field.Index(1, 1)
	if got := field.Gx[i]; got != 1020 {
		t.Errorf("Gx = %v, want 1020", got)
	}
	if got := field.Gy[i]; got != 0 {
		t.Errorf("Gy = %v, want 0", got)
	}
	if got := field.Magnitude[i]; got != 1020 {
		t.Errorf("Magnitude = %v, want 1020", got)
	}
	if got := field.Theta[i]; got != 0 {
		t.Errorf("Theta = %v, want 0", got)
	}
}

func TestComputeSpatial_BorderZero(t *testing.T) {
	r := newTestRaster(t, 9, 6, noiseSample)

	field, err := ComputeSpatial(r)
	if err != nil {
		t.Fatalf("ComputeSpatial failed: %v", err)
	}

	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			if x != 0 && x != r.Width-1 && y != 0 && y != r.Height-1 {
				continue
			}
			i := field.Index(x, y)
			if field.Gx[i] != 0 || field.Gy[i] != 0 || field.Magnitude[i] != 0 || field.Theta[i] != 0 {
				t.Errorf("border cell (%d,%d) is non-zero", x, y)
			}
		}
	}
}

func TestComputeSpatial_PartitionInvariance(t *testing.T) {
	r := newTestRaster(t, 33, 21, noiseSample)

	base, err := ComputeSpatial(r, WithWorkers(1))
	if err != nil {
		t.Fatalf("ComputeSpatial(1 worker) failed: %v", err)
	}

	for _, workers := range []int{2, 3, 4, 8} {
		field, err := ComputeSpatial(r, WithWorkers(workers))
		if err != nil {
			t.Fatalf("ComputeSpatial(%d workers) failed: %v", workers, err)
		}
		for i := range base.Gx {
			if field.Gx[i] != base.Gx[i] || field.Gy[i] != base.Gy[i] ||
				field.Magnitude[i] != base.Magnitude[i] || field.Theta[i] != base.Theta[i] {
				t.Fatalf("%d workers: cell %d differs from single-worker result", workers, i)
			}
		}
	}
}

func TestComputeSpatial_DerivedPlanes(t *testing.T) {
	r := newTestRaster(t, 12, 15, noiseSample)

	field, err := ComputeSpatial(r)
	if err != nil {
		t.Fatalf("ComputeSpatial failed: %v", err)
	}

	for y := 1; y < r.Height-1; y++ {
		for x := 1; x < r.Width-1; x++ {
			i := field.Index(x, y)
			gx := float64(field.Gx[i])
			gy := float64(field.Gy[i])

			want := math.Sqrt(gx*gx + gy*gy)
			if diff := math.Abs(float64(field.Magnitude[i]) - want); diff > 1e-3 {
				t.Errorf("(%d,%d): Magnitude %v, want %v", x, y, field.Magnitude[i], want)
			}

			theta := float64(field.Theta[i])
			if theta <= -math.Pi || theta > math.Pi {
				t.Errorf("(%d,%d): Theta %v outside (-pi, pi]", x, y, theta)
			}
		}
	}
}

func TestComputeSpatial_TooSmall(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"narrow", 2, 5},
		{"short", 5, 2},
		{"single pixel", 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRaster(t, tt.width, tt.height, noiseSample)
			if _, err := ComputeSpatial(r); !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("got %v, want ErrInvalidDimensions", err)
			}
		})
	}
}

func TestComputeSpatial_WorkerStartFailures(t *testing.T) {
	r := newTestRaster(t, 8, 8, noiseSample)

	if _, err := ComputeSpatial(r, WithWorkers(0)); !errors.Is(err, ErrWorkerStart) {
		t.Errorf("zero workers: got %v, want ErrWorkerStart", err)
	}

	// A region set that leaves part of the interior uncovered must be
	// rejected before any work is dispatched.
	partial := []Region{{X0: 1, X1: 4, Y0: 1, Y1: 7}}
	if _, err := ComputeSpatial(r, WithRegions(partial)); !errors.Is(err, ErrWorkerStart) {
		t.Errorf("partial regions: got %v, want ErrWorkerStart", err)
	}

	overlapping := []Region{
		{X0: 1, X1: 7, Y0: 1, Y1: 7},
		{X0: 1, X1: 2, Y0: 1, Y1: 2},
	}
	if _, err := ComputeSpatial(r, WithRegions(overlapping)); !errors.Is(err, ErrWorkerStart) {
		t.Errorf("overlapping regions: got %v, want ErrWorkerStart", err)
	}
}

func TestComputeSpatial_ExplicitRegions(t *testing.T) {
	r := newTestRaster(t, 10, 10, noiseSample)

	base, err := ComputeSpatial(r, WithWorkers(1))
	if err != nil {
		t.Fatalf("ComputeSpatial failed: %v", err)
	}

	regions, err := PartitionInterior(10, 10, 4)
	if err != nil {
		t.Fatalf("PartitionInterior failed: %v", err)
	}
	field, err := ComputeSpatial(r, WithRegions(regions))
	if err != nil {
		t.Fatalf("ComputeSpatial with explicit regions failed: %v", err)
	}
	for i := range base.Gx {
		if field.Gx[i] != base.Gx[i] || field.Gy[i] != base.Gy[i] {
			t.Fatalf("cell %d differs between explicit and built-in partition", i)
		}
	}
}
