package gradient

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hardye/sobel-tools/internal/raster"
)

// DefaultWorkers is the number of regions a spatial computation is split
// into when no option overrides it: the four quadrants of the interior.
const DefaultWorkers = 4

type spatialConfig struct {
	workers int
	regions []Region
}

// SpatialOption adjusts how ComputeSpatial decomposes the raster interior.
type SpatialOption func(*spatialConfig)

// WithWorkers sets the number of regions (and goroutines) used for the
// computation. The result is bit-identical for any worker count.
func WithWorkers(n int) SpatialOption {
	return func(c *spatialConfig) { c.workers = n }
}

// WithRegions supplies an explicit region decomposition instead of the
// built-in partition. The regions must be pairwise disjoint and cover the
// raster interior exactly, or the computation fails with ErrWorkerStart.
func WithRegions(regions []Region) SpatialOption {
	return func(c *spatialConfig) { c.regions = regions }
}

// ComputeSpatial runs the 2-D Sobel operator over a luma raster and returns
// a gradient field with Gx, Gy, Magnitude and Theta planes.
//
// The raster must be at least 3x3 in both axes, otherwise the call fails
// with ErrInvalidDimensions. Border cells of every plane stay zero because
// the 3x3 stencil has no complete neighborhood there.
//
// The interior is partitioned into disjoint regions (four quadrants by
// default) and one goroutine computes each region. Workers share the input
// read-only and write disjoint output cells, so no locking is needed and
// the field is identical regardless of how the interior was partitioned.
// The call blocks until every worker has finished; on failure no partial
// field is returned.
func ComputeSpatial(r *raster.Raster, opts ...SpatialOption) (*raster.Field, error) {
	if r == nil || r.Width < 3 || r.Height < 3 {
		return nil, fmt.Errorf("%w: spatial gradient needs at least 3x3, got %s", ErrInvalidDimensions, rasterSize(r))
	}

	cfg := spatialConfig{workers: DefaultWorkers}
	for _, opt := range opts {
		opt(&cfg)
	}

	regions := cfg.regions
	if regions == nil {
		var err error
		regions, err = PartitionInterior(r.Width, r.Height, cfg.workers)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrWorkerStart, err)
		}
	} else if !coversInterior(regions, r.Width, r.Height) {
		return nil, fmt.Errorf("%w: regions do not tile the %dx%d interior", ErrWorkerStart, r.Width, r.Height)
	}

	field := raster.NewSpatialField(r.Width, r.Height)

	var g errgroup.Group
	for _, reg := range regions {
		if reg.Empty() {
			continue
		}
		reg := reg
		g.Go(func() error {
			spatialWorker(r, field, reg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return field, nil
}

// spatialWorker convolves one region. It reads only the shared raster and
// writes only cells inside its own region.
func spatialWorker(r *raster.Raster, field *raster.Field, reg Region) {
	for y := reg.Y0; y < reg.Y1; y++ {
		for x := reg.X0; x < reg.X1; x++ {
			var sumX, sumY int
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					p := int(r.At(x+dx, y+dy))
					sumX += p * Weight2D(AxisX, dx, dy)
					sumY += p * Weight2D(AxisY, dx, dy)
				}
			}
			field.SetSpatial(x, y, float32(sumX), float32(sumY))
		}
	}
}

func rasterSize(r *raster.Raster) string {
	if r == nil {
		return "nil raster"
	}
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}
