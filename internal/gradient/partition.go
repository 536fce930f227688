package gradient

import "fmt"

// Region is a half-open rectangle [X0,X1) x [Y0,Y1) of output cells assigned
// to one worker. Regions produced by PartitionInterior are pairwise disjoint
// and together cover exactly the raster interior.
type Region struct {
	X0, X1 int
	Y0, Y1 int
}

// Empty reports whether the region contains no cells.
func (r Region) Empty() bool {
	return r.X0 >= r.X1 || r.Y0 >= r.Y1
}

// Cells returns the number of output cells in the region.
func (r Region) Cells() int {
	if r.Empty() {
		return 0
	}
	return (r.X1 - r.X0) * (r.Y1 - r.Y0)
}

// PartitionInterior divides the interior of a width x height raster (the
// rectangle [1, width-2] x [1, height-2] where a full 3x3 neighborhood
// exists) into count disjoint regions whose union is the whole interior.
//
// count == 4 splits into quadrants at midX = width/2, midY = height/2,
// clamped to the interior. count == 1 returns the whole interior. Any other
// positive count splits the interior rows into count horizontal bands (some
// possibly empty when there are fewer interior rows than bands).
//
// Empty regions are valid and are returned as-is so the result always has
// exactly count entries.
func PartitionInterior(width, height, count int) ([]Region, error) {
	if count < 1 {
		return nil, fmt.Errorf("partition count %d, want at least 1", count)
	}

	// Interior bounds, half-open.
	x0, x1 := 1, width-1
	y0, y1 := 1, height-1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}

	switch count {
	case 1:
		return []Region{{X0: x0, X1: x1, Y0: y0, Y1: y1}}, nil
	case 4:
		midX := clampInt(width/2, x0, x1)
		midY := clampInt(height/2, y0, y1)
		return []Region{
			{X0: x0, X1: midX, Y0: y0, Y1: midY}, // top-left
			{X0: midX, X1: x1, Y0: y0, Y1: midY}, // top-right
			{X0: x0, X1: midX, Y0: midY, Y1: y1}, // bottom-left
			{X0: midX, X1: x1, Y0: midY, Y1: y1}, // bottom-right
		}, nil
	}

	// Horizontal bands of interior rows.
	regions := make([]Region, 0, count)
	rows := y1 - y0
	for i := 0; i < count; i++ {
		bandY0 := y0 + rows*i/count
		bandY1 := y0 + rows*(i+1)/count
		regions = append(regions, Region{X0: x0, X1: x1, Y0: bandY0, Y1: bandY1})
	}
	return regions, nil
}

// coversInterior checks that the regions are pairwise disjoint and that
// their union is exactly the interior of a width x height raster. Used to
// validate caller-supplied regions before dispatching workers.
func coversInterior(regions []Region, width, height int) bool {
	interiorW := width - 2
	interiorH := height - 2
	if interiorW < 0 {
		interiorW = 0
	}
	if interiorH < 0 {
		interiorH = 0
	}

	seen := make([]bool, interiorW*interiorH)
	covered := 0
	for _, reg := range regions {
		for y := reg.Y0; y < reg.Y1; y++ {
			for x := reg.X0; x < reg.X1; x++ {
				if x < 1 || x > width-2 || y < 1 || y > height-2 {
					return false
				}
				i := (y-1)*interiorW + (x - 1)
				if seen[i] {
					return false
				}
				seen[i] = true
				covered++
			}
		}
	}
	return covered == interiorW*interiorH
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
