package costgrid

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// rasterize marks every cell whose center falls inside any of the given
// polygons (even-odd rule). Polygons arrive in continuous space and are
// scaled into cell space by 1/resolution before the containment test, so a
// cell (r, c) is tested at the cell-space point (c+0.5, r+0.5).
//
// Degenerate polygons (< 3 vertices) are skipped, not reported: a line or a
// point encloses nothing.
//
// Complexity: O(Σ bbox(polygon) × vertices(polygon)) time, O(W×H) memory.
func rasterize(width, height int, polygons []orb.Ring, resolution float64) [][]bool {
	mask := make([][]bool, height)
	for r := 0; r < height; r++ {
		mask[r] = make([]bool, width)
	}

	for _, poly := range polygons {
		ring := scaleRing(poly, 1/resolution)
		if ring == nil {
			continue // degenerate, nothing to fill
		}

		// Restrict the scan to the ring's bounding box; everything outside
		// cannot contain a cell center.
		b := ring.Bound()
		r0 := clampInt(int(math.Floor(b.Bottom()-0.5)), 0, height-1)
		r1 := clampInt(int(math.Ceil(b.Top()+0.5)), 0, height-1)
		c0 := clampInt(int(math.Floor(b.Left()-0.5)), 0, width-1)
		c1 := clampInt(int(math.Ceil(b.Right()+0.5)), 0, width-1)

		for r := r0; r <= r1; r++ {
			for c := c0; c <= c1; c++ {
				if mask[r][c] {
					continue // already inside an earlier polygon
				}
				center := orb.Point{float64(c) + 0.5, float64(r) + 0.5}
				if planar.RingContains(ring, center) {
					mask[r][c] = true
				}
			}
		}
	}

	return mask
}

// scaleRing returns a closed copy of ring with every vertex multiplied by
// factor, or nil when the ring has fewer than three vertices.
func scaleRing(ring orb.Ring, factor float64) orb.Ring {
	if len(ring) < 3 {
		return nil
	}

	out := make(orb.Ring, 0, len(ring)+1)
	for _, p := range ring {
		out = append(out, orb.Point{p.X() * factor, p.Y() * factor})
	}
	if !out.Closed() {
		out = append(out, out[0])
	}

	return out
}
