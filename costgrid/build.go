package costgrid

import (
	"github.com/paulmach/orb"
)

// Build rasterizes obstacle and staging polygons into a fresh cost grid of
// width×height cells.
//
// The produced grid holds exactly three kinds of values:
//
//   - CostEmpty for free cells,
//   - CostEmpty + Options.StagingPenalty for cells whose center lies inside
//     any staging polygon,
//   - CostObstacle for cells covered by an obstacle polygon or by its
//     8-connected dilation, unconditionally overwriting staging costs.
//
// Polygons with fewer than three vertices are silently skipped; they cannot
// enclose any cell center. The same inputs always yield a bit-identical
// grid.
//
// Returns ErrInvalidDimensions when width or height is ≤ 0; the error is
// fatal and no grid is produced.
//
// Complexity: O(W×H×(1+iters) + Σ bbox(polygon)) time, O(W×H) memory.
func Build(width, height int, obstacles, staging []orb.Ring, opts ...Option) (*Grid, error) {
	// 1) Resolve functional options into a concrete configuration.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate dimensions. Zero-area grids are a caller error.
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	// 3) Initialize every cell to the baseline cost.
	cells := make([][]float64, height)
	for r := 0; r < height; r++ {
		row := make([]float64, width)
		for c := 0; c < width; c++ {
			row[c] = CostEmpty
		}
		cells[r] = row
	}

	// 4) Rasterize staging polygons. Membership is idempotent: a cell inside
	//    several staging polygons still carries exactly one penalty.
	if len(staging) > 0 && cfg.StagingPenalty > 0 {
		stagingCost := CostEmpty + cfg.StagingPenalty
		stagingMask := rasterize(width, height, staging, cfg.Resolution)
		for r := 0; r < height; r++ {
			for c := 0; c < width; c++ {
				if stagingMask[r][c] {
					cells[r][c] = stagingCost
				}
			}
		}
	}

	// 5) Rasterize obstacles, thicken the mask, and stamp infinite cost.
	//    Obstacles win wherever they overlap staging.
	obstacleMask := rasterize(width, height, obstacles, cfg.Resolution)
	obstacleMask = dilate(obstacleMask, cfg.Dilation)
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			if obstacleMask[r][c] {
				cells[r][c] = CostObstacle
			}
		}
	}

	return &Grid{
		Rows:       height,
		Cols:       width,
		Resolution: cfg.Resolution,
		cells:      cells,
	}, nil
}
