// Package costgrid defines the Grid type, cost constants, and build options
// for the costgrid subpackage of github.com/katalvlaran/lvlpath.
package costgrid

import (
	"math"

	"github.com/paulmach/orb"
)

// Cost constants shared by every grid.
const (
	// CostEmpty is the baseline cost of moving through a free cell.
	CostEmpty = 1.0

	// DefaultResolution is the default continuous-space distance per cell edge.
	DefaultResolution = 1.0

	// DefaultStagingPenalty is the default extra cost for staging cells.
	DefaultStagingPenalty = 10.0

	// DefaultDilation is the default number of obstacle thickening iterations.
	DefaultDilation = 2
)

// CostObstacle marks an impassable cell. It is the only non-finite cost a
// grid may contain; compare with == or math.IsInf, never with epsilon.
var CostObstacle = math.Inf(1)

// Cell addresses one grid unit by (Row, Col), row-major from the top-left.
type Cell struct {
	Row, Col int
}

// Grid is a rectangular array of per-cell traversal costs at a fixed
// resolution. Rows, Cols and Resolution never change after Build; the cell
// storage is owned by the grid and only exposed through copying accessors.
type Grid struct {
	Rows, Cols int
	// Resolution is the continuous-space distance represented by one cell edge.
	Resolution float64

	cells [][]float64
}

// At returns the cost stored at (r, c). The caller must ensure the cell is
// in bounds; see InBounds.
// Complexity: O(1).
func (g *Grid) At(r, c int) float64 {
	return g.cells[r][c]
}

// InBounds reports whether (r, c) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.Rows && c >= 0 && c < g.Cols
}

// Passable reports whether cell (r, c) is in bounds and not an obstacle.
// Complexity: O(1).
func (g *Grid) Passable(r, c int) bool {
	return g.InBounds(r, c) && !math.IsInf(g.cells[r][c], 1)
}

// CellForPoint maps a continuous-space point to the cell containing it,
// clamped to the grid boundaries:
//
//	col = clamp(floor(x / Resolution), 0, Cols-1)
//	row = clamp(floor(y / Resolution), 0, Rows-1)
//
// Complexity: O(1).
func (g *Grid) CellForPoint(p orb.Point) Cell {
	col := clampInt(int(math.Floor(p.X()/g.Resolution)), 0, g.Cols-1)
	row := clampInt(int(math.Floor(p.Y()/g.Resolution)), 0, g.Rows-1)

	return Cell{Row: row, Col: col}
}

// CenterOf returns the continuous-space center point of a cell:
// (col*Resolution + Resolution/2, row*Resolution + Resolution/2).
// Complexity: O(1).
func (g *Grid) CenterOf(cell Cell) orb.Point {
	half := g.Resolution / 2

	return orb.Point{
		float64(cell.Col)*g.Resolution + half,
		float64(cell.Row)*g.Resolution + half,
	}
}

// Values returns a deep copy of the cost array. Mutating the copy does not
// affect the grid.
// Complexity: O(rows×cols).
func (g *Grid) Values() [][]float64 {
	out := make([][]float64, g.Rows)
	for r := 0; r < g.Rows; r++ {
		out[r] = make([]float64, g.Cols)
		copy(out[r], g.cells[r])
	}

	return out
}

// Clone returns an independent deep copy of the grid.
// Complexity: O(rows×cols).
func (g *Grid) Clone() *Grid {
	return &Grid{
		Rows:       g.Rows,
		Cols:       g.Cols,
		Resolution: g.Resolution,
		cells:      g.Values(),
	}
}

// clampInt bounds v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
