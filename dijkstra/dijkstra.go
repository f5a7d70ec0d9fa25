package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/lvlpath/costgrid"
)

// Compute runs Dijkstra's algorithm from start over the grid and returns the
// dense distance and predecessor maps.
//
// The grid is read-only during the run; concurrent Compute calls over the
// same grid are safe. Edge weights are the destination cell's cost, so
// entering a staging cell pays its penalty while leaving it does not.
// Obstacle cells (costgrid.CostObstacle) are never relaxed into.
//
// A start cell that is out of bounds or sits on an obstacle yields
// all-infinite distances and all-sentinel predecessors — a recognizable
// failure value, not an error, because callers probe many sources and treat
// a dead one as an ordinary partial outcome.
//
// Complexity: O(W×H log(W×H)) time, O(W×H) space.
func Compute(g *costgrid.Grid, start costgrid.Cell) Result {
	// 1) Allocate the output maps in their "nothing reached" state.
	res := newResult(g.Rows, g.Cols)

	// 2) Reject unusable starts without touching the maps further.
	if !g.Passable(start.Row, start.Col) {
		return res
	}

	// 3) Seed the search: zero distance at the start, one heap entry.
	res.Dist[start.Row][start.Col] = 0
	pq := make(cellPQ, 0, g.Rows+g.Cols) // frontier is roughly one diagonal wide
	heap.Init(&pq)
	heap.Push(&pq, cellItem{cell: start, dist: 0})

	// 4) Main loop: settle cells in increasing distance order.
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(cellItem)
		cur := item.cell

		// Skip stale entries left behind by lazy decrease-key. The epsilon
		// keeps float jitter from re-expanding an already settled cell.
		if item.dist > res.Dist[cur.Row][cur.Col]+Epsilon {
			continue
		}

		// 5) Relax the four cardinal neighbors.
		for _, d := range cardinal {
			nr, nc := cur.Row+d[0], cur.Col+d[1]
			if !g.InBounds(nr, nc) {
				continue
			}
			moveCost := g.At(nr, nc)
			if math.IsInf(moveCost, 1) {
				continue // impassable, never relax into an obstacle
			}

			newDist := res.Dist[cur.Row][cur.Col] + moveCost
			// Strict improvement under tolerance; equal-cost rivals lose to
			// whichever predecessor relaxed the cell first.
			if newDist < res.Dist[nr][nc]-Epsilon {
				res.Dist[nr][nc] = newDist
				res.Prev[nr][nc] = cur
				heap.Push(&pq, cellItem{cell: costgrid.Cell{Row: nr, Col: nc}, dist: newDist})
			}
		}
	}

	return res
}

// newResult allocates a rows×cols Result with every distance infinite and
// every predecessor set to NoPredecessor.
func newResult(rows, cols int) Result {
	dist := make(DistanceMap, rows)
	prev := make(PredecessorMap, rows)
	inf := math.Inf(1)
	for r := 0; r < rows; r++ {
		dRow := make([]float64, cols)
		pRow := make([]costgrid.Cell, cols)
		for c := 0; c < cols; c++ {
			dRow[c] = inf
			pRow[c] = NoPredecessor
		}
		dist[r] = dRow
		prev[r] = pRow
	}

	return Result{Dist: dist, Prev: prev}
}
