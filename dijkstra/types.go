// Package dijkstra defines the map types and priority-queue plumbing for the
// grid shortest-path engine of github.com/katalvlaran/lvlpath.
package dijkstra

import (
	"github.com/katalvlaran/lvlpath/costgrid"
)

// Epsilon is the tolerance used for every floating-point distance
// comparison. Distances within Epsilon of each other are considered equal,
// so float jitter cannot reopen an already settled cell.
const Epsilon = 1e-6

// NoPredecessor is the sentinel stored where no predecessor exists: at the
// start cell and at every cell the search never reached. Compare with ==.
var NoPredecessor = costgrid.Cell{Row: -1, Col: -1}

// DistanceMap holds, per cell, the cost of the cheapest path from the start
// cell. Unreached cells hold math.Inf(1); the start cell holds 0.
type DistanceMap [][]float64

// PredecessorMap holds, per cell, the previous cell on the cheapest path
// from the start. Following predecessors from any reached cell terminates at
// the start within rows×cols hops.
type PredecessorMap [][]costgrid.Cell

// Result bundles the two per-source output maps of one Compute run. Both
// maps always share the grid's dimensions, even when the run failed.
type Result struct {
	Dist DistanceMap
	Prev PredecessorMap
}

// At returns the shortest-path cost to cell. The caller must ensure the
// cell is in bounds.
func (d DistanceMap) At(cell costgrid.Cell) float64 {
	return d[cell.Row][cell.Col]
}

// At returns the predecessor of cell. The caller must ensure the cell is in
// bounds.
func (p PredecessorMap) At(cell costgrid.Cell) costgrid.Cell {
	return p[cell.Row][cell.Col]
}

// cardinal holds the 4-connected neighbor offsets, in the fixed relaxation
// order N, S, W, E. The order is part of the determinism contract: ties keep
// whichever predecessor relaxed the cell first.
var cardinal = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// cellItem is one entry of the priority queue: a cell and its tentative
// distance at push time.
type cellItem struct {
	cell costgrid.Cell
	dist float64
}

// cellPQ is a min-heap of cellItem ordered by dist ascending. It follows the
// lazy-decrease-key pattern: improving a cell pushes a fresh entry, and
// stale entries are skipped on pop by comparing against the distance map.
type cellPQ []cellItem

// Len returns the number of items in the heap.
func (pq cellPQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq cellPQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be a cellItem.
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(cellItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
