// Package dijkstra implements single-source shortest paths over a cost grid
// and path reconstruction from the resulting predecessor data.
//
// What:
//
//   - Compute runs Dijkstra's algorithm from one start cell across a
//     costgrid.Grid, expanding the four cardinal neighbors only (no diagonal
//     movement) and using each neighbor's cell cost as the edge weight.
//   - The result is a dense DistanceMap (math.Inf(1) for unreached cells)
//     and a dense PredecessorMap (NoPredecessor at the start and at every
//     permanently unreached cell).
//   - Reconstruct walks a predecessor map backward from a target cell to the
//     start cell, yielding the cell sequence in forward order.
//
// Why:
//
//   - Batch workloads query many targets against one source; a full
//     single-source pass amortizes all of them.
//   - Dense maps are written once by the engine and read lock-free by any
//     number of queries afterwards.
//
// Complexity:
//
//   - Compute: O(W×H log(W×H)) time with a lazy-decrease-key binary heap,
//     O(W×H) memory.
//   - Reconstruct: O(len(path)) time, bounded by W×H hops.
//
// Failure modes (values, not errors):
//
//   - Out-of-bounds or obstacle-seated start: Compute returns all-infinite
//     distances and all-sentinel predecessors.
//   - Unreachable target or broken predecessor chain: Reconstruct returns nil.
//
// Distances are float64 and compared with an Epsilon tolerance so that
// accumulated rounding cannot reopen settled cells.
package dijkstra
