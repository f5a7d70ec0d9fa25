// Package costgrid rasterizes a floor-plan layout into a rectangular grid of
// per-cell traversal costs at a chosen resolution.
//
// What:
//
//   - Grid wraps a rows×cols array of float64 costs plus its resolution
//     factor (continuous-space distance per cell edge). It is immutable once
//     built.
//   - Build fills the grid from obstacle and staging polygons: staging cells
//     cost CostEmpty+penalty, obstacle cells (after dilation) cost
//     CostObstacle, everything else CostEmpty.
//   - Obstacles are dilated with an 8-connected structuring element for a
//     configurable number of iterations, producing a physical clearance
//     margin around every wall.
//
// Why:
//
//   - Warehouse routing: walls are impassable, staging floors are crossable
//     but discouraged, aisles are free.
//   - Any discretized facility map where polygon geometry must become a
//     weighted 4-connected search space.
//
// Complexity:
//
//   - Build: O(W×H + Σ bbox(poly)) rasterization + O(W×H×iters) dilation.
//     Memory: O(W×H).
//   - Grid accessors: O(1). Clone/Values: O(W×H).
//
// Options:
//
//   - WithResolution(f):     continuous units per cell edge (default 1.0).
//   - WithStagingPenalty(p): additional cost for staging cells (default 10.0).
//   - WithDilation(n):       obstacle thickening iterations (default 2).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height is not a positive integer.
//
// Note: dilation is 8-connected while traversal (package dijkstra) is
// 4-connected, so walls grow across diagonals that the search itself can
// never cross.
package costgrid
