// Package lvlpath turns a 2D floor-plan layout — obstacle polygons, penalty
// zones, and named endpoint sets at a known geometric scale — into a cost
// grid and answers shortest-path and batch-precomputation queries over it.
//
// 🚀 What is lvlpath?
//
//	A small, focused library that brings together:
//		• Rasterization: polygons → cost grid, with obstacle dilation margins
//		• Shortest paths: 4-connected Dijkstra over weighted cells
//		• Batch precompute: one Dijkstra per named source, fanned out in parallel
//		• Path recovery: predecessor walks back to continuous-space polylines
//		• Unit translation: pixel lengths → meters or feet via a calibration scale
//
// ✨ Why choose lvlpath?
//
//   - Explicit inputs, fresh outputs – no shared mutable layout object;
//     every build returns new, immutable-by-convention structures
//   - Partial failure is a value – unreachable targets and obstacle-seated
//     sources are reported, never raised
//   - Deterministic – identical geometry, penalty and resolution always
//     produce bit-identical grids and maps
//
// Under the hood, everything is organized under five subpackages:
//
//	costgrid/   — Grid type and the polygon rasterizer/dilator that builds it
//	dijkstra/   — single-source engine, distance/predecessor maps, path walks
//	precompute/ — parallel fan-out of the engine across named sources
//	units/      — calibration-unit and display-unit distance conversion
//	planner/    — layout state, staleness tracking, and the query facade
//
// Quick ASCII example:
//
//	    S··█···
//	    ··░█···
//	    ··░█·T·
//
//	S reaches T by paying the ░ staging penalty or rounding the █ wall.
//
// Dive into each package's doc.go for contracts, complexity and errors.
//
//	go get github.com/katalvlaran/lvlpath
package lvlpath
