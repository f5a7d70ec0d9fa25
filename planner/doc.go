// Package planner ties the lvlpath pipeline together: it owns one layout's
// editable state, tracks when the derived grid-and-maps pair goes stale, and
// answers (source, target) queries in real-world units.
//
// What:
//
//   - Layout holds the editable inputs: floor-plan bounds, obstacle and
//     staging polygons, named source points ("pick aisles") and target
//     points ("staging locations"), the calibration scale, the display
//     unit, the grid resolution and the staging penalty.
//   - Planner caches a costgrid.Grid plus the per-source precompute results
//     built from one specific layout revision. Any layout edit makes the
//     cached pair stale; only a fresh Rebuild returns it to valid. There is
//     no partially valid state and stale data is never queried.
//   - ShortestPath resolves a named source and a continuous-space target
//     into a center-point polyline and a distance in the display unit.
//   - PointIndex offers nearest-point and region lookups over a named point
//     set, backed by an R-tree.
//
// Why:
//
//   - The pipeline packages (costgrid, dijkstra, precompute, units) are
//     pure: explicit inputs, fresh outputs. Something has to own the
//     caching, invalidation and unit plumbing on behalf of an interactive
//     caller; that something is this package, not the core.
//
// State machine:
//
//	edit layout ──────────────▶ stale
//	Rebuild (build+precompute) ▶ valid
//
//	ShortestPath and friends refuse to run while stale (ErrStale).
//
// Errors:
//
//   - ErrStale:         the grid-and-maps pair is out of date; Rebuild first.
//   - ErrNoScale:       distance was requested before scale calibration.
//   - ErrUnknownSource: the source name has no precomputed maps.
//   - ErrUnknownTarget: the target name is not in the layout.
//
// Unreachable targets and unsupported unit pairs are ordinary ok=false
// outcomes, not errors.
package planner
