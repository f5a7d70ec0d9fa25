// Package units translates pixel-space path lengths into real-world
// distances in a caller-chosen display unit.
//
// What:
//
//   - Convert maps a value between supported distance units (meters ↔ feet)
//     through a fixed conversion table.
//   - PathDistance turns a cell path into continuous space (cell centers),
//     sums the Euclidean polyline length, divides by the calibration scale
//     (pixels per calibration unit), and converts into the display unit.
//
// Why:
//
//   - Grids live in pixel space; a floor plan's scale is calibrated once
//     ("N pixels per meter") and every reported distance passes through it.
//
// Failure modes (values, not errors):
//
//   - Unset or non-positive calibration scale: ok=false.
//   - Unsupported unit pair: ok=false. "Can't convert" is a reportable,
//     everyday outcome, never a panic or an error.
//
// Complexity: Convert O(1); PathDistance O(len(path)).
package units
