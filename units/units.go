package units

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/lvlpath/costgrid"
)

// Unit names a real-world distance unit. The zero value means "no unit";
// conversions treat it as identity, matching layouts calibrated before a
// display unit was ever chosen.
type Unit string

// Supported units.
const (
	Meters Unit = "meters"
	Feet   Unit = "feet"
)

// metersToFeet is the fixed conversion factor of the unit table.
const metersToFeet = 3.28084

// Convert translates v from one unit to another.
//
// Equal units — and conversions where either side is unset — pass v through
// unchanged. Anything outside the conversion table reports ok=false so the
// caller can surface "can't convert" instead of a wrong number.
func Convert(v float64, from, to Unit) (float64, bool) {
	if from == to || from == "" || to == "" {
		return v, true
	}
	switch {
	case from == Meters && to == Feet:
		return v * metersToFeet, true
	case from == Feet && to == Meters:
		return v / metersToFeet, true
	default:
		return 0, false
	}
}

// PathDistance reports the real-world length of a cell path.
//
// Each cell maps to its continuous-space center
// (col×resolution + resolution/2, row×resolution + resolution/2); the
// Euclidean polyline length over those centers is divided by pixelsPerUnit
// (the calibration scale) and converted from the calibration unit into the
// display unit.
//
// ok=false when the path is empty, the scale is unset (≤ 0), or the unit
// pair is unsupported. A single-cell path has length zero.
func PathDistance(path []costgrid.Cell, resolution, pixelsPerUnit float64, from, to Unit) (float64, bool) {
	if len(path) == 0 || pixelsPerUnit <= 0 {
		return 0, false
	}

	pixels := 0.0
	prev := centerOf(path[0], resolution)
	for _, cell := range path[1:] {
		center := centerOf(cell, resolution)
		pixels += planar.Distance(prev, center)
		prev = center
	}

	return Convert(pixels/pixelsPerUnit, from, to)
}

// Centers maps every cell of a path to its continuous-space center point,
// the polyline callers draw and animate along.
func Centers(path []costgrid.Cell, resolution float64) []orb.Point {
	if len(path) == 0 {
		return nil
	}
	points := make([]orb.Point, len(path))
	for i, cell := range path {
		points[i] = centerOf(cell, resolution)
	}

	return points
}

// centerOf maps a cell to its continuous-space center point.
func centerOf(cell costgrid.Cell, resolution float64) orb.Point {
	half := resolution / 2

	return orb.Point{
		float64(cell.Col)*resolution + half,
		float64(cell.Row)*resolution + half,
	}
}
