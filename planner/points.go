package planner

import (
	"math"
	"strconv"

	"github.com/paulmach/orb"
)

// PointKind selects which layout point set a generator run feeds.
type PointKind int

const (
	// SourcePoints generates named source points in vertical pairs.
	SourcePoints PointKind = iota
	// TargetPoints generates named target points spaced horizontally.
	TargetPoints
)

// GeneratePointsOnLine places a numbered run of named points along the
// segment p1..p2 and adds them to the layout. Names are cluster + number for
// every number in [startNum, endNum].
//
// Source points come in pairs: both numbers of a pair share one location,
// the pair rungs are spaced evenly along the segment's vertical extent, and
// x is the segment midline. Target points are spaced evenly along the
// horizontal extent at the segment's vertical midline. A single rung or
// point sits at the extent midpoint.
//
// Returns how many points were added and how many were skipped as duplicate
// names. Duplicates do not stop the run.
func GeneratePointsOnLine(l *Layout, kind PointKind, cluster string, startNum, endNum int, p1, p2 orb.Point) (added, skipped int) {
	total := endNum - startNum + 1
	if total < 1 {
		return 0, 0
	}

	switch kind {
	case SourcePoints:
		x := (p1.X() + p2.X()) / 2
		yStart := math.Min(p1.Y(), p2.Y())
		yEnd := math.Max(p1.Y(), p2.Y())

		pairs := (total + 1) / 2
		spacing := 0.0
		if pairs > 1 {
			spacing = (yEnd - yStart) / float64(pairs-1)
		}

		num := startNum
		for i := 0; i < pairs; i++ {
			y := (yStart + yEnd) / 2
			if pairs > 1 {
				y = yStart + float64(i)*spacing
			}
			// Both halves of the pair share the rung location.
			for j := 0; j < 2; j++ {
				if num+j > endNum {
					break
				}
				name := cluster + strconv.Itoa(num+j)
				if l.AddSource(name, orb.Point{x, y}) {
					added++
				} else {
					skipped++
				}
			}
			num += 2
		}

	case TargetPoints:
		y := (p1.Y() + p2.Y()) / 2
		xStart := math.Min(p1.X(), p2.X())
		xEnd := math.Max(p1.X(), p2.X())

		spacing := 0.0
		if total > 1 {
			spacing = (xEnd - xStart) / float64(total-1)
		}

		for i := 0; i < total; i++ {
			x := (xStart + xEnd) / 2
			if total > 1 {
				x = xStart + float64(i)*spacing
			}
			name := cluster + strconv.Itoa(startNum+i)
			if l.AddTarget(name, orb.Point{x, y}) {
				added++
			} else {
				skipped++
			}
		}
	}

	return added, skipped
}
