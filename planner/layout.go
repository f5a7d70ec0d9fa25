package planner

import (
	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvlpath/costgrid"
	"github.com/katalvlaran/lvlpath/units"
)

// Layout is one floor plan's editable input state. Every mutator bumps the
// revision counter, which is how a Planner detects that its cached grid and
// maps went stale. Layout itself derives nothing; it only records.
//
// A Layout is not safe for concurrent mutation; interactive callers edit it
// from a single goroutine and hand read-only snapshots to Rebuild.
type Layout struct {
	bounds orb.Bound

	resolution float64
	penalty    float64

	pixelsPerUnit float64
	calibration   units.Unit
	display       units.Unit

	obstacles []orb.Ring
	staging   []orb.Ring
	sources   map[string]orb.Point
	targets   map[string]orb.Point

	revision uint64
}

// NewLayout creates an empty layout covering the given continuous-space
// bounds, with resolution 1, the default staging penalty, and meters as the
// display unit.
func NewLayout(bounds orb.Bound) *Layout {
	return &Layout{
		bounds:     bounds,
		resolution: costgrid.DefaultResolution,
		penalty:    costgrid.DefaultStagingPenalty,
		display:    units.Meters,
		sources:    make(map[string]orb.Point),
		targets:    make(map[string]orb.Point),
	}
}

// Revision returns the current edit counter. Two equal revisions imply an
// identical layout state.
func (l *Layout) Revision() uint64 { return l.revision }

// touch records one mutation.
func (l *Layout) touch() { l.revision++ }

// --- scale and parameters ---

// SetScale calibrates the pixel scale: how many continuous-space pixels one
// calibration unit covers. Invalidates derived data.
func (l *Layout) SetScale(pixelsPerUnit float64, calibration units.Unit) {
	if l.pixelsPerUnit == pixelsPerUnit && l.calibration == calibration {
		return
	}
	l.pixelsPerUnit = pixelsPerUnit
	l.calibration = calibration
	l.touch()
}

// HasScale reports whether the layout has been calibrated.
func (l *Layout) HasScale() bool { return l.pixelsPerUnit > 0 }

// Scale returns the calibration: pixels per unit and the unit it was set in.
func (l *Layout) Scale() (float64, units.Unit) { return l.pixelsPerUnit, l.calibration }

// SetDisplayUnit chooses the unit for reported distances. The display unit
// affects only reporting, never the grid, so it does not invalidate.
func (l *Layout) SetDisplayUnit(u units.Unit) { l.display = u }

// DisplayUnit returns the unit used for reported distances.
func (l *Layout) DisplayUnit() units.Unit { return l.display }

// SetResolution sets the continuous-space distance per grid cell edge.
// Invalidates derived data.
func (l *Layout) SetResolution(f float64) {
	if l.resolution == f {
		return
	}
	l.resolution = f
	l.touch()
}

// Resolution returns the continuous-space distance per grid cell edge.
func (l *Layout) Resolution() float64 { return l.resolution }

// SetStagingPenalty sets the extra cost for staging cells. Invalidates
// derived data.
func (l *Layout) SetStagingPenalty(p float64) {
	if l.penalty == p {
		return
	}
	l.penalty = p
	l.touch()
}

// StagingPenalty returns the extra cost for staging cells.
func (l *Layout) StagingPenalty() float64 { return l.penalty }

// SetBounds replaces the floor-plan bounds. Invalidates derived data.
func (l *Layout) SetBounds(b orb.Bound) {
	l.bounds = b
	l.touch()
}

// Bounds returns the floor-plan bounds.
func (l *Layout) Bounds() orb.Bound { return l.bounds }

// --- polygons ---

// AddObstacle appends an impassable polygon. Invalidates derived data.
func (l *Layout) AddObstacle(ring orb.Ring) {
	l.obstacles = append(l.obstacles, ring.Clone())
	l.touch()
}

// AddStagingArea appends a penalty polygon. Invalidates derived data.
func (l *Layout) AddStagingArea(ring orb.Ring) {
	l.staging = append(l.staging, ring.Clone())
	l.touch()
}

// RemoveObstacle deletes the obstacle at index i; out-of-range indices are
// ignored. Invalidates derived data on success.
func (l *Layout) RemoveObstacle(i int) {
	if i < 0 || i >= len(l.obstacles) {
		return
	}
	l.obstacles = append(l.obstacles[:i], l.obstacles[i+1:]...)
	l.touch()
}

// RemoveStagingArea deletes the staging polygon at index i; out-of-range
// indices are ignored. Invalidates derived data on success.
func (l *Layout) RemoveStagingArea(i int) {
	if i < 0 || i >= len(l.staging) {
		return
	}
	l.staging = append(l.staging[:i], l.staging[i+1:]...)
	l.touch()
}

// Obstacles returns a deep copy of the obstacle polygons.
func (l *Layout) Obstacles() []orb.Ring { return cloneRings(l.obstacles) }

// StagingAreas returns a deep copy of the staging polygons.
func (l *Layout) StagingAreas() []orb.Ring { return cloneRings(l.staging) }

// --- named points ---

// AddSource registers a named source point ("pick aisle"). Duplicate names
// are rejected and leave the layout untouched. Invalidates derived data on
// success.
func (l *Layout) AddSource(name string, p orb.Point) bool {
	if _, exists := l.sources[name]; exists {
		return false
	}
	l.sources[name] = p
	l.touch()

	return true
}

// RemoveSource drops a named source point. Invalidates derived data when
// the name existed.
func (l *Layout) RemoveSource(name string) bool {
	if _, exists := l.sources[name]; !exists {
		return false
	}
	delete(l.sources, name)
	l.touch()

	return true
}

// AddTarget registers a named target point ("staging location"). Duplicate
// names are rejected. Targets do not feed precomputation, but edits still
// invalidate so a cached pair always reflects one coherent layout revision.
func (l *Layout) AddTarget(name string, p orb.Point) bool {
	if _, exists := l.targets[name]; exists {
		return false
	}
	l.targets[name] = p
	l.touch()

	return true
}

// RemoveTarget drops a named target point.
func (l *Layout) RemoveTarget(name string) bool {
	if _, exists := l.targets[name]; !exists {
		return false
	}
	delete(l.targets, name)
	l.touch()

	return true
}

// Sources returns a copy of the named source point set.
func (l *Layout) Sources() map[string]orb.Point { return clonePoints(l.sources) }

// Targets returns a copy of the named target point set.
func (l *Layout) Targets() map[string]orb.Point { return clonePoints(l.targets) }

// Target looks up one named target point.
func (l *Layout) Target(name string) (orb.Point, bool) {
	p, ok := l.targets[name]

	return p, ok
}

// Source looks up one named source point.
func (l *Layout) Source(name string) (orb.Point, bool) {
	p, ok := l.sources[name]

	return p, ok
}

func cloneRings(in []orb.Ring) []orb.Ring {
	if in == nil {
		return nil
	}
	out := make([]orb.Ring, len(in))
	for i, r := range in {
		out[i] = r.Clone()
	}

	return out
}

func clonePoints(in map[string]orb.Point) map[string]orb.Point {
	out := make(map[string]orb.Point, len(in))
	for name, p := range in {
		out[name] = p
	}

	return out
}
