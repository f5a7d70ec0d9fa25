package planner

import (
	"context"
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvlpath/costgrid"
	"github.com/katalvlaran/lvlpath/dijkstra"
	"github.com/katalvlaran/lvlpath/precompute"
	"github.com/katalvlaran/lvlpath/units"
)

// Path is one answered query: the continuous-space polyline through cell
// centers, the cells it crosses, and the real-world length in Unit.
type Path struct {
	Points   []orb.Point
	Cells    []costgrid.Cell
	Distance float64
	Unit     units.Unit
}

// Options configures a Planner.
//
// Workers  – worker cap forwarded to precompute.Run (0 = precompute default).
// Dilation – obstacle thickening iterations forwarded to costgrid.Build.
// Progress – precompute progress observer, forwarded as-is.
type Options struct {
	Workers  int
	Dilation int
	Progress precompute.ProgressFunc
}

// Option is a functional option for configuring New.
type Option func(*Options)

// WithWorkers caps concurrent precompute tasks. Panics on values < 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic("planner: worker count must be at least 1")
		}
		o.Workers = n
	}
}

// WithDilation sets obstacle thickening iterations. Panics on negatives.
func WithDilation(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic("planner: dilation iterations must be non-negative")
		}
		o.Dilation = n
	}
}

// WithProgress installs a precompute progress observer.
func WithProgress(fn precompute.ProgressFunc) Option {
	return func(o *Options) {
		o.Progress = fn
	}
}

// Planner caches the grid-and-maps pair derived from one layout revision
// and answers queries against it. The pair is replaced wholesale by Rebuild
// and discarded together; maps from different grid generations never mix.
type Planner struct {
	layout *Layout
	cfg    Options

	grid  *costgrid.Grid
	maps  map[string]dijkstra.Result
	built uint64 // layout revision the pair was derived from
	valid bool
}

// New creates a Planner over the given layout. The planner starts stale;
// call Rebuild before querying.
func New(layout *Layout, opts ...Option) *Planner {
	cfg := Options{Dilation: costgrid.DefaultDilation}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Planner{layout: layout, cfg: cfg}
}

// Valid reports whether the cached pair matches the current layout revision.
func (p *Planner) Valid() bool {
	return p.valid && p.built == p.layout.Revision()
}

// Grid exposes the cached grid, or nil while stale. Read-only by convention.
func (p *Planner) Grid() *costgrid.Grid {
	if !p.Valid() {
		return nil
	}

	return p.grid
}

// Rebuild derives a fresh grid from the layout and precomputes maps for
// every source, replacing the cached pair as one unit.
//
// Grid dimensions follow floor(extent/resolution) over the layout bounds.
// The returned list names sources that failed (obstacle-seated or canceled);
// a non-empty list is a partial, usable outcome. The error is non-nil only
// for fatal construction problems, in which case the planner stays stale.
func (p *Planner) Rebuild(ctx context.Context) ([]string, error) {
	revision := p.layout.Revision()
	b := p.layout.Bounds()
	res := p.layout.Resolution()

	width := int(math.Floor((b.Right() - b.Left()) / res))
	height := int(math.Floor((b.Top() - b.Bottom()) / res))

	grid, err := costgrid.Build(width, height,
		p.layout.Obstacles(),
		p.layout.StagingAreas(),
		costgrid.WithResolution(res),
		costgrid.WithStagingPenalty(p.layout.StagingPenalty()),
		costgrid.WithDilation(p.cfg.Dilation),
	)
	if err != nil {
		p.valid = false

		return nil, fmt.Errorf("planner: rebuild: %w", err)
	}

	runOpts := []precompute.Option{precompute.WithContext(ctx)}
	if p.cfg.Workers > 0 {
		runOpts = append(runOpts, precompute.WithWorkers(p.cfg.Workers))
	}
	if p.cfg.Progress != nil {
		runOpts = append(runOpts, precompute.WithProgress(p.cfg.Progress))
	}
	maps, failed := precompute.Run(grid, p.layout.Sources(), runOpts...)

	// Swap the pair atomically from the caller's point of view: either the
	// old generation or the new one, never a mix.
	p.grid = grid
	p.maps = maps
	p.built = revision
	p.valid = true

	return failed, nil
}

// ShortestPath answers one (source name, target point) query.
//
// ok=false with a nil error means "no path": the target cell is unreachable
// from the source, the reconstruction chain broke, or the distance could
// not be expressed in the display unit. Precondition violations — stale
// pair, unknown source, missing scale — are errors instead.
func (p *Planner) ShortestPath(sourceName string, target orb.Point) (Path, bool, error) {
	if !p.Valid() {
		return Path{}, false, ErrStale
	}
	res, okSource := p.maps[sourceName]
	if !okSource {
		return Path{}, false, ErrUnknownSource
	}
	if !p.layout.HasScale() {
		return Path{}, false, ErrNoScale
	}

	sourcePoint, _ := p.layout.Source(sourceName)
	startCell := p.grid.CellForPoint(sourcePoint)
	targetCell := p.grid.CellForPoint(target)

	if math.IsInf(res.Dist.At(targetCell), 1) {
		return Path{}, false, nil // everyday outcome, not an error
	}
	cells := dijkstra.Reconstruct(res.Prev, startCell, targetCell)
	if cells == nil {
		return Path{}, false, nil
	}

	pixelsPerUnit, calibration := p.layout.Scale()
	distance, okDist := units.PathDistance(cells, p.grid.Resolution, pixelsPerUnit,
		calibration, p.layout.DisplayUnit())
	if !okDist {
		return Path{}, false, nil
	}

	return Path{
		Points:   units.Centers(cells, p.grid.Resolution),
		Cells:    cells,
		Distance: distance,
		Unit:     p.layout.DisplayUnit(),
	}, true, nil
}

// PathBetween answers a query against a named target point.
func (p *Planner) PathBetween(sourceName, targetName string) (Path, bool, error) {
	target, ok := p.layout.Target(targetName)
	if !ok {
		return Path{}, false, ErrUnknownTarget
	}

	return p.ShortestPath(sourceName, target)
}

// Distance is a convenience wrapper around PathBetween that drops the
// geometry.
func (p *Planner) Distance(sourceName, targetName string) (float64, bool, error) {
	path, ok, err := p.PathBetween(sourceName, targetName)
	if err != nil || !ok {
		return 0, ok, err
	}

	return path.Distance, true, nil
}

// Granularity reports the edge length of one grid cell expressed in the
// display unit — the spatial detail of every reported path. ok=false until
// the scale has been calibrated or when the display unit is unsupported.
func (p *Planner) Granularity() (float64, units.Unit, bool) {
	if !p.layout.HasScale() {
		return 0, "", false
	}
	pixelsPerUnit, calibration := p.layout.Scale()
	v, ok := units.Convert(p.layout.Resolution()/pixelsPerUnit, calibration, p.layout.DisplayUnit())
	if !ok {
		return 0, "", false
	}

	return v, p.layout.DisplayUnit(), true
}
