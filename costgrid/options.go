package costgrid

// Options configures how Build rasterizes a layout into a grid.
//
// Resolution     – continuous-space distance per cell edge. Must be > 0.
// StagingPenalty – additional cost applied to cells inside staging polygons.
//
//	Must be ≥ 0. Overlapping staging polygons do not stack.
//
// Dilation       – iterations of 8-connected obstacle thickening. Must be ≥ 0.
type Options struct {
	Resolution     float64
	StagingPenalty float64
	Dilation       int
}

// Option is a functional option for configuring Build.
type Option func(*Options)

// WithResolution sets the continuous-space distance per cell edge.
// Panics on non-positive values: a zero resolution would map every point to
// cell (0,0) and divide by zero in CellForPoint.
func WithResolution(f float64) Option {
	return func(o *Options) {
		if f <= 0 {
			panic("costgrid: resolution must be positive")
		}
		o.Resolution = f
	}
}

// WithStagingPenalty sets the extra cost for cells inside staging polygons.
// Panics on negative values; grid costs are never negative.
func WithStagingPenalty(p float64) Option {
	return func(o *Options) {
		if p < 0 {
			panic("costgrid: staging penalty must be non-negative")
		}
		o.StagingPenalty = p
	}
}

// WithDilation sets the number of obstacle thickening iterations.
// Zero disables dilation entirely. Panics on negative values.
func WithDilation(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic("costgrid: dilation iterations must be non-negative")
		}
		o.Dilation = n
	}
}

// DefaultOptions returns the Options used when no functional options are
// passed: Resolution=1.0, StagingPenalty=10.0, Dilation=2.
func DefaultOptions() Options {
	return Options{
		Resolution:     DefaultResolution,
		StagingPenalty: DefaultStagingPenalty,
		Dilation:       DefaultDilation,
	}
}
