package planner

import "errors"

var (
	// ErrStale indicates the cached grid-and-maps pair no longer matches the
	// layout; call Rebuild before querying.
	ErrStale = errors.New("planner: layout changed since last rebuild")
	// ErrNoScale indicates the layout has no pixels-per-unit calibration yet.
	ErrNoScale = errors.New("planner: scale has not been calibrated")
	// ErrUnknownSource indicates no precomputed maps exist for the source name.
	ErrUnknownSource = errors.New("planner: unknown source point")
	// ErrUnknownTarget indicates the target name is not part of the layout.
	ErrUnknownTarget = errors.New("planner: unknown target point")
)
