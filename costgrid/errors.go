package costgrid

import "errors"

var (
	// ErrInvalidDimensions indicates width or height is not a positive integer.
	ErrInvalidDimensions = errors.New("costgrid: grid dimensions must be positive")
)
