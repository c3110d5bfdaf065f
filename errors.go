package linestring

import "errors"

// Each geometrically meaningless parameter value is reported as a distinct
// sentinel error, wrapped together with the offending value. Use
// [errors.Is] to tell them apart.
var (
	// ErrSpacing is returned when a resampling spacing is not a positive
	// number.
	ErrSpacing = errors.New("spacing must be positive")
	// ErrEpsilon is returned when an RDP tolerance is negative or NaN.
	ErrEpsilon = errors.New("epsilon must be non-negative")
	// ErrAreaTolerance is returned when a VW area tolerance is NaN.
	ErrAreaTolerance = errors.New("area tolerance must be a number")
	// ErrTargetCount is returned when a target point count is too small to
	// retain both endpoints.
	ErrTargetCount = errors.New("target count must be at least 2")
	// ErrRadius is returned when a kernel's neighborhood radius is smaller
	// than one point.
	ErrRadius = errors.New("kernel radius must be at least 1")
	// ErrStdDev is returned when a Gaussian standard deviation is not a
	// positive number.
	ErrStdDev = errors.New("standard deviation must be positive")
)
