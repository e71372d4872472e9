package rectpack

import "errors"

// Sentinel errors for the structural failure kinds enumerated in spec.md 7.
// Geometric failure (an item that cannot be placed) is never reported as
// an error — it is communicated by a false/nil return, never by these.
var (
	// ErrInvalidDimension is returned when an item or bin width/height is
	// not strictly positive.
	ErrInvalidDimension = errors.New("rectpack: width and height must be greater than zero")
	// ErrUnknownPolicy is returned when an unrecognized algorithm, fitness
	// policy, guillotine split, or sort_algo value is requested. There is
	// no bin_algo setting: bin selection is always Bin First Fit.
	ErrUnknownPolicy = errors.New("rectpack: unknown policy")
	// ErrOutOfRange is returned by indexed access beyond the current bin
	// count.
	ErrOutOfRange = errors.New("rectpack: index out of range")
	// ErrInvariantViolation is returned by Validate when a packed bin
	// violates I1 or I2. It indicates a defect in the engine, never a
	// user error.
	ErrInvariantViolation = errors.New("rectpack: invariant violation")
)
