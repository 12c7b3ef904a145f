package cover

import (
	"errors"

	"github.com/katalvlaran/ballcover/geom"
)

// Sentinel errors returned by the covering construction.
var (
	// ErrNegativeDimension indicates a negative ambient dimension.
	ErrNegativeDimension = errors.New("cover: dimension must be non-negative")

	// ErrDimensionMismatch indicates a candidate center whose dimension
	// differs from the declared ambient dimension.
	ErrDimensionMismatch = errors.New("cover: candidate dimension mismatch")

	// ErrBadRadius indicates a candidate radius that is not positive and
	// finite.
	ErrBadRadius = errors.New("cover: candidate radius must be positive and finite")

	// ErrBadRadiusBound indicates a radius ceiling that is negative, NaN
	// or infinite.
	ErrBadRadiusBound = errors.New("cover: radius bound must be non-negative and finite")

	// ErrRadiusAboveBound indicates a candidate radius above the
	// configured ceiling.
	ErrRadiusAboveBound = errors.New("cover: candidate radius exceeds radius bound")

	// ErrBadOracle indicates a supplied Oracle with a negative color
	// budget, an expansion factor ≤ 1, or the wrong dimension.
	ErrBadOracle = errors.New("cover: inconsistent oracle")

	// ErrSelectionStalled indicates the greedy loop could not find an
	// admissible candidate while uncovered points remain, or exceeded
	// its step bound. This is an internal invariant violation, not a
	// recoverable runtime condition.
	ErrSelectionStalled = errors.New("cover: selection stalled with uncovered points remaining")

	// ErrColorBudgetExceeded indicates the oracle's color budget N was
	// insufficient for this dimension/τ. A configuration error: the
	// construction is deterministic, so retrying cannot help.
	ErrColorBudgetExceeded = errors.New("cover: color budget exceeded")

	// ErrNotSatellite indicates a SatelliteConfig witness that fails the
	// pairwise adjacency constraints.
	ErrNotSatellite = errors.New("cover: not a satellite configuration")
)

// Candidate is one input (point, radius) pair.
type Candidate struct {
	Center geom.Point // point to be covered
	Radius float64    // candidate ball radius, > 0
}

// Ball is one selected, colored ball of the output sequence.
type Ball struct {
	Center geom.Point // selected ball center
	Radius float64    // selected ball radius
	Color  int        // color class in [0, N)
}

// Geom returns the underlying closed ball without its color.
func (b Ball) Geom() geom.Ball {
	return geom.Ball{Center: b.Center, Radius: b.Radius}
}
