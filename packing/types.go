package packing

import "errors"

// MaxDimension is the largest supported ambient dimension.
//
// The packing counts grow as 5^d; beyond d = 16 the float64 volume ratio
// can no longer separate neighbouring integers with the tolerance used
// here, so larger dimensions are refused instead of silently miscounted.
const MaxDimension = 16

// Sentinel errors returned by the separation-bound solver.
var (
	// ErrNegativeDimension indicates a negative ambient dimension.
	ErrNegativeDimension = errors.New("packing: dimension must be non-negative")

	// ErrDimensionTooLarge indicates dim > MaxDimension.
	ErrDimensionTooLarge = errors.New("packing: dimension exceeds MaxDimension")

	// ErrNilMeasure indicates SeparationBoundWith received a nil Measure.
	ErrNilMeasure = errors.New("packing: measure must be non-nil")

	// ErrNoSlack indicates the supplied measure admitted no positive
	// separation slack. Unreachable for the Lebesgue measure.
	ErrNoSlack = errors.New("packing: no positive separation slack exists")
)

// Bound packages the per-dimension constants of the covering
// construction. Immutable once computed.
type Bound struct {
	// Multiplicity is M: the maximum cardinality of a set of points of
	// norm ≤ 2 that are pairwise separated by ≥ 1. M ≤ 5^d.
	Multiplicity int

	// Delta is δ ∈ (0, 1]: sets pairwise separated by only 1−δ still
	// have cardinality ≤ M.
	Delta float64

	// Tau is the expansion factor τ = 1 + δ/4 > 1 used by the greedy
	// selector's admissibility rule and the color-budget oracle.
	Tau float64
}
