package geom

import "errors"

// Sentinel errors returned by geom primitives.
var (
	// ErrDimensionMismatch indicates a binary vector operation received
	// points of differing dimension.
	ErrDimensionMismatch = errors.New("geom: point dimensions differ")

	// ErrNegativeRadius indicates a ball was given a negative radius.
	ErrNegativeRadius = errors.New("geom: ball radius must be non-negative")
)

// Point is a coordinate vector in d-dimensional Euclidean space.
// Its length is its dimension; the zero-length Point is the sole point
// of the 0-dimensional space.
type Point []float64

// Ball is the closed ball {x : ‖x − Center‖ ≤ Radius}.
// Radius 0 is allowed and denotes the singleton {Center}.
type Ball struct {
	Center Point   // ball center
	Radius float64 // non-negative radius
}

// Measure is the volume capability consumed by the packing bound.
//
// Implementations must be:
//   - monotone: B1 ⊆ B2 ⇒ Volume(B1) ≤ Volume(B2);
//   - additive: the volume of finitely many disjoint balls is the sum of
//     their volumes;
//   - translation-invariant: Volume depends on Radius and dimension only.
type Measure interface {
	// Volume reports the measure of the closed ball b.
	// Volume of a ball with Radius ≤ 0 is 0.
	Volume(b Ball) float64
}
