// Package packing derives the two constants the covering construction
// runs on: the multiplicity M of the ambient space and the separation
// slack δ (with its expansion factor τ = 1 + δ/4).
//
// What:
//
//   - Multiplicity M — an upper bound on how many points of norm ≤ 2 can
//     be pairwise separated by ≥ 1. Derived by the volume-packing
//     argument: the open balls of radius 1/2 around such points are
//     disjoint and all fit inside the ball of radius 5/2, so
//     M = ⌊vol B(0, 5/2) / vol B(0, 1/2)⌋ (= 5^d under Lebesgue).
//   - Slack δ ∈ (0, 1] — the same cardinality bound M still holds for
//     point sets pairwise separated by only 1−δ. Found by bisection on
//     the volume bound with the relaxed separation; deterministic, fixed
//     iteration count.
//   - Expansion factor τ = 1 + δ/4 — consumed by cover's greedy selector
//     and color-budget oracle.
//
// Why:
//
//	M bounds the number of colors the covering needs; δ turns the exact
//	packing bound into a robust one with room for the greedy selector's
//	τ-approximate choices.
//
// Complexity: O(bisectIters) volume evaluations per dimension; results
// for the default Lebesgue measure are cached, so repeated calls are O(1).
//
// Errors:
//
//   - ErrNegativeDimension: dim < 0.
//   - ErrDimensionTooLarge: dim > MaxDimension; past that point float64
//     cannot resolve the integer packing counts reliably.
//   - ErrNilMeasure: SeparationBoundWith received a nil measure.
//   - ErrNoSlack: a (custom) measure admitted no positive slack.
//
// Example:
//
//	b, err := packing.SeparationBound(2)
//	if err != nil { … }
//	fmt.Println(b.Multiplicity, b.Delta, b.Tau) // 25, ~0.024, ~1.006
package packing
