// Package geom provides the d-dimensional Euclidean primitives the
// covering construction is built on: points, vector arithmetic, closed
// balls, and a measure capability for ball volumes.
//
// What:
//
//   - Point — a []float64 coordinate vector; Add/Sub/Scale/Dot/Norm/Dist.
//   - Ball — a closed ball {x : ‖x − Center‖ ≤ Radius} with Contains and
//     Intersects (closed-ball intersection test).
//   - Measure — an additive, inclusion-monotone volume capability;
//     Lebesgue implements it via vol(B(c,r)) = ω_d · r^d with
//     ω_d = π^(d/2) / Γ(d/2 + 1).
//
// Why:
//
//   - packing compares ball volumes to bound how many well-separated
//     points fit in a bounded region.
//   - cover tests point membership and ball adjacency while selecting
//     and coloring balls.
//
// Complexity: every operation is O(d) except Volume, which is O(1) after
// the O(1) Gamma evaluation.
//
// Errors:
//
//   - ErrDimensionMismatch: a binary operation received points of
//     differing dimension.
//   - ErrNegativeRadius: a ball was constructed with Radius < 0.
//
// All operations are pure and allocation-free except those documented to
// return a fresh Point.
package geom
