// Package cover implements the greedy Besicovitch covering construction:
// select closed balls around input points until every point is covered,
// then color the selection so that same-colored balls never overlap.
//
// What:
//
//   - Run — batch entry point: validate → derive (M, δ, τ) via packing →
//     greedy τ-admissible selection → first-fit coloring.
//   - Pipe — the same construction as a single-producer/single-consumer
//     stream: balls arrive on a channel as they are selected and colored.
//   - Oracle — the trusted color budget N and expansion factor τ for a
//     dimension; DefaultOracle derives N = M(d) from packing.
//   - SatelliteConfig — an offline witness checker for the adjacency
//     constraints whose unsatisfiability underwrites the color budget.
//
// How selection works:
//
//	While an uncovered point remains, pick the lowest-index uncovered
//	point whose candidate radius r satisfies sup ≤ τ·r, where sup is the
//	largest candidate radius among the still-uncovered points, and add
//	its closed ball to the covering. Accepting any radius within factor
//	τ of the supremum (not only the argmax) is what makes the coloring
//	bound work; do not tighten it.
//
// How coloring works:
//
//	Balls are colored in selection order. Each ball takes the smallest
//	color not used by any earlier ball whose closed ball intersects its
//	own. The packing bound guarantees fewer than N = M(d) earlier
//	intersecting balls can block, because N+1 mutually τ-related balls
//	would form a satellite configuration, which does not exist.
//
// Complexity (n candidates, dimension d, budget N):
//
//   - selection: O(n²·d) — each step rescans candidates for coverage
//     and the eligible supremum.
//   - coloring:  O(k²·d + k·N) for k selected balls (k ≤ n).
//
// Errors:
//
//   - ErrNegativeDimension:    dim < 0.
//   - ErrDimensionMismatch:    a candidate center has the wrong dimension.
//   - ErrBadRadius:            a candidate radius is not positive and finite.
//   - ErrBadRadiusBound:       the configured radius ceiling is invalid.
//   - ErrRadiusAboveBound:     a candidate radius exceeds the ceiling.
//   - ErrBadOracle:            a supplied Oracle is inconsistent.
//   - ErrSelectionStalled:     internal invariant violation in selection.
//   - ErrColorBudgetExceeded:  the oracle's N was too small — fatal
//     configuration error, never retried.
//
// Determinism: no randomness, no time; the lowest-index tie-break makes
// output reproducible for identical input.
package cover
