// Package packing - volume-packing bound and separation-slack bisection.
//
// This file implements the one numeric computation of the module:
// turning a Measure capability into the (M, δ, τ) constants.
//
// Design principles:
//   - Deterministic: fixed bisection depth, no randomness, no time.
//   - Strict sentinels: only errors from types.go.
//   - Measure-agnostic: every count is derived from Volume ratios, never
//     from closed-form Lebesgue formulas.
package packing

import (
	"math"
	"sync"

	"github.com/katalvlaran/ballcover/geom"
)

// bisectIters is the fixed bisection depth for the slack search.
// 60 halvings resolve δ to ~8.7e-19, far below any boundary the
// supported dimensions produce.
const bisectIters = 60

// bounds caches SeparationBound results per dimension (Lebesgue only).
// Guarded by boundsMu; custom-measure calls bypass the cache.
var (
	boundsMu sync.Mutex
	bounds   = make(map[int]Bound)
)

// SeparationBound returns the (M, δ, τ) constants for the given ambient
// dimension under the Lebesgue measure. Results are cached, so repeated
// calls with the same dimension return identical values at O(1) cost.
//
// Contracts:
//   - 0 ≤ dim ≤ MaxDimension.
//   - dim == 0 is degenerate: M = 1, δ = 1, τ = 1.25.
//
// Errors: ErrNegativeDimension, ErrDimensionTooLarge.
//
// Complexity: O(bisectIters) volume evaluations on a cache miss; O(1)
// afterwards.
func SeparationBound(dim int) (Bound, error) {
	// Stage 1 - fast path: cached result.
	boundsMu.Lock()
	if b, ok := bounds[dim]; ok {
		boundsMu.Unlock()

		return b, nil
	}
	boundsMu.Unlock()

	// Stage 2 - compute (outside the lock; the computation is pure).
	b, err := SeparationBoundWith(dim, geom.Lebesgue{})
	if err != nil {
		return Bound{}, err
	}

	// Stage 3 - publish. A racing duplicate computes the same value, so
	// last-write-wins is harmless.
	boundsMu.Lock()
	bounds[dim] = b
	boundsMu.Unlock()

	return b, nil
}

// SeparationBoundWith computes the constants for an arbitrary Measure.
// Not cached: the cache is keyed by dimension alone and a caller-supplied
// measure may differ between calls.
//
// Contracts:
//   - 0 ≤ dim ≤ MaxDimension; m non-nil, monotone and additive.
//
// Errors: ErrNegativeDimension, ErrDimensionTooLarge, ErrNilMeasure,
// ErrNoSlack (degenerate custom measures only).
func SeparationBoundWith(dim int, m geom.Measure) (Bound, error) {
	// Stage 1 - input validation.
	if dim < 0 {
		return Bound{}, ErrNegativeDimension
	}
	if dim > MaxDimension {
		return Bound{}, ErrDimensionTooLarge
	}
	if m == nil {
		return Bound{}, ErrNilMeasure
	}

	// Stage 2 - degenerate dimension: ℝ⁰ holds a single point, so one
	// point of norm ≤ 2 is the whole story and any slack works.
	if dim == 0 {
		return Bound{Multiplicity: 1, Delta: 1, Tau: 1.25}, nil
	}

	// Stage 3 - multiplicity by the packing argument at separation 1:
	// the balls B(p_i, 1/2) are disjoint and contained in B(0, 5/2).
	mult := packingCount(dim, m, 1)
	if mult < 1 || mult == math.MaxInt {
		// A monotone measure rates the enclosing ball at least as high
		// as one inner ball and gives positive-radius balls positive
		// finite volume; anything else is a broken Measure.
		return Bound{}, ErrNoSlack
	}

	// Stage 4 - slack by bisection. ok(δ) asserts the same bound M for
	// separation 1−δ; it holds at δ=0 and fails before δ reaches the
	// point where an (M+1)-th ball could fit. The predicate is monotone
	// in δ, so bisection converges to the supremum from below and lo
	// always satisfies it.
	var (
		lo  = 0.0 // largest δ known to satisfy the bound
		hi  = 1.0 // δ=1 means separation 0: never satisfiable for d ≥ 1
		mid float64
	)
	for i := 0; i < bisectIters; i++ {
		mid = (lo + hi) / 2
		if packingCount(dim, m, 1-mid) <= mult {
			lo = mid
		} else {
			hi = mid
		}
	}
	if lo <= 0 {
		return Bound{}, ErrNoSlack
	}

	return Bound{Multiplicity: mult, Delta: lo, Tau: 1 + lo/4}, nil
}

// packingCount bounds the cardinality of a norm ≤ 2 point set pairwise
// separated by ≥ s: the balls B(p_i, s/2) are disjoint and contained in
// B(0, 2+s/2), so the count is at most the floored volume ratio.
//
// Returns math.MaxInt for non-positive s or a vanishing inner volume
// (no finite bound).
func packingCount(dim int, m geom.Measure, s float64) int {
	if s <= 0 {
		return math.MaxInt
	}
	origin := geom.Zero(dim)
	inner := m.Volume(geom.Ball{Center: origin, Radius: s / 2})
	outer := m.Volume(geom.Ball{Center: origin, Radius: 2 + s/2})
	if inner <= 0 || math.IsInf(outer, 1) || math.IsNaN(outer) {
		return math.MaxInt
	}

	ratio := outer / inner

	// Floor with a drift guard: the true ratio at s=1 under Lebesgue is
	// the exact integer 5^d, and math.Pow may land a few ulps under it.
	// The guard stays below 1 for every dim ≤ MaxDimension, so it can
	// never skip an integer.
	count := math.Floor(ratio + 1e-9 + 1e-12*ratio)
	if count > 1<<53 {
		// Past the exactly-representable float64 integers, well above
		// 5^MaxDimension; treat as unbounded.
		return math.MaxInt
	}

	return int(count)
}
