// Package cover - input validation shared by Run and Pipe.
//
// Deterministic, side-effect free, sentinel errors only; no logging and
// no panics on user input.
package cover

import (
	"math"

	"github.com/katalvlaran/ballcover/geom"
)

// buildOptions folds functional options into an Options value.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// validateInputs verifies dimension, option values and candidates.
// Oracle resolution is separate (resolveOracle): an empty input returns
// before any bound is derived, so degenerate runs never touch the
// packing computation.
//
// Contract:
//   - dim ≥ 0; every candidate center has dimension dim; every radius is
//     positive, finite, and within the configured ceiling.
//
// Complexity: O(n).
func validateInputs(points []Candidate, dim int, o Options) error {
	// Stage 1 - dimension and option-level sanity.
	if dim < 0 {
		return ErrNegativeDimension
	}
	if o.RadiusBound < 0 || math.IsNaN(o.RadiusBound) || math.IsInf(o.RadiusBound, 1) {
		return ErrBadRadiusBound
	}

	// Stage 2 - candidate scan.
	return validateCandidates(points, dim, o.RadiusBound)
}

// resolveOracle picks the effective oracle: an explicit one (checked
// against dim) wins, else the default is derived under the configured
// measure.
//
// Errors: ErrBadOracle, or packing sentinels forwarded as-is (e.g.
// ErrDimensionTooLarge).
func resolveOracle(dim int, o Options) (Oracle, error) {
	if o.Oracle != nil {
		if err := o.Oracle.validate(dim); err != nil {
			return Oracle{}, err
		}

		return *o.Oracle, nil
	}
	m := o.Measure
	if m == nil {
		m = geom.Lebesgue{}
	}

	return DefaultOracle(dim, m)
}

// validateCandidates enforces per-candidate shape and radius contracts.
//
// Complexity: O(n).
func validateCandidates(points []Candidate, dim int, bound float64) error {
	for i := range points {
		if points[i].Center.Dim() != dim {
			return ErrDimensionMismatch
		}
		r := points[i].Radius
		if !(r > 0) || math.IsInf(r, 1) || math.IsNaN(r) {
			return ErrBadRadius
		}
		if bound > 0 && r > bound {
			return ErrRadiusAboveBound
		}
	}

	return nil
}
