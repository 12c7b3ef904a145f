package cover

import (
	"math"

	"github.com/katalvlaran/ballcover/geom"
	"github.com/katalvlaran/ballcover/packing"
)

// Oracle carries the trusted per-dimension covering constants: the color
// budget N and the expansion factor τ. Its contract is the offline
// theorem "no satellite configuration of N+1 balls exists for τ" — the
// construction consumes that guarantee, it never re-derives or
// brute-force-checks it at run time (the search space is infinite).
//
// DefaultOracle discharges the obligation by reusing the packing bound:
// N = M(d) suffices. A caller supplying its own Oracle carries the
// obligation itself.
type Oracle struct {
	Dimension int     // ambient dimension the constants were proven for
	Colors    int     // N: number of available color classes
	Tau       float64 // expansion factor τ > 1
}

// DefaultOracle derives the oracle for dim from the separation bound:
// Colors = M(dim), Tau = 1 + δ(dim)/4.
//
// Errors: those of packing.SeparationBoundWith, forwarded as-is.
func DefaultOracle(dim int, m geom.Measure) (Oracle, error) {
	b, err := packing.SeparationBoundWith(dim, m)
	if err != nil {
		return Oracle{}, err
	}

	return Oracle{Dimension: dim, Colors: b.Multiplicity, Tau: b.Tau}, nil
}

// validate checks the oracle against the run's ambient dimension.
// Colors == 0 is admitted deliberately: it is a legal (if useless)
// budget that surfaces as ErrColorBudgetExceeded on the first ball.
func (o Oracle) validate(dim int) error {
	if o.Dimension != dim || o.Colors < 0 {
		return ErrBadOracle
	}
	if !(o.Tau > 1) || math.IsInf(o.Tau, 1) || math.IsNaN(o.Tau) {
		return ErrBadOracle
	}

	return nil
}

// SatelliteConfig is a claimed witness of N+1 mutually τ-related balls:
// Centers[i] with radius Radii[i], the last entry playing the "ball that
// touches all others" role. Checking a witness is cheap and is how
// offline artifacts for custom oracles are verified; the package never
// searches for one.
type SatelliteConfig struct {
	Centers []geom.Point // N+1 ball centers
	Radii   []float64    // N+1 positive radii
}

// Check verifies the satellite constraints under tau:
//
//  1. for every pair i ≠ j, one of the two orientations holds:
//     r_i ≤ dist(c_i, c_j) and r_j ≤ τ·r_i, or the symmetric statement;
//  2. the last ball L additionally satisfies, for every i < L:
//     r_i ≤ dist(c_i, c_L), r_L ≤ τ·r_i, and dist(c_i, c_L) ≤ r_i + r_L.
//
// Returns nil iff the witness is a genuine satellite configuration.
//
// Errors: ErrNotSatellite on any violated constraint (including
// malformed shapes); geom.ErrDimensionMismatch on ragged centers.
//
// Complexity: O(k²·d) for k balls.
func (sc SatelliteConfig) Check(tau float64) error {
	k := len(sc.Centers)
	if k < 2 || len(sc.Radii) != k {
		return ErrNotSatellite
	}
	for _, r := range sc.Radii {
		if !(r > 0) || math.IsInf(r, 1) {
			return ErrNotSatellite
		}
	}

	last := k - 1
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			d, err := geom.Dist(sc.Centers[i], sc.Centers[j])
			if err != nil {
				return err
			}
			ri, rj := sc.Radii[i], sc.Radii[j]

			// Pairwise τ-ratio adjacency, either orientation.
			fwd := ri <= d && rj <= tau*ri
			rev := rj <= d && ri <= tau*rj
			if !fwd && !rev {
				return ErrNotSatellite
			}

			// The last ball must relate to every earlier one in the
			// fixed orientation and actually touch it.
			if j == last {
				if !(ri <= d && rj <= tau*ri && d <= ri+rj) {
					return ErrNotSatellite
				}
			}
		}
	}

	return nil
}
