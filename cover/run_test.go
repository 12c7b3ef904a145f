package cover_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ballcover/cover"
	"github.com/katalvlaran/ballcover/geom"
	"github.com/katalvlaran/ballcover/packing"
	"github.com/stretchr/testify/require"
)

// unitCandidates wraps 1-D coordinates into Candidates of radius 1.
func unitCandidates(xs ...float64) []cover.Candidate {
	out := make([]cover.Candidate, len(xs))
	for i, x := range xs {
		out[i] = cover.Candidate{Center: geom.Point{x}, Radius: 1}
	}

	return out
}

// requireCovered asserts every candidate center lies in some ball.
func requireCovered(t *testing.T, points []cover.Candidate, balls []cover.Ball) {
	t.Helper()
	for _, p := range points {
		found := false
		for _, b := range balls {
			in, err := b.Geom().Contains(p.Center)
			require.NoError(t, err)
			if in {
				found = true

				break
			}
		}
		require.True(t, found, "point %v is uncovered", p.Center)
	}
}

// requireColorClassesDisjoint asserts same-colored balls never intersect.
func requireColorClassesDisjoint(t *testing.T, balls []cover.Ball) {
	t.Helper()
	for i := 0; i < len(balls); i++ {
		for j := i + 1; j < len(balls); j++ {
			if balls[i].Color != balls[j].Color {
				continue
			}
			hit, err := balls[i].Geom().Intersects(balls[j].Geom())
			require.NoError(t, err)
			require.False(t, hit, "balls %d and %d share color %d but intersect", i, j, balls[i].Color)
		}
	}
}

// TestRun_Line1D pins the canonical 1-D scenario: four points with unit
// radii; the overlapping neighbors get distinct colors and the far pair
// reuses a color.
func TestRun_Line1D(t *testing.T) {
	points := unitCandidates(0, 0.6, 1.3, 3.0)

	balls, err := cover.Run(points, 1)
	require.NoError(t, err)

	// The greedy pass selects 0, then 1.3 (0.6 is swallowed), then 3.0.
	require.Len(t, balls, 3)
	require.Equal(t, geom.Point{0}, balls[0].Center)
	require.Equal(t, geom.Point{1.3}, balls[1].Center)
	require.Equal(t, geom.Point{3.0}, balls[2].Center)

	// Overlapping balls 0 and 1 differ; disjoint 0 and 2 share.
	require.NotEqual(t, balls[0].Color, balls[1].Color)
	require.Equal(t, balls[0].Color, balls[2].Color)

	requireCovered(t, points, balls)
	requireColorClassesDisjoint(t, balls)

	// Color budget for ℝ¹ is M(1) = 5.
	for _, b := range balls {
		require.Less(t, b.Color, 5)
	}
}

// TestRun_Empty returns an empty non-nil result with no error.
func TestRun_Empty(t *testing.T) {
	balls, err := cover.Run(nil, 3)
	require.NoError(t, err)
	require.NotNil(t, balls)
	require.Empty(t, balls)

	// Empty input short-circuits before the packing bound is derived,
	// so even an unsupported dimension stays error-free.
	balls, err = cover.Run(nil, packing.MaxDimension+1)
	require.NoError(t, err)
	require.Empty(t, balls)
}

// TestRun_Properties2D checks the published invariants on a 2-D grid
// with mixed radii: full coverage, colors below budget, same-color
// disjointness, and deterministic reproducibility.
func TestRun_Properties2D(t *testing.T) {
	var points []cover.Candidate
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			points = append(points, cover.Candidate{
				Center: geom.Point{float64(i) * 0.9, float64(j) * 0.9},
				Radius: 0.5 + 0.1*float64((i+j)%4),
			})
		}
	}

	balls, err := cover.Run(points, 2)
	require.NoError(t, err)
	require.NotEmpty(t, balls)

	requireCovered(t, points, balls)
	requireColorClassesDisjoint(t, balls)

	bound, err := packing.SeparationBound(2)
	require.NoError(t, err)
	for _, b := range balls {
		require.Less(t, b.Color, bound.Multiplicity)
	}

	// Determinism: identical input, identical output.
	again, err := cover.Run(points, 2)
	require.NoError(t, err)
	require.Equal(t, balls, again)
}

// TestRun_BadInput covers the validation sentinels.
func TestRun_BadInput(t *testing.T) {
	// Negative dimension.
	_, err := cover.Run(unitCandidates(0), -1)
	require.ErrorIs(t, err, cover.ErrNegativeDimension)

	// Candidate dimension differs from the declared one.
	_, err = cover.Run(unitCandidates(0), 2)
	require.ErrorIs(t, err, cover.ErrDimensionMismatch)

	// Non-positive and non-finite radii.
	for _, r := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = cover.Run([]cover.Candidate{{Center: geom.Point{0}, Radius: r}}, 1)
		require.ErrorIs(t, err, cover.ErrBadRadius, "radius=%v", r)
	}

	// Packing sentinels are forwarded when deriving the default oracle.
	big := make(geom.Point, packing.MaxDimension+1)
	_, err = cover.Run([]cover.Candidate{{Center: big, Radius: 1}}, packing.MaxDimension+1)
	require.ErrorIs(t, err, packing.ErrDimensionTooLarge)
}

// TestRun_RadiusBound exercises the optional candidate-radius ceiling.
func TestRun_RadiusBound(t *testing.T) {
	points := unitCandidates(0, 5)

	// Ceiling above every radius: accepted.
	balls, err := cover.Run(points, 1, cover.WithRadiusBound(1))
	require.NoError(t, err)
	require.Len(t, balls, 2)

	// Ceiling below a radius: rejected.
	_, err = cover.Run(points, 1, cover.WithRadiusBound(0.5))
	require.ErrorIs(t, err, cover.ErrRadiusAboveBound)

	// Invalid ceiling value.
	_, err = cover.Run(points, 1, cover.WithRadiusBound(-1))
	require.ErrorIs(t, err, cover.ErrBadRadiusBound)
}

// TestRun_InconsistentOracle forces a zero color budget: the first ball
// to need a color must surface ErrColorBudgetExceeded.
func TestRun_InconsistentOracle(t *testing.T) {
	points := unitCandidates(0, 0.6)

	_, err := cover.Run(points, 1, cover.WithOracle(cover.Oracle{
		Dimension: 1,
		Colors:    0,
		Tau:       1.05,
	}))
	require.ErrorIs(t, err, cover.ErrColorBudgetExceeded)
}

// TestRun_BadOracle rejects malformed oracles outright.
func TestRun_BadOracle(t *testing.T) {
	points := unitCandidates(0)

	// Wrong dimension, negative budget, τ not above 1, non-finite τ.
	cases := []cover.Oracle{
		{Dimension: 2, Colors: 5, Tau: 1.05},
		{Dimension: 1, Colors: -1, Tau: 1.05},
		{Dimension: 1, Colors: 5, Tau: 1},
		{Dimension: 1, Colors: 5, Tau: math.NaN()},
	}
	for i, o := range cases {
		_, err := cover.Run(points, 1, cover.WithOracle(o))
		require.ErrorIs(t, err, cover.ErrBadOracle, "case %d", i)
	}
}

// TestRun_CustomOracleSucceeds accepts a caller-supplied consistent
// oracle and still meets every invariant.
func TestRun_CustomOracleSucceeds(t *testing.T) {
	points := unitCandidates(0, 0.6, 1.3, 3.0)

	balls, err := cover.Run(points, 1, cover.WithOracle(cover.Oracle{
		Dimension: 1,
		Colors:    5,
		Tau:       1.05,
	}))
	require.NoError(t, err)
	requireCovered(t, points, balls)
	requireColorClassesDisjoint(t, balls)
}
