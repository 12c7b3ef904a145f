package geom

import "math"

// Lebesgue is the standard volume on d-dimensional Euclidean space.
// The zero value is ready to use.
//
// vol(B(c, r)) = ω_d · r^d, where ω_d = π^(d/2) / Γ(d/2 + 1) is the unit
// ball volume. The dimension is taken from the ball itself, so a single
// Lebesgue value serves every dimension.
type Lebesgue struct{}

// Volume implements Measure.
//
// Balls of non-positive radius have volume 0; in dimension 0 every ball
// of positive radius has volume 1 (the counting measure of the single
// point of ℝ⁰).
//
// Complexity: O(1).
func (Lebesgue) Volume(b Ball) float64 {
	if b.Radius <= 0 {
		return 0
	}
	d := len(b.Center)
	if d == 0 {
		return 1
	}

	return unitBallVolume(d) * math.Pow(b.Radius, float64(d))
}

// unitBallVolume returns ω_d = π^(d/2) / Γ(d/2 + 1) for d ≥ 1.
func unitBallVolume(d int) float64 {
	half := float64(d) / 2

	return math.Pow(math.Pi, half) / math.Gamma(half+1)
}
