package geom

// NewBall validates and constructs a closed ball.
//
// Errors: ErrNegativeRadius if r < 0.
func NewBall(center Point, r float64) (Ball, error) {
	if r < 0 {
		return Ball{}, ErrNegativeRadius
	}

	return Ball{Center: center, Radius: r}, nil
}

// Dim reports the dimension of the space the ball lives in.
func (b Ball) Dim() int { return len(b.Center) }

// Contains reports whether p lies in the closed ball b.
//
// Errors: ErrDimensionMismatch if p and b.Center differ in dimension.
//
// Complexity: O(d).
func (b Ball) Contains(p Point) (bool, error) {
	d, err := Dist(b.Center, p)
	if err != nil {
		return false, err
	}

	return d <= b.Radius, nil
}

// Intersects reports whether the closed balls b and o share a point,
// i.e. ‖c_b − c_o‖ ≤ r_b + r_o. Tangent balls intersect.
//
// Errors: ErrDimensionMismatch if the centers differ in dimension.
//
// Complexity: O(d).
func (b Ball) Intersects(o Ball) (bool, error) {
	d, err := Dist(b.Center, o.Center)
	if err != nil {
		return false, err
	}

	return d <= b.Radius+o.Radius, nil
}
