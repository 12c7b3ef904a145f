package geom

import "math"

// Zero returns the origin of the dim-dimensional space.
// A negative dim is treated as 0.
func Zero(dim int) Point {
	if dim < 0 {
		dim = 0
	}

	return make(Point, dim)
}

// Dim reports the dimension of p.
func (p Point) Dim() int { return len(p) }

// Clone returns an independent copy of p.
func (p Point) Clone() Point {
	return append(Point(nil), p...)
}

// Add returns p + q as a fresh Point.
//
// Complexity: O(d).
func (p Point) Add(q Point) (Point, error) {
	if len(p) != len(q) {
		return nil, ErrDimensionMismatch
	}
	out := make(Point, len(p))
	for i := range p {
		out[i] = p[i] + q[i]
	}

	return out, nil
}

// Sub returns p − q as a fresh Point.
//
// Complexity: O(d).
func (p Point) Sub(q Point) (Point, error) {
	if len(p) != len(q) {
		return nil, ErrDimensionMismatch
	}
	out := make(Point, len(p))
	for i := range p {
		out[i] = p[i] - q[i]
	}

	return out, nil
}

// Scale returns s·p as a fresh Point.
//
// Complexity: O(d).
func (p Point) Scale(s float64) Point {
	out := make(Point, len(p))
	for i := range p {
		out[i] = s * p[i]
	}

	return out
}

// Dot returns the inner product ⟨p, q⟩.
//
// Complexity: O(d).
func (p Point) Dot(q Point) (float64, error) {
	if len(p) != len(q) {
		return 0, ErrDimensionMismatch
	}
	var acc float64
	for i := range p {
		acc += p[i] * q[i]
	}

	return acc, nil
}

// Norm returns the Euclidean norm ‖p‖.
//
// Complexity: O(d).
func (p Point) Norm() float64 {
	var acc float64
	for i := range p {
		acc += p[i] * p[i]
	}

	return math.Sqrt(acc)
}

// Dist returns the Euclidean distance ‖p − q‖ without allocating.
//
// Complexity: O(d).
func Dist(p, q Point) (float64, error) {
	if len(p) != len(q) {
		return 0, ErrDimensionMismatch
	}
	var (
		acc float64 // running sum of squared coordinate differences
		d   float64 // scratch for one coordinate difference
	)
	for i := range p {
		d = p[i] - q[i]
		acc += d * d
	}

	return math.Sqrt(acc), nil
}
