package cover

import "github.com/katalvlaran/ballcover/geom"

// selector runs the greedy τ-admissible selection as a resumable state
// machine: Running while an uncovered candidate remains, Done otherwise.
// Run drains it in a loop; Pipe interleaves it with coloring.
type selector struct {
	t     *tracker
	tau   float64
	steps int // selections made so far; hard-bounded by len(cands)
}

// newSelector starts a selection over cands with expansion factor tau.
// Inputs are assumed validated (positive finite radii, uniform dimension).
func newSelector(cands []Candidate, tau float64) *selector {
	return &selector{t: newTracker(cands), tau: tau}
}

// next performs one Running transition: pick the lowest-index uncovered
// candidate whose radius r satisfies sup ≤ τ·r, emit its ball, and fold
// it into the coverage. The second return is false once the Done state
// is reached (every candidate covered).
//
// The τ-relaxed admissibility (any candidate within factor τ of the
// supremum, not only the argmax) is load-bearing for the coloring bound
// and must not be tightened.
//
// Errors: ErrSelectionStalled if no candidate is admissible while
// uncovered candidates remain, or if the step bound is exceeded —
// unreachable for validated input, where the supremum is attained by
// some uncovered candidate and every selected ball covers at least its
// own center.
//
// Complexity: O(n·d) per call.
func (s *selector) next() (geom.Ball, bool, error) {
	if s.t.left == 0 {
		return geom.Ball{}, false, nil
	}

	// Each selection covers at least one new candidate, so more than
	// len(cands) steps means the invariant broke.
	if s.steps >= len(s.t.cands) {
		return geom.Ball{}, false, ErrSelectionStalled
	}

	// Lowest-index admissible uncovered candidate. sup > 0 here because
	// uncovered candidates remain and radii are positive.
	sup := s.t.sup
	pick := -1
	for i, c := range s.t.cands {
		if !s.t.covered[i] && sup <= s.tau*c.Radius {
			pick = i

			break
		}
	}
	if pick < 0 {
		return geom.Ball{}, false, ErrSelectionStalled
	}

	c := s.t.cands[pick]
	if err := s.t.update(c.Center, c.Radius); err != nil {
		return geom.Ball{}, false, err
	}
	s.steps++

	return geom.Ball{Center: c.Center, Radius: c.Radius}, true, nil
}

// selectBalls drains the selector: the full selected sequence in order.
//
// Complexity: O(n²·d).
func selectBalls(cands []Candidate, tau float64) ([]geom.Ball, error) {
	s := newSelector(cands, tau)
	out := make([]geom.Ball, 0, len(cands))
	for {
		b, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, b)
	}
}
