package cover

import "github.com/katalvlaran/ballcover/geom"

// tracker maintains the coverage state of one run: which candidates are
// already inside a selected ball, the selected balls themselves (the
// covered region), and the supremum of candidate radii over the
// uncovered remainder.
//
// Invariants (selection only ever calls update):
//   - the covered region grows monotonically;
//   - sup is non-increasing across updates;
//   - left counts exactly the false entries of covered.
type tracker struct {
	cands   []Candidate // fixed candidate list (not owned, never mutated)
	covered []bool      // covered[i] ⇔ cands[i].Center lies in some selected ball
	balls   []geom.Ball // selected balls, in selection order
	sup     float64     // max candidate radius over uncovered candidates; 0 if none
	left    int         // number of uncovered candidates
}

// newTracker builds the initial state: nothing covered, sup over the
// whole input.
//
// Complexity: O(n).
func newTracker(cands []Candidate) *tracker {
	t := &tracker{
		cands:   cands,
		covered: make([]bool, len(cands)),
		left:    len(cands),
	}
	for _, c := range cands {
		if c.Radius > t.sup {
			t.sup = c.Radius
		}
	}

	return t
}

// isCovered reports whether p lies in the region covered so far.
//
// Complexity: O(k·d) over the k selected balls.
func (t *tracker) isCovered(p geom.Point) (bool, error) {
	for _, b := range t.balls {
		in, err := b.Contains(p)
		if err != nil {
			return false, err
		}
		if in {
			return true, nil
		}
	}

	return false, nil
}

// update unions the closed ball (center, r) into the covered region,
// marks the candidates it swallows, and recomputes sup over the
// remainder.
//
// Complexity: O(n·d).
func (t *tracker) update(center geom.Point, r float64) error {
	ball := geom.Ball{Center: center, Radius: r}
	t.balls = append(t.balls, ball)

	// One pass: mark newly covered candidates and rebuild the supremum
	// over whatever stays uncovered.
	t.sup = 0
	for i := range t.cands {
		if !t.covered[i] {
			in, err := ball.Contains(t.cands[i].Center)
			if err != nil {
				return err
			}
			if in {
				t.covered[i] = true
				t.left--

				continue
			}
			if t.cands[i].Radius > t.sup {
				t.sup = t.cands[i].Radius
			}
		}
	}

	return nil
}
