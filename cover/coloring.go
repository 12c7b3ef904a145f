package cover

import "github.com/katalvlaran/ballcover/geom"

// colorNext assigns the k-th selected ball the smallest color in
// [0, o.Colors) not already used by an earlier selected ball whose
// closed ball intersects b. earlier is the already-colored prefix of the
// selection, in order.
//
// Errors: ErrColorBudgetExceeded if every color in the budget is blocked
// (or the budget is empty) — the oracle's N was mis-chosen for this
// dimension/τ, a fatal configuration error.
//
// Complexity: O(k·d).
func colorNext(earlier []Ball, b geom.Ball, o Oracle) (int, error) {
	if o.Colors <= 0 {
		return 0, ErrColorBudgetExceeded
	}

	// First-fit can never need a color above len(earlier), so the
	// used-set and the scan are capped there; the full budget (5^d for
	// the default oracle) is far too large to materialize.
	limit := o.Colors
	if n := len(earlier) + 1; n < limit {
		limit = n
	}

	used := make([]bool, limit)
	for i := range earlier {
		hit, err := earlier[i].Geom().Intersects(b)
		if err != nil {
			return 0, err
		}
		if hit && earlier[i].Color < limit {
			used[earlier[i].Color] = true
		}
	}

	for c := 0; c < limit; c++ {
		if !used[c] {
			return c, nil
		}
	}

	// Reachable only when limit == o.Colors: with limit = len(earlier)+1
	// at most len(earlier) colors can be blocked, so a slot stays free.
	return 0, ErrColorBudgetExceeded
}

// assignColors runs the coloring pass over the finalized selection
// stream. It does not need to interleave with selection: each ball's
// color depends only on earlier balls.
//
// Complexity: O(k²·d).
func assignColors(selected []geom.Ball, o Oracle) ([]Ball, error) {
	out := make([]Ball, 0, len(selected))
	for _, b := range selected {
		c, err := colorNext(out, b, o)
		if err != nil {
			return nil, err
		}
		out = append(out, Ball{Center: b.Center, Radius: b.Radius, Color: c})
	}

	return out, nil
}
