// Package cover - unified entry points for the covering construction.
//
// Design principles:
//   - Deterministic: lowest-index tie-break; no randomness, no time.
//   - Strict sentinels: only errors from types.go (plus forwarded
//     packing/geom sentinels); no fmt.Errorf where a sentinel suffices.
//   - Two-pass structure: selection finalizes the ball sequence, then
//     coloring consumes it — exactly the decomposition Pipe streams.
package cover

// Run executes a full covering: derive (or accept) the oracle, greedily
// select τ-admissible balls until every input point is covered, then
// first-fit color the selection.
//
// Contracts:
//   - dim ≥ 0; every candidate center has dimension dim and a positive,
//     finite radius (within Options.RadiusBound when set).
//   - The returned sequence is in selection order; every input point
//     lies in at least one returned ball; balls sharing a color are
//     pairwise disjoint; every color is < N.
//   - Empty input returns an empty non-nil slice with no coloring pass.
//
// Errors: see doc.go; packing sentinels are forwarded as-is when the
// default oracle is derived.
//
// Complexity: O(n²·d + n·N) for n candidates in dimension d.
func Run(points []Candidate, dim int, opts ...Option) ([]Ball, error) {
	// Stage 1 - options + input validation.
	opt := buildOptions(opts)
	if err := validateInputs(points, dim, opt); err != nil {
		return nil, err
	}

	// Stage 2 - degenerate input: nothing to cover, nothing to color,
	// no bound to derive.
	if len(points) == 0 {
		return []Ball{}, nil
	}

	// Stage 3 - resolve the color budget and expansion factor.
	o, err := resolveOracle(dim, opt)
	if err != nil {
		return nil, err
	}

	// Stage 4 - greedy selection pass.
	selected, err := selectBalls(points, o.Tau)
	if err != nil {
		return nil, err
	}

	// Stage 5 - coloring pass over the finalized stream.
	return assignColors(selected, o)
}
