package cover

// Pipe runs the covering as a single-producer/single-consumer stream:
// a background goroutine selects and colors balls one at a time and
// sends each on the returned channel as soon as its color is fixed.
// This is sound because a ball's color depends only on earlier balls;
// no other concurrency decomposition of the construction is.
//
// The ball channel is closed when the run completes (successfully or
// not); the error channel then yields the terminal error, if any, and is
// closed. Consume like:
//
//	balls, errc := cover.Pipe(points, dim)
//	for b := range balls { … }
//	if err := <-errc; err != nil { … }
//
// Output is identical to Run for identical input: same balls, same
// order, same colors.
//
// Complexity: as Run, spread across channel sends.
func Pipe(points []Candidate, dim int, opts ...Option) (<-chan Ball, <-chan error) {
	out := make(chan Ball)
	errc := make(chan error, 1)

	go func() {
		defer close(errc)
		defer close(out)

		opt := buildOptions(opts)
		if err := validateInputs(points, dim, opt); err != nil {
			errc <- err

			return
		}
		if len(points) == 0 {
			return
		}
		o, err := resolveOracle(dim, opt)
		if err != nil {
			errc <- err

			return
		}

		// Lock-step pipeline: select one ball, color it against the
		// already-emitted prefix, emit.
		var (
			s       = newSelector(points, o.Tau)
			history = make([]Ball, 0, len(points))
		)
		for {
			b, ok, serr := s.next()
			if serr != nil {
				errc <- serr

				return
			}
			if !ok {
				return
			}
			c, cerr := colorNext(history, b, o)
			if cerr != nil {
				errc <- cerr

				return
			}
			colored := Ball{Center: b.Center, Radius: b.Radius, Color: c}
			history = append(history, colored)
			out <- colored
		}
	}()

	return out, errc
}
