package cover

import "github.com/katalvlaran/ballcover/geom"

// Options configures a covering run.
//
// Oracle      – color budget and expansion factor; nil derives the default
// oracle (N = M(d), τ = 1 + δ(d)/4) from packing.
// Measure     – volume capability for the default-oracle derivation;
// nil means geom.Lebesgue{}.
// RadiusBound – optional ceiling on candidate radii; 0 disables the check.
// Must be ≥ 0 and finite.
type Options struct {
	Oracle      *Oracle      // trusted (N, τ); nil ⇒ DefaultOracle
	Measure     geom.Measure // volume capability; nil ⇒ Lebesgue
	RadiusBound float64      // candidate radius ceiling; 0 ⇒ unbounded
}

// Option is a functional option for configuring Run and Pipe.
type Option func(*Options)

// DefaultOptions returns the zero configuration: derived oracle,
// Lebesgue measure, no radius ceiling.
func DefaultOptions() Options {
	return Options{}
}

// WithOracle supplies an explicit color budget and expansion factor
// instead of the derived default. The oracle's non-existence guarantee
// for satellite configurations of Colors+1 balls is the caller's
// (offline-verified) obligation.
func WithOracle(o Oracle) Option {
	return func(opts *Options) {
		opts.Oracle = &o
	}
}

// WithMeasure replaces the Lebesgue measure used when deriving the
// default oracle. Ignored when WithOracle is also given.
func WithMeasure(m geom.Measure) Option {
	return func(opts *Options) {
		opts.Measure = m
	}
}

// WithRadiusBound sets a ceiling on candidate radii; candidates above it
// are rejected with ErrRadiusAboveBound. Validation of the value itself
// happens in Run/Pipe (ErrBadRadiusBound), never here.
func WithRadiusBound(r float64) Option {
	return func(opts *Options) {
		opts.RadiusBound = r
	}
}
