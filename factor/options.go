// SPDX-License-Identifier: MIT

// Package factor: engine tuning via functional options.

package factor

// DefaultUlps is the default error margin, in representable steps at unit
// magnitude, used by every tolerance decision in the package.
const DefaultUlps = 3

// DefaultMaxSweeps caps the diagonalization loop of the SVD engine. The cap
// is a safety valve; well-conditioned inputs converge far below it.
const DefaultMaxSweeps = 1000

// Options collects the tuning knobs shared by the factorization engines.
type Options struct {
	// Ulps is the error margin for zero/structure decisions.
	Ulps int
	// MaxSweeps bounds the Givens sweep count of the SVD engine.
	MaxSweeps int
}

// Option mutates Options before an engine captures them.
type Option func(*Options)

// WithUlps overrides the error margin. Non-positive values select the exact
// comparison mode of the ulp package.
func WithUlps(n int) Option {
	return func(o *Options) { o.Ulps = n }
}

// WithMaxSweeps overrides the sweep cap of the SVD engine.
func WithMaxSweeps(n int) Option {
	return func(o *Options) { o.MaxSweeps = n }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		Ulps:      DefaultUlps,
		MaxSweeps: DefaultMaxSweeps,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
