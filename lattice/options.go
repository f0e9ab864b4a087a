// SPDX-License-Identifier: MIT

package lattice

import "math/rand"

// Option customizes Build by mutating a buildConfig before construction.
// Option constructors validate their input and panic on meaningless values;
// Build itself never panics.
type Option func(*buildConfig)

// buildConfig holds resolved options for a single Build call.
type buildConfig struct {
	src rand.Source
}

// WithSource replaces the default seeded math/rand source. The seed passed
// to Build is ignored; the caller owns the source's seeding policy.
// Use it to reproduce tables produced by another generator algorithm.
// Panics on nil.
func WithSource(src rand.Source) Option {
	if src == nil {
		panic("lattice: WithSource(nil)")
	}
	return func(c *buildConfig) {
		c.src = src
	}
}

func resolveOptions(seed int64, opts []Option) buildConfig {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		cfg.src = rand.NewSource(seed)
	}
	return cfg
}
