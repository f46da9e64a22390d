// SPDX-License-Identifier: MIT
// Package: lvlsym/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • colorFn     = every vertex gets color 0
//   • rng         = nil (pure/deterministic unless seeded)
//   • left/right  = color 0 / color 0 (bipartite sides)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// colorFn maps the local index of a vertex inside one constructor to its color.
	colorFn func(i int) uint32
	// rng drives stochastic constructors; nil means no randomness.
	rng *rand.Rand

	// Bipartite side colors.
	leftColor  uint32
	rightColor uint32
}

// newBuilderConfig applies opts in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{colorFn: uniformColor}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func uniformColor(int) uint32 { return 0 }
