// SPDX-License-Identifier: MIT
// Package: lvlsym/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.
//   • Seeding is explicit: WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithColorScheme sets the vertex coloring: fn receives the index of the
// vertex inside its constructor (0 for the first vertex it adds).
// Panics on nil.
func WithColorScheme(fn func(i int) uint32) BuilderOption {
	if fn == nil {
		panic("builder: WithColorScheme(nil)")
	}

	return func(c *builderConfig) { c.colorFn = fn }
}

// WithPartitionColors sets the colors of the two sides of CompleteBipartite.
func WithPartitionColors(left, right uint32) BuilderOption {
	return func(c *builderConfig) { c.leftColor, c.rightColor = left, right }
}
