// SPDX-License-Identifier: MIT
// Package: lvlsym/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Constructors append their vertices after the ones already in g, so
//     several constructors produce a disjoint union in call order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order give identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlsym/core"
)

// Constructor appends a deterministic topology to g using the resolved
// builderConfig. Constructors validate parameters before adding anything and
// return sentinel errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty core.Graph with gopts, resolves the builder
// configuration from bopts and applies all constructors in order.
// Any constructor error is wrapped as "BuildGraph: %w" and returned at once.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(0, gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
