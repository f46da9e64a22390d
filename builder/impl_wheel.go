// SPDX-License-Identifier: MIT
// Package: lvlsym/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4: a rim cycle C_{n-1} (local indices 0..n-2) plus a hub (local index n-1).
//   • The rim is built by Cycle, then the hub is appended and joined to every rim vertex.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlsym/core"
)

const methodWheel = "Wheel"

// Wheel returns a Constructor that builds the wheel W_n.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodWheel, n, MinWheelNodes); err != nil {
			return err
		}
		base := g.NumVertices()
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		hub, err := g.AddVertex(cfg.colorFn(n - 1))
		if err != nil {
			return fmt.Errorf("%s: AddVertex(hub): %w", methodWheel, err)
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, methodWheel, base, hub-base, i); err != nil {
				return err
			}
		}

		return nil
	}
}
