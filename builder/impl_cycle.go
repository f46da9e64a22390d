// SPDX-License-Identifier: MIT
// Package: lvlsym/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Appends n vertices; edges i–(i+1)%n in ascending i.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "github.com/katalvlaran/lvlsym/core"

const methodCycle = "Cycle"

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		base, err := appendVertices(g, cfg, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, methodCycle, base, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
