// SPDX-License-Identifier: MIT
// Package: lvlsym/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Appends n vertices; edges i–(i+1) for i = 0..n-2.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/lvlsym/core"

const methodPath = "Path"

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodPath, n, MinPathNodes); err != nil {
			return err
		}
		base, err := appendVertices(g, cfg, methodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, methodPath, base, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
