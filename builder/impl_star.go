// SPDX-License-Identifier: MIT
// Package: lvlsym/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The hub is the first appended vertex (local index 0); leaves are 1..n-1.
//   - Spokes are emitted hub–leaf in ascending leaf order.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/lvlsym/core"

const methodStar = "Star"

// Star returns a Constructor that builds a star: one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodStar, n, MinStarNodes); err != nil {
			return err
		}
		base, err := appendVertices(g, cfg, methodStar, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, methodStar, base, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
