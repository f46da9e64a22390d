// SPDX-License-Identifier: MIT
// Package: lvlsym/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1, n2 ≥ 1 (else ErrTooFewVertices).
//   • Left side: local indices 0..n1-1 colored cfg.leftColor;
//     right side: n1..n1+n2-1 colored cfg.rightColor (see WithPartitionColors).
//   • Edges left i – right j in row-major order.
//
// Complexity: O(n1·n2).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlsym/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		sides := cfg
		sides.colorFn = func(i int) uint32 {
			if i < n1 {
				return cfg.leftColor
			}
			return cfg.rightColor
		}
		base, err := appendVertices(g, sides, methodCompleteBipartite, n1+n2)
		if err != nil {
			return err
		}
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := addEdge(g, methodCompleteBipartite, base, i, n1+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
