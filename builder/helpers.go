// SPDX-License-Identifier: MIT
// Package builder provides internal helpers used by Constructor
// implementations to append vertices and edges.
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlsym/core"
)

// appendVertices adds n vertices colored by cfg.colorFn(0..n-1) and returns
// the index of the first one.
//
// Complexity: O(n).
func appendVertices(g *core.Graph, cfg builderConfig, method string, n int) (int, error) {
	base := g.NumVertices()
	for i := 0; i < n; i++ {
		if _, err := g.AddVertex(cfg.colorFn(i)); err != nil {
			return 0, fmt.Errorf("%s: AddVertex(%d): %w", method, i, err)
		}
	}

	return base, nil
}

// addEdge connects base+u and base+v.
func addEdge(g *core.Graph, method string, base, u, v int) error {
	if err := g.AddEdge(base+u, base+v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d, %d): %w", method, base+u, base+v, err)
	}

	return nil
}

// addCompleteEdges connects every pair of base..base+n-1.
//
// Complexity: O(n²).
func addCompleteEdges(g *core.Graph, method string, base, n int) error {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := addEdge(g, method, base, i, j); err != nil {
				return err
			}
		}
	}

	return nil
}
