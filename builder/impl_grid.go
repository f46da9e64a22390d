// SPDX-License-Identifier: MIT
// Package: lvlsym/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows, cols ≥ 1 (else ErrTooFewVertices).
//   • Vertex (r,c) has local index r*cols+c (row-major).
//   • 4-neighborhood: for each cell, the right then the bottom neighbor.
//
// Complexity: O(rows·cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlsym/core"
)

const methodGrid = "Grid"

// Grid returns a Constructor that builds a rows×cols grid graph.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		base, err := appendVertices(g, cfg, methodGrid, rows*cols)
		if err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := addEdge(g, methodGrid, base, u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, methodGrid, base, u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
