// SPDX-License-Identifier: MIT
// Package: lvlsym/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); K_1 is a single vertex.
//   • Edges i–j for i<j in lexicographic order.
//
// Complexity: O(n²).

package builder

import "github.com/katalvlaran/lvlsym/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodComplete, n, minCompleteNodes); err != nil {
			return err
		}
		base, err := appendVertices(g, cfg, methodComplete, n)
		if err != nil {
			return err
		}

		return addCompleteEdges(g, methodComplete, base, n)
	}
}
