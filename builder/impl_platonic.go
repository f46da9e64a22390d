// SPDX-License-Identifier: MIT
// Package: lvlsym/builder
//
// impl_platonic.go - implementation of PlatonicSolid(name, withCenter) constructor.
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron};
//     unknown names → ErrOptionViolation.
//   • Appends the shell vertices 0..n-1 and the pre-sorted shell edges of
//     variants_platonic.go.
//   • withCenter appends one more vertex (local index n) joined to every
//     shell vertex in ascending order.
//
// Complexity: O(V+E), V ≤ 21, E ≤ 50.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlsym/core"
)

const methodPlatonicSolid = "PlatonicSolid"

// PlatonicSolid returns a Constructor that builds the chosen Platonic shell,
// optionally stellated with a hub connected to all shell vertices.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", methodPlatonicSolid, name, ErrOptionViolation)
		}
		edges, ok := platonicEdgeSets[name]
		if !ok {
			return fmt.Errorf("%s: missing edge set for %q: %w", methodPlatonicSolid, name, ErrConstructFailed)
		}
		total := n
		if withCenter {
			total++
		}
		base, err := appendVertices(g, cfg, methodPlatonicSolid, total)
		if err != nil {
			return err
		}
		for _, ch := range edges {
			if err := addEdge(g, methodPlatonicSolid, base, ch.U, ch.V); err != nil {
				return err
			}
		}
		if withCenter {
			for i := 0; i < n; i++ {
				if err := addEdge(g, methodPlatonicSolid, base, n, i); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
