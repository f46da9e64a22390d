// SPDX-License-Identifier: MIT
// Package: lvlsym/builder
//
// impl_petersen.go - implementation of the Petersen() constructor.
//
// Layout:
//   • Outer 5-cycle 0-1-2-3-4-0.
//   • Spokes i–(i+5).
//   • Inner pentagram (5+i)–(5+(i+2)%5).
//
// The Petersen graph is 3-regular on 10 vertices with 120 automorphisms.

package builder

import "github.com/katalvlaran/lvlsym/core"

const (
	methodPetersen   = "Petersen"
	petersenVertices = 10
	petersenRing     = 5
)

// Petersen returns a Constructor that builds the Petersen graph.
func Petersen() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		base, err := appendVertices(g, cfg, methodPetersen, petersenVertices)
		if err != nil {
			return err
		}
		for i := 0; i < petersenRing; i++ {
			edges := [3][2]int{
				{i, (i + 1) % petersenRing},
				{i, i + petersenRing},
				{petersenRing + i, petersenRing + (i+2)%petersenRing},
			}
			for _, e := range edges {
				if err := addEdge(g, methodPetersen, base, e[0], e[1]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
