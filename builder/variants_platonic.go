// SPDX-License-Identifier: MIT
// Package: lvlsym/builder
//
// variants_platonic.go - vertex counts and generated shell edges of the
// five Platonic solids.
//
// Labelings:
//   • Tetrahedron:  K4.
//   • Cube:         3-bit hypercube, u ~ v when u XOR v is a power of two.
//   • Octahedron:   K6 minus the matching {2i, 2i+1}.
//   • Dodecahedron: outer pentagon 0..4, inner pentagon 5..9, middle
//                   10-cycle 10..19; outer i ~ middle 2i, inner i ~ middle 2i+1.
//   • Icosahedron:  poles 0 and 11, rings 1..5 and 6..10; ring vertex
//                   1+i ~ 6+i and 6+(i+1)%5.
//
// Edge lists are sorted by (U, V) with U < V.
//
// Automorphism group orders: tetrahedron 24, cube 48, octahedron 48,
// dodecahedron 120, icosahedron 120.

package builder

import (
	"math/bits"
	"sort"
)

// chord is an unordered edge between local vertex indices U < V.
type chord struct {
	U int
	V int
}

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6
	Cube                             // V=8,  E=12
	Octahedron                       // V=6,  E=12
	Dodecahedron                     // V=20, E=30
	Icosahedron                      // V=12, E=30
)

// String returns the solid's name, or "Unknown".
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

var platonicVertexCounts = map[PlatonicName]int{
	Tetrahedron:  4,
	Cube:         8,
	Octahedron:   6,
	Dodecahedron: 20,
	Icosahedron:  12,
}

var platonicEdgeSets = map[PlatonicName][]chord{
	Tetrahedron:  pairsWhere(4, func(_, _ int) bool { return true }),
	Cube:         pairsWhere(8, func(u, v int) bool { return bits.OnesCount(uint(u^v)) == 1 }),
	Octahedron:   pairsWhere(6, func(u, v int) bool { return u/2 != v/2 }),
	Dodecahedron: dodecahedronEdges(),
	Icosahedron:  icosahedronEdges(),
}

// pairsWhere lists every pair u < v of 0..n-1 accepted by keep.
func pairsWhere(n int, keep func(u, v int) bool) []chord {
	var out []chord
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if keep(u, v) {
				out = append(out, chord{U: u, V: v})
			}
		}
	}

	return out
}

func sortedChords(raw [][2]int) []chord {
	out := make([]chord, len(raw))
	for i, e := range raw {
		u, v := e[0], e[1]
		if u > v {
			u, v = v, u
		}
		out[i] = chord{U: u, V: v}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

func dodecahedronEdges() []chord {
	raw := make([][2]int, 0, 30)
	for i := 0; i < 5; i++ {
		next := (i + 1) % 5
		raw = append(raw,
			[2]int{i, next},
			[2]int{5 + i, 5 + next},
			[2]int{i, 10 + 2*i},
			[2]int{5 + i, 11 + 2*i},
		)
	}
	for j := 0; j < 10; j++ {
		raw = append(raw, [2]int{10 + j, 10 + (j+1)%10})
	}

	return sortedChords(raw)
}

func icosahedronEdges() []chord {
	raw := make([][2]int, 0, 30)
	for i := 0; i < 5; i++ {
		top, bottom := 1+i, 6+i
		next := (i + 1) % 5
		raw = append(raw,
			[2]int{0, top},
			[2]int{top, 1 + next},
			[2]int{top, bottom},
			[2]int{top, 6 + next},
			[2]int{bottom, 6 + next},
			[2]int{bottom, 11},
		)
	}

	return sortedChords(raw)
}
