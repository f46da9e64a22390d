// SPDX-License-Identifier: MIT
// File: methods_compare.go
// Role: total order (Cmp) and hash over labeled graphs.
// Contract:
//   - Cmp orders by vertex count, then color vector, then degree vector,
//     then adjacency rows compared lexicographically vertex by vertex.
//   - Cmp(a, b) == 0 iff a and b have identical colors and edge sets, so
//     Hash agrees with Cmp's equality case.
//   - Flags are ignored by both.

package core

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Cmp returns -1, 0 or +1 as g sorts before, equal to or after other.
//
// Complexity: O(N + E).
func (g *Graph) Cmp(other *Graph) int {
	if g == other {
		return 0
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	other.mu.RLock()
	defer other.mu.RUnlock()

	return cmpLocked(g, other)
}

func cmpLocked(a, b *Graph) int {
	if c := cmpInt(len(a.colors), len(b.colors)); c != 0 {
		return c
	}
	for v := range a.colors {
		if a.colors[v] != b.colors[v] {
			if a.colors[v] < b.colors[v] {
				return -1
			}
			return 1
		}
	}
	for v := range a.adj {
		if c := cmpInt(len(a.adj[v]), len(b.adj[v])); c != 0 {
			return c
		}
	}
	for v := range a.adj {
		ra, rb := a.adj[v], b.adj[v]
		for i := range ra {
			if c := cmpInt(ra[i], rb[i]); c != 0 {
				return c
			}
		}
	}

	return 0
}

func cmpInt(x, y int) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// Equal reports whether g.Cmp(other) == 0.
func (g *Graph) Equal(other *Graph) bool {
	return g.Cmp(other) == 0
}

// Hash returns an xxhash digest of N, the color vector and the ordered
// edge list.
func (g *Graph) Hash() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var (
		d   = xxhash.New()
		buf [8]byte
	)
	put := func(x uint64) {
		binary.LittleEndian.PutUint64(buf[:], x)
		_, _ = d.Write(buf[:])
	}
	put(uint64(len(g.colors)))
	for _, c := range g.colors {
		put(uint64(c))
	}
	for u, row := range g.adj {
		for _, v := range row {
			if v > u {
				put(uint64(u)<<32 | uint64(v))
			}
		}
	}

	return d.Sum64()
}
