// SPDX-License-Identifier: MIT
// File: methods_permute.go
// Role: relabeling (Permute) and automorphism testing.
// Contract:
//   - A permutation p sends vertex v to p[v]; it is validated with perm.Validate
//     before any work, so an invalid p yields perm.ErrInvalidPermutation.
//   - The receiver is never modified.

package core

import (
	"fmt"

	"github.com/katalvlaran/lvlsym/perm"
)

// Permute returns a new graph in which vertex p[v] has the color of v and
// {p[u], p[v]} is an edge iff {u, v} is an edge of g. Flags are copied.
//
// Complexity: O(N + E log Δ) where Δ is the maximum degree.
func (g *Graph) Permute(p []int) (*Graph, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if err := perm.Validate(p, len(g.colors)); err != nil {
		return nil, fmt.Errorf("Permute: %w", err)
	}

	return g.permuteLocked(p), nil
}

// permuteLocked must be called with g.mu held and p validated.
func (g *Graph) permuteLocked(p []int) *Graph {
	n := len(g.colors)
	out := g.emptyLikeLocked(n)
	for v := 0; v < n; v++ {
		out.colors[p[v]] = g.colors[v]
		row := make([]int, len(g.adj[v]))
		for i, w := range g.adj[v] {
			row[i] = p[w]
		}
		sortInts(row)
		out.adj[p[v]] = row
	}
	out.nedges = g.nedges

	return out
}

// IsAutomorphism reports whether p preserves colors and adjacency of g,
// i.e. whether g.Permute(p) compares equal to g.
//
// Complexity: O(N + E log Δ).
func (g *Graph) IsAutomorphism(p []int) (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if err := perm.Validate(p, len(g.colors)); err != nil {
		return false, fmt.Errorf("IsAutomorphism: %w", err)
	}
	for v, img := range p {
		if g.colors[v] != g.colors[img] || len(g.adj[v]) != len(g.adj[img]) {
			return false, nil
		}
	}
	for v, row := range g.adj {
		target := g.adj[p[v]]
		for _, w := range row {
			if !hasSorted(target, p[w]) {
				return false, nil
			}
		}
	}

	return true, nil
}
