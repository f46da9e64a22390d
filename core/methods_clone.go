// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: deep copies that carry the graph flags.
// Concurrency:
//   - Read locks for snapshotting; the source graph is never mutated.
//   - A clone never inherits the search marker.

package core

import "sort"

// Clone returns a deep copy of colors, adjacency and flags.
// Complexity: O(N + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := g.emptyLikeLocked(len(g.colors))
	copy(out.colors, g.colors)
	for v, row := range g.adj {
		if len(row) > 0 {
			out.adj[v] = append([]int(nil), row...)
		}
	}
	out.nedges = g.nedges

	return out
}

// emptyLikeLocked returns an edgeless graph with n vertices and g's flags.
func (g *Graph) emptyLikeLocked(n int) *Graph {
	return &Graph{
		colors:             make([]uint32, n),
		adj:                make([][]int, n),
		verboseLevel:       g.verboseLevel,
		verboseOut:         g.verboseOut,
		failureRecording:   g.failureRecording,
		componentRecursion: g.componentRecursion,
		longPrune:          g.longPrune,
		heuristic:          g.heuristic,
	}
}

// InducedSubgraph returns the subgraph induced by vertices, relabeled so that
// vertices[i] becomes vertex i. Flags are copied. vertices must be distinct.
func (g *Graph) InducedSubgraph(vertices []int) (*Graph, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	index := make(map[int]int, len(vertices))
	for i, v := range vertices {
		if err := g.checkVertex("InducedSubgraph", v); err != nil {
			return nil, err
		}
		index[v] = i
	}
	out := g.emptyLikeLocked(len(vertices))
	for i, v := range vertices {
		out.colors[i] = g.colors[v]
		var row []int
		for _, w := range g.adj[v] {
			if j, ok := index[w]; ok {
				row = append(row, j)
				if j > i {
					out.nedges++
				}
			}
		}
		sortInts(row)
		out.adj[i] = row
	}

	return out, nil
}

func sortInts(a []int) { sort.Ints(a) }
