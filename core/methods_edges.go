// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: edge insertion, adjacency queries and edge-list import/export.
// Determinism:
//   - Adjacency rows stay sorted, so Neighbors and Edges are ordered.

package core

import (
	"fmt"
	"sort"
)

// AddEdge inserts the undirected edge {u, v}. Re-adding an existing edge is
// a no-op. Both endpoints are validated before any mutation.
//
// Errors: ErrVertexOutOfRange, ErrLoopNotAllowed, ErrSearchActive.
// Complexity: O(deg(u) + deg(v)) for the sorted insertion.
func (g *Graph) AddEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.searching.Load() {
		return fmt.Errorf("AddEdge: %w", ErrSearchActive)
	}
	if err := g.checkVertex("AddEdge", u); err != nil {
		return err
	}
	if err := g.checkVertex("AddEdge", v); err != nil {
		return err
	}
	if u == v {
		return fmt.Errorf("AddEdge: vertex %d: %w", u, ErrLoopNotAllowed)
	}
	if !insertSorted(&g.adj[u], v) {
		return nil
	}
	insertSorted(&g.adj[v], u)
	g.nedges++

	return nil
}

// insertSorted adds x to the sorted row unless present; reports insertion.
func insertSorted(row *[]int, x int) bool {
	r := *row
	i := sort.SearchInts(r, x)
	if i < len(r) && r[i] == x {
		return false
	}
	r = append(r, 0)
	copy(r[i+1:], r[i:])
	r[i] = x
	*row = r

	return true
}

// HasEdge reports whether {u, v} is an edge.
func (g *Graph) HasEdge(u, v int) (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if err := g.checkVertex("HasEdge", u); err != nil {
		return false, err
	}
	if err := g.checkVertex("HasEdge", v); err != nil {
		return false, err
	}

	return hasSorted(g.adj[u], v), nil
}

func hasSorted(row []int, x int) bool {
	i := sort.SearchInts(row, x)
	return i < len(row) && row[i] == x
}

// NumEdges returns the number of undirected edges.
func (g *Graph) NumEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nedges
}

// Degree returns the number of neighbors of v.
func (g *Graph) Degree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if err := g.checkVertex("Degree", v); err != nil {
		return 0, err
	}

	return len(g.adj[v]), nil
}

// Neighbors returns a sorted copy of the neighbor row of v.
func (g *Graph) Neighbors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if err := g.checkVertex("Neighbors", v); err != nil {
		return nil, err
	}
	out := make([]int, len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}

// Edges returns every edge once with U < V, ordered by (U, V).
// Complexity: O(N + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, g.nedges)
	for u, row := range g.adj {
		for _, v := range row {
			if v > u {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}

	return out
}

// FromEdges builds a graph with len(colors) vertices (or n when colors is
// nil) and the given edges. It is the inverse of Colors plus Edges.
func FromEdges(n int, edges []Edge, colors []uint32, opts ...GraphOption) (*Graph, error) {
	if colors != nil && len(colors) != n {
		return nil, fmt.Errorf("FromEdges: %d colors for %d vertices: %w", len(colors), n, ErrVertexOutOfRange)
	}
	g := NewGraph(n, opts...)
	copy(g.colors, colors)
	for _, e := range edges {
		if err := g.AddEdge(e.U, e.V); err != nil {
			return nil, fmt.Errorf("FromEdges: %w", err)
		}
	}

	return g, nil
}
