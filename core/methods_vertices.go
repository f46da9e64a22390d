// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: vertex lifecycle and color queries.
// Concurrency:
//   - Mutators take the write lock; queries take the read lock.
//   - Every mutator fails with ErrSearchActive while a search holds the graph.

package core

import "fmt"

// NumVertices returns N, the number of vertices.
func (g *Graph) NumVertices() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.colors)
}

// AddVertex appends a vertex with the given color and returns its index N.
// Complexity: amortized O(1).
func (g *Graph) AddVertex(color uint32) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.searching.Load() {
		return 0, fmt.Errorf("AddVertex: %w", ErrSearchActive)
	}
	g.colors = append(g.colors, color)
	g.adj = append(g.adj, nil)

	return len(g.colors) - 1, nil
}

// Color returns the color of v.
func (g *Graph) Color(v int) (uint32, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if err := g.checkVertex("Color", v); err != nil {
		return 0, err
	}

	return g.colors[v], nil
}

// ChangeColor sets the color of v to c. No state changes on error.
func (g *Graph) ChangeColor(v int, c uint32) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.searching.Load() {
		return fmt.Errorf("ChangeColor: %w", ErrSearchActive)
	}
	if err := g.checkVertex("ChangeColor", v); err != nil {
		return err
	}
	g.colors[v] = c

	return nil
}

// Colors returns a copy of the color vector indexed by vertex.
func (g *Graph) Colors() []uint32 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]uint32, len(g.colors))
	copy(out, g.colors)

	return out
}

// checkVertex must be called with g.mu held.
func (g *Graph) checkVertex(method string, v int) error {
	if v < 0 || v >= len(g.colors) {
		return fmt.Errorf("%s: vertex %d, N=%d: %w", method, v, len(g.colors), ErrVertexOutOfRange)
	}

	return nil
}
