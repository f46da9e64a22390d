// SPDX-License-Identifier: MIT

// Package bfs finds the connected components of a core.Graph, which the
// search uses for component recursion.
//
// Components(g) sweeps every vertex in index order; each unvisited vertex
// starts a breadth-first walk over one shared visited bitset.
//
// Determinism
//
//	Components are listed by their smallest vertex and each is sorted, so
//	the result depends only on the graph.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E), plus sorting each component.
//   - Memory: O(V) for the queue and the visited bits.
//
// Errors
//
//   - ErrGraphNil if the graph pointer is nil.
package bfs
