// SPDX-License-Identifier: MIT

// Package core provides the vertex-colored, simple undirected Graph that the
// symmetry search operates on.
//
// Vertices are the integers 0..N-1. Each vertex carries a uint32 color; the
// colors form the initial partition of every search. Edges join distinct
// vertices and are stored as sorted adjacency rows, so every query is
// deterministic.
//
// Configuration Options (GraphOption):
//
//	– WithVerboseLevel(level int), WithVerboseOutput(w io.Writer)
//	    Diagnostic output of the search (0 = silent).
//
//	– WithFailureRecording(bool), WithComponentRecursion(bool), WithLongPrune(bool)
//	    Pruning techniques; all enabled by default.
//
//	– WithSplittingHeuristic(h SplittingHeuristic)
//	    One of HeuristicF, HeuristicFS, HeuristicFL, HeuristicFM,
//	    HeuristicFSM (default), HeuristicFLM.
//
// Core Methods:
//
//	AddVertex(color uint32) (int, error)     // amortized O(1)
//	AddEdge(u, v int) error                  // O(deg u + deg v)
//	Color(v) / ChangeColor(v, c)             // O(1)
//	Permute(p []int) (*Graph, error)         // O(N + E log Δ)
//	IsAutomorphism(p []int) (bool, error)    // O(N + E log Δ)
//	Clone() *Graph                           // O(N + E)
//	Cmp(other *Graph) int                    // O(N + E)
//	Hash() uint64                            // O(N + E)
//	Edges() []Edge / FromEdges(...)          // edge-list import/export
//
// Canonical forms are compared with Cmp: two graphs are isomorphic iff their
// canonical relabelings (computed with identical flags) compare equal.
//
// Concurrency:
//
// A sync.RWMutex guards storage and flags. A running search marks the graph
// with AcquireSearch; until ReleaseSearch, every mutator and flag setter
// returns ErrSearchActive, which also rejects changes made from inside a
// report callback.
package core
