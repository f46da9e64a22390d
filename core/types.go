// SPDX-License-Identifier: MIT
// Package core defines the colored Graph type consumed by the symmetry
// search: vertex colors, simple undirected adjacency and the graph-level
// search flags.
//
// This file declares Graph, GraphOption, the sentinel errors and the
// NewGraph constructor.
//
// Errors:
//
//	ErrVertexOutOfRange - vertex index is not in [0, NumVertices()).
//	ErrLoopNotAllowed   - AddEdge(v, v); edges join distinct vertices.
//	ErrSearchActive     - mutation or flag change while a search holds the graph.
//	ErrInvalidHeuristic - unknown splitting heuristic name or value.
package core

import (
	"errors"
	"io"
	"os"
	"sync"
	"sync/atomic"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates an operation referenced a vertex index >= NumVertices().
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrSearchActive indicates a mutation, a flag change or a nested search
	// was attempted while a search is running on the graph.
	ErrSearchActive = errors.New("core: search in progress")

	// ErrInvalidHeuristic indicates an unknown splitting heuristic.
	ErrInvalidHeuristic = errors.New("core: invalid splitting heuristic")
)

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithVerboseLevel sets the verbosity of search diagnostics (0 = silent).
func WithVerboseLevel(level int) GraphOption {
	return func(g *Graph) { g.verboseLevel = level }
}

// WithVerboseOutput sets the writer receiving search diagnostics.
// A nil writer disables diagnostics regardless of the level.
func WithVerboseOutput(w io.Writer) GraphOption {
	return func(g *Graph) { g.verboseOut = w }
}

// WithFailureRecording toggles failure recording (default on).
func WithFailureRecording(active bool) GraphOption {
	return func(g *Graph) { g.failureRecording = active }
}

// WithComponentRecursion toggles component recursion (default on).
func WithComponentRecursion(active bool) GraphOption {
	return func(g *Graph) { g.componentRecursion = active }
}

// WithLongPrune toggles long prune (default on).
func WithLongPrune(active bool) GraphOption {
	return func(g *Graph) { g.longPrune = active }
}

// WithSplittingHeuristic selects the cell-splitting heuristic (default HeuristicFSM).
func WithSplittingHeuristic(h SplittingHeuristic) GraphOption {
	return func(g *Graph) { g.heuristic = h }
}

// Graph is a vertex-colored simple undirected graph on vertices 0..N-1.
//
// Adjacency rows are kept sorted and duplicate-free, so Neighbors, Edges,
// Cmp and Hash are deterministic. mu guards colors, adjacency and flags;
// searching is set for the lifetime of a search (see AcquireSearch).
type Graph struct {
	mu sync.RWMutex

	// Storage
	colors []uint32 // colors[v] is the color of vertex v
	adj    [][]int  // adj[v] is the sorted neighbor row of v
	nedges int      // number of undirected edges

	// Search flags, read once when a search starts.
	verboseLevel       int
	verboseOut         io.Writer
	failureRecording   bool
	componentRecursion bool
	longPrune          bool
	heuristic          SplittingHeuristic

	searching atomic.Bool
}

// NewGraph creates a graph with n vertices of color 0 and no edges,
// then applies opts in order. Negative n is treated as 0.
//
// Defaults: verbose level 0 writing to os.Stdout, failure recording,
// component recursion and long prune enabled, heuristic HeuristicFSM.
//
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{
		colors:             make([]uint32, n),
		adj:                make([][]int, n),
		verboseOut:         os.Stdout,
		failureRecording:   true,
		componentRecursion: true,
		longPrune:          true,
		heuristic:          HeuristicFSM,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Edge is an undirected edge with U < V.
type Edge struct {
	U int
	V int
}
