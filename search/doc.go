// SPDX-License-Identifier: MIT

// Package search computes automorphism group generators and canonical
// labelings of colored graphs by individualization-refinement.
//
// What
//
//   - FindAutomorphisms explores the search tree of a core.Graph and reports
//     a generating set of its automorphism group together with the exact
//     group order.
//   - CanonicalForm does the same and also returns a labeling lab such that
//     g.Permute(lab) is the canonical representative of the isomorphism
//     class of g under the graph's current flags.
//
// How
//
//   - The root is the equitable refinement of the color partition. A node
//     whose partition is not discrete picks a target cell with the graph's
//     splitting heuristic and gets one child per vertex of that cell.
//   - Nodes live on an explicit frame stack (partition snapshot plus branch
//     cursor), so memory is bounded by tree depth and cancellation unwinds
//     at any depth.
//   - Every node carries an invariant trace of its refinement. Nodes whose
//     trace sequence cannot lead to the first leaf or to a better canonical
//     leaf are cut (bad nodes).
//   - Leaves that produce the same relabeled graph as the first or the best
//     leaf yield automorphisms; the orbits they induce prune first-path
//     children (orbit pruning, failure recording), and a bounded window of
//     them prunes children at any node whose prefix they fix (long prune).
//     Other nodes explore one vertex per orbit of the generators that fix
//     their prefix.
//   - With component recursion, disconnected graphs are split into their
//     connected components, each solved independently, and recombined.
//
// Callbacks
//
//	WithReport receives each new generator in a borrowed buffer, valid only
//	during the call. WithTerminate is polled before each node; a true result
//	stops the search with Stats.Complete == false and no error. Calling back
//	into the engine or mutating the graph from a callback fails with
//	core.ErrSearchActive.
//
// Concurrency
//
//	A search is single-threaded and synchronous. Independent graphs may be
//	searched concurrently; one graph holds at most one search at a time.
package search
