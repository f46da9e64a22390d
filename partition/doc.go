// SPDX-License-Identifier: MIT

// Package partition implements ordered vertex partitions and their equitable
// refinement, the building block of individualization-refinement search.
//
// A Partition starts from the color classes of a graph (New), is refined to
// the coarsest equitable partition (RefineAll), and is then repeatedly
// individualized and refined along a search path:
//
//	p, _ := partition.New(n, colors)
//	p.RefineAll(adj)
//	s, _ := p.Individualize(v)
//	trace := p.Refine(adj, s)
//
// Refine returns an xxhash trace of the refinement run. Traces are
// isomorphism invariants: search nodes related by an automorphism produce
// equal traces, which lets the search compare nodes without comparing graphs.
//
// Snapshot/Restore store the cell structure so a search can keep one
// partition per tree level on an explicit stack.
package partition
