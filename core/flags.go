// SPDX-License-Identifier: MIT
// File: flags.go
// Role: graph-level search configuration and the search ownership marker.
// Contract:
//   - Flags are read once when a search starts (Flags snapshot).
//   - Any setter called while a search holds the graph returns ErrSearchActive
//     and leaves the flags unchanged, including calls from a report callback.

package core

import (
	"fmt"
	"io"
)

// Flags is an immutable snapshot of the graph-level search configuration.
type Flags struct {
	VerboseLevel       int
	VerboseOutput      io.Writer
	FailureRecording   bool
	ComponentRecursion bool
	LongPrune          bool
	Heuristic          SplittingHeuristic
}

// Flags returns the current configuration.
func (g *Graph) Flags() Flags {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return Flags{
		VerboseLevel:       g.verboseLevel,
		VerboseOutput:      g.verboseOut,
		FailureRecording:   g.failureRecording,
		ComponentRecursion: g.componentRecursion,
		LongPrune:          g.longPrune,
		Heuristic:          g.heuristic,
	}
}

func (g *Graph) setFlag(method string, set func()) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.searching.Load() {
		return fmt.Errorf("%s: %w", method, ErrSearchActive)
	}
	set()

	return nil
}

// SetVerboseLevel sets the diagnostic level; 0 means no output.
func (g *Graph) SetVerboseLevel(level int) error {
	return g.setFlag("SetVerboseLevel", func() { g.verboseLevel = level })
}

// SetVerboseOutput sets the diagnostic writer; nil disables output.
func (g *Graph) SetVerboseOutput(w io.Writer) error {
	return g.setFlag("SetVerboseOutput", func() { g.verboseOut = w })
}

// SetFailureRecording activates or deactivates failure recording.
func (g *Graph) SetFailureRecording(active bool) error {
	return g.setFlag("SetFailureRecording", func() { g.failureRecording = active })
}

// SetComponentRecursion activates or deactivates component recursion.
// The choice affects canonical labelings.
func (g *Graph) SetComponentRecursion(active bool) error {
	return g.setFlag("SetComponentRecursion", func() { g.componentRecursion = active })
}

// SetLongPrune activates or deactivates long prune.
// The choice affects canonical labelings.
func (g *Graph) SetLongPrune(active bool) error {
	return g.setFlag("SetLongPrune", func() { g.longPrune = active })
}

// SetSplittingHeuristic selects the splitting heuristic.
func (g *Graph) SetSplittingHeuristic(h SplittingHeuristic) error {
	if !h.Valid() {
		return fmt.Errorf("SetSplittingHeuristic: %d: %w", int(h), ErrInvalidHeuristic)
	}

	return g.setFlag("SetSplittingHeuristic", func() { g.heuristic = h })
}

// AcquireSearch marks the graph as owned by a running search. It fails with
// ErrSearchActive when another search (or a nested call from a report
// callback) already holds it. Every successful call must be paired with
// ReleaseSearch. The marker is set under the write lock, so a mutator
// either completes before the search starts or sees ErrSearchActive.
func (g *Graph) AcquireSearch() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.searching.CompareAndSwap(false, true) {
		return fmt.Errorf("AcquireSearch: %w", ErrSearchActive)
	}

	return nil
}

// ReleaseSearch ends the ownership taken by AcquireSearch.
func (g *Graph) ReleaseSearch() {
	g.searching.Store(false)
}

// Searching reports whether a search currently holds the graph.
func (g *Graph) Searching() bool {
	return g.searching.Load()
}
