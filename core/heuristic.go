// SPDX-License-Identifier: MIT
// File: heuristic.go
// Role: closed enumeration of cell-splitting heuristics and their names.

package core

import (
	"fmt"
	"strings"
)

// SplittingHeuristic selects the non-singleton cell a search node branches on.
// The choice changes canonical labelings (not the automorphism group), so
// graphs compared through canonical forms must use the same heuristic.
type SplittingHeuristic int

const (
	// HeuristicF picks the first non-singleton cell.
	HeuristicF SplittingHeuristic = iota
	// HeuristicFS picks the first smallest non-singleton cell.
	HeuristicFS
	// HeuristicFL picks the first largest non-singleton cell.
	HeuristicFL
	// HeuristicFM picks the first maximally non-trivially connected non-singleton cell.
	HeuristicFM
	// HeuristicFSM picks the first smallest maximally non-trivially connected non-singleton cell.
	HeuristicFSM
	// HeuristicFLM picks the first largest maximally non-trivially connected non-singleton cell.
	HeuristicFLM
)

var heuristicNames = [...]string{
	HeuristicF:   "f",
	HeuristicFS:  "fs",
	HeuristicFL:  "fl",
	HeuristicFM:  "fm",
	HeuristicFSM: "fsm",
	HeuristicFLM: "flm",
}

// String returns the short name used by the CLI and configuration files.
func (h SplittingHeuristic) String() string {
	if !h.Valid() {
		return fmt.Sprintf("SplittingHeuristic(%d)", int(h))
	}

	return heuristicNames[h]
}

// Valid reports whether h is one of the six defined heuristics.
func (h SplittingHeuristic) Valid() bool {
	return h >= HeuristicF && h <= HeuristicFLM
}

// ParseSplittingHeuristic maps "f", "fs", "fl", "fm", "fsm" or "flm"
// (optionally prefixed with "shs_") to a SplittingHeuristic.
func ParseSplittingHeuristic(name string) (SplittingHeuristic, error) {
	key := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "shs_")
	for h, s := range heuristicNames {
		if s == key {
			return SplittingHeuristic(h), nil
		}
	}

	return HeuristicF, fmt.Errorf("core: %q: %w", name, ErrInvalidHeuristic)
}
