// SPDX-License-Identifier: MIT
// Package: lvlsym/builder
//
// impl_random_regular.go - implementation of RandomRegular(n, d) constructor.
//
// Contract:
//   • n ≥ 1, 0 ≤ d < n, n·d even (else ErrTooFewVertices).
//   • Requires cfg.rng (else ErrNeedRandSource).
//   • Stub matching: each vertex contributes d stubs, stubs are shuffled and
//     paired; a matching with a loop or a repeated pair is rejected and
//     retried up to maxStubMatchingAttempts times (then ErrConstructFailed).
//
// Complexity: O(n·d) per attempt.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlsym/core"
)

const (
	methodRandomRegular     = "RandomRegular"
	minRRVertices           = 1
	maxStubMatchingAttempts = 64
)

// RandomRegular returns a Constructor that builds a random d-regular simple graph.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodRandomRegular, n, minRRVertices); err != nil {
			return err
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}

		stubCount := n * d
		stubs := make([]int, 0, stubCount)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}
		rng := cfg.rng
		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simpleMatching(stubs) {
				continue
			}
			base, err := appendVertices(g, cfg, methodRandomRegular, n)
			if err != nil {
				return err
			}
			for i := 0; i < stubCount; i += 2 {
				if err := addEdge(g, methodRandomRegular, base, stubs[i], stubs[i+1]); err != nil {
					return err
				}
			}

			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simpleMatching reports whether consecutive stub pairs form a simple graph.
func simpleMatching(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
