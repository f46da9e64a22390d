// SPDX-License-Identifier: MIT
// File: types.go
// Role: Stats, Observer, Option and the sentinel errors of the search.

package search

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/lvlsym/bignum"
)

// Sentinel errors for the search entry points.
var (
	// ErrGraphNil indicates a nil *core.Graph.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrOptionViolation indicates an invalid Option argument.
	ErrOptionViolation = errors.New("search: invalid option")
)

// Stats collects the counters of one search call. It is reset at the start
// of every call and read by the caller afterwards.
type Stats struct {
	// GroupSize is the exact order of the automorphism group found so far.
	GroupSize *bignum.BigNum
	// GroupSizeApprox is GroupSize as a float64 (+Inf on overflow).
	GroupSizeApprox float64

	Nodes        uint64 // search-tree nodes created
	LeafNodes    uint64 // nodes with a discrete partition
	BadNodes     uint64 // nodes cut by a trace mismatch
	CanonUpdates uint64 // times a new best canonical leaf was recorded
	Generators   uint64 // automorphisms reported
	MaxLevel     int    // deepest node, counted in individualized vertices

	FailurePrunes uint64 // children skipped by failure recording
	LongPrunes    uint64 // children skipped by long prune

	// Complete is false when the search was stopped by WithTerminate or a
	// cancelled context; the other fields then describe a partial search.
	Complete bool
}

// Observer receives a summary after every search call.
type Observer interface {
	ObserveSearch(mode string, stats *Stats, elapsed time.Duration)
}

// Search modes passed to Observer.
const (
	ModeAutomorphisms = "automorphisms"
	ModeCanonical     = "canonical"
)

// DefaultLongPruneWindow is the number of generators kept for long prune.
const DefaultLongPruneWindow = 100

// Option configures one search call.
type Option func(o *options)

type options struct {
	ctx       context.Context
	report    func(n int, aut []int)
	terminate func() bool
	window    int
	observer  Observer
}

func defaultOptions() options {
	return options{ctx: context.Background(), window: DefaultLongPruneWindow}
}
