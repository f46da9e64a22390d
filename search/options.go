// SPDX-License-Identifier: MIT
// File: options.go
// Role: functional options of FindAutomorphisms and CanonicalForm.

package search

import (
	"context"
	"fmt"
)

// WithReport installs a callback invoked synchronously for every new
// generator. aut is borrowed: it is valid only until fn returns.
// Panics if fn is nil.
func WithReport(fn func(n int, aut []int)) Option {
	if fn == nil {
		panic("search: WithReport(nil)")
	}

	return func(o *options) { o.report = fn }
}

// WithTerminate installs a predicate polled before every search-tree node;
// returning true stops the search. Panics if fn is nil.
func WithTerminate(fn func() bool) Option {
	if fn == nil {
		panic("search: WithTerminate(nil)")
	}

	return func(o *options) { o.terminate = fn }
}

// WithContext stops the search when ctx is done; the call then returns
// ctx.Err() with a partial result. Panics if ctx is nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("search: WithContext(nil)")
	}

	return func(o *options) { o.ctx = ctx }
}

// WithLongPruneWindow sets how many recent generators long prune keeps.
// Values below 1 make the call fail with ErrOptionViolation.
func WithLongPruneWindow(n int) Option {
	return func(o *options) { o.window = n }
}

// WithObserver installs an Observer notified once per call.
func WithObserver(obs Observer) Option {
	return func(o *options) { o.observer = obs }
}

func buildOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.window < 1 {
		return o, fmt.Errorf("WithLongPruneWindow(%d): %w", o.window, ErrOptionViolation)
	}

	return o, nil
}
