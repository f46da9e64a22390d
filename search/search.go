// SPDX-License-Identifier: MIT
// File: search.go
// Role: public entry points, per-call session and verbose logger.

package search

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlsym/bfs"
	"github.com/katalvlaran/lvlsym/core"
)

// FindAutomorphisms computes a generating set of the automorphism group of g
// and its exact order, reporting each generator through WithReport.
//
// stats is reset first; a nil stats is allowed. The graph's flags are read
// once; mutating g or starting another search on it before the call returns
// fails with core.ErrSearchActive.
func FindAutomorphisms(g *core.Graph, stats *Stats, opts ...Option) error {
	_, err := solve(g, stats, false, opts)

	return err
}

// CanonicalForm returns lab such that g.Permute(lab) is the canonical
// representative of g's isomorphism class under g's flags. Generators are
// found and reported along the way exactly as in FindAutomorphisms.
//
// When the search is stopped early the best labeling seen so far is
// returned (the identity if no leaf was reached) and stats.Complete is false.
func CanonicalForm(g *core.Graph, stats *Stats, opts ...Option) ([]int, error) {
	return solve(g, stats, true, opts)
}

type session struct {
	opts   options
	flags  core.Flags
	canon  bool
	log    *logrus.Logger
	report func(aut []int)
}

func solve(g *core.Graph, stats *Stats, canon bool, opts []Option) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		stats = &Stats{}
	}
	if err := g.AcquireSearch(); err != nil {
		return nil, err
	}
	defer g.ReleaseSearch()

	start := time.Now()
	stats.Reset()
	s := &session{opts: o, flags: g.Flags(), canon: canon}
	s.log = newLogger(s.flags)
	s.report = func(aut []int) {
		if o.report != nil {
			o.report(len(aut), aut)
		}
	}

	var comps [][]int
	if s.flags.ComponentRecursion {
		if comps, err = bfs.Components(g); err != nil {
			return nil, err
		}
	}
	var lab []int
	if len(comps) > 1 {
		lab, err = s.components(g, comps, stats)
	} else {
		e := newEngine(newProblem(g), s.flags, canon, &s.opts, s.log, stats)
		e.report = s.report
		err = e.run()
		lab = e.labeling()
	}
	stats.GroupSizeApprox = stats.GroupSize.Float64()

	mode := ModeAutomorphisms
	if canon {
		mode = ModeCanonical
	}
	s.log.WithFields(logrus.Fields{
		"mode":       mode,
		"nodes":      stats.Nodes,
		"leaves":     stats.LeafNodes,
		"generators": stats.Generators,
		"aut":        stats.GroupSize.String(),
		"complete":   stats.Complete,
	}).Info("search done")
	if o.observer != nil {
		o.observer.ObserveSearch(mode, stats, time.Since(start))
	}

	return lab, err
}

// newLogger builds the per-search diagnostics logger: level 0 or a nil
// writer is silent, 1 logs Info, 2 and above log Debug.
func newLogger(f core.Flags) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if f.VerboseLevel <= 0 || f.VerboseOutput == nil {
		l.SetOutput(io.Discard)
		l.SetLevel(logrus.PanicLevel)

		return l
	}
	l.SetOutput(f.VerboseOutput)
	if f.VerboseLevel == 1 {
		l.SetLevel(logrus.InfoLevel)
	} else {
		l.SetLevel(logrus.DebugLevel)
	}

	return l
}
