// SPDX-License-Identifier: MIT
// File: prune.go
// Role: failure recording and long prune.
//
// Failure recording:
//   - A child of a first-path node whose subtree was exhausted without
//     producing an automorphism is recorded as failed at that node.
//   - Later children in the same orbit as a failed child (under the
//     generators found so far, all of which fix the first-path prefix) have
//     equivalent subtrees and are skipped.
//
// Long prune:
//   - The fixed points and the minimum cycle representatives of the last
//     `window` generators are kept as bit sets.
//   - At a node whose individualized vertices are all fixed by a stored
//     generator, a child that is not the smallest vertex of its cycle under
//     that generator is skipped: the generator maps the smaller vertex's
//     subtree onto it. Skips only ever point to smaller vertices, so the
//     least vertex of each combined orbit is always explored.

package search

import (
	"github.com/emirpasic/gods/queues/circularbuffer"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/soniakeys/bits"
)

// failureRecord holds the failed children of one first-path node.
type failureRecord struct {
	set *hashset.Set
}

func (r *failureRecord) reset() {
	if r.set == nil {
		r.set = hashset.New()
		return
	}
	r.set.Clear()
}

func (r *failureRecord) add(v int) { r.set.Add(v) }

// covers reports whether w shares an orbit with a recorded failure.
func (r *failureRecord) covers(orb *orbits, w int) bool {
	if r.set == nil || r.set.Empty() {
		return false
	}
	for _, it := range r.set.Values() {
		if orb.same(it.(int), w) {
			return true
		}
	}

	return false
}

// storedAut is the long-prune view of one generator.
type storedAut struct {
	fix bits.Bits // fixed points
	mcr bits.Bits // minimum cycle representatives, fixed points included
}

func newStoredAut(aut []int) *storedAut {
	n := len(aut)
	s := &storedAut{fix: bits.New(n), mcr: bits.New(n)}
	seen := bits.New(n)
	for v := 0; v < n; v++ {
		if seen.Bit(v) == 1 {
			continue
		}
		if aut[v] == v {
			s.fix.SetBit(v, 1)
		}
		// v is the least vertex of its cycle.
		s.mcr.SetBit(v, 1)
		for w := v; seen.Bit(w) == 0; w = aut[w] {
			seen.SetBit(w, 1)
		}
	}

	return s
}

// fixesAll reports whether every vertex of prefix is a fixed point.
func (s *storedAut) fixesAll(prefix []int) bool {
	for _, v := range prefix {
		if s.fix.Bit(v) == 0 {
			return false
		}
	}

	return true
}

// longPrune is the bounded window of stored generators.
type longPrune struct {
	window *circularbuffer.Queue
	total  int // generators stored since the start of the search
}

func newLongPrune(size int) *longPrune {
	return &longPrune{window: circularbuffer.New(size)}
}

// store adds aut to the window, evicting the oldest entry when full.
func (lp *longPrune) store(aut []int) {
	lp.window.Enqueue(newStoredAut(aut))
	lp.total++
}

// applicable returns the stored generators fixing every vertex of prefix.
func (lp *longPrune) applicable(prefix []int, dst []*storedAut) []*storedAut {
	dst = dst[:0]
	for _, it := range lp.window.Values() {
		if s := it.(*storedAut); s.fixesAll(prefix) {
			dst = append(dst, s)
		}
	}

	return dst
}

// prunes reports whether w is not a cycle minimum of some applicable generator.
func prunes(applicable []*storedAut, w int) bool {
	for _, s := range applicable {
		if s.mcr.Bit(w) == 0 {
			return true
		}
	}

	return false
}
