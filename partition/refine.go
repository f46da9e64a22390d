// SPDX-License-Identifier: MIT
// File: refine.go
// Role: equitable refinement (one-dimensional color refinement).
//
// Implementation:
//   - Stage 1: queue the seed cells as splitters.
//   - Stage 2: pop a splitter W; count, for every vertex, its neighbors in W.
//   - Stage 3: visit touched cells by increasing start; split each cell whose
//     counts differ into fragments ordered by increasing count.
//   - Stage 4: queue the fragments. When the split cell was not queued, the
//     first largest fragment is left out, since counts into it follow from
//     counts into the other fragments and into the whole cell.
//   - Stage 5: repeat until the queue is empty; the result is equitable.
//
// Trace:
//   - Every splitter, split and touched cell is appended to a byte trace and
//     hashed with xxhash. The trace is an isomorphism invariant of the run:
//     equivalent search nodes produce equal traces.
//
// Complexity:
//   - O((N + E) log N) splitter work in the Hopcroft style, plus cell scans.

package partition

import (
	"encoding/binary"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// RefineAll refines p to the coarsest equitable partition finer than p,
// using every cell as an initial splitter.
func (p *Partition) RefineAll(adj [][]int) uint64 {
	return p.Refine(adj, p.Cells()...)
}

// Refine refines p with the given cells as initial splitters and returns the
// invariant trace hash. adj[v] lists the neighbors of v.
func (p *Partition) Refine(adj [][]int, seeds ...int) uint64 {
	p.trace = p.trace[:0]
	p.queue = p.queue[:0]
	for _, s := range seeds {
		p.enqueue(s)
	}

	for head := 0; head < len(p.queue); head++ {
		w := p.queue[head]
		p.inQueue[w] = false
		p.split(adj, w)
		if p.Discrete() {
			break
		}
	}
	for _, s := range p.queue {
		p.inQueue[s] = false
	}
	p.queue = p.queue[:0]
	p.emit(uint64(p.ncells))

	return xxhash.Sum64(p.trace)
}

func (p *Partition) enqueue(s int) {
	if !p.inQueue[s] {
		p.inQueue[s] = true
		p.queue = append(p.queue, s)
	}
}

func (p *Partition) emit(vals ...uint64) {
	for _, v := range vals {
		p.trace = binary.LittleEndian.AppendUint64(p.trace, v)
	}
}

// split processes one splitter cell w.
func (p *Partition) split(adj [][]int, w int) {
	wsize := p.cellSize[w]
	p.emit(uint64(w), uint64(wsize))

	// Stage 2: neighbor counts into W.
	p.touched = p.touched[:0]
	for i := w; i < w+wsize; i++ {
		for _, y := range adj[p.elems[i]] {
			if p.count[y] == 0 {
				c := p.cellOf[y]
				if p.hits[c] == 0 {
					p.touched = append(p.touched, c)
				}
				p.hits[c]++
			}
			p.count[y]++
		}
	}

	// Stage 3: split touched cells by increasing start.
	sort.Ints(p.touched)
	for _, c := range p.touched {
		p.splitCell(c)
	}

	// reset scratch
	for i := w; i < w+wsize; i++ {
		for _, y := range adj[p.elems[i]] {
			p.count[y] = 0
		}
	}
	for _, c := range p.touched {
		p.hits[c] = 0
	}
}

// splitCell splits the cell at c by the counts gathered for the current splitter.
func (p *Partition) splitCell(c int) {
	size := p.cellSize[c]
	cell := p.elems[c : c+size]
	if size == 1 {
		p.emit(uint64(c), uint64(p.count[cell[0]]))
		return
	}
	uniform := p.hits[c] == size
	if uniform {
		first := p.count[cell[0]]
		for _, v := range cell[1:] {
			if p.count[v] != first {
				uniform = false
				break
			}
		}
		if uniform {
			p.emit(uint64(c), uint64(first))
			return
		}
	}

	// Fragments ordered by increasing count, stable inside a fragment.
	sort.SliceStable(cell, func(i, j int) bool { return p.count[cell[i]] < p.count[cell[j]] })
	wasQueued := p.inQueue[c]

	var (
		starts  []int
		largest = -1
		bestLen = 0
		start   = c
	)
	for i := 0; i <= size; i++ {
		if i < size {
			p.pos[cell[i]] = c + i
		}
		if i == size || (i > 0 && p.count[cell[i]] != p.count[cell[i-1]]) {
			fragLen := c + i - start
			p.cellSize[start] = fragLen
			for k := start; k < c+i; k++ {
				p.cellOf[p.elems[k]] = start
			}
			p.emit(uint64(start), uint64(fragLen), uint64(p.count[p.elems[start]]))
			starts = append(starts, start)
			if fragLen > bestLen {
				bestLen, largest = fragLen, start
			}
			start = c + i
		}
	}
	p.ncells += len(starts) - 1

	// Stage 4: queue fragments.
	for _, s := range starts {
		if wasQueued || s != largest {
			p.enqueue(s)
		}
	}
}
