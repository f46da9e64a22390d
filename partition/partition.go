// SPDX-License-Identifier: MIT
// Package: lvlsym/partition
//
// partition.go - ordered cell partitions of [0,n).
//
// Representation:
//   • elems is the vertex order; a cell is a maximal run elems[s:s+size[s]]
//     and is identified by its start position s.
//   • pos is the inverse of elems; cellOf maps a vertex to its cell start.
//   • Cells only ever split. The first fragment of a split keeps the start
//     of the original cell, so a cell identifier is stable until it splits.
//
// Determinism:
//   • Every decision depends on positions, sizes and neighbor counts only,
//     never on vertex numbers, so isomorphic inputs refine identically.

package partition

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotSplittable indicates Individualize on a vertex already in a singleton cell.
var ErrNotSplittable = errors.New("partition: vertex cell is a singleton")

// Partition is an ordered partition of the vertices 0..n-1 together with
// the scratch space used by Refine. It is not safe for concurrent use.
type Partition struct {
	elems    []int // position -> vertex
	pos      []int // vertex -> position
	cellOf   []int // vertex -> cell start
	cellSize []int // cell start -> size; meaningful at cell starts only
	ncells   int

	// refinement scratch
	count   []int  // vertex -> neighbors inside the current splitter
	hits    []int  // cell start -> touched vertices in the current splitter
	touched []int  // cell starts touched by the current splitter
	inQueue []bool // cell start -> queued as splitter
	queue   []int
	trace   []byte
}

// New returns the partition of n vertices whose cells group equal colors,
// ordered by increasing color; inside a cell vertices keep increasing order.
// colors may be nil (a single cell).
func New(n int, colors []uint32) (*Partition, error) {
	if colors != nil && len(colors) != n {
		return nil, fmt.Errorf("partition: %d colors for %d vertices", len(colors), n)
	}
	p := &Partition{
		elems:    make([]int, n),
		pos:      make([]int, n),
		cellOf:   make([]int, n),
		cellSize: make([]int, n),
		count:    make([]int, n),
		hits:     make([]int, n),
		inQueue:  make([]bool, n),
	}
	for v := range p.elems {
		p.elems[v] = v
	}
	if colors != nil {
		sort.SliceStable(p.elems, func(i, j int) bool { return colors[p.elems[i]] < colors[p.elems[j]] })
	}
	start := 0
	for i := 0; i < n; i++ {
		v := p.elems[i]
		p.pos[v] = i
		if i > 0 && colors != nil && colors[v] != colors[p.elems[i-1]] {
			p.cellSize[start] = i - start
			p.ncells++
			start = i
		}
		p.cellOf[v] = start
	}
	if n > 0 {
		p.cellSize[start] = n - start
		p.ncells++
	}

	return p, nil
}

// Len returns the number of vertices.
func (p *Partition) Len() int { return len(p.elems) }

// NumCells returns the number of cells.
func (p *Partition) NumCells() int { return p.ncells }

// Discrete reports whether every cell is a singleton.
func (p *Partition) Discrete() bool { return p.ncells == len(p.elems) }

// CellOf returns the start position of the cell containing v.
func (p *Partition) CellOf(v int) int { return p.cellOf[v] }

// CellSize returns the size of the cell starting at start.
func (p *Partition) CellSize(start int) int { return p.cellSize[start] }

// Cell returns the vertices of the cell starting at start. The slice aliases
// internal storage and is valid until the next mutation.
func (p *Partition) Cell(start int) []int {
	return p.elems[start : start+p.cellSize[start]]
}

// Position returns the position of v in the vertex order.
func (p *Partition) Position(v int) int { return p.pos[v] }

// Elements returns the vertex order. The slice aliases internal storage.
func (p *Partition) Elements() []int { return p.elems }

// Cells returns the start positions of all cells in order.
func (p *Partition) Cells() []int {
	out := make([]int, 0, p.ncells)
	for s := 0; s < len(p.elems); s += p.cellSize[s] {
		out = append(out, s)
	}

	return out
}

// NextCell returns the start of the cell after the one at start, or Len().
func (p *Partition) NextCell(start int) int { return start + p.cellSize[start] }

// Labeling returns lab with lab[v] = position of v. For a discrete
// partition lab is the relabeling that sends the vertex order to 0..n-1.
func (p *Partition) Labeling() []int {
	return append([]int(nil), p.pos...)
}

// Individualize splits v off its cell: v moves to the head of the cell and
// becomes a singleton, the rest keeps the remaining positions. It returns
// the start of the new singleton cell, which is the splitter to refine with.
func (p *Partition) Individualize(v int) (int, error) {
	s := p.cellOf[v]
	size := p.cellSize[s]
	if size < 2 {
		return 0, fmt.Errorf("partition: vertex %d: %w", v, ErrNotSplittable)
	}
	// swap v to the head of its cell
	head := p.elems[s]
	pv := p.pos[v]
	p.elems[s], p.elems[pv] = v, head
	p.pos[v], p.pos[head] = s, pv

	p.cellSize[s] = 1
	p.cellSize[s+1] = size - 1
	for i := s + 1; i < s+size; i++ {
		p.cellOf[p.elems[i]] = s + 1
	}
	p.ncells++

	return s, nil
}

// Snapshot stores the cell structure of a partition for later Restore.
// Buffers are reused across SaveTo calls.
type Snapshot struct {
	elems    []int
	pos      []int
	cellOf   []int
	cellSize []int
	ncells   int
}

// SaveTo copies the cell structure into s.
func (p *Partition) SaveTo(s *Snapshot) {
	s.elems = append(s.elems[:0], p.elems...)
	s.pos = append(s.pos[:0], p.pos...)
	s.cellOf = append(s.cellOf[:0], p.cellOf...)
	s.cellSize = append(s.cellSize[:0], p.cellSize...)
	s.ncells = p.ncells
}

// Restore resets p to the structure saved in s.
func (p *Partition) Restore(s *Snapshot) {
	copy(p.elems, s.elems)
	copy(p.pos, s.pos)
	copy(p.cellOf, s.cellOf)
	copy(p.cellSize, s.cellSize)
	p.ncells = s.ncells
}
