// SPDX-License-Identifier: MIT
// File: heuristic.go
// Role: target cell selection for the six splitting heuristics.
//
// "Connected" below means maximally non-trivially connected: the score of a
// non-singleton cell C is the number of non-singleton cells D with
// 0 < |N(x) ∩ D| < |D| for the first vertex x of C. In an equitable
// partition the count is the same for every x in C. Ties keep the first cell.

package search

import (
	"github.com/katalvlaran/lvlsym/core"
	"github.com/katalvlaran/lvlsym/partition"
)

// cellSelector picks target cells and owns the scratch for scoring.
type cellSelector struct {
	heuristic core.SplittingHeuristic
	adj       [][]int
	hits      []int // cell start -> neighbors of x in the cell
	touched   []int
}

func newCellSelector(h core.SplittingHeuristic, adj [][]int) *cellSelector {
	return &cellSelector{heuristic: h, adj: adj, hits: make([]int, len(adj))}
}

// selectCell returns the start of the target cell of a non-discrete p.
func (cs *cellSelector) selectCell(p *partition.Partition) int {
	best, bestSize, bestScore := -1, 0, -1
	for s := 0; s < p.Len(); s = p.NextCell(s) {
		size := p.CellSize(s)
		if size == 1 {
			continue
		}
		switch cs.heuristic {
		case core.HeuristicFS:
			if best < 0 || size < bestSize {
				best, bestSize = s, size
			}
		case core.HeuristicFL:
			if size > bestSize {
				best, bestSize = s, size
			}
		case core.HeuristicFM, core.HeuristicFSM, core.HeuristicFLM:
			score := cs.score(p, s)
			if score > bestScore || (score == bestScore && cs.preferSize(size, bestSize)) {
				best, bestSize, bestScore = s, size, score
			}
		default:
			return s
		}
	}

	return best
}

func (cs *cellSelector) preferSize(size, bestSize int) bool {
	switch cs.heuristic {
	case core.HeuristicFSM:
		return size < bestSize
	case core.HeuristicFLM:
		return size > bestSize
	}

	return false
}

// score counts the non-singleton cells non-trivially connected to cell s.
func (cs *cellSelector) score(p *partition.Partition, s int) int {
	x := p.Cell(s)[0]
	cs.touched = cs.touched[:0]
	for _, y := range cs.adj[x] {
		c := p.CellOf(y)
		if p.CellSize(c) == 1 {
			continue
		}
		if cs.hits[c] == 0 {
			cs.touched = append(cs.touched, c)
		}
		cs.hits[c]++
	}
	score := 0
	for _, c := range cs.touched {
		if cs.hits[c] < p.CellSize(c) {
			score++
		}
		cs.hits[c] = 0
	}

	return score
}
