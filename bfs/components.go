// SPDX-License-Identifier: MIT
// File: components.go
// Role: connected-component decomposition.
// Determinism:
//   - Components are ordered by their smallest vertex; each is sorted ascending.
// Complexity:
//   - O(N + E) time, O(N) bits for the shared visited set.

package bfs

import (
	"sort"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/lvlsym/core"
)

// sweep holds the queue and visited set shared by every component walk.
type sweep struct {
	graph   *core.Graph
	visited bits.Bits
	queue   []int
}

// walk collects the component of root in visit order.
func (s *sweep) walk(root int) ([]int, error) {
	s.queue = append(s.queue[:0], root)
	s.visited.SetBit(root, 1)
	for head := 0; head < len(s.queue); head++ {
		nbrs, err := s.graph.Neighbors(s.queue[head])
		if err != nil {
			return nil, err
		}
		for _, w := range nbrs {
			if s.visited.Bit(w) == 0 {
				s.visited.SetBit(w, 1)
				s.queue = append(s.queue, w)
			}
		}
	}

	return append([]int(nil), s.queue...), nil
}

// Components returns the vertex sets of the connected components of g.
// Isolated vertices form singleton components.
func Components(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.NumVertices()
	s := &sweep{graph: g, visited: bits.New(n), queue: make([]int, 0, n)}
	var comps [][]int
	for v := 0; v < n; v++ {
		if s.visited.Bit(v) == 1 {
			continue
		}
		comp, err := s.walk(v)
		if err != nil {
			return nil, err
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}
