// SPDX-License-Identifier: MIT
// File: components.go
// Role: component recursion.
//
// Contract:
//   - Each connected component is solved on its own induced subgraph.
//   - Component generators are lifted to the whole vertex set and reported.
//   - Components with equal canonical graphs form a class; consecutive
//     members of a class are swapped by an extra generator, so a class of
//     m members contributes m! to the group order.
//   - The canonical labeling lists the classes by increasing canonical graph
//     (core.Graph.Cmp), each component occupying a consecutive block.
//   - A stopped search returns the classes solved so far, then the stopped
//     component under its best leaf, then the untouched components in
//     vertex order.

package search

import (
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/lvlsym/core"
	"github.com/katalvlaran/lvlsym/perm"
)

// solvedComponent is one component after its own canonical search.
type solvedComponent struct {
	vertices []int // sorted vertices of g
	lab      []int // index in vertices -> canonical position in the component
	inv      []int // canonical position -> index in vertices
}

func byCanonicalGraph(a, b interface{}) int {
	return a.(*core.Graph).Cmp(b.(*core.Graph))
}

func (s *session) components(g *core.Graph, comps [][]int, stats *Stats) ([]int, error) {
	n := g.NumVertices()
	lifted := make([]int, n)
	classes := redblacktree.NewWith(byCanonicalGraph)

	for k, comp := range comps {
		sub, err := g.InducedSubgraph(comp)
		if err != nil {
			return perm.Identity(n), err
		}
		var cs Stats
		cs.Reset()
		e := newEngine(newProblem(sub), s.flags, true, &s.opts, s.log, &cs)
		e.report = func(aut []int) {
			resetIdentity(lifted)
			for i, w := range aut {
				lifted[comp[i]] = comp[w]
			}
			s.report(lifted)
		}
		err = e.run()
		stats.merge(&cs)
		stats.GroupSize.MultiplyBig(cs.GroupSize)
		if err != nil || !cs.Complete {
			return partialLabeling(n, classes, comp, e.labeling(), comps[k+1:]), err
		}

		lab := e.labeling()
		cg, err := sub.Permute(lab)
		if err != nil {
			return perm.Identity(n), err
		}
		sc := &solvedComponent{vertices: comp, lab: lab, inv: perm.Inverse(lab)}
		if members, found := classes.Get(cg); found {
			classes.Put(cg, append(members.([]*solvedComponent), sc))
		} else {
			classes.Put(cg, []*solvedComponent{sc})
		}
	}

	canon := make([]int, n)
	placeClasses(canon, classes, func(members []*solvedComponent, i int) {
		if i > 0 {
			s.swap(members[i-1], members[i], lifted)
			stats.Generators++
		}
		_ = stats.GroupSize.Multiply(uint64(i + 1))
	})
	stats.Complete = true

	return canon, nil
}

// placeClasses writes the solved components into consecutive blocks of
// canon, calling visit once per member, and returns the next free position.
func placeClasses(canon []int, classes *redblacktree.Tree, visit func(members []*solvedComponent, i int)) int {
	offset := 0
	it := classes.Iterator()
	for it.Next() {
		members := it.Value().([]*solvedComponent)
		for i, sc := range members {
			for j, v := range sc.vertices {
				canon[v] = offset + sc.lab[j]
			}
			offset += len(sc.vertices)
			if visit != nil {
				visit(members, i)
			}
		}
	}

	return offset
}

func partialLabeling(n int, classes *redblacktree.Tree, stopped, lab []int, rest [][]int) []int {
	canon := make([]int, n)
	offset := placeClasses(canon, classes, nil)
	for j, v := range stopped {
		canon[v] = offset + lab[j]
	}
	offset += len(stopped)
	for _, comp := range rest {
		for _, v := range comp {
			canon[v] = offset
			offset++
		}
	}

	return canon
}

// swap reports the involution exchanging two isomorphic components along
// their canonical labelings.
func (s *session) swap(a, b *solvedComponent, buf []int) {
	resetIdentity(buf)
	for j, v := range a.vertices {
		buf[v] = b.vertices[b.inv[a.lab[j]]]
	}
	for j, v := range b.vertices {
		buf[v] = a.vertices[a.inv[b.lab[j]]]
	}
	s.report(buf)
}

func resetIdentity(p []int) {
	for v := range p {
		p[v] = v
	}
}
