// SPDX-License-Identifier: MIT
// File: orbits.go
// Role: union-find over vertices tracking the orbits of the generators found so far.

package search

type orbits struct {
	parent []int
	size   []int
	count  int
}

func newOrbits(n int) *orbits {
	o := &orbits{parent: make([]int, n), size: make([]int, n)}
	o.reset()

	return o
}

// reset returns every vertex to a singleton orbit.
func (o *orbits) reset() {
	for v := range o.parent {
		o.parent[v] = v
		o.size[v] = 1
	}
	o.count = len(o.parent)
}

func (o *orbits) find(v int) int {
	for o.parent[v] != v {
		o.parent[v] = o.parent[o.parent[v]]
		v = o.parent[v]
	}

	return v
}

func (o *orbits) same(a, b int) bool { return o.find(a) == o.find(b) }

// sizeOf returns the size of the orbit containing v.
func (o *orbits) sizeOf(v int) int { return o.size[o.find(v)] }

func (o *orbits) union(a, b int) bool {
	ra, rb := o.find(a), o.find(b)
	if ra == rb {
		return false
	}
	if o.size[ra] < o.size[rb] {
		ra, rb = rb, ra
	}
	o.parent[rb] = ra
	o.size[ra] += o.size[rb]
	o.count--

	return true
}

// merge joins v and aut[v] for every v and reports whether any two orbits
// were joined.
func (o *orbits) merge(aut []int) bool {
	joined := false
	for v, w := range aut {
		if o.union(v, w) {
			joined = true
		}
	}

	return joined
}
