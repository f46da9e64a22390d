// SPDX-License-Identifier: MIT
// File: certificate.go
// Role: the relabeled graph of a leaf in a form that compares quickly.
//
// A certificate of labeling lab lists, by new position, the colors, the
// degrees and the sorted neighbor rows of g.Permute(lab). Its order agrees
// with core.Graph.Cmp on the permuted graphs.

package search

import "sort"

type certificate struct {
	colors []uint32
	deg    []int
	off    []int
	rows   []int
}

func (c *certificate) build(adj [][]int, colors []uint32, lab []int) {
	n := len(lab)
	c.colors = resizeU32(c.colors, n)
	c.deg = resizeInt(c.deg, n)
	c.off = resizeInt(c.off, n+1)
	for v, p := range lab {
		c.colors[p] = colors[v]
		c.deg[p] = len(adj[v])
	}
	c.off[0] = 0
	for p := 0; p < n; p++ {
		c.off[p+1] = c.off[p] + c.deg[p]
	}
	c.rows = resizeInt(c.rows, c.off[n])
	for v, p := range lab {
		row := c.rows[c.off[p]:c.off[p+1]]
		for i, w := range adj[v] {
			row[i] = lab[w]
		}
		sort.Ints(row)
	}
}

func (c *certificate) cmp(o *certificate) int {
	if d := len(c.colors) - len(o.colors); d != 0 {
		return sign(d)
	}
	for i, x := range c.colors {
		if y := o.colors[i]; x != y {
			if x < y {
				return -1
			}
			return 1
		}
	}
	for i, x := range c.deg {
		if y := o.deg[i]; x != y {
			return sign(x - y)
		}
	}
	for i, x := range c.rows {
		if y := o.rows[i]; x != y {
			return sign(x - y)
		}
	}

	return 0
}

func (c *certificate) copyFrom(o *certificate) {
	c.colors = append(c.colors[:0], o.colors...)
	c.deg = append(c.deg[:0], o.deg...)
	c.off = append(c.off[:0], o.off...)
	c.rows = append(c.rows[:0], o.rows...)
}

func sign(d int) int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	}

	return 0
}

func resizeInt(s []int, n int) []int {
	if cap(s) < n {
		return make([]int, n)
	}

	return s[:n]
}

func resizeU32(s []uint32, n int) []uint32 {
	if cap(s) < n {
		return make([]uint32, n)
	}

	return s[:n]
}
