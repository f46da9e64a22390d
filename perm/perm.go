// SPDX-License-Identifier: MIT
// Package: lvlsym/perm
//
// perm.go - permutations of [0,n) as plain []int slices.
//
// Contract:
//   • A permutation p maps vertex v to p[v]; len(p) is its degree n.
//   • Validate is the single boundary check; every other helper assumes
//     its input already passed it and never panics on valid input.
//   • Compose(a, b) applies a first, then b: Compose(a,b)[v] = b[a[v]].
//
// Complexity:
//   • All helpers run in O(n) time; Format and Fprint in O(n) plus output size.

package perm

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInvalidPermutation indicates a slice that is not a bijection on [0,n).
var ErrInvalidPermutation = errors.New("perm: not a bijection on [0,n)")

// Validate reports whether p is a permutation of degree n.
// The returned error wraps ErrInvalidPermutation and names the first defect.
func Validate(p []int, n int) error {
	if len(p) != n {
		return fmt.Errorf("perm: length %d, want %d: %w", len(p), n, ErrInvalidPermutation)
	}
	seen := make([]bool, n)
	for i, v := range p {
		if v < 0 || v >= n {
			return fmt.Errorf("perm: image %d of %d out of range: %w", v, i, ErrInvalidPermutation)
		}
		if seen[v] {
			return fmt.Errorf("perm: image %d repeated at %d: %w", v, i, ErrInvalidPermutation)
		}
		seen[v] = true
	}

	return nil
}

// Identity returns the identity permutation of degree n.
func Identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// IsIdentity reports whether p fixes every point.
func IsIdentity(p []int) bool {
	for i, v := range p {
		if v != i {
			return false
		}
	}

	return true
}

// Inverse returns q with q[p[v]] = v.
func Inverse(p []int) []int {
	q := make([]int, len(p))
	for v, img := range p {
		q[img] = v
	}

	return q
}

// Compose returns the permutation that applies a first and then b.
// a and b must have the same degree.
func Compose(a, b []int) []int {
	c := make([]int, len(a))
	for v, img := range a {
		c[v] = b[img]
	}

	return c
}

// Support returns the points moved by p in increasing order.
func Support(p []int) []int {
	var moved []int
	for v, img := range p {
		if v != img {
			moved = append(moved, v)
		}
	}

	return moved
}

// Cycles returns the non-trivial cycles of p. Each cycle starts at its
// smallest point and cycles are ordered by that point.
func Cycles(p []int) [][]int {
	var (
		out  [][]int
		seen = make([]bool, len(p))
	)
	for start := range p {
		if seen[start] || p[start] == start {
			seen[start] = true
			continue
		}
		var cyc []int
		for v := start; !seen[v]; v = p[v] {
			seen[v] = true
			cyc = append(cyc, v)
		}
		out = append(out, cyc)
	}

	return out
}

// Format renders p in cycle notation, e.g. "(0,1)(2,3,4)".
// The identity renders as "()".
func Format(p []int) string {
	var sb strings.Builder
	_ = write(&sb, p)

	return sb.String()
}

// Fprint writes the cycle notation of p to w.
func Fprint(w io.Writer, p []int) error {
	return write(w, p)
}

func write(w io.Writer, p []int) error {
	cycles := Cycles(p)
	if len(cycles) == 0 {
		_, err := io.WriteString(w, "()")
		return err
	}
	buf := make([]byte, 0, 64)
	for _, cyc := range cycles {
		buf = append(buf[:0], '(')
		for i, v := range cyc {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = strconv.AppendInt(buf, int64(v), 10)
		}
		buf = append(buf, ')')
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}

	return nil
}
