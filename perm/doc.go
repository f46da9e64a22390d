// SPDX-License-Identifier: MIT

// Package perm provides the permutation helpers shared by core and search:
// boundary validation, identity/inverse/composition and the cycle notation
// used when printing automorphism generators.
//
//	p := []int{1, 0, 3, 4, 2}
//	perm.Format(p) // "(0,1)(2,3,4)"
package perm
