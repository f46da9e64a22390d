// SPDX-License-Identifier: MIT

// Package bignum implements the exact group-order accumulator: a limb-based
// unsigned integer that starts at 1, is multiplied in place by orbit sizes
// and renders to a decimal string for exact comparison.
package bignum
