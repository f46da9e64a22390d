// SPDX-License-Identifier: MIT
// Package: lvlsym/bignum
//
// bignum.go - arbitrary-precision unsigned integer for automorphism group orders.
//
// Representation:
//   • Little-endian base-2^32 limbs; the zero value holds 1.
//   • The value is never zero: group orders start at 1 and only grow by
//     multiplication with positive orbit sizes. Multiply(0) is rejected.
//
// Complexity:
//   • Multiply by a word: O(L) for L limbs.
//   • String: O(L^2) (repeated division by 10^9).

package bignum

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrZeroFactor indicates a multiplication by zero.
var ErrZeroFactor = errors.New("bignum: zero factor")

const (
	limbBits = 32
	limbMask = 1<<limbBits - 1
	// chunk is the largest power of ten that fits a limb.
	chunk       = 1_000_000_000
	chunkDigits = 9
)

// BigNum is an owned, mutable unsigned integer.
type BigNum struct {
	limbs []uint32
}

// New returns a BigNum holding 1.
func New() *BigNum {
	return &BigNum{limbs: []uint32{1}}
}

// Assign sets b to x. Assigning 0 is allowed only as a transient value
// before a Multiply; String renders it as "0".
func (b *BigNum) Assign(x uint64) {
	b.limbs = b.limbs[:0]
	if x == 0 {
		b.limbs = append(b.limbs, 0)
		return
	}
	for x > 0 {
		b.limbs = append(b.limbs, uint32(x&limbMask))
		x >>= limbBits
	}
}

// Multiply sets b = b*x in place.
func (b *BigNum) Multiply(x uint64) error {
	if x == 0 {
		return fmt.Errorf("bignum: Multiply: %w", ErrZeroFactor)
	}
	b.init()
	lo, hi := x&limbMask, x>>limbBits
	if hi == 0 {
		b.mulWord(uint32(lo))
		return nil
	}
	// Split the factor: b*x = b*lo + (b*hi << 32).
	high := b.Clone()
	high.mulWord(uint32(hi))
	high.limbs = append([]uint32{0}, high.limbs...)
	b.mulWord(uint32(lo))
	b.add(high)

	return nil
}

// MultiplyBig sets b = b*o in place.
func (b *BigNum) MultiplyBig(o *BigNum) {
	b.init()
	o.init()
	out := make([]uint32, len(b.limbs)+len(o.limbs))
	for i, x := range b.limbs {
		var carry uint64
		for j, y := range o.limbs {
			t := uint64(x)*uint64(y) + uint64(out[i+j]) + carry
			out[i+j] = uint32(t & limbMask)
			carry = t >> limbBits
		}
		out[i+len(o.limbs)] = uint32(carry)
	}
	b.limbs = out
	b.trim()
}

func (b *BigNum) mulWord(x uint32) {
	var carry uint64
	for i, l := range b.limbs {
		t := uint64(l)*uint64(x) + carry
		b.limbs[i] = uint32(t & limbMask)
		carry = t >> limbBits
	}
	if carry > 0 {
		b.limbs = append(b.limbs, uint32(carry))
	}
	b.trim()
}

func (b *BigNum) add(o *BigNum) {
	for len(b.limbs) < len(o.limbs) {
		b.limbs = append(b.limbs, 0)
	}
	var carry uint64
	for i := range b.limbs {
		t := uint64(b.limbs[i]) + carry
		if i < len(o.limbs) {
			t += uint64(o.limbs[i])
		}
		b.limbs[i] = uint32(t & limbMask)
		carry = t >> limbBits
	}
	if carry > 0 {
		b.limbs = append(b.limbs, uint32(carry))
	}
}

// init gives the zero value its documented meaning of 1.
func (b *BigNum) init() {
	if len(b.limbs) == 0 {
		b.limbs = append(b.limbs, 1)
	}
}

func (b *BigNum) trim() {
	for len(b.limbs) > 1 && b.limbs[len(b.limbs)-1] == 0 {
		b.limbs = b.limbs[:len(b.limbs)-1]
	}
}

// Clone returns an independent copy.
func (b *BigNum) Clone() *BigNum {
	b.init()
	return &BigNum{limbs: append([]uint32(nil), b.limbs...)}
}

// IsOne reports whether b == 1.
func (b *BigNum) IsOne() bool {
	b.init()
	return len(b.limbs) == 1 && b.limbs[0] == 1
}

// Cmp returns -1, 0 or +1 comparing b with o.
func (b *BigNum) Cmp(o *BigNum) int {
	b.init()
	o.init()
	if len(b.limbs) != len(o.limbs) {
		if len(b.limbs) < len(o.limbs) {
			return -1
		}
		return 1
	}
	for i := len(b.limbs) - 1; i >= 0; i-- {
		if b.limbs[i] != o.limbs[i] {
			if b.limbs[i] < o.limbs[i] {
				return -1
			}
			return 1
		}
	}

	return 0
}

// Float64 approximates b; values beyond the float range return +Inf.
func (b *BigNum) Float64() float64 {
	b.init()
	f := 0.0
	for i := len(b.limbs) - 1; i >= 0; i-- {
		f = f*(1<<limbBits) + float64(b.limbs[i])
	}
	if math.IsNaN(f) {
		return math.Inf(1)
	}

	return f
}

// String renders b in decimal.
func (b *BigNum) String() string {
	b.init()
	if len(b.limbs) == 1 {
		return strconv.FormatUint(uint64(b.limbs[0]), 10)
	}
	work := append([]uint32(nil), b.limbs...)
	var chunks []uint32
	for len(work) > 1 || work[0] != 0 {
		var rem uint64
		for i := len(work) - 1; i >= 0; i-- {
			cur := rem<<limbBits | uint64(work[i])
			work[i] = uint32(cur / chunk)
			rem = cur % chunk
		}
		chunks = append(chunks, uint32(rem))
		for len(work) > 1 && work[len(work)-1] == 0 {
			work = work[:len(work)-1]
		}
	}
	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(uint64(chunks[len(chunks)-1]), 10))
	for i := len(chunks) - 2; i >= 0; i-- {
		s := strconv.FormatUint(uint64(chunks[i]), 10)
		sb.WriteString(strings.Repeat("0", chunkDigits-len(s)))
		sb.WriteString(s)
	}

	return sb.String()
}

// Fprint writes the decimal rendering of b to w.
func (b *BigNum) Fprint(w io.Writer) error {
	_, err := io.WriteString(w, b.String())
	return err
}
