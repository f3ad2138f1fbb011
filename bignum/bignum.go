// Package bignum implements the fixed-width multi-precision integer used by
// the Intelligent Mail codec: ten limbs of 11 bits each, most-significant
// limb first. The unusual limb width keeps every intermediate product of the
// codec's base conversions (worst case 2047 * 1000000) well inside native
// integer range, so carry propagation is a single shift per limb.
package bignum

import (
	"fmt"
	"math/big"
)

const (
	// Limbs is the number of 11-bit limbs in a BigNum.
	Limbs = 10
	// LimbBits is the width of one limb.
	LimbBits = 11
	// LimbMask masks a value to one limb.
	LimbMask = 1<<LimbBits - 1
)

// BigNum is a non-negative integer of at most Limbs*LimbBits bits, stored
// most-significant limb first. Every limb must stay within [0, LimbMask];
// all methods preserve that invariant. The zero value is the number zero.
//
// BigNums are value types: assignment copies them, and none of the methods
// except Int allocate.
type BigNum [Limbs]uint16

// IsZero reports whether n is zero.
func (n *BigNum) IsZero() bool {
	for _, limb := range n {
		if limb != 0 {
			return false
		}
	}
	return true
}

// Add adds k, which may be negative, into the least-significant limb and
// propagates carries (or borrows) upward.
//
// The result must stay within [0, 2^110); Add panics if a carry or borrow
// falls off the most-significant limb.
func (n *BigNum) Add(k int64) {
	carry := k
	for i := Limbs - 1; i >= 0 && carry != 0; i-- {
		carry += int64(n[i])
		n[i] = uint16(carry & LimbMask)
		// arithmetic shift, so negative carries stay negative borrows
		carry >>= LimbBits
	}
	if carry != 0 {
		panic(fmt.Sprintf("bignum: Add(%d) overflows %d limbs", k, Limbs))
	}
}

// MulAdd replaces n with n*m + a.
//
// MulAdd panics if the result does not fit; callers are expected to know
// their operand ranges.
func (n *BigNum) MulAdd(m, a uint32) {
	carry := uint64(a)
	for i := Limbs - 1; i >= 0; i-- {
		carry += uint64(n[i]) * uint64(m)
		n[i] = uint16(carry & LimbMask)
		carry >>= LimbBits
	}
	if carry != 0 {
		panic(fmt.Sprintf("bignum: MulAdd(%d, %d) overflows %d limbs", m, a, Limbs))
	}
}

// DivMod replaces n with n/d and returns the remainder n mod d.
//
// The divisor must be in (0, 2^31); the division walks the limbs from the
// most significant down, carrying an 11-bit-shifted running remainder.
func (n *BigNum) DivMod(d uint32) uint32 {
	var rem uint64
	for i := 0; i < Limbs; i++ {
		rem = rem<<LimbBits | uint64(n[i])
		n[i] = uint16(rem / uint64(d))
		rem %= uint64(d)
	}
	return uint32(rem)
}

// Int returns the value of n as a big.Int.
func (n *BigNum) Int() *big.Int {
	v := new(big.Int)
	for _, limb := range n {
		v.Lsh(v, LimbBits)
		v.Or(v, big.NewInt(int64(limb)))
	}
	return v
}
