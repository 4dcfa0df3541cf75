// Package ct provides the branch-free 64-bit primitives every multi-limb
// operation in this module is built from.
//
// All functions in this package are constant-time with respect to their
// inputs: they contain no data-dependent branches and no data-dependent
// memory accesses.  Carry, borrow and condition words are always 0 or 1;
// masks are always all-zeros or all-ones.
package ct

import (
	"math/bits"
	"unsafe"
)

// Adc returns a + b + carryIn and the carry out of bit 64.  carryIn must be
// 0 or 1; the returned carry is likewise 0 or 1.
func Adc(a, b, carryIn uint64) (sum, carryOut uint64) {
	return bits.Add64(a, b, carryIn)
}

// Sbb returns (a - b - borrowIn) mod 2^64 and a borrow of 1 when the
// mathematical result was negative.  borrowIn must be 0 or 1.
func Sbb(a, b, borrowIn uint64) (diff, borrowOut uint64) {
	return bits.Sub64(a, b, borrowIn)
}

// MulWide returns the full 128-bit product of a and b split into halves.
func MulWide(a, b uint64) (lo, hi uint64) {
	hi, lo = bits.Mul64(a, b)
	return lo, hi
}

// Mac returns a*b + c + carry as a 128-bit value split into halves.  The sum
// cannot overflow 128 bits: (2^64-1)^2 + 2*(2^64-1) = 2^128 - 1.
func Mac(a, b, c, carry uint64) (lo, hi uint64) {
	hi, lo = bits.Mul64(a, b)
	var k uint64
	lo, k = bits.Add64(lo, c, 0)
	hi += k
	lo, k = bits.Add64(lo, carry, 0)
	hi += k
	return lo, hi
}

// Bit converts a bool to 0 or 1 without a branch.
func Bit(b bool) uint64 {
	return uint64(*(*uint8)(unsafe.Pointer(&b)))
}

// Mask expands a 0/1 bit into an all-zeros or all-ones mask.
func Mask(bit uint64) uint64 {
	return -(bit & 1)
}

// Select returns x when cond is true and y otherwise.
func Select(cond bool, x, y uint64) uint64 {
	return SelectMask(Mask(Bit(cond)), x, y)
}

// SelectMask returns x when mask is all-ones and y when it is all-zeros.
func SelectMask(mask, x, y uint64) uint64 {
	return (x & mask) | (y &^ mask)
}

// CSwap swaps a and b when cond is true.
func CSwap(cond bool, a, b uint64) (uint64, uint64) {
	return CSwapMask(Mask(Bit(cond)), a, b)
}

// CSwapMask swaps a and b when mask is all-ones.
func CSwapMask(mask, a, b uint64) (uint64, uint64) {
	t := (a ^ b) & mask
	return a ^ t, b ^ t
}

// IsZero returns an all-ones mask when x == 0 and all-zeros otherwise.
func IsZero(x uint64) uint64 {
	return ((x | -x) >> 63) - 1
}

// EqMask returns an all-ones mask when a == b.
func EqMask(a, b uint64) uint64 {
	return IsZero(a ^ b)
}

// LtMask returns an all-ones mask when a < b.
func LtMask(a, b uint64) uint64 {
	_, borrow := bits.Sub64(a, b, 0)
	return -borrow
}
