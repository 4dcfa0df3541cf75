package ct

import (
	"crypto/subtle"
	"math/bits"
	"runtime"
	"unsafe"
)

// The helpers below operate on little-endian limb slices (index 0 is least
// significant).  Slices passed together must have equal length; mismatched
// lengths are a programming error and panic.

func mustMatch(a, b []uint64) {
	if len(a) != len(b) {
		panic("ct: limb slices differ in length")
	}
}

// SelectLimbs sets dst[i] = x[i] when cond is true and y[i] otherwise.
func SelectLimbs(cond bool, dst, x, y []uint64) {
	mustMatch(x, y)
	mustMatch(dst, x)
	mask := Mask(Bit(cond))
	for i := range dst {
		dst[i] = SelectMask(mask, x[i], y[i])
	}
}

// SwapLimbs swaps the contents of a and b when cond is true.
func SwapLimbs(cond bool, a, b []uint64) {
	mustMatch(a, b)
	mask := Mask(Bit(cond))
	for i := range a {
		a[i], b[i] = CSwapMask(mask, a[i], b[i])
	}
}

// EqLimbs reports whether a and b hold the same value.  Every limb is
// visited regardless of where the first difference is.
func EqLimbs(a, b []uint64) bool {
	mustMatch(a, b)
	var diff uint64
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return IsZero(diff) == ^uint64(0)
}

// LessLimbs reports whether a < b by running the full borrow chain of a - b.
func LessLimbs(a, b []uint64) bool {
	mustMatch(a, b)
	var borrow uint64
	for i := range a {
		_, borrow = bits.Sub64(a[i], b[i], borrow)
	}
	return borrow == 1
}

// CmpLimbs returns -1, 0 or +1 as a is less than, equal to or greater than b.
// The most significant differing limb decides; all limbs are visited.
func CmpLimbs(a, b []uint64) int {
	mustMatch(a, b)
	var lt, gt uint64
	for i := range a {
		l := LtMask(a[i], b[i])
		g := LtMask(b[i], a[i])
		// A difference at a higher limb overrides anything decided below.
		lt = SelectMask(l|g, l, lt)
		gt = SelectMask(l|g, g, gt)
	}
	return int(gt&1) - int(lt&1)
}

// EqBytes reports whether a and b are equal in constant time.  Slices of
// different length are never equal.
func EqBytes(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// Zero overwrites every limb with zero.  It is used to scrub secret-bearing
// values before they go out of scope.
func Zero(limbs []uint64) {
	if len(limbs) == 0 {
		return
	}
	p := unsafe.Pointer(&limbs[0])
	for i := range limbs {
		*(*uint64)(unsafe.Add(p, uintptr(i)*8)) = 0
	}
	runtime.KeepAlive(limbs)
}

// ZeroBytes overwrites every byte with zero.
func ZeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
