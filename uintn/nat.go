package uintn

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/bits"
	"strings"

	"k256.nucleo.dev/ct"
)

// The functions in this file are the limb-vector kernel shared by every
// width.  Operands are little-endian limb slices of equal length unless a
// function says otherwise, and outputs may alias inputs.

// maxLimbs is the limb count of the widest supported integer, U4096.
const maxLimbs = 64

// addVV sets z = x + y and returns the carry out of the top limb.
func addVV(z, x, y []uint64) (c uint64) {
	for i := range z {
		z[i], c = ct.Adc(x[i], y[i], c)
	}
	return c
}

// subVV sets z = x - y and returns the borrow out of the top limb.
func subVV(z, x, y []uint64) (b uint64) {
	for i := range z {
		z[i], b = ct.Sbb(x[i], y[i], b)
	}
	return b
}

// mulAddVWW sets z = x*y + r and returns the limb that did not fit.
func mulAddVWW(z, x []uint64, y, r uint64) (c uint64) {
	c = r
	for i := range z {
		z[i], c = ct.Mac(x[i], y, 0, c)
	}
	return c
}

// mulVV sets z = x*y by schoolbook row accumulation.  z must hold
// len(x)+len(y) limbs and must not alias x or y.
func mulVV(z, x, y []uint64) {
	clear(z)
	for i, xi := range x {
		var carry uint64
		for j, yj := range y {
			z[i+j], carry = ct.Mac(xi, yj, z[i+j], carry)
		}
		// Column i+len(y) has not been touched by any earlier row.
		z[i+len(y)] = carry
	}
}

// shl sets z = x << k, discarding bits shifted past the top limb.
func shl(z, x []uint64, k uint) {
	n := len(x)
	words, s := int(k/64), k%64
	if k >= uint(64*n) {
		clear(z)
		return
	}
	for i := n - 1; i >= words; i-- {
		v := x[i-words] << s
		if s != 0 && i-words > 0 {
			v |= x[i-words-1] >> (64 - s)
		}
		z[i] = v
	}
	clear(z[:words])
}

// shr sets z = x >> k.
func shr(z, x []uint64, k uint) {
	n := len(x)
	words, s := int(k/64), k%64
	if k >= uint(64*n) {
		clear(z)
		return
	}
	for i := 0; i < n-words; i++ {
		v := x[i+words] >> s
		if s != 0 && i+words+1 < n {
			v |= x[i+words+1] << (64 - s)
		}
		z[i] = v
	}
	clear(z[n-words:])
}

func isZero(x []uint64) bool {
	var acc uint64
	for _, l := range x {
		acc |= l
	}
	return acc == 0
}

func leadingZeros(x []uint64) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != 0 {
			return (len(x)-1-i)*64 + bits.LeadingZeros64(x[i])
		}
	}
	return 64 * len(x)
}

func trailingZeros(x []uint64) int {
	for i, l := range x {
		if l != 0 {
			return i*64 + bits.TrailingZeros64(l)
		}
	}
	return 64 * len(x)
}

func bit(x []uint64, i int) uint {
	if i < 0 || i >= 64*len(x) {
		return 0
	}
	return uint(x[i/64]>>(i%64)) & 1
}

// cmp compares x and y from the most significant limb down and stops at the
// first difference.  Use ct.CmpLimbs where timing matters.
func cmp(x, y []uint64) int {
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// divRem sets q = a / b and r = a mod b by binary long division.  q and r
// must not alias a or b.
func divRem(q, r, a, b []uint64) {
	if isZero(b) {
		panic(makeError(ErrDivisionByZero, "uintn: division by zero"))
	}
	clear(q)
	copy(r, a)
	if cmp(a, b) < 0 {
		return
	}

	// Align the divisor's top bit with the dividend's and walk back down.
	var buf [maxLimbs]uint64
	d := buf[:len(b)]
	shift := leadingZeros(b) - leadingZeros(a)
	shl(d, b, uint(shift))
	for i := shift; i >= 0; i-- {
		if cmp(r, d) >= 0 {
			subVV(r, r, d)
			q[i/64] |= 1 << (i % 64)
		}
		shr(d, d, 1)
	}
}

// setBytes loads the big-endian integer b into z, left-padding with zeros.
func setBytes(z []uint64, b []byte) error {
	if len(b) > 8*len(z) {
		str := fmt.Sprintf("uintn: %d-byte input exceeds %d-bit width",
			len(b), 64*len(z))
		return makeError(ErrInvalidInput, str)
	}
	clear(z)
	for i := range b {
		z[i/8] |= uint64(b[len(b)-1-i]) << (8 * (i % 8))
	}
	return nil
}

// fillBytes writes x into buf, which must be exactly 8*len(x) bytes, most
// significant limb first.
func fillBytes(buf []byte, x []uint64) {
	n := len(x)
	for i, l := range x {
		binary.BigEndian.PutUint64(buf[8*(n-1-i):], l)
	}
}

// setHex parses an optional 0x prefix followed by at most 16*len(z) hex
// digits.  An odd number of digits is accepted.
func setHex(z []uint64, s string) error {
	digits := s
	if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits = digits[2:]
	}
	if len(digits) == 0 || len(digits) > 16*len(z) {
		str := fmt.Sprintf("uintn: hex string %q has %d digits, want 1 to %d",
			s, len(digits), 16*len(z))
		return makeError(ErrInvalidInput, str)
	}
	if len(digits)%2 == 1 {
		digits = "0" + digits
	}
	b, err := hex.DecodeString(digits)
	if err != nil {
		str := fmt.Sprintf("uintn: malformed hex string %q: %v", s, err)
		return makeError(ErrInvalidInput, str)
	}
	return setBytes(z, b)
}

// fixedHex returns the full-width lowercase hex encoding of x.
func fixedHex(x []uint64) string {
	var buf [8 * maxLimbs]byte
	b := buf[:8*len(x)]
	fillBytes(b, x)
	return hex.EncodeToString(b)
}

// shortHex returns x as 0x-prefixed hex without leading zeros.
func shortHex(x []uint64) string {
	s := strings.TrimLeft(fixedHex(x), "0")
	if s == "" {
		s = "0"
	}
	return "0x" + s
}
