package uintn

import (
	"math/big"

	"k256.nucleo.dev/ct"
)

// U512 is a 512-bit unsigned integer held as 8 little-endian 64-bit limbs:
// element 0 is the least significant.  Every limb value is legal, and
// arithmetic on U512 values never mutates its operands.
type U512 [8]uint64

var (
	// U512Zero is the additive identity.
	U512Zero = U512{}

	// U512One is the multiplicative identity.
	U512One = U512{1}

	// U512Max is 2^512 - 1.
	U512Max = U512{}.Not()
)

// U512FromU64 returns v as a U512.
func U512FromU64(v uint64) U512 {
	return U512{v}
}

// U512FromBytesBE interprets b as a big-endian integer left-padded with zeros
// to 64 bytes.  It fails with ErrInvalidInput when b is longer than 64
// bytes.
func U512FromBytesBE(b []byte) (U512, error) {
	var z U512
	if err := setBytes(z[:], b); err != nil {
		return U512{}, err
	}
	return z, nil
}

// U512FromHex parses an optional 0x prefix followed by up to 128 hex digits.
func U512FromHex(s string) (U512, error) {
	var z U512
	if err := setHex(z[:], s); err != nil {
		return U512{}, err
	}
	return z, nil
}

// U512FromBig converts a non-negative big.Int of at most 512 bits.
func U512FromBig(v *big.Int) (U512, error) {
	var z U512
	if err := setBig(z[:], v); err != nil {
		return U512{}, err
	}
	return z, nil
}

// Bytes returns the 64-byte big-endian encoding of x.
func (x U512) Bytes() [64]byte {
	var b [64]byte
	fillBytes(b[:], x[:])
	return b
}

// Hex returns the full-width lowercase hex encoding of x without a prefix.
func (x U512) Hex() string {
	return fixedHex(x[:])
}

// String returns x as 0x-prefixed hex with leading zeros removed.
func (x U512) String() string {
	return shortHex(x[:])
}

// Big returns x as a new big.Int.
func (x U512) Big() *big.Int {
	return toBig(x[:])
}

// Uint64 returns the least significant limb of x.
func (x U512) Uint64() uint64 {
	return x[0]
}

// IsZero reports whether x is zero.
func (x U512) IsZero() bool {
	return isZero(x[:])
}

// IsOdd reports whether the lowest bit of x is set.
func (x U512) IsOdd() bool {
	return x[0]&1 == 1
}

// LeadingZeros returns the number of leading zero bits, 512 for zero.
func (x U512) LeadingZeros() int {
	return leadingZeros(x[:])
}

// TrailingZeros returns the number of trailing zero bits, 512 for zero.
func (x U512) TrailingZeros() int {
	return trailingZeros(x[:])
}

// BitLen returns the number of bits needed to represent x.
func (x U512) BitLen() int {
	return 512 - leadingZeros(x[:])
}

// Bit returns bit i of x, or 0 when i is outside [0, 512).
func (x U512) Bit(i int) uint {
	return bit(x[:], i)
}

// Cmp returns -1, 0 or +1 as x is less than, equal to or greater than y.  It
// returns at the first differing limb.
func (x U512) Cmp(y U512) int {
	return cmp(x[:], y[:])
}

// CmpCT is Cmp without data-dependent branches.
func (x U512) CmpCT(y U512) int {
	return ct.CmpLimbs(x[:], y[:])
}

// Equal reports whether x == y in constant time.
func (x U512) Equal(y U512) bool {
	return ct.EqLimbs(x[:], y[:])
}

// Add returns x + y mod 2^512 and the carry out of the top limb.
func (x U512) Add(y U512) (U512, uint64) {
	var z U512
	c := addVV(z[:], x[:], y[:])
	return z, c
}

// WrappingAdd returns x + y mod 2^512.
func (x U512) WrappingAdd(y U512) U512 {
	z, _ := x.Add(y)
	return z
}

// Sub returns x - y mod 2^512 and the borrow out of the top limb.
func (x U512) Sub(y U512) (U512, uint64) {
	var z U512
	b := subVV(z[:], x[:], y[:])
	return z, b
}

// WrappingSub returns x - y mod 2^512.
func (x U512) WrappingSub(y U512) U512 {
	z, _ := x.Sub(y)
	return z
}

// MulU64 returns x * v truncated to 512 bits.
func (x U512) MulU64(v uint64) U512 {
	z, _ := x.MulU64Carry(v)
	return z
}

// MulU64Carry returns x * v truncated to 512 bits along with the overflow
// limb, so that the full product is overflow*2^512 + z.
func (x U512) MulU64Carry(v uint64) (U512, uint64) {
	var z U512
	c := mulAddVWW(z[:], x[:], v, 0)
	return z, c
}

// MulWide returns the full product x * y as hi*2^512 + lo.
func (x U512) MulWide(y U512) (lo, hi U512) {
	var t [16]uint64
	mulVV(t[:], x[:], y[:])
	copy(lo[:], t[:8])
	copy(hi[:], t[8:])
	return lo, hi
}

// Shl1 returns x << 1.
func (x U512) Shl1() U512 {
	return x.Shl(1)
}

// Shr1 returns x >> 1.
func (x U512) Shr1() U512 {
	return x.Shr(1)
}

// Shl returns x << k.  Shifts of 512 or more produce zero.
func (x U512) Shl(k uint) U512 {
	var z U512
	shl(z[:], x[:], k)
	return z
}

// Shr returns x >> k.  Shifts of 512 or more produce zero.
func (x U512) Shr(k uint) U512 {
	var z U512
	shr(z[:], x[:], k)
	return z
}

// And returns the bitwise AND of x and y.
func (x U512) And(y U512) U512 {
	for i := range x {
		x[i] &= y[i]
	}
	return x
}

// Or returns the bitwise OR of x and y.
func (x U512) Or(y U512) U512 {
	for i := range x {
		x[i] |= y[i]
	}
	return x
}

// Xor returns the bitwise XOR of x and y.
func (x U512) Xor(y U512) U512 {
	for i := range x {
		x[i] ^= y[i]
	}
	return x
}

// Not returns the bitwise complement of x.
func (x U512) Not() U512 {
	for i := range x {
		x[i] = ^x[i]
	}
	return x
}

// DivRem returns the quotient and remainder of x / y.  It panics with
// ErrDivisionByZero when y is zero.
func (x U512) DivRem(y U512) (q, r U512) {
	divRem(q[:], r[:], x[:], y[:])
	return q, r
}

// Rem returns x mod y.  It panics with ErrDivisionByZero when y is zero.
func (x U512) Rem(y U512) U512 {
	_, r := x.DivRem(y)
	return r
}
