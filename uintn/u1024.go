package uintn

import (
	"math/big"

	"k256.nucleo.dev/ct"
)

// U1024 is a 1024-bit unsigned integer held as 16 little-endian 64-bit limbs:
// element 0 is the least significant.  Every limb value is legal, and
// arithmetic on U1024 values never mutates its operands.
type U1024 [16]uint64

var (
	// U1024Zero is the additive identity.
	U1024Zero = U1024{}

	// U1024One is the multiplicative identity.
	U1024One = U1024{1}

	// U1024Max is 2^1024 - 1.
	U1024Max = U1024{}.Not()
)

// U1024FromU64 returns v as a U1024.
func U1024FromU64(v uint64) U1024 {
	return U1024{v}
}

// U1024FromBytesBE interprets b as a big-endian integer left-padded with zeros
// to 128 bytes.  It fails with ErrInvalidInput when b is longer than 128
// bytes.
func U1024FromBytesBE(b []byte) (U1024, error) {
	var z U1024
	if err := setBytes(z[:], b); err != nil {
		return U1024{}, err
	}
	return z, nil
}

// U1024FromHex parses an optional 0x prefix followed by up to 256 hex digits.
func U1024FromHex(s string) (U1024, error) {
	var z U1024
	if err := setHex(z[:], s); err != nil {
		return U1024{}, err
	}
	return z, nil
}

// U1024FromBig converts a non-negative big.Int of at most 1024 bits.
func U1024FromBig(v *big.Int) (U1024, error) {
	var z U1024
	if err := setBig(z[:], v); err != nil {
		return U1024{}, err
	}
	return z, nil
}

// Bytes returns the 128-byte big-endian encoding of x.
func (x U1024) Bytes() [128]byte {
	var b [128]byte
	fillBytes(b[:], x[:])
	return b
}

// Hex returns the full-width lowercase hex encoding of x without a prefix.
func (x U1024) Hex() string {
	return fixedHex(x[:])
}

// String returns x as 0x-prefixed hex with leading zeros removed.
func (x U1024) String() string {
	return shortHex(x[:])
}

// Big returns x as a new big.Int.
func (x U1024) Big() *big.Int {
	return toBig(x[:])
}

// Uint64 returns the least significant limb of x.
func (x U1024) Uint64() uint64 {
	return x[0]
}

// IsZero reports whether x is zero.
func (x U1024) IsZero() bool {
	return isZero(x[:])
}

// IsOdd reports whether the lowest bit of x is set.
func (x U1024) IsOdd() bool {
	return x[0]&1 == 1
}

// LeadingZeros returns the number of leading zero bits, 1024 for zero.
func (x U1024) LeadingZeros() int {
	return leadingZeros(x[:])
}

// TrailingZeros returns the number of trailing zero bits, 1024 for zero.
func (x U1024) TrailingZeros() int {
	return trailingZeros(x[:])
}

// BitLen returns the number of bits needed to represent x.
func (x U1024) BitLen() int {
	return 1024 - leadingZeros(x[:])
}

// Bit returns bit i of x, or 0 when i is outside [0, 1024).
func (x U1024) Bit(i int) uint {
	return bit(x[:], i)
}

// Cmp returns -1, 0 or +1 as x is less than, equal to or greater than y.  It
// returns at the first differing limb.
func (x U1024) Cmp(y U1024) int {
	return cmp(x[:], y[:])
}

// CmpCT is Cmp without data-dependent branches.
func (x U1024) CmpCT(y U1024) int {
	return ct.CmpLimbs(x[:], y[:])
}

// Equal reports whether x == y in constant time.
func (x U1024) Equal(y U1024) bool {
	return ct.EqLimbs(x[:], y[:])
}

// Add returns x + y mod 2^1024 and the carry out of the top limb.
func (x U1024) Add(y U1024) (U1024, uint64) {
	var z U1024
	c := addVV(z[:], x[:], y[:])
	return z, c
}

// WrappingAdd returns x + y mod 2^1024.
func (x U1024) WrappingAdd(y U1024) U1024 {
	z, _ := x.Add(y)
	return z
}

// Sub returns x - y mod 2^1024 and the borrow out of the top limb.
func (x U1024) Sub(y U1024) (U1024, uint64) {
	var z U1024
	b := subVV(z[:], x[:], y[:])
	return z, b
}

// WrappingSub returns x - y mod 2^1024.
func (x U1024) WrappingSub(y U1024) U1024 {
	z, _ := x.Sub(y)
	return z
}

// MulU64 returns x * v truncated to 1024 bits.
func (x U1024) MulU64(v uint64) U1024 {
	z, _ := x.MulU64Carry(v)
	return z
}

// MulU64Carry returns x * v truncated to 1024 bits along with the overflow
// limb, so that the full product is overflow*2^1024 + z.
func (x U1024) MulU64Carry(v uint64) (U1024, uint64) {
	var z U1024
	c := mulAddVWW(z[:], x[:], v, 0)
	return z, c
}

// MulWide returns the full product x * y as hi*2^1024 + lo.
func (x U1024) MulWide(y U1024) (lo, hi U1024) {
	var t [32]uint64
	mulVV(t[:], x[:], y[:])
	copy(lo[:], t[:16])
	copy(hi[:], t[16:])
	return lo, hi
}

// Shl1 returns x << 1.
func (x U1024) Shl1() U1024 {
	return x.Shl(1)
}

// Shr1 returns x >> 1.
func (x U1024) Shr1() U1024 {
	return x.Shr(1)
}

// Shl returns x << k.  Shifts of 1024 or more produce zero.
func (x U1024) Shl(k uint) U1024 {
	var z U1024
	shl(z[:], x[:], k)
	return z
}

// Shr returns x >> k.  Shifts of 1024 or more produce zero.
func (x U1024) Shr(k uint) U1024 {
	var z U1024
	shr(z[:], x[:], k)
	return z
}

// And returns the bitwise AND of x and y.
func (x U1024) And(y U1024) U1024 {
	for i := range x {
		x[i] &= y[i]
	}
	return x
}

// Or returns the bitwise OR of x and y.
func (x U1024) Or(y U1024) U1024 {
	for i := range x {
		x[i] |= y[i]
	}
	return x
}

// Xor returns the bitwise XOR of x and y.
func (x U1024) Xor(y U1024) U1024 {
	for i := range x {
		x[i] ^= y[i]
	}
	return x
}

// Not returns the bitwise complement of x.
func (x U1024) Not() U1024 {
	for i := range x {
		x[i] = ^x[i]
	}
	return x
}

// DivRem returns the quotient and remainder of x / y.  It panics with
// ErrDivisionByZero when y is zero.
func (x U1024) DivRem(y U1024) (q, r U1024) {
	divRem(q[:], r[:], x[:], y[:])
	return q, r
}

// Rem returns x mod y.  It panics with ErrDivisionByZero when y is zero.
func (x U1024) Rem(y U1024) U1024 {
	_, r := x.DivRem(y)
	return r
}
