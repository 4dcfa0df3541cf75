package uintn

import (
	"math/big"

	"k256.nucleo.dev/ct"
)

// U2048 is a 2048-bit unsigned integer held as 32 little-endian 64-bit limbs:
// element 0 is the least significant.  Every limb value is legal, and
// arithmetic on U2048 values never mutates its operands.
type U2048 [32]uint64

var (
	// U2048Zero is the additive identity.
	U2048Zero = U2048{}

	// U2048One is the multiplicative identity.
	U2048One = U2048{1}

	// U2048Max is 2^2048 - 1.
	U2048Max = U2048{}.Not()
)

// U2048FromU64 returns v as a U2048.
func U2048FromU64(v uint64) U2048 {
	return U2048{v}
}

// U2048FromBytesBE interprets b as a big-endian integer left-padded with zeros
// to 256 bytes.  It fails with ErrInvalidInput when b is longer than 256
// bytes.
func U2048FromBytesBE(b []byte) (U2048, error) {
	var z U2048
	if err := setBytes(z[:], b); err != nil {
		return U2048{}, err
	}
	return z, nil
}

// U2048FromHex parses an optional 0x prefix followed by up to 512 hex digits.
func U2048FromHex(s string) (U2048, error) {
	var z U2048
	if err := setHex(z[:], s); err != nil {
		return U2048{}, err
	}
	return z, nil
}

// U2048FromBig converts a non-negative big.Int of at most 2048 bits.
func U2048FromBig(v *big.Int) (U2048, error) {
	var z U2048
	if err := setBig(z[:], v); err != nil {
		return U2048{}, err
	}
	return z, nil
}

// Bytes returns the 256-byte big-endian encoding of x.
func (x U2048) Bytes() [256]byte {
	var b [256]byte
	fillBytes(b[:], x[:])
	return b
}

// Hex returns the full-width lowercase hex encoding of x without a prefix.
func (x U2048) Hex() string {
	return fixedHex(x[:])
}

// String returns x as 0x-prefixed hex with leading zeros removed.
func (x U2048) String() string {
	return shortHex(x[:])
}

// Big returns x as a new big.Int.
func (x U2048) Big() *big.Int {
	return toBig(x[:])
}

// Uint64 returns the least significant limb of x.
func (x U2048) Uint64() uint64 {
	return x[0]
}

// IsZero reports whether x is zero.
func (x U2048) IsZero() bool {
	return isZero(x[:])
}

// IsOdd reports whether the lowest bit of x is set.
func (x U2048) IsOdd() bool {
	return x[0]&1 == 1
}

// LeadingZeros returns the number of leading zero bits, 2048 for zero.
func (x U2048) LeadingZeros() int {
	return leadingZeros(x[:])
}

// TrailingZeros returns the number of trailing zero bits, 2048 for zero.
func (x U2048) TrailingZeros() int {
	return trailingZeros(x[:])
}

// BitLen returns the number of bits needed to represent x.
func (x U2048) BitLen() int {
	return 2048 - leadingZeros(x[:])
}

// Bit returns bit i of x, or 0 when i is outside [0, 2048).
func (x U2048) Bit(i int) uint {
	return bit(x[:], i)
}

// Cmp returns -1, 0 or +1 as x is less than, equal to or greater than y.  It
// returns at the first differing limb.
func (x U2048) Cmp(y U2048) int {
	return cmp(x[:], y[:])
}

// CmpCT is Cmp without data-dependent branches.
func (x U2048) CmpCT(y U2048) int {
	return ct.CmpLimbs(x[:], y[:])
}

// Equal reports whether x == y in constant time.
func (x U2048) Equal(y U2048) bool {
	return ct.EqLimbs(x[:], y[:])
}

// Add returns x + y mod 2^2048 and the carry out of the top limb.
func (x U2048) Add(y U2048) (U2048, uint64) {
	var z U2048
	c := addVV(z[:], x[:], y[:])
	return z, c
}

// WrappingAdd returns x + y mod 2^2048.
func (x U2048) WrappingAdd(y U2048) U2048 {
	z, _ := x.Add(y)
	return z
}

// Sub returns x - y mod 2^2048 and the borrow out of the top limb.
func (x U2048) Sub(y U2048) (U2048, uint64) {
	var z U2048
	b := subVV(z[:], x[:], y[:])
	return z, b
}

// WrappingSub returns x - y mod 2^2048.
func (x U2048) WrappingSub(y U2048) U2048 {
	z, _ := x.Sub(y)
	return z
}

// MulU64 returns x * v truncated to 2048 bits.
func (x U2048) MulU64(v uint64) U2048 {
	z, _ := x.MulU64Carry(v)
	return z
}

// MulU64Carry returns x * v truncated to 2048 bits along with the overflow
// limb, so that the full product is overflow*2^2048 + z.
func (x U2048) MulU64Carry(v uint64) (U2048, uint64) {
	var z U2048
	c := mulAddVWW(z[:], x[:], v, 0)
	return z, c
}

// MulWide returns the full product x * y as hi*2^2048 + lo.
func (x U2048) MulWide(y U2048) (lo, hi U2048) {
	var t [64]uint64
	mulVV(t[:], x[:], y[:])
	copy(lo[:], t[:32])
	copy(hi[:], t[32:])
	return lo, hi
}

// Shl1 returns x << 1.
func (x U2048) Shl1() U2048 {
	return x.Shl(1)
}

// Shr1 returns x >> 1.
func (x U2048) Shr1() U2048 {
	return x.Shr(1)
}

// Shl returns x << k.  Shifts of 2048 or more produce zero.
func (x U2048) Shl(k uint) U2048 {
	var z U2048
	shl(z[:], x[:], k)
	return z
}

// Shr returns x >> k.  Shifts of 2048 or more produce zero.
func (x U2048) Shr(k uint) U2048 {
	var z U2048
	shr(z[:], x[:], k)
	return z
}

// And returns the bitwise AND of x and y.
func (x U2048) And(y U2048) U2048 {
	for i := range x {
		x[i] &= y[i]
	}
	return x
}

// Or returns the bitwise OR of x and y.
func (x U2048) Or(y U2048) U2048 {
	for i := range x {
		x[i] |= y[i]
	}
	return x
}

// Xor returns the bitwise XOR of x and y.
func (x U2048) Xor(y U2048) U2048 {
	for i := range x {
		x[i] ^= y[i]
	}
	return x
}

// Not returns the bitwise complement of x.
func (x U2048) Not() U2048 {
	for i := range x {
		x[i] = ^x[i]
	}
	return x
}

// DivRem returns the quotient and remainder of x / y.  It panics with
// ErrDivisionByZero when y is zero.
func (x U2048) DivRem(y U2048) (q, r U2048) {
	divRem(q[:], r[:], x[:], y[:])
	return q, r
}

// Rem returns x mod y.  It panics with ErrDivisionByZero when y is zero.
func (x U2048) Rem(y U2048) U2048 {
	_, r := x.DivRem(y)
	return r
}
