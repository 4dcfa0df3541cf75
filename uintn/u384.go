package uintn

import (
	"math/big"

	"k256.nucleo.dev/ct"
)

// U384 is a 384-bit unsigned integer held as 6 little-endian 64-bit limbs:
// element 0 is the least significant.  Every limb value is legal, and
// arithmetic on U384 values never mutates its operands.
type U384 [6]uint64

var (
	// U384Zero is the additive identity.
	U384Zero = U384{}

	// U384One is the multiplicative identity.
	U384One = U384{1}

	// U384Max is 2^384 - 1.
	U384Max = U384{}.Not()
)

// U384FromU64 returns v as a U384.
func U384FromU64(v uint64) U384 {
	return U384{v}
}

// U384FromBytesBE interprets b as a big-endian integer left-padded with zeros
// to 48 bytes.  It fails with ErrInvalidInput when b is longer than 48
// bytes.
func U384FromBytesBE(b []byte) (U384, error) {
	var z U384
	if err := setBytes(z[:], b); err != nil {
		return U384{}, err
	}
	return z, nil
}

// U384FromHex parses an optional 0x prefix followed by up to 96 hex digits.
func U384FromHex(s string) (U384, error) {
	var z U384
	if err := setHex(z[:], s); err != nil {
		return U384{}, err
	}
	return z, nil
}

// U384FromBig converts a non-negative big.Int of at most 384 bits.
func U384FromBig(v *big.Int) (U384, error) {
	var z U384
	if err := setBig(z[:], v); err != nil {
		return U384{}, err
	}
	return z, nil
}

// Bytes returns the 48-byte big-endian encoding of x.
func (x U384) Bytes() [48]byte {
	var b [48]byte
	fillBytes(b[:], x[:])
	return b
}

// Hex returns the full-width lowercase hex encoding of x without a prefix.
func (x U384) Hex() string {
	return fixedHex(x[:])
}

// String returns x as 0x-prefixed hex with leading zeros removed.
func (x U384) String() string {
	return shortHex(x[:])
}

// Big returns x as a new big.Int.
func (x U384) Big() *big.Int {
	return toBig(x[:])
}

// Uint64 returns the least significant limb of x.
func (x U384) Uint64() uint64 {
	return x[0]
}

// IsZero reports whether x is zero.
func (x U384) IsZero() bool {
	return isZero(x[:])
}

// IsOdd reports whether the lowest bit of x is set.
func (x U384) IsOdd() bool {
	return x[0]&1 == 1
}

// LeadingZeros returns the number of leading zero bits, 384 for zero.
func (x U384) LeadingZeros() int {
	return leadingZeros(x[:])
}

// TrailingZeros returns the number of trailing zero bits, 384 for zero.
func (x U384) TrailingZeros() int {
	return trailingZeros(x[:])
}

// BitLen returns the number of bits needed to represent x.
func (x U384) BitLen() int {
	return 384 - leadingZeros(x[:])
}

// Bit returns bit i of x, or 0 when i is outside [0, 384).
func (x U384) Bit(i int) uint {
	return bit(x[:], i)
}

// Cmp returns -1, 0 or +1 as x is less than, equal to or greater than y.  It
// returns at the first differing limb.
func (x U384) Cmp(y U384) int {
	return cmp(x[:], y[:])
}

// CmpCT is Cmp without data-dependent branches.
func (x U384) CmpCT(y U384) int {
	return ct.CmpLimbs(x[:], y[:])
}

// Equal reports whether x == y in constant time.
func (x U384) Equal(y U384) bool {
	return ct.EqLimbs(x[:], y[:])
}

// Add returns x + y mod 2^384 and the carry out of the top limb.
func (x U384) Add(y U384) (U384, uint64) {
	var z U384
	c := addVV(z[:], x[:], y[:])
	return z, c
}

// WrappingAdd returns x + y mod 2^384.
func (x U384) WrappingAdd(y U384) U384 {
	z, _ := x.Add(y)
	return z
}

// Sub returns x - y mod 2^384 and the borrow out of the top limb.
func (x U384) Sub(y U384) (U384, uint64) {
	var z U384
	b := subVV(z[:], x[:], y[:])
	return z, b
}

// WrappingSub returns x - y mod 2^384.
func (x U384) WrappingSub(y U384) U384 {
	z, _ := x.Sub(y)
	return z
}

// MulU64 returns x * v truncated to 384 bits.
func (x U384) MulU64(v uint64) U384 {
	z, _ := x.MulU64Carry(v)
	return z
}

// MulU64Carry returns x * v truncated to 384 bits along with the overflow
// limb, so that the full product is overflow*2^384 + z.
func (x U384) MulU64Carry(v uint64) (U384, uint64) {
	var z U384
	c := mulAddVWW(z[:], x[:], v, 0)
	return z, c
}

// MulWide returns the full product x * y as hi*2^384 + lo.
func (x U384) MulWide(y U384) (lo, hi U384) {
	var t [12]uint64
	mulVV(t[:], x[:], y[:])
	copy(lo[:], t[:6])
	copy(hi[:], t[6:])
	return lo, hi
}

// Shl1 returns x << 1.
func (x U384) Shl1() U384 {
	return x.Shl(1)
}

// Shr1 returns x >> 1.
func (x U384) Shr1() U384 {
	return x.Shr(1)
}

// Shl returns x << k.  Shifts of 384 or more produce zero.
func (x U384) Shl(k uint) U384 {
	var z U384
	shl(z[:], x[:], k)
	return z
}

// Shr returns x >> k.  Shifts of 384 or more produce zero.
func (x U384) Shr(k uint) U384 {
	var z U384
	shr(z[:], x[:], k)
	return z
}

// And returns the bitwise AND of x and y.
func (x U384) And(y U384) U384 {
	for i := range x {
		x[i] &= y[i]
	}
	return x
}

// Or returns the bitwise OR of x and y.
func (x U384) Or(y U384) U384 {
	for i := range x {
		x[i] |= y[i]
	}
	return x
}

// Xor returns the bitwise XOR of x and y.
func (x U384) Xor(y U384) U384 {
	for i := range x {
		x[i] ^= y[i]
	}
	return x
}

// Not returns the bitwise complement of x.
func (x U384) Not() U384 {
	for i := range x {
		x[i] = ^x[i]
	}
	return x
}

// DivRem returns the quotient and remainder of x / y.  It panics with
// ErrDivisionByZero when y is zero.
func (x U384) DivRem(y U384) (q, r U384) {
	divRem(q[:], r[:], x[:], y[:])
	return q, r
}

// Rem returns x mod y.  It panics with ErrDivisionByZero when y is zero.
func (x U384) Rem(y U384) U384 {
	_, r := x.DivRem(y)
	return r
}
