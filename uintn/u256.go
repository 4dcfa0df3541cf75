package uintn

import (
	"math/big"

	"k256.nucleo.dev/ct"
)

// U256 is a 256-bit unsigned integer held as 4 little-endian 64-bit limbs:
// element 0 is the least significant.  Every limb value is legal, and
// arithmetic on U256 values never mutates its operands.
type U256 [4]uint64

var (
	// U256Zero is the additive identity.
	U256Zero = U256{}

	// U256One is the multiplicative identity.
	U256One = U256{1}

	// U256Max is 2^256 - 1.
	U256Max = U256{}.Not()
)

// U256FromU64 returns v as a U256.
func U256FromU64(v uint64) U256 {
	return U256{v}
}

// U256FromBytesBE interprets b as a big-endian integer left-padded with zeros
// to 32 bytes.  It fails with ErrInvalidInput when b is longer than 32
// bytes.
func U256FromBytesBE(b []byte) (U256, error) {
	var z U256
	if err := setBytes(z[:], b); err != nil {
		return U256{}, err
	}
	return z, nil
}

// U256FromHex parses an optional 0x prefix followed by up to 64 hex digits.
func U256FromHex(s string) (U256, error) {
	var z U256
	if err := setHex(z[:], s); err != nil {
		return U256{}, err
	}
	return z, nil
}

// U256FromBig converts a non-negative big.Int of at most 256 bits.
func U256FromBig(v *big.Int) (U256, error) {
	var z U256
	if err := setBig(z[:], v); err != nil {
		return U256{}, err
	}
	return z, nil
}

// Bytes returns the 32-byte big-endian encoding of x.
func (x U256) Bytes() [32]byte {
	var b [32]byte
	fillBytes(b[:], x[:])
	return b
}

// Hex returns the full-width lowercase hex encoding of x without a prefix.
func (x U256) Hex() string {
	return fixedHex(x[:])
}

// String returns x as 0x-prefixed hex with leading zeros removed.
func (x U256) String() string {
	return shortHex(x[:])
}

// Big returns x as a new big.Int.
func (x U256) Big() *big.Int {
	return toBig(x[:])
}

// Uint64 returns the least significant limb of x.
func (x U256) Uint64() uint64 {
	return x[0]
}

// IsZero reports whether x is zero.
func (x U256) IsZero() bool {
	return isZero(x[:])
}

// IsOdd reports whether the lowest bit of x is set.
func (x U256) IsOdd() bool {
	return x[0]&1 == 1
}

// LeadingZeros returns the number of leading zero bits, 256 for zero.
func (x U256) LeadingZeros() int {
	return leadingZeros(x[:])
}

// TrailingZeros returns the number of trailing zero bits, 256 for zero.
func (x U256) TrailingZeros() int {
	return trailingZeros(x[:])
}

// BitLen returns the number of bits needed to represent x.
func (x U256) BitLen() int {
	return 256 - leadingZeros(x[:])
}

// Bit returns bit i of x, or 0 when i is outside [0, 256).
func (x U256) Bit(i int) uint {
	return bit(x[:], i)
}

// Cmp returns -1, 0 or +1 as x is less than, equal to or greater than y.  It
// returns at the first differing limb.
func (x U256) Cmp(y U256) int {
	return cmp(x[:], y[:])
}

// CmpCT is Cmp without data-dependent branches.
func (x U256) CmpCT(y U256) int {
	return ct.CmpLimbs(x[:], y[:])
}

// Equal reports whether x == y in constant time.
func (x U256) Equal(y U256) bool {
	return ct.EqLimbs(x[:], y[:])
}

// Add returns x + y mod 2^256 and the carry out of the top limb.
func (x U256) Add(y U256) (U256, uint64) {
	var z U256
	c := addVV(z[:], x[:], y[:])
	return z, c
}

// WrappingAdd returns x + y mod 2^256.
func (x U256) WrappingAdd(y U256) U256 {
	z, _ := x.Add(y)
	return z
}

// Sub returns x - y mod 2^256 and the borrow out of the top limb.
func (x U256) Sub(y U256) (U256, uint64) {
	var z U256
	b := subVV(z[:], x[:], y[:])
	return z, b
}

// WrappingSub returns x - y mod 2^256.
func (x U256) WrappingSub(y U256) U256 {
	z, _ := x.Sub(y)
	return z
}

// MulU64 returns x * v truncated to 256 bits.
func (x U256) MulU64(v uint64) U256 {
	z, _ := x.MulU64Carry(v)
	return z
}

// MulU64Carry returns x * v truncated to 256 bits along with the overflow
// limb, so that the full product is overflow*2^256 + z.
func (x U256) MulU64Carry(v uint64) (U256, uint64) {
	var z U256
	c := mulAddVWW(z[:], x[:], v, 0)
	return z, c
}

// MulWide returns the full product x * y as hi*2^256 + lo.
func (x U256) MulWide(y U256) (lo, hi U256) {
	var t [8]uint64
	mulVV(t[:], x[:], y[:])
	copy(lo[:], t[:4])
	copy(hi[:], t[4:])
	return lo, hi
}

// Shl1 returns x << 1.
func (x U256) Shl1() U256 {
	return x.Shl(1)
}

// Shr1 returns x >> 1.
func (x U256) Shr1() U256 {
	return x.Shr(1)
}

// Shl returns x << k.  Shifts of 256 or more produce zero.
func (x U256) Shl(k uint) U256 {
	var z U256
	shl(z[:], x[:], k)
	return z
}

// Shr returns x >> k.  Shifts of 256 or more produce zero.
func (x U256) Shr(k uint) U256 {
	var z U256
	shr(z[:], x[:], k)
	return z
}

// And returns the bitwise AND of x and y.
func (x U256) And(y U256) U256 {
	for i := range x {
		x[i] &= y[i]
	}
	return x
}

// Or returns the bitwise OR of x and y.
func (x U256) Or(y U256) U256 {
	for i := range x {
		x[i] |= y[i]
	}
	return x
}

// Xor returns the bitwise XOR of x and y.
func (x U256) Xor(y U256) U256 {
	for i := range x {
		x[i] ^= y[i]
	}
	return x
}

// Not returns the bitwise complement of x.
func (x U256) Not() U256 {
	for i := range x {
		x[i] = ^x[i]
	}
	return x
}

// DivRem returns the quotient and remainder of x / y.  It panics with
// ErrDivisionByZero when y is zero.
func (x U256) DivRem(y U256) (q, r U256) {
	divRem(q[:], r[:], x[:], y[:])
	return q, r
}

// Rem returns x mod y.  It panics with ErrDivisionByZero when y is zero.
func (x U256) Rem(y U256) U256 {
	_, r := x.DivRem(y)
	return r
}
