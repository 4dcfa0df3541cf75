package uintn

import (
	"math/big"

	"k256.nucleo.dev/ct"
)

// U4096 is a 4096-bit unsigned integer held as 64 little-endian 64-bit limbs:
// element 0 is the least significant.  Every limb value is legal, and
// arithmetic on U4096 values never mutates its operands.
type U4096 [64]uint64

var (
	// U4096Zero is the additive identity.
	U4096Zero = U4096{}

	// U4096One is the multiplicative identity.
	U4096One = U4096{1}

	// U4096Max is 2^4096 - 1.
	U4096Max = U4096{}.Not()
)

// U4096FromU64 returns v as a U4096.
func U4096FromU64(v uint64) U4096 {
	return U4096{v}
}

// U4096FromBytesBE interprets b as a big-endian integer left-padded with zeros
// to 512 bytes.  It fails with ErrInvalidInput when b is longer than 512
// bytes.
func U4096FromBytesBE(b []byte) (U4096, error) {
	var z U4096
	if err := setBytes(z[:], b); err != nil {
		return U4096{}, err
	}
	return z, nil
}

// U4096FromHex parses an optional 0x prefix followed by up to 1024 hex digits.
func U4096FromHex(s string) (U4096, error) {
	var z U4096
	if err := setHex(z[:], s); err != nil {
		return U4096{}, err
	}
	return z, nil
}

// U4096FromBig converts a non-negative big.Int of at most 4096 bits.
func U4096FromBig(v *big.Int) (U4096, error) {
	var z U4096
	if err := setBig(z[:], v); err != nil {
		return U4096{}, err
	}
	return z, nil
}

// Bytes returns the 512-byte big-endian encoding of x.
func (x U4096) Bytes() [512]byte {
	var b [512]byte
	fillBytes(b[:], x[:])
	return b
}

// Hex returns the full-width lowercase hex encoding of x without a prefix.
func (x U4096) Hex() string {
	return fixedHex(x[:])
}

// String returns x as 0x-prefixed hex with leading zeros removed.
func (x U4096) String() string {
	return shortHex(x[:])
}

// Big returns x as a new big.Int.
func (x U4096) Big() *big.Int {
	return toBig(x[:])
}

// Uint64 returns the least significant limb of x.
func (x U4096) Uint64() uint64 {
	return x[0]
}

// IsZero reports whether x is zero.
func (x U4096) IsZero() bool {
	return isZero(x[:])
}

// IsOdd reports whether the lowest bit of x is set.
func (x U4096) IsOdd() bool {
	return x[0]&1 == 1
}

// LeadingZeros returns the number of leading zero bits, 4096 for zero.
func (x U4096) LeadingZeros() int {
	return leadingZeros(x[:])
}

// TrailingZeros returns the number of trailing zero bits, 4096 for zero.
func (x U4096) TrailingZeros() int {
	return trailingZeros(x[:])
}

// BitLen returns the number of bits needed to represent x.
func (x U4096) BitLen() int {
	return 4096 - leadingZeros(x[:])
}

// Bit returns bit i of x, or 0 when i is outside [0, 4096).
func (x U4096) Bit(i int) uint {
	return bit(x[:], i)
}

// Cmp returns -1, 0 or +1 as x is less than, equal to or greater than y.  It
// returns at the first differing limb.
func (x U4096) Cmp(y U4096) int {
	return cmp(x[:], y[:])
}

// CmpCT is Cmp without data-dependent branches.
func (x U4096) CmpCT(y U4096) int {
	return ct.CmpLimbs(x[:], y[:])
}

// Equal reports whether x == y in constant time.
func (x U4096) Equal(y U4096) bool {
	return ct.EqLimbs(x[:], y[:])
}

// Add returns x + y mod 2^4096 and the carry out of the top limb.
func (x U4096) Add(y U4096) (U4096, uint64) {
	var z U4096
	c := addVV(z[:], x[:], y[:])
	return z, c
}

// WrappingAdd returns x + y mod 2^4096.
func (x U4096) WrappingAdd(y U4096) U4096 {
	z, _ := x.Add(y)
	return z
}

// Sub returns x - y mod 2^4096 and the borrow out of the top limb.
func (x U4096) Sub(y U4096) (U4096, uint64) {
	var z U4096
	b := subVV(z[:], x[:], y[:])
	return z, b
}

// WrappingSub returns x - y mod 2^4096.
func (x U4096) WrappingSub(y U4096) U4096 {
	z, _ := x.Sub(y)
	return z
}

// MulU64 returns x * v truncated to 4096 bits.
func (x U4096) MulU64(v uint64) U4096 {
	z, _ := x.MulU64Carry(v)
	return z
}

// MulU64Carry returns x * v truncated to 4096 bits along with the overflow
// limb, so that the full product is overflow*2^4096 + z.
func (x U4096) MulU64Carry(v uint64) (U4096, uint64) {
	var z U4096
	c := mulAddVWW(z[:], x[:], v, 0)
	return z, c
}

// MulWide returns the full product x * y as hi*2^4096 + lo.
func (x U4096) MulWide(y U4096) (lo, hi U4096) {
	var t [128]uint64
	mulVV(t[:], x[:], y[:])
	copy(lo[:], t[:64])
	copy(hi[:], t[64:])
	return lo, hi
}

// Shl1 returns x << 1.
func (x U4096) Shl1() U4096 {
	return x.Shl(1)
}

// Shr1 returns x >> 1.
func (x U4096) Shr1() U4096 {
	return x.Shr(1)
}

// Shl returns x << k.  Shifts of 4096 or more produce zero.
func (x U4096) Shl(k uint) U4096 {
	var z U4096
	shl(z[:], x[:], k)
	return z
}

// Shr returns x >> k.  Shifts of 4096 or more produce zero.
func (x U4096) Shr(k uint) U4096 {
	var z U4096
	shr(z[:], x[:], k)
	return z
}

// And returns the bitwise AND of x and y.
func (x U4096) And(y U4096) U4096 {
	for i := range x {
		x[i] &= y[i]
	}
	return x
}

// Or returns the bitwise OR of x and y.
func (x U4096) Or(y U4096) U4096 {
	for i := range x {
		x[i] |= y[i]
	}
	return x
}

// Xor returns the bitwise XOR of x and y.
func (x U4096) Xor(y U4096) U4096 {
	for i := range x {
		x[i] ^= y[i]
	}
	return x
}

// Not returns the bitwise complement of x.
func (x U4096) Not() U4096 {
	for i := range x {
		x[i] = ^x[i]
	}
	return x
}

// DivRem returns the quotient and remainder of x / y.  It panics with
// ErrDivisionByZero when y is zero.
func (x U4096) DivRem(y U4096) (q, r U4096) {
	divRem(q[:], r[:], x[:], y[:])
	return q, r
}

// Rem returns x mod y.  It panics with ErrDivisionByZero when y is zero.
func (x U4096) Rem(y U4096) U4096 {
	_, r := x.DivRem(y)
	return r
}
