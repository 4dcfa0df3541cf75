package uintn

import "github.com/decred/dcrd/math/uint256"

// Uint256 returns x as a decred uint256.Uint256.
func (x U256) Uint256() *uint256.Uint256 {
	b := x.Bytes()
	return new(uint256.Uint256).SetBytes(&b)
}

// U256FromUint256 converts a decred uint256.Uint256.  Both types hold
// exactly 256 bits so the conversion cannot fail.
func U256FromUint256(n *uint256.Uint256) U256 {
	b := n.Bytes()
	z, _ := U256FromBytesBE(b[:])
	return z
}

// U512FromHalves joins two 256-bit halves into hi*2^256 + lo.
func U512FromHalves(lo, hi U256) U512 {
	var z U512
	copy(z[:4], lo[:])
	copy(z[4:], hi[:])
	return z
}

// Halves splits x into its low and high 256-bit halves.
func (x U512) Halves() (lo, hi U256) {
	copy(lo[:], x[:4])
	copy(hi[:], x[4:])
	return lo, hi
}

// Widen zero-extends x to 512 bits.
func (x U256) Widen() U512 {
	return U512FromHalves(x, U256Zero)
}
