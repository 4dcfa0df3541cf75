package uintn

import (
	"fmt"
	"math/big"
)

// toBig returns x as a new big.Int.
func toBig(x []uint64) *big.Int {
	var buf [8 * maxLimbs]byte
	b := buf[:8*len(x)]
	fillBytes(b, x)
	return new(big.Int).SetBytes(b)
}

// setBig loads v into z.  Negative values and values wider than z are
// rejected with ErrInvalidInput.
func setBig(z []uint64, v *big.Int) error {
	if v.Sign() < 0 {
		return makeError(ErrInvalidInput, "uintn: negative value "+v.String())
	}
	if v.BitLen() > 64*len(z) {
		str := fmt.Sprintf("uintn: %d-bit value exceeds %d-bit width",
			v.BitLen(), 64*len(z))
		return makeError(ErrInvalidInput, str)
	}
	return setBytes(z, v.Bytes())
}
