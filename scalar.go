package k256

import (
	"fmt"

	"k256.nucleo.dev/ct"
	"k256.nucleo.dev/modular"
	"k256.nucleo.dev/uintn"
)

// Scalars are uintn.U256 residues modulo the group order orderN.

// scalarIsValid reports whether k lies in [1, n-1] without branching on k.
func scalarIsValid(k uintn.U256) bool {
	return !k.Equal(uintn.U256Zero) && k.CmpCT(orderN) < 0
}

// parseScalar decodes a 32-byte big-endian scalar and requires it to lie in
// [1, n-1].  what names the value in error descriptions.
func parseScalar(b []byte, what string) (uintn.U256, error) {
	if len(b) != 32 {
		str := fmt.Sprintf("k256: %s must be 32 bytes, got %d", what, len(b))
		return uintn.U256{}, makeError(ErrInvalidInput, str)
	}
	k, err := uintn.U256FromBytesBE(b)
	if err != nil {
		return uintn.U256{}, makeError(ErrInvalidInput, err.Error())
	}
	if !scalarIsValid(k) {
		ct.Zero(k[:])
		str := fmt.Sprintf("k256: %s is zero or not below the group order", what)
		return uintn.U256{}, makeError(ErrInvalidInput, str)
	}
	return k, nil
}

func scalarAdd(a, b uintn.U256) uintn.U256 { return modular.AddMod(a, b, orderN) }
func scalarMul(a, b uintn.U256) uintn.U256 { return modular.MulMod(a, b, orderN) }
func scalarNeg(a uintn.U256) uintn.U256    { return modular.NegMod(a, orderN) }
