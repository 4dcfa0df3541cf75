package k256

import "k256.nucleo.dev/uintn"

// CurveParams describes a short Weierstrass curve y^2 = x^3 + a*x + b over
// F_p with a generator (Gx, Gy) of prime order N and cofactor H.
type CurveParams struct {
	P      uintn.U256
	N      uintn.U256
	A      uintn.U256
	B      uintn.U256
	Gx, Gy uintn.U256
	H      uint64
	Name   string
}

var (
	// fieldP is the secp256k1 field prime 2^256 - 2^32 - 977.
	fieldP = uintn.U256{0xFFFFFFFEFFFFFC2F, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF}

	// orderN is the order of the group generated by G.
	orderN = uintn.U256{0xBFD25E8CD0364141, 0xBAAEDCE6AF48A03B, 0xFFFFFFFFFFFFFFFE, 0xFFFFFFFFFFFFFFFF}

	curveB = uintn.U256FromU64(7)

	generatorX = uintn.U256{0x59F2815B16F81798, 0x029BFCDB2DCE28D9, 0x55A06295CE870B07, 0x79BE667EF9DCBBAC}
	generatorY = uintn.U256{0x9C47D08FFB10D4B8, 0xFD17B448A6855419, 0x5DA4FBFC0E1108A8, 0x483ADA7726A3C465}
)

// Params returns the secp256k1 parameters.  The result is a copy.
func Params() CurveParams {
	return CurveParams{
		P:    fieldP,
		N:    orderN,
		B:    curveB,
		Gx:   generatorX,
		Gy:   generatorY,
		H:    1,
		Name: "secp256k1",
	}
}
