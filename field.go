package k256

import (
	"k256.nucleo.dev/modular"
	"k256.nucleo.dev/uintn"
)

// Field elements are uintn.U256 residues modulo fieldP.  The affine group
// law uses the plain modular routines below; the Jacobian code in ecmult.go
// keeps coordinates in Montgomery form under fieldMont.

// fieldMont is derived once at package load and never modified.
var fieldMont = mustMontgomery(fieldP)

// sqrtExp is (p+1)/4.  p = 3 mod 4, so a^sqrtExp is a square root of a
// whenever one exists.
var sqrtExp = fieldP.WrappingAdd(uintn.U256One).Shr(2)

func mustMontgomery(m uintn.U256) *modular.Montgomery {
	mont, err := modular.NewMontgomery(m)
	if err != nil {
		panic(err)
	}
	return mont
}

func feAdd(a, b uintn.U256) uintn.U256 { return modular.AddMod(a, b, fieldP) }
func feSub(a, b uintn.U256) uintn.U256 { return modular.SubMod(a, b, fieldP) }
func feMul(a, b uintn.U256) uintn.U256 { return modular.MulMod(a, b, fieldP) }
func feSqr(a uintn.U256) uintn.U256    { return modular.MulMod(a, a, fieldP) }
func feNeg(a uintn.U256) uintn.U256    { return modular.NegMod(a, fieldP) }

// feInv returns a^-1 mod p.  a must be non-zero mod p; p is prime so the
// inverse then always exists.
func feInv(a uintn.U256) uintn.U256 {
	inv, err := modular.ModInverse(a, fieldP)
	if err != nil {
		panic(err)
	}
	return inv
}

// feIsValid reports whether a is a canonical field element.
func feIsValid(a uintn.U256) bool {
	return a.Cmp(fieldP) < 0
}

// feSqrt returns a square root of a and whether one exists.  Of the two
// roots the one returned is whichever a^((p+1)/4) yields.
func feSqrt(a uintn.U256) (uintn.U256, bool) {
	r := fieldMont.Exp(a, sqrtExp)
	return r, feSqr(r) == modular.Reduce(a, fieldP)
}

// curveRHS returns x^3 + 7 mod p.
func curveRHS(x uintn.U256) uintn.U256 {
	return feAdd(feMul(feSqr(x), x), curveB)
}
