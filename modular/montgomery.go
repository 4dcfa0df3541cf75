package modular

import (
	"fmt"

	"k256.nucleo.dev/ct"
	"k256.nucleo.dev/uintn"
)

// Montgomery holds the constants for Montgomery multiplication modulo an odd
// m with R = 2^256.  A context is derived once and never modified, so it is
// safe for concurrent use.
type Montgomery struct {
	m      uintn.U256
	r      uintn.U256 // R mod m
	r2     uintn.U256 // R^2 mod m
	nPrime uint64     // -m^-1 mod 2^64
}

// NewMontgomery derives the Montgomery context for m.  It fails with
// ErrEvenModulus when m is even and panics with ErrDivisionByZero when m is
// zero.
func NewMontgomery(m uintn.U256) (*Montgomery, error) {
	requireModulus(m)
	if !m.IsOdd() {
		str := fmt.Sprintf("modular: Montgomery form needs an odd modulus, got %v", m)
		return nil, makeError(ErrEvenModulus, str)
	}

	r := pow256(m)
	mont := &Montgomery{
		m:      m,
		r:      r,
		r2:     mulMod(r, r, m),
		nPrime: negInverse64(m[0]),
	}
	log.Debugf("Derived Montgomery context for modulus %v (n' = %#016x)", m,
		mont.nPrime)
	return mont, nil
}

// negInverse64 returns -m0^-1 mod 2^64 for odd m0.  Starting from x = m0,
// which is already correct to 3 bits, each Newton step doubles the number of
// correct bits, so five steps reach 96.
func negInverse64(m0 uint64) uint64 {
	x := m0
	for i := 0; i < 5; i++ {
		x *= 2 - m0*x
	}
	return -x
}

// Modulus returns m.
func (mt *Montgomery) Modulus() uintn.U256 { return mt.m }

// R returns 2^256 mod m.
func (mt *Montgomery) R() uintn.U256 { return mt.r }

// R2 returns 2^512 mod m.
func (mt *Montgomery) R2() uintn.U256 { return mt.r2 }

// NPrime returns -m^-1 mod 2^64.
func (mt *Montgomery) NPrime() uint64 { return mt.nPrime }

// One returns 1 in Montgomery form, which is R mod m.
func (mt *Montgomery) One() uintn.U256 { return mt.r }

// redc returns t * 2^-256 mod m for t < m * 2^256.  Each of the four rounds
// clears the lowest remaining limb by adding a multiple of m chosen with
// nPrime.
func (mt *Montgomery) redc(t [8]uint64) uintn.U256 {
	var top uint64
	for i := 0; i < 4; i++ {
		k := t[i] * mt.nPrime
		var c uint64
		for j := 0; j < 4; j++ {
			t[i+j], c = ct.Mac(k, mt.m[j], t[i+j], c)
		}
		for j := i + 4; j < 8; j++ {
			t[j], c = ct.Adc(t[j], c, 0)
		}
		top += c
	}

	// The quotient is below 2m: top*2^256 + t[4:8].
	var z uintn.U256
	copy(z[:], t[4:])
	if top != 0 || z.Cmp(mt.m) >= 0 {
		z = z.WrappingSub(mt.m)
	}
	ct.Zero(t[:])
	return z
}

// Mul returns x*y*R^-1 mod m.  For x and y in Montgomery form the result is
// the Montgomery form of their product.
func (mt *Montgomery) Mul(x, y uintn.U256) uintn.U256 {
	x, y = Reduce(x, mt.m), Reduce(y, mt.m)
	lo, hi := x.MulWide(y)
	return mt.redc(uintn.U512FromHalves(lo, hi))
}

// ToMont returns x*R mod m.
func (mt *Montgomery) ToMont(x uintn.U256) uintn.U256 {
	return mt.Mul(x, mt.r2)
}

// FromMont returns y*R^-1 mod m, converting out of Montgomery form.
func (mt *Montgomery) FromMont(y uintn.U256) uintn.U256 {
	return mt.redc(Reduce(y, mt.m).Widen())
}

// Exp returns base^exp mod m computed in Montgomery form.  Inputs and output
// are ordinary residues.  Like PowMod it always runs 256 iterations.
func (mt *Montgomery) Exp(base, exp uintn.U256) uintn.U256 {
	acc := mt.ToMont(base)
	result := mt.r
	for i := 0; i < 256; i++ {
		if exp.Bit(i) == 1 {
			result = mt.Mul(result, acc)
		}
		acc = mt.Mul(acc, acc)
	}
	return mt.FromMont(result)
}
