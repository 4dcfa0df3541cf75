// Package modular implements arithmetic over uintn.U256 residues modulo an
// arbitrary non-zero modulus, plus a Montgomery context for odd moduli.
//
// Every function reduces its operands before use and returns a canonical
// residue in [0, m).  The final conditional subtractions are data-dependent,
// so timing is bounded but not constant; use Select where a branch-free
// choice between residues is needed.
//
// A zero modulus is a programming error and panics with an Error of kind
// ErrDivisionByZero.
package modular

import (
	"k256.nucleo.dev/ct"
	"k256.nucleo.dev/uintn"
)

func requireModulus(m uintn.U256) {
	if m.IsZero() {
		panic(makeError(ErrDivisionByZero, "modular: zero modulus"))
	}
}

// Reduce returns a mod m.
func Reduce(a, m uintn.U256) uintn.U256 {
	requireModulus(m)
	if a.Cmp(m) < 0 {
		return a
	}
	return a.Rem(m)
}

// AddMod returns (a + b) mod m.
func AddMod(a, b, m uintn.U256) uintn.U256 {
	requireModulus(m)
	return addMod(Reduce(a, m), Reduce(b, m), m)
}

// addMod requires a, b < m.
func addMod(a, b, m uintn.U256) uintn.U256 {
	s, carry := a.Add(b)
	if carry != 0 {
		// The true sum a+b lies in [2^256, 2m), so a+b-m is below m.
		// Computing (a-m)+b mod 2^256 reaches it without a 257-bit value.
		return a.WrappingSub(m).WrappingAdd(b)
	}
	if s.Cmp(m) >= 0 {
		s = s.WrappingSub(m)
	}
	return s
}

// SubMod returns (a - b) mod m.
func SubMod(a, b, m uintn.U256) uintn.U256 {
	requireModulus(m)
	return subMod(Reduce(a, m), Reduce(b, m), m)
}

// subMod requires a, b < m.
func subMod(a, b, m uintn.U256) uintn.U256 {
	if a.Cmp(b) >= 0 {
		return a.WrappingSub(b)
	}
	return m.WrappingSub(b.WrappingSub(a))
}

// NegMod returns -a mod m.
func NegMod(a, m uintn.U256) uintn.U256 {
	requireModulus(m)
	return subMod(uintn.U256Zero, Reduce(a, m), m)
}

// MulMod returns (a * b) mod m for any non-zero m.
func MulMod(a, b, m uintn.U256) uintn.U256 {
	requireModulus(m)
	return mulMod(Reduce(a, m), Reduce(b, m), m)
}

func mulMod(a, b, m uintn.U256) uintn.U256 {
	lo, hi := a.MulWide(b)
	return reduceWide(lo, hi, m)
}

// reduceWide returns (hi*2^256 + lo) mod m.  It walks the bits of hi,
// adding 2^(256+i) mod m for every set bit i.
func reduceWide(lo, hi, m uintn.U256) uintn.U256 {
	result := Reduce(lo, m)
	power := pow256(m)
	for i := 0; i < 256; i++ {
		if hi.Bit(i) == 1 {
			result = addMod(result, power, m)
		}
		power = addMod(power, power, m)
	}
	return result
}

// pow256 returns 2^256 mod m.  2^256 - m fits in 256 bits for any non-zero
// m and is congruent to 2^256.
func pow256(m uintn.U256) uintn.U256 {
	return Reduce(uintn.U256Zero.WrappingSub(m), m)
}

// PowMod returns base^exp mod m by square-and-multiply over all 256 bits of
// exp, least significant first.  The loop never exits early, so its length
// does not depend on exp.
func PowMod(base, exp, m uintn.U256) uintn.U256 {
	requireModulus(m)
	result := Reduce(uintn.U256One, m)
	acc := Reduce(base, m)
	for i := 0; i < 256; i++ {
		if exp.Bit(i) == 1 {
			result = mulMod(result, acc, m)
		}
		acc = mulMod(acc, acc, m)
	}
	return result
}

// Select returns x when cond is true and y otherwise without branching on
// cond or on the values.
func Select(cond bool, x, y uintn.U256) uintn.U256 {
	var z uintn.U256
	ct.SelectLimbs(cond, z[:], x[:], y[:])
	return z
}
