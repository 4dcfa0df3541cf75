package modular

import (
	"fmt"

	"k256.nucleo.dev/ct"
	"k256.nucleo.dev/uintn"
)

// signed is a signed integer in signed-magnitude form.
type signed struct {
	mag uintn.U256
	neg bool
}

// sub returns x - y.  Magnitudes must stay below 2^256, which holds for the
// Bezout coefficients of two 256-bit values.
func (x signed) sub(y signed) signed {
	if x.neg != y.neg {
		// x - y = x + |y| with x's sign when the signs differ.
		return signed{mag: x.mag.WrappingAdd(y.mag), neg: x.neg}
	}
	if x.mag.Cmp(y.mag) >= 0 {
		return signed{mag: x.mag.WrappingSub(y.mag), neg: x.neg}
	}
	return signed{mag: y.mag.WrappingSub(x.mag), neg: !x.neg}
}

func notCoprime(m uintn.U256) error {
	log.Tracef("No modular inverse exists modulo %v", m)
	str := fmt.Sprintf("modular: value is not invertible modulo %v", m)
	return makeError(ErrNotCoprime, str)
}

// ModInverse returns x in [1, m) with a*x = 1 mod m using the extended
// Euclidean algorithm.  It fails with ErrNotCoprime when gcd(a, m) != 1,
// which includes a = 0 mod m and m = 1.
func ModInverse(a, m uintn.U256) (uintn.U256, error) {
	requireModulus(m)
	a = Reduce(a, m)
	if a.IsZero() || m == uintn.U256One {
		return uintn.U256{}, notCoprime(m)
	}

	// Invariant: oldR = oldS*a (mod m) and r = s*a (mod m).
	oldR, r := m, a
	oldS, s := signed{}, signed{mag: uintn.U256One}
	defer func() {
		ct.Zero(oldS.mag[:])
		ct.Zero(s.mag[:])
	}()
	for !r.IsZero() {
		q, rem := oldR.DivRem(r)
		oldR, r = r, rem
		qs, _ := q.MulWide(s.mag)
		oldS, s = s, oldS.sub(signed{mag: qs, neg: s.neg})
	}
	if oldR != uintn.U256One {
		return uintn.U256{}, notCoprime(m)
	}
	if oldS.neg {
		return m.WrappingSub(oldS.mag), nil
	}
	return oldS.mag, nil
}

// halveMod returns x/2 mod m for odd m.
func halveMod(x, m uintn.U256) uintn.U256 {
	if !x.IsOdd() {
		return x.Shr1()
	}
	s, carry := x.Add(m)
	s = s.Shr1()
	s[3] |= carry << 63
	return s
}

// ModInverseBinary computes the same result as ModInverse with the binary
// extended GCD, which trades divisions for shifts.  Even moduli are handed
// to ModInverse.
func ModInverseBinary(a, m uintn.U256) (uintn.U256, error) {
	requireModulus(m)
	if !m.IsOdd() {
		return ModInverse(a, m)
	}
	a = Reduce(a, m)
	if a.IsZero() || m == uintn.U256One {
		return uintn.U256{}, notCoprime(m)
	}

	// Invariant: u = x1*a and v = x2*a (mod m).
	u, v := a, m
	x1, x2 := uintn.U256One, uintn.U256Zero
	defer func() {
		ct.Zero(x1[:])
		ct.Zero(x2[:])
	}()
	for u != uintn.U256One && v != uintn.U256One {
		if u.IsZero() || v.IsZero() {
			return uintn.U256{}, notCoprime(m)
		}
		for !u.IsOdd() {
			u = u.Shr1()
			x1 = halveMod(x1, m)
		}
		for !v.IsOdd() {
			v = v.Shr1()
			x2 = halveMod(x2, m)
		}
		if u.Cmp(v) >= 0 {
			u = u.WrappingSub(v)
			x1 = subMod(x1, x2, m)
		} else {
			v = v.WrappingSub(u)
			x2 = subMod(x2, x1, m)
		}
	}
	if u == uintn.U256One {
		return x1, nil
	}
	return x2, nil
}

// GCD returns the greatest common divisor of a and b using Stein's binary
// algorithm.  GCD(0, 0) is 0.
func GCD(a, b uintn.U256) uintn.U256 {
	if a.IsZero() {
		return b
	}
	if b.IsZero() {
		return a
	}
	shift := min(a.TrailingZeros(), b.TrailingZeros())
	a = a.Shr(uint(a.TrailingZeros()))
	for !b.IsZero() {
		b = b.Shr(uint(b.TrailingZeros()))
		if a.Cmp(b) > 0 {
			a, b = b, a
		}
		b = b.WrappingSub(a)
	}
	return a.Shl(uint(shift))
}
