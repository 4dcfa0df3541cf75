package modular

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"k256.nucleo.dev/uintn"
	"pgregory.net/rapid"
)

var (
	// secp256k1 field prime and group order.
	fieldP = uintn.U256{0xFFFFFFFEFFFFFC2F, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF}
	orderN = uintn.U256{0xBFD25E8CD0364141, 0xBAAEDCE6AF48A03B, 0xFFFFFFFFFFFFFFFE, 0xFFFFFFFFFFFFFFFF}
)

func u(v uint64) uintn.U256 {
	return uintn.U256FromU64(v)
}

// genU256 draws values of every magnitude from 0 up to 2^256-1.
func genU256() *rapid.Generator[uintn.U256] {
	return rapid.Custom(func(t *rapid.T) uintn.U256 {
		b := rapid.SliceOfN(rapid.Byte(), 0, 32).Draw(t, "bytes")
		v, err := uintn.U256FromBytesBE(b)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return v
	})
}

// genModulus draws the secp256k1 moduli as well as arbitrary non-zero ones.
func genModulus() *rapid.Generator[uintn.U256] {
	return rapid.OneOf(
		rapid.Just(fieldP),
		rapid.Just(orderN),
		genU256().Filter(func(m uintn.U256) bool { return !m.IsZero() }),
	)
}

func genOddModulus() *rapid.Generator[uintn.U256] {
	return genModulus().Filter(func(m uintn.U256) bool { return m.IsOdd() })
}

func bigMod(v, m uintn.U256) *big.Int {
	return new(big.Int).Mod(v.Big(), m.Big())
}

// requireKindPanic asserts that fn panics with an error of the given kind.
func requireKindPanic(t *testing.T, kind error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		err, ok := r.(error)
		require.True(t, ok, "expected an error panic, got %v", r)
		require.ErrorIs(t, err, kind)
	}()
	fn()
}

func TestLiterals(t *testing.T) {
	seven := u(7)
	require.Equal(t, u(1), AddMod(u(10), u(5), seven))
	require.Equal(t, u(5), SubMod(u(3), u(5), seven))
	require.Equal(t, u(5), AddMod(u(10), u(20), u(25)))
	require.Equal(t, u(15), SubMod(u(10), u(20), u(25)))
	require.Equal(t, u(24), PowMod(u(2), u(10), u(1000)))
	require.Equal(t, u(4), NegMod(u(3), seven))
	require.Equal(t, uintn.U256Zero, NegMod(uintn.U256Zero, seven))
	require.Equal(t, u(6), Reduce(u(1000), seven))
	require.Equal(t, uintn.U256Zero, PowMod(u(5), u(3), uintn.U256One))
	require.Equal(t, uintn.U256One, PowMod(uintn.U256Zero, uintn.U256Zero, seven))
}

func TestAddModOverflow(t *testing.T) {
	pm1 := fieldP.WrappingSub(uintn.U256One)
	pm2 := fieldP.WrappingSub(u(2))

	// (p-1) + (p-1) overflows 2^256 and must come back as p-2.
	require.Equal(t, pm2, AddMod(pm1, pm1, fieldP))
	require.Equal(t, uintn.U256Zero, AddMod(pm1, uintn.U256One, fieldP))

	// Unreduced operands are reduced first.
	require.Equal(t, uintn.U256One, AddMod(fieldP, uintn.U256One, fieldP))

	// MAX mod p = 2^32 + 976.
	require.Equal(t, u(0x2000007A0), AddMod(uintn.U256Max, uintn.U256Max, fieldP))
}

func TestMulModWideReduce(t *testing.T) {
	for _, m := range []uintn.U256{fieldP, orderN, u(1000003), u(0x10001)} {
		mm1 := m.WrappingSub(uintn.U256One)
		require.Equal(t, uintn.U256One, MulMod(mm1, mm1, m),
			"(m-1)^2 should be 1 mod %v", m)
	}
}

func TestModInverseLiterals(t *testing.T) {
	inv, err := ModInverse(u(3), u(7))
	require.NoError(t, err)
	require.Equal(t, u(5), inv)

	inv, err = ModInverse(u(17), u(43))
	require.NoError(t, err)
	require.Equal(t, u(38), inv)

	_, err = ModInverse(u(2), u(4))
	require.ErrorIs(t, err, ErrNotCoprime)
	_, err = ModInverse(uintn.U256Zero, fieldP)
	require.ErrorIs(t, err, ErrNotCoprime)
	_, err = ModInverse(fieldP, fieldP)
	require.ErrorIs(t, err, ErrNotCoprime)
	_, err = ModInverseBinary(u(6), u(9))
	require.ErrorIs(t, err, ErrNotCoprime)

	var merr Error
	require.True(t, errors.As(err, &merr))

	require.Equal(t, u(6), GCD(u(48), u(18)))
	require.Equal(t, u(18), GCD(uintn.U256Zero, u(18)))
	require.Equal(t, uintn.U256One, GCD(fieldP, orderN))
}

func TestZeroModulusPanics(t *testing.T) {
	zero := uintn.U256Zero
	requireKindPanic(t, ErrDivisionByZero, func() { AddMod(u(1), u(2), zero) })
	requireKindPanic(t, ErrDivisionByZero, func() { SubMod(u(1), u(2), zero) })
	requireKindPanic(t, ErrDivisionByZero, func() { MulMod(u(1), u(2), zero) })
	requireKindPanic(t, ErrDivisionByZero, func() { PowMod(u(1), u(2), zero) })
	requireKindPanic(t, ErrDivisionByZero, func() { ModInverse(u(1), zero) })
	requireKindPanic(t, ErrDivisionByZero, func() { NewMontgomery(zero) })
}

func TestArithmeticMatchesBig(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := genModulus().Draw(t, "m")
		a, b := genU256().Draw(t, "a"), genU256().Draw(t, "b")
		mb := m.Big()

		want := new(big.Int).Add(a.Big(), b.Big())
		require.Zero(t, want.Mod(want, mb).Cmp(AddMod(a, b, m).Big()), "AddMod")

		want = new(big.Int).Sub(a.Big(), b.Big())
		require.Zero(t, want.Mod(want, mb).Cmp(SubMod(a, b, m).Big()), "SubMod")

		want = new(big.Int).Mul(a.Big(), b.Big())
		require.Zero(t, want.Mod(want, mb).Cmp(MulMod(a, b, m).Big()), "MulMod")

		want = new(big.Int).Neg(a.Big())
		require.Zero(t, want.Mod(want, mb).Cmp(NegMod(a, m).Big()), "NegMod")

		require.Zero(t, bigMod(a, m).Cmp(Reduce(a, m).Big()), "Reduce")
	})
}

func TestPowModMatchesBig(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := genModulus().Draw(t, "m")
		base, exp := genU256().Draw(t, "base"), genU256().Draw(t, "exp")
		want := new(big.Int).Exp(base.Big(), exp.Big(), m.Big())
		require.Zero(t, want.Cmp(PowMod(base, exp, m).Big()))
	})
}

func TestFermat(t *testing.T) {
	pm1 := fieldP.WrappingSub(uintn.U256One)
	rapid.Check(t, func(t *rapid.T) {
		a := genU256().Filter(func(v uintn.U256) bool {
			return !Reduce(v, fieldP).IsZero()
		}).Draw(t, "a")
		require.Equal(t, uintn.U256One, PowMod(a, pm1, fieldP))
	})
}

func TestInverse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := rapid.OneOf(rapid.Just(fieldP), rapid.Just(orderN)).Draw(t, "m")
		a := genU256().Filter(func(v uintn.U256) bool {
			return !Reduce(v, m).IsZero()
		}).Draw(t, "a")

		inv, err := ModInverse(a, m)
		require.NoError(t, err)
		require.Equal(t, uintn.U256One, MulMod(a, inv, m))
		require.Equal(t, -1, inv.Cmp(m))
	})
}

func TestInverseVariantsAgree(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := genModulus().Draw(t, "m")
		a := genU256().Draw(t, "a")

		eea, errEEA := ModInverse(a, m)
		bin, errBin := ModInverseBinary(a, m)
		if errEEA != nil {
			require.ErrorIs(t, errEEA, ErrNotCoprime)
			require.ErrorIs(t, errBin, ErrNotCoprime)
			if m != uintn.U256One {
				require.Nil(t, new(big.Int).ModInverse(a.Big(), m.Big()))
			}
			return
		}
		require.NoError(t, errBin)
		require.Equal(t, eea.Bytes(), bin.Bytes())

		want := new(big.Int).ModInverse(a.Big(), m.Big())
		require.NotNil(t, want)
		require.Zero(t, want.Cmp(eea.Big()))
	})
}

func TestNegInverse64(t *testing.T) {
	require.Equal(t, uint64(0), 97*negInverse64(97)+1)
	rapid.Check(t, func(t *rapid.T) {
		m0 := rapid.Uint64().Draw(t, "m0") | 1
		require.Equal(t, uint64(0), m0*negInverse64(m0)+1)
	})
}

func TestMontgomeryContext(t *testing.T) {
	mont, err := NewMontgomery(fieldP)
	require.NoError(t, err)
	require.Equal(t, fieldP, mont.Modulus())

	// 2^256 mod p = 2^32 + 977.
	require.Equal(t, u(0x1000003D1), mont.R())
	require.Equal(t, mont.R(), mont.One())
	require.Equal(t, MulMod(mont.R(), mont.R(), fieldP), mont.R2())

	_, err = NewMontgomery(u(1000))
	require.ErrorIs(t, err, ErrEvenModulus)
}

func TestMontgomeryMatchesSlowPath(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := genOddModulus().Draw(t, "m")
		x, y := genU256().Draw(t, "x"), genU256().Draw(t, "y")
		mont, err := NewMontgomery(m)
		require.NoError(t, err)

		wantR := new(big.Int).Lsh(big.NewInt(1), 256)
		require.Zero(t, wantR.Mod(wantR, m.Big()).Cmp(mont.R().Big()))

		xm, ym := mont.ToMont(x), mont.ToMont(y)
		require.Equal(t, Reduce(x, m), mont.FromMont(xm))
		require.Equal(t, MulMod(x, y, m), mont.FromMont(mont.Mul(xm, ym)))
		require.Equal(t, MulMod(x, mont.R(), m), xm)
	})
}

func TestMontgomeryExp(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := genOddModulus().Draw(t, "m")
		base, exp := genU256().Draw(t, "base"), genU256().Draw(t, "exp")
		mont, err := NewMontgomery(m)
		require.NoError(t, err)
		require.Equal(t, PowMod(base, exp, m), mont.Exp(base, exp))
	})
}

func TestSelect(t *testing.T) {
	a, b := u(1), fieldP
	require.Equal(t, a, Select(true, a, b))
	require.Equal(t, b, Select(false, a, b))
}
