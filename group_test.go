package k256

import (
	"crypto/sha256"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"k256.nucleo.dev/uintn"
)

// testScalar returns a deterministic scalar in [1, n-1] for index i.
func testScalar(i byte) uintn.U256 {
	digest := sha256.Sum256([]byte{'k', 'e', 'y', i})
	k, _ := uintn.U256FromBytesBE(digest[:])
	k = k.Rem(orderN)
	if k.IsZero() {
		k = uintn.U256One
	}
	return k
}

func TestGroupBasics(t *testing.T) {
	g := Generator()
	if !g.IsOnCurve() {
		t.Fatal("generator should be on the curve")
	}
	if g.IsInfinity() {
		t.Fatal("generator should not be the identity")
	}

	inf := Infinity()
	if !inf.IsInfinity() || !inf.IsOnCurve() {
		t.Error("identity should be on the curve")
	}
	var zero Point
	if zero.IsInfinity() {
		t.Error("zero Point should not be the identity")
	}
	if zero.IsOnCurve() {
		t.Error("zero Point (0, 0) should not be on the curve")
	}
	if zero.Equal(inf) {
		t.Error("zero Point should not equal the identity")
	}
	if !inf.X().IsZero() || !inf.Y().IsZero() {
		t.Error("identity coordinates should read as zero")
	}
	if inf.String() != "infinity" {
		t.Errorf("identity String = %q", inf.String())
	}
}

func TestPointAdd(t *testing.T) {
	g := Generator()
	inf := Infinity()

	t.Run("identity", func(t *testing.T) {
		require.True(t, g.Add(inf).Equal(g))
		require.True(t, inf.Add(g).Equal(g))
		require.True(t, inf.Add(inf).IsInfinity())
	})

	t.Run("inverse", func(t *testing.T) {
		negG := Point{x: generatorX, y: fieldP.WrappingSub(generatorY)}
		require.True(t, g.Neg().Equal(negG))
		require.True(t, g.Add(negG).IsInfinity())
		require.True(t, negG.Add(g).IsInfinity())
		require.True(t, g.Neg().Neg().Equal(g))
		require.True(t, inf.Neg().IsInfinity())
	})

	t.Run("double", func(t *testing.T) {
		require.True(t, g.Double().Equal(g.Add(g)))
		require.True(t, inf.Double().IsInfinity())
		require.True(t, g.Double().IsOnCurve())
	})

	t.Run("commutative", func(t *testing.T) {
		p := g.Double()
		q := p.Add(g)
		require.True(t, p.Add(q).Equal(q.Add(p)))
	})

	t.Run("associative", func(t *testing.T) {
		a := g
		b := g.Double()
		c := b.Add(g).Double()
		lhs := a.Add(b).Add(c)
		rhs := a.Add(b.Add(c))
		require.True(t, lhs.Equal(rhs))
		require.True(t, lhs.IsOnCurve())
	})

	t.Run("known 2G", func(t *testing.T) {
		x, err := uintn.U256FromHex("0xc6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5")
		require.NoError(t, err)
		y, err := uintn.U256FromHex("0x1ae168fea63dc339a3c58419466ceaeef7f632653266d0e1236431a950cfe52a")
		require.NoError(t, err)
		require.Equal(t, x, g.Double().X())
		require.Equal(t, y, g.Double().Y())
	})
}

func TestNewPoint(t *testing.T) {
	tests := []struct {
		name string
		x, y uintn.U256
		kind ErrorKind
	}{
		{"x not below p", fieldP, generatorY, ErrInvalidInput},
		{"y not below p", generatorX, uintn.U256Max, ErrInvalidInput},
		{"off curve", generatorX, generatorX, ErrNotOnCurve},
		{"origin", uintn.U256Zero, uintn.U256Zero, ErrNotOnCurve},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPoint(tt.x, tt.y)
			if !errors.Is(err, tt.kind) {
				t.Errorf("got %v, want %v", err, tt.kind)
			}
		})
	}

	p, err := NewPoint(generatorX, generatorY)
	require.NoError(t, err)
	require.True(t, p.Equal(Generator()))
}

func TestPointStorage(t *testing.T) {
	g := Generator()
	b := g.Bytes()
	p, err := PointFromBytes(b[:])
	require.NoError(t, err)
	require.True(t, p.Equal(g))

	inf := Infinity().Bytes()
	require.Equal(t, [64]byte{}, inf)
	p, err = PointFromBytes(inf[:])
	require.NoError(t, err)
	require.True(t, p.IsInfinity())

	_, err = PointFromBytes(b[:63])
	require.ErrorIs(t, err, ErrInvalidInput)

	b[63] ^= 1
	_, err = PointFromBytes(b[:])
	require.ErrorIs(t, err, ErrNotOnCurve)
}

func TestParams(t *testing.T) {
	p := Params()
	require.Equal(t, "secp256k1", p.Name)
	require.Equal(t, uint64(1), p.H)
	require.True(t, p.A.IsZero())
	require.Equal(t, uintn.U256FromU64(7), p.B)
	require.Equal(t, fieldP, p.P)
	require.Equal(t, orderN, p.N)

	// Mutating the copy leaves the package constants alone.
	p.P = uintn.U256Zero
	require.Equal(t, fieldP, Params().P)
}

func TestFieldHelpers(t *testing.T) {
	pm1 := fieldP.WrappingSub(uintn.U256One)
	require.Equal(t, uintn.U256One, feMul(pm1, pm1))
	require.Equal(t, uintn.U256One, feSqr(pm1))
	require.Equal(t, pm1, feNeg(uintn.U256One))
	require.True(t, feIsValid(pm1))
	require.False(t, feIsValid(fieldP))

	for i := byte(0); i < 8; i++ {
		a := testScalar(i)
		require.Equal(t, uintn.U256One, feMul(a, feInv(a)))

		// Every square has a root, and the root squares back.
		sq := feSqr(a)
		r, ok := feSqrt(sq)
		require.True(t, ok)
		require.Equal(t, sq, feSqr(r))
	}

	// -1 is a non-residue because p = 3 mod 4.
	_, ok := feSqrt(pm1)
	require.False(t, ok)

	require.Equal(t, feSqr(generatorY), curveRHS(generatorX))
}

func TestScalarHelpers(t *testing.T) {
	nm1 := orderN.WrappingSub(uintn.U256One)
	tests := []struct {
		name  string
		k     uintn.U256
		valid bool
	}{
		{"zero", uintn.U256Zero, false},
		{"one", uintn.U256One, true},
		{"n-1", nm1, true},
		{"n", orderN, false},
		{"max", uintn.U256Max, false},
	}
	for _, tt := range tests {
		if got := scalarIsValid(tt.k); got != tt.valid {
			t.Errorf("%s: scalarIsValid = %v, want %v", tt.name, got, tt.valid)
		}
	}

	require.Equal(t, uintn.U256Zero, scalarAdd(nm1, uintn.U256One))
	require.Equal(t, uintn.U256One, scalarMul(nm1, nm1))
	require.Equal(t, nm1, scalarNeg(uintn.U256One))
	require.Equal(t, uintn.U256Zero, scalarNeg(uintn.U256Zero))

	_, err := parseScalar(make([]byte, 31), "tweak")
	require.ErrorIs(t, err, ErrInvalidInput)
}
