package k256

import (
	"bytes"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/require"
	"k256.nucleo.dev/uintn"
)

func TestScalarMulEdges(t *testing.T) {
	g := Generator()
	nm1 := orderN.WrappingSub(uintn.U256One)

	tests := []struct {
		name string
		k    uintn.U256
		want Point
	}{
		{"zero", uintn.U256Zero, Infinity()},
		{"one", uintn.U256One, g},
		{"two", uintn.U256FromU64(2), g.Double()},
		{"n-1", nm1, g.Neg()},
		{"n", orderN, Infinity()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.ScalarMul(tt.k); !got.Equal(tt.want) {
				t.Errorf("ScalarMul = %v, want %v", got, tt.want)
			}
			if got := g.ScalarMulCT(tt.k); !got.Equal(tt.want) {
				t.Errorf("ScalarMulCT = %v, want %v", got, tt.want)
			}
		})
	}

	if !Infinity().ScalarMulCT(uintn.U256FromU64(5)).IsInfinity() {
		t.Error("k*O should be O")
	}
}

func TestScalarMulPathsAgree(t *testing.T) {
	g := Generator()
	for i := byte(0); i < 4; i++ {
		k := testScalar(i)
		slow := g.ScalarMul(k)
		fast := ScalarBaseMul(k)
		require.True(t, slow.IsOnCurve())
		require.True(t, slow.Equal(fast), "k=%v", k)

		// Non-generator base point.
		p := g.Double().Add(g)
		require.True(t, p.ScalarMul(k).Equal(p.ScalarMulCT(k)))
	}
}

func TestScalarMulDistributes(t *testing.T) {
	for i := byte(0); i < 4; i++ {
		a, b := testScalar(2*i), testScalar(2*i+1)
		sum := ScalarBaseMul(scalarAdd(a, b))
		require.True(t, sum.Equal(ScalarBaseMul(a).Add(ScalarBaseMul(b))))

		// (a*b)*G = a*(b*G)
		prod := ScalarBaseMul(scalarMul(a, b))
		require.True(t, prod.Equal(ScalarBaseMul(b).ScalarMulCT(a)))
	}
}

func TestScalarBaseMulMatchesDecred(t *testing.T) {
	for i := byte(0); i < 8; i++ {
		k := testScalar(i)
		kb := k.Bytes()

		ours, err := NewPublicKey(ScalarBaseMul(k))
		require.NoError(t, err)
		theirs := secp256k1.PrivKeyFromBytes(kb[:]).PubKey()
		if !bytes.Equal(ours.SerializeUncompressed(), theirs.SerializeUncompressed()) {
			t.Errorf("k=%v: got %x, want %x", k,
				ours.SerializeUncompressed(), theirs.SerializeUncompressed())
		}
	}
}

func TestJacobianRoundTrip(t *testing.T) {
	g := Generator()
	j := toJacobian(g)
	require.True(t, j.toAffine().Equal(g))

	inf := jacobianInfinity()
	require.True(t, inf.isInfinity())
	require.True(t, inf.toAffine().IsInfinity())
	infJ := toJacobian(Infinity())
	require.True(t, infJ.isInfinity())

	// Complete addition handles every case the affine Add branches on.
	sum := j.add(&j)
	require.True(t, sum.toAffine().Equal(g.Double()))
	sum = j.add(&inf)
	require.True(t, sum.toAffine().Equal(g))
	sum = inf.add(&j)
	require.True(t, sum.toAffine().Equal(g))
	neg := toJacobian(g.Neg())
	sum = j.add(&neg)
	require.True(t, sum.isInfinity())
	d := j.double()
	require.True(t, d.toAffine().Equal(g.Double()))
	sum = d.add(&j)
	require.True(t, sum.toAffine().Equal(g.Double().Add(g)))
}
