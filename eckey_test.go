package k256

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"k256.nucleo.dev/uintn"
)

func TestSeckeyVerify(t *testing.T) {
	n := orderN.Bytes()
	nm1 := orderN.WrappingSub(uintn.U256One).Bytes()
	one := uintn.U256One.Bytes()
	var zero [32]byte

	tests := []struct {
		name  string
		key   []byte
		valid bool
	}{
		{"one", one[:], true},
		{"n-1", nm1[:], true},
		{"zero", zero[:], false},
		{"n", n[:], false},
		{"short", one[1:], false},
		{"long", append(one[:], 0), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SeckeyVerify(tt.key); got != tt.valid {
				t.Errorf("SeckeyVerify = %v, want %v", got, tt.valid)
			}
			_, err := PrivKeyFromBytes(tt.key)
			if tt.valid {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrInvalidInput)
			}
		})
	}
}

func TestPrivateKeyBasics(t *testing.T) {
	_, err := NewPrivateKey(uintn.U256Zero)
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = NewPrivateKey(orderN)
	require.ErrorIs(t, err, ErrInvalidInput)

	priv, err := NewPrivateKey(uintn.U256One)
	require.NoError(t, err)
	require.True(t, priv.PubKey().Point().Equal(Generator()))
	require.Equal(t, uintn.U256One, priv.Scalar())

	b := priv.Bytes()
	again, err := PrivKeyFromBytes(b[:])
	require.NoError(t, err)
	require.Equal(t, priv.Scalar(), again.Scalar())

	neg := priv.Negate()
	require.True(t, neg.PubKey().Point().Equal(Generator().Neg()))

	priv.Zero()
	require.True(t, priv.Scalar().IsZero())
}

func TestPrivateKeyTweaks(t *testing.T) {
	priv, err := NewPrivateKey(testScalar(3))
	require.NoError(t, err)
	tweak := testScalar(4)
	tb := tweak.Bytes()

	sum, err := priv.TweakAdd(tb[:])
	require.NoError(t, err)
	require.Equal(t, scalarAdd(priv.Scalar(), tweak), sum.Scalar())

	prod, err := priv.TweakMul(tb[:])
	require.NoError(t, err)
	require.Equal(t, scalarMul(priv.Scalar(), tweak), prod.Scalar())

	negD := priv.Negate().Bytes()
	_, err = priv.TweakAdd(negD[:])
	require.ErrorIs(t, err, ErrInvalidInput)

	n := orderN.Bytes()
	_, err = priv.TweakMul(n[:])
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestGenerateKeyPair(t *testing.T) {
	kp, err := GenerateKeyPair(rand.Reader)
	require.NoError(t, err)
	require.True(t, kp.Public.IsEqual(kp.Private.PubKey()))

	kp2, err := GenerateKeyPair(rand.Reader)
	require.NoError(t, err)
	require.False(t, kp.Public.IsEqual(kp2.Public))

	_, err = GenerateKeyPair(bytes.NewReader(nil))
	require.Error(t, err)

	kp.Zero()
	require.True(t, kp.Private.Scalar().IsZero())
}

func TestKeyPairFromSeed(t *testing.T) {
	seed := []byte("correct horse battery staple")
	a, err := KeyPairFromSeed(seed)
	require.NoError(t, err)
	b, err := KeyPairFromSeed(seed)
	require.NoError(t, err)
	require.Equal(t, a.Private.Scalar(), b.Private.Scalar())
	require.True(t, a.Public.IsEqual(b.Public))

	first := taggedHash(tagKeyFromSeed, seed, []byte{0, 0, 0, 0})
	require.Equal(t, first, a.Private.Bytes())

	c, err := KeyPairFromSeed(append(seed, '!'))
	require.NoError(t, err)
	require.False(t, a.Public.IsEqual(c.Public))

	_, err = KeyPairFromSeed(seed[:15])
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestNewKeyPair(t *testing.T) {
	kp, err := NewKeyPair(uintn.U256FromU64(2))
	require.NoError(t, err)
	require.True(t, kp.Public.Point().Equal(Generator().Double()))

	_, err = NewKeyPair(uintn.U256Zero)
	require.ErrorIs(t, err, ErrInvalidInput)
}
