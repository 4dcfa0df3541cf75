package k256

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"k256.nucleo.dev/ct"
	"k256.nucleo.dev/uintn"
)

// PrivateKey is a secp256k1 secret scalar d in [1, n-1].
type PrivateKey struct {
	d uintn.U256
}

// KeyPair is a private key d together with its public key Q = d*G.
type KeyPair struct {
	Private *PrivateKey
	Public  *PublicKey
}

// SeckeyVerify reports whether b is a valid 32-byte secret key.
func SeckeyVerify(b []byte) bool {
	d, err := parseScalar(b, "secret key")
	ct.Zero(d[:])
	return err == nil
}

// PrivKeyFromBytes decodes a 32-byte big-endian secret key.  It fails with
// ErrInvalidInput for the wrong length, zero, or a value not below n.
func PrivKeyFromBytes(b []byte) (*PrivateKey, error) {
	d, err := parseScalar(b, "secret key")
	if err != nil {
		return nil, err
	}
	return &PrivateKey{d: d}, nil
}

// NewPrivateKey wraps a scalar that must lie in [1, n-1].
func NewPrivateKey(d uintn.U256) (*PrivateKey, error) {
	if !scalarIsValid(d) {
		return nil, makeError(ErrInvalidInput,
			"k256: secret key is zero or not below the group order")
	}
	return &PrivateKey{d: d}, nil
}

// Scalar returns d.
func (k *PrivateKey) Scalar() uintn.U256 {
	return k.d
}

// Bytes returns the 32-byte big-endian encoding of d.
func (k *PrivateKey) Bytes() [32]byte {
	return k.d.Bytes()
}

// PubKey returns d*G.
func (k *PrivateKey) PubKey() *PublicKey {
	return &PublicKey{point: ScalarBaseMul(k.d)}
}

// Zero overwrites the scalar.  The key must not be used afterwards.
func (k *PrivateKey) Zero() {
	ct.Zero(k.d[:])
}

// Negate returns the key -d mod n, whose public key is the negation of this
// key's.
func (k *PrivateKey) Negate() *PrivateKey {
	return &PrivateKey{d: scalarNeg(k.d)}
}

// TweakAdd returns the key (d + tweak) mod n.  The tweak must be a valid
// 32-byte scalar and the sum must not be zero.
func (k *PrivateKey) TweakAdd(tweak []byte) (*PrivateKey, error) {
	t, err := parseScalar(tweak, "tweak")
	if err != nil {
		return nil, err
	}
	defer ct.Zero(t[:])
	d := scalarAdd(k.d, t)
	if d.IsZero() {
		return nil, makeError(ErrInvalidInput, "k256: tweaked secret key is zero")
	}
	return &PrivateKey{d: d}, nil
}

// TweakMul returns the key (d * tweak) mod n.  n is prime so a valid tweak
// never produces zero.
func (k *PrivateKey) TweakMul(tweak []byte) (*PrivateKey, error) {
	t, err := parseScalar(tweak, "tweak")
	if err != nil {
		return nil, err
	}
	defer ct.Zero(t[:])
	return &PrivateKey{d: scalarMul(k.d, t)}, nil
}

// NewKeyPair derives the key pair for d.
func NewKeyPair(d uintn.U256) (*KeyPair, error) {
	priv, err := NewPrivateKey(d)
	if err != nil {
		return nil, err
	}
	return &KeyPair{Private: priv, Public: priv.PubKey()}, nil
}

// Zero scrubs the private half of the pair.
func (kp *KeyPair) Zero() {
	kp.Private.Zero()
}

// GenerateKeyPair draws a key pair from rand.  Candidate scalars outside
// [1, n-1] are rejected and redrawn by the decred generator.
func GenerateKeyPair(rand io.Reader) (*KeyPair, error) {
	sk, err := secp256k1.GeneratePrivateKeyFromRand(rand)
	if err != nil {
		return nil, err
	}
	defer sk.Zero()

	b := sk.Key.Bytes()
	defer ct.ZeroBytes(b[:])
	priv, err := PrivKeyFromBytes(b[:])
	if err != nil {
		return nil, err
	}
	return &KeyPair{Private: priv, Public: priv.PubKey()}, nil
}

// maxSeedAttempts bounds KeyPairFromSeed.  A hash lands outside [1, n-1]
// with probability below 2^-127, so the bound is never reached in practice.
const maxSeedAttempts = 256

// KeyPairFromSeed deterministically derives a key pair from seed.  It hashes
// the seed with a retry counter until the digest is a valid scalar.
func KeyPairFromSeed(seed []byte) (*KeyPair, error) {
	if len(seed) < 16 {
		str := fmt.Sprintf("k256: seed must be at least 16 bytes, got %d", len(seed))
		return nil, makeError(ErrInvalidInput, str)
	}

	var counter [4]byte
	for i := uint32(0); i < maxSeedAttempts; i++ {
		binary.BigEndian.PutUint32(counter[:], i)
		digest := taggedHash(tagKeyFromSeed, seed, counter[:])
		priv, err := PrivKeyFromBytes(digest[:])
		ct.ZeroBytes(digest[:])
		if err != nil {
			log.Tracef("Seed digest %d is not a valid scalar, retrying", i)
			continue
		}
		return &KeyPair{Private: priv, Public: priv.PubKey()}, nil
	}
	return nil, makeError(ErrInvalidInput, "k256: seed did not yield a valid key")
}
