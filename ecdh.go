package k256

import (
	"k256.nucleo.dev/ct"
)

// sharedPoint returns d*Q using the constant-time ladder.  d is in [1, n-1]
// and Q is a valid point of prime order, so the product is never the
// identity.
func sharedPoint(priv *PrivateKey, pub *PublicKey) Point {
	return pub.point.ScalarMulCT(priv.d)
}

// SharedSecret computes an EC Diffie-Hellman secret between priv and pub.
// The result is SHA256 of the compressed encoding of the shared point, so
// both parties obtain the same 32 bytes.
func SharedSecret(priv *PrivateKey, pub *PublicKey) [32]byte {
	s := sharedPoint(priv, pub)
	x, y := s.x.Bytes(), s.y.Bytes()
	out := ecdhHash(x, y)
	ct.ZeroBytes(x[:])
	ct.ZeroBytes(y[:])
	ct.Zero(s.x[:])
	ct.Zero(s.y[:])
	return out
}

// SharedSecretXOnly returns the raw big-endian x coordinate of the shared
// point without hashing.
func SharedSecretXOnly(priv *PrivateKey, pub *PublicKey) [32]byte {
	s := sharedPoint(priv, pub)
	out := s.x.Bytes()
	ct.Zero(s.x[:])
	ct.Zero(s.y[:])
	return out
}
