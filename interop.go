package k256

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"k256.nucleo.dev/ct"
)

// Conversions to and from the btcec and decred secp256k1 key types.  Keys
// cross the boundary in their SEC1 encodings, so every imported key is
// validated by ParsePubKey.

// Secp returns the key as a decred secp256k1 public key.
func (k *PublicKey) Secp() *secp256k1.PublicKey {
	// The encoding is always a valid point, so parsing cannot fail.
	key, err := secp256k1.ParsePubKey(k.SerializeUncompressed())
	if err != nil {
		panic(err)
	}
	return key
}

// PublicKeyFromSecp converts a decred secp256k1 public key.
func PublicKeyFromSecp(key *secp256k1.PublicKey) (*PublicKey, error) {
	return ParsePubKey(key.SerializeUncompressed())
}

// BTCEC returns the key as a btcec public key.
func (k *PublicKey) BTCEC() *btcec.PublicKey {
	key, err := btcec.ParsePubKey(k.SerializeCompressed())
	if err != nil {
		panic(err)
	}
	return key
}

// PublicKeyFromBTCEC converts a btcec public key.
func PublicKeyFromBTCEC(key *btcec.PublicKey) (*PublicKey, error) {
	return ParsePubKey(key.SerializeCompressed())
}

// BTCEC returns the key as a btcec private key.
func (k *PrivateKey) BTCEC() *btcec.PrivateKey {
	b := k.d.Bytes()
	defer ct.ZeroBytes(b[:])
	priv, _ := btcec.PrivKeyFromBytes(b[:])
	return priv
}

// Secp returns the key as a decred secp256k1 private key.
func (k *PrivateKey) Secp() *secp256k1.PrivateKey {
	b := k.d.Bytes()
	defer ct.ZeroBytes(b[:])
	return secp256k1.PrivKeyFromBytes(b[:])
}

