package k256

import (
	"bytes"
	"fmt"

	"k256.nucleo.dev/uintn"
)

// SEC1 public key lengths and prefixes.
const (
	PubKeyBytesLenCompressed   = 33
	PubKeyBytesLenUncompressed = 65

	pubkeyCompressedEven = 0x02
	pubkeyCompressedOdd  = 0x03
	pubkeyUncompressed   = 0x04
)

// PublicKey is a secp256k1 point other than the identity.
type PublicKey struct {
	point Point
}

// NewPublicKey validates p as a public key.  It fails with
// ErrPointAtInfinity for the identity and ErrNotOnCurve when p does not
// satisfy the curve equation.
func NewPublicKey(p Point) (*PublicKey, error) {
	if p.IsInfinity() {
		return nil, makeError(ErrPointAtInfinity,
			"k256: the identity is not a valid public key")
	}
	if !feIsValid(p.x) || !feIsValid(p.y) || !p.IsOnCurve() {
		return nil, makeError(ErrNotOnCurve,
			"k256: public key is not on the curve")
	}
	return &PublicKey{point: p}, nil
}

// ParsePubKey decodes a 33-byte compressed or 65-byte uncompressed SEC1
// public key.  Compressed keys are decompressed with a modular square root.
func ParsePubKey(b []byte) (*PublicKey, error) {
	key, err := parsePubKey(b)
	if err != nil {
		log.Debugf("Rejected public key %x: %v", b, err)
		return nil, err
	}
	return key, nil
}

func parsePubKey(b []byte) (*PublicKey, error) {
	switch len(b) {
	case PubKeyBytesLenCompressed:
		if b[0] != pubkeyCompressedEven && b[0] != pubkeyCompressedOdd {
			str := fmt.Sprintf("k256: invalid compressed public key prefix %#02x", b[0])
			return nil, makeError(ErrInvalidInput, str)
		}
		x, _ := uintn.U256FromBytesBE(b[1:33])
		if !feIsValid(x) {
			return nil, makeError(ErrInvalidInput,
				"k256: public key x coordinate is not below the field prime")
		}
		y, ok := feSqrt(curveRHS(x))
		if !ok {
			return nil, makeError(ErrNotOnCurve,
				"k256: compressed public key x coordinate is not on the curve")
		}
		if y.IsOdd() != (b[0] == pubkeyCompressedOdd) {
			y = feNeg(y)
		}
		return &PublicKey{point: Point{x: x, y: y}}, nil

	case PubKeyBytesLenUncompressed:
		if b[0] != pubkeyUncompressed {
			str := fmt.Sprintf("k256: invalid uncompressed public key prefix %#02x", b[0])
			return nil, makeError(ErrInvalidInput, str)
		}
		x, _ := uintn.U256FromBytesBE(b[1:33])
		y, _ := uintn.U256FromBytesBE(b[33:65])
		if !feIsValid(x) || !feIsValid(y) {
			return nil, makeError(ErrInvalidInput,
				"k256: public key coordinate is not below the field prime")
		}
		return NewPublicKey(Point{x: x, y: y})

	default:
		str := fmt.Sprintf("k256: malformed public key: invalid length %d", len(b))
		return nil, makeError(ErrInvalidInput, str)
	}
}

// Point returns the key as a curve point.
func (k *PublicKey) Point() Point {
	return k.point
}

// X returns the affine x coordinate of the key.
func (k *PublicKey) X() uintn.U256 { return k.point.x }

// Y returns the affine y coordinate of the key.
func (k *PublicKey) Y() uintn.U256 { return k.point.y }

// SerializeCompressed returns 0x02 or 0x03 by the parity of y, followed by
// the 32-byte big-endian x.
func (k *PublicKey) SerializeCompressed() []byte {
	b := make([]byte, PubKeyBytesLenCompressed)
	b[0] = pubkeyCompressedEven
	if k.point.y.IsOdd() {
		b[0] = pubkeyCompressedOdd
	}
	x := k.point.x.Bytes()
	copy(b[1:], x[:])
	return b
}

// SerializeUncompressed returns 0x04 || x || y.
func (k *PublicKey) SerializeUncompressed() []byte {
	b := make([]byte, PubKeyBytesLenUncompressed)
	b[0] = pubkeyUncompressed
	x, y := k.point.x.Bytes(), k.point.y.Bytes()
	copy(b[1:33], x[:])
	copy(b[33:], y[:])
	return b
}

// IsEqual reports whether both keys are the same point.
func (k *PublicKey) IsEqual(other *PublicKey) bool {
	return k.point.Equal(other.point)
}

// Cmp orders keys by their compressed encodings.
func (k *PublicKey) Cmp(other *PublicKey) int {
	return bytes.Compare(k.SerializeCompressed(), other.SerializeCompressed())
}

// Fingerprint returns a tagged SHA-256 of the compressed encoding, suitable
// as a short stable identifier for the key.
func (k *PublicKey) Fingerprint() [32]byte {
	return taggedHash(tagFingerprint, k.SerializeCompressed())
}

// TweakAdd returns the key Q + tweak*G, the public half of
// PrivateKey.TweakAdd.
func (k *PublicKey) TweakAdd(tweak []byte) (*PublicKey, error) {
	t, err := parseScalar(tweak, "tweak")
	if err != nil {
		return nil, err
	}
	q, tg := toJacobian(k.point), toJacobian(ScalarBaseMul(t))
	sum := q.add(&tg)
	return NewPublicKey(sum.toAffine())
}

// TweakMul returns the key tweak*Q, the public half of PrivateKey.TweakMul.
func (k *PublicKey) TweakMul(tweak []byte) (*PublicKey, error) {
	t, err := parseScalar(tweak, "tweak")
	if err != nil {
		return nil, err
	}
	return NewPublicKey(k.point.ScalarMulCT(t))
}
