package k256

import (
	"hash"

	sha256simd "github.com/minio/sha256-simd"
	"k256.nucleo.dev/ct"
)

// Tags for the domain-separated hashes used in this package.
const (
	tagKeyFromSeed = "k256/seed"
	tagFingerprint = "k256/fingerprint"
)

// sha256Hasher wraps a SIMD-accelerated SHA-256 state.
type sha256Hasher struct {
	h hash.Hash
}

func newSHA256() *sha256Hasher {
	return &sha256Hasher{h: sha256simd.New()}
}

// newTaggedSHA256 returns a hasher primed with SHA256(tag) || SHA256(tag),
// so that digests under different tags can never collide.
func newTaggedSHA256(tag string) *sha256Hasher {
	prefix := sha256simd.Sum256([]byte(tag))
	s := newSHA256()
	s.write(prefix[:])
	s.write(prefix[:])
	return s
}

func (s *sha256Hasher) write(data []byte) {
	// hash.Hash never returns an error from Write.
	s.h.Write(data)
}

func (s *sha256Hasher) sum() [32]byte {
	var out [32]byte
	s.h.Sum(out[:0])
	return out
}

// taggedHash returns SHA256(SHA256(tag) || SHA256(tag) || msgs...).
func taggedHash(tag string, msgs ...[]byte) [32]byte {
	s := newTaggedSHA256(tag)
	for _, m := range msgs {
		s.write(m)
	}
	return s.sum()
}

// ecdhHash is the default shared-secret hash: SHA256(version || x) where
// the version byte is 0x02 or 0x03 by the parity of y, i.e. the hash of the
// compressed encoding of the shared point.
func ecdhHash(x, y [32]byte) [32]byte {
	version := [1]byte{0x02 | (y[31] & 0x01)}
	s := newSHA256()
	s.write(version[:])
	s.write(x[:])
	out := s.sum()
	ct.ZeroBytes(version[:])
	return out
}
