package keys

import (
	"bytes"
	"strings"

	"golang.org/x/crypto/ripemd160"

	"github.com/graphenix/wallet-core/pkg/curve"
)

// DefaultPrefix is the address prefix of the main network.
const DefaultPrefix = "BTS"

// PublicKey is a secp256k1 public key held in 33-byte compressed form.
type PublicKey struct {
	b [curve.CompressedSize]byte
}

// PublicKeyFromBytes builds a public key from a 33-byte compressed
// encoding, validating that it describes a point on the curve.
func PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	if len(b) != curve.CompressedSize {
		return nil, ErrInvalidLength
	}
	if _, err := curve.Decompress(b); err != nil {
		return nil, err
	}
	pub := &PublicKey{}
	copy(pub.b[:], b)
	return pub, nil
}

// PublicKeyFromPoint compresses a curve point into a public key.
func PublicKeyFromPoint(p curve.Point) *PublicKey {
	return &PublicKey{b: p.Compress()}
}

// PublicKeyFromString decodes a chain public key string of the form
// prefix ‖ Base58(33-byte key ‖ 4-byte ripemd160 checksum).
func PublicKeyFromString(s, prefix string) (*PublicKey, error) {
	if !strings.HasPrefix(s, prefix) {
		return nil, ErrInvalidVersion
	}
	raw, err := Base58Decode(s[len(prefix):])
	if err != nil {
		return nil, err
	}
	if len(raw) != curve.CompressedSize+4 {
		return nil, ErrInvalidLength
	}
	body, sum := raw[:curve.CompressedSize], raw[curve.CompressedSize:]
	if !bytes.Equal(keyChecksum(body), sum) {
		return nil, ErrChecksumMismatch
	}
	return PublicKeyFromBytes(body)
}

// String encodes the key as a chain public key string:
// prefix ‖ Base58(33-byte key ‖ first 4 bytes of ripemd160(key)).
// The checksum hash is ripemd160, not double-SHA256: chain key strings
// and WIF use different checksum derivations.
func (p *PublicKey) String(prefix string) string {
	buf := make([]byte, 0, curve.CompressedSize+4)
	buf = append(buf, p.b[:]...)
	buf = append(buf, keyChecksum(p.b[:])...)
	return prefix + Base58Encode(buf)
}

// keyChecksum is the chain public-key checksum: ripemd160(data)[:4].
func keyChecksum(data []byte) []byte {
	h := ripemd160.New()
	h.Write(data)
	return h.Sum(nil)[:4]
}

// Bytes returns a copy of the compressed encoding.
func (p *PublicKey) Bytes() []byte {
	out := make([]byte, curve.CompressedSize)
	copy(out, p.b[:])
	return out
}

// Point decompresses the key into an affine curve point.
func (p *PublicKey) Point() (curve.Point, error) {
	return curve.Decompress(p.b[:])
}

// Equal reports whether two keys have identical compressed encodings.
func (p *PublicKey) Equal(q *PublicKey) bool {
	if p == nil || q == nil {
		return p == q
	}
	return p.b == q.b
}

// Less orders keys by their compressed encodings. Authority key maps
// and key approval sets are serialized in this order.
func (p *PublicKey) Less(q *PublicKey) bool {
	return bytes.Compare(p.b[:], q.b[:]) < 0
}
