package keys

import (
	"bytes"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/graphenix/wallet-core/internal/secret"
	"github.com/graphenix/wallet-core/pkg/curve"
)

// wifVersion is the version byte prepended to a private key in WIF.
const wifVersion = 0x80

var (
	// ErrInvalidLength is returned when a decoded WIF or public key
	// string has the wrong byte length.
	ErrInvalidLength = errors.New("keys: invalid decoded length")

	// ErrChecksumMismatch is returned when a 4-byte trailing checksum
	// does not match the encoded payload.
	ErrChecksumMismatch = errors.New("keys: checksum mismatch")

	// ErrInvalidVersion is returned when a WIF string carries a version
	// byte other than 0x80.
	ErrInvalidVersion = errors.New("keys: invalid version byte")

	// ErrInvalidKey is returned for a scalar outside (0, N) or a
	// malformed compression flag.
	ErrInvalidKey = errors.New("keys: invalid private key")
)

// PrivateKey is a secp256k1 private scalar d with 0 < d < N.
// Call Zero when the key is no longer needed.
type PrivateKey struct {
	d [32]byte
}

// NewPrivateKey draws a fresh private key from rand.
func NewPrivateKey(rand io.Reader) (*PrivateKey, error) {
	var buf [40]byte
	if _, err := io.ReadFull(rand, buf[:]); err != nil {
		return nil, fmt.Errorf("keys: reading entropy: %w", err)
	}
	defer secret.Wipe(buf[:])
	return privateKeyFromWideBytes(buf[:])
}

// PrivateKeyFromBytes builds a private key from a 32-byte scalar.
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != 32 {
		return nil, ErrInvalidLength
	}
	d := new(big.Int).SetBytes(b)
	defer secret.WipeBig(d)
	if d.Sign() == 0 || d.Cmp(curve.N) >= 0 {
		return nil, ErrInvalidKey
	}
	k := &PrivateKey{}
	copy(k.d[:], b)
	return k, nil
}

// PrivateKeyFromSeed derives a private key deterministically from a
// seed string: sha256(seed) reduced into scalar range.
func PrivateKeyFromSeed(seed string) *PrivateKey {
	h := sha256.Sum256([]byte(seed))
	k, err := privateKeyFromWideBytes(h[:])
	secret.Wipe(h[:])
	if err != nil {
		// Unreachable: the reduction always lands in (0, N).
		panic(err)
	}
	return k
}

// PrivateKeyFromBrainKey derives the sequence-th child key of a brain
// key phrase: sha256(sha512(normalized ‖ " " ‖ sequence)). Normalization
// collapses runs of whitespace to single spaces and uppercases, so
// re-typed phrases with irregular spacing derive the same keys.
func PrivateKeyFromBrainKey(brainKey string, sequence int) *PrivateKey {
	normalized := strings.ToUpper(strings.Join(strings.Fields(brainKey), " "))
	wide := sha512.Sum512([]byte(fmt.Sprintf("%s %d", normalized, sequence)))
	h := sha256.Sum256(wide[:])
	k, err := privateKeyFromWideBytes(h[:])
	secret.Wipe(wide[:])
	secret.Wipe(h[:])
	if err != nil {
		panic(err)
	}
	return k
}

// privateKeyFromWideBytes reduces b modulo N-1 and adds 1, landing in
// [1, N-1]. The intermediate big.Ints are wiped before returning.
func privateKeyFromWideBytes(b []byte) (*PrivateKey, error) {
	nMinus1 := new(big.Int).Sub(curve.N, big.NewInt(1))
	d := new(big.Int).SetBytes(b)
	d.Mod(d, nMinus1)
	d.Add(d, big.NewInt(1))
	k := &PrivateKey{}
	d.FillBytes(k.d[:])
	secret.WipeBig(d)
	return k, nil
}

// PrivateKeyFromWIF decodes a Wallet Import Format string. The decoded
// payload must be version ‖ 32-byte scalar ‖ checksum (37 bytes) or the
// same with a trailing 0x01 compression flag before the checksum
// (38 bytes); the flag is accepted and stripped.
func PrivateKeyFromWIF(wif string) (*PrivateKey, error) {
	raw, err := Base58Decode(wif)
	if err != nil {
		return nil, err
	}
	defer secret.Wipe(raw)

	if len(raw) != 37 && len(raw) != 38 {
		return nil, ErrInvalidLength
	}
	body, sum := raw[:len(raw)-4], raw[len(raw)-4:]
	want := doubleSHA256(body)
	if !bytes.Equal(sum, want[:4]) {
		return nil, ErrChecksumMismatch
	}
	if body[0] != wifVersion {
		return nil, ErrInvalidVersion
	}
	if len(body) == 34 && body[33] != 0x01 {
		return nil, ErrInvalidKey
	}
	return PrivateKeyFromBytes(body[1:33])
}

// WIF encodes the key in the classic 37-byte Wallet Import Format:
// version 0x80 ‖ scalar ‖ 4-byte double-SHA256 checksum, Base58.
func (k *PrivateKey) WIF() string {
	return CheckEncode(k.d[:], wifVersion)
}

// Bytes returns a copy of the 32-byte scalar. The caller owns the copy
// and should wipe it after use.
func (k *PrivateKey) Bytes() []byte {
	out := make([]byte, 32)
	copy(out, k.d[:])
	return out
}

// Scalar returns the key as a big.Int. The caller should wipe it with
// secret.WipeBig after use.
func (k *PrivateKey) Scalar() *big.Int {
	return new(big.Int).SetBytes(k.d[:])
}

// Zero wipes the scalar. The key must not be used afterwards.
func (k *PrivateKey) Zero() {
	secret.Wipe(k.d[:])
}

// PublicKey derives the compressed public key through the decred
// secp256k1 library.
func (k *PrivateKey) PublicKey() *PublicKey {
	priv := secp256k1.PrivKeyFromBytes(k.d[:])
	defer priv.Zero()
	pub, err := PublicKeyFromBytes(priv.PubKey().SerializeCompressed())
	if err != nil {
		// Unreachable: the library always emits a valid encoding.
		panic(err)
	}
	return pub
}

// SharedSecret computes the ECDH shared secret with the given public
// key: the 32-byte x coordinate of pub * k.
func (k *PrivateKey) SharedSecret(pub *PublicKey) ([32]byte, error) {
	var out [32]byte
	theirs, err := secp256k1.ParsePubKey(pub.Bytes())
	if err != nil {
		return out, fmt.Errorf("keys: parsing peer key: %w", err)
	}
	priv := secp256k1.PrivKeyFromBytes(k.d[:])
	defer priv.Zero()
	copy(out[:], secp256k1.GenerateSharedSecret(priv, theirs))
	return out, nil
}

// KeyPairFromSeed derives a deterministic key pair from a seed string
// and returns its WIF and chain public key string forms.
func KeyPairFromSeed(seed, prefix string) (wif, publicKey string) {
	k := PrivateKeyFromSeed(seed)
	defer k.Zero()
	return k.WIF(), k.PublicKey().String(prefix)
}
