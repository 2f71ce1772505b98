package sig

import (
	"encoding/hex"
	"errors"
)

// Size is the length of a compact signature: one header byte followed
// by the 32-byte r and s components.
const Size = 65

// headerBase is the compact-signature header offset: 27 for a
// recoverable signature plus 4 marking a compressed public key.
const headerBase = 31

var (
	// ErrInvalidSignatureRange is returned when r or s falls outside
	// (0, N), or a compact encoding has the wrong length.
	ErrInvalidSignatureRange = errors.New("sig: r or s out of range")

	// ErrInvalidRecoveryID is returned when the header byte encodes a
	// recovery id outside [0, 4) or an x candidate at or above the
	// field prime.
	ErrInvalidRecoveryID = errors.New("sig: invalid recovery id")

	// ErrPointAtInfinity is returned when public key recovery lands on
	// the point at infinity.
	ErrPointAtInfinity = errors.New("sig: recovered point at infinity")

	// ErrCanonicalNotFound is returned when no canonical signature was
	// found within the nonce attempt bound.
	ErrCanonicalNotFound = errors.New("sig: no canonical signature within attempt bound")

	// ErrRecoveryIDNotFound is returned when no recovery id reproduced
	// the signer's public key within the nonce attempt bound.
	ErrRecoveryIDNotFound = errors.New("sig: no recovery id within attempt bound")
)

// Signature is a 65-byte compact recoverable ECDSA signature:
// header ‖ r ‖ s, with header = 27 + 4 + recovery id.
type Signature [Size]byte

// SignatureFromBytes copies a 65-byte compact encoding, validating the
// header range.
func SignatureFromBytes(b []byte) (Signature, error) {
	var s Signature
	if len(b) != Size {
		return s, ErrInvalidSignatureRange
	}
	if b[0] < headerBase || b[0] >= headerBase+4 {
		return s, ErrInvalidRecoveryID
	}
	copy(s[:], b)
	return s, nil
}

// SignatureFromHex decodes a 130-character hex compact signature.
func SignatureFromHex(s string) (Signature, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return Signature{}, err
	}
	return SignatureFromBytes(raw)
}

// RecoveryID extracts the recovery id from the header byte.
func (s Signature) RecoveryID() int {
	return int(s[0]) - headerBase
}

// R returns the 32-byte r component.
func (s Signature) R() [32]byte {
	var r [32]byte
	copy(r[:], s[1:33])
	return r
}

// S returns the 32-byte s component.
func (s Signature) S() [32]byte {
	var out [32]byte
	copy(out[:], s[33:])
	return out
}

// Hex encodes the signature as lowercase hex.
func (s Signature) Hex() string {
	return hex.EncodeToString(s[:])
}

// Canonical reports whether big-endian padded r and s satisfy the
// chain's canonical-form rules: the leading byte of each must be below
// 0x80, and must not be 0x00 unless the following byte has its high
// bit set.
func Canonical(r, s [32]byte) bool {
	return canonicalHalf(r) && canonicalHalf(s)
}

func canonicalHalf(v [32]byte) bool {
	if v[0]&0x80 != 0 {
		return false
	}
	if v[0] == 0 && v[1]&0x80 == 0 {
		return false
	}
	return true
}
