package keys

import (
	"bytes"
	"crypto/sha512"

	"golang.org/x/crypto/ripemd160"
)

// AddressSize is the length of a raw address digest.
const AddressSize = 20

// Address is a 20-byte key digest: ripemd160(sha512(compressed key)).
// Addresses appear as the third weight map of an authority.
type Address [AddressSize]byte

// AddressFromPublicKey digests a public key into its address form.
func AddressFromPublicKey(p *PublicKey) Address {
	wide := sha512.Sum512(p.b[:])
	h := ripemd160.New()
	h.Write(wide[:])
	var a Address
	copy(a[:], h.Sum(nil))
	return a
}

// AddressFromString decodes prefix ‖ Base58(20 bytes ‖ 4-byte
// ripemd160 checksum).
func AddressFromString(s, prefix string) (Address, error) {
	var a Address
	if len(s) < len(prefix) || s[:len(prefix)] != prefix {
		return a, ErrInvalidVersion
	}
	raw, err := Base58Decode(s[len(prefix):])
	if err != nil {
		return a, err
	}
	if len(raw) != AddressSize+4 {
		return a, ErrInvalidLength
	}
	if !bytes.Equal(keyChecksum(raw[:AddressSize]), raw[AddressSize:]) {
		return a, ErrChecksumMismatch
	}
	copy(a[:], raw[:AddressSize])
	return a, nil
}

// String encodes the address with the checksum pattern used for
// public key strings.
func (a Address) String(prefix string) string {
	buf := make([]byte, 0, AddressSize+4)
	buf = append(buf, a[:]...)
	buf = append(buf, keyChecksum(a[:])...)
	return prefix + Base58Encode(buf)
}

// Less orders addresses lexicographically for authority map framing.
func (a Address) Less(b Address) bool {
	return bytes.Compare(a[:], b[:]) < 0
}
