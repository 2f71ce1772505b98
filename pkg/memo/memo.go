package memo

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/graphenix/wallet-core/internal/secret"
	"github.com/graphenix/wallet-core/pkg/keys"
)

// checksumSize is the plaintext integrity checksum length prefixed to
// the ciphertext.
const checksumSize = 4

var (
	// ErrKeyMismatch is returned when the decrypting key matches
	// neither the sender nor the recipient of a memo.
	ErrKeyMismatch = errors.New("memo: key is not a participant")

	// ErrChecksumMismatch is returned when the decrypted plaintext does
	// not reproduce the embedded integrity checksum.
	ErrChecksumMismatch = errors.New("memo: plaintext checksum mismatch")

	// ErrShortCiphertext is returned when the message is too short to
	// hold a checksum and one cipher block, or is not block aligned.
	ErrShortCiphertext = errors.New("memo: ciphertext too short")

	// ErrInvalidPadding is returned when CBC padding is malformed.
	ErrInvalidPadding = errors.New("memo: invalid padding")
)

// Memo is an encrypted message rider on a transfer: sender and
// recipient keys, the shared-secret nonce, and the packed message
// (4-byte plaintext checksum ‖ AES-256-CBC ciphertext).
type Memo struct {
	From    *keys.PublicKey
	To      *keys.PublicKey
	Nonce   uint64
	Message []byte
}

// GenerateNonce draws a random 64-bit nonce. A nonce must never be
// reused for the same key pair: the keystream is a pure function of
// nonce and shared point.
func GenerateNonce(rand io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(rand, buf[:]); err != nil {
		return 0, fmt.Errorf("memo: reading nonce entropy: %w", err)
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

// Encrypt packs plaintext into a memo from the sender to the recipient,
// drawing the nonce from rand.
func Encrypt(rand io.Reader, from *keys.PrivateKey, to *keys.PublicKey, plaintext []byte) (*Memo, error) {
	nonce, err := GenerateNonce(rand)
	if err != nil {
		return nil, err
	}
	return EncryptWithNonce(from, to, nonce, plaintext)
}

// EncryptWithNonce packs plaintext under an explicit nonce. Callers
// must guarantee nonce uniqueness per key pair.
func EncryptWithNonce(from *keys.PrivateKey, to *keys.PublicKey, nonce uint64, plaintext []byte) (*Memo, error) {
	key, iv, err := deriveKeystream(from, to, nonce)
	if err != nil {
		return nil, err
	}
	defer secret.Wipe(key)
	defer secret.Wipe(iv)

	padded := pkcs7Pad(plaintext)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("memo: cipher init: %w", err)
	}

	message := make([]byte, checksumSize+len(padded))
	check := sha256.Sum256(plaintext)
	copy(message, check[:checksumSize])
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(message[checksumSize:], padded)
	secret.Wipe(padded)

	return &Memo{
		From:    from.PublicKey(),
		To:      to,
		Nonce:   nonce,
		Message: message,
	}, nil
}

// Decrypt recovers the plaintext with either participant's private key.
// The role (sender or recipient) is detected by comparing the derived
// public key against From and To.
func (m *Memo) Decrypt(priv *keys.PrivateKey) ([]byte, error) {
	mine := priv.PublicKey()
	var other *keys.PublicKey
	switch {
	case mine.Equal(m.From):
		other = m.To
	case mine.Equal(m.To):
		other = m.From
	default:
		return nil, ErrKeyMismatch
	}

	key, iv, err := deriveKeystream(priv, other, m.Nonce)
	if err != nil {
		return nil, err
	}
	defer secret.Wipe(key)
	defer secret.Wipe(iv)

	if len(m.Message) < checksumSize+aes.BlockSize {
		return nil, ErrShortCiphertext
	}
	check, ciphertext := m.Message[:checksumSize], m.Message[checksumSize:]
	if len(ciphertext)%aes.BlockSize != 0 {
		return nil, ErrShortCiphertext
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("memo: cipher init: %w", err)
	}
	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ciphertext)

	plaintext, err := pkcs7Unpad(padded)
	if err != nil {
		return nil, err
	}

	fresh := sha256.Sum256(plaintext)
	if subtle.ConstantTimeCompare(fresh[:checksumSize], check) != 1 {
		return nil, ErrChecksumMismatch
	}
	return plaintext, nil
}

// deriveKeystream computes the ECIES keystream for a key pair and
// nonce: sha512(bigEndian64(nonce) ‖ shared x coordinate). The first 32
// bytes key the cipher, the next 16 seed the IV.
func deriveKeystream(mine *keys.PrivateKey, theirs *keys.PublicKey, nonce uint64) (key, iv []byte, err error) {
	shared, err := mine.SharedSecret(theirs)
	if err != nil {
		return nil, nil, err
	}
	defer secret.Wipe(shared[:])

	h := sha512.New()
	var nb [8]byte
	binary.BigEndian.PutUint64(nb[:], nonce)
	h.Write(nb[:])
	h.Write(shared[:])
	stream := h.Sum(nil)
	defer secret.Wipe(stream)

	key = make([]byte, 32)
	iv = make([]byte, aes.BlockSize)
	copy(key, stream[:32])
	copy(iv, stream[32:48])
	return key, iv, nil
}

// pkcs7Pad extends data to a whole number of AES blocks. A full padding
// block is appended when data is already aligned.
func pkcs7Pad(data []byte) []byte {
	n := aes.BlockSize - len(data)%aes.BlockSize
	out := make([]byte, len(data)+n)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(n)
	}
	return out
}

// pkcs7Unpad strips and validates the padding suffix.
func pkcs7Unpad(data []byte) ([]byte, error) {
	if len(data) == 0 || len(data)%aes.BlockSize != 0 {
		return nil, ErrInvalidPadding
	}
	n := int(data[len(data)-1])
	if n == 0 || n > aes.BlockSize || n > len(data) {
		return nil, ErrInvalidPadding
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, ErrInvalidPadding
		}
	}
	return data[:len(data)-n], nil
}
