package memo

import (
	"bytes"
	"crypto/sha512"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/graphenix/wallet-core/pkg/keys"
)

func scalarKey(t *testing.T, v byte) *keys.PrivateKey {
	t.Helper()
	raw := make([]byte, 32)
	raw[31] = v
	k, err := keys.PrivateKeyFromBytes(raw)
	if err != nil {
		t.Fatalf("PrivateKeyFromBytes: %v", err)
	}
	return k
}

// TestKeystreamVector pins the keystream derivation for scalars 7 and 5:
// the shared point is 35*G; keystream = sha512(nonce ‖ x(35G)).
func TestKeystreamVector(t *testing.T) {
	seven := scalarKey(t, 7)
	five := scalarKey(t, 5)

	shared, err := seven.SharedSecret(five.PublicKey())
	if err != nil {
		t.Fatalf("SharedSecret: %v", err)
	}
	if got, want := hex.EncodeToString(shared[:]), "605bdb019981718b986d0f07e834cb0d9deb8360ffb7f61df982345ef27a7479"; got != want {
		t.Fatalf("shared x = %s, want %s", got, want)
	}

	var nb [8]byte
	binary.BigEndian.PutUint64(nb[:], 0x0102030405060708)
	h := sha512.New()
	h.Write(nb[:])
	h.Write(shared[:])
	want := "ec51c9d81d8ba3c86ff9f6236a52f162d00ff0057dc8428055ad1a0a27aa392edc81a09fb24b260c879dce38bfe7494b9e7fa86860eef57b31483216da59e069"
	if got := hex.EncodeToString(h.Sum(nil)); got != want {
		t.Errorf("keystream = %s, want %s", got, want)
	}

	key, iv, err := deriveKeystream(seven, five.PublicKey(), 0x0102030405060708)
	if err != nil {
		t.Fatalf("deriveKeystream: %v", err)
	}
	if hex.EncodeToString(key) != want[:64] {
		t.Errorf("key = %x", key)
	}
	if hex.EncodeToString(iv) != want[64:96] {
		t.Errorf("iv = %x", iv)
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	alice := keys.PrivateKeyFromSeed("alice")
	bob := keys.PrivateKeyFromSeed("bob")
	plaintext := []byte("meet at the usual block height")

	m, err := EncryptWithNonce(alice, bob.PublicKey(), 424242, plaintext)
	if err != nil {
		t.Fatalf("EncryptWithNonce: %v", err)
	}
	if bytes.Contains(m.Message, plaintext) {
		t.Fatal("plaintext leaked into packed message")
	}

	// Recipient decrypts.
	got, err := m.Decrypt(bob)
	if err != nil {
		t.Fatalf("recipient Decrypt: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Errorf("recipient plaintext = %q", got)
	}

	// Sender decrypts their own memo.
	got, err = m.Decrypt(alice)
	if err != nil {
		t.Fatalf("sender Decrypt: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Errorf("sender plaintext = %q", got)
	}
}

func TestEncryptDeterministicForNonce(t *testing.T) {
	alice := keys.PrivateKeyFromSeed("alice")
	bob := keys.PrivateKeyFromSeed("bob")

	m1, err := EncryptWithNonce(alice, bob.PublicKey(), 1, []byte("same"))
	if err != nil {
		t.Fatal(err)
	}
	m2, err := EncryptWithNonce(alice, bob.PublicKey(), 1, []byte("same"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(m1.Message, m2.Message) {
		t.Error("same nonce and plaintext produced different messages")
	}

	m3, err := EncryptWithNonce(alice, bob.PublicKey(), 2, []byte("same"))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(m1.Message, m3.Message) {
		t.Error("different nonces produced identical ciphertexts")
	}
}

func TestDecryptKeyMismatch(t *testing.T) {
	alice := keys.PrivateKeyFromSeed("alice")
	bob := keys.PrivateKeyFromSeed("bob")
	eve := keys.PrivateKeyFromSeed("eve")

	m, err := EncryptWithNonce(alice, bob.PublicKey(), 7, []byte("secret"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Decrypt(eve); !errors.Is(err, ErrKeyMismatch) {
		t.Errorf("Decrypt by non-participant = %v, want ErrKeyMismatch", err)
	}
}

func TestDecryptChecksumMismatch(t *testing.T) {
	alice := keys.PrivateKeyFromSeed("alice")
	bob := keys.PrivateKeyFromSeed("bob")

	m, err := EncryptWithNonce(alice, bob.PublicKey(), 7, []byte("secret"))
	if err != nil {
		t.Fatal(err)
	}
	m.Message[0] ^= 0xff // corrupt the embedded checksum
	if _, err := m.Decrypt(bob); !errors.Is(err, ErrChecksumMismatch) {
		t.Errorf("Decrypt with corrupted checksum = %v, want ErrChecksumMismatch", err)
	}
}

func TestDecryptShortMessage(t *testing.T) {
	alice := keys.PrivateKeyFromSeed("alice")
	bob := keys.PrivateKeyFromSeed("bob")

	m, err := EncryptWithNonce(alice, bob.PublicKey(), 7, []byte("secret"))
	if err != nil {
		t.Fatal(err)
	}
	m.Message = m.Message[:5]
	if _, err := m.Decrypt(bob); !errors.Is(err, ErrShortCiphertext) {
		t.Errorf("Decrypt of truncated message = %v, want ErrShortCiphertext", err)
	}
}

func TestPKCS7(t *testing.T) {
	for _, n := range []int{0, 1, 15, 16, 17, 31, 32} {
		data := bytes.Repeat([]byte{0xab}, n)
		padded := pkcs7Pad(data)
		if len(padded)%16 != 0 {
			t.Errorf("len %d: padded length %d not block aligned", n, len(padded))
		}
		back, err := pkcs7Unpad(padded)
		if err != nil {
			t.Fatalf("len %d: unpad: %v", n, err)
		}
		if !bytes.Equal(back, data) {
			t.Errorf("len %d: round trip mismatch", n)
		}
	}

	bad := bytes.Repeat([]byte{0x11}, 16)
	bad[15] = 0 // zero padding length is invalid
	if _, err := pkcs7Unpad(bad); !errors.Is(err, ErrInvalidPadding) {
		t.Errorf("zero padding = %v, want ErrInvalidPadding", err)
	}
}

func TestGenerateNonce(t *testing.T) {
	nonce, err := GenerateNonce(bytes.NewReader([]byte{1, 2, 3, 4, 5, 6, 7, 8}))
	if err != nil {
		t.Fatalf("GenerateNonce: %v", err)
	}
	if nonce != 0x0102030405060708 {
		t.Errorf("nonce = %#x", nonce)
	}
	if _, err := GenerateNonce(bytes.NewReader([]byte{1})); err == nil {
		t.Error("short entropy stream accepted")
	}
}
