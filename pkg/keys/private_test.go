package keys

import (
	"bytes"
	"encoding/hex"
	"errors"
	"math/big"
	"testing"

	"github.com/graphenix/wallet-core/pkg/curve"
)

// Reference WIF from the Bitcoin wiki Base58Check example.
const (
	refScalarHex = "0c28fca386c7a227600b2fe50b7cae11ec86d3bf1fbe471be89827e19d72aa1d"
	refWIF       = "5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyTJ"
)

func TestWIFEncode(t *testing.T) {
	raw, _ := hex.DecodeString(refScalarHex)
	k, err := PrivateKeyFromBytes(raw)
	if err != nil {
		t.Fatalf("PrivateKeyFromBytes: %v", err)
	}
	if got := k.WIF(); got != refWIF {
		t.Errorf("WIF = %s, want %s", got, refWIF)
	}

	// Scalar 1.
	one := make([]byte, 32)
	one[31] = 1
	k1, _ := PrivateKeyFromBytes(one)
	if got, want := k1.WIF(), "5HpHagT65TZzG1PH3CSu63k8DbpvD8s5ip4nEB3kEsreAnchuDf"; got != want {
		t.Errorf("WIF(1) = %s, want %s", got, want)
	}
}

func TestWIFRoundTrip(t *testing.T) {
	raw, _ := hex.DecodeString(refScalarHex)
	k, err := PrivateKeyFromWIF(refWIF)
	if err != nil {
		t.Fatalf("PrivateKeyFromWIF: %v", err)
	}
	if !bytes.Equal(k.Bytes(), raw) {
		t.Errorf("decoded scalar %x, want %x", k.Bytes(), raw)
	}
}

func TestWIFDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		wif  string
		want error
	}{
		{"bad character", "5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyT0", ErrInvalidCharacter},
		{"corrupted checksum", "5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyTa", ErrChecksumMismatch},
		{"wrong length", Base58Encode([]byte{wifVersion, 1, 2, 3}), ErrInvalidLength},
		{"wrong version", CheckEncode(make([]byte, 32), 0x81), ErrInvalidVersion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := PrivateKeyFromWIF(tt.wif); !errors.Is(err, tt.want) {
				t.Errorf("PrivateKeyFromWIF(%q) = %v, want %v", tt.wif, err, tt.want)
			}
		})
	}
}

func TestWIFCompressionFlagStripped(t *testing.T) {
	raw, _ := hex.DecodeString(refScalarHex)
	payload := make([]byte, 0, 33)
	payload = append(payload, raw...)
	payload = append(payload, 0x01)
	wif := CheckEncode(payload, wifVersion)

	k, err := PrivateKeyFromWIF(wif)
	if err != nil {
		t.Fatalf("38-byte WIF rejected: %v", err)
	}
	if !bytes.Equal(k.Bytes(), raw) {
		t.Errorf("decoded scalar %x, want %x", k.Bytes(), raw)
	}
}

func TestPrivateKeyFromBytesRange(t *testing.T) {
	if _, err := PrivateKeyFromBytes(make([]byte, 32)); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("zero scalar accepted: %v", err)
	}
	var n [32]byte
	curve.N.FillBytes(n[:])
	if _, err := PrivateKeyFromBytes(n[:]); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("scalar N accepted: %v", err)
	}
	if _, err := PrivateKeyFromBytes([]byte{1, 2, 3}); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("short scalar accepted: %v", err)
	}
}

func TestPrivateKeyFromSeed(t *testing.T) {
	k := PrivateKeyFromSeed("alice-brain-key-2024")
	wantScalar := "986fc5c29a62d4ce96755cb413ea8a3ffe5c1a47e9a74d819a1e6ac87c6a0caf"
	if got := hex.EncodeToString(k.Bytes()); got != wantScalar {
		t.Errorf("seed scalar = %s, want %s", got, wantScalar)
	}
	if got, want := k.WIF(), "5JyRNRTAcXLPdfY5boRdzHqsKU2D8tGaj4UC6dJ6mZowcFvK6jn"; got != want {
		t.Errorf("seed WIF = %s, want %s", got, want)
	}
	if got, want := k.PublicKey().String(DefaultPrefix), "BTS72nADuTLvj8fc5mBAAKG6LB6Vbi67xPbrhqHXHhiSYuqFYTSuZ"; got != want {
		t.Errorf("seed public key = %s, want %s", got, want)
	}
}

func TestKeyPairFromSeed(t *testing.T) {
	wif, pub := KeyPairFromSeed("alice-brain-key-2024", DefaultPrefix)
	if wif != "5JyRNRTAcXLPdfY5boRdzHqsKU2D8tGaj4UC6dJ6mZowcFvK6jn" {
		t.Errorf("unexpected WIF %s", wif)
	}
	if pub != "BTS72nADuTLvj8fc5mBAAKG6LB6Vbi67xPbrhqHXHhiSYuqFYTSuZ" {
		t.Errorf("unexpected public key %s", pub)
	}
}

func TestPrivateKeyFromBrainKey(t *testing.T) {
	const phrase = "LUNGE HOLLO SPECKY PLUMET FUZZY BILIO CRUELS SAWNEB REBAIT DOJO CUSTOM GUAIAC DESMID ANGUID MISFIT SLEEPY"

	tests := []struct {
		sequence int
		wif      string
		pub      string
	}{
		{0, "5KJkm2J48fKBN8XU2m82raaEXX8HWkGP8CnvCmt7eBfLTsV74ez", "BTS51ZsM5ax8YdbVNnppzrdaKVDG8tXhJCA4dN3cfqgsRLR6SNdKh"},
		{1, "5HqbJawq2Xwc9SuNf9v9Sr756gzD2GiScihrqXc51g7Z4eqKyQu", "BTS7YK9DZiQiGq4DMFSF6uJVsvAGpgrJmEzqQWTHiTs9pqjvyazD3"},
	}
	for _, tt := range tests {
		k := PrivateKeyFromBrainKey(phrase, tt.sequence)
		if got := k.WIF(); got != tt.wif {
			t.Errorf("sequence %d: WIF = %s, want %s", tt.sequence, got, tt.wif)
		}
		if got := k.PublicKey().String(DefaultPrefix); got != tt.pub {
			t.Errorf("sequence %d: public key = %s, want %s", tt.sequence, got, tt.pub)
		}
	}

	// Normalization: lowercase with ragged spacing derives the same key.
	sloppy := "  lunge  hollo specky plumet fuzzy bilio cruels sawneb rebait dojo custom guaiac desmid anguid misfit sleepy "
	if got := PrivateKeyFromBrainKey(sloppy, 0).WIF(); got != tests[0].wif {
		t.Errorf("normalized phrase WIF = %s, want %s", got, tests[0].wif)
	}
}

func TestZeroWipesScalar(t *testing.T) {
	k := PrivateKeyFromSeed("wipe me")
	k.Zero()
	if new(big.Int).SetBytes(k.Bytes()).Sign() != 0 {
		t.Error("scalar still readable after Zero")
	}
}

func TestSharedSecretSymmetric(t *testing.T) {
	a := PrivateKeyFromSeed("party a")
	b := PrivateKeyFromSeed("party b")

	sab, err := a.SharedSecret(b.PublicKey())
	if err != nil {
		t.Fatalf("a.SharedSecret: %v", err)
	}
	sba, err := b.SharedSecret(a.PublicKey())
	if err != nil {
		t.Fatalf("b.SharedSecret: %v", err)
	}
	if sab != sba {
		t.Errorf("shared secrets differ: %x vs %x", sab, sba)
	}
}
