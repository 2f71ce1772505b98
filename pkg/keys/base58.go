package keys

import (
	"crypto/sha256"
	"errors"
	"math/big"
)

// alphabet is the standard Bitcoin Base58 alphabet.
const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// ErrInvalidCharacter is returned by Base58Decode for input containing
// a byte outside the Base58 alphabet.
var ErrInvalidCharacter = errors.New("keys: invalid base58 character")

var alphabetIndex [256]int8

func init() {
	for i := range alphabetIndex {
		alphabetIndex[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		alphabetIndex[alphabet[i]] = int8(i)
	}
}

var base58 = big.NewInt(58)

// Base58Encode encodes data as a Base58 string. Each leading zero byte
// becomes one leading '1' character.
func Base58Encode(data []byte) string {
	zeros := 0
	for zeros < len(data) && data[zeros] == 0 {
		zeros++
	}

	x := new(big.Int).SetBytes(data)
	mod := new(big.Int)
	var digits []byte
	for x.Sign() > 0 {
		x.DivMod(x, base58, mod)
		digits = append(digits, alphabet[mod.Int64()])
	}

	out := make([]byte, 0, zeros+len(digits))
	for i := 0; i < zeros; i++ {
		out = append(out, alphabet[0])
	}
	for i := len(digits) - 1; i >= 0; i-- {
		out = append(out, digits[i])
	}
	return string(out)
}

// Base58Decode decodes a Base58 string back to bytes. Each leading '1'
// character becomes one leading zero byte.
func Base58Decode(s string) ([]byte, error) {
	zeros := 0
	for zeros < len(s) && s[zeros] == alphabet[0] {
		zeros++
	}

	x := new(big.Int)
	for i := 0; i < len(s); i++ {
		v := alphabetIndex[s[i]]
		if v < 0 {
			return nil, ErrInvalidCharacter
		}
		x.Mul(x, base58)
		x.Add(x, big.NewInt(int64(v)))
	}

	body := x.Bytes()
	out := make([]byte, zeros+len(body))
	copy(out[zeros:], body)
	return out, nil
}

// doubleSHA256 is the Base58Check checksum hash: sha256(sha256(data)).
func doubleSHA256(data []byte) [32]byte {
	first := sha256.Sum256(data)
	return sha256.Sum256(first[:])
}

// CheckEncode encodes version||payload with a trailing 4-byte
// double-SHA256 checksum, Base58 encoded.
func CheckEncode(payload []byte, version byte) string {
	buf := make([]byte, 0, 1+len(payload)+4)
	buf = append(buf, version)
	buf = append(buf, payload...)
	sum := doubleSHA256(buf)
	buf = append(buf, sum[:4]...)
	return Base58Encode(buf)
}
