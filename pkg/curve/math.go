package curve

import (
	"errors"
	"math/big"
)

// ErrNoInverse is returned when a modular inverse does not exist,
// i.e. gcd(a, m) != 1. The common case is a ≡ 0 (mod m).
var ErrNoInverse = errors.New("curve: no modular inverse")

// Reduce returns a mod m as a value in [0, m).
func Reduce(a, m *big.Int) *big.Int {
	return new(big.Int).Mod(a, m)
}

// Inverse returns x such that a*x ≡ 1 (mod m).
func Inverse(a, m *big.Int) (*big.Int, error) {
	inv := new(big.Int).ModInverse(a, m)
	if inv == nil {
		return nil, ErrNoInverse
	}
	return inv, nil
}

// Power computes base^exp mod m.
func Power(base, exp, m *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, m)
}

// SqrtModP computes v^((P+1)/4) mod P, a square root of v when v is a
// quadratic residue mod P. The caller must square the result and compare
// against v to detect non-residues.
func SqrtModP(v *big.Int) *big.Int {
	return new(big.Int).Exp(v, sqrtExp, P)
}
