package curve

import "math/big"

// secp256k1 domain parameters. These are fixed constants of the curve
// y^2 = x^3 + 7 over the prime field F_P; they are never mutated.
var (
	// P is the field prime.
	P = fromHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F")

	// N is the order of the generator point G.
	N = fromHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141")

	// B is the curve constant in y^2 = x^3 + B.
	B = big.NewInt(7)

	gx = fromHex("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798")
	gy = fromHex("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8")

	// HalfN is N/2, the low-S boundary for canonical signatures.
	HalfN = new(big.Int).Rsh(N, 1)

	// sqrtExp is (P+1)/4. P ≡ 3 (mod 4), so v^sqrtExp is a square root
	// of v mod P whenever v is a quadratic residue.
	sqrtExp = new(big.Int).Rsh(new(big.Int).Add(P, big.NewInt(1)), 2)
)

// fromHex converts a hex string to a big.Int and panics on malformed
// input. It is only used for the hard-coded curve constants above.
func fromHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("curve: invalid hex constant " + s)
	}
	return v
}
