// Package curve implements secp256k1 arithmetic from first principles:
// modular arithmetic over math/big integers and affine short-Weierstrass
// point operations, including compressed point encoding.
//
// # Quick Start
//
//	import "github.com/graphenix/wallet-core/pkg/curve"
//
//	// Derive a public point from a scalar
//	pub := curve.BaseMult(scalar)
//
//	// Round-trip through the 33-byte compressed encoding
//	enc := pub.Compress()
//	back, err := curve.Decompress(enc[:])
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Scalar multiplication uses a Montgomery ladder with a fixed 256-bit
// schedule so the operation sequence does not depend on the scalar bits.
// Private-key derivation and ECDH in pkg/keys nevertheless go through
// the vetted decred secp256k1 library; this package's multiplier serves
// signature recovery and verification, which operate on public data.
package curve
