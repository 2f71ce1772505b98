package sig

import (
	"math/big"

	"github.com/graphenix/wallet-core/pkg/curve"
	"github.com/graphenix/wallet-core/pkg/keys"
)

// Recover performs SEC1 public key recovery from a compact signature
// and the signed 32-byte message hash.
//
// The recovery id selects the x candidate (bit 1 adds N to r) and the
// parity of the recovered R point (bit 0).
func Recover(msgHash [32]byte, sig Signature) (*keys.PublicKey, error) {
	recid := sig.RecoveryID()
	if recid < 0 || recid > 3 {
		return nil, ErrInvalidRecoveryID
	}

	rBytes := sig.R()
	sBytes := sig.S()
	r := new(big.Int).SetBytes(rBytes[:])
	s := new(big.Int).SetBytes(sBytes[:])
	if r.Sign() <= 0 || r.Cmp(curve.N) >= 0 || s.Sign() <= 0 || s.Cmp(curve.N) >= 0 {
		return nil, ErrInvalidSignatureRange
	}

	x := new(big.Int).Set(r)
	if recid&2 != 0 {
		x.Add(x, curve.N)
		if x.Cmp(curve.P) >= 0 {
			return nil, ErrInvalidRecoveryID
		}
	}

	// Rebuild R from its x coordinate and the parity in bit 0.
	var comp [curve.CompressedSize]byte
	comp[0] = 0x02 | byte(recid&1)
	x.FillBytes(comp[1:])
	rPoint, err := curve.Decompress(comp[:])
	if err != nil {
		return nil, err
	}

	// Q = r^-1 * (s*R + (N - z mod N)*G)
	rInv, err := curve.Inverse(r, curve.N)
	if err != nil {
		return nil, ErrInvalidSignatureRange
	}
	z := new(big.Int).SetBytes(msgHash[:])
	z.Mod(z, curve.N)
	minusZ := new(big.Int).Sub(curve.N, z)
	minusZ.Mod(minusZ, curve.N)

	q := rPoint.ScalarMult(s).Add(curve.BaseMult(minusZ)).ScalarMult(rInv)
	if q.IsInfinity() {
		return nil, ErrPointAtInfinity
	}
	return keys.PublicKeyFromPoint(q), nil
}

// Verify reports whether sig is a valid signature over msgHash by pub.
// It never returns an error: any failure inside recovery reads as an
// invalid signature.
func Verify(msgHash [32]byte, sig Signature, pub *keys.PublicKey) bool {
	recovered, err := Recover(msgHash, sig)
	if err != nil {
		return false
	}
	return recovered.Equal(pub)
}
