package sig

import (
	"crypto/sha256"
	"encoding/binary"
	"math/big"

	"github.com/graphenix/wallet-core/internal/secret"
	"github.com/graphenix/wallet-core/pkg/curve"
	"github.com/graphenix/wallet-core/pkg/keys"
)

// maxAttempts bounds the deterministic nonce search. Exceeding it is a
// terminal failure, never a retry-forever loop.
const maxAttempts = 100

// Sign produces a canonical compact signature over a 32-byte message
// hash.
//
// The nonce is deterministic: attempt i uses
// k = sha256(privateKey ‖ msgHash ‖ bigEndian32(i)) reduced into
// [1, N-1]. An attempt is discarded when r or s is zero or the padded
// (r, s) pair fails the canonical-form rules; the signature is final
// once a recovery id in [0, 4) reproduces the signer's public key.
func Sign(msgHash [32]byte, priv *keys.PrivateKey) (Signature, error) {
	expected := priv.PublicKey()

	privBytes := priv.Bytes()
	defer secret.Wipe(privBytes)
	d := priv.Scalar()
	defer secret.WipeBig(d)

	z := new(big.Int).SetBytes(msgHash[:])
	nMinus1 := new(big.Int).Sub(curve.N, big.NewInt(1))

	canonicalSeen := false
	for attempt := uint32(0); attempt < maxAttempts; attempt++ {
		k := deriveNonce(privBytes, msgHash, attempt, nMinus1)

		sig, ok := signOnce(msgHash, z, d, k, expected)
		secret.WipeBig(k)
		if !ok.candidate {
			continue
		}
		canonicalSeen = true
		if ok.matched {
			return sig, nil
		}
	}

	if canonicalSeen {
		return Signature{}, ErrRecoveryIDNotFound
	}
	return Signature{}, ErrCanonicalNotFound
}

// deriveNonce hashes privateKey ‖ msgHash ‖ attempt counter and reduces
// the digest into [1, N-1].
func deriveNonce(privBytes []byte, msgHash [32]byte, attempt uint32, nMinus1 *big.Int) *big.Int {
	h := sha256.New()
	h.Write(privBytes)
	h.Write(msgHash[:])
	var ctr [4]byte
	binary.BigEndian.PutUint32(ctr[:], attempt)
	h.Write(ctr[:])

	digest := h.Sum(nil)
	k := new(big.Int).SetBytes(digest)
	secret.Wipe(digest)
	k.Mod(k, nMinus1)
	k.Add(k, big.NewInt(1))
	return k
}

type attemptOutcome struct {
	// candidate is true when the attempt produced a canonical (r, s).
	candidate bool
	// matched is true when a recovery id reproduced the expected key.
	matched bool
}

// signOnce runs a single nonce attempt: computes (r, s), normalizes to
// low-S, applies the canonical filter, and searches for the recovery id.
func signOnce(msgHash [32]byte, z, d, k *big.Int, expected *keys.PublicKey) (Signature, attemptOutcome) {
	var sig Signature

	rPoint := curve.BaseMult(k)
	r := new(big.Int).Mod(rPoint.X(), curve.N)
	if r.Sign() == 0 {
		return sig, attemptOutcome{}
	}

	kInv, err := curve.Inverse(k, curve.N)
	if err != nil {
		return sig, attemptOutcome{}
	}
	defer secret.WipeBig(kInv)

	// s = k^-1 * (z + r*d) mod N
	s := new(big.Int).Mul(r, d)
	s.Add(s, z)
	s.Mul(s, kInv)
	s.Mod(s, curve.N)
	if s.Sign() == 0 {
		return sig, attemptOutcome{}
	}
	if s.Cmp(curve.HalfN) > 0 {
		s.Sub(curve.N, s)
	}

	var rb, sb [32]byte
	r.FillBytes(rb[:])
	s.FillBytes(sb[:])
	if !Canonical(rb, sb) {
		return sig, attemptOutcome{}
	}

	for recid := 0; recid < 4; recid++ {
		sig[0] = byte(headerBase + recid)
		copy(sig[1:33], rb[:])
		copy(sig[33:], sb[:])

		recovered, err := Recover(msgHash, sig)
		if err != nil {
			continue
		}
		if recovered.Equal(expected) {
			return sig, attemptOutcome{candidate: true, matched: true}
		}
	}
	return Signature{}, attemptOutcome{candidate: true}
}
