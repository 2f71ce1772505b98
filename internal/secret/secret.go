// Package secret provides zeroization helpers for private-key material.
//
// Every buffer or big.Int that ever held a private scalar or a signing
// nonce must be wiped on all exit paths, including error returns.
package secret

import "math/big"

// Wipe overwrites b with zeros.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// WipeBig overwrites the internal words of v with zeros and sets v to 0.
// v may be nil.
func WipeBig(v *big.Int) {
	if v == nil {
		return
	}
	words := v.Bits()
	for i := range words {
		words[i] = 0
	}
	v.SetInt64(0)
}
