// Package sig implements recoverable ECDSA over secp256k1 in the
// 65-byte compact form used by Graphene chains: a header byte encoding
// the recovery id, followed by r and s.
//
// # Quick Start
//
//	import "github.com/graphenix/wallet-core/pkg/sig"
//
//	signature, err := sig.Sign(digest, priv)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	pub, err := sig.Recover(digest, signature)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Signatures are canonical: s is normalized below N/2 and the leading
// bytes of r and s stay below 0x80 with no 0x00 padding ambiguity.
// Nonces come from a bounded deterministic counter search; both
// exhaustion modes surface as typed errors (ErrCanonicalNotFound,
// ErrRecoveryIDNotFound) rather than unbounded retries.
package sig
