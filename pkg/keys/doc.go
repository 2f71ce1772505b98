// Package keys implements the text encodings around secp256k1 key
// material: Base58 and Base58Check, WIF private keys, chain public key
// strings, and 20-byte addresses.
//
// # Quick Start
//
//	import "github.com/graphenix/wallet-core/pkg/keys"
//
//	// Deterministic key pair from a seed
//	wif, pub := keys.KeyPairFromSeed("my seed", keys.DefaultPrefix)
//
//	// Import an existing key
//	priv, err := keys.PrivateKeyFromWIF(wif)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer priv.Zero()
//
//	fmt.Println(priv.PublicKey().String(keys.DefaultPrefix))
//
// Two different checksum derivations are in play. WIF uses Base58Check
// with a trailing 4-byte double-SHA256 checksum and a 0x80 version byte.
// Chain public key strings and addresses use a 4-byte ripemd160 checksum
// with no version byte, prefixed by the network name (e.g. "BTS").
//
// Private keys own their scalar bytes; call Zero when done with a key.
// Derivation through private scalars goes via the decred secp256k1
// library rather than this repository's own point arithmetic.
package keys
