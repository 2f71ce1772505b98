// Package memo implements ECIES-style encrypted transfer memos: an
// ECDH shared point between sender and recipient, a nonce-salted
// SHA-512 keystream supplying an AES-256 key and CBC IV, and a 4-byte
// plaintext checksum packed ahead of the ciphertext.
//
// Either participant can decrypt: the packed memo carries both public
// keys, and Decrypt picks the counterparty key by matching the private
// key against them.
package memo
