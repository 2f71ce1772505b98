// Package wire provides the primitive binary writers underlying the
// transaction codec: little-endian fixed-width integers, base-128
// varints, length-prefixed and fixed-size byte fields, and the
// presence-flag framing of optional fields.
//
// Determinism is the contract here: the same sequence of writes always
// yields the same bytes, because those bytes are what gets hashed and
// signed.
package wire
