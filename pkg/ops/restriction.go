package ops

import (
	"github.com/graphenix/wallet-core/pkg/keys"
	"github.com/graphenix/wallet-core/pkg/wire"
)

// Restriction is one predicate of a custom authority: which operation
// field it inspects, how it compares, and the comparison argument.
// Restrictions nest through RestrictionListArgument, so a single
// restriction can constrain whole sub-objects.
type Restriction struct {
	MemberIndex     uint64
	RestrictionType uint64
	Argument        RestrictionArgument
}

// Restriction type numbers.
const (
	RestrictionEq uint64 = iota
	RestrictionNe
	RestrictionLt
	RestrictionLe
	RestrictionGt
	RestrictionGe
	RestrictionIn
	RestrictionNotIn
	RestrictionHasAll
	RestrictionHasNone
	RestrictionAttr
	RestrictionLogicalOr
)

// MarshalWire writes member index, restriction type, and the tagged
// argument.
func (r Restriction) MarshalWire(e *wire.Encoder) {
	e.WriteUvarint(r.MemberIndex)
	e.WriteUvarint(r.RestrictionType)
	e.WriteUvarint(r.Argument.argumentTag())
	r.Argument.MarshalWire(e)
}

func writeRestrictions(e *wire.Encoder, rs []Restriction) {
	e.WriteUvarint(uint64(len(rs)))
	for _, r := range rs {
		r.MarshalWire(e)
	}
}

// RestrictionArgument is the static_variant of comparison arguments.
// Tags follow the chain's argument variant order.
type RestrictionArgument interface {
	argumentTag() uint64
	MarshalWire(e *wire.Encoder)
}

// Argument variant tags.
const (
	argVoid uint64 = iota
	argBool
	argInt64
	argString
	argTime
	argPublicKey
	argSHA256
	argAccountID
	argAssetID
)

// argRestrictionList is the variant slot of a nested restriction
// vector used by attribute and logical-or restrictions.
const argRestrictionList uint64 = 39

// VoidArgument is the empty argument of presence checks.
type VoidArgument struct{}

func (VoidArgument) argumentTag() uint64         { return argVoid }
func (VoidArgument) MarshalWire(e *wire.Encoder) {}

// BoolArgument compares against a boolean field.
type BoolArgument bool

func (BoolArgument) argumentTag() uint64 { return argBool }

func (a BoolArgument) MarshalWire(e *wire.Encoder) { e.WriteBool(bool(a)) }

// Int64Argument compares against a signed integer field.
type Int64Argument int64

func (Int64Argument) argumentTag() uint64 { return argInt64 }

func (a Int64Argument) MarshalWire(e *wire.Encoder) { e.WriteInt64(int64(a)) }

// StringArgument compares against a string field.
type StringArgument string

func (StringArgument) argumentTag() uint64 { return argString }

func (a StringArgument) MarshalWire(e *wire.Encoder) { e.WriteString(string(a)) }

// TimeArgument compares against a timestamp field.
type TimeArgument TimePointSec

func (TimeArgument) argumentTag() uint64 { return argTime }

func (a TimeArgument) MarshalWire(e *wire.Encoder) { TimePointSec(a).MarshalWire(e) }

// PublicKeyArgument compares against a public key field.
type PublicKeyArgument struct {
	Key *keys.PublicKey
}

func (PublicKeyArgument) argumentTag() uint64 { return argPublicKey }

func (a PublicKeyArgument) MarshalWire(e *wire.Encoder) { e.WriteRaw(a.Key.Bytes()) }

// SHA256Argument compares against a 32-byte digest field.
type SHA256Argument [32]byte

func (SHA256Argument) argumentTag() uint64 { return argSHA256 }

func (a SHA256Argument) MarshalWire(e *wire.Encoder) { e.WriteRaw(a[:]) }

// AccountIDArgument compares against an account id field.
type AccountIDArgument AccountID

func (AccountIDArgument) argumentTag() uint64 { return argAccountID }

func (a AccountIDArgument) MarshalWire(e *wire.Encoder) { e.WriteUvarint(uint64(a)) }

// AssetIDArgument compares against an asset id field.
type AssetIDArgument AssetID

func (AssetIDArgument) argumentTag() uint64 { return argAssetID }

func (a AssetIDArgument) MarshalWire(e *wire.Encoder) { e.WriteUvarint(uint64(a)) }

// RestrictionListArgument nests further restrictions; used with
// RestrictionAttr and RestrictionLogicalOr.
type RestrictionListArgument []Restriction

func (RestrictionListArgument) argumentTag() uint64 { return argRestrictionList }

func (a RestrictionListArgument) MarshalWire(e *wire.Encoder) {
	writeRestrictions(e, a)
}
