package ops

import (
	"sort"

	"github.com/graphenix/wallet-core/pkg/wire"
)

// CustomAuthorityCreate installs a restricted authority that may sign
// one specific operation type on the account's behalf.
type CustomAuthorityCreate struct {
	Fee           AssetAmount
	Account       AccountID
	Enabled       bool
	ValidFrom     TimePointSec
	ValidTo       TimePointSec
	OperationType OpType
	Auth          Authority
	Restrictions  []Restriction
}

// Type implements Operation.
func (op *CustomAuthorityCreate) Type() OpType { return TypeCustomAuthorityCreate }

// MarshalWire implements Operation.
func (op *CustomAuthorityCreate) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Account))
	e.WriteBool(op.Enabled)
	op.ValidFrom.MarshalWire(e)
	op.ValidTo.MarshalWire(e)
	e.WriteUvarint(uint64(op.OperationType))
	op.Auth.MarshalWire(e)
	writeRestrictions(e, op.Restrictions)
	writeEmptyExtensions(e)
}

// CustomAuthorityUpdate modifies an installed custom authority.
type CustomAuthorityUpdate struct {
	Fee                  AssetAmount
	Account              AccountID
	AuthorityToUpdate    CustomAuthorityID
	NewEnabled           *bool
	NewValidFrom         *TimePointSec
	NewValidTo           *TimePointSec
	NewAuth              *Authority
	RestrictionsToRemove []uint16
	RestrictionsToAdd    []Restriction
}

// Type implements Operation.
func (op *CustomAuthorityUpdate) Type() OpType { return TypeCustomAuthorityUpdate }

// MarshalWire implements Operation.
func (op *CustomAuthorityUpdate) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Account))
	e.WriteUvarint(uint64(op.AuthorityToUpdate))
	e.WriteOptional(op.NewEnabled != nil)
	if op.NewEnabled != nil {
		e.WriteBool(*op.NewEnabled)
	}
	e.WriteOptional(op.NewValidFrom != nil)
	if op.NewValidFrom != nil {
		op.NewValidFrom.MarshalWire(e)
	}
	e.WriteOptional(op.NewValidTo != nil)
	if op.NewValidTo != nil {
		op.NewValidTo.MarshalWire(e)
	}
	e.WriteOptional(op.NewAuth != nil)
	if op.NewAuth != nil {
		op.NewAuth.MarshalWire(e)
	}

	remove := append([]uint16(nil), op.RestrictionsToRemove...)
	sort.Slice(remove, func(i, j int) bool { return remove[i] < remove[j] })
	e.WriteUvarint(uint64(len(remove)))
	for _, idx := range remove {
		e.WriteUint16(idx)
	}

	writeRestrictions(e, op.RestrictionsToAdd)
	writeEmptyExtensions(e)
}

// CustomAuthorityDelete removes an installed custom authority.
type CustomAuthorityDelete struct {
	Fee               AssetAmount
	Account           AccountID
	AuthorityToDelete CustomAuthorityID
}

// Type implements Operation.
func (op *CustomAuthorityDelete) Type() OpType { return TypeCustomAuthorityDelete }

// MarshalWire implements Operation.
func (op *CustomAuthorityDelete) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Account))
	e.WriteUvarint(uint64(op.AuthorityToDelete))
	writeEmptyExtensions(e)
}

// Ticket target types: how long the funds lock for voting power.
const (
	TicketLiquid      uint64 = 0
	TicketLock180     uint64 = 1
	TicketLock360     uint64 = 2
	TicketLock720     uint64 = 3
	TicketLockForever uint64 = 4
)

// TicketCreate locks funds for boosted voting power.
type TicketCreate struct {
	Fee        AssetAmount
	Account    AccountID
	TargetType uint64
	Amount     AssetAmount
}

// Type implements Operation.
func (op *TicketCreate) Type() OpType { return TypeTicketCreate }

// MarshalWire implements Operation.
func (op *TicketCreate) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Account))
	e.WriteUvarint(op.TargetType)
	op.Amount.MarshalWire(e)
	writeEmptyExtensions(e)
}

// TicketUpdate changes a ticket's lock target or splits part of it off.
type TicketUpdate struct {
	Fee                AssetAmount
	Ticket             TicketID
	Account            AccountID
	TargetType         uint64
	AmountForNewTarget *AssetAmount
}

// Type implements Operation.
func (op *TicketUpdate) Type() OpType { return TypeTicketUpdate }

// MarshalWire implements Operation.
func (op *TicketUpdate) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Ticket))
	e.WriteUvarint(uint64(op.Account))
	e.WriteUvarint(op.TargetType)
	e.WriteOptional(op.AmountForNewTarget != nil)
	if op.AmountForNewTarget != nil {
		op.AmountForNewTarget.MarshalWire(e)
	}
	writeEmptyExtensions(e)
}
