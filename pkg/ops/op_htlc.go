package ops

import (
	"github.com/graphenix/wallet-core/pkg/memo"
	"github.com/graphenix/wallet-core/pkg/wire"
)

// HTLCCreate locks funds claimable by whoever presents the hash
// preimage within the claim period.
type HTLCCreate struct {
	Fee                AssetAmount
	From               AccountID
	To                 AccountID
	Amount             AssetAmount
	PreimageHash       HTLCHash
	PreimageSize       uint16
	ClaimPeriodSeconds uint32

	Memo *memo.Memo // extension slot 0
}

// Type implements Operation.
func (op *HTLCCreate) Type() OpType { return TypeHTLCCreate }

// MarshalWire implements Operation.
func (op *HTLCCreate) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.From))
	e.WriteUvarint(uint64(op.To))
	op.Amount.MarshalWire(e)
	writeHTLCHash(e, op.PreimageHash)
	e.WriteUint16(op.PreimageSize)
	e.WriteUint32(op.ClaimPeriodSeconds)

	// The extension slot carries the memo body directly: a present
	// slot already expresses the optional, so no inner presence byte.
	var slots []extSlot
	if op.Memo != nil {
		m := op.Memo
		slots = append(slots, extSlot{0, func(e *wire.Encoder) { writeMemoBody(e, m) }})
	}
	writeExtSlots(e, slots)
}

// HTLCRedeem claims a locked contract by revealing the preimage.
type HTLCRedeem struct {
	Fee      AssetAmount
	HTLC     HTLCID
	Redeemer AccountID
	Preimage []byte
}

// Type implements Operation.
func (op *HTLCRedeem) Type() OpType { return TypeHTLCRedeem }

// MarshalWire implements Operation.
func (op *HTLCRedeem) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.HTLC))
	e.WriteUvarint(uint64(op.Redeemer))
	e.WriteBytes(op.Preimage)
	writeEmptyExtensions(e)
}

// HTLCExtend pushes out a contract's claim deadline.
type HTLCExtend struct {
	Fee          AssetAmount
	HTLC         HTLCID
	UpdateIssuer AccountID
	SecondsToAdd uint32
}

// Type implements Operation.
func (op *HTLCExtend) Type() OpType { return TypeHTLCExtend }

// MarshalWire implements Operation.
func (op *HTLCExtend) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.HTLC))
	e.WriteUvarint(uint64(op.UpdateIssuer))
	e.WriteUint32(op.SecondsToAdd)
	writeEmptyExtensions(e)
}
