package ops

import (
	"github.com/graphenix/wallet-core/pkg/memo"
	"github.com/graphenix/wallet-core/pkg/wire"
)

// Transfer moves an asset amount between two accounts, optionally
// carrying an encrypted memo.
type Transfer struct {
	Fee    AssetAmount
	From   AccountID
	To     AccountID
	Amount AssetAmount
	Memo   *memo.Memo
}

// Type implements Operation.
func (op *Transfer) Type() OpType { return TypeTransfer }

// MarshalWire implements Operation.
func (op *Transfer) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.From))
	e.WriteUvarint(uint64(op.To))
	op.Amount.MarshalWire(e)
	writeOptionalMemo(e, op.Memo)
	writeEmptyExtensions(e)
}

// OverrideTransfer lets an asset issuer move its own asset out of any
// account; the issuer signs instead of the source account.
type OverrideTransfer struct {
	Fee    AssetAmount
	Issuer AccountID
	From   AccountID
	To     AccountID
	Amount AssetAmount
	Memo   *memo.Memo
}

// Type implements Operation.
func (op *OverrideTransfer) Type() OpType { return TypeOverrideTransfer }

// MarshalWire implements Operation.
func (op *OverrideTransfer) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Issuer))
	e.WriteUvarint(uint64(op.From))
	e.WriteUvarint(uint64(op.To))
	op.Amount.MarshalWire(e)
	writeOptionalMemo(e, op.Memo)
	writeEmptyExtensions(e)
}
