package ops

import (
	"github.com/graphenix/wallet-core/pkg/keys"
	"github.com/graphenix/wallet-core/pkg/wire"
)

// Custom carries arbitrary application data on-chain; the chain
// validates only the fee and authorities.
type Custom struct {
	Fee           AssetAmount
	Payer         AccountID
	RequiredAuths []AccountID
	ID            uint16
	Data          []byte
}

// Type implements Operation.
func (op *Custom) Type() OpType { return TypeCustom }

// MarshalWire implements Operation.
func (op *Custom) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Payer))
	writeAccountSet(e, op.RequiredAuths)
	e.WriteUint16(op.ID)
	e.WriteBytes(op.Data)
}

// Predicate is the static_variant of assertions checked by an Assert
// operation.
type Predicate interface {
	predicateTag() uint64
	MarshalWire(e *wire.Encoder)
}

// AccountNameEqLitPredicate (variant 0) asserts an account's name.
type AccountNameEqLitPredicate struct {
	Account AccountID
	Name    string
}

func (AccountNameEqLitPredicate) predicateTag() uint64 { return 0 }

func (p AccountNameEqLitPredicate) MarshalWire(e *wire.Encoder) {
	e.WriteUvarint(uint64(p.Account))
	e.WriteString(p.Name)
}

// AssetSymbolEqLitPredicate (variant 1) asserts an asset's symbol.
type AssetSymbolEqLitPredicate struct {
	Asset  AssetID
	Symbol string
}

func (AssetSymbolEqLitPredicate) predicateTag() uint64 { return 1 }

func (p AssetSymbolEqLitPredicate) MarshalWire(e *wire.Encoder) {
	e.WriteUvarint(uint64(p.Asset))
	e.WriteString(p.Symbol)
}

// BlockIDPredicate (variant 2) asserts a recent block id, pinning the
// transaction to one fork.
type BlockIDPredicate struct {
	ID [20]byte
}

func (BlockIDPredicate) predicateTag() uint64 { return 2 }

func (p BlockIDPredicate) MarshalWire(e *wire.Encoder) {
	e.WriteRaw(p.ID[:])
}

// Assert fails the transaction unless all predicates hold.
type Assert struct {
	Fee              AssetAmount
	FeePayingAccount AccountID
	Predicates       []Predicate
	RequiredAuths    []AccountID
}

// Type implements Operation.
func (op *Assert) Type() OpType { return TypeAssert }

// MarshalWire implements Operation.
func (op *Assert) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.FeePayingAccount))
	e.WriteUvarint(uint64(len(op.Predicates)))
	for _, p := range op.Predicates {
		e.WriteUvarint(p.predicateTag())
		p.MarshalWire(e)
	}
	writeAccountSet(e, op.RequiredAuths)
	writeEmptyExtensions(e)
}

// BalanceClaim redeems a genesis or snapshot balance object into an
// account, proving ownership with the balance key.
type BalanceClaim struct {
	Fee              AssetAmount
	DepositToAccount AccountID
	BalanceToClaim   BalanceID
	BalanceOwnerKey  *keys.PublicKey
	TotalClaimed     AssetAmount
}

// Type implements Operation.
func (op *BalanceClaim) Type() OpType { return TypeBalanceClaim }

// MarshalWire implements Operation.
func (op *BalanceClaim) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.DepositToAccount))
	e.WriteUvarint(uint64(op.BalanceToClaim))
	e.WriteRaw(op.BalanceOwnerKey.Bytes())
	op.TotalClaimed.MarshalWire(e)
}
