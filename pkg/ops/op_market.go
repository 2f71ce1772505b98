package ops

import "github.com/graphenix/wallet-core/pkg/wire"

// LimitOrderCreate places an order to sell one asset for another at a
// limit price implied by the two amounts.
type LimitOrderCreate struct {
	Fee          AssetAmount
	Seller       AccountID
	AmountToSell AssetAmount
	MinToReceive AssetAmount
	Expiration   TimePointSec
	FillOrKill   bool
}

// Type implements Operation.
func (op *LimitOrderCreate) Type() OpType { return TypeLimitOrderCreate }

// MarshalWire implements Operation.
func (op *LimitOrderCreate) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Seller))
	op.AmountToSell.MarshalWire(e)
	op.MinToReceive.MarshalWire(e)
	op.Expiration.MarshalWire(e)
	e.WriteBool(op.FillOrKill)
	writeEmptyExtensions(e)
}

// LimitOrderCancel removes an open limit order.
type LimitOrderCancel struct {
	Fee              AssetAmount
	FeePayingAccount AccountID
	Order            LimitOrderID
}

// Type implements Operation.
func (op *LimitOrderCancel) Type() OpType { return TypeLimitOrderCancel }

// MarshalWire implements Operation.
func (op *LimitOrderCancel) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.FeePayingAccount))
	e.WriteUvarint(uint64(op.Order))
	writeEmptyExtensions(e)
}

// LimitOrderUpdate adjusts the price, size, or expiration of an open
// limit order.
type LimitOrderUpdate struct {
	Fee               AssetAmount
	Seller            AccountID
	Order             LimitOrderID
	NewPrice          *Price
	DeltaAmountToSell *AssetAmount
	NewExpiration     *TimePointSec
}

// Type implements Operation.
func (op *LimitOrderUpdate) Type() OpType { return TypeLimitOrderUpdate }

// MarshalWire implements Operation.
func (op *LimitOrderUpdate) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Seller))
	e.WriteUvarint(uint64(op.Order))
	e.WriteOptional(op.NewPrice != nil)
	if op.NewPrice != nil {
		op.NewPrice.MarshalWire(e)
	}
	e.WriteOptional(op.DeltaAmountToSell != nil)
	if op.DeltaAmountToSell != nil {
		op.DeltaAmountToSell.MarshalWire(e)
	}
	e.WriteOptional(op.NewExpiration != nil)
	if op.NewExpiration != nil {
		op.NewExpiration.MarshalWire(e)
	}
	writeEmptyExtensions(e)
}

// CallOrderUpdate adjusts the collateral or debt of a margin position.
type CallOrderUpdate struct {
	Fee             AssetAmount
	FundingAccount  AccountID
	DeltaCollateral AssetAmount
	DeltaDebt       AssetAmount

	// TargetCollateralRatio, when set, asks the chain to sell just
	// enough collateral to reach this ratio on margin call.
	TargetCollateralRatio *uint16
}

// Type implements Operation.
func (op *CallOrderUpdate) Type() OpType { return TypeCallOrderUpdate }

// MarshalWire implements Operation.
func (op *CallOrderUpdate) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.FundingAccount))
	op.DeltaCollateral.MarshalWire(e)
	op.DeltaDebt.MarshalWire(e)

	var slots []extSlot
	if op.TargetCollateralRatio != nil {
		v := *op.TargetCollateralRatio
		slots = append(slots, extSlot{0, func(e *wire.Encoder) { e.WriteUint16(v) }})
	}
	writeExtSlots(e, slots)
}

// BidCollateral bids collateral into the settlement fund of a
// globally-settled bitasset.
type BidCollateral struct {
	Fee                  AssetAmount
	Bidder               AccountID
	AdditionalCollateral AssetAmount
	DebtCovered          AssetAmount
}

// Type implements Operation.
func (op *BidCollateral) Type() OpType { return TypeBidCollateral }

// MarshalWire implements Operation.
func (op *BidCollateral) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Bidder))
	op.AdditionalCollateral.MarshalWire(e)
	op.DebtCovered.MarshalWire(e)
	writeEmptyExtensions(e)
}
