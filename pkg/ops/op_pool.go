package ops

import "github.com/graphenix/wallet-core/pkg/wire"

// LiquidityPoolCreate opens an automated market between two assets,
// issuing a share asset to liquidity providers.
type LiquidityPoolCreate struct {
	Fee                  AssetAmount
	Account              AccountID
	AssetA               AssetID
	AssetB               AssetID
	ShareAsset           AssetID
	TakerFeePercent      uint16
	WithdrawalFeePercent uint16
}

// Type implements Operation.
func (op *LiquidityPoolCreate) Type() OpType { return TypeLiquidityPoolCreate }

// MarshalWire implements Operation.
func (op *LiquidityPoolCreate) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Account))
	e.WriteUvarint(uint64(op.AssetA))
	e.WriteUvarint(uint64(op.AssetB))
	e.WriteUvarint(uint64(op.ShareAsset))
	e.WriteUint16(op.TakerFeePercent)
	e.WriteUint16(op.WithdrawalFeePercent)
	writeEmptyExtensions(e)
}

// LiquidityPoolDelete closes an empty pool.
type LiquidityPoolDelete struct {
	Fee     AssetAmount
	Account AccountID
	Pool    LiquidityPoolID
}

// Type implements Operation.
func (op *LiquidityPoolDelete) Type() OpType { return TypeLiquidityPoolDelete }

// MarshalWire implements Operation.
func (op *LiquidityPoolDelete) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Account))
	e.WriteUvarint(uint64(op.Pool))
	writeEmptyExtensions(e)
}

// LiquidityPoolUpdate adjusts a pool's fee percentages.
type LiquidityPoolUpdate struct {
	Fee                  AssetAmount
	Account              AccountID
	Pool                 LiquidityPoolID
	TakerFeePercent      *uint16
	WithdrawalFeePercent *uint16
}

// Type implements Operation.
func (op *LiquidityPoolUpdate) Type() OpType { return TypeLiquidityPoolUpdate }

// MarshalWire implements Operation.
func (op *LiquidityPoolUpdate) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Account))
	e.WriteUvarint(uint64(op.Pool))
	e.WriteOptional(op.TakerFeePercent != nil)
	if op.TakerFeePercent != nil {
		e.WriteUint16(*op.TakerFeePercent)
	}
	e.WriteOptional(op.WithdrawalFeePercent != nil)
	if op.WithdrawalFeePercent != nil {
		e.WriteUint16(*op.WithdrawalFeePercent)
	}
	writeEmptyExtensions(e)
}

// LiquidityPoolDeposit adds liquidity to both sides of a pool.
type LiquidityPoolDeposit struct {
	Fee     AssetAmount
	Account AccountID
	Pool    LiquidityPoolID
	AmountA AssetAmount
	AmountB AssetAmount
}

// Type implements Operation.
func (op *LiquidityPoolDeposit) Type() OpType { return TypeLiquidityPoolDeposit }

// MarshalWire implements Operation.
func (op *LiquidityPoolDeposit) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Account))
	e.WriteUvarint(uint64(op.Pool))
	op.AmountA.MarshalWire(e)
	op.AmountB.MarshalWire(e)
	writeEmptyExtensions(e)
}

// LiquidityPoolWithdraw redeems share-asset for the underlying pair.
type LiquidityPoolWithdraw struct {
	Fee         AssetAmount
	Account     AccountID
	Pool        LiquidityPoolID
	ShareAmount AssetAmount
}

// Type implements Operation.
func (op *LiquidityPoolWithdraw) Type() OpType { return TypeLiquidityPoolWithdraw }

// MarshalWire implements Operation.
func (op *LiquidityPoolWithdraw) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Account))
	e.WriteUvarint(uint64(op.Pool))
	op.ShareAmount.MarshalWire(e)
	writeEmptyExtensions(e)
}

// LiquidityPoolExchange swaps against a pool.
type LiquidityPoolExchange struct {
	Fee          AssetAmount
	Account      AccountID
	Pool         LiquidityPoolID
	AmountToSell AssetAmount
	MinToReceive AssetAmount
}

// Type implements Operation.
func (op *LiquidityPoolExchange) Type() OpType { return TypeLiquidityPoolExchange }

// MarshalWire implements Operation.
func (op *LiquidityPoolExchange) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Account))
	e.WriteUvarint(uint64(op.Pool))
	op.AmountToSell.MarshalWire(e)
	op.MinToReceive.MarshalWire(e)
	writeEmptyExtensions(e)
}

// SametFundCreate opens a same-transaction flash-loan fund.
type SametFundCreate struct {
	Fee          AssetAmount
	OwnerAccount AccountID
	AssetType    AssetID
	Balance      int64
	FeeRate      uint32
}

// Type implements Operation.
func (op *SametFundCreate) Type() OpType { return TypeSametFundCreate }

// MarshalWire implements Operation.
func (op *SametFundCreate) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.OwnerAccount))
	e.WriteUvarint(uint64(op.AssetType))
	e.WriteInt64(op.Balance)
	e.WriteUint32(op.FeeRate)
	writeEmptyExtensions(e)
}

// SametFundDelete closes a fund and returns its balance.
type SametFundDelete struct {
	Fee          AssetAmount
	OwnerAccount AccountID
	FundID       SametFundID
}

// Type implements Operation.
func (op *SametFundDelete) Type() OpType { return TypeSametFundDelete }

// MarshalWire implements Operation.
func (op *SametFundDelete) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.OwnerAccount))
	e.WriteUvarint(uint64(op.FundID))
	writeEmptyExtensions(e)
}

// SametFundUpdate adjusts a fund's balance or fee rate.
type SametFundUpdate struct {
	Fee          AssetAmount
	OwnerAccount AccountID
	FundID       SametFundID
	DeltaAmount  *AssetAmount
	NewFeeRate   *uint32
}

// Type implements Operation.
func (op *SametFundUpdate) Type() OpType { return TypeSametFundUpdate }

// MarshalWire implements Operation.
func (op *SametFundUpdate) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.OwnerAccount))
	e.WriteUvarint(uint64(op.FundID))
	e.WriteOptional(op.DeltaAmount != nil)
	if op.DeltaAmount != nil {
		op.DeltaAmount.MarshalWire(e)
	}
	e.WriteOptional(op.NewFeeRate != nil)
	if op.NewFeeRate != nil {
		e.WriteUint32(*op.NewFeeRate)
	}
	writeEmptyExtensions(e)
}

// SametFundBorrow takes a loan that must be repaid within the same
// transaction.
type SametFundBorrow struct {
	Fee          AssetAmount
	Borrower     AccountID
	FundID       SametFundID
	BorrowAmount AssetAmount
}

// Type implements Operation.
func (op *SametFundBorrow) Type() OpType { return TypeSametFundBorrow }

// MarshalWire implements Operation.
func (op *SametFundBorrow) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Borrower))
	e.WriteUvarint(uint64(op.FundID))
	op.BorrowAmount.MarshalWire(e)
	writeEmptyExtensions(e)
}

// SametFundRepay settles a same-transaction loan plus the fund fee.
type SametFundRepay struct {
	Fee         AssetAmount
	Account     AccountID
	FundID      SametFundID
	RepayAmount AssetAmount
	FundFee     AssetAmount
}

// Type implements Operation.
func (op *SametFundRepay) Type() OpType { return TypeSametFundRepay }

// MarshalWire implements Operation.
func (op *SametFundRepay) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Account))
	e.WriteUvarint(uint64(op.FundID))
	op.RepayAmount.MarshalWire(e)
	op.FundFee.MarshalWire(e)
	writeEmptyExtensions(e)
}
