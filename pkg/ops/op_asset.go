package ops

import (
	"github.com/graphenix/wallet-core/pkg/memo"
	"github.com/graphenix/wallet-core/pkg/wire"
)

// AssetCreate registers a new asset symbol and its option blocks.
type AssetCreate struct {
	Fee                AssetAmount
	Issuer             AccountID
	Symbol             string
	Precision          uint8
	CommonOptions      AssetOptions
	BitassetOpts       *BitassetOptions
	IsPredictionMarket bool
}

// Type implements Operation.
func (op *AssetCreate) Type() OpType { return TypeAssetCreate }

// MarshalWire implements Operation.
func (op *AssetCreate) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Issuer))
	e.WriteString(op.Symbol)
	e.WriteUint8(op.Precision)
	op.CommonOptions.MarshalWire(e)
	e.WriteOptional(op.BitassetOpts != nil)
	if op.BitassetOpts != nil {
		op.BitassetOpts.MarshalWire(e)
	}
	e.WriteBool(op.IsPredictionMarket)
	writeEmptyExtensions(e)
}

// AssetUpdate replaces an asset's common options. NewIssuer is the
// deprecated issuer-change path retained on the wire; new code uses
// AssetUpdateIssuer.
type AssetUpdate struct {
	Fee           AssetAmount
	Issuer        AccountID
	AssetToUpdate AssetID
	NewIssuer     *AccountID
	NewOptions    AssetOptions
}

// Type implements Operation.
func (op *AssetUpdate) Type() OpType { return TypeAssetUpdate }

// MarshalWire implements Operation.
func (op *AssetUpdate) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Issuer))
	e.WriteUvarint(uint64(op.AssetToUpdate))
	e.WriteOptional(op.NewIssuer != nil)
	if op.NewIssuer != nil {
		e.WriteUvarint(uint64(*op.NewIssuer))
	}
	op.NewOptions.MarshalWire(e)
	writeEmptyExtensions(e)
}

// AssetUpdateBitasset replaces a bitasset's option block.
type AssetUpdateBitasset struct {
	Fee           AssetAmount
	Issuer        AccountID
	AssetToUpdate AssetID
	NewOptions    BitassetOptions
}

// Type implements Operation.
func (op *AssetUpdateBitasset) Type() OpType { return TypeAssetUpdateBitasset }

// MarshalWire implements Operation.
func (op *AssetUpdateBitasset) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Issuer))
	e.WriteUvarint(uint64(op.AssetToUpdate))
	op.NewOptions.MarshalWire(e)
	writeEmptyExtensions(e)
}

// AssetUpdateFeedProducers replaces the set of accounts allowed to
// publish feeds for a bitasset.
type AssetUpdateFeedProducers struct {
	Fee              AssetAmount
	Issuer           AccountID
	AssetToUpdate    AssetID
	NewFeedProducers []AccountID
}

// Type implements Operation.
func (op *AssetUpdateFeedProducers) Type() OpType { return TypeAssetUpdateFeedProducers }

// MarshalWire implements Operation.
func (op *AssetUpdateFeedProducers) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Issuer))
	e.WriteUvarint(uint64(op.AssetToUpdate))
	writeAccountSet(e, op.NewFeedProducers)
	writeEmptyExtensions(e)
}

// AssetIssue mints new supply of a user-issued asset to an account.
type AssetIssue struct {
	Fee            AssetAmount
	Issuer         AccountID
	AssetToIssue   AssetAmount
	IssueToAccount AccountID
	Memo           *memo.Memo
}

// Type implements Operation.
func (op *AssetIssue) Type() OpType { return TypeAssetIssue }

// MarshalWire implements Operation.
func (op *AssetIssue) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Issuer))
	op.AssetToIssue.MarshalWire(e)
	e.WriteUvarint(uint64(op.IssueToAccount))
	writeOptionalMemo(e, op.Memo)
	writeEmptyExtensions(e)
}

// AssetReserve burns asset supply from the payer's balance.
type AssetReserve struct {
	Fee             AssetAmount
	Payer           AccountID
	AmountToReserve AssetAmount
}

// Type implements Operation.
func (op *AssetReserve) Type() OpType { return TypeAssetReserve }

// MarshalWire implements Operation.
func (op *AssetReserve) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Payer))
	op.AmountToReserve.MarshalWire(e)
	writeEmptyExtensions(e)
}

// AssetFundFeePool tops up an asset's fee pool with core asset.
type AssetFundFeePool struct {
	Fee         AssetAmount
	FromAccount AccountID
	Asset       AssetID
	Amount      int64
}

// Type implements Operation.
func (op *AssetFundFeePool) Type() OpType { return TypeAssetFundFeePool }

// MarshalWire implements Operation.
func (op *AssetFundFeePool) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.FromAccount))
	e.WriteUvarint(uint64(op.Asset))
	e.WriteInt64(op.Amount)
	writeEmptyExtensions(e)
}

// AssetSettle converts a bitasset holding into backing collateral at
// the settlement price.
type AssetSettle struct {
	Fee     AssetAmount
	Account AccountID
	Amount  AssetAmount
}

// Type implements Operation.
func (op *AssetSettle) Type() OpType { return TypeAssetSettle }

// MarshalWire implements Operation.
func (op *AssetSettle) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Account))
	op.Amount.MarshalWire(e)
	writeEmptyExtensions(e)
}

// AssetGlobalSettle settles an entire bitasset at a fixed price;
// only the issuer of a prediction market or globally-settleable asset
// may do this.
type AssetGlobalSettle struct {
	Fee           AssetAmount
	Issuer        AccountID
	AssetToSettle AssetID
	SettlePrice   Price
}

// Type implements Operation.
func (op *AssetGlobalSettle) Type() OpType { return TypeAssetGlobalSettle }

// MarshalWire implements Operation.
func (op *AssetGlobalSettle) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Issuer))
	e.WriteUvarint(uint64(op.AssetToSettle))
	op.SettlePrice.MarshalWire(e)
	writeEmptyExtensions(e)
}

// AssetPublishFeed publishes a witness price feed for a bitasset.
type AssetPublishFeed struct {
	Fee       AssetAmount
	Publisher AccountID
	Asset     AssetID
	Feed      PriceFeed
}

// Type implements Operation.
func (op *AssetPublishFeed) Type() OpType { return TypeAssetPublishFeed }

// MarshalWire implements Operation.
func (op *AssetPublishFeed) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Publisher))
	e.WriteUvarint(uint64(op.Asset))
	op.Feed.MarshalWire(e)
	writeEmptyExtensions(e)
}

// AssetClaimFees withdraws accumulated market fees belonging to the
// issuer. ClaimFromAsset, when set, claims fees denominated in a
// different asset sharing the same issuer.
type AssetClaimFees struct {
	Fee           AssetAmount
	Issuer        AccountID
	AmountToClaim AssetAmount

	ClaimFromAsset *AssetID // extension slot 0
}

// Type implements Operation.
func (op *AssetClaimFees) Type() OpType { return TypeAssetClaimFees }

// MarshalWire implements Operation.
func (op *AssetClaimFees) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Issuer))
	op.AmountToClaim.MarshalWire(e)

	var slots []extSlot
	if op.ClaimFromAsset != nil {
		id := *op.ClaimFromAsset
		slots = append(slots, extSlot{0, func(e *wire.Encoder) { e.WriteUvarint(uint64(id)) }})
	}
	writeExtSlots(e, slots)
}

// AssetClaimPool withdraws core asset from an asset's fee pool.
type AssetClaimPool struct {
	Fee           AssetAmount
	Issuer        AccountID
	Asset         AssetID
	AmountToClaim AssetAmount
}

// Type implements Operation.
func (op *AssetClaimPool) Type() OpType { return TypeAssetClaimPool }

// MarshalWire implements Operation.
func (op *AssetClaimPool) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Issuer))
	e.WriteUvarint(uint64(op.Asset))
	op.AmountToClaim.MarshalWire(e)
	writeEmptyExtensions(e)
}

// AssetUpdateIssuer transfers issuer rights over an asset.
type AssetUpdateIssuer struct {
	Fee           AssetAmount
	Issuer        AccountID
	AssetToUpdate AssetID
	NewIssuer     AccountID
}

// Type implements Operation.
func (op *AssetUpdateIssuer) Type() OpType { return TypeAssetUpdateIssuer }

// MarshalWire implements Operation.
func (op *AssetUpdateIssuer) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Issuer))
	e.WriteUvarint(uint64(op.AssetToUpdate))
	e.WriteUvarint(uint64(op.NewIssuer))
	writeEmptyExtensions(e)
}
