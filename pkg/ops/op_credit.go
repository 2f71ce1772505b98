package ops

import (
	"sort"

	"github.com/graphenix/wallet-core/pkg/wire"
)

// CollateralEntry pairs an acceptable collateral asset with its
// required price against the offered asset.
type CollateralEntry struct {
	Asset AssetID
	Price Price
}

// BorrowerEntry whitelists a borrower with a per-account borrow cap.
type BorrowerEntry struct {
	Account AccountID
	Maximum int64
}

func writeCollateralMap(e *wire.Encoder, entries []CollateralEntry) {
	sorted := make([]CollateralEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Asset < sorted[j].Asset })
	e.WriteUvarint(uint64(len(sorted)))
	for _, entry := range sorted {
		e.WriteUvarint(uint64(entry.Asset))
		entry.Price.MarshalWire(e)
	}
}

func writeBorrowerMap(e *wire.Encoder, entries []BorrowerEntry) {
	sorted := make([]BorrowerEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Account < sorted[j].Account })
	e.WriteUvarint(uint64(len(sorted)))
	for _, entry := range sorted {
		e.WriteUvarint(uint64(entry.Account))
		e.WriteInt64(entry.Maximum)
	}
}

// CreditOfferCreate publishes a lending offer with acceptable
// collateral types and optional borrower whitelist.
type CreditOfferCreate struct {
	Fee                  AssetAmount
	OwnerAccount         AccountID
	AssetType            AssetID
	Balance              int64
	FeeRate              uint32
	MaxDurationSeconds   uint32
	MinDealAmount        int64
	Enabled              bool
	AutoDisableTime      TimePointSec
	AcceptableCollateral []CollateralEntry
	AcceptableBorrowers  []BorrowerEntry
}

// Type implements Operation.
func (op *CreditOfferCreate) Type() OpType { return TypeCreditOfferCreate }

// MarshalWire implements Operation.
func (op *CreditOfferCreate) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.OwnerAccount))
	e.WriteUvarint(uint64(op.AssetType))
	e.WriteInt64(op.Balance)
	e.WriteUint32(op.FeeRate)
	e.WriteUint32(op.MaxDurationSeconds)
	e.WriteInt64(op.MinDealAmount)
	e.WriteBool(op.Enabled)
	op.AutoDisableTime.MarshalWire(e)
	writeCollateralMap(e, op.AcceptableCollateral)
	writeBorrowerMap(e, op.AcceptableBorrowers)
	writeEmptyExtensions(e)
}

// CreditOfferDelete withdraws an offer and reclaims its balance.
type CreditOfferDelete struct {
	Fee          AssetAmount
	OwnerAccount AccountID
	OfferID      CreditOfferID
}

// Type implements Operation.
func (op *CreditOfferDelete) Type() OpType { return TypeCreditOfferDelete }

// MarshalWire implements Operation.
func (op *CreditOfferDelete) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.OwnerAccount))
	e.WriteUvarint(uint64(op.OfferID))
	writeEmptyExtensions(e)
}

// CreditOfferUpdate amends any subset of an offer's terms.
type CreditOfferUpdate struct {
	Fee                  AssetAmount
	OwnerAccount         AccountID
	OfferID              CreditOfferID
	DeltaAmount          *AssetAmount
	FeeRate              *uint32
	MaxDurationSeconds   *uint32
	MinDealAmount        *int64
	Enabled              *bool
	AutoDisableTime      *TimePointSec
	AcceptableCollateral []CollateralEntry
	AcceptableBorrowers  []BorrowerEntry
	UpdateBorrowers      bool
}

// Type implements Operation.
func (op *CreditOfferUpdate) Type() OpType { return TypeCreditOfferUpdate }

// MarshalWire implements Operation.
func (op *CreditOfferUpdate) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.OwnerAccount))
	e.WriteUvarint(uint64(op.OfferID))
	e.WriteOptional(op.DeltaAmount != nil)
	if op.DeltaAmount != nil {
		op.DeltaAmount.MarshalWire(e)
	}
	e.WriteOptional(op.FeeRate != nil)
	if op.FeeRate != nil {
		e.WriteUint32(*op.FeeRate)
	}
	e.WriteOptional(op.MaxDurationSeconds != nil)
	if op.MaxDurationSeconds != nil {
		e.WriteUint32(*op.MaxDurationSeconds)
	}
	e.WriteOptional(op.MinDealAmount != nil)
	if op.MinDealAmount != nil {
		e.WriteInt64(*op.MinDealAmount)
	}
	e.WriteOptional(op.Enabled != nil)
	if op.Enabled != nil {
		e.WriteBool(*op.Enabled)
	}
	e.WriteOptional(op.AutoDisableTime != nil)
	if op.AutoDisableTime != nil {
		op.AutoDisableTime.MarshalWire(e)
	}
	e.WriteOptional(op.AcceptableCollateral != nil)
	if op.AcceptableCollateral != nil {
		writeCollateralMap(e, op.AcceptableCollateral)
	}
	e.WriteOptional(op.UpdateBorrowers)
	if op.UpdateBorrowers {
		writeBorrowerMap(e, op.AcceptableBorrowers)
	}
	writeEmptyExtensions(e)
}

// CreditOfferAccept borrows from an offer against posted collateral.
type CreditOfferAccept struct {
	Fee                AssetAmount
	Borrower           AccountID
	OfferID            CreditOfferID
	BorrowAmount       AssetAmount
	Collateral         AssetAmount
	MaxFeeRate         uint32
	MinDurationSeconds uint32
}

// Type implements Operation.
func (op *CreditOfferAccept) Type() OpType { return TypeCreditOfferAccept }

// MarshalWire implements Operation.
func (op *CreditOfferAccept) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Borrower))
	e.WriteUvarint(uint64(op.OfferID))
	op.BorrowAmount.MarshalWire(e)
	op.Collateral.MarshalWire(e)
	e.WriteUint32(op.MaxFeeRate)
	e.WriteUint32(op.MinDurationSeconds)
	writeEmptyExtensions(e)
}

// CreditDealRepay settles part or all of a credit deal plus fee.
type CreditDealRepay struct {
	Fee         AssetAmount
	Account     AccountID
	DealID      CreditDealID
	RepayAmount AssetAmount
	CreditFee   AssetAmount
}

// Type implements Operation.
func (op *CreditDealRepay) Type() OpType { return TypeCreditDealRepay }

// MarshalWire implements Operation.
func (op *CreditDealRepay) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Account))
	e.WriteUvarint(uint64(op.DealID))
	op.RepayAmount.MarshalWire(e)
	op.CreditFee.MarshalWire(e)
	writeEmptyExtensions(e)
}

// Auto-repayment modes for CreditDealUpdate.
const (
	AutoRepayDisabled       uint8 = 0
	AutoRepayOnlyFullAmount uint8 = 1
	AutoRepayAllowPartial   uint8 = 2
)

// CreditDealUpdate changes the auto-repayment mode of a deal.
type CreditDealUpdate struct {
	Fee       AssetAmount
	Account   AccountID
	DealID    CreditDealID
	AutoRepay uint8
}

// Type implements Operation.
func (op *CreditDealUpdate) Type() OpType { return TypeCreditDealUpdate }

// MarshalWire implements Operation.
func (op *CreditDealUpdate) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Account))
	e.WriteUvarint(uint64(op.DealID))
	e.WriteUint8(op.AutoRepay)
}
