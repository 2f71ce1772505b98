package ops

import (
	"sort"

	"github.com/graphenix/wallet-core/pkg/wire"
)

// FeeParameters is one member of the per-operation fee static_variant
// held in a FeeSchedule. The variant tag equals the operation id the
// parameters apply to.
type FeeParameters interface {
	MarshalWire(e *wire.Encoder)
}

// FlatFee charges a fixed amount.
type FlatFee struct {
	Fee uint64
}

// MarshalWire implements FeeParameters.
func (p *FlatFee) MarshalWire(e *wire.Encoder) {
	e.WriteUint64(p.Fee)
}

// FlatFeePerKByte charges a fixed amount plus a per-kilobyte rate on
// the serialized operation size.
type FlatFeePerKByte struct {
	Fee           uint64
	PricePerKByte uint32
}

// MarshalWire implements FeeParameters.
func (p *FlatFeePerKByte) MarshalWire(e *wire.Encoder) {
	e.WriteUint64(p.Fee)
	e.WriteUint32(p.PricePerKByte)
}

// AccountCreateFee distinguishes basic from premium-name registrations.
type AccountCreateFee struct {
	BasicFee      uint64
	PremiumFee    uint64
	PricePerKByte uint32
}

// MarshalWire implements FeeParameters.
func (p *AccountCreateFee) MarshalWire(e *wire.Encoder) {
	e.WriteUint64(p.BasicFee)
	e.WriteUint64(p.PremiumFee)
	e.WriteUint32(p.PricePerKByte)
}

// AssetCreateFee prices symbols by length tier.
type AssetCreateFee struct {
	Symbol3       uint64
	Symbol4       uint64
	LongSymbol    uint64
	PricePerKByte uint32
}

// MarshalWire implements FeeParameters.
func (p *AssetCreateFee) MarshalWire(e *wire.Encoder) {
	e.WriteUint64(p.Symbol3)
	e.WriteUint64(p.Symbol4)
	e.WriteUint64(p.LongSymbol)
	e.WriteUint32(p.PricePerKByte)
}

// AccountUpgradeFee prices annual and lifetime memberships.
type AccountUpgradeFee struct {
	MembershipAnnualFee   uint64
	MembershipLifetimeFee uint64
}

// MarshalWire implements FeeParameters.
func (p *AccountUpgradeFee) MarshalWire(e *wire.Encoder) {
	e.WriteUint64(p.MembershipAnnualFee)
	e.WriteUint64(p.MembershipLifetimeFee)
}

// NoFee marks an operation as free. It serializes to nothing.
type NoFee struct{}

// MarshalWire implements FeeParameters.
func (p *NoFee) MarshalWire(e *wire.Encoder) {}

// PerOutputFee charges per created output in addition to a base fee.
type PerOutputFee struct {
	Fee            uint64
	PricePerOutput uint32
}

// MarshalWire implements FeeParameters.
func (p *PerOutputFee) MarshalWire(e *wire.Encoder) {
	e.WriteUint64(p.Fee)
	e.WriteUint32(p.PricePerOutput)
}

// HTLCCreateFee charges a base fee plus a per-day escrow rate.
type HTLCCreateFee struct {
	Fee       uint64
	FeePerDay uint64
}

// MarshalWire implements FeeParameters.
func (p *HTLCCreateFee) MarshalWire(e *wire.Encoder) {
	e.WriteUint64(p.Fee)
	e.WriteUint64(p.FeePerDay)
}

// FeeEntry binds fee parameters to the operation they price. The
// operation id doubles as the static_variant tag on the wire.
type FeeEntry struct {
	Op     OpType
	Params FeeParameters
}

// FeeSchedule is the committee-maintained fee table. Entries are kept
// as a flat_set sorted by operation id.
type FeeSchedule struct {
	Parameters []FeeEntry
	Scale      uint32
}

// MarshalWire writes the schedule with entries sorted by operation id.
func (fs *FeeSchedule) MarshalWire(e *wire.Encoder) {
	sorted := make([]FeeEntry, len(fs.Parameters))
	copy(sorted, fs.Parameters)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Op < sorted[j].Op })
	e.WriteUvarint(uint64(len(sorted)))
	for _, entry := range sorted {
		e.WriteUvarint(uint64(entry.Op))
		entry.Params.MarshalWire(e)
	}
	e.WriteUint32(fs.Scale)
}

// ChainParameters holds the global consensus knobs adjusted by the
// committee through CommitteeMemberUpdateGlobalParameters.
type ChainParameters struct {
	CurrentFees                      FeeSchedule
	BlockInterval                    uint8
	MaintenanceInterval              uint32
	MaintenanceSkipSlots             uint8
	CommitteeProposalReviewPeriod    uint32
	MaximumTransactionSize           uint32
	MaximumBlockSize                 uint32
	MaximumTimeUntilExpiration       uint32
	MaximumProposalLifetime          uint32
	MaximumAssetWhitelistAuthorities uint8
	MaximumAssetFeedPublishers       uint8
	MaximumWitnessCount              uint16
	MaximumCommitteeCount            uint16
	MaximumAuthorityMembership       uint16
	ReservePercentOfFee              uint16
	NetworkPercentOfFee              uint16
	LifetimeReferrerPercentOfFee     uint16
	CashbackVestingPeriodSeconds     uint32
	CashbackVestingThreshold         int64
	CountNonMemberVotes              bool
	AllowNonMemberWhitelists         bool
	WitnessPayPerBlock               int64
	WitnessPayVestingSeconds         uint32
	WorkerBudgetPerDay               int64
	MaxPredicateOpcode               uint16
	FeeLiquidationThreshold          int64
	AccountsPerFeeScale              uint16
	AccountFeeScaleBitshifts         uint8
	MaxAuthorityDepth                uint8
}

// MarshalWire writes the parameter block field by field.
func (cp *ChainParameters) MarshalWire(e *wire.Encoder) {
	cp.CurrentFees.MarshalWire(e)
	e.WriteUint8(cp.BlockInterval)
	e.WriteUint32(cp.MaintenanceInterval)
	e.WriteUint8(cp.MaintenanceSkipSlots)
	e.WriteUint32(cp.CommitteeProposalReviewPeriod)
	e.WriteUint32(cp.MaximumTransactionSize)
	e.WriteUint32(cp.MaximumBlockSize)
	e.WriteUint32(cp.MaximumTimeUntilExpiration)
	e.WriteUint32(cp.MaximumProposalLifetime)
	e.WriteUint8(cp.MaximumAssetWhitelistAuthorities)
	e.WriteUint8(cp.MaximumAssetFeedPublishers)
	e.WriteUint16(cp.MaximumWitnessCount)
	e.WriteUint16(cp.MaximumCommitteeCount)
	e.WriteUint16(cp.MaximumAuthorityMembership)
	e.WriteUint16(cp.ReservePercentOfFee)
	e.WriteUint16(cp.NetworkPercentOfFee)
	e.WriteUint16(cp.LifetimeReferrerPercentOfFee)
	e.WriteUint32(cp.CashbackVestingPeriodSeconds)
	e.WriteInt64(cp.CashbackVestingThreshold)
	e.WriteBool(cp.CountNonMemberVotes)
	e.WriteBool(cp.AllowNonMemberWhitelists)
	e.WriteInt64(cp.WitnessPayPerBlock)
	e.WriteUint32(cp.WitnessPayVestingSeconds)
	e.WriteInt64(cp.WorkerBudgetPerDay)
	e.WriteUint16(cp.MaxPredicateOpcode)
	e.WriteInt64(cp.FeeLiquidationThreshold)
	e.WriteUint16(cp.AccountsPerFeeScale)
	e.WriteUint8(cp.AccountFeeScaleBitshifts)
	e.WriteUint8(cp.MaxAuthorityDepth)
	writeEmptyExtensions(e)
}
