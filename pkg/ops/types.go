package ops

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/graphenix/wallet-core/pkg/keys"
	"github.com/graphenix/wallet-core/pkg/wire"
)

// TimePointSec is a chain timestamp: whole UTC seconds in a u32.
type TimePointSec uint32

// NewTimePointSec truncates t to whole UTC seconds.
func NewTimePointSec(t time.Time) TimePointSec {
	return TimePointSec(t.UTC().Unix())
}

// Time converts back to a time.Time in UTC.
func (t TimePointSec) Time() time.Time {
	return time.Unix(int64(t), 0).UTC()
}

// MarshalWire writes the timestamp as a little-endian u32.
func (t TimePointSec) MarshalWire(e *wire.Encoder) {
	e.WriteUint32(uint32(t))
}

// AssetAmount pairs a signed 64-bit amount with the asset it counts.
// On the wire: s64 amount, varint asset instance.
type AssetAmount struct {
	Amount int64
	Asset  AssetID
}

// MarshalWire writes the amount and asset instance.
func (a AssetAmount) MarshalWire(e *wire.Encoder) {
	e.WriteInt64(a.Amount)
	e.WriteUvarint(uint64(a.Asset))
}

// Price is an exchange rate between two assets.
type Price struct {
	Base  AssetAmount
	Quote AssetAmount
}

// MarshalWire writes base then quote.
func (p Price) MarshalWire(e *wire.Encoder) {
	p.Base.MarshalWire(e)
	p.Quote.MarshalWire(e)
}

// PriceFeed is a witness-published price bundle for a bitasset.
type PriceFeed struct {
	SettlementPrice            Price
	MaintenanceCollateralRatio uint16
	MaximumShortSqueezeRatio   uint16
	CoreExchangeRate           Price
}

// MarshalWire writes the feed fields in declaration order.
func (f PriceFeed) MarshalWire(e *wire.Encoder) {
	f.SettlementPrice.MarshalWire(e)
	e.WriteUint16(f.MaintenanceCollateralRatio)
	e.WriteUint16(f.MaximumShortSqueezeRatio)
	f.CoreExchangeRate.MarshalWire(e)
}

// VoteID identifies a governance vote slot: the low byte is the vote
// type (0 committee, 1 witness, 2 worker), the upper 24 bits the
// instance. Wire form is the packed u32; text form is "type:instance".
type VoteID uint32

// NewVoteID packs a vote type and instance.
func NewVoteID(voteType, instance uint32) VoteID {
	return VoteID(voteType&0xff | instance<<8)
}

// ParseVoteID parses "type:instance".
func ParseVoteID(s string) (VoteID, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("ops: invalid vote id %q", s)
	}
	voteType, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil {
		return 0, fmt.Errorf("ops: invalid vote id %q", s)
	}
	instance, err := strconv.ParseUint(parts[1], 10, 24)
	if err != nil {
		return 0, fmt.Errorf("ops: invalid vote id %q", s)
	}
	return NewVoteID(uint32(voteType), uint32(instance)), nil
}

// String renders "type:instance".
func (v VoteID) String() string {
	return fmt.Sprintf("%d:%d", uint32(v)&0xff, uint32(v)>>8)
}

// AccountWeight is one entry of an authority's account map.
type AccountWeight struct {
	Account AccountID
	Weight  uint16
}

// KeyWeight is one entry of an authority's key map.
type KeyWeight struct {
	Key    *keys.PublicKey
	Weight uint16
}

// AddressWeight is one entry of an authority's address map.
type AddressWeight struct {
	Address keys.Address
	Weight  uint16
}

// Authority is a weighted multi-signature requirement: signers reach
// the threshold by combining account, key, and address weights. Each
// map is serialized sorted by key, so the input order never affects
// the signed bytes.
type Authority struct {
	WeightThreshold uint32
	AccountAuths    []AccountWeight
	KeyAuths        []KeyWeight
	AddressAuths    []AddressWeight
}

// MarshalWire writes threshold and the three sorted weight maps.
func (a Authority) MarshalWire(e *wire.Encoder) {
	e.WriteUint32(a.WeightThreshold)

	accounts := append([]AccountWeight(nil), a.AccountAuths...)
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Account < accounts[j].Account })
	e.WriteUvarint(uint64(len(accounts)))
	for _, aw := range accounts {
		e.WriteUvarint(uint64(aw.Account))
		e.WriteUint16(aw.Weight)
	}

	pubs := append([]KeyWeight(nil), a.KeyAuths...)
	sort.Slice(pubs, func(i, j int) bool { return pubs[i].Key.Less(pubs[j].Key) })
	e.WriteUvarint(uint64(len(pubs)))
	for _, kw := range pubs {
		e.WriteRaw(kw.Key.Bytes())
		e.WriteUint16(kw.Weight)
	}

	addrs := append([]AddressWeight(nil), a.AddressAuths...)
	sort.Slice(addrs, func(i, j int) bool { return addrs[i].Address.Less(addrs[j].Address) })
	e.WriteUvarint(uint64(len(addrs)))
	for _, aw := range addrs {
		e.WriteRaw(aw.Address[:])
		e.WriteUint16(aw.Weight)
	}
}

// AccountOptions carries an account's memo key and voting choices.
type AccountOptions struct {
	MemoKey       *keys.PublicKey
	VotingAccount AccountID
	NumWitness    uint16
	NumCommittee  uint16
	Votes         []VoteID
}

// MarshalWire writes the options; the vote set is sorted by raw value.
func (o AccountOptions) MarshalWire(e *wire.Encoder) {
	e.WriteRaw(o.MemoKey.Bytes())
	e.WriteUvarint(uint64(o.VotingAccount))
	e.WriteUint16(o.NumWitness)
	e.WriteUint16(o.NumCommittee)

	votes := append([]VoteID(nil), o.Votes...)
	sort.Slice(votes, func(i, j int) bool { return votes[i] < votes[j] })
	e.WriteUvarint(uint64(len(votes)))
	for _, v := range votes {
		e.WriteUint32(uint32(v))
	}

	writeEmptyExtensions(e)
}

// AssetOptions is the common option block of every asset.
type AssetOptions struct {
	MaxSupply            int64
	MarketFeePercent     uint16
	MaxMarketFee         int64
	IssuerPermissions    uint16
	Flags                uint16
	CoreExchangeRate     Price
	WhitelistAuthorities []AccountID
	BlacklistAuthorities []AccountID
	WhitelistMarkets     []AssetID
	BlacklistMarkets     []AssetID
	Description          string
	Extensions           AssetOptionsExtensions
}

// AssetOptionsExtensions are the index-tagged optional extension slots
// of asset options.
type AssetOptionsExtensions struct {
	RewardPercent             *uint16     // slot 0
	WhitelistMarketFeeSharing []AccountID // slot 1, nil means absent
	TakerFeePercent           *uint16     // slot 2
}

// MarshalWire writes the option block in field order; the four
// authority/market lists are sorted sets.
func (o AssetOptions) MarshalWire(e *wire.Encoder) {
	e.WriteInt64(o.MaxSupply)
	e.WriteUint16(o.MarketFeePercent)
	e.WriteInt64(o.MaxMarketFee)
	e.WriteUint16(o.IssuerPermissions)
	e.WriteUint16(o.Flags)
	o.CoreExchangeRate.MarshalWire(e)
	writeAccountSet(e, o.WhitelistAuthorities)
	writeAccountSet(e, o.BlacklistAuthorities)
	writeAssetSet(e, o.WhitelistMarkets)
	writeAssetSet(e, o.BlacklistMarkets)
	e.WriteString(o.Description)

	var slots []extSlot
	if o.Extensions.RewardPercent != nil {
		v := *o.Extensions.RewardPercent
		slots = append(slots, extSlot{0, func(e *wire.Encoder) { e.WriteUint16(v) }})
	}
	if o.Extensions.WhitelistMarketFeeSharing != nil {
		set := o.Extensions.WhitelistMarketFeeSharing
		slots = append(slots, extSlot{1, func(e *wire.Encoder) { writeAccountSet(e, set) }})
	}
	if o.Extensions.TakerFeePercent != nil {
		v := *o.Extensions.TakerFeePercent
		slots = append(slots, extSlot{2, func(e *wire.Encoder) { e.WriteUint16(v) }})
	}
	writeExtSlots(e, slots)
}

// BitassetOptions configures a market-pegged asset.
type BitassetOptions struct {
	FeedLifetimeSec              uint32
	MinimumFeeds                 uint8
	ForceSettlementDelaySec      uint32
	ForceSettlementOffsetPercent uint16
	MaximumForceSettlementVolume uint16
	ShortBackingAsset            AssetID
	Extensions                   BitassetOptionsExtensions
}

// BitassetOptionsExtensions are the index-tagged optional extension
// slots of bitasset options.
type BitassetOptionsExtensions struct {
	InitialCollateralRatio     *uint16 // slot 0
	MaintenanceCollateralRatio *uint16 // slot 1
	MaximumShortSqueezeRatio   *uint16 // slot 2
	MarginCallFeeRatio         *uint16 // slot 3
	ForceSettleFeePercent      *uint16 // slot 4
}

// MarshalWire writes the bitasset option block in field order.
func (o BitassetOptions) MarshalWire(e *wire.Encoder) {
	e.WriteUint32(o.FeedLifetimeSec)
	e.WriteUint8(o.MinimumFeeds)
	e.WriteUint32(o.ForceSettlementDelaySec)
	e.WriteUint16(o.ForceSettlementOffsetPercent)
	e.WriteUint16(o.MaximumForceSettlementVolume)
	e.WriteUvarint(uint64(o.ShortBackingAsset))

	var slots []extSlot
	for i, p := range []*uint16{
		o.Extensions.InitialCollateralRatio,
		o.Extensions.MaintenanceCollateralRatio,
		o.Extensions.MaximumShortSqueezeRatio,
		o.Extensions.MarginCallFeeRatio,
		o.Extensions.ForceSettleFeePercent,
	} {
		if p != nil {
			v := *p
			slots = append(slots, extSlot{uint64(i), func(e *wire.Encoder) { e.WriteUint16(v) }})
		}
	}
	writeExtSlots(e, slots)
}

// SpecialAuthority is the static_variant granting an account's
// authority to a computed signer set.
type SpecialAuthority interface {
	specialAuthorityTag() uint64
	MarshalWire(e *wire.Encoder)
}

// NoSpecialAuthority is variant 0: no special authority.
type NoSpecialAuthority struct{}

func (NoSpecialAuthority) specialAuthorityTag() uint64 { return 0 }
func (NoSpecialAuthority) MarshalWire(e *wire.Encoder) {}

// TopHoldersSpecialAuthority is variant 1: authority held by the top
// holders of an asset.
type TopHoldersSpecialAuthority struct {
	Asset         AssetID
	NumTopHolders uint8
}

func (TopHoldersSpecialAuthority) specialAuthorityTag() uint64 { return 1 }

func (a TopHoldersSpecialAuthority) MarshalWire(e *wire.Encoder) {
	e.WriteUvarint(uint64(a.Asset))
	e.WriteUint8(a.NumTopHolders)
}

// writeSpecialAuthority frames the variant tag and body.
func writeSpecialAuthority(e *wire.Encoder, a SpecialAuthority) {
	e.WriteUvarint(a.specialAuthorityTag())
	a.MarshalWire(e)
}

// extSlot is one present slot of an index-tagged extension block.
type extSlot struct {
	index uint64
	write func(e *wire.Encoder)
}

// writeExtSlots frames index-tagged extensions: varint count of
// present slots, then varint index and value per slot, in index order.
func writeExtSlots(e *wire.Encoder, slots []extSlot) {
	sort.Slice(slots, func(i, j int) bool { return slots[i].index < slots[j].index })
	e.WriteUvarint(uint64(len(slots)))
	for _, s := range slots {
		e.WriteUvarint(s.index)
		s.write(e)
	}
}

// writeEmptyExtensions frames the default empty extensions set.
func writeEmptyExtensions(e *wire.Encoder) {
	e.WriteUvarint(0)
}

// writeAccountSet writes a sorted flat_set of account instances.
func writeAccountSet(e *wire.Encoder, set []AccountID) {
	sorted := append([]AccountID(nil), set...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	e.WriteUvarint(uint64(len(sorted)))
	for _, id := range sorted {
		e.WriteUvarint(uint64(id))
	}
}

// writeAssetSet writes a sorted flat_set of asset instances.
func writeAssetSet(e *wire.Encoder, set []AssetID) {
	sorted := append([]AssetID(nil), set...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	e.WriteUvarint(uint64(len(sorted)))
	for _, id := range sorted {
		e.WriteUvarint(uint64(id))
	}
}

// writeKeySet writes a sorted flat_set of public keys.
func writeKeySet(e *wire.Encoder, set []*keys.PublicKey) {
	sorted := append([]*keys.PublicKey(nil), set...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })
	e.WriteUvarint(uint64(len(sorted)))
	for _, k := range sorted {
		e.WriteRaw(k.Bytes())
	}
}
