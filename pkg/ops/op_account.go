package ops

import "github.com/graphenix/wallet-core/pkg/wire"

// BuybackOptions create a buyback account that continuously converts
// its balance into a target asset on the listed markets.
type BuybackOptions struct {
	AssetToBuy       AssetID
	AssetToBuyIssuer AccountID
	Markets          []AssetID
}

// MarshalWire writes the buyback fields; the market list is a sorted
// set.
func (o BuybackOptions) MarshalWire(e *wire.Encoder) {
	e.WriteUvarint(uint64(o.AssetToBuy))
	e.WriteUvarint(uint64(o.AssetToBuyIssuer))
	writeAssetSet(e, o.Markets)
}

// AccountCreateExtensions are the index-tagged extension slots of
// account creation. Slot 0 is a historical null extension and never
// written.
type AccountCreateExtensions struct {
	OwnerSpecialAuthority  SpecialAuthority // slot 1
	ActiveSpecialAuthority SpecialAuthority // slot 2
	Buyback                *BuybackOptions  // slot 3
}

func (x AccountCreateExtensions) slots() []extSlot {
	var slots []extSlot
	if x.OwnerSpecialAuthority != nil {
		a := x.OwnerSpecialAuthority
		slots = append(slots, extSlot{1, func(e *wire.Encoder) { writeSpecialAuthority(e, a) }})
	}
	if x.ActiveSpecialAuthority != nil {
		a := x.ActiveSpecialAuthority
		slots = append(slots, extSlot{2, func(e *wire.Encoder) { writeSpecialAuthority(e, a) }})
	}
	if x.Buyback != nil {
		b := *x.Buyback
		slots = append(slots, extSlot{3, func(e *wire.Encoder) { b.MarshalWire(e) }})
	}
	return slots
}

// AccountCreate registers a new account under a registrar.
type AccountCreate struct {
	Fee             AssetAmount
	Registrar       AccountID
	Referrer        AccountID
	ReferrerPercent uint16
	Name            string
	Owner           Authority
	Active          Authority
	Options         AccountOptions
	Extensions      AccountCreateExtensions
}

// Type implements Operation.
func (op *AccountCreate) Type() OpType { return TypeAccountCreate }

// MarshalWire implements Operation.
func (op *AccountCreate) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Registrar))
	e.WriteUvarint(uint64(op.Referrer))
	e.WriteUint16(op.ReferrerPercent)
	e.WriteString(op.Name)
	op.Owner.MarshalWire(e)
	op.Active.MarshalWire(e)
	op.Options.MarshalWire(e)
	writeExtSlots(e, op.Extensions.slots())
}

// AccountUpdateExtensions are the index-tagged extension slots of an
// account update.
type AccountUpdateExtensions struct {
	OwnerSpecialAuthority  SpecialAuthority // slot 1
	ActiveSpecialAuthority SpecialAuthority // slot 2
}

func (x AccountUpdateExtensions) slots() []extSlot {
	var slots []extSlot
	if x.OwnerSpecialAuthority != nil {
		a := x.OwnerSpecialAuthority
		slots = append(slots, extSlot{1, func(e *wire.Encoder) { writeSpecialAuthority(e, a) }})
	}
	if x.ActiveSpecialAuthority != nil {
		a := x.ActiveSpecialAuthority
		slots = append(slots, extSlot{2, func(e *wire.Encoder) { writeSpecialAuthority(e, a) }})
	}
	return slots
}

// AccountUpdate replaces an account's authorities or options.
type AccountUpdate struct {
	Fee        AssetAmount
	Account    AccountID
	Owner      *Authority
	Active     *Authority
	NewOptions *AccountOptions
	Extensions AccountUpdateExtensions
}

// Type implements Operation.
func (op *AccountUpdate) Type() OpType { return TypeAccountUpdate }

// MarshalWire implements Operation.
func (op *AccountUpdate) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Account))
	e.WriteOptional(op.Owner != nil)
	if op.Owner != nil {
		op.Owner.MarshalWire(e)
	}
	e.WriteOptional(op.Active != nil)
	if op.Active != nil {
		op.Active.MarshalWire(e)
	}
	e.WriteOptional(op.NewOptions != nil)
	if op.NewOptions != nil {
		op.NewOptions.MarshalWire(e)
	}
	writeExtSlots(e, op.Extensions.slots())
}

// Whitelist listing states. These are flag bits: an account can be on
// both lists.
const (
	NoListing           uint8 = 0
	WhiteListed         uint8 = 1
	BlackListed         uint8 = 2
	WhiteAndBlackListed uint8 = WhiteListed | BlackListed
)

// AccountWhitelist adds or removes an account from the authorizing
// account's white/black lists.
type AccountWhitelist struct {
	Fee                AssetAmount
	AuthorizingAccount AccountID
	AccountToList      AccountID
	NewListing         uint8
}

// Type implements Operation.
func (op *AccountWhitelist) Type() OpType { return TypeAccountWhitelist }

// MarshalWire implements Operation.
func (op *AccountWhitelist) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.AuthorizingAccount))
	e.WriteUvarint(uint64(op.AccountToList))
	e.WriteUint8(op.NewListing)
	writeEmptyExtensions(e)
}

// AccountUpgrade buys a membership upgrade for an account.
type AccountUpgrade struct {
	Fee                     AssetAmount
	AccountToUpgrade        AccountID
	UpgradeToLifetimeMember bool
}

// Type implements Operation.
func (op *AccountUpgrade) Type() OpType { return TypeAccountUpgrade }

// MarshalWire implements Operation.
func (op *AccountUpgrade) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.AccountToUpgrade))
	e.WriteBool(op.UpgradeToLifetimeMember)
	writeEmptyExtensions(e)
}

// AccountTransfer hands an account over to a new owner.
type AccountTransfer struct {
	Fee      AssetAmount
	Account  AccountID
	NewOwner AccountID
}

// Type implements Operation.
func (op *AccountTransfer) Type() OpType { return TypeAccountTransfer }

// MarshalWire implements Operation.
func (op *AccountTransfer) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Account))
	e.WriteUvarint(uint64(op.NewOwner))
	writeEmptyExtensions(e)
}
