package ops

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Object ids name ledger objects as "space.type.instance". Space and
// type are implied by field position on the wire: only the instance
// number is transmitted, as a varint.

// ErrInvalidObjectID is returned when an object id string is malformed
// or names the wrong space or type for the field being parsed.
var ErrInvalidObjectID = errors.New("ops: invalid object id")

// protocolSpace is the id space of protocol objects.
const protocolSpace = 1

// Protocol object type numbers within space 1.
const (
	accountType            = 2
	assetType              = 3
	committeeMemberType    = 5
	witnessType            = 6
	limitOrderType         = 7
	callOrderType          = 8
	proposalType           = 10
	withdrawPermissionType = 12
	vestingBalanceType     = 13
	workerType             = 14
	balanceType            = 15
	htlcType               = 16
	customAuthorityType    = 17
	ticketType             = 18
	liquidityPoolType      = 19
	sametFundType          = 20
	creditOfferType        = 21
	creditDealType         = 22
)

// formatID renders "space.type.instance".
func formatID(typ int, instance uint64) string {
	return fmt.Sprintf("%d.%d.%d", protocolSpace, typ, instance)
}

// parseID extracts the instance from "space.type.instance", requiring
// the expected space and type.
func parseID(s string, typ int) (uint64, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidObjectID, s)
	}
	space, err := strconv.Atoi(parts[0])
	if err != nil || space != protocolSpace {
		return 0, fmt.Errorf("%w: %q", ErrInvalidObjectID, s)
	}
	gotType, err := strconv.Atoi(parts[1])
	if err != nil || gotType != typ {
		return 0, fmt.Errorf("%w: %q", ErrInvalidObjectID, s)
	}
	instance, err := strconv.ParseUint(parts[2], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidObjectID, s)
	}
	return instance, nil
}

// AccountID is the instance number of a "1.2.N" account object.
type AccountID uint64

func (id AccountID) String() string { return formatID(accountType, uint64(id)) }

// ParseAccountID parses "1.2.N".
func ParseAccountID(s string) (AccountID, error) {
	n, err := parseID(s, accountType)
	return AccountID(n), err
}

// AssetID is the instance number of a "1.3.N" asset object.
type AssetID uint64

func (id AssetID) String() string { return formatID(assetType, uint64(id)) }

// ParseAssetID parses "1.3.N".
func ParseAssetID(s string) (AssetID, error) {
	n, err := parseID(s, assetType)
	return AssetID(n), err
}

// CommitteeMemberID is the instance number of a "1.5.N" object.
type CommitteeMemberID uint64

func (id CommitteeMemberID) String() string { return formatID(committeeMemberType, uint64(id)) }

// WitnessID is the instance number of a "1.6.N" object.
type WitnessID uint64

func (id WitnessID) String() string { return formatID(witnessType, uint64(id)) }

// LimitOrderID is the instance number of a "1.7.N" object.
type LimitOrderID uint64

func (id LimitOrderID) String() string { return formatID(limitOrderType, uint64(id)) }

// CallOrderID is the instance number of a "1.8.N" object.
type CallOrderID uint64

func (id CallOrderID) String() string { return formatID(callOrderType, uint64(id)) }

// ProposalID is the instance number of a "1.10.N" object.
type ProposalID uint64

func (id ProposalID) String() string { return formatID(proposalType, uint64(id)) }

// WithdrawPermissionID is the instance number of a "1.12.N" object.
type WithdrawPermissionID uint64

func (id WithdrawPermissionID) String() string { return formatID(withdrawPermissionType, uint64(id)) }

// VestingBalanceID is the instance number of a "1.13.N" object.
type VestingBalanceID uint64

func (id VestingBalanceID) String() string { return formatID(vestingBalanceType, uint64(id)) }

// WorkerID is the instance number of a "1.14.N" object.
type WorkerID uint64

func (id WorkerID) String() string { return formatID(workerType, uint64(id)) }

// BalanceID is the instance number of a "1.15.N" object.
type BalanceID uint64

func (id BalanceID) String() string { return formatID(balanceType, uint64(id)) }

// HTLCID is the instance number of a "1.16.N" object.
type HTLCID uint64

func (id HTLCID) String() string { return formatID(htlcType, uint64(id)) }

// CustomAuthorityID is the instance number of a "1.17.N" object.
type CustomAuthorityID uint64

func (id CustomAuthorityID) String() string { return formatID(customAuthorityType, uint64(id)) }

// TicketID is the instance number of a "1.18.N" object.
type TicketID uint64

func (id TicketID) String() string { return formatID(ticketType, uint64(id)) }

// LiquidityPoolID is the instance number of a "1.19.N" object.
type LiquidityPoolID uint64

func (id LiquidityPoolID) String() string { return formatID(liquidityPoolType, uint64(id)) }

// SametFundID is the instance number of a "1.20.N" object.
type SametFundID uint64

func (id SametFundID) String() string { return formatID(sametFundType, uint64(id)) }

// CreditOfferID is the instance number of a "1.21.N" object.
type CreditOfferID uint64

func (id CreditOfferID) String() string { return formatID(creditOfferType, uint64(id)) }

// CreditDealID is the instance number of a "1.22.N" object.
type CreditDealID uint64

func (id CreditDealID) String() string { return formatID(creditDealType, uint64(id)) }
