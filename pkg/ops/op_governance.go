package ops

import (
	"github.com/graphenix/wallet-core/pkg/keys"
	"github.com/graphenix/wallet-core/pkg/memo"
	"github.com/graphenix/wallet-core/pkg/wire"
)

// WitnessCreate registers a block-producing witness for an account.
type WitnessCreate struct {
	Fee             AssetAmount
	WitnessAccount  AccountID
	URL             string
	BlockSigningKey *keys.PublicKey
}

// Type implements Operation.
func (op *WitnessCreate) Type() OpType { return TypeWitnessCreate }

// MarshalWire implements Operation.
func (op *WitnessCreate) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.WitnessAccount))
	e.WriteString(op.URL)
	e.WriteRaw(op.BlockSigningKey.Bytes())
}

// WitnessUpdate changes a witness's URL or signing key.
type WitnessUpdate struct {
	Fee            AssetAmount
	Witness        WitnessID
	WitnessAccount AccountID
	NewURL         *string
	NewSigningKey  *keys.PublicKey
}

// Type implements Operation.
func (op *WitnessUpdate) Type() OpType { return TypeWitnessUpdate }

// MarshalWire implements Operation.
func (op *WitnessUpdate) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Witness))
	e.WriteUvarint(uint64(op.WitnessAccount))
	e.WriteOptional(op.NewURL != nil)
	if op.NewURL != nil {
		e.WriteString(*op.NewURL)
	}
	e.WriteOptional(op.NewSigningKey != nil)
	if op.NewSigningKey != nil {
		e.WriteRaw(op.NewSigningKey.Bytes())
	}
}

// OperationWrapper frames a nested operation inside a proposal.
type OperationWrapper struct {
	Op Operation
}

// MarshalWire writes the wrapped operation with its type tag.
func (w OperationWrapper) MarshalWire(e *wire.Encoder) {
	Marshal(e, w.Op)
}

// ProposalCreate submits operations for multi-party approval; they
// execute once enough authorities approve before expiration.
type ProposalCreate struct {
	Fee                 AssetAmount
	FeePayingAccount    AccountID
	ExpirationTime      TimePointSec
	ProposedOps         []OperationWrapper
	ReviewPeriodSeconds *uint32
}

// Type implements Operation.
func (op *ProposalCreate) Type() OpType { return TypeProposalCreate }

// MarshalWire implements Operation.
func (op *ProposalCreate) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.FeePayingAccount))
	op.ExpirationTime.MarshalWire(e)
	e.WriteUvarint(uint64(len(op.ProposedOps)))
	for _, w := range op.ProposedOps {
		w.MarshalWire(e)
	}
	e.WriteOptional(op.ReviewPeriodSeconds != nil)
	if op.ReviewPeriodSeconds != nil {
		e.WriteUint32(*op.ReviewPeriodSeconds)
	}
	writeEmptyExtensions(e)
}

// ProposalUpdate adds or removes approvals on a pending proposal.
type ProposalUpdate struct {
	Fee                     AssetAmount
	FeePayingAccount        AccountID
	Proposal                ProposalID
	ActiveApprovalsToAdd    []AccountID
	ActiveApprovalsToRemove []AccountID
	OwnerApprovalsToAdd     []AccountID
	OwnerApprovalsToRemove  []AccountID
	KeyApprovalsToAdd       []*keys.PublicKey
	KeyApprovalsToRemove    []*keys.PublicKey
}

// Type implements Operation.
func (op *ProposalUpdate) Type() OpType { return TypeProposalUpdate }

// MarshalWire implements Operation.
func (op *ProposalUpdate) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.FeePayingAccount))
	e.WriteUvarint(uint64(op.Proposal))
	writeAccountSet(e, op.ActiveApprovalsToAdd)
	writeAccountSet(e, op.ActiveApprovalsToRemove)
	writeAccountSet(e, op.OwnerApprovalsToAdd)
	writeAccountSet(e, op.OwnerApprovalsToRemove)
	writeKeySet(e, op.KeyApprovalsToAdd)
	writeKeySet(e, op.KeyApprovalsToRemove)
	writeEmptyExtensions(e)
}

// ProposalDelete vetoes a pending proposal.
type ProposalDelete struct {
	Fee                 AssetAmount
	FeePayingAccount    AccountID
	UsingOwnerAuthority bool
	Proposal            ProposalID
}

// Type implements Operation.
func (op *ProposalDelete) Type() OpType { return TypeProposalDelete }

// MarshalWire implements Operation.
func (op *ProposalDelete) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.FeePayingAccount))
	e.WriteBool(op.UsingOwnerAuthority)
	e.WriteUvarint(uint64(op.Proposal))
	writeEmptyExtensions(e)
}

// WithdrawPermissionCreate grants another account a recurring
// withdrawal allowance.
type WithdrawPermissionCreate struct {
	Fee                    AssetAmount
	WithdrawFromAccount    AccountID
	AuthorizedAccount      AccountID
	WithdrawalLimit        AssetAmount
	WithdrawalPeriodSec    uint32
	PeriodsUntilExpiration uint32
	PeriodStartTime        TimePointSec
}

// Type implements Operation.
func (op *WithdrawPermissionCreate) Type() OpType { return TypeWithdrawPermissionCreate }

// MarshalWire implements Operation.
func (op *WithdrawPermissionCreate) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.WithdrawFromAccount))
	e.WriteUvarint(uint64(op.AuthorizedAccount))
	op.WithdrawalLimit.MarshalWire(e)
	e.WriteUint32(op.WithdrawalPeriodSec)
	e.WriteUint32(op.PeriodsUntilExpiration)
	op.PeriodStartTime.MarshalWire(e)
}

// WithdrawPermissionUpdate modifies an existing withdrawal allowance.
type WithdrawPermissionUpdate struct {
	Fee                    AssetAmount
	WithdrawFromAccount    AccountID
	AuthorizedAccount      AccountID
	PermissionToUpdate     WithdrawPermissionID
	WithdrawalLimit        AssetAmount
	WithdrawalPeriodSec    uint32
	PeriodStartTime        TimePointSec
	PeriodsUntilExpiration uint32
}

// Type implements Operation.
func (op *WithdrawPermissionUpdate) Type() OpType { return TypeWithdrawPermissionUpdate }

// MarshalWire implements Operation.
func (op *WithdrawPermissionUpdate) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.WithdrawFromAccount))
	e.WriteUvarint(uint64(op.AuthorizedAccount))
	e.WriteUvarint(uint64(op.PermissionToUpdate))
	op.WithdrawalLimit.MarshalWire(e)
	e.WriteUint32(op.WithdrawalPeriodSec)
	op.PeriodStartTime.MarshalWire(e)
	e.WriteUint32(op.PeriodsUntilExpiration)
}

// WithdrawPermissionClaim exercises a withdrawal allowance.
type WithdrawPermissionClaim struct {
	Fee                 AssetAmount
	WithdrawPermission  WithdrawPermissionID
	WithdrawFromAccount AccountID
	WithdrawToAccount   AccountID
	AmountToWithdraw    AssetAmount
	Memo                *memo.Memo
}

// Type implements Operation.
func (op *WithdrawPermissionClaim) Type() OpType { return TypeWithdrawPermissionClaim }

// MarshalWire implements Operation.
func (op *WithdrawPermissionClaim) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.WithdrawPermission))
	e.WriteUvarint(uint64(op.WithdrawFromAccount))
	e.WriteUvarint(uint64(op.WithdrawToAccount))
	op.AmountToWithdraw.MarshalWire(e)
	writeOptionalMemo(e, op.Memo)
}

// WithdrawPermissionDelete revokes a withdrawal allowance.
type WithdrawPermissionDelete struct {
	Fee                  AssetAmount
	WithdrawFromAccount  AccountID
	AuthorizedAccount    AccountID
	WithdrawalPermission WithdrawPermissionID
}

// Type implements Operation.
func (op *WithdrawPermissionDelete) Type() OpType { return TypeWithdrawPermissionDelete }

// MarshalWire implements Operation.
func (op *WithdrawPermissionDelete) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.WithdrawFromAccount))
	e.WriteUvarint(uint64(op.AuthorizedAccount))
	e.WriteUvarint(uint64(op.WithdrawalPermission))
}

// CommitteeMemberCreate registers an account as a committee candidate.
type CommitteeMemberCreate struct {
	Fee                    AssetAmount
	CommitteeMemberAccount AccountID
	URL                    string
}

// Type implements Operation.
func (op *CommitteeMemberCreate) Type() OpType { return TypeCommitteeMemberCreate }

// MarshalWire implements Operation.
func (op *CommitteeMemberCreate) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.CommitteeMemberAccount))
	e.WriteString(op.URL)
}

// CommitteeMemberUpdate changes a committee member's URL.
type CommitteeMemberUpdate struct {
	Fee                    AssetAmount
	CommitteeMember        CommitteeMemberID
	CommitteeMemberAccount AccountID
	NewURL                 *string
}

// Type implements Operation.
func (op *CommitteeMemberUpdate) Type() OpType { return TypeCommitteeMemberUpdate }

// MarshalWire implements Operation.
func (op *CommitteeMemberUpdate) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.CommitteeMember))
	e.WriteUvarint(uint64(op.CommitteeMemberAccount))
	e.WriteOptional(op.NewURL != nil)
	if op.NewURL != nil {
		e.WriteString(*op.NewURL)
	}
}

// CommitteeMemberUpdateGlobalParameters proposes new chain-wide
// parameters; takes effect after the next maintenance interval once
// approved.
type CommitteeMemberUpdateGlobalParameters struct {
	Fee           AssetAmount
	NewParameters ChainParameters
}

// Type implements Operation.
func (op *CommitteeMemberUpdateGlobalParameters) Type() OpType {
	return TypeCommitteeMemberUpdateGlobalParameters
}

// MarshalWire implements Operation.
func (op *CommitteeMemberUpdateGlobalParameters) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	op.NewParameters.MarshalWire(e)
}

// VestingBalanceCreate locks an amount under a vesting policy.
type VestingBalanceCreate struct {
	Fee     AssetAmount
	Creator AccountID
	Owner   AccountID
	Amount  AssetAmount
	Policy  VestingPolicyInitializer
}

// Type implements Operation.
func (op *VestingBalanceCreate) Type() OpType { return TypeVestingBalanceCreate }

// MarshalWire implements Operation.
func (op *VestingBalanceCreate) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Creator))
	e.WriteUvarint(uint64(op.Owner))
	op.Amount.MarshalWire(e)
	writeVestingPolicy(e, op.Policy)
}

// VestingBalanceWithdraw claims matured funds from a vesting balance.
type VestingBalanceWithdraw struct {
	Fee            AssetAmount
	VestingBalance VestingBalanceID
	Owner          AccountID
	Amount         AssetAmount
}

// Type implements Operation.
func (op *VestingBalanceWithdraw) Type() OpType { return TypeVestingBalanceWithdraw }

// MarshalWire implements Operation.
func (op *VestingBalanceWithdraw) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.VestingBalance))
	e.WriteUvarint(uint64(op.Owner))
	op.Amount.MarshalWire(e)
}

// WorkerCreate proposes a budget-funded worker.
type WorkerCreate struct {
	Fee           AssetAmount
	Owner         AccountID
	WorkBeginDate TimePointSec
	WorkEndDate   TimePointSec
	DailyPay      int64
	Name          string
	URL           string
	Initializer   WorkerInitializer
}

// Type implements Operation.
func (op *WorkerCreate) Type() OpType { return TypeWorkerCreate }

// MarshalWire implements Operation.
func (op *WorkerCreate) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	e.WriteUvarint(uint64(op.Owner))
	op.WorkBeginDate.MarshalWire(e)
	op.WorkEndDate.MarshalWire(e)
	e.WriteInt64(op.DailyPay)
	e.WriteString(op.Name)
	e.WriteString(op.URL)
	writeWorkerInitializer(e, op.Initializer)
}
