package ops

import "errors"

// ErrUnknownOperation is returned when an operation name has no type
// id in the catalog.
var ErrUnknownOperation = errors.New("ops: unknown operation")

// OpType is the small integer tag selecting an operation variant. The
// numbering is part of the wire protocol.
type OpType uint64

// The full operation catalog. Virtual operations are generated by the
// chain and never appear in signed transactions.
const (
	TypeTransfer                              OpType = 0
	TypeLimitOrderCreate                      OpType = 1
	TypeLimitOrderCancel                      OpType = 2
	TypeCallOrderUpdate                       OpType = 3
	TypeFillOrder                             OpType = 4 // virtual
	TypeAccountCreate                         OpType = 5
	TypeAccountUpdate                         OpType = 6
	TypeAccountWhitelist                      OpType = 7
	TypeAccountUpgrade                        OpType = 8
	TypeAccountTransfer                       OpType = 9
	TypeAssetCreate                           OpType = 10
	TypeAssetUpdate                           OpType = 11
	TypeAssetUpdateBitasset                   OpType = 12
	TypeAssetUpdateFeedProducers              OpType = 13
	TypeAssetIssue                            OpType = 14
	TypeAssetReserve                          OpType = 15
	TypeAssetFundFeePool                      OpType = 16
	TypeAssetSettle                           OpType = 17
	TypeAssetGlobalSettle                     OpType = 18
	TypeAssetPublishFeed                      OpType = 19
	TypeWitnessCreate                         OpType = 20
	TypeWitnessUpdate                         OpType = 21
	TypeProposalCreate                        OpType = 22
	TypeProposalUpdate                        OpType = 23
	TypeProposalDelete                        OpType = 24
	TypeWithdrawPermissionCreate              OpType = 25
	TypeWithdrawPermissionUpdate              OpType = 26
	TypeWithdrawPermissionClaim               OpType = 27
	TypeWithdrawPermissionDelete              OpType = 28
	TypeCommitteeMemberCreate                 OpType = 29
	TypeCommitteeMemberUpdate                 OpType = 30
	TypeCommitteeMemberUpdateGlobalParameters OpType = 31
	TypeVestingBalanceCreate                  OpType = 32
	TypeVestingBalanceWithdraw                OpType = 33
	TypeWorkerCreate                          OpType = 34
	TypeCustom                                OpType = 35
	TypeAssert                                OpType = 36
	TypeBalanceClaim                          OpType = 37
	TypeOverrideTransfer                      OpType = 38
	TypeTransferToBlind                       OpType = 39
	TypeBlindTransfer                         OpType = 40
	TypeTransferFromBlind                     OpType = 41
	TypeAssetSettleCancel                     OpType = 42 // virtual
	TypeAssetClaimFees                        OpType = 43
	TypeFBADistribute                         OpType = 44 // virtual
	TypeBidCollateral                         OpType = 45
	TypeExecuteBid                            OpType = 46 // virtual
	TypeAssetClaimPool                        OpType = 47
	TypeAssetUpdateIssuer                     OpType = 48
	TypeHTLCCreate                            OpType = 49
	TypeHTLCRedeem                            OpType = 50
	TypeHTLCRedeemed                          OpType = 51 // virtual
	TypeHTLCExtend                            OpType = 52
	TypeHTLCRefund                            OpType = 53 // virtual
	TypeCustomAuthorityCreate                 OpType = 54
	TypeCustomAuthorityUpdate                 OpType = 55
	TypeCustomAuthorityDelete                 OpType = 56
	TypeTicketCreate                          OpType = 57
	TypeTicketUpdate                          OpType = 58
	TypeLiquidityPoolCreate                   OpType = 59
	TypeLiquidityPoolDelete                   OpType = 60
	TypeLiquidityPoolDeposit                  OpType = 61
	TypeLiquidityPoolWithdraw                 OpType = 62
	TypeLiquidityPoolExchange                 OpType = 63
	TypeSametFundCreate                       OpType = 64
	TypeSametFundDelete                       OpType = 65
	TypeSametFundUpdate                       OpType = 66
	TypeSametFundBorrow                       OpType = 67
	TypeSametFundRepay                        OpType = 68
	TypeCreditOfferCreate                     OpType = 69
	TypeCreditOfferDelete                     OpType = 70
	TypeCreditOfferUpdate                     OpType = 71
	TypeCreditOfferAccept                     OpType = 72
	TypeCreditDealRepay                       OpType = 73
	TypeCreditDealExpired                     OpType = 74 // virtual
	TypeLiquidityPoolUpdate                   OpType = 75
	TypeCreditDealUpdate                      OpType = 76
	TypeLimitOrderUpdate                      OpType = 77
)

var opNames = map[OpType]string{
	TypeTransfer:                              "transfer",
	TypeLimitOrderCreate:                      "limit_order_create",
	TypeLimitOrderCancel:                      "limit_order_cancel",
	TypeCallOrderUpdate:                       "call_order_update",
	TypeFillOrder:                             "fill_order",
	TypeAccountCreate:                         "account_create",
	TypeAccountUpdate:                         "account_update",
	TypeAccountWhitelist:                      "account_whitelist",
	TypeAccountUpgrade:                        "account_upgrade",
	TypeAccountTransfer:                       "account_transfer",
	TypeAssetCreate:                           "asset_create",
	TypeAssetUpdate:                           "asset_update",
	TypeAssetUpdateBitasset:                   "asset_update_bitasset",
	TypeAssetUpdateFeedProducers:              "asset_update_feed_producers",
	TypeAssetIssue:                            "asset_issue",
	TypeAssetReserve:                          "asset_reserve",
	TypeAssetFundFeePool:                      "asset_fund_fee_pool",
	TypeAssetSettle:                           "asset_settle",
	TypeAssetGlobalSettle:                     "asset_global_settle",
	TypeAssetPublishFeed:                      "asset_publish_feed",
	TypeWitnessCreate:                         "witness_create",
	TypeWitnessUpdate:                         "witness_update",
	TypeProposalCreate:                        "proposal_create",
	TypeProposalUpdate:                        "proposal_update",
	TypeProposalDelete:                        "proposal_delete",
	TypeWithdrawPermissionCreate:              "withdraw_permission_create",
	TypeWithdrawPermissionUpdate:              "withdraw_permission_update",
	TypeWithdrawPermissionClaim:               "withdraw_permission_claim",
	TypeWithdrawPermissionDelete:              "withdraw_permission_delete",
	TypeCommitteeMemberCreate:                 "committee_member_create",
	TypeCommitteeMemberUpdate:                 "committee_member_update",
	TypeCommitteeMemberUpdateGlobalParameters: "committee_member_update_global_parameters",
	TypeVestingBalanceCreate:                  "vesting_balance_create",
	TypeVestingBalanceWithdraw:                "vesting_balance_withdraw",
	TypeWorkerCreate:                          "worker_create",
	TypeCustom:                                "custom",
	TypeAssert:                                "assert",
	TypeBalanceClaim:                          "balance_claim",
	TypeOverrideTransfer:                      "override_transfer",
	TypeTransferToBlind:                       "transfer_to_blind",
	TypeBlindTransfer:                         "blind_transfer",
	TypeTransferFromBlind:                     "transfer_from_blind",
	TypeAssetSettleCancel:                     "asset_settle_cancel",
	TypeAssetClaimFees:                        "asset_claim_fees",
	TypeFBADistribute:                         "fba_distribute",
	TypeBidCollateral:                         "bid_collateral",
	TypeExecuteBid:                            "execute_bid",
	TypeAssetClaimPool:                        "asset_claim_pool",
	TypeAssetUpdateIssuer:                     "asset_update_issuer",
	TypeHTLCCreate:                            "htlc_create",
	TypeHTLCRedeem:                            "htlc_redeem",
	TypeHTLCRedeemed:                          "htlc_redeemed",
	TypeHTLCExtend:                            "htlc_extend",
	TypeHTLCRefund:                            "htlc_refund",
	TypeCustomAuthorityCreate:                 "custom_authority_create",
	TypeCustomAuthorityUpdate:                 "custom_authority_update",
	TypeCustomAuthorityDelete:                 "custom_authority_delete",
	TypeTicketCreate:                          "ticket_create",
	TypeTicketUpdate:                          "ticket_update",
	TypeLiquidityPoolCreate:                   "liquidity_pool_create",
	TypeLiquidityPoolDelete:                   "liquidity_pool_delete",
	TypeLiquidityPoolDeposit:                  "liquidity_pool_deposit",
	TypeLiquidityPoolWithdraw:                 "liquidity_pool_withdraw",
	TypeLiquidityPoolExchange:                 "liquidity_pool_exchange",
	TypeSametFundCreate:                       "samet_fund_create",
	TypeSametFundDelete:                       "samet_fund_delete",
	TypeSametFundUpdate:                       "samet_fund_update",
	TypeSametFundBorrow:                       "samet_fund_borrow",
	TypeSametFundRepay:                        "samet_fund_repay",
	TypeCreditOfferCreate:                     "credit_offer_create",
	TypeCreditOfferDelete:                     "credit_offer_delete",
	TypeCreditOfferUpdate:                     "credit_offer_update",
	TypeCreditOfferAccept:                     "credit_offer_accept",
	TypeCreditDealRepay:                       "credit_deal_repay",
	TypeCreditDealExpired:                     "credit_deal_expired",
	TypeLiquidityPoolUpdate:                   "liquidity_pool_update",
	TypeCreditDealUpdate:                      "credit_deal_update",
	TypeLimitOrderUpdate:                      "limit_order_update",
}

var opByName = func() map[string]OpType {
	m := make(map[string]OpType, len(opNames))
	for id, name := range opNames {
		m[name] = id
	}
	return m
}()

var virtualOps = map[OpType]bool{
	TypeFillOrder:         true,
	TypeAssetSettleCancel: true,
	TypeFBADistribute:     true,
	TypeExecuteBid:        true,
	TypeHTLCRedeemed:      true,
	TypeHTLCRefund:        true,
	TypeCreditDealExpired: true,
}

// Name returns the canonical snake_case name of the operation type,
// or "" for an unknown id.
func (t OpType) Name() string {
	return opNames[t]
}

// IsVirtual reports whether t is generated by the chain rather than
// submitted in transactions.
func (t OpType) IsVirtual() bool {
	return virtualOps[t]
}

// ByName resolves a canonical operation name to its type id.
func ByName(name string) (OpType, error) {
	t, ok := opByName[name]
	if !ok {
		return 0, ErrUnknownOperation
	}
	return t, nil
}
