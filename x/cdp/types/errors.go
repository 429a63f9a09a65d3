package types

import (
	"cosmossdk.io/errors"
)

// x/cdp module sentinel errors
var (
	// Authorization / input errors
	ErrUnauthorized     = errors.Register(ModuleName, 1, "unauthorized")
	ErrInvalidAsset     = errors.Register(ModuleName, 2, "invalid asset")
	ErrDuplicateAsset   = errors.Register(ModuleName, 3, "duplicate asset")
	ErrInvalidCredit    = errors.Register(ModuleName, 4, "inbound funds are not the credit asset")
	ErrInvalidMaxLTV    = errors.Register(ModuleName, 5, "max_LTV must be in [1%, 100%)")
	ErrZeroAmount       = errors.Register(ModuleName, 6, "amount must be positive")
	ErrNoRepayFunds     = errors.Register(ModuleName, 7, "no repay funds supplied")
	ErrNothingToWithdraw = errors.Register(ModuleName, 8, "nothing to withdraw")

	// Basket / registry errors
	ErrBasketNotFound       = errors.Register(ModuleName, 10, "basket not found")
	ErrBasketAlreadyExists  = errors.Register(ModuleName, 11, "basket already exists")
	ErrBasketFrozen         = errors.Register(ModuleName, 12, "basket is frozen")
	ErrAssetNotInBasket     = errors.Register(ModuleName, 13, "asset is not registered in the basket")
	ErrCapBreach            = errors.Register(ModuleName, 14, "supply or debt cap exceeded")
	ErrConfigured           = errors.Register(ModuleName, 15, "a required external collaborator address is unset")

	// Position errors
	ErrPositionNotFound    = errors.Register(ModuleName, 20, "position not found")
	ErrPositionInsolvent   = errors.Register(ModuleName, 21, "position would be insolvent")
	ErrPositionSolvent     = errors.Register(ModuleName, 22, "position is solvent")
	ErrBelowDebtMinimum    = errors.Register(ModuleName, 23, "debt would be below debt_minimum")
	ErrBadDebt             = errors.Register(ModuleName, 24, "position carries bad debt")

	// Oracle errors
	ErrStaleOracle        = errors.Register(ModuleName, 30, "oracle price is stale")
	ErrOracleUnavailable  = errors.Register(ModuleName, 31, "oracle price unavailable")

	// Liquidation / reply errors
	ErrReplyParseFailure   = errors.Register(ModuleName, 40, "reply did not carry expected attributes")
	ErrPropagationNotFound = errors.Register(ModuleName, 41, "no in-flight propagation for this reply id")
	ErrLiquidationInFlight = errors.Register(ModuleName, 42, "position already has a liquidation in flight")
	ErrNotStabilityPool    = errors.Register(ModuleName, 43, "sender is not the configured stability pool")
	ErrNotSelf             = errors.Register(ModuleName, 44, "callback may only be invoked by the module itself")
)

// Event types
const (
	EventTypeDeposit          = "cdp_deposit"
	EventTypeWithdraw         = "cdp_withdraw"
	EventTypeIncreaseDebt     = "cdp_increase_debt"
	EventTypeRepay            = "cdp_repay"
	EventTypeAccrue           = "cdp_accrue"
	EventTypeLiqRepay         = "cdp_liq_repay"
	EventTypeClosePosition    = "cdp_close_position"
	EventTypeLiquidate        = "cdp_liquidate"
	EventTypeLiquidationLeg   = "cdp_liquidation_leg"
	EventTypeBadDebt          = "cdp_bad_debt"
	EventTypeMintRevenue      = "cdp_mint_revenue"
	EventTypeUpdateConfig     = "cdp_update_config"
	EventTypeCreateBasket     = "cdp_create_basket"
	EventTypeEditBasket       = "cdp_edit_basket"
	EventTypeEditCAsset       = "cdp_edit_casset"
)

// Attribute keys
const (
	AttributeKeyPositionID    = "position_id"
	AttributeKeyOwner         = "owner"
	AttributeKeyAsset         = "asset"
	AttributeKeyAmount        = "amount"
	AttributeKeyCreditAmount  = "credit_amount"
	AttributeKeyReplyID       = "reply_id"
	AttributeKeyStage         = "stage"
	AttributeKeyRepaid        = "repaid"
	AttributeKeyCollateral    = "collateral"
	AttributeKeyCallerFee     = "caller_fee"
	AttributeKeyProtocolFee   = "protocol_fee"
)
