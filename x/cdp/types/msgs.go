package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type constants
const (
	TypeMsgDeposit       = "deposit"
	TypeMsgWithdraw      = "withdraw"
	TypeMsgIncreaseDebt  = "increase_debt"
	TypeMsgRepay         = "repay"
	TypeMsgLiqRepay      = "liq_repay"
	TypeMsgAccrue        = "accrue"
	TypeMsgClosePosition = "close_position"
	TypeMsgLiquidate     = "liquidate"
	TypeMsgMintRevenue   = "mint_revenue"
	TypeMsgUpdateConfig  = "update_config"
	TypeMsgCreateBasket  = "create_basket"
	TypeMsgEditBasket    = "edit_basket"
	TypeMsgEditCAsset    = "edit_casset"
)

// ============================================================================
// MsgDeposit - attach funds as collateral, creating a position on first deposit
// ============================================================================

type MsgDeposit struct {
	Sender        string  `json:"sender"`
	PositionID    uint64  `json:"position_id,omitempty"`
	PositionOwner string  `json:"position_owner,omitempty"`
	Funds         []Asset `json:"funds"`
}

func (msg MsgDeposit) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrUnauthorized
	}
	if len(msg.Funds) == 0 {
		return ErrZeroAmount
	}
	seen := map[string]bool{}
	for _, f := range msg.Funds {
		if seen[f.Info.String()] {
			return ErrDuplicateAsset
		}
		seen[f.Info.String()] = true
		if f.Amount.IsNil() || !f.Amount.IsPositive() {
			return ErrZeroAmount
		}
	}
	return nil
}

func (msg MsgDeposit) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Sender)
	return []sdk.AccAddress{addr}
}

// ============================================================================
// MsgWithdraw - remove collateral, subject to post-condition LTV check
// ============================================================================

type MsgWithdraw struct {
	Sender     string  `json:"sender"`
	PositionID uint64  `json:"position_id"`
	Assets     []Asset `json:"assets"`
	SendTo     string  `json:"send_to,omitempty"`
}

func (msg MsgWithdraw) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrUnauthorized
	}
	if len(msg.Assets) == 0 {
		return ErrNothingToWithdraw
	}
	seen := map[string]bool{}
	for _, a := range msg.Assets {
		if seen[a.Info.String()] {
			return ErrDuplicateAsset
		}
		seen[a.Info.String()] = true
		if a.Amount.IsNil() || !a.Amount.IsPositive() {
			return ErrZeroAmount
		}
	}
	return nil
}

func (msg MsgWithdraw) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Sender)
	return []sdk.AccAddress{addr}
}

// ============================================================================
// MsgIncreaseDebt - borrow either a fixed amount or to target LTV
// ============================================================================

type MsgIncreaseDebt struct {
	Sender      string         `json:"sender"`
	PositionID  uint64         `json:"position_id"`
	Amount      math.Int       `json:"amount,omitempty"`
	LTV         math.LegacyDec `json:"ltv,omitempty"`
	MintToAddr  string         `json:"mint_to_addr,omitempty"`
}

func (msg MsgIncreaseDebt) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrUnauthorized
	}
	amountSet := !msg.Amount.IsNil() && msg.Amount.IsPositive()
	ltvSet := !msg.LTV.IsNil() && msg.LTV.IsPositive()
	if !amountSet && !ltvSet {
		return ErrZeroAmount
	}
	return nil
}

func (msg MsgIncreaseDebt) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Sender)
	return []sdk.AccAddress{addr}
}

// ============================================================================
// MsgRepay - repay credit asset against a position
// ============================================================================

type MsgRepay struct {
	Sender        string   `json:"sender"`
	PositionID    uint64   `json:"position_id"`
	PositionOwner string   `json:"position_owner,omitempty"`
	Funds         math.Int `json:"funds"`
	SendExcessTo  string   `json:"send_excess_to,omitempty"`
}

func (msg MsgRepay) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrUnauthorized
	}
	if msg.Funds.IsNil() || !msg.Funds.IsPositive() {
		return ErrNoRepayFunds
	}
	return nil
}

func (msg MsgRepay) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Sender)
	return []sdk.AccAddress{addr}
}

// ============================================================================
// MsgLiqRepay - stability-pool-only repay against a position under liquidation
// ============================================================================

type MsgLiqRepay struct {
	Sender     string   `json:"sender"`
	PositionID uint64   `json:"position_id"`
	Funds      math.Int `json:"funds"`
}

func (msg MsgLiqRepay) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrUnauthorized
	}
	if msg.Funds.IsNil() || !msg.Funds.IsPositive() {
		return ErrNoRepayFunds
	}
	return nil
}

func (msg MsgLiqRepay) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Sender)
	return []sdk.AccAddress{addr}
}

// ============================================================================
// MsgAccrue - idempotent public crank
// ============================================================================

type MsgAccrue struct {
	Sender        string   `json:"sender"`
	PositionOwner string   `json:"position_owner,omitempty"`
	PositionIDs   []uint64 `json:"position_ids"`
}

func (msg MsgAccrue) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrUnauthorized
	}
	if len(msg.PositionIDs) == 0 {
		return ErrZeroAmount
	}
	return nil
}

func (msg MsgAccrue) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Sender)
	return []sdk.AccAddress{addr}
}

// ============================================================================
// MsgClosePosition - user-initiated full sell-wall
// ============================================================================

type MsgClosePosition struct {
	Sender     string         `json:"sender"`
	PositionID uint64         `json:"position_id"`
	MaxSpread  math.LegacyDec `json:"max_spread"`
	SendTo     string         `json:"send_to,omitempty"`
}

func (msg MsgClosePosition) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrUnauthorized
	}
	if msg.MaxSpread.IsNil() || msg.MaxSpread.IsNegative() {
		return ErrZeroAmount
	}
	return nil
}

func (msg MsgClosePosition) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Sender)
	return []sdk.AccAddress{addr}
}

// ============================================================================
// MsgLiquidate - permissionless
// ============================================================================

type MsgLiquidate struct {
	Sender        string `json:"sender"`
	PositionID    uint64 `json:"position_id"`
	PositionOwner string `json:"position_owner"`
}

func (msg MsgLiquidate) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrUnauthorized
	}
	if _, err := sdk.AccAddressFromBech32(msg.PositionOwner); err != nil {
		return ErrUnauthorized
	}
	return nil
}

func (msg MsgLiquidate) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Sender)
	return []sdk.AccAddress{addr}
}

// ============================================================================
// MsgMintRevenue - owner or self (bad-debt callback)
// ============================================================================

type MsgMintRevenue struct {
	Sender   string   `json:"sender"`
	SendTo   string   `json:"send_to,omitempty"`
	RepayFor uint64   `json:"repay_for,omitempty"`
	Amount   math.Int `json:"amount,omitempty"`
}

func (msg MsgMintRevenue) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrUnauthorized
	}
	return nil
}

func (msg MsgMintRevenue) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Sender)
	return []sdk.AccAddress{addr}
}

// ============================================================================
// MsgUpdateConfig - owner only
// ============================================================================

type MsgUpdateConfig struct {
	Sender string  `json:"sender"`
	Config Config  `json:"config"`
}

func (msg MsgUpdateConfig) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrUnauthorized
	}
	return nil
}

func (msg MsgUpdateConfig) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Sender)
	return []sdk.AccAddress{addr}
}

// ============================================================================
// MsgCreateBasket - owner only, once
// ============================================================================

type MsgCreateBasket struct {
	Sender           string   `json:"sender"`
	CollateralTypes  []CAsset `json:"collateral_types"`
	CreditAsset      Asset    `json:"credit_asset"`
	CreditPrice      math.LegacyDec `json:"credit_price"`
	BaseInterestRate math.LegacyDec `json:"base_interest_rate"`
	LiqQueue         string   `json:"liq_queue,omitempty"`
}

func (msg MsgCreateBasket) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrUnauthorized
	}
	if len(msg.CollateralTypes) == 0 {
		return ErrInvalidAsset
	}
	for _, c := range msg.CollateralTypes {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	if msg.CreditPrice.IsNil() || !msg.CreditPrice.IsPositive() {
		return ErrZeroAmount
	}
	return nil
}

func (msg MsgCreateBasket) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Sender)
	return []sdk.AccAddress{addr}
}

// ============================================================================
// MsgEditBasket - owner only
// ============================================================================

type MsgEditBasket struct {
	Sender               string                 `json:"sender"`
	CollateralSupplyCaps []SupplyCap            `json:"collateral_supply_caps,omitempty"`
	MultiAssetSupplyCaps []MultiAssetSupplyCap  `json:"multi_asset_supply_caps,omitempty"`
	BaseInterestRate     math.LegacyDec         `json:"base_interest_rate,omitempty"`
	NegativeRates        *bool                  `json:"negative_rates,omitempty"`
	Frozen               *bool                  `json:"frozen,omitempty"`
	RevToStakers         *bool                  `json:"rev_to_stakers,omitempty"`
}

func (msg MsgEditBasket) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrUnauthorized
	}
	return nil
}

func (msg MsgEditBasket) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Sender)
	return []sdk.AccAddress{addr}
}

// ============================================================================
// MsgEditcAsset - owner only; editing max_LTV proportionally caps queue premium
// ============================================================================

type MsgEditCAsset struct {
	Sender       string         `json:"sender"`
	Asset        AssetInfo      `json:"asset"`
	MaxBorrowLTV math.LegacyDec `json:"max_borrow_ltv,omitempty"`
	MaxLTV       math.LegacyDec `json:"max_ltv,omitempty"`
}

func (msg MsgEditCAsset) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrUnauthorized
	}
	if !msg.MaxLTV.IsNil() {
		if msg.MaxLTV.LT(math.LegacyNewDecWithPrec(1, 2)) || msg.MaxLTV.GTE(math.LegacyOneDec()) {
			return ErrInvalidMaxLTV
		}
	}
	return nil
}

func (msg MsgEditCAsset) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Sender)
	return []sdk.AccAddress{addr}
}

// ============================================================================
// MsgCallback - contract-self only (bad-debt check continuation)
// ============================================================================

type MsgCallbackBadDebtCheck struct {
	Sender     string `json:"sender"`
	PositionID uint64 `json:"position_id"`
}

func (msg MsgCallbackBadDebtCheck) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrUnauthorized
	}
	return nil
}

func (msg MsgCallbackBadDebtCheck) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Sender)
	return []sdk.AccAddress{addr}
}

// ============================================================================
// Message responses
// ============================================================================

type MsgDepositResponse struct {
	PositionID uint64 `json:"position_id"`
}

type MsgWithdrawResponse struct {
	Success bool `json:"success"`
}

type MsgIncreaseDebtResponse struct {
	CreditAmount math.Int `json:"credit_amount"`
}

type MsgRepayResponse struct {
	Remaining math.Int `json:"remaining"`
}

type MsgLiqRepayResponse struct {
	CollateralReleased []Asset `json:"collateral_released"`
}

type MsgAccrueResponse struct {
	Accrued uint64 `json:"accrued"`
}

type MsgClosePositionResponse struct {
	CreditBurned math.LegacyDec `json:"credit_burned"`
	Refunded     []Asset        `json:"refunded"`
}

type MsgLiquidateResponse struct {
	Stage string `json:"stage"`
}

type MsgMintRevenueResponse struct {
	Minted math.Int `json:"minted"`
}

type MsgUpdateConfigResponse struct{}

type MsgCreateBasketResponse struct{}

type MsgEditBasketResponse struct{}

type MsgEditCAssetResponse struct{}

type MsgCallbackBadDebtCheckResponse struct {
	Resolved bool `json:"resolved"`
}
