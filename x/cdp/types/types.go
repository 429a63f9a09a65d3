package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// AssetInfo is a tagged variant identifying either a native bank denom or a
// CW-style contract-backed asset (the credit-token proxy, an LP share, etc).
// Equality is structural: two AssetInfo values are equal iff their kind and
// identifier match.
type AssetInfo struct {
	Native string `json:"native,omitempty"`
	Cw     string `json:"cw,omitempty"`
}

func NewNativeAssetInfo(denom string) AssetInfo {
	return AssetInfo{Native: denom}
}

func NewCwAssetInfo(contractID string) AssetInfo {
	return AssetInfo{Cw: contractID}
}

func (a AssetInfo) IsNative() bool {
	return a.Native != ""
}

func (a AssetInfo) Equal(b AssetInfo) bool {
	return a.Native == b.Native && a.Cw == b.Cw
}

func (a AssetInfo) String() string {
	if a.IsNative() {
		return a.Native
	}
	return a.Cw
}

func (a AssetInfo) Validate() error {
	if a.Native == "" && a.Cw == "" {
		return fmt.Errorf("asset info must set exactly one of native or cw")
	}
	if a.Native != "" && a.Cw != "" {
		return fmt.Errorf("asset info must set exactly one of native or cw")
	}
	return nil
}

// Asset is an amount of a specific AssetInfo.
type Asset struct {
	Info   AssetInfo `json:"info"`
	Amount math.Int  `json:"amount"`
}

func NewAsset(info AssetInfo, amount math.Int) Asset {
	return Asset{Info: info, Amount: amount}
}

// PoolUnderlying is one component of an LP share's pro-rata decomposition.
type PoolUnderlying struct {
	Info  AssetInfo      `json:"info"`
	Ratio math.LegacyDec `json:"ratio"`
}

// PoolInfo decomposes an LP-share cAsset into its priced underlyings.
type PoolInfo struct {
	Underlying []PoolUnderlying `json:"underlying"`
}

// CAsset is a collateral entry, either in the basket registry (where Asset.Amount
// is the running total across all positions) or inside a Position (where
// Asset.Amount is the position-local stake).
type CAsset struct {
	Asset        Asset          `json:"asset"`
	MaxBorrowLTV math.LegacyDec `json:"max_borrow_ltv"`
	MaxLTV       math.LegacyDec `json:"max_ltv"`
	RateIndex    math.LegacyDec `json:"rate_index"`
	PoolInfo     *PoolInfo      `json:"pool_info,omitempty"`
	HikeRates    bool           `json:"hike_rates"`
}

func (c CAsset) Validate() error {
	if err := c.Asset.Info.Validate(); err != nil {
		return err
	}
	if c.MaxBorrowLTV.IsNil() || c.MaxLTV.IsNil() {
		return fmt.Errorf("cAsset %s missing LTV parameters", c.Asset.Info)
	}
	if c.MaxBorrowLTV.IsNegative() || c.MaxBorrowLTV.GTE(c.MaxLTV) {
		return fmt.Errorf("cAsset %s: max_borrow_ltv must be < max_ltv", c.Asset.Info)
	}
	if c.MaxLTV.LT(math.LegacyNewDecWithPrec(1, 2)) || c.MaxLTV.GTE(math.LegacyOneDec()) {
		return ErrInvalidMaxLTV
	}
	return nil
}

// Position is an individually owned CDP.
type Position struct {
	ID                       uint64                    `json:"id"`
	Owner                    string                    `json:"owner"`
	CollateralAssets         []CAsset                  `json:"collateral_assets"`
	CreditAmount             math.Int                  `json:"credit_amount"`
	LastAccruedTime          int64                     `json:"last_accrued_time"`
	LastAccruedRateIndex     map[string]math.LegacyDec `json:"last_accrued_rate_index"`
	BadDebt                  bool                      `json:"bad_debt"`
}

// FindCollateral returns the index of the cAsset matching info, or -1.
func (p Position) FindCollateral(info AssetInfo) int {
	for i := range p.CollateralAssets {
		if p.CollateralAssets[i].Asset.Info.Equal(info) {
			return i
		}
	}
	return -1
}

// IsEmpty reports whether both credit and collateral have reached zero.
func (p Position) IsEmpty() bool {
	if !p.CreditAmount.IsZero() {
		return false
	}
	for _, c := range p.CollateralAssets {
		if c.Asset.Amount.IsPositive() {
			return false
		}
	}
	return true
}

// SupplyCap bounds an asset's share of total basket value, optionally floored
// by a stability-pool-liquidity-derived debt cap.
type SupplyCap struct {
	Info         AssetInfo      `json:"info"`
	RatioCap     math.LegacyDec `json:"ratio_cap"`
	CurrentRatio math.LegacyDec `json:"current_ratio"`
	DebtCap      math.Int       `json:"debt_cap"`
	DebtTotal    math.Int       `json:"debt_total"`
	UseDebtCap   bool           `json:"use_debt_cap"`
}

// MultiAssetSupplyCap bounds a correlated group of assets (e.g. all LST-of-X
// variants) to a combined share of basket value.
type MultiAssetSupplyCap struct {
	AssetSet  []AssetInfo    `json:"asset_set"`
	RatioCap  math.LegacyDec `json:"ratio_cap"`
	Contains  math.LegacyDec `json:"-"`
}

func (m MultiAssetSupplyCap) Includes(info AssetInfo) bool {
	for _, a := range m.AssetSet {
		if a.Equal(info) {
			return true
		}
	}
	return false
}

// Basket is the singleton collateral registry and the credit asset it mints.
type Basket struct {
	CreditAsset          Asset                  `json:"credit_asset"`
	CreditPrice          math.LegacyDec         `json:"credit_price"`
	CreditLastAccrued    int64                  `json:"credit_last_accrued"`
	CollateralTypes      []CAsset               `json:"collateral_types"`
	CollateralSupplyCaps []SupplyCap            `json:"collateral_supply_caps"`
	MultiAssetSupplyCaps []MultiAssetSupplyCap  `json:"multi_asset_supply_caps"`
	BaseInterestRate     math.LegacyDec         `json:"base_interest_rate"`
	PendingRevenue       math.Int               `json:"pending_revenue"`
	NegativeRates        bool                   `json:"negative_rates"`
	Frozen               bool                   `json:"frozen"`
	RevToStakers         bool                   `json:"rev_to_stakers"`
	CPCMarginOfError     math.LegacyDec         `json:"cpc_margin_of_error"`
	LiqQueue             string                 `json:"liq_queue,omitempty"`
}

// FindCollateralType returns the index of the basket registry entry for info, or -1.
func (b Basket) FindCollateralType(info AssetInfo) int {
	for i := range b.CollateralTypes {
		if b.CollateralTypes[i].Asset.Info.Equal(info) {
			return i
		}
	}
	return -1
}

func (b Basket) FindSupplyCap(info AssetInfo) int {
	for i := range b.CollateralSupplyCaps {
		if b.CollateralSupplyCaps[i].Info.Equal(info) {
			return i
		}
	}
	return -1
}

// Config is the singleton owner/collaborator/parameter registry.
type Config struct {
	Owner                 string         `json:"owner"`
	OracleAddr             string         `json:"oracle_addr,omitempty"`
	StabilityPoolAddr      string         `json:"stability_pool_addr,omitempty"`
	DebtAuctionAddr        string         `json:"debt_auction_addr,omitempty"`
	DexRouterAddr          string         `json:"dex_router_addr,omitempty"`
	TokenProxyAddr         string         `json:"token_proxy_addr,omitempty"`
	LiquidityCheckAddr     string         `json:"liquidity_check_addr,omitempty"`
	DiscountsAddr          string         `json:"discounts_addr,omitempty"`
	CallerFeePercent       math.LegacyDec `json:"caller_fee_percent"`
	LiqFeePercent          math.LegacyDec `json:"liq_fee_percent"`
	TwapTimeframeSeconds   uint64         `json:"twap_timeframe_seconds"`
	OracleTimeLimitSeconds uint64         `json:"oracle_time_limit_seconds"`
	CPCMultiplier          math.LegacyDec `json:"cpc_multiplier"`
	RateSlopeMultiplier    math.LegacyDec `json:"rate_slope_multiplier"`
	DebtMinimum            math.Int       `json:"debt_minimum"`
	BaseDebtCapMultiplier  math.LegacyDec `json:"base_debt_cap_multiplier"`
}

func DefaultConfig(owner string) Config {
	return Config{
		Owner:                  owner,
		CallerFeePercent:       math.LegacyNewDecWithPrec(1, 2),  // 1%
		LiqFeePercent:          math.LegacyNewDecWithPrec(2, 2),  // 2%
		TwapTimeframeSeconds:   300,
		OracleTimeLimitSeconds: 600,
		CPCMultiplier:          math.LegacyNewDecWithPrec(5, 1),  // 0.5
		RateSlopeMultiplier:    math.LegacyNewDec(3),
		DebtMinimum:            math.NewInt(100),
		BaseDebtCapMultiplier:  math.LegacyNewDec(10),
	}
}

// LiquidationStage tags where a liquidation sits in the waterfall state machine.
type LiquidationStage string

const (
	StageTriggered       LiquidationStage = "triggered"
	StageQueueDispatched LiquidationStage = "queue_dispatched"
	StageSPDispatched    LiquidationStage = "sp_dispatched"
	StageSellWall        LiquidationStage = "sell_wall"
	StageBadDebtCheck    LiquidationStage = "bad_debt_check"
	StageTerminal        LiquidationStage = "terminal"
)

// LiquidationPropagation is the persisted working set of an in-flight liquidation.
type LiquidationPropagation struct {
	ReplyID              string           `json:"reply_id"`
	PositionID           uint64           `json:"position_id"`
	PositionOwner        string           `json:"position_owner"`
	Stage                LiquidationStage `json:"stage"`
	StillToRepay         math.LegacyDec   `json:"still_to_repay"`
	TotalRepaid          math.LegacyDec   `json:"total_repaid"`
	LiquidatedAssets     []CAsset         `json:"liquidated_assets"`
	CallerFeeAddr        string           `json:"caller_fee_addr"`
	CallerFeeCollected   math.LegacyDec   `json:"caller_fee_collected"`
	ProtocolFeeCollected math.LegacyDec   `json:"protocol_fee_collected"`
	PendingAssetQueue    []AssetInfo      `json:"pending_asset_queue"`
}

// WithdrawPropagation is a deferred continuation spanning a withdraw's external
// transfer call and its completion.
type WithdrawPropagation struct {
	ReplyID    string  `json:"reply_id"`
	PositionID uint64  `json:"position_id"`
	Owner      string  `json:"owner"`
	Assets     []Asset `json:"assets"`
	SendTo     string  `json:"send_to"`
}

// ClosePositionPropagation is a deferred continuation spanning a close-position's
// router swap call and its completion.
type ClosePositionPropagation struct {
	ReplyID    string         `json:"reply_id"`
	PositionID uint64         `json:"position_id"`
	Owner      string         `json:"owner"`
	MaxSpread  math.LegacyDec `json:"max_spread"`
	SendTo     string         `json:"send_to"`
}

// PriceResponse is the oracle's answer for a single asset.
type PriceResponse struct {
	Info              AssetInfo      `json:"info"`
	Price             math.LegacyDec `json:"price"`
	DecimalsNormalized uint32        `json:"decimals_normalized"`
	LastUpdated       int64          `json:"last_updated"`
}
