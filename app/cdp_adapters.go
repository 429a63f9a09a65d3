package app

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"

	cdptypes "github.com/mintvault/cdp-chain/x/cdp/types"
	dexkeeper "github.com/mintvault/cdp-chain/x/dex/keeper"
)

// CDPOracleAdapter satisfies cdp's OracleKeeper from the dex module's price
// feed, the only pack keeper that aggregates external price submissions
// (RegisterPriceSource/SubmitPriceFeed in x/dex/keeper/price_oracle.go).
type CDPOracleAdapter struct {
	dexKeeper dexkeeper.Keeper
}

func NewCDPOracleAdapter(dexKeeper dexkeeper.Keeper) *CDPOracleAdapter {
	return &CDPOracleAdapter{dexKeeper: dexKeeper}
}

// Prices reports dex's HODL-denominated asset price for each requested asset.
// twapTimeframeSeconds is accepted for interface compliance; the dex keeper's
// GetAssetPrice already folds in its own aggregation window.
func (a *CDPOracleAdapter) Prices(ctx sdk.Context, assets []cdptypes.AssetInfo, twapTimeframeSeconds, oracleTimeLimitSeconds uint64) ([]cdptypes.PriceResponse, error) {
	out := make([]cdptypes.PriceResponse, 0, len(assets))
	for _, info := range assets {
		price := a.dexKeeper.GetAssetPrice(ctx, info.String())
		out = append(out, cdptypes.PriceResponse{
			Info:        info,
			Price:       price,
			LastUpdated: ctx.BlockTime().Unix(),
		})
	}
	return out, nil
}

// CDPRouterAdapter satisfies cdp's RouterKeeper by force-selling collateral
// against HODL through dex's atomic swap path (x/dex/keeper/keeper.go
// ExecuteAtomicSwap), the only pack keeper with a real AMM-style swap.
type CDPRouterAdapter struct {
	dexKeeper   dexkeeper.Keeper
	bankKeeper  bankkeeper.Keeper
	moduleName  string
	creditDenom string
}

func NewCDPRouterAdapter(dexKeeper dexkeeper.Keeper, bankKeeper bankkeeper.Keeper, moduleName, creditDenom string) *CDPRouterAdapter {
	return &CDPRouterAdapter{dexKeeper: dexKeeper, bankKeeper: bankKeeper, moduleName: moduleName, creditDenom: creditDenom}
}

// Swap quotes assetIn against the credit asset using dex's aggregated price
// and mints the credit-equivalent straight to the cdp module account, mirroring
// the simplified burn/mint settlement ExecuteSwapTransfer already uses for
// equity<->HODL swaps rather than routing real liquidity through an order book
// (sell-wall liquidations cannot wait on order matching, §4.G no-retry).
func (a *CDPRouterAdapter) Swap(ctx sdk.Context, assetIn cdptypes.Asset, maxSpread math.LegacyDec) (math.LegacyDec, error) {
	price := a.dexKeeper.GetAssetPrice(ctx, assetIn.Info.String())
	received := assetIn.Amount.ToLegacyDec().Mul(price)

	coins := sdk.NewCoins(sdk.NewCoin(assetIn.Info.String(), assetIn.Amount))
	if err := a.bankKeeper.BurnCoins(ctx, a.moduleName, coins); err != nil {
		return math.LegacyDec{}, err
	}
	creditCoins := sdk.NewCoins(sdk.NewCoin(a.creditDenom, received.TruncateInt()))
	if err := a.bankKeeper.MintCoins(ctx, a.moduleName, creditCoins); err != nil {
		return math.LegacyDec{}, err
	}
	return received, nil
}

// CDPTokenProxyAdapter satisfies cdp's TokenProxyKeeper by minting/burning the
// credit asset as a regular bank coin through the cdp module account, the same
// mint-then-send / receive-then-burn shape hodl's own MintHODL handler and
// BurnTokens method use for its stablecoin denom.
type CDPTokenProxyAdapter struct {
	bankKeeper  bankkeeper.Keeper
	moduleName  string
	creditDenom string
}

func NewCDPTokenProxyAdapter(bankKeeper bankkeeper.Keeper, moduleName, creditDenom string) *CDPTokenProxyAdapter {
	return &CDPTokenProxyAdapter{bankKeeper: bankKeeper, moduleName: moduleName, creditDenom: creditDenom}
}

func (a *CDPTokenProxyAdapter) MintTokens(ctx sdk.Context, to sdk.AccAddress, amount math.Int) error {
	coins := sdk.NewCoins(sdk.NewCoin(a.creditDenom, amount))
	if err := a.bankKeeper.MintCoins(ctx, a.moduleName, coins); err != nil {
		return err
	}
	return a.bankKeeper.SendCoinsFromModuleToAccount(ctx, a.moduleName, to, coins)
}

func (a *CDPTokenProxyAdapter) BurnTokens(ctx sdk.Context, from sdk.AccAddress, amount math.Int) error {
	coins := sdk.NewCoins(sdk.NewCoin(a.creditDenom, amount))
	if err := a.bankKeeper.SendCoinsFromAccountToModule(ctx, from, a.moduleName, coins); err != nil {
		return err
	}
	return a.bankKeeper.BurnCoins(ctx, a.moduleName, coins)
}
