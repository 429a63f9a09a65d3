package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mintvault/cdp-chain/x/cdp/types"
)

// PricesOf is the read-only façade over the external oracle (§4.A). It
// requests a TWAP-windowed price for each asset and flags any quote older
// than oracle_time_limit as stale, mirroring price_oracle.go's MaxPriceAge
// staleness check generalized from an in-chain feed table to an external
// oracle collaborator.
func (k Keeper) PricesOf(ctx sdk.Context, assets []types.AssetInfo) ([]types.PriceResponse, error) {
	if k.oracleKeeper == nil {
		return nil, types.ErrConfigured
	}
	cfg := k.GetConfig(ctx)

	prices, err := k.oracleKeeper.Prices(ctx, assets, cfg.TwapTimeframeSeconds, cfg.OracleTimeLimitSeconds)
	if err != nil {
		return nil, types.ErrOracleUnavailable.Wrapf("%s", err)
	}

	now := ctx.BlockTime().Unix()
	for _, p := range prices {
		age := now - p.LastUpdated
		if age < 0 {
			age = 0
		}
		if uint64(age) > cfg.OracleTimeLimitSeconds {
			return nil, types.ErrStaleOracle.Wrapf("price for %s is %d seconds old", p.Info, age)
		}
	}
	return prices, nil
}

// PriceOf is a single-asset convenience wrapper around PricesOf.
func (k Keeper) PriceOf(ctx sdk.Context, info types.AssetInfo) (types.PriceResponse, error) {
	prices, err := k.PricesOf(ctx, []types.AssetInfo{info})
	if err != nil {
		return types.PriceResponse{}, err
	}
	if len(prices) == 0 {
		return types.PriceResponse{}, types.ErrOracleUnavailable
	}
	return prices[0], nil
}

// ValueOf prices an asset, composing through its LP underlyings pro-rata when
// cAsset carries a PoolInfo (§4.A "LP-share pricing composes the underlying
// prices weighted by pool share").
func (k Keeper) ValueOf(ctx sdk.Context, cAsset types.CAsset) (math.LegacyDec, error) {
	if cAsset.PoolInfo == nil {
		price, err := k.PriceOf(ctx, cAsset.Asset.Info)
		if err != nil {
			return math.LegacyDec{}, err
		}
		return price.Price.MulInt(cAsset.Asset.Amount), nil
	}

	total := math.LegacyZeroDec()
	for _, u := range cAsset.PoolInfo.Underlying {
		price, err := k.PriceOf(ctx, u.Info)
		if err != nil {
			return math.LegacyDec{}, err
		}
		shareAmount := u.Ratio.MulInt(cAsset.Asset.Amount)
		total = total.Add(price.Price.Mul(shareAmount))
	}
	return total, nil
}

// CreditLiquidity reports how much of the credit asset the configured
// liquidity checker reports as available in the stability pool (§4.A).
func (k Keeper) CreditLiquidity(ctx sdk.Context) math.Int {
	if k.liquidityCheckKeeper == nil {
		return math.ZeroInt()
	}
	basket, ok := k.GetBasket(ctx)
	if !ok {
		return math.ZeroInt()
	}
	return k.liquidityCheckKeeper.StabilityPoolLiquidity(ctx, basket.CreditAsset.Info)
}
