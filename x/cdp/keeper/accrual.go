package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mintvault/cdp-chain/x/cdp/types"
)

const secondsPerYear = 365 * 24 * 60 * 60

// AccruePosition materializes interest owed on position since its
// last_accrued_time, capitalizing the protocol's share into credit_amount and
// the rest into basket.pending_revenue (§4.D). It is idempotent at
// elapsed == 0 and MUST run before any LTV check, deposit, withdraw, or
// liquidation decision touches the position.
//
// Accrual integrates each collateral entry's live borrow rate over elapsed
// time, weighted by that entry's share of total position value, onto the
// outstanding credit_amount. The per-asset rate_index recorded on the
// position is advanced so a second call at the same timestamp is a no-op.
func (k Keeper) AccruePosition(ctx sdk.Context, basket *types.Basket, position *types.Position) (interestAccrued math.Int, err error) {
	now := ctx.BlockTime().Unix()
	elapsed := now - position.LastAccruedTime
	if position.LastAccruedTime == 0 {
		position.LastAccruedTime = now
		return math.ZeroInt(), nil
	}
	if elapsed <= 0 {
		return math.ZeroInt(), nil
	}
	if position.CreditAmount.IsZero() || len(position.CollateralAssets) == 0 {
		position.LastAccruedTime = now
		return math.ZeroInt(), nil
	}

	_, _, totalValue, err := k.ComputeAvgLTVs(ctx, *position)
	if err != nil {
		return math.ZeroInt(), err
	}
	if !totalValue.IsPositive() {
		position.LastAccruedTime = now
		return math.ZeroInt(), nil
	}

	if position.LastAccruedRateIndex == nil {
		position.LastAccruedRateIndex = make(map[string]math.LegacyDec)
	}

	blended := math.LegacyZeroDec()
	for i := range position.CollateralAssets {
		cAsset := position.CollateralAssets[i]
		value, verr := k.ValueOf(ctx, cAsset)
		if verr != nil {
			return math.ZeroInt(), verr
		}
		weight := value.Quo(totalValue)

		rate := k.BorrowRateFor(ctx, *basket, cAsset)
		blended = blended.Add(rate.Mul(weight))

		key := cAsset.Asset.Info.String()
		position.LastAccruedRateIndex[key] = rate
		if idx := basket.FindCollateralType(cAsset.Asset.Info); idx >= 0 {
			basket.CollateralTypes[idx].RateIndex = rate
		}
	}

	elapsedFraction := math.LegacyNewDec(elapsed).QuoInt64(secondsPerYear)
	interestDec := position.CreditAmount.ToLegacyDec().Mul(blended).Mul(elapsedFraction)
	interest := interestDec.TruncateInt()

	position.LastAccruedTime = now
	if !interest.IsPositive() {
		return math.ZeroInt(), nil
	}

	position.CreditAmount = position.CreditAmount.Add(interest)

	var toRevenue math.Int
	if basket.RevToStakers {
		toRevenue = interest
	} else {
		toRevenue = math.ZeroInt()
	}
	basket.PendingRevenue = basket.PendingRevenue.Add(toRevenue)

	basket.CreditLastAccrued = now

	if f, ferr := interestDec.Float64(); ferr == nil {
		k.metrics.creditMinted.Add(f)
	}
	if f, ferr := basket.PendingRevenue.ToLegacyDec().Float64(); ferr == nil {
		k.metrics.pendingRevenue.Set(f)
	}

	return interest, nil
}

// AccrueBasketRedemptionPrice advances the basket's redemption price controller
// over elapsed time using the current market twap of the credit asset (§4.B,
// §4.D). Called alongside AccruePosition so every mutation observes the
// latest credit_price.
func (k Keeper) AccrueBasketRedemptionPrice(ctx sdk.Context, basket *types.Basket) error {
	now := ctx.BlockTime().Unix()
	elapsed := now - basket.CreditLastAccrued
	if basket.CreditLastAccrued == 0 {
		basket.CreditLastAccrued = now
		return nil
	}
	if elapsed <= 0 {
		return nil
	}

	price, err := k.PriceOf(ctx, basket.CreditAsset.Info)
	if err != nil {
		// Redemption drift is best-effort: a stale or unavailable credit-asset
		// market quote must not block the primary debt flow (§7 propagation policy).
		k.Logger(ctx).Error("redemption price accrual skipped: market twap unavailable", "error", err)
		basket.CreditLastAccrued = now
		return nil
	}

	cfg := k.GetConfig(ctx)
	basket.CreditPrice = AdvanceRedemptionPrice(*basket, price.Price, cfg.CPCMultiplier, basket.CPCMarginOfError, elapsed)
	basket.CreditLastAccrued = now
	if f, ferr := basket.CreditPrice.Float64(); ferr == nil {
		k.metrics.creditPrice.Set(f)
	}
	return nil
}
