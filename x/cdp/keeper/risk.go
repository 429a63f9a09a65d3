package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mintvault/cdp-chain/x/cdp/types"
)

// AssertBasketAssets validates that every asset in assets is registered in the
// basket, rejects duplicate entries, and allows zero-amount stakes only when
// creatingPosition is true (§4.C).
func (k Keeper) AssertBasketAssets(ctx sdk.Context, basket types.Basket, assets []types.CAsset, creatingPosition bool) error {
	seen := make(map[string]bool, len(assets))
	for _, a := range assets {
		key := a.Asset.Info.String()
		if seen[key] {
			return types.ErrDuplicateAsset.Wrapf("%s", key)
		}
		seen[key] = true

		if basket.FindCollateralType(a.Asset.Info) < 0 {
			return types.ErrInvalidAsset.Wrapf("%s is not registered in the basket", key)
		}
		if !creatingPosition && a.Asset.Amount.IsZero() {
			return types.ErrZeroAmount.Wrapf("%s", key)
		}
	}
	return nil
}

// ComputeAvgLTVs returns the position's value-weighted average borrow LTV,
// average max LTV, and total collateral value (§4.C). LP-share entries are
// priced through their underlyings by ValueOf; the LTV bounds used for
// weighting are always the position's own recorded cAsset bounds, never the
// underlyings'.
func (k Keeper) ComputeAvgLTVs(ctx sdk.Context, position types.Position) (avgBorrowLTV, avgMaxLTV math.LegacyDec, totalValue math.LegacyDec, err error) {
	totalValue = math.LegacyZeroDec()
	weightedBorrow := math.LegacyZeroDec()
	weightedMax := math.LegacyZeroDec()

	for _, cAsset := range position.CollateralAssets {
		value, verr := k.ValueOf(ctx, cAsset)
		if verr != nil {
			return math.LegacyDec{}, math.LegacyDec{}, math.LegacyDec{}, verr
		}
		totalValue = totalValue.Add(value)
		weightedBorrow = weightedBorrow.Add(value.Mul(cAsset.MaxBorrowLTV))
		weightedMax = weightedMax.Add(value.Mul(cAsset.MaxLTV))
	}

	if totalValue.IsZero() {
		return math.LegacyZeroDec(), math.LegacyZeroDec(), math.LegacyZeroDec(), nil
	}
	return weightedBorrow.Quo(totalValue), weightedMax.Quo(totalValue), totalValue, nil
}

// basketTallyDelta is a signed per-asset value change to apply to the basket's
// running supply-cap totals.
type basketTallyDelta struct {
	Info  types.AssetInfo
	Value math.LegacyDec // may be negative for a withdrawal/repay-side subtraction
	Debt  math.Int       // signed credit delta attributable to this asset's share
}

// UpdateBasketTally applies added/subtracted value deltas to the basket's
// per-asset and multi-asset supply-cap running totals and, when enforceCaps is
// true, rejects the mutation if any cap is breached (§4.C). enforceCaps=false
// is used during forced sales and liquidations, where caps must not block an
// already-committed unwind.
func (k Keeper) UpdateBasketTally(ctx sdk.Context, basket *types.Basket, deltas []basketTallyDelta, enforceCaps bool) error {
	basketTotalValue, err := k.basketTotalValue(ctx, *basket)
	if err != nil {
		return err
	}

	for _, d := range deltas {
		if basket.FindCollateralType(d.Info) < 0 {
			continue
		}
		capIdx := basket.FindSupplyCap(d.Info)
		if capIdx < 0 {
			continue
		}
		cap := &basket.CollateralSupplyCaps[capIdx]
		if !d.Debt.IsNil() && !d.Debt.IsZero() {
			cap.DebtTotal = cap.DebtTotal.Add(d.Debt)
		}
		if basketTotalValue.IsPositive() {
			cap.CurrentRatio = cap.CurrentRatio.Add(d.Value.Quo(basketTotalValue))
			if cap.CurrentRatio.IsNegative() {
				cap.CurrentRatio = math.LegacyZeroDec()
			}
		}

		if enforceCaps {
			if cap.RatioCap.IsPositive() && cap.CurrentRatio.GT(cap.RatioCap) {
				return types.ErrCapBreach.Wrapf("asset-supply cap breached for %s", d.Info)
			}
			if cap.UseDebtCap {
				floor := k.debtCapFloor(ctx, *basket, *cap, basketTotalValue)
				if cap.DebtTotal.GT(floor) {
					return types.ErrCapBreach.Wrapf("debt cap breached for %s", d.Info)
				}
			}
		}
	}

	if enforceCaps {
		for _, m := range basket.MultiAssetSupplyCaps {
			combined := math.LegacyZeroDec()
			for _, a := range m.AssetSet {
				if capIdx := basket.FindSupplyCap(a); capIdx >= 0 {
					combined = combined.Add(basket.CollateralSupplyCaps[capIdx].CurrentRatio)
				}
			}
			if m.RatioCap.IsPositive() && combined.GT(m.RatioCap) {
				return types.ErrCapBreach.Wrapf("multi-asset cap breached")
			}
		}
	}
	return nil
}

// basketTotalValue sums the value of every registered collateral type.
func (k Keeper) basketTotalValue(ctx sdk.Context, basket types.Basket) (math.LegacyDec, error) {
	total := math.LegacyZeroDec()
	for _, c := range basket.CollateralTypes {
		v, err := k.ValueOf(ctx, c)
		if err != nil {
			return math.LegacyDec{}, err
		}
		total = total.Add(v)
	}
	return total, nil
}

// debtCapFloor computes an asset's debt cap as a proportional share of total
// basket debt capacity, floored by base_debt_cap_multiplier * debt_minimum
// (§4.C). Debt capacity beyond the proportional share is additionally
// permitted up to the stability pool's reported liquidity when use_debt_cap
// is enabled for the asset.
func (k Keeper) debtCapFloor(ctx sdk.Context, basket types.Basket, cap types.SupplyCap, basketTotalValue math.LegacyDec) math.Int {
	cfg := k.GetConfig(ctx)
	floor := cfg.DebtMinimum.ToLegacyDec().Mul(cfg.BaseDebtCapMultiplier)

	proportional := floor
	if basketTotalValue.IsPositive() && cap.RatioCap.IsPositive() {
		proportional = cap.RatioCap.Mul(basketTotalValue)
	}

	liquidity := k.CreditLiquidity(ctx)
	bound := proportional
	if liquidity.IsPositive() {
		bound = bound.Add(liquidity.ToLegacyDec())
	}
	if bound.LT(floor) {
		bound = floor
	}
	return bound.TruncateInt()
}
