package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mintvault/cdp-chain/x/cdp/types"
)

// ComputeBorrowRate is the pure two-slope per-asset borrow rate (§4.B): below
// 100% utilization of the asset's supply cap the rate is linear with slope
// r_base; above it, linear with slope r_base * rate_slope_multiplier. A
// hike_rates asset additionally doubles. Exposed standalone (no KVStore
// access) so it is directly unit-testable, mirroring how price_oracle.go
// separates pure aggregation math from store I/O.
func ComputeBorrowRate(baseRate, utilization, rateSlopeMultiplier math.LegacyDec, hikeRates bool) math.LegacyDec {
	var rate math.LegacyDec
	one := math.LegacyOneDec()
	if utilization.LTE(one) {
		rate = baseRate.Mul(utilization)
	} else {
		excess := utilization.Sub(one)
		rate = baseRate.Add(excess.Mul(baseRate).Mul(rateSlopeMultiplier))
	}
	if hikeRates {
		rate = rate.MulInt64(2)
	}
	return rate
}

// ComputeRedemptionDrift is the pure proportional controller on the fractional
// deviation between market twap and the redemption price (§4.B). marginOfError
// is a symmetric dead-band: deviations within the band produce zero drift.
func ComputeRedemptionDrift(marketTWAP, creditPrice, cpcMultiplier, marginOfError math.LegacyDec) math.LegacyDec {
	if creditPrice.IsZero() {
		return math.LegacyZeroDec()
	}
	deviation := marketTWAP.Sub(creditPrice).Quo(creditPrice)
	if deviation.Abs().LTE(marginOfError) {
		return math.LegacyZeroDec()
	}
	return deviation.Mul(cpcMultiplier)
}

// assetUtilization returns a cAsset's current share of its configured supply
// cap ratio, i.e. (currentRatio / ratioCap). A cap-less or zero-cap asset is
// treated as fully utilized to avoid a divide-by-zero producing an
// artificially cheap rate.
func (k Keeper) assetUtilization(basket types.Basket, info types.AssetInfo) math.LegacyDec {
	idx := basket.FindSupplyCap(info)
	if idx < 0 || basket.CollateralSupplyCaps[idx].RatioCap.IsZero() {
		return math.LegacyOneDec()
	}
	cap := basket.CollateralSupplyCaps[idx]
	return cap.CurrentRatio.Quo(cap.RatioCap)
}

// BorrowRateFor computes the live borrow rate for a collateral entry against
// the current basket state.
func (k Keeper) BorrowRateFor(ctx sdk.Context, basket types.Basket, cAsset types.CAsset) math.LegacyDec {
	cfg := k.GetConfig(ctx)
	utilization := k.assetUtilization(basket, cAsset.Asset.Info)
	return ComputeBorrowRate(basket.BaseInterestRate, utilization, cfg.RateSlopeMultiplier, cAsset.HikeRates)
}

// AdvanceRedemptionPrice advances credit_price by the controller's per-second
// drift over elapsedSeconds, clamping growth from below at 1.0 unless
// negative_rates is enabled (§4.B, invariant 5).
func AdvanceRedemptionPrice(basket types.Basket, marketTWAP math.LegacyDec, cpcMultiplier, marginOfError math.LegacyDec, elapsedSeconds int64) math.LegacyDec {
	if elapsedSeconds <= 0 {
		return basket.CreditPrice
	}
	drift := ComputeRedemptionDrift(marketTWAP, basket.CreditPrice, cpcMultiplier, marginOfError)
	delta := drift.MulInt64(elapsedSeconds)
	next := basket.CreditPrice.Add(delta)
	if !basket.NegativeRates && next.LT(math.LegacyOneDec()) && basket.CreditPrice.GTE(math.LegacyOneDec()) {
		// Negative drift is clamped: credit_price may not cross below 1.0 from above.
		next = math.LegacyOneDec()
	}
	if !basket.NegativeRates && basket.CreditPrice.LT(math.LegacyOneDec()) && next.LT(basket.CreditPrice) {
		// Already below 1.0: never allow further negative drift either.
		next = basket.CreditPrice
	}
	if next.IsZero() || next.IsNegative() {
		next = basket.CreditPrice // credit_price > 0 always (invariant 5)
	}
	return next
}
