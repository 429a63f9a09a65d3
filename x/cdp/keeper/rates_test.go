package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/mintvault/cdp-chain/x/cdp/keeper"
	"github.com/mintvault/cdp-chain/x/cdp/types"
)

func TestComputeBorrowRateBelowUtilizationIsLinear(t *testing.T) {
	rate := keeper.ComputeBorrowRate(math.LegacyNewDecWithPrec(10, 2), math.LegacyNewDecWithPrec(50, 2), math.LegacyNewDec(3), false)
	require.True(t, rate.Equal(math.LegacyNewDecWithPrec(5, 2)))
}

func TestComputeBorrowRateAboveUtilizationUsesSlopeMultiplier(t *testing.T) {
	baseRate := math.LegacyNewDecWithPrec(10, 2)
	rate := keeper.ComputeBorrowRate(baseRate, math.LegacyNewDecWithPrec(150, 2), math.LegacyNewDec(3), false)
	// excess = 0.5, rate = base + excess*base*slope = 0.10 + 0.5*0.10*3 = 0.25
	require.True(t, rate.Equal(math.LegacyNewDecWithPrec(25, 2)))
}

func TestComputeBorrowRateHikeRatesDoublesResult(t *testing.T) {
	baseRate := math.LegacyNewDecWithPrec(10, 2)
	rate := keeper.ComputeBorrowRate(baseRate, math.LegacyNewDecWithPrec(50, 2), math.LegacyNewDec(3), true)
	require.True(t, rate.Equal(math.LegacyNewDecWithPrec(10, 2)))
}

func TestComputeRedemptionDriftWithinMarginIsZero(t *testing.T) {
	drift := keeper.ComputeRedemptionDrift(
		math.LegacyNewDecWithPrec(101, 2), // twap 1.01
		math.LegacyOneDec(),               // credit_price 1.00
		math.LegacyOneDec(),
		math.LegacyNewDecWithPrec(2, 2), // 2% margin
	)
	require.True(t, drift.IsZero())
}

func TestComputeRedemptionDriftOutsideMarginIsProportional(t *testing.T) {
	drift := keeper.ComputeRedemptionDrift(
		math.LegacyNewDecWithPrec(110, 2), // twap 1.10
		math.LegacyOneDec(),               // credit_price 1.00
		math.LegacyOneDec(),
		math.LegacyNewDecWithPrec(2, 2), // 2% margin
	)
	// deviation = 0.10, outside 2% band, drift = 0.10 * 1.0
	require.True(t, drift.Equal(math.LegacyNewDecWithPrec(10, 2)))
}

func TestAdvanceRedemptionPriceClampsNegativeDriftAtOneUnlessEnabled(t *testing.T) {
	basket := types.Basket{
		CreditPrice:   math.LegacyOneDec(),
		NegativeRates: false,
	}
	// twap below credit_price would otherwise drive credit_price under 1.0
	next := keeper.AdvanceRedemptionPrice(basket, math.LegacyNewDecWithPrec(90, 2), math.LegacyOneDec(), math.LegacyNewDecWithPrec(1, 2), 3600)
	require.True(t, next.Equal(math.LegacyOneDec()))
}

func TestAdvanceRedemptionPriceAllowsNegativeDriftWhenEnabled(t *testing.T) {
	basket := types.Basket{
		CreditPrice:   math.LegacyOneDec(),
		NegativeRates: true,
	}
	next := keeper.AdvanceRedemptionPrice(basket, math.LegacyNewDecWithPrec(90, 2), math.LegacyOneDec(), math.LegacyNewDecWithPrec(1, 2), 3600)
	require.True(t, next.LT(math.LegacyOneDec()))
}

func TestAdvanceRedemptionPriceZeroElapsedIsNoOp(t *testing.T) {
	basket := types.Basket{CreditPrice: math.LegacyNewDecWithPrec(105, 2)}
	next := keeper.AdvanceRedemptionPrice(basket, math.LegacyNewDecWithPrec(200, 2), math.LegacyOneDec(), math.LegacyZeroDec(), 0)
	require.True(t, next.Equal(basket.CreditPrice))
}
