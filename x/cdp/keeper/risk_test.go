package keeper_test

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mintvault/cdp-chain/x/cdp/types"
)

// TestDepositRejectsAssetSupplyCapBreach exercises the asset-supply cap path
// through UpdateBasketTally: uatom is capped at 50% of basket value, ustake
// is left at the unbounded default so it can carry a baseline basket value
// for the ratio denominator, the same shape as the spec's cap-breach
// scenario (basket already holds value in one asset, a deposit of another
// pushes its share over the cap).
func (s *KeeperTestSuite) TestDepositRejectsAssetSupplyCapBreach() {
	owner := sdk.AccAddress([]byte("nadia_______________"))
	s.Require().NoError(s.keeper.CreateBasket(
		s.ctx, owner,
		[]types.CAsset{
			{
				Asset:        types.NewAsset(types.NewNativeAssetInfo("uatom"), math.ZeroInt()),
				MaxBorrowLTV: math.LegacyNewDecWithPrec(6, 1),
				MaxLTV:       math.LegacyNewDecWithPrec(8, 1),
				RateIndex:    math.LegacyOneDec(),
			},
			{
				Asset:        types.NewAsset(types.NewNativeAssetInfo("ustake"), math.ZeroInt()),
				MaxBorrowLTV: math.LegacyNewDecWithPrec(6, 1),
				MaxLTV:       math.LegacyNewDecWithPrec(8, 1),
				RateIndex:    math.LegacyOneDec(),
			},
		},
		types.NewAsset(types.NewNativeAssetInfo("ucredit"), math.ZeroInt()),
		math.LegacyOneDec(),
		math.LegacyNewDecWithPrec(2, 2),
		"",
	))
	basket, ok := s.keeper.GetBasket(s.ctx)
	s.Require().True(ok)
	basket.CollateralSupplyCaps[0].RatioCap = math.LegacyNewDecWithPrec(5, 1) // uatom capped at 50%
	basket.CollateralSupplyCaps[0].DebtCap = math.NewInt(1_000_000_000_000)
	basket.CollateralSupplyCaps[1].DebtCap = math.NewInt(1_000_000_000_000)
	s.Require().NoError(s.keeper.SetBasket(s.ctx, basket))

	s.setPrice("uatom", math.LegacyNewDec(10))
	s.setPrice("ustake", math.LegacyNewDec(10))
	s.bank.setBalance(owner, sdk.NewCoins(
		sdk.NewCoin("uatom", math.NewInt(1_000_000)),
		sdk.NewCoin("ustake", math.NewInt(1_000_000)),
	))

	// baseline: ustake carries 1000 of basket value, uatom still at zero.
	_, err := s.keeper.Deposit(s.ctx, owner, 0, "", []types.Asset{
		types.NewAsset(types.NewNativeAssetInfo("ustake"), math.NewInt(100)),
	})
	s.Require().NoError(err)

	// uatom at 600 of 1600 total (37.5%) stays under the 50% cap.
	_, err = s.keeper.Deposit(s.ctx, owner, 0, "", []types.Asset{
		types.NewAsset(types.NewNativeAssetInfo("uatom"), math.NewInt(60)),
	})
	s.Require().NoError(err)

	// a further 400 of uatom pushes its tracked share past 50%.
	_, err = s.keeper.Deposit(s.ctx, owner, 0, "", []types.Asset{
		types.NewAsset(types.NewNativeAssetInfo("uatom"), math.NewInt(40)),
	})
	s.Require().ErrorIs(err, types.ErrCapBreach)
}
