package keeper_test

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mintvault/cdp-chain/x/cdp/types"
)

// openInsolventPosition deposits collateral, borrows to the max, then drops
// the oracle price so the position becomes undercollateralized relative to
// avg_max_LTV without ever going through a legitimate borrow above it.
func (s *KeeperTestSuite) openInsolventPosition(owner sdk.AccAddress) uint64 {
	s.createBasket(owner, "uatom", "ucredit", math.LegacyOneDec())
	s.setPrice("uatom", math.LegacyNewDec(10))
	s.bank.setBalance(owner, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(1_000_000))))

	id, err := s.keeper.Deposit(s.ctx, owner, 0, "", []types.Asset{
		types.NewAsset(types.NewNativeAssetInfo("uatom"), math.NewInt(100_000)),
	})
	s.Require().NoError(err)
	// collateral value = 1_000_000, max_ltv 0.8 -> borrow ceiling 800_000
	_, err = s.keeper.IncreaseDebt(s.ctx, owner, id, math.NewInt(700_000), math.LegacyDec{}, "")
	s.Require().NoError(err)

	// price craters: collateral value drops to 300_000, well under the 700_000 owed
	s.setPrice("uatom", math.LegacyNewDec(3))
	return id
}

func (s *KeeperTestSuite) TestLiquidateRejectsSolventPosition() {
	owner := sdk.AccAddress([]byte("grace_______________"))
	s.createBasket(owner, "uatom", "ucredit", math.LegacyOneDec())
	s.setPrice("uatom", math.LegacyNewDec(10))
	s.bank.setBalance(owner, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(1_000_000))))

	id, err := s.keeper.Deposit(s.ctx, owner, 0, "", []types.Asset{
		types.NewAsset(types.NewNativeAssetInfo("uatom"), math.NewInt(100_000)),
	})
	s.Require().NoError(err)
	_, err = s.keeper.IncreaseDebt(s.ctx, owner, id, math.NewInt(100_000), math.LegacyDec{}, "")
	s.Require().NoError(err)

	_, err = s.keeper.Liquidate(s.ctx, owner.String(), id, owner.String())
	s.Require().ErrorIs(err, types.ErrPositionSolvent)
}

func (s *KeeperTestSuite) TestLiquidateFullyFilledByBidQueueReachesTerminal() {
	owner := sdk.AccAddress([]byte("heidi_______________"))
	id := s.openInsolventPosition(owner)

	// bid queue absorbs the entire shortfall in one fill
	s.bidQ.repayFraction = math.LegacyOneDec()
	s.bidQ.held = math.NewInt(100_000)

	stage, err := s.keeper.Liquidate(s.ctx, owner.String(), id, owner.String())
	s.Require().NoError(err)
	s.Require().Equal(types.StageTerminal, stage)

	position, ok := s.keeper.GetPosition(s.ctx, owner.String(), id)
	if ok {
		s.Require().False(position.BadDebt)
	}
}

func (s *KeeperTestSuite) TestLiquidateFallsThroughToBadDebtWhenCollateralExhausted() {
	owner := sdk.AccAddress([]byte("ivan________________"))
	id := s.openInsolventPosition(owner)

	// neither collaborator fills: bid queue declines, stability pool reports
	// the whole offer as leftover (no fill)
	s.bidQ.repayFraction = math.LegacyZeroDec()
	s.sp.leftoverFraction = math.LegacyOneDec()

	stage, err := s.keeper.Liquidate(s.ctx, owner.String(), id, owner.String())
	s.Require().NoError(err)
	s.Require().Equal(types.StageTerminal, stage)
	s.Require().False(s.keeper.IsLiquidationInFlight(s.ctx, owner.String(), id))

	// the sell wall leg's router swap is 1:1 on amount, not value, so it only
	// retires a fraction of the shortfall; the rest falls to the debt auction
	// with the position left flagged bad_debt=true
	s.Require().Len(s.debtAuct.startedFor, 1)
	s.Require().EqualValues(id, s.debtAuct.startedFor[0])
	s.Require().True(s.debtAuct.lastAsset.Amount.IsPositive())

	position, ok := s.keeper.GetPosition(s.ctx, owner.String(), id)
	s.Require().True(ok)
	s.Require().True(position.BadDebt)
	s.Require().Len(position.CollateralAssets, 1)
	s.Require().True(position.CollateralAssets[0].Asset.Amount.IsZero())
}

func (s *KeeperTestSuite) TestLiquidatePaysCallerBountyAndProtocolFeeThroughTokenProxy() {
	owner := sdk.AccAddress([]byte("judy________________"))
	caller := sdk.AccAddress([]byte("kim_________________"))
	id := s.openInsolventPosition(owner)

	// bid queue absorbs everything requested in one fill, which now includes
	// the caller bounty and protocol fee layered on top of shortfall D.
	s.bidQ.repayFraction = math.LegacyOneDec()
	s.bidQ.held = math.NewInt(100_000)

	mintedBefore := s.proxy.minted[owner.String()]

	stage, err := s.keeper.Liquidate(s.ctx, owner.String(), id, caller.String())
	s.Require().NoError(err)
	s.Require().Equal(types.StageTerminal, stage)

	// collateral value 300_000, avg_borrow_LTV 0.6 -> target 180_000, debt
	// 700_000 -> shortfall D = 520_000; caller_fee_percent 1%, liq_fee_percent
	// 2% -> caller bounty 5_200, protocol fee 10_400.
	s.Require().True(s.proxy.burned[owner.String()].Equal(math.NewInt(520_000)))
	s.Require().True(s.proxy.minted[caller.String()].Equal(math.NewInt(5_200)))
	s.Require().True(s.proxy.minted[owner.String()].Equal(mintedBefore))

	basket, ok := s.keeper.GetBasket(s.ctx)
	s.Require().True(ok)
	s.Require().True(basket.PendingRevenue.Equal(math.NewInt(10_400)))

	position, ok := s.keeper.GetPosition(s.ctx, owner.String(), id)
	s.Require().True(ok)
	s.Require().False(position.BadDebt)
	s.Require().True(position.CreditAmount.Equal(math.NewInt(180_000)))
}

func (s *KeeperTestSuite) TestLiquidateClearsHikeRatesOnceCollateralFullyRepaid() {
	owner := sdk.AccAddress([]byte("yara________________"))
	s.createBasket(owner, "uatom", "ucredit", math.LegacyOneDec())
	s.setPrice("uatom", math.LegacyNewDec(10))
	s.bank.setBalance(owner, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(1_000_000))))

	basket, ok := s.keeper.GetBasket(s.ctx)
	s.Require().True(ok)
	basket.CollateralTypes[0].HikeRates = true
	s.Require().NoError(s.keeper.SetBasket(s.ctx, basket))

	id, err := s.keeper.Deposit(s.ctx, owner, 0, "", []types.Asset{
		types.NewAsset(types.NewNativeAssetInfo("uatom"), math.NewInt(100_000)),
	})
	s.Require().NoError(err)
	_, err = s.keeper.IncreaseDebt(s.ctx, owner, id, math.NewInt(700_000), math.LegacyDec{}, "")
	s.Require().NoError(err)

	position, ok := s.keeper.GetPosition(s.ctx, owner.String(), id)
	s.Require().True(ok)
	s.Require().True(position.CollateralAssets[0].HikeRates)

	// price craters the same way openInsolventPosition does
	s.setPrice("uatom", math.LegacyNewDec(3))
	s.bidQ.repayFraction = math.LegacyZeroDec()
	s.sp.leftoverFraction = math.LegacyOneDec()

	stage, err := s.keeper.Liquidate(s.ctx, owner.String(), id, owner.String())
	s.Require().NoError(err)
	s.Require().Equal(types.StageTerminal, stage)

	// the sell wall leg fully zeros this collateral entry's held amount, so
	// its hike flag must not survive into whatever state remains
	position, ok = s.keeper.GetPosition(s.ctx, owner.String(), id)
	s.Require().True(ok)
	s.Require().True(position.CollateralAssets[0].Asset.Amount.IsZero())
	s.Require().False(position.CollateralAssets[0].HikeRates)
}
