package keeper_test

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mintvault/cdp-chain/x/cdp/types"
)

func (s *KeeperTestSuite) TestDepositOpensPositionAndAccruesSubsequentDeposits() {
	owner := sdk.AccAddress([]byte("alice_______________"))
	s.createBasket(owner, "uatom", "ucredit", math.LegacyOneDec())
	s.setPrice("uatom", math.LegacyNewDec(10))
	s.bank.setBalance(owner, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(1_000_000))))

	id, err := s.keeper.Deposit(s.ctx, owner, 0, "", []types.Asset{
		types.NewAsset(types.NewNativeAssetInfo("uatom"), math.NewInt(100_000)),
	})
	s.Require().NoError(err)
	s.Require().EqualValues(1, id)

	position, ok := s.keeper.GetPosition(s.ctx, owner.String(), id)
	s.Require().True(ok)
	s.Require().Len(position.CollateralAssets, 1)
	s.Require().True(position.CollateralAssets[0].Asset.Amount.Equal(math.NewInt(100_000)))

	// second deposit into the same position adds to the existing collateral entry
	_, err = s.keeper.Deposit(s.ctx, owner, id, "", []types.Asset{
		types.NewAsset(types.NewNativeAssetInfo("uatom"), math.NewInt(50_000)),
	})
	s.Require().NoError(err)

	position, ok = s.keeper.GetPosition(s.ctx, owner.String(), id)
	s.Require().True(ok)
	s.Require().True(position.CollateralAssets[0].Asset.Amount.Equal(math.NewInt(150_000)))
}

func (s *KeeperTestSuite) TestDepositRejectsUnregisteredCollateral() {
	owner := sdk.AccAddress([]byte("bob_________________"))
	s.createBasket(owner, "uatom", "ucredit", math.LegacyOneDec())
	s.bank.setBalance(owner, sdk.NewCoins(sdk.NewCoin("uosmo", math.NewInt(1_000_000))))

	_, err := s.keeper.Deposit(s.ctx, owner, 0, "", []types.Asset{
		types.NewAsset(types.NewNativeAssetInfo("uosmo"), math.NewInt(100_000)),
	})
	s.Require().ErrorIs(err, types.ErrInvalidAsset)
}

func (s *KeeperTestSuite) TestIncreaseDebtRespectsAvgMaxLTV() {
	owner := sdk.AccAddress([]byte("carol_______________"))
	s.createBasket(owner, "uatom", "ucredit", math.LegacyOneDec())
	s.setPrice("uatom", math.LegacyNewDec(10))
	s.bank.setBalance(owner, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(1_000_000))))

	id, err := s.keeper.Deposit(s.ctx, owner, 0, "", []types.Asset{
		types.NewAsset(types.NewNativeAssetInfo("uatom"), math.NewInt(100_000)),
	})
	s.Require().NoError(err)
	// collateral value = 100_000 * 10 = 1_000_000, max_ltv = 0.8 -> 800_000 ceiling

	_, err = s.keeper.IncreaseDebt(s.ctx, owner, id, math.NewInt(900_000), math.LegacyDec{}, "")
	s.Require().ErrorIs(err, types.ErrPositionInsolvent)

	credit, err := s.keeper.IncreaseDebt(s.ctx, owner, id, math.NewInt(500_000), math.LegacyDec{}, "")
	s.Require().NoError(err)
	s.Require().True(credit.Equal(math.NewInt(500_000)))
	s.Require().True(s.proxy.minted[owner.String()].Equal(math.NewInt(500_000)))
}

func (s *KeeperTestSuite) TestRepayRefundsExcessAndClosesEmptyPosition() {
	owner := sdk.AccAddress([]byte("dave________________"))
	s.createBasket(owner, "uatom", "ucredit", math.LegacyOneDec())
	s.setPrice("uatom", math.LegacyNewDec(10))
	s.bank.setBalance(owner, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(1_000_000))))

	id, err := s.keeper.Deposit(s.ctx, owner, 0, "", []types.Asset{
		types.NewAsset(types.NewNativeAssetInfo("uatom"), math.NewInt(100_000)),
	})
	s.Require().NoError(err)
	_, err = s.keeper.IncreaseDebt(s.ctx, owner, id, math.NewInt(300_000), math.LegacyDec{}, "")
	s.Require().NoError(err)

	remaining, err := s.keeper.Repay(s.ctx, owner, id, "", math.NewInt(500_000), "")
	s.Require().NoError(err)
	s.Require().True(remaining.IsZero())
	s.Require().True(s.proxy.burned[owner.String()].Equal(math.NewInt(300_000)))

	// position still holds collateral, so it is not deleted
	_, ok := s.keeper.GetPosition(s.ctx, owner.String(), id)
	s.Require().True(ok)
}

func (s *KeeperTestSuite) TestWithdrawEmptiesAndDeletesPosition() {
	owner := sdk.AccAddress([]byte("erin________________"))
	s.createBasket(owner, "uatom", "ucredit", math.LegacyOneDec())
	s.setPrice("uatom", math.LegacyNewDec(10))
	s.bank.setBalance(owner, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(1_000_000))))

	id, err := s.keeper.Deposit(s.ctx, owner, 0, "", []types.Asset{
		types.NewAsset(types.NewNativeAssetInfo("uatom"), math.NewInt(100_000)),
	})
	s.Require().NoError(err)

	err = s.keeper.Withdraw(s.ctx, owner, id, []types.Asset{
		types.NewAsset(types.NewNativeAssetInfo("uatom"), math.NewInt(100_000)),
	}, "")
	s.Require().NoError(err)

	_, ok := s.keeper.GetPosition(s.ctx, owner.String(), id)
	s.Require().False(ok)
}

func (s *KeeperTestSuite) TestClosePositionBurnsDebtAndMintsRemainderToSendTo() {
	owner := sdk.AccAddress([]byte("gabe________________"))
	recipient := sdk.AccAddress([]byte("holly_______________"))
	s.createBasket(owner, "uatom", "ucredit", math.LegacyOneDec())
	s.setPrice("uatom", math.LegacyNewDec(10))
	s.bank.setBalance(owner, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(1_000_000))))

	id, err := s.keeper.Deposit(s.ctx, owner, 0, "", []types.Asset{
		types.NewAsset(types.NewNativeAssetInfo("uatom"), math.NewInt(500_000)),
	})
	s.Require().NoError(err)
	_, err = s.keeper.IncreaseDebt(s.ctx, owner, id, math.NewInt(50_000), math.LegacyDec{}, "")
	s.Require().NoError(err)

	// the mock router swaps 1:1 on amount: 500_000 uatom swapped yields
	// 500_000 credit-equivalent proceeds, far more than the 50_000 owed.
	burned, refunded, err := s.keeper.ClosePosition(s.ctx, owner.String(), id, math.LegacyZeroDec(), recipient.String())
	s.Require().NoError(err)
	s.Require().True(burned.Equal(math.LegacyNewDec(50_000)))
	s.Require().Len(refunded, 1)
	s.Require().True(refunded[0].Amount.Equal(math.NewInt(450_000)))

	s.Require().True(s.proxy.burned[owner.String()].Equal(math.NewInt(50_000)))
	s.Require().True(s.proxy.minted[recipient.String()].Equal(math.NewInt(450_000)))

	_, ok := s.keeper.GetPosition(s.ctx, owner.String(), id)
	s.Require().False(ok)
}

func (s *KeeperTestSuite) TestClosePositionRefundsRemainderToOwnerWhenSendToEmpty() {
	owner := sdk.AccAddress([]byte("ivy_________________"))
	s.createBasket(owner, "uatom", "ucredit", math.LegacyOneDec())
	s.setPrice("uatom", math.LegacyNewDec(10))
	s.bank.setBalance(owner, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(1_000_000))))

	id, err := s.keeper.Deposit(s.ctx, owner, 0, "", []types.Asset{
		types.NewAsset(types.NewNativeAssetInfo("uatom"), math.NewInt(500_000)),
	})
	s.Require().NoError(err)
	_, err = s.keeper.IncreaseDebt(s.ctx, owner, id, math.NewInt(50_000), math.LegacyDec{}, "")
	s.Require().NoError(err)

	_, refunded, err := s.keeper.ClosePosition(s.ctx, owner.String(), id, math.LegacyZeroDec(), "")
	s.Require().NoError(err)
	s.Require().Len(refunded, 1)
	s.Require().True(s.proxy.minted[owner.String()].Equal(math.NewInt(50_000 + 450_000)))
}

func (s *KeeperTestSuite) TestWithdrawRejectsBelowMaxLTV() {
	owner := sdk.AccAddress([]byte("frank_______________"))
	s.createBasket(owner, "uatom", "ucredit", math.LegacyOneDec())
	s.setPrice("uatom", math.LegacyNewDec(10))
	s.bank.setBalance(owner, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(1_000_000))))

	id, err := s.keeper.Deposit(s.ctx, owner, 0, "", []types.Asset{
		types.NewAsset(types.NewNativeAssetInfo("uatom"), math.NewInt(100_000)),
	})
	s.Require().NoError(err)
	_, err = s.keeper.IncreaseDebt(s.ctx, owner, id, math.NewInt(700_000), math.LegacyDec{}, "")
	s.Require().NoError(err)

	err = s.keeper.Withdraw(s.ctx, owner, id, []types.Asset{
		types.NewAsset(types.NewNativeAssetInfo("uatom"), math.NewInt(50_000)),
	}, "")
	s.Require().ErrorIs(err, types.ErrPositionInsolvent)
}
