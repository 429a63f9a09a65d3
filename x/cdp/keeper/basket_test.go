package keeper_test

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mintvault/cdp-chain/x/cdp/types"
)

func (s *KeeperTestSuite) TestCreateBasketIsOneShot() {
	owner := sdk.AccAddress([]byte("julia_______________"))
	s.createBasket(owner, "uatom", "ucredit", math.LegacyOneDec())

	err := s.keeper.CreateBasket(
		s.ctx, owner,
		[]types.CAsset{{
			Asset:        types.NewAsset(types.NewNativeAssetInfo("uosmo"), math.ZeroInt()),
			MaxBorrowLTV: math.LegacyNewDecWithPrec(6, 1),
			MaxLTV:       math.LegacyNewDecWithPrec(8, 1),
			RateIndex:    math.LegacyOneDec(),
		}},
		types.NewAsset(types.NewNativeAssetInfo("ucredit"), math.ZeroInt()),
		math.LegacyOneDec(),
		math.LegacyNewDecWithPrec(2, 2),
		"",
	)
	s.Require().ErrorIs(err, types.ErrBasketAlreadyExists)
}

func (s *KeeperTestSuite) TestCreateBasketRejectsNonOwner() {
	owner := sdk.AccAddress([]byte("kevin_______________"))
	other := sdk.AccAddress([]byte("laura_______________"))
	s.createBasket(owner, "uatom", "ucredit", math.LegacyOneDec())

	err := s.keeper.CreateBasket(
		s.ctx, other,
		[]types.CAsset{{Asset: types.NewAsset(types.NewNativeAssetInfo("uosmo"), math.ZeroInt())}},
		types.NewAsset(types.NewNativeAssetInfo("ucredit"), math.ZeroInt()),
		math.LegacyOneDec(), math.LegacyNewDecWithPrec(2, 2), "",
	)
	s.Require().ErrorIs(err, types.ErrUnauthorized)
}

func (s *KeeperTestSuite) TestEditBasketUpdatesSelectedFields() {
	owner := sdk.AccAddress([]byte("mike________________"))
	s.createBasket(owner, "uatom", "ucredit", math.LegacyOneDec())

	newRate := math.LegacyNewDecWithPrec(5, 2)
	frozen := true
	err := s.keeper.EditBasket(s.ctx, owner, nil, nil, newRate, nil, &frozen, nil)
	s.Require().NoError(err)

	basket, ok := s.keeper.GetBasket(s.ctx)
	s.Require().True(ok)
	s.Require().True(basket.BaseInterestRate.Equal(newRate))
	s.Require().True(basket.Frozen)
	// fields not touched by this call keep their prior values
	s.Require().False(basket.NegativeRates)
}

func (s *KeeperTestSuite) TestEditBasketRejectsNonOwner() {
	owner := sdk.AccAddress([]byte("nina________________"))
	other := sdk.AccAddress([]byte("oscar_______________"))
	s.createBasket(owner, "uatom", "ucredit", math.LegacyOneDec())

	err := s.keeper.EditBasket(s.ctx, other, nil, nil, math.LegacyDec{}, nil, nil, nil)
	s.Require().ErrorIs(err, types.ErrUnauthorized)
}

func (s *KeeperTestSuite) TestEditCAssetUpdatesLTVBounds() {
	owner := sdk.AccAddress([]byte("peter_______________"))
	s.createBasket(owner, "uatom", "ucredit", math.LegacyOneDec())

	newMaxBorrow := math.LegacyNewDecWithPrec(5, 1)
	newMaxLTV := math.LegacyNewDecWithPrec(7, 1)
	err := s.keeper.EditCAsset(s.ctx, owner, types.NewNativeAssetInfo("uatom"), newMaxBorrow, newMaxLTV)
	s.Require().NoError(err)

	basket, ok := s.keeper.GetBasket(s.ctx)
	s.Require().True(ok)
	idx := basket.FindCollateralType(types.NewNativeAssetInfo("uatom"))
	s.Require().GreaterOrEqual(idx, 0)
	s.Require().True(basket.CollateralTypes[idx].MaxBorrowLTV.Equal(newMaxBorrow))
	s.Require().True(basket.CollateralTypes[idx].MaxLTV.Equal(newMaxLTV))
}

func (s *KeeperTestSuite) TestEditCAssetRejectsMaxBorrowLTVAtOrAboveMaxLTV() {
	owner := sdk.AccAddress([]byte("quinn_______________"))
	s.createBasket(owner, "uatom", "ucredit", math.LegacyOneDec())

	err := s.keeper.EditCAsset(s.ctx, owner, types.NewNativeAssetInfo("uatom"), math.LegacyNewDecWithPrec(9, 1), math.LegacyNewDecWithPrec(8, 1))
	s.Require().ErrorIs(err, types.ErrInvalidMaxLTV)
}

func (s *KeeperTestSuite) TestEditCAssetRejectsUnregisteredAsset() {
	owner := sdk.AccAddress([]byte("ruth________________"))
	s.createBasket(owner, "uatom", "ucredit", math.LegacyOneDec())

	err := s.keeper.EditCAsset(s.ctx, owner, types.NewNativeAssetInfo("uosmo"), math.LegacyNewDecWithPrec(5, 1), math.LegacyNewDecWithPrec(7, 1))
	s.Require().ErrorIs(err, types.ErrAssetNotInBasket)
}
