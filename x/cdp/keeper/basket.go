package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mintvault/cdp-chain/x/cdp/types"
)

// UpdateConfig overwrites the owner/collaborator/parameter singleton (§6
// UpdateConfig, owner-only).
func (k Keeper) UpdateConfig(ctx sdk.Context, sender sdk.AccAddress, cfg types.Config) error {
	current := k.GetConfig(ctx)
	if current.Owner != "" && current.Owner != sender.String() {
		return types.ErrUnauthorized
	}
	if cfg.Owner == "" {
		cfg.Owner = current.Owner
	}
	if err := k.SetConfig(ctx, cfg); err != nil {
		return err
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeUpdateConfig,
		sdk.NewAttribute(types.AttributeKeyOwner, sender.String()),
	))
	return nil
}

// CreateBasket installs the singleton basket once (§6 CreateBasket,
// owner-only once). A SupplyCap entry defaulting to an unbounded ratio_cap is
// seeded for every collateral type so risk.go's lookups always resolve.
func (k Keeper) CreateBasket(ctx sdk.Context, sender sdk.AccAddress, collateralTypes []types.CAsset, creditAsset types.Asset, creditPrice, baseInterestRate math.LegacyDec, liqQueue string) error {
	cfg := k.GetConfig(ctx)
	if cfg.Owner != "" && cfg.Owner != sender.String() {
		return types.ErrUnauthorized
	}
	if _, exists := k.GetBasket(ctx); exists {
		return types.ErrBasketAlreadyExists
	}

	supplyCaps := make([]types.SupplyCap, len(collateralTypes))
	for i, c := range collateralTypes {
		supplyCaps[i] = types.SupplyCap{
			Info:         c.Asset.Info,
			RatioCap:     math.LegacyOneDec(),
			CurrentRatio: math.LegacyZeroDec(),
			DebtCap:      math.ZeroInt(),
			DebtTotal:    math.ZeroInt(),
		}
	}

	basket := types.Basket{
		CreditAsset:          creditAsset,
		CreditPrice:          creditPrice,
		CollateralTypes:      collateralTypes,
		CollateralSupplyCaps: supplyCaps,
		BaseInterestRate:     baseInterestRate,
		PendingRevenue:       math.ZeroInt(),
		CPCMarginOfError:     math.LegacyNewDecWithPrec(1, 2), // 1%
		LiqQueue:             liqQueue,
	}
	if err := k.SetBasket(ctx, basket); err != nil {
		return err
	}

	if cfg.Owner == "" {
		cfg.Owner = sender.String()
		if err := k.SetConfig(ctx, cfg); err != nil {
			return err
		}
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeCreateBasket,
		sdk.NewAttribute(types.AttributeKeyOwner, sender.String()),
	))
	return nil
}

// EditBasket updates basket-wide parameters (§6 EditBasket, owner-only).
func (k Keeper) EditBasket(ctx sdk.Context, sender sdk.AccAddress, supplyCaps []types.SupplyCap, multiCaps []types.MultiAssetSupplyCap, baseInterestRate math.LegacyDec, negativeRates, frozen, revToStakers *bool) error {
	cfg := k.GetConfig(ctx)
	if cfg.Owner != sender.String() {
		return types.ErrUnauthorized
	}
	basket, ok := k.GetBasket(ctx)
	if !ok {
		return types.ErrBasketNotFound
	}

	if supplyCaps != nil {
		basket.CollateralSupplyCaps = supplyCaps
	}
	if multiCaps != nil {
		basket.MultiAssetSupplyCaps = multiCaps
	}
	if !baseInterestRate.IsNil() {
		basket.BaseInterestRate = baseInterestRate
	}
	if negativeRates != nil {
		basket.NegativeRates = *negativeRates
	}
	if frozen != nil {
		basket.Frozen = *frozen
	}
	if revToStakers != nil {
		basket.RevToStakers = *revToStakers
	}

	if err := k.SetBasket(ctx, basket); err != nil {
		return err
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeEditBasket,
		sdk.NewAttribute(types.AttributeKeyOwner, sender.String()),
	))
	return nil
}

// EditCAsset updates a single registered collateral type's LTV bounds (§6
// EditCAsset, owner-only). Raising max_LTV proportionally tightens the
// bid-queue premium ceiling used in runBidQueueLeg (95% - max_LTV).
func (k Keeper) EditCAsset(ctx sdk.Context, sender sdk.AccAddress, info types.AssetInfo, maxBorrowLTV, maxLTV math.LegacyDec) error {
	cfg := k.GetConfig(ctx)
	if cfg.Owner != sender.String() {
		return types.ErrUnauthorized
	}
	basket, ok := k.GetBasket(ctx)
	if !ok {
		return types.ErrBasketNotFound
	}
	idx := basket.FindCollateralType(info)
	if idx < 0 {
		return types.ErrAssetNotInBasket
	}

	entry := basket.CollateralTypes[idx]
	if !maxLTV.IsNil() {
		if maxLTV.LT(math.LegacyNewDecWithPrec(1, 2)) || maxLTV.GTE(math.LegacyOneDec()) {
			return types.ErrInvalidMaxLTV
		}
		entry.MaxLTV = maxLTV
	}
	if !maxBorrowLTV.IsNil() {
		entry.MaxBorrowLTV = maxBorrowLTV
	}
	if entry.MaxBorrowLTV.GTE(entry.MaxLTV) {
		return types.ErrInvalidMaxLTV.Wrap("max_borrow_ltv must stay below max_ltv")
	}
	basket.CollateralTypes[idx] = entry

	if err := k.SetBasket(ctx, basket); err != nil {
		return err
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeEditCAsset,
		sdk.NewAttribute(types.AttributeKeyOwner, sender.String()),
		sdk.NewAttribute(types.AttributeKeyAsset, info.String()),
	))
	return nil
}
