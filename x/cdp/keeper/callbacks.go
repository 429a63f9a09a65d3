package keeper

import (
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mintvault/cdp-chain/x/cdp/types"
)

// BadDebtCheck runs when a liquidation exhausts all waterfall legs with
// credit_amount still outstanding and zero collateral left (§4.G waterfall
// step 4). It first drains basket.pending_revenue by minting and immediately
// repaying against the position, then hands the remainder to the configured
// debt auction. Per DESIGN.md's resolution of §9's first open question, an
// auction collaborator is required even when pending_revenue alone would
// cover the residual — callers must configure one before bad debt can occur.
func (k Keeper) BadDebtCheck(ctx sdk.Context, basket *types.Basket, position *types.Position, prop *types.LiquidationPropagation) error {
	if k.debtAuctionKeeper == nil {
		return types.ErrConfigured.Wrap("debt_auction_addr is required once a position can fall to bad debt")
	}

	residual := position.CreditAmount
	if residual.IsZero() {
		return nil
	}

	if basket.PendingRevenue.IsPositive() {
		drained := basket.PendingRevenue
		if drained.GT(residual) {
			drained = residual
		}
		basket.PendingRevenue = basket.PendingRevenue.Sub(drained)
		position.CreditAmount = position.CreditAmount.Sub(drained)
		residual = position.CreditAmount

		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeBadDebt,
			sdk.NewAttribute(types.AttributeKeyCreditAmount, drained.String()),
			sdk.NewAttribute(types.AttributeKeyStage, "pending_revenue_drained"),
		))
	}

	if residual.IsZero() {
		return nil
	}

	auctionAsset := types.NewAsset(basket.CreditAsset.Info, residual)
	if err := k.debtAuctionKeeper.StartAuction(ctx, position.ID, auctionAsset, position.Owner); err != nil {
		// Bad-debt auction dispatch failure does not revert the surrounding
		// liquidation: the position is left flagged bad_debt=true and awaits a
		// retried Accrue/MintRevenue crank (§7 propagation policy).
		k.Logger(ctx).Error("debt auction dispatch failed", "position_id", position.ID, "error", err)
		return nil
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeBadDebt,
		sdk.NewAttribute(types.AttributeKeyPositionID, strconv.FormatUint(position.ID, 10)),
		sdk.NewAttribute(types.AttributeKeyOwner, position.Owner),
		sdk.NewAttribute(types.AttributeKeyCreditAmount, residual.String()),
		sdk.NewAttribute(types.AttributeKeyStage, "auction_started"),
	))
	return nil
}

// ClosePosition is the user-initiated analogue of the sell-wall leg (§4.H):
// all collateral is sold through the router into the credit asset, proceeds
// repay debt to zero, and any remainder is sent to sendTo. The owner pays no
// liquidation fee, only router slippage, and may close a solvent position.
func (k Keeper) ClosePosition(ctx sdk.Context, owner string, id uint64, maxSpread math.LegacyDec, sendTo string) (creditBurned math.LegacyDec, refunded []types.Asset, err error) {
	if k.routerKeeper == nil {
		return math.LegacyDec{}, nil, types.ErrConfigured.Wrap("dex_router_addr is required to close a position")
	}

	basket, ok := k.GetBasket(ctx)
	if !ok {
		return math.LegacyDec{}, nil, types.ErrBasketNotFound
	}
	position, ok := k.GetPosition(ctx, owner, id)
	if !ok {
		return math.LegacyDec{}, nil, types.ErrPositionNotFound
	}

	if err := k.AccrueBasketRedemptionPrice(ctx, &basket); err != nil {
		return math.LegacyDec{}, nil, err
	}
	if _, err := k.AccruePosition(ctx, &basket, &position); err != nil {
		return math.LegacyDec{}, nil, err
	}

	proceeds := math.LegacyZeroDec()
	for i := range position.CollateralAssets {
		amt := position.CollateralAssets[i].Asset.Amount
		if amt.IsZero() {
			continue
		}
		received, swapErr := k.routerKeeper.Swap(ctx, types.NewAsset(position.CollateralAssets[i].Asset.Info, amt), maxSpread)
		if swapErr != nil {
			return math.LegacyDec{}, nil, swapErr
		}
		proceeds = proceeds.Add(received)
		position.CollateralAssets[i].Asset.Amount = math.ZeroInt()
	}

	if k.tokenProxyKeeper == nil {
		return math.LegacyDec{}, nil, types.ErrConfigured.Wrap("token_proxy_addr is required to close a position")
	}
	ownerAddr, err := sdk.AccAddressFromBech32(owner)
	if err != nil {
		return math.LegacyDec{}, nil, types.ErrUnauthorized
	}

	debt := position.CreditAmount.ToLegacyDec()
	burn := proceeds
	if burn.GT(debt) {
		burn = debt
	}
	burnInt := burn.TruncateInt()
	if burnInt.IsPositive() {
		if err := k.tokenProxyKeeper.BurnTokens(ctx, ownerAddr, burnInt); err != nil {
			return math.LegacyDec{}, nil, err
		}
	}
	position.CreditAmount = position.CreditAmount.Sub(burnInt)

	remainder := proceeds.Sub(burn)
	var refund []types.Asset
	if remainder.IsPositive() {
		remainderInt := remainder.TruncateInt()
		recipient := sendTo
		if recipient == "" {
			recipient = owner
		}
		recipientAddr, err := sdk.AccAddressFromBech32(recipient)
		if err != nil {
			return math.LegacyDec{}, nil, types.ErrUnauthorized
		}
		if err := k.tokenProxyKeeper.MintTokens(ctx, recipientAddr, remainderInt); err != nil {
			return math.LegacyDec{}, nil, err
		}
		refund = []types.Asset{types.NewAsset(basket.CreditAsset.Info, remainderInt)}
	}

	if err := k.UpdateBasketTally(ctx, &basket, nil, false); err != nil {
		k.Logger(ctx).Error("basket tally update failed on close_position", "error", err)
	}
	if err := k.SetBasket(ctx, basket); err != nil {
		return math.LegacyDec{}, nil, err
	}

	if position.IsEmpty() {
		k.DeletePosition(ctx, owner, id)
		k.metrics.positionsClosed.Inc()
	} else {
		if err := k.SetPosition(ctx, position); err != nil {
			return math.LegacyDec{}, nil, err
		}
	}
	if f, ferr := burn.Float64(); ferr == nil {
		k.metrics.creditBurned.Add(f)
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeClosePosition,
		sdk.NewAttribute(types.AttributeKeyOwner, owner),
		sdk.NewAttribute(types.AttributeKeyCreditAmount, burn.String()),
	))

	return burn, refund, nil
}
