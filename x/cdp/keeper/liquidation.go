package keeper

import (
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mintvault/cdp-chain/x/cdp/keeper/replyrouter"
	"github.com/mintvault/cdp-chain/x/cdp/types"
)

// Liquidate is the permissionless entry point for the waterfall (§4.G). It
// re-accrues the position, verifies insolvency against avg_max_LTV, and then
// walks the bid-queue, stability-pool, sell-wall, and bad-debt legs in order,
// persisting a LiquidationPropagation across each external call boundary so
// the sequence can be reasoned about the same way a suspended/resumed
// CosmWasm submessage chain would be (SPEC_FULL.md §0). Collaborators in this
// tree are invoked synchronously in-process rather than across a real
// message-passing boundary, but the propagation record and per-leg events are
// kept regardless so the waterfall's intermediate state stays observable and
// so a future transport swap (§9) does not change this method's shape.
func (k Keeper) Liquidate(ctx sdk.Context, owner string, id uint64, callerFeeAddr string) (types.LiquidationStage, error) {
	if k.IsLiquidationInFlight(ctx, owner, id) {
		return "", types.ErrLiquidationInFlight
	}

	basket, ok := k.GetBasket(ctx)
	if !ok {
		return "", types.ErrBasketNotFound
	}
	position, ok := k.GetPosition(ctx, owner, id)
	if !ok {
		return "", types.ErrPositionNotFound
	}

	if err := k.AccrueBasketRedemptionPrice(ctx, &basket); err != nil {
		return "", err
	}
	if _, err := k.AccruePosition(ctx, &basket, &position); err != nil {
		return "", err
	}

	avgBorrowLTV, avgMaxLTV, totalValue, err := k.ComputeAvgLTVs(ctx, position)
	if err != nil {
		return "", err
	}

	creditValue := position.CreditAmount.ToLegacyDec()
	if totalValue.Mul(avgMaxLTV).GTE(creditValue) {
		k.metrics.liquidationsStarted.WithLabelValues("solvent_abort").Inc()
		return "", types.ErrPositionSolvent
	}
	k.metrics.liquidationsStarted.WithLabelValues("insolvent").Inc()

	k.lockPositionForLiquidation(ctx, owner, id)
	defer k.unlockPositionForLiquidation(ctx, owner, id)

	cfg := k.GetConfig(ctx)

	// shortfall (D) is the credit that must be repaid to restore the position
	// to avg_borrow_LTV (§4.G). The collateral actually drawn covers D plus the
	// caller bounty and protocol fee on top, per §4.G's "D + fees" draw.
	target := totalValue.Mul(avgBorrowLTV)
	shortfall := creditValue.Sub(target)
	callerFee := shortfall.Mul(cfg.CallerFeePercent)
	protocolFee := shortfall.Mul(cfg.LiqFeePercent)
	totalDraw := shortfall.Add(callerFee).Add(protocolFee)

	queue := make([]types.AssetInfo, len(position.CollateralAssets))
	for i, c := range position.CollateralAssets {
		queue[i] = c.Asset.Info
	}

	prop := types.LiquidationPropagation{
		ReplyID:              replyrouter.NewReplyID(),
		PositionID:           id,
		PositionOwner:        owner,
		Stage:                types.StageTriggered,
		StillToRepay:         totalDraw,
		TotalRepaid:          math.LegacyZeroDec(),
		CallerFeeAddr:        callerFeeAddr,
		CallerFeeCollected:   math.LegacyZeroDec(),
		ProtocolFeeCollected: math.LegacyZeroDec(),
		PendingAssetQueue:    queue,
	}
	if err := k.SetLiquidationPropagation(ctx, prop); err != nil {
		return "", err
	}

	prop.Stage = types.StageQueueDispatched
	if err := k.runBidQueueLeg(ctx, &basket, &position, &prop, cfg); err != nil {
		return "", err
	}

	prop.Stage = types.StageSPDispatched
	if err := k.runStabilityPoolLeg(ctx, &basket, &position, &prop, cfg); err != nil {
		return "", err
	}

	prop.Stage = types.StageSellWall
	if err := k.runSellWallLeg(ctx, &basket, &position, &prop, cfg); err != nil {
		return "", err
	}

	// Split what the waterfall actually recovered into the debt portion (up to
	// D) and whatever ran past it into the fee pool, so collaborators that
	// only partially fill never pay out a bounty/protocol cut ahead of debt.
	debtRepaid := prop.TotalRepaid
	if debtRepaid.GT(shortfall) {
		debtRepaid = shortfall
	}
	feeRepaid := prop.TotalRepaid.Sub(debtRepaid)
	if feeRepaid.IsNegative() {
		feeRepaid = math.LegacyZeroDec()
	}
	totalFee := callerFee.Add(protocolFee)
	if totalFee.IsPositive() && feeRepaid.IsPositive() {
		if feeRepaid.GT(totalFee) {
			feeRepaid = totalFee
		}
		prop.CallerFeeCollected = feeRepaid.Mul(callerFee).Quo(totalFee)
		prop.ProtocolFeeCollected = feeRepaid.Sub(prop.CallerFeeCollected)
	}

	burned := debtRepaid.TruncateInt()
	if burned.GT(position.CreditAmount) {
		burned = position.CreditAmount
	}
	if burned.IsPositive() {
		if k.tokenProxyKeeper == nil {
			return "", types.ErrConfigured.Wrap("token_proxy_addr is required to burn credit")
		}
		ownerAddr, addrErr := sdk.AccAddressFromBech32(owner)
		if addrErr != nil {
			return "", types.ErrUnauthorized
		}
		if err := k.tokenProxyKeeper.BurnTokens(ctx, ownerAddr, burned); err != nil {
			return "", err
		}
	}
	position.CreditAmount = position.CreditAmount.Sub(burned)

	if prop.CallerFeeCollected.IsPositive() && prop.CallerFeeAddr != "" {
		if callerAddr, addrErr := sdk.AccAddressFromBech32(prop.CallerFeeAddr); addrErr == nil {
			if err := k.tokenProxyKeeper.MintTokens(ctx, callerAddr, prop.CallerFeeCollected.TruncateInt()); err != nil {
				k.Logger(ctx).Error("liquidation caller bounty mint failed", "error", err)
			}
		} else {
			k.Logger(ctx).Error("liquidation caller bounty has no valid payout address", "caller_fee_addr", prop.CallerFeeAddr)
		}
	}
	if prop.ProtocolFeeCollected.IsPositive() {
		basket.PendingRevenue = basket.PendingRevenue.Add(prop.ProtocolFeeCollected.TruncateInt())
	}

	debtRemaining := shortfall.Sub(debtRepaid)
	if debtRemaining.IsPositive() && totalPositionCollateral(position).IsZero() {
		prop.Stage = types.StageBadDebtCheck
		position.BadDebt = true
		if err := k.BadDebtCheck(ctx, &basket, &position, &prop); err != nil {
			return "", err
		}
		k.metrics.badDebtQueued.Inc()
	}

	prop.Stage = types.StageTerminal
	if err := k.UpdateBasketTally(ctx, &basket, nil, false); err != nil {
		k.Logger(ctx).Error("basket tally update failed on liquidation settlement", "error", err)
	}
	if err := k.SetBasket(ctx, basket); err != nil {
		return "", err
	}

	if position.IsEmpty() {
		k.DeletePosition(ctx, owner, id)
		k.metrics.positionsClosed.Inc()
	} else {
		if err := k.SetPosition(ctx, position); err != nil {
			return "", err
		}
	}
	k.DeleteLiquidationPropagation(ctx, prop.ReplyID)
	k.metrics.liquidationsResolved.WithLabelValues(string(prop.Stage)).Inc()

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeLiquidate,
		sdk.NewAttribute(types.AttributeKeyPositionID, strconv.FormatUint(position.ID, 10)),
		sdk.NewAttribute(types.AttributeKeyOwner, position.Owner),
		sdk.NewAttribute(types.AttributeKeyStage, string(prop.Stage)),
		sdk.NewAttribute(types.AttributeKeyRepaid, prop.TotalRepaid.String()),
	))

	return prop.Stage, nil
}

// defaultBidQueueMaxPremium is used when a collateral entry carries no
// explicit max_LTV (e.g. a pool share), falling back to a conservative premium
// ceiling rather than the §6 max_LTV-derived formula.
var defaultBidQueueMaxPremium = math.LegacyNewDecWithPrec(10, 2)

// clearHikeRates resets a collateral entry's hike flag once a liquidation leg
// has fully repaid that asset's shortfall and zeroed it out, rather than
// leaving the flag set on a balance that no longer exists.
func (k Keeper) clearHikeRates(position *types.Position, idx int) {
	position.CollateralAssets[idx].HikeRates = false
}

func totalPositionCollateral(position types.Position) math.Int {
	total := math.ZeroInt()
	for _, c := range position.CollateralAssets {
		total = total.Add(c.Asset.Amount)
	}
	return total
}

// runBidQueueLeg asks the bid queue to fill repayment at premium tiers,
// per collateral asset in the propagation's dispatch order (§4.G waterfall
// step 1). Each fill reduces StillToRepay and the position's held amount of
// that asset; the bid queue's own reported numbers are trusted over any
// pre-call estimate (§4.G "trust reply's numbers not pre-call quote").
func (k Keeper) runBidQueueLeg(ctx sdk.Context, basket *types.Basket, position *types.Position, prop *types.LiquidationPropagation, cfg types.Config) error {
	if k.bidQueueKeeper == nil || !prop.StillToRepay.IsPositive() {
		return nil
	}

	for _, info := range prop.PendingAssetQueue {
		if !prop.StillToRepay.IsPositive() {
			break
		}
		idx := position.FindCollateral(info)
		if idx < 0 || position.CollateralAssets[idx].Asset.Amount.IsZero() {
			continue
		}

		held := position.CollateralAssets[idx].Asset.Amount
		maxPremium := defaultBidQueueMaxPremium
		if c := position.CollateralAssets[idx]; c.MaxLTV.IsPositive() {
			// §6 EditBasket note: premium room shrinks as max_LTV rises toward 100%.
			maxPremium = math.LegacyNewDecWithPrec(95, 2).Sub(c.MaxLTV)
			if maxPremium.IsNegative() {
				maxPremium = math.LegacyZeroDec()
			}
		}
		repaid, collateralOwed, err := k.bidQueueKeeper.Liquidate(ctx, info, prop.StillToRepay, maxPremium)
		if err != nil {
			// The queue declining to fill is not fatal: the remaining legs can
			// still progress without it (§7 propagation policy).
			k.Logger(ctx).Error("bid queue leg declined", "asset", info, "error", err)
			continue
		}
		if collateralOwed.GT(held) {
			return types.ErrReplyParseFailure.Wrapf("bid queue reported collateral owed %s exceeds held %s", collateralOwed, held)
		}

		position.CollateralAssets[idx].Asset.Amount = held.Sub(collateralOwed)
		if position.CollateralAssets[idx].Asset.Amount.IsZero() {
			k.clearHikeRates(position, idx)
		}
		prop.StillToRepay = prop.StillToRepay.Sub(repaid)
		if prop.StillToRepay.IsNegative() {
			prop.StillToRepay = math.LegacyZeroDec()
		}
		prop.TotalRepaid = prop.TotalRepaid.Add(repaid)
		prop.LiquidatedAssets = append(prop.LiquidatedAssets, types.CAsset{Asset: types.NewAsset(info, collateralOwed)})

		k.emitLiquidationLeg(ctx, prop, "bid_queue", info, repaid, collateralOwed)
	}
	return nil
}

// runStabilityPoolLeg asks the stability pool to cover any residual shortfall
// in a single call (§4.G waterfall step 2), offering the position's remaining
// collateral. The pool reports back any portion it could not cover.
func (k Keeper) runStabilityPoolLeg(ctx sdk.Context, basket *types.Basket, position *types.Position, prop *types.LiquidationPropagation, cfg types.Config) error {
	if k.stabilityPoolKeeper == nil || !prop.StillToRepay.IsPositive() {
		return nil
	}
	if totalPositionCollateral(*position).IsZero() {
		return nil
	}

	offered := make([]types.CAsset, 0, len(position.CollateralAssets))
	offeredValue := math.LegacyZeroDec()
	for _, c := range position.CollateralAssets {
		if c.Asset.Amount.IsPositive() {
			offered = append(offered, c)
			v, verr := k.ValueOf(ctx, c)
			if verr != nil {
				return verr
			}
			offeredValue = offeredValue.Add(v)
		}
	}

	shortfallBefore := prop.StillToRepay
	leftover, err := k.stabilityPoolKeeper.Liquidate(ctx, shortfallBefore, offered)
	if err != nil {
		k.Logger(ctx).Error("stability pool leg declined", "error", err)
		return nil
	}
	if leftover.GT(shortfallBefore) {
		return types.ErrReplyParseFailure.Wrapf("stability pool reported leftover %s exceeds shortfall %s", leftover, shortfallBefore)
	}

	repaid := shortfallBefore.Sub(leftover)
	prop.TotalRepaid = prop.TotalRepaid.Add(repaid)
	prop.StillToRepay = leftover

	// The pool's own keeper debits collateral through its own accounting; here
	// we only need to zero out what it consumed. repaid is a credit-value
	// amount, so the fraction of each asset's token amount taken must be
	// repaid's share of offeredValue (collateral value), not of
	// shortfallBefore (credit value owed) -- those are different units and
	// collateral offered is generally worth more than the shortfall itself.
	if repaid.IsPositive() && offeredValue.IsPositive() {
		drainPositionProRata(position, repaid.Quo(offeredValue))
	}

	k.emitLiquidationLeg(ctx, prop, "stability_pool", types.AssetInfo{}, repaid, math.ZeroInt())
	return nil
}

// drainPositionProRata reduces every collateral entry by fraction of its held
// amount, used when a collaborator consumes collateral without reporting a
// per-asset breakdown.
func drainPositionProRata(position *types.Position, fraction math.LegacyDec) {
	if fraction.IsNegative() || fraction.IsZero() {
		return
	}
	if fraction.GT(math.LegacyOneDec()) {
		fraction = math.LegacyOneDec()
	}
	for i := range position.CollateralAssets {
		amt := position.CollateralAssets[i].Asset.Amount
		taken := fraction.MulInt(amt).TruncateInt()
		position.CollateralAssets[i].Asset.Amount = amt.Sub(taken)
	}
}

// runSellWallLeg force-sells remaining collateral pro-rata by value through
// the DEX router when the queue and stability pool could not fully cover the
// shortfall (§4.G waterfall step 3). A router failure is not fatal: whatever
// collateral remains stays with the position and liquidation proceeds to the
// bad-debt check with that residual shortfall (§4.G "no retry at different
// slippage").
func (k Keeper) runSellWallLeg(ctx sdk.Context, basket *types.Basket, position *types.Position, prop *types.LiquidationPropagation, cfg types.Config) error {
	if k.routerKeeper == nil || !prop.StillToRepay.IsPositive() {
		return nil
	}
	if totalPositionCollateral(*position).IsZero() {
		return nil
	}

	for i := range position.CollateralAssets {
		if !prop.StillToRepay.IsPositive() {
			break
		}
		amt := position.CollateralAssets[i].Asset.Amount
		if amt.IsZero() {
			continue
		}

		maxSpread := math.LegacyNewDecWithPrec(5, 2) // 5% default, no per-call override (§4.G no-retry)
		received, err := k.routerKeeper.Swap(ctx, types.NewAsset(position.CollateralAssets[i].Asset.Info, amt), maxSpread)
		if err != nil {
			k.Logger(ctx).Error("sell wall leg failed, continuing with residual collateral", "asset", position.CollateralAssets[i].Asset.Info, "error", err)
			continue
		}

		position.CollateralAssets[i].Asset.Amount = math.ZeroInt()
		k.clearHikeRates(position, i)
		burn := received
		if burn.GT(prop.StillToRepay) {
			burn = prop.StillToRepay
		}
		prop.TotalRepaid = prop.TotalRepaid.Add(burn)
		prop.StillToRepay = prop.StillToRepay.Sub(burn)
		prop.LiquidatedAssets = append(prop.LiquidatedAssets, types.CAsset{Asset: types.NewAsset(position.CollateralAssets[i].Asset.Info, amt)})

		k.emitLiquidationLeg(ctx, prop, "sell_wall", position.CollateralAssets[i].Asset.Info, burn, amt)
	}
	return nil
}


func (k Keeper) emitLiquidationLeg(ctx sdk.Context, prop *types.LiquidationPropagation, leg string, info types.AssetInfo, repaid math.LegacyDec, collateral math.Int) {
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeLiquidationLeg,
		sdk.NewAttribute(types.AttributeKeyReplyID, prop.ReplyID),
		sdk.NewAttribute(types.AttributeKeyStage, leg),
		sdk.NewAttribute(types.AttributeKeyAsset, info.String()),
		sdk.NewAttribute(types.AttributeKeyRepaid, repaid.String()),
		sdk.NewAttribute(types.AttributeKeyCollateral, collateral.String()),
	))
}
