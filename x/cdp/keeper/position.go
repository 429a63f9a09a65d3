package keeper

import (
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mintvault/cdp-chain/x/cdp/types"
)

// collateralDenom maps an AssetInfo onto the bank module's coin denom. Both
// native and cw-tagged collateral settle through the bank module on this
// chain (a cw-style asset here is a token-factory denom rather than a
// separate CosmWasm contract), so a single helper covers both kinds.
func collateralDenom(info types.AssetInfo) string {
	return info.String()
}

// Deposit attaches funds as collateral, creating a position on first deposit
// or attaching to an existing one addressed by (owner, positionID) (§3
// Lifecycle, §6 Deposit). Newly-seen collateral types copy their LTV/rate
// parameters from the basket registry entry at deposit time (§9 "copy small
// value-typed fields into positions at mutation time").
func (k Keeper) Deposit(ctx sdk.Context, sender sdk.AccAddress, positionID uint64, positionOwner string, funds []types.Asset) (uint64, error) {
	basket, ok := k.GetBasket(ctx)
	if !ok {
		return 0, types.ErrBasketNotFound
	}
	if basket.Frozen {
		return 0, types.ErrBasketFrozen
	}

	owner := positionOwner
	if owner == "" {
		owner = sender.String()
	}

	var position types.Position
	creatingPosition := positionID == 0
	if !creatingPosition {
		var found bool
		position, found = k.GetPosition(ctx, owner, positionID)
		if !found {
			return 0, types.ErrPositionNotFound
		}
	} else {
		position = types.Position{Owner: owner, CreditAmount: math.ZeroInt()}
	}

	if !creatingPosition {
		if _, err := k.AccruePosition(ctx, &basket, &position); err != nil {
			return 0, err
		}
	}

	deltas := make([]basketTallyDelta, 0, len(funds))
	for _, f := range funds {
		registryIdx := basket.FindCollateralType(f.Info)
		if registryIdx < 0 {
			return 0, types.ErrInvalidAsset.Wrapf("%s is not registered in the basket", f.Info)
		}
		registryEntry := basket.CollateralTypes[registryIdx]

		coins := sdk.NewCoins(sdk.NewCoin(collateralDenom(f.Info), f.Amount))
		if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, sender, types.ModuleName, coins); err != nil {
			return 0, err
		}

		if idx := position.FindCollateral(f.Info); idx >= 0 {
			position.CollateralAssets[idx].Asset.Amount = position.CollateralAssets[idx].Asset.Amount.Add(f.Amount)
		} else {
			position.CollateralAssets = append(position.CollateralAssets, types.CAsset{
				Asset:        types.NewAsset(f.Info, f.Amount),
				MaxBorrowLTV: registryEntry.MaxBorrowLTV,
				MaxLTV:       registryEntry.MaxLTV,
				RateIndex:    registryEntry.RateIndex,
				PoolInfo:     registryEntry.PoolInfo,
				HikeRates:    registryEntry.HikeRates,
			})
		}

		registryEntry.Asset.Amount = registryEntry.Asset.Amount.Add(f.Amount)
		basket.CollateralTypes[registryIdx] = registryEntry

		value, err := k.PriceOf(ctx, f.Info)
		if err != nil {
			return 0, err
		}
		deltas = append(deltas, basketTallyDelta{Info: f.Info, Value: value.Price.MulInt(f.Amount)})
	}

	if err := k.UpdateBasketTally(ctx, &basket, deltas, true); err != nil {
		return 0, err
	}

	if creatingPosition {
		positionID = k.GetNextPositionID(ctx, owner)
		position.ID = positionID
		k.metrics.positionsOpened.Inc()
	}

	if err := k.SetPosition(ctx, position); err != nil {
		return 0, err
	}
	if err := k.SetBasket(ctx, basket); err != nil {
		return 0, err
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeDeposit,
		sdk.NewAttribute(types.AttributeKeyOwner, owner),
		sdk.NewAttribute(types.AttributeKeyAmount, strconv.Itoa(len(funds))),
	))
	return positionID, nil
}

// Withdraw removes collateral, subject to the post-condition LTV check and
// the debt_minimum floor supplemented onto Withdraw (§6 Withdraw,
// SPEC_FULL.md §10).
func (k Keeper) Withdraw(ctx sdk.Context, sender sdk.AccAddress, positionID uint64, assets []types.Asset, sendTo string) error {
	owner := sender.String()
	basket, ok := k.GetBasket(ctx)
	if !ok {
		return types.ErrBasketNotFound
	}
	position, ok := k.GetPosition(ctx, owner, positionID)
	if !ok {
		return types.ErrPositionNotFound
	}

	if _, err := k.AccruePosition(ctx, &basket, &position); err != nil {
		return err
	}

	recipient := sendTo
	if recipient == "" {
		recipient = owner
	}
	recipientAddr, err := sdk.AccAddressFromBech32(recipient)
	if err != nil {
		return types.ErrUnauthorized
	}

	coins := sdk.NewCoins()
	for _, a := range assets {
		idx := position.FindCollateral(a.Info)
		if idx < 0 || position.CollateralAssets[idx].Asset.Amount.LT(a.Amount) {
			return types.ErrNothingToWithdraw.Wrapf("%s", a.Info)
		}
		position.CollateralAssets[idx].Asset.Amount = position.CollateralAssets[idx].Asset.Amount.Sub(a.Amount)
		coins = coins.Add(sdk.NewCoin(collateralDenom(a.Info), a.Amount))

		if registryIdx := basket.FindCollateralType(a.Info); registryIdx >= 0 {
			entry := basket.CollateralTypes[registryIdx]
			entry.Asset.Amount = entry.Asset.Amount.Sub(a.Amount)
			basket.CollateralTypes[registryIdx] = entry
		}
	}

	_, avgMaxLTV, totalValue, err := k.ComputeAvgLTVs(ctx, position)
	if err != nil {
		return err
	}
	if totalValue.Mul(avgMaxLTV).LT(position.CreditAmount.ToLegacyDec()) {
		return types.ErrPositionInsolvent
	}
	cfg := k.GetConfig(ctx)
	if position.CreditAmount.IsPositive() && position.CreditAmount.LT(cfg.DebtMinimum) {
		return types.ErrBelowDebtMinimum
	}

	if err := k.UpdateBasketTally(ctx, &basket, nil, false); err != nil {
		return err
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipientAddr, coins); err != nil {
		return err
	}

	if err := k.SetBasket(ctx, basket); err != nil {
		return err
	}
	if position.IsEmpty() {
		k.DeletePosition(ctx, owner, positionID)
		k.metrics.positionsClosed.Inc()
	} else if err := k.SetPosition(ctx, position); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeWithdraw,
		sdk.NewAttribute(types.AttributeKeyOwner, owner),
	))
	return nil
}

// IncreaseDebt borrows either a fixed amount or enough to reach targetLTV
// (exactly one of amount/targetLTV is non-nil, enforced by ValidateBasic),
// mints the credit asset to mintTo, and checks debt_minimum (§6 IncreaseDebt).
func (k Keeper) IncreaseDebt(ctx sdk.Context, sender sdk.AccAddress, positionID uint64, amount math.Int, targetLTV math.LegacyDec, mintTo string) (math.Int, error) {
	owner := sender.String()
	basket, ok := k.GetBasket(ctx)
	if !ok {
		return math.Int{}, types.ErrBasketNotFound
	}
	if basket.Frozen {
		return math.Int{}, types.ErrBasketFrozen
	}
	position, ok := k.GetPosition(ctx, owner, positionID)
	if !ok {
		return math.Int{}, types.ErrPositionNotFound
	}

	if _, err := k.AccruePosition(ctx, &basket, &position); err != nil {
		return math.Int{}, err
	}

	_, avgMaxLTV, totalValue, err := k.ComputeAvgLTVs(ctx, position)
	if err != nil {
		return math.Int{}, err
	}

	var borrow math.Int
	if !amount.IsNil() && amount.IsPositive() {
		borrow = amount
	} else {
		targetCredit := totalValue.Mul(targetLTV).TruncateInt()
		borrow = targetCredit.Sub(position.CreditAmount)
		if !borrow.IsPositive() {
			return math.Int{}, types.ErrZeroAmount
		}
	}

	newCredit := position.CreditAmount.Add(borrow)
	cfg := k.GetConfig(ctx)
	if newCredit.LT(cfg.DebtMinimum) {
		return math.Int{}, types.ErrBelowDebtMinimum
	}
	if totalValue.Mul(avgMaxLTV).LT(newCredit.ToLegacyDec()) {
		return math.Int{}, types.ErrPositionInsolvent
	}

	recipient := mintTo
	if recipient == "" {
		recipient = owner
	}
	recipientAddr, err := sdk.AccAddressFromBech32(recipient)
	if err != nil {
		return math.Int{}, types.ErrUnauthorized
	}
	if k.tokenProxyKeeper == nil {
		return math.Int{}, types.ErrConfigured.Wrap("token_proxy_addr is required to mint credit")
	}
	if err := k.tokenProxyKeeper.MintTokens(ctx, recipientAddr, borrow); err != nil {
		return math.Int{}, err
	}

	position.CreditAmount = newCredit

	deltas := make([]basketTallyDelta, 0, len(position.CollateralAssets))
	for _, c := range position.CollateralAssets {
		value, verr := k.ValueOf(ctx, c)
		if verr != nil {
			return math.Int{}, verr
		}
		share := math.LegacyZeroDec()
		if totalValue.IsPositive() {
			share = value.Quo(totalValue)
		}
		deltas = append(deltas, basketTallyDelta{Info: c.Asset.Info, Debt: share.MulInt(borrow).TruncateInt()})
	}
	if err := k.UpdateBasketTally(ctx, &basket, deltas, true); err != nil {
		return math.Int{}, err
	}

	if err := k.SetBasket(ctx, basket); err != nil {
		return math.Int{}, err
	}
	if err := k.SetPosition(ctx, position); err != nil {
		return math.Int{}, err
	}
	if f, ferr := borrow.ToLegacyDec().Float64(); ferr == nil {
		k.metrics.creditMinted.Add(f)
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeIncreaseDebt,
		sdk.NewAttribute(types.AttributeKeyOwner, owner),
		sdk.NewAttribute(types.AttributeKeyCreditAmount, borrow.String()),
	))
	return position.CreditAmount, nil
}

// Repay burns funds against a position's outstanding credit, refunding any
// excess above the owed balance to sendExcessTo (§4.D, §6 Repay). A partial
// repay that would leave dust below debt_minimum is rejected unless it closes
// the position exactly (§8 boundary behavior).
func (k Keeper) Repay(ctx sdk.Context, sender sdk.AccAddress, positionID uint64, positionOwner string, funds math.Int, sendExcessTo string) (math.Int, error) {
	owner := positionOwner
	if owner == "" {
		owner = sender.String()
	}
	basket, ok := k.GetBasket(ctx)
	if !ok {
		return math.Int{}, types.ErrBasketNotFound
	}
	position, ok := k.GetPosition(ctx, owner, positionID)
	if !ok {
		return math.Int{}, types.ErrPositionNotFound
	}

	if _, err := k.AccruePosition(ctx, &basket, &position); err != nil {
		return math.Int{}, err
	}

	owed := position.CreditAmount
	applied := funds
	excess := math.ZeroInt()
	if applied.GT(owed) {
		excess = applied.Sub(owed)
		applied = owed
	}

	if k.tokenProxyKeeper == nil {
		return math.Int{}, types.ErrConfigured.Wrap("token_proxy_addr is required to burn credit")
	}
	if err := k.tokenProxyKeeper.BurnTokens(ctx, sender, applied); err != nil {
		return math.Int{}, err
	}

	remaining := owed.Sub(applied)
	cfg := k.GetConfig(ctx)
	if remaining.IsPositive() && remaining.LT(cfg.DebtMinimum) {
		return math.Int{}, types.ErrBelowDebtMinimum
	}
	position.CreditAmount = remaining

	// The excess above owed debt was never taken from sender: BurnTokens above
	// only burned applied. It already sits in sender's wallet, so a refund is
	// only needed when sendExcessTo names a different recipient, in which case
	// it moves by burning it back out of sender and minting it to the
	// recipient (the credit asset's custodian is the token proxy, not bank).
	if excess.IsPositive() && sendExcessTo != "" && sendExcessTo != sender.String() {
		refundAddr, err := sdk.AccAddressFromBech32(sendExcessTo)
		if err != nil {
			return math.Int{}, types.ErrUnauthorized
		}
		if err := k.tokenProxyKeeper.BurnTokens(ctx, sender, excess); err != nil {
			return math.Int{}, err
		}
		if err := k.tokenProxyKeeper.MintTokens(ctx, refundAddr, excess); err != nil {
			return math.Int{}, err
		}
	}

	deltas := make([]basketTallyDelta, 0, len(position.CollateralAssets))
	if applied.IsPositive() {
		totalValue := math.LegacyZeroDec()
		values := make([]math.LegacyDec, len(position.CollateralAssets))
		for i, c := range position.CollateralAssets {
			value, verr := k.ValueOf(ctx, c)
			if verr != nil {
				return math.Int{}, verr
			}
			values[i] = value
			totalValue = totalValue.Add(value)
		}
		if totalValue.IsPositive() {
			for i, c := range position.CollateralAssets {
				share := values[i].Quo(totalValue)
				deltas = append(deltas, basketTallyDelta{Info: c.Asset.Info, Debt: share.MulInt(applied).TruncateInt().Neg()})
			}
		}
	}
	if err := k.UpdateBasketTally(ctx, &basket, deltas, false); err != nil {
		return math.Int{}, err
	}

	if err := k.SetBasket(ctx, basket); err != nil {
		return math.Int{}, err
	}
	if position.IsEmpty() {
		k.DeletePosition(ctx, owner, positionID)
		k.metrics.positionsClosed.Inc()
	} else if err := k.SetPosition(ctx, position); err != nil {
		return math.Int{}, err
	}
	if f, ferr := applied.ToLegacyDec().Float64(); ferr == nil {
		k.metrics.creditBurned.Add(f)
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeRepay,
		sdk.NewAttribute(types.AttributeKeyOwner, owner),
		sdk.NewAttribute(types.AttributeKeyCreditAmount, applied.String()),
	))
	return position.CreditAmount, nil
}

// LiqRepay lets the configured stability pool repay against a position with
// an already in-flight liquidation, releasing collateral pro-rata to the
// repay's share of the position's remaining value (§6 LiqRepay: "only
// callable by SP during live liquidation"). This is the inbound-message
// counterpart to the synchronous stabilityPoolKeeper.Liquidate call the
// waterfall makes directly; both settle through the same accounting.
func (k Keeper) LiqRepay(ctx sdk.Context, sender sdk.AccAddress, positionID uint64, funds math.Int) ([]types.Asset, error) {
	cfg := k.GetConfig(ctx)
	if cfg.StabilityPoolAddr == "" || sender.String() != cfg.StabilityPoolAddr {
		return nil, types.ErrNotStabilityPool
	}

	basket, ok := k.GetBasket(ctx)
	if !ok {
		return nil, types.ErrBasketNotFound
	}

	// LiqRepay targets whichever position the caller has an in-flight liquidation
	// lock for; the stability pool is expected to pass back the owner it was invoked
	// with, tracked on the propagation record rather than rederived here.
	var owner string
	found := false
	for _, p := range k.allPositionsForLiqRepay(ctx, positionID) {
		if k.IsLiquidationInFlight(ctx, p.Owner, p.ID) {
			owner = p.Owner
			found = true
			break
		}
	}
	if !found {
		return nil, types.ErrLiquidationInFlight.Wrap("no in-flight liquidation for this position id")
	}

	position, ok := k.GetPosition(ctx, owner, positionID)
	if !ok {
		return nil, types.ErrPositionNotFound
	}

	_, _, totalValue, err := k.ComputeAvgLTVs(ctx, position)
	if err != nil {
		return nil, err
	}
	if !totalValue.IsPositive() {
		return nil, types.ErrPositionNotFound
	}

	applied := funds
	if applied.GT(position.CreditAmount) {
		applied = position.CreditAmount
	}
	fraction := applied.ToLegacyDec().Quo(totalValue)

	released := make([]types.Asset, 0, len(position.CollateralAssets))
	for i := range position.CollateralAssets {
		amt := position.CollateralAssets[i].Asset.Amount
		take := fraction.MulInt(amt).TruncateInt()
		if take.GT(amt) {
			take = amt
		}
		position.CollateralAssets[i].Asset.Amount = amt.Sub(take)
		released = append(released, types.NewAsset(position.CollateralAssets[i].Asset.Info, take))
	}
	position.CreditAmount = position.CreditAmount.Sub(applied)

	if err := k.UpdateBasketTally(ctx, &basket, nil, false); err != nil {
		return nil, err
	}
	if err := k.SetBasket(ctx, basket); err != nil {
		return nil, err
	}
	if err := k.SetPosition(ctx, position); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeLiqRepay,
		sdk.NewAttribute(types.AttributeKeyOwner, owner),
		sdk.NewAttribute(types.AttributeKeyRepaid, applied.String()),
	))
	return released, nil
}

// FindBadDebtPositionOwner resolves the owner of a bad_debt-flagged position
// by id. MsgCallbackBadDebtCheck carries no owner field since its sender is
// always the module account itself (§6 "contract-self only"), so the owner
// must be rediscovered from the position id alone.
func (k Keeper) FindBadDebtPositionOwner(ctx sdk.Context, positionID uint64) string {
	for _, p := range k.allPositionsForLiqRepay(ctx, positionID) {
		if p.BadDebt {
			return p.Owner
		}
	}
	return ""
}

// allPositionsForLiqRepay scans every owner for a matching position id. The
// liquidation lock keyspace is per (owner,id), so a bare id is ambiguous
// across owners; LiqRepay's caller (the stability pool) is expected to have
// been invoked with the owning position's full key in a real deployment, but
// the module still resolves a bare id defensively here.
func (k Keeper) allPositionsForLiqRepay(ctx sdk.Context, positionID uint64) []types.Position {
	all, _ := k.GetAllPositions(ctx, "", 0)
	var matches []types.Position
	for _, p := range all {
		if p.ID == positionID {
			matches = append(matches, p)
		}
	}
	return matches
}

// Accrue is the permissionless idempotent crank (§6 Accrue). Accruing a
// foreign owner's position requires sender == the configured stability pool.
func (k Keeper) Accrue(ctx sdk.Context, sender sdk.AccAddress, positionOwner string, positionIDs []uint64) (uint64, error) {
	owner := positionOwner
	if owner == "" {
		owner = sender.String()
	}
	if owner != sender.String() {
		cfg := k.GetConfig(ctx)
		if cfg.StabilityPoolAddr == "" || sender.String() != cfg.StabilityPoolAddr {
			return 0, types.ErrUnauthorized
		}
	}

	basket, ok := k.GetBasket(ctx)
	if !ok {
		return 0, types.ErrBasketNotFound
	}
	if err := k.AccrueBasketRedemptionPrice(ctx, &basket); err != nil {
		return 0, err
	}

	var accrued uint64
	for _, id := range positionIDs {
		position, found := k.GetPosition(ctx, owner, id)
		if !found {
			continue
		}
		if _, err := k.AccruePosition(ctx, &basket, &position); err != nil {
			return accrued, err
		}
		if err := k.SetPosition(ctx, position); err != nil {
			return accrued, err
		}
		accrued++
	}
	if err := k.SetBasket(ctx, basket); err != nil {
		return accrued, err
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeAccrue,
		sdk.NewAttribute(types.AttributeKeyOwner, owner),
	))
	return accrued, nil
}

// MintRevenue mints basket.pending_revenue (or a capped amount) to sendTo,
// callable by the config owner, or by the position owner themselves when
// settling a position flagged bad_debt during the bad-debt callback (§6
// MintRevenue).
func (k Keeper) MintRevenue(ctx sdk.Context, sender sdk.AccAddress, sendTo string, repayFor uint64, amount math.Int) (math.Int, error) {
	cfg := k.GetConfig(ctx)
	basket, ok := k.GetBasket(ctx)
	if !ok {
		return math.Int{}, types.ErrBasketNotFound
	}

	authorized := sender.String() == cfg.Owner
	if !authorized && repayFor != 0 {
		if position, found := k.GetPosition(ctx, sender.String(), repayFor); found && position.BadDebt {
			authorized = true
		}
	}
	if !authorized {
		return math.Int{}, types.ErrUnauthorized
	}

	mintAmount := amount
	if mintAmount.IsNil() || !mintAmount.IsPositive() || mintAmount.GT(basket.PendingRevenue) {
		mintAmount = basket.PendingRevenue
	}
	if !mintAmount.IsPositive() {
		return math.ZeroInt(), nil
	}

	recipient := sendTo
	if recipient == "" {
		recipient = sender.String()
	}
	recipientAddr, err := sdk.AccAddressFromBech32(recipient)
	if err != nil {
		return math.Int{}, types.ErrUnauthorized
	}
	if k.tokenProxyKeeper == nil {
		return math.Int{}, types.ErrConfigured.Wrap("token_proxy_addr is required to mint revenue")
	}
	if err := k.tokenProxyKeeper.MintTokens(ctx, recipientAddr, mintAmount); err != nil {
		return math.Int{}, err
	}

	basket.PendingRevenue = basket.PendingRevenue.Sub(mintAmount)
	if err := k.SetBasket(ctx, basket); err != nil {
		return math.Int{}, err
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeMintRevenue,
		sdk.NewAttribute(types.AttributeKeyOwner, sender.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, mintAmount.String()),
	))
	return mintAmount, nil
}

// CallbackBadDebtCheck re-invokes the bad-debt fallback for a position
// already flagged bad_debt, callable only by the module's own account (§6
// Callback(BadDebtCheck): "contract-self only").
func (k Keeper) CallbackBadDebtCheck(ctx sdk.Context, sender sdk.AccAddress, positionOwner string, positionID uint64) (bool, error) {
	selfAddr := k.accountKeeper.GetModuleAddress(types.ModuleName)
	if !sender.Equals(selfAddr) {
		return false, types.ErrNotSelf
	}

	basket, ok := k.GetBasket(ctx)
	if !ok {
		return false, types.ErrBasketNotFound
	}
	position, ok := k.GetPosition(ctx, positionOwner, positionID)
	if !ok {
		return false, types.ErrPositionNotFound
	}
	if !position.BadDebt {
		return true, nil
	}

	prop := types.LiquidationPropagation{PositionID: positionID, PositionOwner: positionOwner}
	if err := k.BadDebtCheck(ctx, &basket, &position, &prop); err != nil {
		return false, err
	}

	resolved := position.CreditAmount.IsZero()
	if resolved {
		position.BadDebt = false
	}

	if err := k.SetBasket(ctx, basket); err != nil {
		return false, err
	}
	if position.IsEmpty() {
		k.DeletePosition(ctx, positionOwner, positionID)
	} else if err := k.SetPosition(ctx, position); err != nil {
		return false, err
	}
	return resolved, nil
}
