package keeper

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/log"
	"cosmossdk.io/store/prefix"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mintvault/cdp-chain/x/cdp/keeper/replyrouter"
	"github.com/mintvault/cdp-chain/x/cdp/types"
)

// Keeper of the cdp store
type Keeper struct {
	cdc           codec.BinaryCodec
	storeKey      storetypes.StoreKey
	memKey        storetypes.StoreKey
	bankKeeper    types.BankKeeper
	accountKeeper types.AccountKeeper

	oracleKeeper         types.OracleKeeper
	bidQueueKeeper       types.BidQueueKeeper
	stabilityPoolKeeper  types.StabilityPoolKeeper
	routerKeeper         types.RouterKeeper
	tokenProxyKeeper     types.TokenProxyKeeper
	debtAuctionKeeper    types.DebtAuctionKeeper
	liquidityCheckKeeper types.LiquidityCheckKeeper
	discountsKeeper      types.DiscountsKeeper

	replies *replyrouter.Router

	metrics *Metrics
}

// NewKeeper creates a new cdp Keeper instance. External collaborators (§6) may be
// nil at construction time and wired later via the Set* setters, mirroring the
// teacher's late-binding pattern for optional cross-module dependencies.
func NewKeeper(
	cdc codec.BinaryCodec,
	storeKey, memKey storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	accountKeeper types.AccountKeeper,
) *Keeper {
	return &Keeper{
		cdc:           cdc,
		storeKey:      storeKey,
		memKey:        memKey,
		bankKeeper:    bankKeeper,
		accountKeeper: accountKeeper,
		replies:       replyrouter.NewRouter(),
		metrics:       NewMetrics(),
	}
}

func (k *Keeper) SetOracleKeeper(v types.OracleKeeper)                 { k.oracleKeeper = v }
func (k *Keeper) SetBidQueueKeeper(v types.BidQueueKeeper)             { k.bidQueueKeeper = v }
func (k *Keeper) SetStabilityPoolKeeper(v types.StabilityPoolKeeper)   { k.stabilityPoolKeeper = v }
func (k *Keeper) SetRouterKeeper(v types.RouterKeeper)                 { k.routerKeeper = v }
func (k *Keeper) SetTokenProxyKeeper(v types.TokenProxyKeeper)         { k.tokenProxyKeeper = v }
func (k *Keeper) SetDebtAuctionKeeper(v types.DebtAuctionKeeper)       { k.debtAuctionKeeper = v }
func (k *Keeper) SetLiquidityCheckKeeper(v types.LiquidityCheckKeeper) { k.liquidityCheckKeeper = v }
func (k *Keeper) SetDiscountsKeeper(v types.DiscountsKeeper)           { k.discountsKeeper = v }

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// =============================================================================
// CONFIG (singleton)
// =============================================================================

func (k Keeper) GetConfig(ctx sdk.Context) types.Config {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.ConfigKey)
	if bz == nil {
		return types.DefaultConfig("")
	}
	var cfg types.Config
	if err := json.Unmarshal(bz, &cfg); err != nil {
		return types.DefaultConfig("")
	}
	return cfg
}

func (k Keeper) SetConfig(ctx sdk.Context, cfg types.Config) error {
	store := ctx.KVStore(k.storeKey)
	bz, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	store.Set(types.ConfigKey, bz)
	return nil
}

// =============================================================================
// BASKET (singleton)
// =============================================================================

func (k Keeper) GetBasket(ctx sdk.Context) (types.Basket, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.BasketKey)
	if bz == nil {
		return types.Basket{}, false
	}
	var basket types.Basket
	if err := json.Unmarshal(bz, &basket); err != nil {
		return types.Basket{}, false
	}
	return basket, true
}

func (k Keeper) SetBasket(ctx sdk.Context, basket types.Basket) error {
	store := ctx.KVStore(k.storeKey)
	bz, err := json.Marshal(basket)
	if err != nil {
		k.Logger(ctx).Error("failed to marshal basket", "error", err)
		return fmt.Errorf("failed to marshal basket: %w", err)
	}
	store.Set(types.BasketKey, bz)
	return nil
}

// =============================================================================
// POSITIONS
// =============================================================================

// GetNextPositionID allocates a monotonic, per-owner id starting at 1.
func (k Keeper) GetNextPositionID(ctx sdk.Context, owner string) uint64 {
	store := ctx.KVStore(k.storeKey)
	key := types.GetOwnerPositionCounterKey(owner)
	bz := store.Get(key)

	var counter uint64 = 1
	if bz != nil {
		counter = sdk.BigEndianToUint64(bz)
	}
	store.Set(key, sdk.Uint64ToBigEndian(counter+1))
	return counter
}

func (k Keeper) GetPosition(ctx sdk.Context, owner string, id uint64) (types.Position, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.GetPositionKey(owner, id))
	if bz == nil {
		return types.Position{}, false
	}
	var pos types.Position
	if err := json.Unmarshal(bz, &pos); err != nil {
		return types.Position{}, false
	}
	return pos, true
}

func (k Keeper) SetPosition(ctx sdk.Context, pos types.Position) error {
	store := ctx.KVStore(k.storeKey)
	bz, err := json.Marshal(pos)
	if err != nil {
		k.Logger(ctx).Error("failed to marshal position", "error", err)
		return fmt.Errorf("failed to marshal position: %w", err)
	}
	store.Set(types.GetPositionKey(pos.Owner, pos.ID), bz)
	return nil
}

func (k Keeper) DeletePosition(ctx sdk.Context, owner string, id uint64) {
	store := ctx.KVStore(k.storeKey)
	store.Delete(types.GetPositionKey(owner, id))
}

// GetOwnerPositions returns every position owned by owner.
func (k Keeper) GetOwnerPositions(ctx sdk.Context, owner string) []types.Position {
	store := ctx.KVStore(k.storeKey)
	iterator := prefix.NewStore(store, types.GetOwnerPositionPrefixKey(owner)).Iterator(nil, nil)
	defer iterator.Close()

	var positions []types.Position
	for ; iterator.Valid(); iterator.Next() {
		var pos types.Position
		if err := json.Unmarshal(iterator.Value(), &pos); err != nil {
			continue
		}
		positions = append(positions, pos)
	}
	return positions
}

// GetAllPositions scans the whole basket paginated by a start-after-owner cursor.
func (k Keeper) GetAllPositions(ctx sdk.Context, startAfterOwner string, limit uint64) (positions []types.Position, nextCursor string) {
	store := ctx.KVStore(k.storeKey)
	positionStore := prefix.NewStore(store, types.PositionPrefix)

	var start []byte
	if startAfterOwner != "" {
		start = append([]byte(startAfterOwner), []byte(";")...) // lexicographically after any key for this owner
	}

	iterator := positionStore.Iterator(start, nil)
	defer iterator.Close()

	if limit == 0 {
		limit = 100
	}

	var count uint64
	for ; iterator.Valid(); iterator.Next() {
		if count >= limit {
			var pos types.Position
			if err := json.Unmarshal(iterator.Value(), &pos); err == nil {
				nextCursor = pos.Owner
			}
			break
		}
		var pos types.Position
		if err := json.Unmarshal(iterator.Value(), &pos); err != nil {
			continue
		}
		positions = append(positions, pos)
		count++
	}
	return positions, nextCursor
}

// =============================================================================
// PROPAGATION RECORDS (continuation state across external-call boundaries, §5, §9)
// =============================================================================

func (k Keeper) SetLiquidationPropagation(ctx sdk.Context, p types.LiquidationPropagation) error {
	store := ctx.KVStore(k.storeKey)
	bz, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal liquidation propagation: %w", err)
	}
	store.Set(types.GetLiquidationPropagationKey(p.ReplyID), bz)
	return nil
}

func (k Keeper) GetLiquidationPropagation(ctx sdk.Context, replyID string) (types.LiquidationPropagation, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.GetLiquidationPropagationKey(replyID))
	if bz == nil {
		return types.LiquidationPropagation{}, false
	}
	var p types.LiquidationPropagation
	if err := json.Unmarshal(bz, &p); err != nil {
		return types.LiquidationPropagation{}, false
	}
	return p, true
}

func (k Keeper) DeleteLiquidationPropagation(ctx sdk.Context, replyID string) {
	store := ctx.KVStore(k.storeKey)
	store.Delete(types.GetLiquidationPropagationKey(replyID))
}

// IsLiquidationInFlight reports whether a position already has an unresolved
// liquidation propagation, serializing concurrent liquidation attempts (§5).
func (k Keeper) IsLiquidationInFlight(ctx sdk.Context, owner string, id uint64) bool {
	store := ctx.KVStore(k.storeKey)
	return store.Get(types.GetPositionLiquidationLockKey(owner, id)) != nil
}

func (k Keeper) lockPositionForLiquidation(ctx sdk.Context, owner string, id uint64) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.GetPositionLiquidationLockKey(owner, id), []byte{1})
}

func (k Keeper) unlockPositionForLiquidation(ctx sdk.Context, owner string, id uint64) {
	store := ctx.KVStore(k.storeKey)
	store.Delete(types.GetPositionLiquidationLockKey(owner, id))
}
