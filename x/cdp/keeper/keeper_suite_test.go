package keeper_test

import (
	"context"
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cometbfttypes "github.com/cometbft/cometbft/api/cometbft/types/v2"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/suite"

	"github.com/mintvault/cdp-chain/x/cdp/keeper"
	"github.com/mintvault/cdp-chain/x/cdp/types"
)

// mockBankKeeper is a minimal in-memory bank keeper covering the module
// account/user coin movements exercised by deposit, withdraw and repay.
type mockBankKeeper struct {
	balances map[string]sdk.Coins
}

func newMockBankKeeper() *mockBankKeeper {
	return &mockBankKeeper{balances: make(map[string]sdk.Coins)}
}

func (m *mockBankKeeper) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.balances[addr.String()].AmountOf(denom))
}

func (m *mockBankKeeper) SendCoins(ctx context.Context, from, to sdk.AccAddress, amt sdk.Coins) error {
	if !m.balances[from.String()].IsAllGTE(amt) {
		return sdkerrors.ErrInsufficientFunds
	}
	m.balances[from.String()] = m.balances[from.String()].Sub(amt...)
	m.balances[to.String()] = m.balances[to.String()].Add(amt...)
	return nil
}

func (m *mockBankKeeper) SendCoinsFromAccountToModule(ctx context.Context, from sdk.AccAddress, module string, amt sdk.Coins) error {
	if !m.balances[from.String()].IsAllGTE(amt) {
		return sdkerrors.ErrInsufficientFunds
	}
	m.balances[from.String()] = m.balances[from.String()].Sub(amt...)
	m.balances[moduleAddr(module)] = m.balances[moduleAddr(module)].Add(amt...)
	return nil
}

func (m *mockBankKeeper) SendCoinsFromModuleToAccount(ctx context.Context, module string, to sdk.AccAddress, amt sdk.Coins) error {
	if !m.balances[moduleAddr(module)].IsAllGTE(amt) {
		return sdkerrors.ErrInsufficientFunds
	}
	m.balances[moduleAddr(module)] = m.balances[moduleAddr(module)].Sub(amt...)
	m.balances[to.String()] = m.balances[to.String()].Add(amt...)
	return nil
}

func (m *mockBankKeeper) MintCoins(ctx context.Context, module string, amt sdk.Coins) error {
	m.balances[moduleAddr(module)] = m.balances[moduleAddr(module)].Add(amt...)
	return nil
}

func (m *mockBankKeeper) BurnCoins(ctx context.Context, module string, amt sdk.Coins) error {
	if !m.balances[moduleAddr(module)].IsAllGTE(amt) {
		return sdkerrors.ErrInsufficientFunds
	}
	m.balances[moduleAddr(module)] = m.balances[moduleAddr(module)].Sub(amt...)
	return nil
}

func moduleAddr(name string) string {
	return "module_" + name
}

func (m *mockBankKeeper) setBalance(addr sdk.AccAddress, coins sdk.Coins) {
	m.balances[addr.String()] = coins
}

// mockAccountKeeper resolves a fixed module account address so self-only
// callback checks (CallbackBadDebtCheck) can be exercised.
type mockAccountKeeper struct {
	moduleAddr sdk.AccAddress
}

func (m *mockAccountKeeper) GetModuleAddress(name string) sdk.AccAddress {
	return m.moduleAddr
}

// mockOracleKeeper returns a fixed price per asset and the suite's current
// block time as the quote's timestamp, unless explicitly staled.
type mockOracleKeeper struct {
	prices map[string]math.LegacyDec
	stale  map[string]bool
	now    func() int64
}

func newMockOracleKeeper(now func() int64) *mockOracleKeeper {
	return &mockOracleKeeper{prices: make(map[string]math.LegacyDec), stale: make(map[string]bool), now: now}
}

func (m *mockOracleKeeper) Prices(ctx sdk.Context, assets []types.AssetInfo, twap, limit uint64) ([]types.PriceResponse, error) {
	out := make([]types.PriceResponse, 0, len(assets))
	for _, a := range assets {
		price, ok := m.prices[a.String()]
		if !ok {
			return nil, types.ErrOracleUnavailable.Wrapf("no price for %s", a)
		}
		lastUpdated := m.now()
		if m.stale[a.String()] {
			lastUpdated = 0
		}
		out = append(out, types.PriceResponse{Info: a, Price: price, LastUpdated: lastUpdated})
	}
	return out, nil
}

// mockTokenProxyKeeper tracks minted/burned totals per address without
// touching the bank balances (the credit asset is a token-factory denom
// outside the mock bank keeper's coin universe).
type mockTokenProxyKeeper struct {
	minted map[string]math.Int
	burned map[string]math.Int
}

func newMockTokenProxyKeeper() *mockTokenProxyKeeper {
	return &mockTokenProxyKeeper{minted: make(map[string]math.Int), burned: make(map[string]math.Int)}
}

func (m *mockTokenProxyKeeper) MintTokens(ctx sdk.Context, to sdk.AccAddress, amount math.Int) error {
	cur, ok := m.minted[to.String()]
	if !ok {
		cur = math.ZeroInt()
	}
	m.minted[to.String()] = cur.Add(amount)
	return nil
}

func (m *mockTokenProxyKeeper) BurnTokens(ctx sdk.Context, from sdk.AccAddress, amount math.Int) error {
	cur, ok := m.burned[from.String()]
	if !ok {
		cur = math.ZeroInt()
	}
	m.burned[from.String()] = cur.Add(amount)
	return nil
}

// mockBidQueueKeeper always declines to fill, pushing the waterfall through
// to the stability pool leg unless a test configures otherwise. repayFraction
// is the share of the requested repayAmount it fills; the collateral it takes
// scales by the same fraction of whatever the caller currently holds, so it
// never reports owing more collateral than is actually on the position (the
// real queue quotes collateral in its own units, never in credit-value units).
type mockBidQueueKeeper struct {
	repayFraction math.LegacyDec
	held          math.Int
}

func (m *mockBidQueueKeeper) Liquidate(ctx sdk.Context, info types.AssetInfo, repayAmount, maxPremium math.LegacyDec) (math.LegacyDec, math.Int, error) {
	if m.repayFraction.IsNil() || m.repayFraction.IsZero() {
		return math.LegacyZeroDec(), math.ZeroInt(), nil
	}
	repaid := repayAmount.Mul(m.repayFraction)
	collateralOwed := math.ZeroInt()
	if !m.held.IsNil() && m.held.IsPositive() {
		collateralOwed = m.held.ToLegacyDec().Mul(m.repayFraction).TruncateInt()
	}
	return repaid, collateralOwed, nil
}

func (m *mockBidQueueKeeper) UpdateQueue(ctx sdk.Context, info types.AssetInfo, maxPremium math.LegacyDec) error {
	return nil
}

// mockStabilityPoolKeeper absorbs the full offered repay amount by default.
type mockStabilityPoolKeeper struct {
	leftoverFraction math.LegacyDec
}

func (m *mockStabilityPoolKeeper) Liquidate(ctx sdk.Context, repayAmount math.LegacyDec, offered []types.CAsset) (math.LegacyDec, error) {
	if m.leftoverFraction.IsNil() {
		return math.LegacyZeroDec(), nil
	}
	return repayAmount.Mul(m.leftoverFraction), nil
}

// mockRouterKeeper swaps 1:1 against the configured credit price.
type mockRouterKeeper struct{}

func (m *mockRouterKeeper) Swap(ctx sdk.Context, assetIn types.Asset, maxSpread math.LegacyDec) (math.LegacyDec, error) {
	return assetIn.Amount.ToLegacyDec(), nil
}

// mockDebtAuctionKeeper records every auction it was asked to start instead of
// dispatching anywhere; tests assert against startedFor/lastAsset.
type mockDebtAuctionKeeper struct {
	startedFor []uint64
	lastAsset  types.Asset
}

func (m *mockDebtAuctionKeeper) StartAuction(ctx sdk.Context, positionID uint64, auctionAsset types.Asset, sendTo string) error {
	m.startedFor = append(m.startedFor, positionID)
	m.lastAsset = auctionAsset
	return nil
}

// KeeperTestSuite wires an in-memory multistore Keeper with mock collaborators
// standing in for the oracle, bid queue, stability pool, router and token
// proxy contracts (§6).
type KeeperTestSuite struct {
	suite.Suite

	ctx      sdk.Context
	keeper   *keeper.Keeper
	bank     *mockBankKeeper
	oracle   *mockOracleKeeper
	proxy    *mockTokenProxyKeeper
	bidQ     *mockBidQueueKeeper
	sp       *mockStabilityPoolKeeper
	debtAuct *mockDebtAuctionKeeper
	moduleA  sdk.AccAddress
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

func (s *KeeperTestSuite) SetupTest() {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	memKey := storetypes.NewMemoryStoreKey(types.MemStoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(memKey, storetypes.StoreTypeMemory, nil)
	s.Require().NoError(stateStore.LoadLatestVersion())

	header := cometbfttypes.Header{Height: 1, Time: time.Unix(1700000000, 0)}
	s.ctx = sdk.NewContext(stateStore, header, false, log.NewNopLogger())

	s.bank = newMockBankKeeper()
	s.moduleA = sdk.AccAddress([]byte("cdp_module_account__"))
	accountKeeper := &mockAccountKeeper{moduleAddr: s.moduleA}

	var cdc codec.BinaryCodec = nil
	s.keeper = keeper.NewKeeper(cdc, storeKey, memKey, s.bank, accountKeeper)

	s.oracle = newMockOracleKeeper(func() int64 { return s.ctx.BlockTime().Unix() })
	s.proxy = newMockTokenProxyKeeper()
	s.bidQ = &mockBidQueueKeeper{}
	s.sp = &mockStabilityPoolKeeper{}
	s.debtAuct = &mockDebtAuctionKeeper{}

	s.keeper.SetOracleKeeper(s.oracle)
	s.keeper.SetTokenProxyKeeper(s.proxy)
	s.keeper.SetBidQueueKeeper(s.bidQ)
	s.keeper.SetStabilityPoolKeeper(s.sp)
	s.keeper.SetRouterKeeper(&mockRouterKeeper{})
	s.keeper.SetDebtAuctionKeeper(s.debtAuct)
}

// setPrice seeds a constant oracle price for a native collateral denom.
func (s *KeeperTestSuite) setPrice(denom string, price math.LegacyDec) {
	s.oracle.prices[denom] = price
}

// createBasket installs a basket with a single registered collateral type and
// the given credit price, generously capped so the happy-path lifecycle tests
// don't trip supply caps.
func (s *KeeperTestSuite) createBasket(owner sdk.AccAddress, collateralDenom, creditDenom string, creditPrice math.LegacyDec) {
	s.Require().NoError(s.keeper.CreateBasket(
		s.ctx, owner,
		[]types.CAsset{{
			Asset:        types.NewAsset(types.NewNativeAssetInfo(collateralDenom), math.ZeroInt()),
			MaxBorrowLTV: math.LegacyNewDecWithPrec(6, 1),
			MaxLTV:       math.LegacyNewDecWithPrec(8, 1),
			RateIndex:    math.LegacyOneDec(),
		}},
		types.NewAsset(types.NewNativeAssetInfo(creditDenom), math.ZeroInt()),
		creditPrice,
		math.LegacyNewDecWithPrec(2, 2),
		"",
	))
	basket, ok := s.keeper.GetBasket(s.ctx)
	s.Require().True(ok)
	basket.CollateralSupplyCaps[0].DebtCap = math.NewInt(1_000_000_000_000)
	s.Require().NoError(s.keeper.SetBasket(s.ctx, basket))
}
