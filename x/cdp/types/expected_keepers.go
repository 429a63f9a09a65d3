package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper defines the expected bank keeper interface
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SendCoins(ctx context.Context, fromAddr sdk.AccAddress, toAddr sdk.AccAddress, amt sdk.Coins) error
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	MintCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
	BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
}

// AccountKeeper defines the expected account keeper interface
type AccountKeeper interface {
	GetModuleAddress(moduleName string) sdk.AccAddress
}

// OracleKeeper is the expected shape of the external price oracle (§6: Prices).
// It is an external collaborator; its internals are out of scope.
type OracleKeeper interface {
	Prices(ctx sdk.Context, assetInfos []AssetInfo, twapTimeframeSeconds uint64, oracleTimeLimitSeconds uint64) ([]PriceResponse, error)
}

// BidQueueKeeper is the expected shape of the liquidation bid queue (§6).
type BidQueueKeeper interface {
	// Liquidate offers up to repayAmount of credit for collateral denominated in info.
	// Returns the credit actually repaid and the collateral amount owed back by the
	// queue. A zero repayAmount returned means the queue declined to fill.
	Liquidate(ctx sdk.Context, info AssetInfo, repayAmount math.LegacyDec, maxPremium math.LegacyDec) (repaid math.LegacyDec, collateralOwed math.Int, err error)
	UpdateQueue(ctx sdk.Context, info AssetInfo, maxPremium math.LegacyDec) error
}

// StabilityPoolKeeper is the expected shape of the stability pool (§6).
type StabilityPoolKeeper interface {
	// Liquidate offers up to repayAmount of credit in a single call; fill amount is
	// reported back via LeftoverRepayment (the portion the pool could NOT absorb).
	Liquidate(ctx sdk.Context, repayAmount math.LegacyDec, collateralOffered []CAsset) (leftoverRepayment math.LegacyDec, err error)
}

// RouterKeeper is the expected shape of the DEX router (§6).
type RouterKeeper interface {
	// Swap converts assetIn into the credit asset, honoring maxSpread, returning the
	// credit amount received.
	Swap(ctx sdk.Context, assetIn Asset, maxSpread math.LegacyDec) (creditReceived math.LegacyDec, err error)
}

// TokenProxyKeeper is the expected shape of the credit token-factory proxy (§6).
type TokenProxyKeeper interface {
	MintTokens(ctx sdk.Context, to sdk.AccAddress, amount math.Int) error
	BurnTokens(ctx sdk.Context, from sdk.AccAddress, amount math.Int) error
}

// DebtAuctionKeeper is the expected shape of the debt auction of last resort (§6).
type DebtAuctionKeeper interface {
	StartAuction(ctx sdk.Context, positionID uint64, auctionAsset Asset, sendTo string) error
}

// LiquidityCheckKeeper is the expected shape of the external liquidity checker (§6).
type LiquidityCheckKeeper interface {
	StabilityPoolLiquidity(ctx sdk.Context, info AssetInfo) math.Int
}

// DiscountsKeeper is the expected shape of the discounts collaborator (§6).
type DiscountsKeeper interface {
	FeeDiscount(ctx sdk.Context, addr string) math.LegacyDec
}
