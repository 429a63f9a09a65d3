package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/mintvault/cdp-chain/x/inheritance/types"
)

// TestTransferHODL tests HODL token transfer during inheritance
func TestTransferHODL(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Transfer 600,000 HODL to beneficiary
	// 2. Verify balance is updated correctly
	// 3. Verify owner balance decreases
	// 4. Verify beneficiary balance increases
	// 5. Test with multiple beneficiaries
	// 6. Test with percentage calculations
	// 7. Verify transaction is atomic
	// 8. Test insufficient balance handling
	// 9. Test with maximum HODL amount
	// 10. Test rounding/precision
}

// TestTransferEquityShares tests equity share transfer
func TestTransferEquityShares(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Transfer 100 shares of Company A
	// 2. Verify equity keeper is called
	// 3. Verify ownership is updated
	// 4. Verify cap table is updated
	// 5. Test with multiple share classes (common, preferred)
	// 6. Test with restricted shares
	// 7. Test with voting shares
	// 8. Verify transfer events are emitted
	// 9. Test insufficient shares handling
	// 10. Test with fractional shares (if supported)
}

// TestTransferMultipleAssetTypes tests transferring mixed assets
func TestTransferMultipleAssetTypes(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Owner has: 1M HODL, 100 shares Company A, 50 shares Company B
	// 2. Ben1 claims 60%: should get 600K HODL, 60 shares A, 30 shares B
	// 3. Ben2 claims 40%: should get 400K HODL, 40 shares A, 20 shares B
	// 4. Verify all asset types transferred correctly
	// 5. Test with custom tokens
	// 6. Test with NFTs (if supported)
	// 7. Verify atomic transfer (all or nothing)
	// 8. Test partial failure handling
}

// TestTransferToCharity tests charity fallback transfers
func TestTransferToCharity(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. All beneficiaries expire
	// 2. Transfer remaining assets to charity address
	// 3. Verify charity receives correct amount
	// 4. Test with multiple asset types
	// 5. Test with no charity address (assets burned?)
	// 6. Test charity address validation
	// 7. Test 50 year ultra-long inactivity
	// 8. Verify charity transfer event
}

// TestLockedAssetsBlocked tests that locked assets cannot be transferred
func TestLockedAssetsBlocked(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Trigger inheritance switch
	// 2. Assets are locked
	// 3. Owner attempts to transfer locked HODL - FAIL
	// 4. Owner attempts to transfer locked equity - FAIL
	// 5. Verify error message indicates assets are locked
	// 6. Test with DEX orders - should be rejected
	// 7. Test with governance proposals - should work (voting not locked)
	// 8. Verify locked assets are released after completion
	// 9. Test partial locks (some assets locked, others not)
}

// TestEquityLock tests equity locking mechanism
func TestEquityLock(t *testing.T) {
	lock := types.EquityLock{
		CompanyID: 1,
		ClassID:   "common",
		Shares:    math.NewInt(100),
	}

	require.Equal(t, uint64(1), lock.CompanyID)
	require.Equal(t, "common", lock.ClassID)
	require.Equal(t, math.NewInt(100), lock.Shares)
}

// TestLockedAssetDuringInheritance tests locked asset tracking
func TestLockedAssetDuringInheritance(t *testing.T) {
	locked := types.LockedAssetDuringInheritance{
		PlanID: 1,
		Owner:  testOwner,
		LockedCoins: sdk.NewCoins(
			sdk.NewCoin("uhodl", math.NewInt(1000000)),
		),
		LockedEquity: []types.EquityLock{
			{
				CompanyID: 1,
				ClassID:   "common",
				Shares:    math.NewInt(100),
			},
		},
	}

	require.Equal(t, uint64(1), locked.PlanID)
	require.Equal(t, testOwner, locked.Owner)
	require.Len(t, locked.LockedCoins, 1)
	require.Len(t, locked.LockedEquity, 1)
}

// TestAssetLocking tests asset locking during switch trigger
func TestAssetLocking(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Trigger switch for plan
	// 2. Verify all owner's assets are locked
	// 3. Verify LockedAssetDuringInheritance record is created
	// 4. Test with HODL tokens
	// 5. Test with equity shares
	// 6. Test with custom tokens
	// 7. Verify locked amount matches owner's balance
	// 8. Test locking with insufficient assets (partial plan)
}

// TestAssetUnlocking tests asset unlocking after completion
func TestAssetUnlocking(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Complete inheritance process
	// 2. Verify locked assets are released
	// 3. Verify LockedAssetDuringInheritance record is deleted
	// 4. Test with cancelled switch (early unlock)
	// 5. Test with multiple plans (unlock per plan)
	// 6. Verify owner regains control of remaining assets
}

// TestAssetSnapshot tests asset snapshotting at trigger time
func TestAssetSnapshot(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Trigger switch with 1M HODL
	// 2. Owner receives 500K HODL from external source
	// 3. Beneficiary claims - should only get percentage of 1M (snapshot)
	// 4. Verify new assets (500K) are not distributed
	// 5. Test with equity shares
	// 6. Verify snapshot immutability
	// 7. Test with assets that change value (equity price)
	// 8. Verify quantity is snapshotted, not value
}

// TestTransferWithInsufficientAssets tests handling of insufficient assets
func TestTransferWithInsufficientAssets(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Plan specifies 1M HODL transfer
	// 2. Owner only has 500K HODL at claim time
	// 3. Verify error or proportional distribution
	// 4. Test with equity shares (owner sold some)
	// 5. Test with completely missing asset type
	// 6. Verify beneficiaries are notified
	// 7. Test partial claims vs full rejection
}

// TestAssetTransferAtomic tests atomic transfer of all assets
func TestAssetTransferAtomic(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Beneficiary claims HODL + Equity + CustomToken
	// 2. HODL transfer succeeds
	// 3. Equity transfer fails (e.g., owner banned as shareholder)
	// 4. Verify entire transaction rolls back
	// 5. Verify beneficiary receives nothing (atomic)
	// 6. Test retry mechanism
	// 7. Verify state consistency
}

// TestAssetTransferPrecision tests precision in asset calculations
func TestAssetTransferPrecision(t *testing.T) {
	tests := []struct {
		name            string
		totalAmount     math.Int
		percentage      math.LegacyDec
		expectedAmount  math.Int
	}{
		{
			name:           "50% of 1,000,000",
			totalAmount:    math.NewInt(1000000),
			percentage:     math.LegacyNewDecWithPrec(50, 2),
			expectedAmount: math.NewInt(500000),
		},
		{
			name:           "33.33% of 1,000,000",
			totalAmount:    math.NewInt(1000000),
			percentage:     math.LegacyNewDecWithPrec(3333, 4), // 0.3333
			expectedAmount: math.NewInt(333300), // Truncated
		},
		{
			name:           "66.67% of 1,000,000",
			totalAmount:    math.NewInt(1000000),
			percentage:     math.LegacyNewDecWithPrec(6667, 4), // 0.6667
			expectedAmount: math.NewInt(666700), // Truncated
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Calculate amount
			amountDec := tt.percentage.MulInt(tt.totalAmount)
			amount := amountDec.TruncateInt()

			require.Equal(t, tt.expectedAmount, amount)
		})
	}
}

// TestRoundingErrors tests handling of rounding in asset distribution
func TestRoundingErrors(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Total: 1,000,000 HODL
	// 2. Ben1: 33.33%, Ben2: 33.33%, Ben3: 33.34%
	// 3. Calculate each share with rounding
	// 4. Verify total = 1,000,000 (no loss)
	// 5. Test with many beneficiaries (10+)
	// 6. Test with very small percentages (0.01%)
	// 7. Verify remainder handling
	// 8. Test with different precision levels
}

// TestAssetValuation tests asset valuation at transfer time
func TestAssetValuation(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Equity valued at $10/share at trigger
	// 2. Equity valued at $15/share at claim
	// 3. Verify beneficiary gets SHARES not VALUE
	// 4. Test with volatile assets
	// 5. Verify quantity is what matters, not price
	// 6. Test with custom token price changes
}

// TestBurnedAssets tests handling of burned/destroyed assets
func TestBurnedAssets(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Owner's company is delisted
	// 2. Equity shares become worthless
	// 3. Verify beneficiaries cannot claim burned assets
	// 4. Verify remaining assets are still distributed
	// 5. Test with partially burned assets
	// 6. Test with no charity address (unclaimed assets burned)
}

// TestAssetTransferEvents tests event emission during transfers
func TestAssetTransferEvents(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Verify AssetTransferred event per asset type
	// 2. Verify event includes amounts and beneficiary
	// 3. Test with multiple asset types
	// 4. Verify events can be queried by plan ID
	// 5. Verify events include transaction hash
	// 6. Test event attributes are correct
}

// TestCrosModuleIntegration tests integration with other modules
func TestCrossModuleIntegration(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Transfer triggers bank module Send
	// 2. Transfer triggers equity module TransferShares
	// 3. Verify hooks are called correctly
	// 4. Test with module account permissions
	// 5. Verify proper keeper dependencies
	// 6. Test with missing keeper (should fail gracefully)
}
