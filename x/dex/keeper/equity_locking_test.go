package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	_ "github.com/stretchr/testify/require" // Reserved for future use
)

// TestEquityLocking tests the equity locking mechanism for atomic swaps
func TestEquityLocking(t *testing.T) {
	// This is a placeholder test that documents the expected behavior
	// In a full implementation, this would use the test framework

	t.Run("lock equity for swap", func(t *testing.T) {
		// Setup:
		// - Create a trader account
		// - Create a company with equity tokens
		// - Mint equity tokens to trader

		// Expected behavior:
		// 1. LockAssetForSwap transfers equity from trader to DEX module
		// 2. Creates a locked equity record
		// 3. Registers beneficial owner for dividend tracking

		// Assertions:
		// - Trader balance decreases by locked amount
		// - DEX module balance increases by locked amount
		// - Locked equity record exists
		// - Beneficial owner record exists

		t.Skip("Test framework setup required")
	})

	t.Run("unlock equity on swap failure", func(t *testing.T) {
		// Setup:
		// - Lock equity first

		// Expected behavior:
		// 1. UnlockAssetForSwap returns equity from DEX module to trader
		// 2. Removes locked equity record
		// 3. Unregisters beneficial owner

		// Assertions:
		// - Trader balance increases by unlocked amount
		// - DEX module balance decreases by unlocked amount
		// - Locked equity record removed
		// - Beneficial owner record removed

		t.Skip("Test framework setup required")
	})

	t.Run("execute equity to equity swap", func(t *testing.T) {
		// Setup:
		// - Lock source equity
		// - Have destination equity available

		// Expected behavior:
		// 1. Burns source equity
		// 2. Mints destination equity
		// 3. Transfers destination equity to trader

		// Assertions:
		// - Source equity burned
		// - Destination equity minted and transferred
		// - Swap event emitted

		t.Skip("Test framework setup required")
	})

	t.Run("beneficial owner receives dividends while locked", func(t *testing.T) {
		// Setup:
		// - Lock equity for swap
		// - Declare dividend

		// Expected behavior:
		// - Trader (beneficial owner) should receive dividend
		// - Even though shares are in DEX module account

		// Assertions:
		// - Trader receives dividend payment
		// - DEX module does not receive dividend

		t.Skip("Test framework setup required")
	})
}

// TestEquityLockingEdgeCases tests edge cases in equity locking
func TestEquityLockingEdgeCases(t *testing.T) {
	t.Run("insufficient equity", func(t *testing.T) {
		// Verify error when trader doesn't have enough equity
		t.Skip("Test framework setup required")
	})

	t.Run("double lock same equity", func(t *testing.T) {
		// Verify locking same equity twice accumulates correctly
		t.Skip("Test framework setup required")
	})

	t.Run("unlock more than locked", func(t *testing.T) {
		// Verify graceful handling when unlock amount exceeds locked
		t.Skip("Test framework setup required")
	})

	t.Run("unlock without lock", func(t *testing.T) {
		// Verify graceful handling when unlocking non-locked equity
		t.Skip("Test framework setup required")
	})

	t.Run("swap with non-existent equity", func(t *testing.T) {
		// Verify error handling for invalid equity symbols
		t.Skip("Test framework setup required")
	})
}

// mockEquityKeeper is a mock implementation for testing
type mockEquityKeeper struct {
	companies      map[string]uint64
	beneficialOwners map[string]bool
}

func newMockEquityKeeper() *mockEquityKeeper {
	return &mockEquityKeeper{
		companies:      make(map[string]uint64),
		beneficialOwners: make(map[string]bool),
	}
}

func (m *mockEquityKeeper) GetCompanyBySymbol(ctx sdk.Context, symbol string) (uint64, bool) {
	id, found := m.companies[symbol]
	return id, found
}

func (m *mockEquityKeeper) RegisterBeneficialOwner(
	ctx sdk.Context,
	moduleAccount string,
	companyID uint64,
	classID string,
	beneficialOwner string,
	shares math.Int,
	referenceID uint64,
	referenceType string,
) error {
	key := moduleAccount + ":" + beneficialOwner
	m.beneficialOwners[key] = true
	return nil
}

func (m *mockEquityKeeper) UnregisterBeneficialOwner(
	ctx sdk.Context,
	moduleAccount string,
	companyID uint64,
	classID string,
	beneficialOwner string,
	referenceID uint64,
) error {
	key := moduleAccount + ":" + beneficialOwner
	delete(m.beneficialOwners, key)
	return nil
}

func (m *mockEquityKeeper) IsSymbolTaken(ctx sdk.Context, symbol string) bool {
	_, found := m.companies[symbol]
	return found
}

func (m *mockEquityKeeper) IsTradingHalted(ctx sdk.Context, companyID uint64) bool {
	return false
}

func (m *mockEquityKeeper) IsBlacklisted(ctx sdk.Context, companyID uint64, address string) bool {
	return false
}

// documentEquityLockingFlow documents how the equity locking flow should work
// This is not a test, just documentation in code form
func documentEquityLockingFlow() {
	// Pseudocode for equity locking flow:

	// 1. Trader wants to swap APPLE equity for TESLA equity
	// traderAddr := "sharehodl1trader..."
	// fromSymbol := "APPLE"
	// toSymbol := "TESLA"
	// amount := math.NewInt(100)

	// 2. Lock APPLE equity
	// err := keeper.LockAssetForSwap(ctx, traderAddr, fromSymbol, amount)
	// This:
	//   - Transfers 100 APPLE tokens from trader to DEX module
	//   - Creates locked equity record
	//   - Registers beneficial owner (trader still gets dividends)

	// 3. Calculate exchange rate
	// exchangeRate := keeper.GetAtomicSwapRate(ctx, fromSymbol, toSymbol)
	// outputAmount := exchangeRate.MulInt(amount)

	// 4. Execute swap
	// err := keeper.ExecuteSwapTransfer(ctx, traderAddr, fromSymbol, toSymbol, amount, outputAmount)
	// This:
	//   - Burns 100 APPLE tokens from DEX module
	//   - Mints X TESLA tokens to DEX module
	//   - Transfers X TESLA tokens to trader

	// 5. If swap fails, unlock
	// keeper.UnlockAssetForSwap(ctx, traderAddr, fromSymbol, amount)
	// This:
	//   - Returns 100 APPLE tokens to trader
	//   - Removes locked equity record
	//   - Unregisters beneficial owner
}
