package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/mintvault/cdp-chain/x/equity/keeper"
)

var (
	// Pre-computed valid test addresses
	testAddr1 = sdk.AccAddress([]byte("test_address_1______")).String()
	testAddr2 = sdk.AccAddress([]byte("test_address_2______")).String()
	testAddr3 = sdk.AccAddress([]byte("test_address_3______")).String()
)

// TestRegisterBeneficialOwner tests registering beneficial ownership
func TestRegisterBeneficialOwner(t *testing.T) {
	// Setup test environment (you'll need to implement this based on your test framework)
	// k := setupKeeper(t)
	// ctx := sdk.Context{}

	// Test data - these would be used when keeper setup is available
	_ = "escrow"              // moduleAccount
	_ = uint64(1)             // companyID
	_ = "COMMON"              // classID
	_ = testAddr1             // beneficialOwner
	_ = math.NewInt(1000)     // shares
	_ = uint64(42)            // refID
	_ = "escrow"              // refType

	// TODO: Implement test once keeper setup is available
	// err := k.RegisterBeneficialOwner(ctx, moduleAccount, companyID, classID, beneficialOwner, shares, refID, refType)
	// require.NoError(t, err)

	// Verify the record was stored
	// ownership, found := k.GetBeneficialOwnerForReference(ctx, moduleAccount, companyID, classID, beneficialOwner, refID)
	// require.True(t, found)
	// require.Equal(t, moduleAccount, ownership.ModuleAccount)
	// require.Equal(t, companyID, ownership.CompanyID)
	// require.Equal(t, classID, ownership.ClassID)
	// require.Equal(t, beneficialOwner, ownership.BeneficialOwner)
	// require.Equal(t, shares, ownership.Shares)
	// require.Equal(t, refID, ownership.ReferenceID)
	// require.Equal(t, refType, ownership.ReferenceType)
}

// TestUnregisterBeneficialOwner tests unregistering beneficial ownership
func TestUnregisterBeneficialOwner(t *testing.T) {
	// Test removing a beneficial ownership record
	// This would be called when escrow completes, loan is repaid, or order is filled
	t.Skip("Requires keeper setup")
}

// TestUpdateBeneficialOwnerShares tests updating share counts
func TestUpdateBeneficialOwnerShares(t *testing.T) {
	// Test updating shares for partial fills in DEX or partial loan repayments
	t.Skip("Requires keeper setup")
}

// TestGetBeneficialOwnersForDividend tests the dividend distribution logic
func TestGetBeneficialOwnersForDividend(t *testing.T) {
	// Test that dividend recipients include:
	// 1. Direct shareholders
	// 2. Beneficial owners of shares in module accounts
	// This is the KEY test for the beneficial owner registry
	t.Skip("Requires keeper setup")
}

// TestMultipleModuleAccounts tests shares split across multiple modules
func TestMultipleModuleAccounts(t *testing.T) {
	// Test scenario:
	// Alice has 1000 shares total:
	// - 500 in her wallet (direct)
	// - 300 in escrow
	// - 200 on DEX as open order
	// When dividend is declared, Alice should receive dividend for ALL 1000 shares
	t.Skip("Requires keeper setup")
}

// TestBeneficialOwnerValidation tests input validation
func TestBeneficialOwnerValidation(t *testing.T) {
	tests := []struct {
		name            string
		moduleAccount   string
		companyID       uint64
		classID         string
		beneficialOwner string
		shares          math.Int
		refID           uint64
		refType         string
		expectError     bool
		errorContains   string
	}{
		{
			name:            "valid record",
			moduleAccount:   "escrow",
			companyID:       1,
			classID:         "COMMON",
			beneficialOwner: testAddr1,
			shares:          math.NewInt(1000),
			refID:           1,
			refType:         "escrow",
			expectError:     false,
		},
		{
			name:            "empty module account",
			moduleAccount:   "",
			companyID:       1,
			classID:         "COMMON",
			beneficialOwner: testAddr1,
			shares:          math.NewInt(1000),
			refID:           1,
			refType:         "escrow",
			expectError:     true,
			errorContains:   "module account cannot be empty",
		},
		{
			name:            "zero company ID",
			moduleAccount:   "escrow",
			companyID:       0,
			classID:         "COMMON",
			beneficialOwner: testAddr1,
			shares:          math.NewInt(1000),
			refID:           1,
			refType:         "escrow",
			expectError:     true,
			errorContains:   "company ID cannot be zero",
		},
		{
			name:            "empty class ID",
			moduleAccount:   "escrow",
			companyID:       1,
			classID:         "",
			beneficialOwner: testAddr1,
			shares:          math.NewInt(1000),
			refID:           1,
			refType:         "escrow",
			expectError:     true,
			errorContains:   "class ID cannot be empty",
		},
		{
			name:            "zero shares",
			moduleAccount:   "escrow",
			companyID:       1,
			classID:         "COMMON",
			beneficialOwner: testAddr1,
			shares:          math.ZeroInt(),
			refID:           1,
			refType:         "escrow",
			expectError:     true,
			errorContains:   "shares must be positive",
		},
		{
			name:            "invalid reference type",
			moduleAccount:   "escrow",
			companyID:       1,
			classID:         "COMMON",
			beneficialOwner: testAddr1,
			shares:          math.NewInt(1000),
			refID:           1,
			refType:         "invalid",
			expectError:     true,
			errorContains:   "invalid reference type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ownership := keeper.BeneficialOwnership{
				ModuleAccount:   tt.moduleAccount,
				CompanyID:       tt.companyID,
				ClassID:         tt.classID,
				BeneficialOwner: tt.beneficialOwner,
				Shares:          tt.shares,
				LockedAt:        time.Now(),
				ReferenceID:     tt.refID,
				ReferenceType:   tt.refType,
			}

			err := ownership.Validate()

			if tt.expectError {
				require.Error(t, err)
				if tt.errorContains != "" {
					require.Contains(t, err.Error(), tt.errorContains)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// TestIsModuleAccount tests module account detection
func TestIsModuleAccount(t *testing.T) {
	// Test that module accounts are correctly identified
	// This is important for the dividend distribution logic
	t.Skip("Requires keeper setup")
}

// TestDividendWithEscrow tests dividend distribution when shares are in escrow
func TestDividendWithEscrow(t *testing.T) {
	// Integration test scenario:
	// 1. Alice owns 1000 shares
	// 2. Alice puts 500 shares in escrow (beneficial owner registry records this)
	// 3. Company declares dividend
	// 4. Dividend snapshot should show Alice with 1000 shares
	// 5. Alice should receive full dividend for 1000 shares
	t.Skip("Requires full integration test setup")
}

// TestDividendWithDEXOrder tests dividend distribution when shares are in DEX
func TestDividendWithDEXOrder(t *testing.T) {
	// Integration test scenario:
	// 1. Bob owns 2000 shares
	// 2. Bob places sell order for 1000 shares on DEX (beneficial owner registry records this)
	// 3. Company declares dividend
	// 4. Dividend snapshot should show Bob with 2000 shares
	// 5. Bob should receive full dividend for 2000 shares
	// 6. If order fills after dividend declaration but before payment, Bob still gets dividend
	t.Skip("Requires full integration test setup")
}

// TestDividendWithLending tests dividend distribution when shares are lent out
func TestDividendWithLending(t *testing.T) {
	// Integration test scenario:
	// 1. Charlie owns 3000 shares
	// 2. Charlie lends 1500 shares as collateral (beneficial owner registry records this)
	// 3. Company declares dividend
	// 4. Dividend snapshot should show Charlie with 3000 shares
	// 5. Charlie should receive full dividend for 3000 shares
	t.Skip("Requires full integration test setup")
}

// TestPartialFillUpdate tests updating beneficial owner shares on partial fill
func TestPartialFillUpdate(t *testing.T) {
	// Test scenario:
	// 1. Alice places sell order for 1000 shares on DEX
	// 2. Beneficial owner registry records: DEX module holds 1000 shares for Alice
	// 3. Order partially fills: 300 shares sold
	// 4. UpdateBeneficialOwnerShares called: now DEX holds 700 shares for Alice
	// 5. If dividend declared now, Alice should get dividend for:
	//    - 700 shares in DEX
	//    - + any shares still in her wallet
	t.Skip("Requires keeper setup")
}

// TestMultipleBeneficialOwnersPerModule tests multiple users with shares in same module
func TestMultipleBeneficialOwnersPerModule(t *testing.T) {
	// Test scenario:
	// - Alice has 1000 shares in escrow
	// - Bob has 500 shares in escrow
	// - Charlie has 800 shares in escrow
	// When dividend is declared, all three should receive their correct amounts
	t.Skip("Requires keeper setup")
}

// TestBeneficialOwnerAggregation tests aggregating shares across multiple locks
func TestBeneficialOwnerAggregation(t *testing.T) {
	// Test scenario:
	// Alice has multiple concurrent operations:
	// - Escrow #1: 500 shares
	// - Escrow #2: 300 shares
	// - DEX order #1: 200 shares
	// - Wallet: 1000 shares
	// Total: 2000 shares
	// Dividend should be calculated for all 2000 shares
	t.Skip("Requires keeper setup")
}
