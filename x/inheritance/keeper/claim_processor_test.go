package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/mintvault/cdp-chain/x/inheritance/types"
)

// TestClaimInheritance_Success tests successful claim processing
func TestClaimInheritance_Success(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Grace period expires
	// 2. Priority 1 beneficiary claims
	// 3. Verify assets transferred correctly (60%)
	// 4. Verify claim status updated to Claimed
	// 5. Verify claim window for priority 2 opens
	// 6. Priority 2 beneficiary claims
	// 7. Verify assets transferred correctly (40%)
	// 8. Verify plan status updates to Completed
	// 9. Verify all locked assets released
	// 10. Verify events emitted for each claim
}

// TestClaimInheritance_NotClaimable tests rejection of premature claims
func TestClaimInheritance_NotClaimable(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Attempt to claim during grace period - FAIL
	// 2. Attempt to claim before claim window opens - FAIL
	// 3. Priority 2 tries to claim before priority 1 - FAIL
	// 4. Attempt to claim after window expires - FAIL
	// 5. Attempt to claim already claimed assets - FAIL
	// 6. Non-beneficiary attempts to claim - FAIL
	// 7. Verify appropriate error messages
}

// TestClaimInheritance_BeneficiaryBanned tests cascading when beneficiary is banned
func TestClaimInheritance_BeneficiaryBanned(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// CRITICAL TEST - Ensures banned beneficiaries don't receive inheritance
	//
	// Test cases to implement:
	// 1. Grace period expires
	// 2. Priority 1 beneficiary is banned
	// 3. Verify claim auto-skips to priority 2
	// 4. Verify priority 2 receives priority 1's share
	// 5. Verify skipped beneficiary gets ClaimStatusSkipped
	// 6. Test with multiple banned beneficiaries
	// 7. Test with all beneficiaries banned (charity fallback)
	// 8. Verify ban check happens at claim time (not trigger time)
	// 9. Test temporary ban expiring during claim window
	// 10. Verify permanent vs temporary ban handling
	//
	// Cascade logic:
	// - Plan: Ben1 (60%), Ben2 (40%), Charity fallback
	// - Ben1 banned -> Ben2 gets 100% -> Charity gets 0%
	// - Ben1 + Ben2 banned -> Charity gets 100%
}

// TestClaimInheritance_AlreadyClaimed tests double claim prevention
func TestClaimInheritance_AlreadyClaimed(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Beneficiary claims successfully
	// 2. Same beneficiary attempts to claim again - FAIL
	// 3. Verify error message
	// 4. Verify no double transfer occurs
	// 5. Verify claim status remains Claimed
	// 6. Test with multiple beneficiaries
	// 7. Verify each can only claim once
}

// TestClaimInheritance_NotBeneficiary tests rejection of non-beneficiaries
func TestClaimInheritance_NotBeneficiary(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Random address attempts to claim - FAIL
	// 2. Owner attempts to claim - FAIL
	// 3. Charity address attempts to claim before window - FAIL
	// 4. Beneficiary from different plan attempts to claim - FAIL
	// 5. Verify appropriate error messages
	// 6. Verify no assets are transferred
}

// TestCascadingBeneficiaries tests cascading claim logic
func TestCascadingBeneficiaries(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Setup: Ben1 (Priority 1, 30%), Ben2 (Priority 2, 30%), Ben3 (Priority 3, 40%)
	// 2. Ben1 claim window opens and expires (no claim)
	// 3. Verify Ben1's share (30%) goes to Ben2
	// 4. Ben2 claims and receives 60% (30% + 30%)
	// 5. Ben3 claims and receives 40%
	// 6. Test with multiple expired windows
	// 7. Test with some claims and some expirations
	// 8. Verify charity gets remainder if all expire
	// 9. Test priority ordering (1, 2, 3 vs 1, 5, 10)
}

// TestBeneficiaryClaimValidation tests claim validation
func TestBeneficiaryClaimValidation(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		claim   types.BeneficiaryClaim
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid claim",
			claim: types.BeneficiaryClaim{
				PlanID:           1,
				Beneficiary:      testBeneficiary1,
				Priority:         1,
				Percentage:       math.LegacyNewDecWithPrec(60, 2),
				ClaimWindowStart: now,
				ClaimWindowEnd:   now.Add(180 * 24 * time.Hour),
				Status:           types.ClaimStatusOpen,
			},
			wantErr: false,
		},
		{
			name: "invalid - zero plan ID",
			claim: types.BeneficiaryClaim{
				PlanID:           0,
				Beneficiary:      testBeneficiary1,
				Priority:         1,
				Percentage:       math.LegacyNewDecWithPrec(60, 2),
				ClaimWindowStart: now,
				ClaimWindowEnd:   now.Add(180 * 24 * time.Hour),
				Status:           types.ClaimStatusOpen,
			},
			wantErr: true,
			errMsg:  "plan ID cannot be zero",
		},
		{
			name: "invalid - empty beneficiary",
			claim: types.BeneficiaryClaim{
				PlanID:           1,
				Beneficiary:      "",
				Priority:         1,
				Percentage:       math.LegacyNewDecWithPrec(60, 2),
				ClaimWindowStart: now,
				ClaimWindowEnd:   now.Add(180 * 24 * time.Hour),
				Status:           types.ClaimStatusOpen,
			},
			wantErr: true,
			errMsg:  "beneficiary cannot be empty",
		},
		{
			name: "invalid - percentage over 100%",
			claim: types.BeneficiaryClaim{
				PlanID:           1,
				Beneficiary:      testBeneficiary1,
				Priority:         1,
				Percentage:       math.LegacyNewDecWithPrec(150, 2),
				ClaimWindowStart: now,
				ClaimWindowEnd:   now.Add(180 * 24 * time.Hour),
				Status:           types.ClaimStatusOpen,
			},
			wantErr: true,
			errMsg:  "percentage must be between 0 and 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.claim.Validate()
			if tt.wantErr {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// TestClaimWindowManagement tests claim window lifecycle
func TestClaimWindowManagement(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Priority 1 window opens after grace period
	// 2. Verify window duration matches plan setting (e.g., 180 days)
	// 3. Window expires, priority 2 window opens
	// 4. Verify sequential window opening
	// 5. Test with custom window durations (30, 90, 180 days)
	// 6. Verify concurrent plans don't interfere
	// 7. Test rapid claim (claim on first day of window)
	// 8. Test delayed claim (claim on last day of window)
}

// TestPartialClaims tests handling of partial claims
func TestPartialClaims(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Ben1 claims 60%
	// 2. Verify 40% remains for Ben2
	// 3. Ben2 claims 40%
	// 4. Verify 0% remains
	// 5. Test with 3+ beneficiaries
	// 6. Verify percentage calculations are accurate
	// 7. Test rounding/precision issues
	// 8. Verify no assets lost due to rounding
}

// TestClaimStatusTransitions tests claim status lifecycle
func TestClaimStatusTransitions(t *testing.T) {
	tests := []struct {
		name           string
		initialStatus  types.ClaimStatus
		finalStatus    types.ClaimStatus
		shouldTransit  bool
	}{
		{
			name:          "Pending -> Open (window opens)",
			initialStatus: types.ClaimStatusPending,
			finalStatus:   types.ClaimStatusOpen,
			shouldTransit: true,
		},
		{
			name:          "Open -> Claimed (beneficiary claims)",
			initialStatus: types.ClaimStatusOpen,
			finalStatus:   types.ClaimStatusClaimed,
			shouldTransit: true,
		},
		{
			name:          "Open -> Expired (window closes)",
			initialStatus: types.ClaimStatusOpen,
			finalStatus:   types.ClaimStatusExpired,
			shouldTransit: true,
		},
		{
			name:          "Open -> Skipped (beneficiary banned)",
			initialStatus: types.ClaimStatusOpen,
			finalStatus:   types.ClaimStatusSkipped,
			shouldTransit: true,
		},
		{
			name:          "Claimed -> Open (invalid)",
			initialStatus: types.ClaimStatusClaimed,
			finalStatus:   types.ClaimStatusOpen,
			shouldTransit: false,
		},
		{
			name:          "Expired -> Claimed (invalid)",
			initialStatus: types.ClaimStatusExpired,
			finalStatus:   types.ClaimStatusClaimed,
			shouldTransit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Status transition logic would be validated here
			require.NotEqual(t, tt.initialStatus, tt.finalStatus)
		})
	}
}

// TestClaimWindowExpiry tests claim window expiration handling
func TestClaimWindowExpiry(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Window expires with no claim
	// 2. Verify status changes to Expired
	// 3. Verify next beneficiary window opens
	// 4. Verify expired beneficiary's share goes to next
	// 5. Test with last beneficiary expiring (charity gets remainder)
	// 6. Test multiple expirations in sequence
	// 7. Verify boundary condition (claim on exact expiry time)
}

// TestClaimPriorityOrdering tests priority-based claim ordering
func TestClaimPriorityOrdering(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Setup beneficiaries with priorities: 1, 2, 3
	// 2. Verify priority 1 can claim first
	// 3. Verify priority 2 cannot claim until priority 1 done
	// 4. Verify priority 3 cannot claim until priority 2 done
	// 5. Test with non-sequential priorities (1, 5, 10)
	// 6. Verify correct ordering is maintained
	// 7. Test with skipped priorities (1 banned, 2 claims, 3 claims)
}

// TestCharityFallback tests charity receiving unclaimed assets
func TestCharityFallback(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. All beneficiaries' windows expire
	// 2. Verify charity receives all remaining assets
	// 3. Test with partial claims (some beneficiaries claim, others expire)
	// 4. Verify charity receives only unclaimed portion
	// 5. Test with no charity address set (burned?)
	// 6. Test with charity address also banned (governance?)
	// 7. Verify 50 year ultra-long inactivity goes to charity
}

// TestMultipleBeneficiariesPartialClaims tests complex claim scenarios
func TestMultipleBeneficiariesPartialClaims(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Complex scenario test:
	// - Owner has 1,000,000 HODL
	// - Ben1 (30%), Ben2 (30%), Ben3 (20%), Charity (20% remainder)
	//
	// Test cases to implement:
	// 1. Ben1 claims: receives 300,000 HODL
	// 2. Ben2 window expires: 300,000 HODL cascades to Ben3
	// 3. Ben3 claims: receives 500,000 HODL (200,000 + 300,000)
	// 4. Charity receives: 200,000 HODL (remainder)
	// 5. Verify total = 1,000,000 (no loss)
	// 6. Test with equity shares (more complex)
	// 7. Test with mixed assets (HODL + equity)
}

// TestClaimWithSpecificAssets tests claiming specific asset allocations
func TestClaimWithSpecificAssets(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Ben1 receives specific equity (100 shares of Company A)
	// 2. Ben2 receives percentage of remaining assets
	// 3. Verify specific asset transfer
	// 4. Verify percentage applies to remaining pool
	// 5. Test with multiple specific assets
	// 6. Test with insufficient specific assets (owner sold them)
	// 7. Verify error handling for missing assets
}

// TestClaimEvents tests event emission during claims
func TestClaimEvents(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Verify ClaimWindowOpened event
	// 2. Verify InheritanceClaimed event with amounts
	// 3. Verify ClaimWindowExpired event
	// 4. Verify BeneficiarySkipped event (if banned)
	// 5. Verify InheritanceCompleted event
	// 6. Test event attributes are correct
	// 7. Verify events can be queried by plan ID
}
