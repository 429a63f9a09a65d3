package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
)

// TestFullInheritanceWorkflow tests complete end-to-end workflow
func TestFullInheritanceWorkflow(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Complete workflow test:
	// 1. Alice creates inheritance plan:
	//    - 1 year inactivity
	//    - 30 day grace period
	//    - Ben1 (60%), Ben2 (40%)
	//    - 180 day claim windows
	//    - Charity fallback
	// 2. Alice inactive for 366 days
	// 3. EndBlock triggers switch
	// 4. 30 day grace period begins
	// 5. Grace period expires
	// 6. Ben1 claim window opens (180 days)
	// 7. Ben1 claims after 10 days
	// 8. Ben2 claim window opens (180 days)
	// 9. Ben2 claims after 30 days
	// 10. Plan completes, all assets distributed
	//
	// Verify at each step:
	// - Correct status transitions
	// - Correct asset locking/unlocking
	// - Correct event emissions
	// - Correct balance updates
}

// TestFalsePositiveProtectionIntegration tests false positive handling in full workflow
func TestFalsePositiveProtegrationIntegration(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// False positive scenario:
	// 1. Alice creates plan (1 year inactivity)
	// 2. Alice loses wallet access
	// 3. 366 days pass - switch triggers
	// 4. Grace period begins (30 days)
	// 5. Day 15: Alice recovers wallet
	// 6. Alice signs ANY transaction
	// 7. Switch auto-cancels immediately
	// 8. Plan returns to Active status
	// 9. Assets are unlocked
	// 10. Alice maintains full control
	//
	// Verify:
	// - Any signed transaction cancels
	// - Cancellation is immediate
	// - Beneficiaries are notified
	// - No assets transferred
	// - Plan can be re-triggered later
}

// TestBannedOwnerCannotUseInheritance tests ban bypass prevention
func TestBannedOwnerCannotUseInheritance(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// CRITICAL SECURITY TEST
	// Scenario: Fraudster tries to use inheritance to funnel assets to family
	//
	// 1. Bob creates inheritance plan with wife as beneficiary
	// 2. Bob commits fraud (scams users)
	// 3. Bob gets banned through escrow/report system
	// 4. Bob's assets should be frozen/seized
	// 5. Bob cannot trigger inheritance switch (MUST FAIL)
	// 6. Bob's wife cannot claim (cascade check fails)
	// 7. Verify assets remain frozen for investigation
	// 8. Test with both permanent and temporary bans
	// 9. Verify ban persists through inheritance attempts
	// 10. Test appeal/unban restores functionality
	//
	// Security properties:
	// - Inheritance cannot bypass bans
	// - Banned users cannot access ANY module features
	// - Ban applies to all future transactions
	// - Ban check happens before any processing
}

// TestBannedBeneficiaryCascades tests cascading when beneficiary is banned
func TestBannedBeneficiaryCascades(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Cascade scenario:
	// 1. Alice creates plan: Ben1 (60%), Ben2 (40%), Charity fallback
	// 2. Alice inactive for 1 year, switch triggers
	// 3. Grace period expires
	// 4. Ben1 is banned for fraud (before claim window opens)
	// 5. Ben1's claim is auto-skipped
	// 6. Ben2's window opens immediately
	// 7. Ben2 receives 100% of assets (60% + 40%)
	// 8. Charity receives 0% (all claimed)
	//
	// Test variations:
	// - Ben1 banned before trigger
	// - Ben1 banned during grace period
	// - Ben1 banned during claim window
	// - Ben1 banned after claim window opens but before claim
	// - Both Ben1 and Ben2 banned (charity gets 100%)
	// - All beneficiaries banned (charity gets 100%)
}

// Test50YearCharityFallback tests ultra-long inactivity
func Test50YearCharityFallback(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Ultra-long inactivity scenario:
	// 1. Alice creates plan in 2025
	// 2. Alice inactive for 50+ years
	// 3. Year 2075: ultra-long inactivity detected
	// 4. Assets go directly to charity
	// 5. Beneficiaries are bypassed (presumed deceased)
	// 6. No grace period (special case)
	// 7. No claim windows
	//
	// Verify:
	// - 50 year threshold is enforced
	// - Charity receives 100% immediately
	// - No beneficiary claims possible
	// - Special event emitted
	// - Plan completes immediately
}

// TestMultipleBeneficiariesPartialClaimsIntegration tests complex claim scenarios in full workflow
func TestMultipleBeneficiariesPartialClaimsIntegration(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Complex scenario:
	// Owner: 1,000,000 HODL, 1000 shares Company A
	// Ben1: Priority 1, 30%
	// Ben2: Priority 2, 30%
	// Ben3: Priority 3, 20%
	// Charity: 20% fallback
	//
	// Execution:
	// 1. Switch triggers, grace period passes
	// 2. Ben1 window opens (180 days)
	// 3. Ben1 claims: 300,000 HODL, 300 shares
	// 4. Ben2 window opens (180 days)
	// 5. Ben2 window EXPIRES (no claim)
	// 6. Ben3 window opens (180 days)
	// 7. Ben3 claims: 500,000 HODL (300K + 200K), 500 shares
	// 8. Charity receives: 200,000 HODL, 200 shares
	//
	// Verify:
	// - Correct cascade of Ben2's share to Ben3
	// - Correct charity fallback
	// - Total = 1,000,000 HODL, 1000 shares (no loss)
	// - Correct percentage calculations
	// - Correct event emissions
}

// TestInheritanceWithSpecificAssets tests specific asset allocations
func TestInheritanceWithSpecificAssets(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Specific asset scenario:
	// Owner: 1M HODL, 500 shares Company A, 200 shares Company B
	// Ben1 (son): 500 shares Company A (family business)
	// Ben2 (daughter): 30% of remaining assets
	// Charity: 70% of remaining assets
	//
	// Execution:
	// 1. Ben1 receives: 500 shares Company A (specific)
	// 2. Remaining: 1M HODL, 200 shares Company B
	// 3. Ben2 receives: 300K HODL, 60 shares Company B (30%)
	// 4. Charity receives: 700K HODL, 140 shares Company B (70%)
	//
	// Verify:
	// - Specific assets transferred first
	// - Percentage applies to remaining pool
	// - Correct asset type handling
	// - No conflicts between specific and percentage
}

// TestConcurrentInheritancePlans tests multiple plans for different owners
func TestConcurrentInheritancePlans(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Concurrent plans:
	// - Alice's plan (1 year inactivity)
	// - Bob's plan (2 year inactivity)
	// - Charlie's plan (1 year inactivity)
	//
	// Execution:
	// 1. All created in same block
	// 2. Alice and Charlie inactive for 1 year
	// 3. Both switches trigger in same EndBlock
	// 4. Bob remains active (only 1 year inactive)
	// 5. Process Alice's and Charlie's plans concurrently
	// 6. Verify no interference between plans
	// 7. Verify correct resource isolation
	// 8. Test with 100+ concurrent plans
}

// TestInheritanceCancellation tests manual cancellation scenarios
func TestInheritanceCancellation(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Cancellation scenarios:
	// 1. Cancel active plan (before trigger)
	// 2. Cancel triggered plan (during grace period)
	// 3. Attempt to cancel after grace period (should fail)
	// 4. Attempt to cancel from non-owner (should fail)
	// 5. Re-create plan after cancellation
	// 6. Update plan instead of cancelling
	//
	// Verify:
	// - Correct authorization
	// - Correct status checks
	// - Asset unlocking
	// - Index cleanup
}

// TestInheritanceWithModuleInteractions tests cross-module scenarios
func TestInheritanceWithModuleInteractions(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Cross-module scenario:
	// 1. Alice has active inheritance plan
	// 2. Alice places DEX orders (assets should remain liquid)
	// 3. Switch triggers, assets lock
	// 4. Alice's DEX orders are cancelled
	// 5. Alice cannot place new orders (assets locked)
	// 6. Alice votes in governance (should still work)
	// 7. Inheritance completes, Ben receives assets
	// 8. Ben can now trade the inherited assets
	//
	// Test interactions with:
	// - DEX (trading restrictions)
	// - Staking (delegation restrictions?)
	// - Governance (voting should work)
	// - Equity (transfer restrictions)
	// - Escrow (existing escrows?)
}

// TestEdgeCaseZeroBalanceInheritance tests inheritance with no assets
func TestEdgeCaseZeroBalanceInheritance(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Edge case: Owner has no assets
	// 1. Alice creates plan
	// 2. Alice spends all assets
	// 3. Switch triggers
	// 4. Grace period passes
	// 5. Ben1 claims - receives nothing
	// 6. Plan completes successfully
	//
	// Verify:
	// - No errors on zero balance
	// - Plan processes normally
	// - Events still emitted
	// - Status transitions correctly
}

// TestEdgeCaseSingleBeneficiary tests simplest case
func TestEdgeCaseSingleBeneficiary(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Simplest scenario:
	// - One beneficiary with 100%
	// - No charity fallback needed
	// - Single claim window
	//
	// Verify:
	// - Works correctly with minimal setup
	// - No cascade logic needed
	// - Efficient processing
}

// TestEdgeCaseMaxBeneficiaries tests large beneficiary list
func TestEdgeCaseMaxBeneficiaries(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Edge case: 100 beneficiaries
	// - Each gets 1%
	// - Sequential claim windows (100 * 180 days = 49 years!)
	//
	// Verify:
	// - System handles large beneficiary lists
	// - Gas usage is reasonable
	// - Processing doesn't timeout
	// - Consider max beneficiary limit
}

// TestUpgradeCompatibility tests backward compatibility
func TestUpgradeCompatibility(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Upgrade scenario:
	// 1. Create plans on version 1.0
	// 2. Upgrade chain to version 2.0
	// 3. Existing plans should still work
	// 4. New features should be available
	// 5. Migration should be seamless
	//
	// Verify:
	// - State migration
	// - Backward compatibility
	// - No data loss
	// - Correct version detection
}

// TestSecurityAuthorization tests authorization checks throughout
func TestSecurityAuthorization(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Authorization tests:
	// 1. Only owner can update plan
	// 2. Only owner can cancel plan
	// 3. Only beneficiary can claim
	// 4. Only authorized keeper can trigger
	// 5. Ban checks at all entry points
	//
	// Verify:
	// - Authorization at every operation
	// - No bypass mechanisms
	// - Error messages are clear
	// - Audit trail is maintained
}

// TestStressTestMassiveScale tests system under extreme load
func TestStressTestMassiveScale(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Stress test:
	// 1. Create 10,000 inheritance plans
	// 2. Trigger 1,000 simultaneously
	// 3. Process 500 claims in same block
	// 4. Measure performance metrics
	//
	// Verify:
	// - System remains stable
	// - Gas usage is predictable
	// - No resource exhaustion
	// - No state corruption
}

// TestIntegrationTestHelpers tests helper functions
func TestIntegrationTestHelpers(t *testing.T) {
	// Test helper functions work correctly

	plan := createTestPlan(testOwner, 1) // 1 year
	require.Equal(t, 365*24*time.Hour, plan.InactivityPeriod)
	require.Equal(t, 30*24*time.Hour, plan.GracePeriod)
	require.Len(t, plan.Beneficiaries, 2)

	ben := createTestBeneficiary(
		testBeneficiary1,
		1,
		math.LegacyNewDecWithPrec(60, 2),
	)
	require.Equal(t, testBeneficiary1, ben.Address)
	require.Equal(t, uint32(1), ben.Priority)
	require.True(t, ben.Percentage.Equal(math.LegacyNewDecWithPrec(60, 2)))
}
