package keeper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mintvault/cdp-chain/x/inheritance/types"
)

// TestTriggerSwitch_Success tests successful switch triggering
func TestTriggerSwitch_Success(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Trigger switch for plan with 1 year inactivity
	// 2. Verify plan status changes to Triggered
	// 3. Verify grace period is set correctly (30+ days)
	// 4. Verify SwitchTrigger record is created
	// 5. Verify event is emitted
	// 6. Verify assets are locked during trigger
	// 7. Test with multiple plans for same owner
	// 8. Verify each plan can trigger independently
}

// TestTriggerSwitch_OwnerBanned tests that banned owners cannot trigger
func TestTriggerSwitch_OwnerBanned(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Create plan for owner
	// 2. Ban owner through escrow/report system
	// 3. Attempt to trigger switch - should FAIL
	// 4. Verify error message indicates owner is banned
	// 5. Verify plan status remains Active
	// 6. Verify no SwitchTrigger is created
	// 7. Test with permanently banned owner
	// 8. Test with temporarily banned owner
	// 9. Verify trigger works after ban expires
}

// TestTriggerSwitch_AlreadyTriggered tests double trigger prevention
func TestTriggerSwitch_AlreadyTriggered(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Trigger switch for plan
	// 2. Attempt to trigger again - should FAIL
	// 3. Verify error message
	// 4. Verify grace period is not extended
	// 5. Verify only one SwitchTrigger exists
	// 6. Test triggering during Executing status
	// 7. Test triggering during Completed status
}

// TestCancelTrigger_DuringGracePeriod tests cancellation during grace period
func TestCancelTrigger_DuringGracePeriod(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Trigger switch
	// 2. Cancel during grace period - should SUCCEED
	// 3. Verify plan status returns to Active
	// 4. Verify SwitchTrigger is removed
	// 5. Verify locked assets are unlocked
	// 6. Verify event is emitted
	// 7. Test cancellation by owner only
	// 8. Reject cancellation from non-owner
	// 9. Test cancellation 1 day before grace period ends
	// 10. Test cancellation on exact grace period end (should still work)
}

// TestCancelTrigger_AfterGracePeriod tests rejection after grace period
func TestCancelTrigger_AfterGracePeriod(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Trigger switch
	// 2. Wait for grace period to expire
	// 3. Attempt to cancel - should FAIL
	// 4. Verify error message indicates grace period expired
	// 5. Verify plan status remains Triggered or Executing
	// 6. Verify assets remain locked
	// 7. Test with various grace periods (30, 60, 90 days)
}

// TestAutoCancelOnOwnerTransaction tests auto-cancellation on activity
func TestAutoCancelOnOwnerTransaction(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Trigger switch
	// 2. Owner makes ANY signed transaction
	// 3. Verify switch auto-cancels immediately
	// 4. Verify plan status returns to Active
	// 5. Verify SwitchTrigger is removed
	// 6. Test with different transaction types:
	//    - Bank send
	//    - DEX trade
	//    - Governance vote
	//    - Staking delegate
	//    - Equity transfer
	// 7. Verify beneficiary transactions don't cancel
	// 8. Test during grace period
	// 9. Verify auto-cancel event is emitted
}

// TestSwitchTriggerValidation tests SwitchTrigger validation
func TestSwitchTriggerValidation(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		trigger types.SwitchTrigger
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid trigger",
			trigger: types.SwitchTrigger{
				PlanID:              1,
				TriggeredAt:         now,
				GracePeriodEnd:      now.Add(30 * 24 * time.Hour),
				Status:              types.TriggerStatusActive,
				LastInactivityCheck: now,
			},
			wantErr: false,
		},
		{
			name: "invalid - zero plan ID",
			trigger: types.SwitchTrigger{
				PlanID:              0,
				TriggeredAt:         now,
				GracePeriodEnd:      now.Add(30 * 24 * time.Hour),
				Status:              types.TriggerStatusActive,
				LastInactivityCheck: now,
			},
			wantErr: true,
			errMsg:  "plan ID cannot be zero",
		},
		{
			name: "invalid - zero triggered time",
			trigger: types.SwitchTrigger{
				PlanID:              1,
				TriggeredAt:         time.Time{},
				GracePeriodEnd:      now.Add(30 * 24 * time.Hour),
				Status:              types.TriggerStatusActive,
				LastInactivityCheck: now,
			},
			wantErr: true,
			errMsg:  "triggered at time cannot be zero",
		},
		{
			name: "invalid - grace period before trigger",
			trigger: types.SwitchTrigger{
				PlanID:              1,
				TriggeredAt:         now,
				GracePeriodEnd:      now.Add(-1 * time.Hour), // Before trigger
				Status:              types.TriggerStatusActive,
				LastInactivityCheck: now,
			},
			wantErr: true,
			errMsg:  "grace period end must be after triggered time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.trigger.Validate()
			if tt.wantErr {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// TestGracePeriodCalculation tests grace period calculation
func TestGracePeriodCalculation(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name             string
		gracePeriod      time.Duration
		triggeredAt      time.Time
		expectedEnd      time.Time
	}{
		{
			name:        "30 day grace period",
			gracePeriod: 30 * 24 * time.Hour,
			triggeredAt: now,
			expectedEnd: now.Add(30 * 24 * time.Hour),
		},
		{
			name:        "60 day grace period",
			gracePeriod: 60 * 24 * time.Hour,
			triggeredAt: now,
			expectedEnd: now.Add(60 * 24 * time.Hour),
		},
		{
			name:        "90 day grace period",
			gracePeriod: 90 * 24 * time.Hour,
			triggeredAt: now,
			expectedEnd: now.Add(90 * 24 * time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualEnd := tt.triggeredAt.Add(tt.gracePeriod)
			require.Equal(t, tt.expectedEnd, actualEnd)
		})
	}
}

// TestGracePeriodExpiration tests grace period expiration handling
func TestGracePeriodExpiration(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Trigger switch
	// 2. Wait for grace period to expire
	// 3. Verify EndBlock updates status to Executing
	// 4. Verify claim windows open for beneficiaries
	// 5. Verify owner can no longer cancel
	// 6. Test boundary condition (exact expiration time)
	// 7. Verify multiple plans can expire in same block
}

// TestTriggerStatusTransitions tests status transitions
func TestTriggerStatusTransitions(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Active -> Triggered (on trigger)
	// 2. Active -> Expired (grace period ends)
	// 3. Active -> Cancelled (owner cancels)
	// 4. Cannot transition from Expired
	// 5. Cannot transition from Cancelled
	// 6. Verify invalid transitions are rejected
}

// TestMultiplePlansForSameOwner tests handling multiple plans
func TestMultiplePlansForSameOwner(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Owner has 3 plans with different inactivity periods
	// 2. Trigger plan 1, others remain Active
	// 3. Trigger plan 2 independently
	// 4. Verify each plan has separate grace period
	// 5. Verify cancelling one doesn't affect others
	// 6. Test owner transaction cancels ALL triggered plans
	// 7. Verify plan-specific asset locks
}

// TestBanBypassPrevention tests critical security - banned owner cannot use inheritance
func TestBanBypassPrevention(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// CRITICAL TEST - Ensures inheritance cannot be abused to bypass bans
	//
	// Test cases to implement:
	// 1. Owner is banned for fraud
	// 2. Plan exists with owner's child as beneficiary
	// 3. Attempt to trigger switch - MUST FAIL
	// 4. Verify error: "owner is banned, inheritance disabled"
	// 5. Verify plan remains Active but non-functional
	// 6. Test with ReporterHistory.IsBanned = true
	// 7. Test with permanent ban
	// 8. Test with temporary ban (should work after expiry)
	// 9. Verify ban check happens BEFORE any processing
	// 10. Test that even if triggered before ban, claims fail after ban
	//
	// Security rationale:
	// - Fraudster cannot use inheritance to funnel assets to family
	// - Fraudster's assets should be frozen/seized
	// - Inheritance would allow banned user to retain assets indirectly
}

// TestInactivityThresholds tests different inactivity periods
func TestInactivityThresholds(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Test 1 year inactivity period
	// 2. Test 2 year inactivity period
	// 3. Test 5 year inactivity period
	// 4. Test 10 year inactivity period
	// 5. Test 50 year inactivity period (charity fallback)
	// 6. Verify trigger only happens after threshold
	// 7. Test boundary conditions (exactly at threshold)
}
