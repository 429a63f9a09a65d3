package keeper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mintvault/cdp-chain/x/inheritance/types"
)

// TestRecordActivity tests recording user activity
func TestRecordActivity(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Record activity for first time
	// 2. Update activity for existing address
	// 3. Verify activity type is recorded
	// 4. Verify block height is recorded
	// 5. Verify timestamp is updated
	// 6. Verify activity is indexed by address
}

// TestGetLastActivity tests retrieving last activity
func TestGetLastActivity(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Get activity for address with recorded activity
	// 2. Get activity for address with no activity (should return zero time)
	// 3. Verify most recent activity is returned
	// 4. Verify activity survives context changes
}

// TestIsInactive tests checking if address is inactive
func TestIsInactive(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Check inactive for address with no recent activity
	// 2. Check active for address with recent activity
	// 3. Test boundary condition (exactly at inactivity threshold)
	// 4. Test with different inactivity periods (1 year, 2 years, 5 years)
	// 5. Verify ANY transaction resets inactivity
	// 6. Test with address that has never been active
}

// TestAutoCancelOnActivity tests automatic cancellation of triggered switch
func TestAutoCancelOnActivity(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Trigger switch, then record activity - should auto-cancel
	// 2. Verify false positive is handled correctly
	// 3. Verify plan returns to Active status
	// 4. Verify grace period is cleared
	// 5. Verify any signed transaction cancels trigger
	// 6. Test activity during grace period
	// 7. Test activity after grace period (should not cancel)
	// 8. Verify event is emitted on auto-cancel
}

// TestActivityRecord tests ActivityRecord type
func TestActivityRecord(t *testing.T) {
	now := time.Now()
	blockHeight := int64(12345)

	record := types.ActivityRecord{
		Address:          testOwner,
		LastActivityTime: now,
		LastBlockHeight:  blockHeight,
		ActivityType:     "transaction",
	}

	require.Equal(t, testOwner, record.Address)
	require.Equal(t, now, record.LastActivityTime)
	require.Equal(t, blockHeight, record.LastBlockHeight)
	require.Equal(t, "transaction", record.ActivityType)
}

// TestInactivityCalculation tests inactivity period calculation
func TestInactivityCalculation(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name             string
		lastActivity     time.Time
		inactivityPeriod time.Duration
		currentTime      time.Time
		wantInactive     bool
	}{
		{
			name:             "active - recent transaction",
			lastActivity:     now.Add(-30 * 24 * time.Hour),
			inactivityPeriod: 365 * 24 * time.Hour,
			currentTime:      now,
			wantInactive:     false,
		},
		{
			name:             "inactive - over 1 year",
			lastActivity:     now.Add(-400 * 24 * time.Hour),
			inactivityPeriod: 365 * 24 * time.Hour,
			currentTime:      now,
			wantInactive:     true,
		},
		{
			name:             "boundary - exactly 1 year",
			lastActivity:     now.Add(-365 * 24 * time.Hour),
			inactivityPeriod: 365 * 24 * time.Hour,
			currentTime:      now,
			wantInactive:     false, // Should require > not >=
		},
		{
			name:             "inactive - 2 years threshold",
			lastActivity:     now.Add(-750 * 24 * time.Hour),
			inactivityPeriod: 730 * 24 * time.Hour, // 2 years
			currentTime:      now,
			wantInactive:     true,
		},
		{
			name:             "active - just under threshold",
			lastActivity:     now.Add(-364 * 24 * time.Hour),
			inactivityPeriod: 365 * 24 * time.Hour,
			currentTime:      now,
			wantInactive:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elapsed := tt.currentTime.Sub(tt.lastActivity)
			isInactive := elapsed > tt.inactivityPeriod
			require.Equal(t, tt.wantInactive, isInactive)
		})
	}
}

// TestActivityTypes tests different activity types
func TestActivityTypes(t *testing.T) {
	activityTypes := []string{
		"transaction",
		"sign",
		"delegate",
		"vote",
		"claim",
	}

	for _, activityType := range activityTypes {
		t.Run(activityType, func(t *testing.T) {
			record := types.ActivityRecord{
				Address:          testOwner,
				LastActivityTime: time.Now(),
				LastBlockHeight:  12345,
				ActivityType:     activityType,
			}
			require.Equal(t, activityType, record.ActivityType)
		})
	}
}

// TestMultipleAddressActivity tests tracking activity for multiple addresses
func TestMultipleAddressActivity(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Track activity for multiple addresses independently
	// 2. Verify activity for one address doesn't affect others
	// 3. Test with 100+ addresses
	// 4. Verify query efficiency
	// 5. Test concurrent activity updates
}

// TestActivityRetention tests activity record retention
func TestActivityRetention(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Verify old activity records are retained
	// 2. Test with 50+ year old activity
	// 3. Verify no automatic cleanup occurs
	// 4. Test migration of activity records
}

// TestFalsePositiveProtection tests protection against false positives
func TestFalsePositiveProtection(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Owner loses wallet, recovers, makes transaction
	// 2. Verify switch auto-cancels on ANY signed transaction
	// 3. Test during grace period (should cancel immediately)
	// 4. Test with different transaction types (send, delegate, vote)
	// 5. Verify owner maintains full control after recovery
	// 6. Test with multiple triggered switches
	// 7. Verify manual cancellation still works
	// 8. Test rapid trigger/cancel cycles
}

// TestInactivityCheckOptimization tests optimized inactivity checking
func TestInactivityCheckOptimization(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Verify batch processing of inactivity checks
	// 2. Test with 1000+ active plans
	// 3. Verify only plans near threshold are checked
	// 4. Test performance with various plan distributions
	// 5. Verify correct sorting by next check time
	// 6. Test edge cases (all plans inactive, all active)
}

// TestActivityHooks tests integration with other modules
func TestActivityHooks(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Verify bank.Send triggers activity update
	// 2. Verify staking.Delegate triggers activity update
	// 3. Verify gov.Vote triggers activity update
	// 4. Verify dex.PlaceOrder triggers activity update
	// 5. Test with nested module calls
	// 6. Verify activity is recorded before transaction completion
	// 7. Test failed transactions (should still record activity)
}
