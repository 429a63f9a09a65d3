package keeper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestProcessInactivityChecks tests EndBlock inactivity processing
func TestProcessInactivityChecks(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Create plan with 1 year inactivity period
	// 2. Owner inactive for 366 days
	// 3. EndBlock processes and triggers switch
	// 4. Verify plan status changes to Triggered
	// 5. Verify grace period begins
	// 6. Test with multiple plans at different stages
	// 7. Verify only expired plans are processed
	// 8. Test performance with 1000+ active plans
	// 9. Verify plans are processed in batches
	// 10. Test with varying inactivity periods
}

// TestProcessGracePeriodExpiry tests grace period expiration processing
func TestProcessGracePeriodExpiry(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Trigger switch with 30 day grace period
	// 2. Wait 30 days
	// 3. EndBlock processes grace period expiry
	// 4. Verify plan status changes to Executing
	// 5. Verify priority 1 claim window opens
	// 6. Test with multiple plans expiring same block
	// 7. Test with different grace periods (30, 60, 90 days)
	// 8. Verify beneficiary notifications
	// 9. Test boundary conditions (exact expiry time)
}

// TestProcessClaimWindowExpiry tests claim window expiration
func TestProcessClaimWindowExpiry(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Priority 1 claim window opens
	// 2. Wait for window to expire (e.g., 180 days)
	// 3. EndBlock processes window expiry
	// 4. Verify claim status changes to Expired
	// 5. Verify priority 2 claim window opens
	// 6. Test cascading to next beneficiary
	// 7. Test with last beneficiary expiring (charity claim)
	// 8. Test with multiple windows expiring same block
	// 9. Verify unclaimed assets are reallocated
	// 10. Test boundary conditions
}

// TestProcessUltraLongInactivity tests 50 year charity fallback
func TestProcessUltraLongInactivity(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Create plan with 50 year inactivity period
	// 2. Simulate 50+ years of inactivity
	// 3. EndBlock triggers ultra-long inactivity
	// 4. Verify assets go directly to charity
	// 5. Verify beneficiaries are bypassed
	// 6. Test with no charity address set
	// 7. Verify this is a special case (not normal inheritance flow)
	// 8. Test event emission for ultra-long inactivity
}

// TestEndBlockBatchProcessing tests efficient batch processing
func TestEndBlockBatchProcessing(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Create 100 plans with staggered expiry times
	// 2. Process in single EndBlock
	// 3. Verify all expired plans are processed
	// 4. Verify non-expired plans are skipped
	// 5. Test with 1000+ plans
	// 6. Measure gas usage per plan
	// 7. Verify gas limit is not exceeded
	// 8. Test with max plans per block limit
	// 9. Verify partial processing if limit reached
	// 10. Test resumption in next block
}

// TestEndBlockPriorityOrdering tests processing priority
func TestEndBlockPriorityOrdering(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Create plans with different priorities
	// 2. Process in EndBlock
	// 3. Verify high priority plans are processed first
	// 4. Test with emergency plans (very short inactivity)
	// 5. Verify fair processing if gas limit reached
	// 6. Test with equal priority plans (FIFO)
}

// TestEndBlockStateConsistency tests state consistency during processing
func TestEndBlockStateConsistency(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Process multiple plans in EndBlock
	// 2. Simulate panic during processing
	// 3. Verify state rolls back correctly
	// 4. Test partial processing recovery
	// 5. Verify no duplicate processing
	// 6. Test with concurrent plan updates
	// 7. Verify atomic operations
}

// TestEndBlockWithOwnerActivity tests activity during EndBlock processing
func TestEndBlockWithOwnerActivity(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Plan scheduled for trigger in EndBlock
	// 2. Owner makes transaction in same block (before EndBlock)
	// 3. Verify EndBlock does NOT trigger switch
	// 4. Verify activity is detected before processing
	// 5. Test with multiple transactions in same block
	// 6. Verify correct ordering of hooks
}

// TestEndBlockEventEmission tests event emission during processing
func TestEndBlockEventEmission(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Process inactivity checks
	// 2. Verify InactivityCheckPerformed event
	// 3. Process grace period expiry
	// 4. Verify GracePeriodExpired event
	// 5. Process claim window expiry
	// 6. Verify ClaimWindowExpired event
	// 7. Test with multiple events in single EndBlock
	// 8. Verify event attributes are correct
	// 9. Verify events can be queried by block height
}

// TestEndBlockGasOptimization tests gas usage optimization
func TestEndBlockGasOptimization(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Measure gas for 1 plan processing
	// 2. Measure gas for 10 plans processing
	// 3. Measure gas for 100 plans processing
	// 4. Verify linear gas growth
	// 5. Test with different plan complexities
	// 6. Verify caching strategies work
	// 7. Test with hot and cold state access
	// 8. Verify no unnecessary state reads
}

// TestEndBlockWithMultipleModuleInteractions tests cross-module calls
func TestEndBlockWithMultipleModuleInteractions(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. EndBlock processes plan
	// 2. Verify bank keeper is called for locks
	// 3. Verify escrow keeper is checked for bans
	// 4. Verify equity keeper is called for share locks
	// 5. Test with all keepers returning errors
	// 6. Verify graceful error handling
	// 7. Test with partial keeper availability
}

// TestEndBlockIndexMaintenance tests index updates during processing
func TestEndBlockIndexMaintenance(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Process plan status change
	// 2. Verify status index is updated
	// 3. Verify owner index remains valid
	// 4. Verify beneficiary index remains valid
	// 5. Test with plan deletion
	// 6. Verify indexes are cleaned up
	// 7. Test query performance after EndBlock
}

// TestEndBlockDeterminism tests deterministic processing
func TestEndBlockDeterminism(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Create identical state on two validators
	// 2. Process EndBlock on both
	// 3. Verify identical results
	// 4. Test with different block times (time.Now() issues)
	// 5. Verify state hashes match
	// 6. Test with 100+ validators
	// 7. Verify no race conditions
}

// TestEndBlockPerformanceBenchmark tests performance under load
func TestEndBlockPerformanceBenchmark(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Benchmark with 10 plans
	// 2. Benchmark with 100 plans
	// 3. Benchmark with 1000 plans
	// 4. Benchmark with 10000 plans
	// 5. Verify processing time is acceptable
	// 6. Test with complex plans (many beneficiaries)
	// 7. Test with simple plans (one beneficiary)
	// 8. Identify bottlenecks
	// 9. Verify gas usage is reasonable
	// 10. Test with production block time (2 seconds)
}

// TestEndBlockRecovery tests recovery from processing errors
func TestEndBlockRecovery(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Inject error during plan processing
	// 2. Verify error is logged
	// 3. Verify processing continues with next plan
	// 4. Test with multiple consecutive errors
	// 5. Verify failed plan is retried in next block
	// 6. Test with permanent errors (skip plan)
	// 7. Verify system remains operational
}

// TestEndBlockPanicRecovery tests panic recovery
func TestEndBlockPanicRecovery(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Inject panic during plan processing
	// 2. Verify panic is caught
	// 3. Verify block production continues
	// 4. Test with panic in different processing stages
	// 5. Verify state consistency after panic
	// 6. Test with critical panics (should halt chain?)
}

// TestEndBlockTimeBasedTriggers tests time-based trigger logic
func TestEndBlockTimeBasedTriggers(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name               string
		lastActivity       time.Time
		inactivityPeriod   time.Duration
		currentTime        time.Time
		shouldTrigger      bool
	}{
		{
			name:             "should trigger - 1 day over",
			lastActivity:     now.Add(-366 * 24 * time.Hour),
			inactivityPeriod: 365 * 24 * time.Hour,
			currentTime:      now,
			shouldTrigger:    true,
		},
		{
			name:             "should not trigger - 1 day under",
			lastActivity:     now.Add(-364 * 24 * time.Hour),
			inactivityPeriod: 365 * 24 * time.Hour,
			currentTime:      now,
			shouldTrigger:    false,
		},
		{
			name:             "boundary - exactly at threshold",
			lastActivity:     now.Add(-365 * 24 * time.Hour),
			inactivityPeriod: 365 * 24 * time.Hour,
			currentTime:      now,
			shouldTrigger:    false, // Use > not >=
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elapsed := tt.currentTime.Sub(tt.lastActivity)
			shouldTrigger := elapsed > tt.inactivityPeriod
			require.Equal(t, tt.shouldTrigger, shouldTrigger)
		})
	}
}

// TestEndBlockProcessingQueues tests queue-based processing
func TestEndBlockProcessingQueues(t *testing.T) {
	t.Skip("Requires full keeper setup")

	// Test cases to implement:
	// 1. Maintain queue of plans to process
	// 2. Process queue in FIFO order
	// 3. Test with queue overflow
	// 4. Verify queue persistence across blocks
	// 5. Test queue cleanup after processing
	// 6. Test with priority queue (if implemented)
	// 7. Verify no duplicate entries in queue
}
