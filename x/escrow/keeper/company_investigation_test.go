package keeper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mintvault/cdp-chain/x/escrow/types"
)

// TestCreateCompanyInvestigation tests creating a new investigation
func TestCreateCompanyInvestigation(t *testing.T) {
	// This is a placeholder test structure
	// Actual test would require full keeper setup with mock dependencies

	t.Skip("TODO: Implement with full test suite")

	// Test cases to implement:
	// 1. Create investigation successfully
	// 2. Investigation starts in Preliminary status
	// 3. Auto-transitions to WardenReview
	// 4. Verify 48-hour deadline set
	// 5. Verify no freeze occurs
}

// TestWardenVoting tests the Warden voting phase
func TestWardenVoting(t *testing.T) {
	t.Skip("TODO: Implement with full test suite")

	// Test cases to implement:
	// 1. Warden votes to approve
	// 2. Warden votes to reject
	// 3. 2/3 approval → escalate to Steward
	// 4. < 2/3 approval → clear investigation
	// 5. Non-Warden tries to vote → error
	// 6. Double vote → error
	// 7. Vote after deadline → error
}

// TestStewardVoting tests the Steward voting phase
func TestStewardVoting(t *testing.T) {
	t.Skip("TODO: Implement with full test suite")

	// Test cases to implement:
	// 1. Steward votes to approve
	// 2. Steward votes to reject
	// 3. 3/5 approval → issue freeze warning
	// 4. < 3/5 approval → clear investigation
	// 5. Non-Steward tries to vote → error
	// 6. Double vote → error
	// 7. Vote after deadline → error
}

// TestFreezeWarningPeriod tests the 24-hour warning period
func TestFreezeWarningPeriod(t *testing.T) {
	t.Skip("TODO: Implement with full test suite")

	// Test cases to implement:
	// 1. Warning issued after Steward approval
	// 2. 24-hour deadline set correctly
	// 3. Warning event emitted
	// 4. No freeze before warning expires
	// 5. Freeze executes after warning expires
}

// TestProcessInvestigationPhases tests EndBlock processing
func TestProcessInvestigationPhases(t *testing.T) {
	t.Skip("TODO: Implement with full test suite")

	// Test cases to implement:
	// 1. Warden deadline expiration handling
	// 2. Steward deadline expiration handling
	// 3. Warning expiration → freeze execution
	// 4. Multiple investigations processed
	// 5. No action on active investigations
}

// TestInvestigationQueries tests query methods
func TestInvestigationQueries(t *testing.T) {
	t.Skip("TODO: Implement with full test suite")

	// Test cases to implement:
	// 1. GetInvestigationsByStatus
	// 2. GetInvestigationsByCompany
	// 3. GetAllCompanyInvestigations
	// 4. Verify indexes work correctly
}

// TestTierValidation tests voter tier validation
func TestTierValidation(t *testing.T) {
	t.Skip("TODO: Implement with full test suite")

	// Test cases to implement:
	// 1. Keeper (tier 1) cannot vote
	// 2. Warden (tier 2) can vote in Warden phase
	// 3. Warden (tier 2) cannot vote in Steward phase
	// 4. Steward (tier 3) can vote in Steward phase
	// 5. Steward (tier 3) can vote in Warden phase
	// 6. Archon (tier 4) can vote in any phase
}

// TestInvestigationStatusTransitions tests status transitions
func TestInvestigationStatusTransitions(t *testing.T) {
	t.Skip("TODO: Implement with full test suite")

	// Test cases to implement:
	// 1. Preliminary → WardenReview (auto)
	// 2. WardenReview → StewardReview (2/3 approval)
	// 3. WardenReview → Cleared (< 2/3 approval)
	// 4. StewardReview → FreezeApproved (3/5 approval)
	// 5. StewardReview → Cleared (< 3/5 approval)
	// 6. FreezeApproved → Frozen (after warning)
	// 7. Cannot transition backwards
}

// Helper function to create test investigation
func createTestInvestigation(t *testing.T) types.CompanyInvestigation {
	blockTime := time.Now()
	investigation := types.NewCompanyInvestigation(1, 100, 200, blockTime)

	require.Equal(t, uint64(1), investigation.ID)
	require.Equal(t, uint64(100), investigation.CompanyID)
	require.Equal(t, uint64(200), investigation.ReportID)
	require.Equal(t, types.InvestigationStatusPreliminary, investigation.Status)
	require.False(t, investigation.WardenApproved)
	require.False(t, investigation.StewardApproved)

	return investigation
}

// Helper function to create test vote
func createTestVote(voter string, tier int, approve bool) types.TierVote {
	return types.TierVote{
		Voter:   voter,
		Tier:    tier,
		Approve: approve,
		Reason:  "test vote",
		VotedAt: time.Now(),
	}
}

// TestCompanyInvestigationValidation tests validation logic
func TestCompanyInvestigationValidation(t *testing.T) {
	tests := []struct {
		name          string
		investigation types.CompanyInvestigation
		wantErr       bool
	}{
		{
			name: "valid investigation",
			investigation: types.CompanyInvestigation{
				ID:        1,
				CompanyID: 100,
				ReportID:  200,
			},
			wantErr: false,
		},
		{
			name: "zero company ID",
			investigation: types.CompanyInvestigation{
				ID:        1,
				CompanyID: 0,
				ReportID:  200,
			},
			wantErr: true,
		},
		{
			name: "zero report ID",
			investigation: types.CompanyInvestigation{
				ID:        1,
				CompanyID: 100,
				ReportID:  0,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.investigation.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// TestVoteCountHelpers tests vote counting helper methods
func TestVoteCountHelpers(t *testing.T) {
	investigation := createTestInvestigation(t)

	// Test Warden vote counting
	investigation.WardenVotes = []types.TierVote{
		createTestVote("warden1", 2, true),
		createTestVote("warden2", 2, true),
		createTestVote("warden3", 2, false),
	}

	approveCount, rejectCount := investigation.CountWardenVotes()
	require.Equal(t, 2, approveCount)
	require.Equal(t, 1, rejectCount)

	// Test Steward vote counting
	investigation.StewardVotes = []types.TierVote{
		createTestVote("steward1", 3, true),
		createTestVote("steward2", 3, true),
		createTestVote("steward3", 3, true),
		createTestVote("steward4", 3, false),
		createTestVote("steward5", 3, false),
	}

	approveCount, rejectCount = investigation.CountStewardVotes()
	require.Equal(t, 3, approveCount)
	require.Equal(t, 2, rejectCount)
}

// TestHasVotedHelper tests the HasVoted helper method
func TestHasVotedHelper(t *testing.T) {
	investigation := createTestInvestigation(t)
	investigation.Status = types.InvestigationStatusWardenReview

	// Initially no votes
	require.False(t, investigation.HasVoted("warden1"))

	// Add vote
	investigation.WardenVotes = []types.TierVote{
		createTestVote("warden1", 2, true),
	}

	// Now has voted
	require.True(t, investigation.HasVoted("warden1"))
	require.False(t, investigation.HasVoted("warden2"))

	// Test Steward phase
	investigation.Status = types.InvestigationStatusStewardReview
	investigation.StewardVotes = []types.TierVote{
		createTestVote("steward1", 3, true),
	}

	require.True(t, investigation.HasVoted("steward1"))
	require.False(t, investigation.HasVoted("steward2"))
}

// TestInvestigationStatusString tests status string conversion
func TestInvestigationStatusString(t *testing.T) {
	tests := []struct {
		status types.InvestigationStatus
		want   string
	}{
		{types.InvestigationStatusPreliminary, "preliminary"},
		{types.InvestigationStatusWardenReview, "warden_review"},
		{types.InvestigationStatusStewardReview, "steward_review"},
		{types.InvestigationStatusFreezeApproved, "freeze_approved"},
		{types.InvestigationStatusFrozen, "frozen"},
		{types.InvestigationStatusCleared, "cleared"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := tt.status.String()
			require.Equal(t, tt.want, got)
		})
	}
}
