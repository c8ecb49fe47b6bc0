package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/donorlens/internal/dataset"
	"github.com/roach88/donorlens/internal/relation"
	"github.com/roach88/donorlens/internal/testutil"
)

// fundedSnapshot is the shared fixture: four assignments across three
// regions, one of them (A4) with zero donations.
func fundedSnapshot(t *testing.T) *dataset.Snapshot {
	t.Helper()
	donors := []relation.Donor{
		testutil.Donor("D1", relation.DonorIndividual),
		testutil.Donor("D2", relation.DonorOrganization),
		testutil.Donor("D3", relation.DonorCorporate),
	}
	assignments := []relation.Assignment{
		testutil.Assignment("A1", "Clean Water Initiative", "East", 95),
		testutil.Assignment("A2", "Mobile Health Clinics", "East", 95),
		testutil.Assignment("A3", "School Meals Program", "North", 80),
		testutil.Assignment("A4", "Winter Blanket Drive", "West", 55),
	}
	donations := []relation.Donation{
		testutil.Donation("N1", "A1", "D2", 12_000_00),
		testutil.Donation("N2", "A1", "D1", 150_50),
		testutil.Donation("N3", "A1", "D2", 400_00),
		testutil.Donation("N4", "A2", "D3", 5_000_00),
		testutil.Donation("N5", "A3", "D1", 20_00),
		testutil.Donation("N6", "A3", "D2", 1_000_00),
	}
	return testutil.Snapshot(t, donors, assignments, donations)
}

func TestDonationLeaders_RanksGlobally(t *testing.T) {
	snap := fundedSnapshot(t)

	got := DonationLeaders(snap, DefaultTopN)

	want := []DonationLeader{
		{AssignmentID: "A1", AssignmentName: "Clean Water Initiative", Region: "East", DonorType: relation.DonorOrganization, Total: 12_400_00},
		{AssignmentID: "A2", AssignmentName: "Mobile Health Clinics", Region: "East", DonorType: relation.DonorCorporate, Total: 5_000_00},
		{AssignmentID: "A3", AssignmentName: "School Meals Program", Region: "North", DonorType: relation.DonorOrganization, Total: 1_000_00},
		{AssignmentID: "A1", AssignmentName: "Clean Water Initiative", Region: "East", DonorType: relation.DonorIndividual, Total: 150_50},
		{AssignmentID: "A3", AssignmentName: "School Meals Program", Region: "North", DonorType: relation.DonorIndividual, Total: 20_00},
	}
	assert.Equal(t, want, got)
}

func TestDonationLeaders_TotalsAreNonIncreasing(t *testing.T) {
	got := DonationLeaders(fundedSnapshot(t), DefaultTopN)

	require.NotEmpty(t, got)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i].Total, got[i-1].Total)
	}
}

func TestDonationLeaders_TruncatesToN(t *testing.T) {
	snap := fundedSnapshot(t)

	got := DonationLeaders(snap, 2)

	require.Len(t, got, 2)
	assert.Equal(t, "A1", got[0].AssignmentID)
	assert.Equal(t, relation.Money(12_400_00), got[0].Total)
	assert.Equal(t, "A2", got[1].AssignmentID)
}

func TestDonationLeaders_TieBreaksByAssignmentThenDonorType(t *testing.T) {
	donors := []relation.Donor{
		testutil.Donor("D1", relation.DonorIndividual),
		testutil.Donor("D2", relation.DonorOrganization),
	}
	assignments := []relation.Assignment{
		testutil.Assignment("A2", "Second", "East", 50),
		testutil.Assignment("A1", "First", "East", 50),
	}
	// Three groups, all totalling exactly 100.00.
	donations := []relation.Donation{
		testutil.Donation("N1", "A2", "D1", 100_00),
		testutil.Donation("N2", "A1", "D2", 100_00),
		testutil.Donation("N3", "A1", "D1", 100_00),
	}
	snap := testutil.Snapshot(t, donors, assignments, donations)

	got := DonationLeaders(snap, DefaultTopN)

	require.Len(t, got, 3)
	assert.Equal(t, "A1", got[0].AssignmentID)
	assert.Equal(t, relation.DonorIndividual, got[0].DonorType)
	assert.Equal(t, "A1", got[1].AssignmentID)
	assert.Equal(t, relation.DonorOrganization, got[1].DonorType)
	assert.Equal(t, "A2", got[2].AssignmentID)
}

func TestDonationLeaders_EmptySnapshot(t *testing.T) {
	snap := testutil.Snapshot(t, nil, nil, nil)

	assert.Empty(t, DonationLeaders(snap, DefaultTopN))
}

func TestDonationLeaders_NonPositiveN(t *testing.T) {
	snap := fundedSnapshot(t)

	assert.Nil(t, DonationLeaders(snap, 0))
	assert.Nil(t, DonationLeaders(snap, -1))
}

func TestDonationLeaders_Idempotent(t *testing.T) {
	snap := fundedSnapshot(t)

	first := DonationLeaders(snap, DefaultTopN)
	second := DonationLeaders(snap, DefaultTopN)

	assert.Equal(t, first, second)
}
