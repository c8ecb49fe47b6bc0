package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/donorlens/internal/relation"
	"github.com/roach88/donorlens/internal/testutil"
)

func TestRegionalImpactLeaders_PicksMaxPerRegion(t *testing.T) {
	snap := fundedSnapshot(t)

	got := RegionalImpactLeaders(snap)

	// A1 and A2 tie on impact in East; the lower id wins. West has only
	// the unfunded A4 and must not appear.
	want := []RegionalImpactLeader{
		{AssignmentID: "A1", AssignmentName: "Clean Water Initiative", Region: "East", Impact: 95, DonationCount: 3},
		{AssignmentID: "A3", AssignmentName: "School Meals Program", Region: "North", Impact: 80, DonationCount: 2},
	}
	assert.Equal(t, want, got)
}

func TestRegionalImpactLeaders_ExcludesZeroDonationAssignments(t *testing.T) {
	// A higher-impact assignment with zero donations loses to a funded one.
	donors := []relation.Donor{testutil.Donor("D1", relation.DonorIndividual)}
	assignments := []relation.Assignment{
		testutil.Assignment("A1", "Funded", "East", 100),
		testutil.Assignment("A2", "Unfunded", "East", 95),
	}
	donations := []relation.Donation{
		testutil.Donation("N1", "A1", "D1", 50_00),
	}
	snap := testutil.Snapshot(t, donors, assignments, donations)

	got := RegionalImpactLeaders(snap)

	require.Len(t, got, 1)
	assert.Equal(t, "A1", got[0].AssignmentID)
	assert.Equal(t, relation.Impact(100), got[0].Impact)
	assert.Equal(t, int64(1), got[0].DonationCount)
}

func TestRegionalImpactLeaders_TieBreaksByLowestID(t *testing.T) {
	donors := []relation.Donor{testutil.Donor("D1", relation.DonorIndividual)}
	// Declared in reverse id order to prove the result does not depend on
	// row order.
	assignments := []relation.Assignment{
		testutil.Assignment("A2", "Second", "South", 70),
		testutil.Assignment("A1", "First", "South", 70),
	}
	donations := []relation.Donation{
		testutil.Donation("N1", "A2", "D1", 10_00),
		testutil.Donation("N2", "A1", "D1", 10_00),
	}
	snap := testutil.Snapshot(t, donors, assignments, donations)

	got := RegionalImpactLeaders(snap)

	require.Len(t, got, 1)
	assert.Equal(t, "A1", got[0].AssignmentID)
}

func TestRegionalImpactLeaders_RegionOrderAscending(t *testing.T) {
	donors := []relation.Donor{testutil.Donor("D1", relation.DonorIndividual)}
	assignments := []relation.Assignment{
		testutil.Assignment("A1", "West Project", "West", 60),
		testutil.Assignment("A2", "East Project", "East", 60),
		testutil.Assignment("A3", "North Project", "North", 60),
	}
	donations := []relation.Donation{
		testutil.Donation("N1", "A1", "D1", 10_00),
		testutil.Donation("N2", "A2", "D1", 10_00),
		testutil.Donation("N3", "A3", "D1", 10_00),
	}
	snap := testutil.Snapshot(t, donors, assignments, donations)

	got := RegionalImpactLeaders(snap)

	require.Len(t, got, 3)
	assert.Equal(t, "East", got[0].Region)
	assert.Equal(t, "North", got[1].Region)
	assert.Equal(t, "West", got[2].Region)
}

func TestRegionalImpactLeaders_EmptySnapshot(t *testing.T) {
	snap := testutil.Snapshot(t, nil, nil, nil)

	assert.Empty(t, RegionalImpactLeaders(snap))
}

func TestRegionalImpactLeaders_Idempotent(t *testing.T) {
	snap := fundedSnapshot(t)

	assert.Equal(t, RegionalImpactLeaders(snap), RegionalImpactLeaders(snap))
}
