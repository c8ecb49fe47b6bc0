// Package testutil provides fixture builders shared by package tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/donorlens/internal/dataset"
	"github.com/roach88/donorlens/internal/relation"
)

// Donor builds a donor record.
func Donor(id string, donorType relation.DonorType) relation.Donor {
	return relation.Donor{ID: id, Type: donorType}
}

// Assignment builds an assignment with fixed test defaults for duration
// and budget; tests that care about those fields set them explicitly.
func Assignment(id, name, region string, impact relation.Impact) relation.Assignment {
	return relation.Assignment{
		ID:             id,
		Name:           name,
		Region:         region,
		DurationMonths: 6,
		Budget:         relation.Money(10_000_00),
		Impact:         impact,
	}
}

// Donation builds a donation record with the amount in cents.
func Donation(id, assignmentID, donorID string, amount relation.Money) relation.Donation {
	return relation.Donation{
		ID:           id,
		AssignmentID: assignmentID,
		DonorID:      donorID,
		Amount:       amount,
	}
}

// Snapshot assembles a validated snapshot or fails the test.
func Snapshot(t *testing.T, donors []relation.Donor, assignments []relation.Assignment, donations []relation.Donation) *dataset.Snapshot {
	t.Helper()
	snap, err := dataset.New(donors, assignments, donations)
	require.NoError(t, err)
	return snap
}
