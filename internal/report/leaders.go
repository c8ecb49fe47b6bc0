package report

import (
	"sort"

	"github.com/roach88/donorlens/internal/dataset"
	"github.com/roach88/donorlens/internal/relation"
)

// groupKey identifies one (assignment, donor type) aggregation group.
type groupKey struct {
	assignmentID string
	donorType    relation.DonorType
}

// DonationLeaders returns the top n (assignment, donor type) groups by
// total donated amount, ranked globally across donor types and regions.
//
// Order: total descending, then assignment id ascending, then donor type
// ascending. The key (assignment, donor type) is unique per row, so the
// order is total. n <= 0 returns nil.
func DonationLeaders(snap *dataset.Snapshot, n int) []DonationLeader {
	if n <= 0 {
		return nil
	}

	totals := make(map[groupKey]relation.Money)
	for _, d := range snap.Donations {
		donor, ok := snap.Donor(d.DonorID)
		if !ok {
			continue // unreachable on a validated snapshot
		}
		totals[groupKey{d.AssignmentID, donor.Type}] += d.Amount
	}

	// nil when empty so both formulations agree under deep equality.
	var rows []DonationLeader
	for key, total := range totals {
		assignment, ok := snap.Assignment(key.assignmentID)
		if !ok {
			continue
		}
		rows = append(rows, DonationLeader{
			AssignmentID:   assignment.ID,
			AssignmentName: assignment.Name,
			Region:         assignment.Region,
			DonorType:      key.donorType,
			Total:          total,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		if rows[i].AssignmentID != rows[j].AssignmentID {
			return rows[i].AssignmentID < rows[j].AssignmentID
		}
		return rows[i].DonorType < rows[j].DonorType
	})

	if len(rows) > n {
		rows = rows[:n]
	}
	return rows
}
