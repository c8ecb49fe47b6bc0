package report

import (
	"sort"

	"github.com/roach88/donorlens/internal/dataset"
)

// RegionalImpactLeaders returns, per region, the highest-impact assignment
// among assignments with at least one donation, ordered by region
// ascending (byte order).
//
// Assignments with zero donations are excluded before ranking, so a
// region whose assignments are all unfunded does not appear at all.
// Equal impact within a region resolves to the lowest assignment id.
func RegionalImpactLeaders(snap *dataset.Snapshot) []RegionalImpactLeader {
	counts := make(map[string]int64, len(snap.Assignments))
	for _, d := range snap.Donations {
		counts[d.AssignmentID]++
	}

	best := make(map[string]RegionalImpactLeader)
	for _, a := range snap.Assignments {
		count := counts[a.ID]
		if count == 0 {
			continue
		}
		candidate := RegionalImpactLeader{
			AssignmentID:   a.ID,
			AssignmentName: a.Name,
			Region:         a.Region,
			Impact:         a.Impact,
			DonationCount:  count,
		}
		current, ok := best[a.Region]
		if !ok || beats(candidate, current) {
			best[a.Region] = candidate
		}
	}

	// nil when empty so both formulations agree under deep equality.
	var rows []RegionalImpactLeader
	for _, row := range best {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Region < rows[j].Region
	})
	return rows
}

// beats reports whether a outranks b within one region: higher impact
// wins, equal impact resolves to the lower assignment id.
func beats(a, b RegionalImpactLeader) bool {
	if a.Impact != b.Impact {
		return a.Impact > b.Impact
	}
	return a.AssignmentID < b.AssignmentID
}
