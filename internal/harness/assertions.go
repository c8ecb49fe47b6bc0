package harness

import (
	"fmt"

	"github.com/roach88/donorlens/internal/relation"
	"github.com/roach88/donorlens/internal/report"
)

// checkExpectations compares report output against the scenario's
// expected rows. Order matters: expectations describe the published
// tables, which are fully ordered.
func checkExpectations(want *Expectations, leaders []report.DonationLeader, regional []report.RegionalImpactLeader) error {
	if len(want.DonationLeaders) != len(leaders) {
		return fmt.Errorf("donation leaders: want %d rows, got %d", len(want.DonationLeaders), len(leaders))
	}
	for i, w := range want.DonationLeaders {
		got := leaders[i]
		total, err := relation.ParseMoney(w.Total)
		if err != nil {
			return fmt.Errorf("donation_leaders[%d]: %w", i, err)
		}
		if got.AssignmentID != w.Assignment ||
			got.Region != w.Region ||
			string(got.DonorType) != w.DonorType ||
			got.Total != total {
			return fmt.Errorf("donation_leaders[%d]: want %+v, got %+v", i, w, got)
		}
	}

	if len(want.RegionalImpact) != len(regional) {
		return fmt.Errorf("regional impact: want %d rows, got %d", len(want.RegionalImpact), len(regional))
	}
	for i, w := range want.RegionalImpact {
		got := regional[i]
		impact, err := relation.ParseImpact(w.Impact)
		if err != nil {
			return fmt.Errorf("regional_impact[%d]: %w", i, err)
		}
		if got.AssignmentID != w.Assignment ||
			got.Region != w.Region ||
			got.Impact != impact ||
			got.DonationCount != w.Donations {
			return fmt.Errorf("regional_impact[%d]: want %+v, got %+v", i, w, got)
		}
	}
	return nil
}
