package reportsql

import (
	"context"
	"fmt"

	"github.com/roach88/donorlens/internal/relation"
	"github.com/roach88/donorlens/internal/report"
	"github.com/roach88/donorlens/internal/store"
)

// DonationLeaders executes the SQL formulation of the donation leader
// report. n <= 0 returns nil, matching report.DonationLeaders.
func DonationLeaders(ctx context.Context, st *store.Store, n int) ([]report.DonationLeader, error) {
	if n <= 0 {
		return nil, nil
	}

	rows, err := st.Query(ctx, QDonationLeaders, n)
	if err != nil {
		return nil, fmt.Errorf("donation leaders query: %w", err)
	}
	defer rows.Close()

	var leaders []report.DonationLeader
	for rows.Next() {
		var (
			row        report.DonationLeader
			donorType  string
			totalCents int64
		)
		if err := rows.Scan(&row.AssignmentID, &row.AssignmentName, &row.Region, &donorType, &totalCents); err != nil {
			return nil, fmt.Errorf("scan donation leader: %w", err)
		}
		row.DonorType = relation.DonorType(donorType)
		row.Total = relation.Money(totalCents)
		leaders = append(leaders, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("donation leaders rows: %w", err)
	}
	return leaders, nil
}

// RegionalImpactLeaders executes the SQL formulation of the regional
// impact report.
func RegionalImpactLeaders(ctx context.Context, st *store.Store) ([]report.RegionalImpactLeader, error) {
	rows, err := st.Query(ctx, QRegionalImpactLeaders)
	if err != nil {
		return nil, fmt.Errorf("regional impact query: %w", err)
	}
	defer rows.Close()

	var leaders []report.RegionalImpactLeader
	for rows.Next() {
		var (
			row          report.RegionalImpactLeader
			impactTenths int64
		)
		if err := rows.Scan(&row.AssignmentID, &row.AssignmentName, &row.Region, &impactTenths, &row.DonationCount); err != nil {
			return nil, fmt.Errorf("scan regional impact leader: %w", err)
		}
		row.Impact = relation.Impact(impactTenths)
		leaders = append(leaders, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("regional impact rows: %w", err)
	}
	return leaders, nil
}
