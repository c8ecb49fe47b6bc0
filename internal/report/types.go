package report

import "github.com/roach88/donorlens/internal/relation"

// DefaultTopN is the published size of the donation leader board.
const DefaultTopN = 5

// DonationLeader is one row of the donation leader report: a single
// (assignment, donor type) group and its summed donation amount.
type DonationLeader struct {
	AssignmentID   string
	AssignmentName string
	Region         string
	DonorType      relation.DonorType
	Total          relation.Money
}

// RegionalImpactLeader is one row of the regional impact report: the
// highest-impact assignment in a region among assignments with at least
// one donation.
type RegionalImpactLeader struct {
	AssignmentID   string
	AssignmentName string
	Region         string
	Impact         relation.Impact
	DonationCount  int64
}
