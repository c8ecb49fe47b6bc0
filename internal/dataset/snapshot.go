package dataset

import (
	"fmt"

	"github.com/roach88/donorlens/internal/relation"
)

// Snapshot is a validated, immutable view of the three relations.
// Slices preserve load order; lookups are by id.
type Snapshot struct {
	Donors      []relation.Donor
	Assignments []relation.Assignment
	Donations   []relation.Donation

	donorByID      map[string]relation.Donor
	assignmentByID map[string]relation.Assignment
}

// New validates the three relations and assembles a snapshot.
//
// Validation order per relation: field-level schema (CUE), then duplicate
// ids. Donations additionally require both foreign keys to resolve.
// The first violation fails the load; data is assumed pre-validated for
// everything downstream.
func New(donors []relation.Donor, assignments []relation.Assignment, donations []relation.Donation) (*Snapshot, error) {
	v, err := newValidator()
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Donors:         donors,
		Assignments:    assignments,
		Donations:      donations,
		donorByID:      make(map[string]relation.Donor, len(donors)),
		assignmentByID: make(map[string]relation.Assignment, len(assignments)),
	}

	for _, d := range donors {
		if err := v.checkDonor(d); err != nil {
			return nil, fmt.Errorf("donor %q: %w", d.ID, err)
		}
		if _, dup := snap.donorByID[d.ID]; dup {
			return nil, fmt.Errorf("donor %q: %w", d.ID, ErrDuplicateID)
		}
		snap.donorByID[d.ID] = d
	}

	for _, a := range assignments {
		if err := v.checkAssignment(a); err != nil {
			return nil, fmt.Errorf("assignment %q: %w", a.ID, err)
		}
		if _, dup := snap.assignmentByID[a.ID]; dup {
			return nil, fmt.Errorf("assignment %q: %w", a.ID, ErrDuplicateID)
		}
		snap.assignmentByID[a.ID] = a
	}

	seen := make(map[string]struct{}, len(donations))
	for _, dn := range donations {
		if err := v.checkDonation(dn); err != nil {
			return nil, fmt.Errorf("donation %q: %w", dn.ID, err)
		}
		if _, dup := seen[dn.ID]; dup {
			return nil, fmt.Errorf("donation %q: %w", dn.ID, ErrDuplicateID)
		}
		seen[dn.ID] = struct{}{}
		if _, ok := snap.assignmentByID[dn.AssignmentID]; !ok {
			return nil, fmt.Errorf("donation %q references assignment %q: %w", dn.ID, dn.AssignmentID, ErrUnknownAssignment)
		}
		if _, ok := snap.donorByID[dn.DonorID]; !ok {
			return nil, fmt.Errorf("donation %q references donor %q: %w", dn.ID, dn.DonorID, ErrUnknownDonor)
		}
	}

	return snap, nil
}

// Donor returns the donor with the given id.
func (s *Snapshot) Donor(id string) (relation.Donor, bool) {
	d, ok := s.donorByID[id]
	return d, ok
}

// Assignment returns the assignment with the given id.
func (s *Snapshot) Assignment(id string) (relation.Assignment, bool) {
	a, ok := s.assignmentByID[id]
	return a, ok
}
