package store

import (
	"context"
	"fmt"

	"github.com/roach88/donorlens/internal/dataset"
)

const (
	insertDonor      = `INSERT INTO donors (id, donor_type) VALUES (?, ?)`
	insertAssignment = `INSERT INTO assignments (id, name, region, duration_months, budget_cents, impact_tenths) VALUES (?, ?, ?, ?, ?, ?)`
	insertDonation   = `INSERT INTO donations (id, assignment_id, donor_id, amount_cents) VALUES (?, ?, ?, ?)`
)

// LoadSnapshot inserts a validated snapshot in a single transaction.
// Parent rows go first so the donation foreign keys resolve. The store is
// treated as read-only afterwards.
func (s *Store) LoadSnapshot(ctx context.Context, snap *dataset.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot load: %w", err)
	}
	defer tx.Rollback()

	for _, d := range snap.Donors {
		if _, err := tx.ExecContext(ctx, insertDonor, d.ID, string(d.Type)); err != nil {
			return fmt.Errorf("insert donor %s: %w", d.ID, err)
		}
	}
	for _, a := range snap.Assignments {
		if _, err := tx.ExecContext(ctx, insertAssignment,
			a.ID, a.Name, a.Region, a.DurationMonths, int64(a.Budget), int64(a.Impact)); err != nil {
			return fmt.Errorf("insert assignment %s: %w", a.ID, err)
		}
	}
	for _, dn := range snap.Donations {
		if _, err := tx.ExecContext(ctx, insertDonation,
			dn.ID, dn.AssignmentID, dn.DonorID, int64(dn.Amount)); err != nil {
			return fmt.Errorf("insert donation %s: %w", dn.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot load: %w", err)
	}
	return nil
}
