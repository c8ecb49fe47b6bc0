package pgsource

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/roach88/donorlens/internal/dataset"
	"github.com/roach88/donorlens/internal/relation"
)

// Config holds the connection settings for a Postgres-backed snapshot.
type Config struct {
	// DSN is a pgx connection string or URL.
	DSN string
}

// Source reads the three relations from Postgres.
type Source struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

// New connects to Postgres and verifies the connection.
func New(ctx context.Context, cfg Config, log zerolog.Logger) (*Source, error) {
	pool, err := pgxpool.New(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Source{pool: pool, log: log}, nil
}

// Close releases the connection pool.
func (s *Source) Close() {
	s.pool.Close()
}

// Snapshot fetches all three relations and funnels them through the same
// validation as file-based loads.
func (s *Source) Snapshot(ctx context.Context) (*dataset.Snapshot, error) {
	donors, err := s.donors(ctx)
	if err != nil {
		return nil, err
	}
	assignments, err := s.assignments(ctx)
	if err != nil {
		return nil, err
	}
	donations, err := s.donations(ctx)
	if err != nil {
		return nil, err
	}

	snap, err := dataset.New(donors, assignments, donations)
	if err != nil {
		return nil, err
	}

	s.log.Debug().
		Int("donors", len(donors)).
		Int("assignments", len(assignments)).
		Int("donations", len(donations)).
		Msg("snapshot fetched from postgres")
	return snap, nil
}

func (s *Source) donors(ctx context.Context) ([]relation.Donor, error) {
	sqlStr, args, err := donorsQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("build donors query: %w", err)
	}
	rows, err := s.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("query donors: %w", err)
	}
	defer rows.Close()

	var donors []relation.Donor
	for rows.Next() {
		var id, donorType string
		if err := rows.Scan(&id, &donorType); err != nil {
			return nil, fmt.Errorf("scan donor: %w", err)
		}
		donors = append(donors, relation.Donor{ID: id, Type: relation.DonorType(donorType)})
	}
	return donors, rows.Err()
}

func (s *Source) assignments(ctx context.Context) ([]relation.Assignment, error) {
	sqlStr, args, err := assignmentsQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("build assignments query: %w", err)
	}
	rows, err := s.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []relation.Assignment
	for rows.Next() {
		var (
			a                    relation.Assignment
			budgetCents, impactT int64
		)
		if err := rows.Scan(&a.ID, &a.Name, &a.Region, &a.DurationMonths, &budgetCents, &impactT); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		a.Budget = relation.Money(budgetCents)
		a.Impact = relation.Impact(impactT)
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (s *Source) donations(ctx context.Context) ([]relation.Donation, error) {
	sqlStr, args, err := donationsQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("build donations query: %w", err)
	}
	rows, err := s.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("query donations: %w", err)
	}
	defer rows.Close()

	var donations []relation.Donation
	for rows.Next() {
		var (
			d           relation.Donation
			amountCents int64
		)
		if err := rows.Scan(&d.ID, &d.AssignmentID, &d.DonorID, &amountCents); err != nil {
			return nil, fmt.Errorf("scan donation: %w", err)
		}
		d.Amount = relation.Money(amountCents)
		donations = append(donations, d)
	}
	return donations, rows.Err()
}
