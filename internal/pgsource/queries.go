package pgsource

import (
	sq "github.com/Masterminds/squirrel"
)

// psql builds Postgres-flavored SQL with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Every select carries ORDER BY id so a snapshot loads in a stable order
// regardless of physical row layout.

func donorsQuery() sq.SelectBuilder {
	return psql.
		Select("id", "donor_type").
		From("donors").
		OrderBy("id ASC")
}

func assignmentsQuery() sq.SelectBuilder {
	return psql.
		Select("id", "name", "region", "duration_months", "budget_cents", "impact_tenths").
		From("assignments").
		OrderBy("id ASC")
}

func donationsQuery() sq.SelectBuilder {
	return psql.
		Select("id", "assignment_id", "donor_id", "amount_cents").
		From("donations").
		OrderBy("id ASC")
}
