// Package reportsql is the SQL formulation of the two reports, executed
// against a snapshot loaded into SQLite (internal/store).
//
// Every query carries a complete ORDER BY with COLLATE BINARY text
// tie-breakers. The in-memory formulation (internal/report) sorts by the
// same keys in the same byte order, which is what makes the two
// formulations comparable row-for-row.
package reportsql
