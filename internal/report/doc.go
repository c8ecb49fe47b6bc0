// Package report is the in-memory formulation of the two analytical
// reports: donation leaders by donor type, and regional impact leaders.
//
// The same reports exist as SQL in internal/reportsql. The two
// formulations are alternate evaluation strategies and MUST produce
// identical row sequences; the harness asserts this on every scenario.
//
// CRITICAL PATTERNS:
//
// Deterministic ordering:
// Every report output carries a total order. Ties never fall back to map
// or row order - they resolve by assignment id (byte order), then donor
// type. Re-running a report on an unchanged snapshot yields identical
// output.
//
// Inner-join semantics:
// Assignments with zero donations appear in neither report.
package report
