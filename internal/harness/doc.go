// Package harness runs conformance scenarios over the two report
// formulations.
//
// A scenario is a YAML file naming a CSV dataset directory plus the
// expected rows of both reports. Run evaluates the in-memory formulation
// (internal/report) and the SQL formulation (internal/reportsql) against
// the same snapshot and fails if they disagree on any row - the two are
// alternate evaluation strategies and must be indistinguishable from the
// outside.
//
// Rendered result tables are additionally compared against golden files
// in testdata/golden, which serve as the source of truth for the
// published report layout.
package harness
