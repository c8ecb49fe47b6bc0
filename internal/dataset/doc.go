// Package dataset loads and validates the donor/assignment/donation
// snapshot that all reports run against.
//
// Loading happens in three stages:
//  1. CSV decode with per-line diagnostics (csv.go)
//  2. Field-level validation against the embedded CUE schema (cue.go)
//  3. Relational checks in Go: duplicate ids and referential integrity
//     of both donation foreign keys (snapshot.go)
//
// A Snapshot is immutable once built. Data-integrity problems are
// load-time errors; nothing downstream recovers mid-computation.
package dataset
