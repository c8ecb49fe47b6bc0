// Package relation defines the three immutable record types donorlens
// analyzes: donors, assignments, and donations.
//
// This package contains type definitions and parsing only. All other
// internal packages import relation; relation imports nothing internal.
// This keeps it the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - NO float types for stored quantities - money is int64 cents,
//     impact scores are int64 tenths
//   - Rounding happens exactly once, at parse time, half-up
//   - Records are value types and never mutated after load
package relation
