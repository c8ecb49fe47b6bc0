// Package pgsource fetches a snapshot from Postgres tables instead of
// CSV files. It is strictly a read-only input adapter: rows flow through
// the same dataset validation as file-based loads, and no write is ever
// issued.
package pgsource
