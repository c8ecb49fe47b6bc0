// Package store is the SQLite backend for the SQL formulation of the
// reports. It exists purely as a query engine: a snapshot is loaded once
// into an in-memory database and never written again.
//
// Nothing here persists anything. Opening a file-backed database is
// supported for debugging a snapshot with the sqlite3 shell, but the
// normal path is OpenMemory.
package store
