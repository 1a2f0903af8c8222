// Package sqlite provides a SQLite-based implementation of the storage ports.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. Both collections live in one database:
//
//   - UserStore: users table
//   - ServiceStore: services table
//
// Saves rewrite a whole table inside a transaction, so a failed save leaves
// the previous contents in place.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Data Location
//
// The database is stored at <data dir>/servico.db.
package sqlite
