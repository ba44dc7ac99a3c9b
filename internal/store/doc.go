// Package store implements the persistence layer: database connections for
// PostgreSQL and SQLite behind a shared [DB] wrapper, schema migrations, and
// the users repository.
package store
