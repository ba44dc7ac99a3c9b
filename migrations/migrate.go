// Package migrations embeds the schema migration files and applies them
// with goose. Each dialect keeps its own migration directory because the
// DDL differs (SERIAL vs AUTOINCREMENT primary keys).
package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations for the given dialect.
// The dialect string follows the driver name ("pgx" or "sqlite3"), which
// goose accepts directly.
func Migrate(db *sql.DB, dialect string) error {
	dir, err := migrationsDir(dialect)
	if err != nil {
		return err
	}

	sub, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return fmt.Errorf("error accessing embedded migrations: %w", err)
	}

	goose.SetBaseFS(sub)
	defer goose.SetBaseFS(nil)

	if err = goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("error setting goose dialect: %w", err)
	}

	if err = goose.Up(db, "."); err != nil {
		return fmt.Errorf("error applying migrations: %w", err)
	}

	return nil
}

func migrationsDir(dialect string) (string, error) {
	switch dialect {
	case "pgx":
		return "postgres", nil
	case "sqlite3":
		return "sqlite", nil
	default:
		return "", fmt.Errorf("unsupported migration dialect %q", dialect)
	}
}
