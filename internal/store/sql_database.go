package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/ymatsuda/go-api-sample/internal/logger"
	"github.com/ymatsuda/go-api-sample/migrations"
)

// Supported database dialects. The dialect string doubles as the goose
// dialect name when running migrations.
const (
	dialectPostgres = "pgx"
	dialectSQLite   = "sqlite3"
)

// DB wraps a live sql.DB connection with the dialect it speaks and a
// squirrel statement builder configured with the matching placeholder
// format ($N for Postgres, ? for SQLite).
type DB struct {
	*sql.DB

	dialect string
	sb      sq.StatementBuilderType
	logger  *logger.Logger
}

// Migrate applies all embedded schema migrations for the connection's
// dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

func placeholderFor(dialect string) sq.PlaceholderFormat {
	if dialect == dialectPostgres {
		return sq.Dollar
	}
	return sq.Question
}
