package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/studyhub-id/studyhub/internal/logger"
	"github.com/studyhub-id/studyhub/migrations"
)

// DB wraps the raw connection with the SQL dialect chosen at startup.
// The statement builder carries the placeholder format ($1 for PostgreSQL,
// ? for SQLite) so repositories stay dialect-agnostic.
type DB struct {
	*sql.DB
	builder sq.StatementBuilderType
	dialect string
	logger  *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
