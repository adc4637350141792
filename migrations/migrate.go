// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 StudyHub Authors

// Package migrations embeds the SQL schema migrations and applies them with
// goose. The SQL is kept portable between PostgreSQL and SQLite: list-valued
// note fields are stored as JSON-encoded TEXT rather than native arrays.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Migrate brings the schema of db up to the latest embedded migration.
// dialect is the goose dialect name matching the driver the connection was
// opened with ("pgx" or "sqlite3").
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect %q for db: %w", dialect, err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
