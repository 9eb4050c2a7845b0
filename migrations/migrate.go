// Package migrations holds the embedded goose migrations for both bitrogue
// services. SQLite and PostgreSQL need different DDL for identity columns,
// so each service carries one migration directory per dialect and the driver
// name picks both the directory and the goose dialect.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed server_sqlite/*.sql server_postgres/*.sql codex_sqlite/*.sql codex_postgres/*.sql
var embedMigrations embed.FS

// MigrateServer applies the score-server schema (users, scores, pickup_logs).
func MigrateServer(db *sql.DB, driver string) error {
	return migrate(db, driver, "server")
}

// MigrateCodex applies the codex schema (items).
func MigrateCodex(db *sql.DB, driver string) error {
	return migrate(db, driver, "codex")
}

func migrate(db *sql.DB, driver, service string) error {
	goose.SetBaseFS(embedMigrations)

	dialect, dir := "sqlite3", service+"_sqlite"
	if driver == "pgx" {
		dialect, dir = "postgres", service+"_postgres"
	}

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
