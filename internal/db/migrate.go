package db

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

//go:embed migrations
var Migrations embed.FS

var gooseDialects = map[string]string{
	"sqlite3":  "sqlite3",
	"mysql":    "mysql",
	"postgres": "postgres",
}

// Migrate brings the catalog schema up to date from the embedded
// migration files. Serve runs it once before accepting requests, so a
// fresh database needs no separate setup step.
func Migrate(conn *sqlx.DB, driver string) error {
	dialect, ok := gooseDialects[driver]
	if !ok {
		return fmt.Errorf("no goose dialect for driver %q", driver)
	}
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	sub, err := fs.Sub(Migrations, "migrations")
	if err != nil {
		return fmt.Errorf("sub migrations fs: %w", err)
	}

	goose.SetBaseFS(sub)
	defer goose.SetBaseFS(nil)
	if err := goose.Up(conn.DB, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}
