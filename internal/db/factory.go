// Package db opens SQL connections and applies the catalog schema for the
// sqlstore backend.
package db

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// sqlDriverNames maps the config driver value to the registered driver.
// "sqlite3" stays the configured name for familiarity, but the CGO-free
// modernc driver registers itself as "sqlite".
var sqlDriverNames = map[string]string{
	"sqlite3":  "sqlite",
	"mysql":    "mysql",
	"postgres": "postgres",
}

// New opens a connection for one of the supported drivers: sqlite3,
// mysql, or postgres.
func New(driver, dsn string) (*sqlx.DB, error) {
	name, ok := sqlDriverNames[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported DB driver %q: must be sqlite3, mysql, or postgres", driver)
	}
	conn, err := sqlx.Open(name, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if driver == "sqlite3" {
		// WAL lets readers proceed while a write is in flight.
		if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
			conn.Close()
			return nil, fmt.Errorf("enable WAL: %w", err)
		}
	}
	return conn, nil
}
