// Package sqlstore is the database-backed store implementation. It speaks
// plain SQL through sqlx and works against any driver the db factory can
// open; queries are written with ? placeholders and rebound per driver.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aitoolhub/aitoolhub/internal/store"
	"github.com/jmoiron/sqlx"
)

// New returns SQL-backed stores for every collection. The schema must have
// been migrated before use.
func New(conn *sqlx.DB) store.Stores {
	return store.Stores{
		Tools:   &Tools{db: conn},
		Users:   &Users{db: conn},
		Reviews: &Reviews{db: conn},
		News:    &News{db: conn},
	}
}

// requireExists maps a missing row to ErrNotFound ahead of an UPDATE.
// RowsAffected cannot be used for this on updates: the mysql driver
// reports zero affected rows when an update changes no column values,
// which would turn an idempotent resubmit into a 404.
func requireExists(ctx context.Context, db *sqlx.DB, query, id string) error {
	var one int
	err := db.GetContext(ctx, &one, db.Rebind(query), id)
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}
