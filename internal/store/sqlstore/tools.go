package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aitoolhub/aitoolhub/internal/store"
	"github.com/jmoiron/sqlx"
)

// Tools implements store.ToolStore over the tools table.
type Tools struct {
	db *sqlx.DB
}

func (t *Tools) ListAll(ctx context.Context) ([]store.Tool, error) {
	var tools []store.Tool
	err := t.db.SelectContext(ctx, &tools,
		`SELECT * FROM tools ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	return tools, nil
}

func (t *Tools) GetByID(ctx context.Context, id string) (*store.Tool, error) {
	var tool store.Tool
	err := t.db.GetContext(ctx, &tool,
		t.db.Rebind(`SELECT * FROM tools WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tool, nil
}

func (t *Tools) Create(ctx context.Context, tool *store.Tool) error {
	_, err := t.db.ExecContext(ctx, t.db.Rebind(`
		INSERT INTO tools (id, name, category, description, price, website, features, rating, review_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`), tool.ID, tool.Name, string(tool.Category), tool.Description, tool.Price,
		tool.Website, tool.Features, tool.Rating, tool.ReviewCount, tool.CreatedAt)
	return err
}

func (t *Tools) Update(ctx context.Context, tool *store.Tool) error {
	if err := requireExists(ctx, t.db, `SELECT 1 FROM tools WHERE id = ?`, tool.ID); err != nil {
		return err
	}
	_, err := t.db.ExecContext(ctx, t.db.Rebind(`
		UPDATE tools
		SET name = ?, category = ?, description = ?, price = ?, website = ?, features = ?
		WHERE id = ?
	`), tool.Name, string(tool.Category), tool.Description, tool.Price,
		tool.Website, tool.Features, tool.ID)
	return err
}

func (t *Tools) Delete(ctx context.Context, id string) error {
	res, err := t.db.ExecContext(ctx,
		t.db.Rebind(`DELETE FROM tools WHERE id = ?`), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (t *Tools) SetAggregate(ctx context.Context, id string, rating float64, count int) error {
	if err := requireExists(ctx, t.db, `SELECT 1 FROM tools WHERE id = ?`, id); err != nil {
		return err
	}
	_, err := t.db.ExecContext(ctx,
		t.db.Rebind(`UPDATE tools SET rating = ?, review_count = ? WHERE id = ?`),
		rating, count, id)
	return err
}

// requireRow maps a zero-row DELETE to ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
