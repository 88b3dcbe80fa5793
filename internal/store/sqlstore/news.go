package sqlstore

import (
	"context"
	"fmt"

	"github.com/aitoolhub/aitoolhub/internal/store"
	"github.com/jmoiron/sqlx"
)

// News implements store.NewsStore over the news table. The position column
// is the storage order: 0 is the most recently prepended item.
type News struct {
	db *sqlx.DB
}

func (n *News) Recent(ctx context.Context, limit int) ([]store.NewsItem, error) {
	var items []store.NewsItem
	err := n.db.SelectContext(ctx, &items, n.db.Rebind(`
		SELECT id, title, content, published_at, link
		FROM news ORDER BY position ASC LIMIT ?
	`), limit)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (n *News) Prepend(ctx context.Context, items []store.NewsItem, max int) error {
	if len(items) == 0 {
		return nil
	}
	tx, err := n.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		tx.Rebind(`UPDATE news SET position = position + ?`), len(items)); err != nil {
		return fmt.Errorf("shift news positions: %w", err)
	}
	for i, item := range items {
		_, err := tx.ExecContext(ctx, tx.Rebind(`
			INSERT INTO news (id, position, title, content, published_at, link)
			VALUES (?, ?, ?, ?, ?, ?)
		`), item.ID, i, item.Title, item.Content, item.Date, item.Link)
		if err != nil {
			return fmt.Errorf("insert news item: %w", err)
		}
	}
	if _, err := tx.ExecContext(ctx,
		tx.Rebind(`DELETE FROM news WHERE position >= ?`), max); err != nil {
		return fmt.Errorf("truncate news: %w", err)
	}

	return tx.Commit()
}
