package sqlstore

import (
	"context"

	"github.com/aitoolhub/aitoolhub/internal/store"
	"github.com/jmoiron/sqlx"
)

// Reviews implements store.ReviewStore over the reviews table. Insertion
// order is reconstructed from created_at with id as the tiebreak.
type Reviews struct {
	db *sqlx.DB
}

func (r *Reviews) ListByTool(ctx context.Context, toolID string) ([]store.Review, error) {
	var reviews []store.Review
	err := r.db.SelectContext(ctx, &reviews, r.db.Rebind(`
		SELECT * FROM reviews WHERE tool_id = ? ORDER BY created_at ASC, id ASC
	`), toolID)
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *Reviews) Create(ctx context.Context, review *store.Review) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(`
		INSERT INTO reviews (id, tool_id, user_id, user_name, rating, body, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`), review.ID, review.ToolID, review.UserID, review.UserName,
		review.Rating, review.Text, review.CreatedAt)
	return err
}
