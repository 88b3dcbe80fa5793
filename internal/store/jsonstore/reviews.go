package jsonstore

import (
	"context"

	"github.com/aitoolhub/aitoolhub/internal/store"
)

// Reviews implements store.ReviewStore over reviews.json. File order is
// insertion order, which is exactly what ListByTool must return.
type Reviews struct {
	c *collection[store.Review]
}

func (r *Reviews) ListByTool(ctx context.Context, toolID string) ([]store.Review, error) {
	var out []store.Review
	err := r.c.view(func(items []store.Review) error {
		for i := range items {
			if items[i].ToolID == toolID {
				out = append(out, items[i])
			}
		}
		return nil
	})
	return out, err
}

func (r *Reviews) Create(ctx context.Context, review *store.Review) error {
	return r.c.update(func(items []store.Review) ([]store.Review, bool, error) {
		return append(items, *review), true, nil
	})
}
