package jsonstore

import (
	"context"

	"github.com/aitoolhub/aitoolhub/internal/store"
)

// News implements store.NewsStore over news.json. The file holds items in
// serving order: most recently prepended first.
type News struct {
	c *collection[store.NewsItem]
}

func (n *News) Recent(ctx context.Context, limit int) ([]store.NewsItem, error) {
	var out []store.NewsItem
	err := n.c.view(func(items []store.NewsItem) error {
		if len(items) > limit {
			items = items[:limit]
		}
		out = items
		return nil
	})
	return out, err
}

func (n *News) Prepend(ctx context.Context, items []store.NewsItem, max int) error {
	if len(items) == 0 {
		return nil
	}
	return n.c.update(func(existing []store.NewsItem) ([]store.NewsItem, bool, error) {
		next := append(append([]store.NewsItem{}, items...), existing...)
		if len(next) > max {
			next = next[:max]
		}
		return next, true, nil
	})
}
