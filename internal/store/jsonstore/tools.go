package jsonstore

import (
	"context"

	"github.com/aitoolhub/aitoolhub/internal/store"
)

// Tools implements store.ToolStore over tools.json.
type Tools struct {
	c *collection[store.Tool]
}

func (t *Tools) ListAll(ctx context.Context) ([]store.Tool, error) {
	var out []store.Tool
	err := t.c.view(func(items []store.Tool) error {
		out = items
		return nil
	})
	return out, err
}

func (t *Tools) GetByID(ctx context.Context, id string) (*store.Tool, error) {
	var out *store.Tool
	err := t.c.view(func(items []store.Tool) error {
		for i := range items {
			if items[i].ID == id {
				tool := items[i]
				out = &tool
				return nil
			}
		}
		return store.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (t *Tools) Create(ctx context.Context, tool *store.Tool) error {
	return t.c.update(func(items []store.Tool) ([]store.Tool, bool, error) {
		return append(items, *tool), true, nil
	})
}

func (t *Tools) Update(ctx context.Context, tool *store.Tool) error {
	return t.c.update(func(items []store.Tool) ([]store.Tool, bool, error) {
		for i := range items {
			if items[i].ID == tool.ID {
				items[i] = *tool
				return items, true, nil
			}
		}
		return nil, false, store.ErrNotFound
	})
}

func (t *Tools) Delete(ctx context.Context, id string) error {
	return t.c.update(func(items []store.Tool) ([]store.Tool, bool, error) {
		for i := range items {
			if items[i].ID == id {
				return append(items[:i], items[i+1:]...), true, nil
			}
		}
		return nil, false, store.ErrNotFound
	})
}

func (t *Tools) SetAggregate(ctx context.Context, id string, rating float64, count int) error {
	return t.c.update(func(items []store.Tool) ([]store.Tool, bool, error) {
		for i := range items {
			if items[i].ID == id {
				items[i].Rating = rating
				items[i].ReviewCount = count
				return items, true, nil
			}
		}
		return nil, false, store.ErrNotFound
	})
}
