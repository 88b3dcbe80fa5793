package jsonstore

import (
	"context"
	"strings"

	"github.com/aitoolhub/aitoolhub/internal/store"
)

// Users implements store.UserStore over users.json.
type Users struct {
	c *collection[store.User]
}

func (u *Users) Create(ctx context.Context, user *store.User) error {
	return u.c.update(func(items []store.User) ([]store.User, bool, error) {
		for i := range items {
			if strings.EqualFold(items[i].Email, user.Email) {
				return nil, false, store.ErrDuplicateEmail
			}
		}
		return append(items, *user), true, nil
	})
}

func (u *Users) GetByEmail(ctx context.Context, email string) (*store.User, error) {
	var out *store.User
	err := u.c.view(func(items []store.User) error {
		for i := range items {
			if strings.EqualFold(items[i].Email, email) {
				user := items[i]
				out = &user
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

func (u *Users) GetByID(ctx context.Context, id string) (*store.User, error) {
	var out *store.User
	err := u.c.view(func(items []store.User) error {
		for i := range items {
			if items[i].ID == id {
				user := items[i]
				out = &user
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

func (u *Users) Count(ctx context.Context) (int, error) {
	var n int
	err := u.c.view(func(items []store.User) error {
		n = len(items)
		return nil
	})
	return n, err
}

func (u *Users) ListAll(ctx context.Context) ([]store.User, error) {
	var out []store.User
	err := u.c.view(func(items []store.User) error {
		out = items
		return nil
	})
	return out, err
}

func (u *Users) UpdateRole(ctx context.Context, id string, role store.Role) (*store.User, error) {
	var out *store.User
	err := u.c.update(func(items []store.User) ([]store.User, bool, error) {
		for i := range items {
			if items[i].ID == id {
				items[i].Role = role
				user := items[i]
				out = &user
				return items, true, nil
			}
		}
		return nil, false, store.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
