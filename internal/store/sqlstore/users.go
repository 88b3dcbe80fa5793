package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aitoolhub/aitoolhub/internal/store"
	"github.com/jmoiron/sqlx"
)

// Users implements store.UserStore over the users table.
type Users struct {
	db *sqlx.DB
}

func (u *Users) Create(ctx context.Context, user *store.User) error {
	// Application-level duplicate check; the unique index on email is the
	// backstop if two registrations race.
	var n int
	err := u.db.GetContext(ctx, &n,
		u.db.Rebind(`SELECT COUNT(*) FROM users WHERE LOWER(email) = LOWER(?)`),
		user.Email)
	if err != nil {
		return err
	}
	if n > 0 {
		return store.ErrDuplicateEmail
	}

	_, err = u.db.ExecContext(ctx, u.db.Rebind(`
		INSERT INTO users (id, name, email, password_hash, role, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`), user.ID, user.Name, user.Email, user.PasswordHash, string(user.Role), user.CreatedAt)
	return err
}

func (u *Users) GetByEmail(ctx context.Context, email string) (*store.User, error) {
	var user store.User
	err := u.db.GetContext(ctx, &user,
		u.db.Rebind(`SELECT * FROM users WHERE LOWER(email) = LOWER(?)`), email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *Users) GetByID(ctx context.Context, id string) (*store.User, error) {
	var user store.User
	err := u.db.GetContext(ctx, &user,
		u.db.Rebind(`SELECT * FROM users WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *Users) Count(ctx context.Context) (int, error) {
	var n int
	err := u.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM users`)
	return n, err
}

func (u *Users) ListAll(ctx context.Context) ([]store.User, error) {
	var users []store.User
	err := u.db.SelectContext(ctx, &users,
		`SELECT * FROM users ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (u *Users) UpdateRole(ctx context.Context, id string, role store.Role) (*store.User, error) {
	if err := requireExists(ctx, u.db, `SELECT 1 FROM users WHERE id = ?`, id); err != nil {
		return nil, err
	}
	_, err := u.db.ExecContext(ctx,
		u.db.Rebind(`UPDATE users SET role = ? WHERE id = ?`), string(role), id)
	if err != nil {
		return nil, err
	}
	return u.GetByID(ctx, id)
}
