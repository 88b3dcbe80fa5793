package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when registering an email that is
	// already taken.
	ErrDuplicateEmail = errors.New("email is already registered")
)

// ToolStore exposes all tool data operations. Handlers never touch the
// backing files or database directly; all access goes through these
// interfaces so the JSON-file and SQL backends are interchangeable.
type ToolStore interface {
	ListAll(ctx context.Context) ([]Tool, error)
	GetByID(ctx context.Context, id string) (*Tool, error)
	Create(ctx context.Context, tool *Tool) error
	// Update replaces the stored record with the given one.
	// Returns ErrNotFound if no tool with tool.ID exists.
	Update(ctx context.Context, tool *Tool) error
	Delete(ctx context.Context, id string) error
	// SetAggregate writes the derived rating and review count onto a tool.
	// Returns ErrNotFound if the tool does not exist.
	SetAggregate(ctx context.Context, id string, rating float64, count int) error
}

// UserStore exposes user account operations.
type UserStore interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Count(ctx context.Context) (int, error)
	ListAll(ctx context.Context) ([]User, error)
	UpdateRole(ctx context.Context, id string, role Role) (*User, error)
}

// ReviewStore exposes review operations. ListByTool returns reviews in
// insertion order; no sort is applied on top of storage order.
type ReviewStore interface {
	ListByTool(ctx context.Context, toolID string) ([]Review, error)
	Create(ctx context.Context, review *Review) error
}

// NewsStore exposes news feed operations. The stored list is ordered most
// recently prepended first.
type NewsStore interface {
	// Recent returns at most n items from the front of the list.
	Recent(ctx context.Context, n int) ([]NewsItem, error)
	// Prepend pushes items onto the front of the list and truncates the
	// stored list to at most max entries.
	Prepend(ctx context.Context, items []NewsItem, max int) error
}

// Stores bundles one backend's implementation of every collection.
type Stores struct {
	Tools   ToolStore
	Users   UserStore
	Reviews ReviewStore
	News    NewsStore
}
