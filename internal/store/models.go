package store

import "time"

// Role is the closed set of account roles. It is decided once at the auth
// boundary and carried as a typed value through the rest of the system.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Category classifies a tool. The public site renders one tab per category.
type Category string

const (
	CategoryText         Category = "text"
	CategoryImage        Category = "image"
	CategoryVideo        Category = "video"
	CategoryAudio        Category = "audio"
	CategoryCode         Category = "code"
	CategoryProductivity Category = "productivity"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryText, CategoryImage, CategoryVideo, CategoryAudio, CategoryCode, CategoryProductivity:
		return true
	}
	return false
}

// Tool is a cataloged AI product. Rating and ReviewCount are derived from
// the review collection and must never be taken from client input.
type Tool struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Category    Category  `json:"category" db:"category"`
	Description string    `json:"description" db:"description"`
	Price       *string   `json:"price" db:"price"` // nil means free
	Website     string    `json:"website,omitempty" db:"website"`
	Features    string    `json:"features" db:"features"` // comma-delimited
	Rating      float64   `json:"rating" db:"rating"`
	ReviewCount int       `json:"reviewCount" db:"review_count"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// User is a registered account. PasswordHash is persisted by the store
// backends but is never serialized into an API response; handlers map users
// to a response type that omits it.
type User struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"password" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Review is a rating+text submission against one tool. UserName is a
// snapshot of the author's display name at submission time.
type Review struct {
	ID        string    `json:"id" db:"id"`
	ToolID    string    `json:"toolId" db:"tool_id"`
	UserID    string    `json:"userId" db:"user_id"`
	UserName  string    `json:"userName" db:"user_name"`
	Rating    int       `json:"rating" db:"rating"`
	Text      string    `json:"text" db:"body"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// NewsItem is one entry of the news feed, most recent first.
type NewsItem struct {
	ID      string    `json:"id" db:"id"`
	Title   string    `json:"title" db:"title"`
	Content string    `json:"content" db:"content"`
	Date    time.Time `json:"date" db:"published_at"`
	Link    string    `json:"link,omitempty" db:"link"`
}
