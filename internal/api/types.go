package api

import (
	"time"

	"github.com/aitoolhub/aitoolhub/internal/store"
)

// CreateToolRequest is the request body for POST /api/tools. Rating and
// review count are derived values and deliberately have no field here.
type CreateToolRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       *string `json:"price"`
	Website     string  `json:"website"`
	Features    string  `json:"features"`
}

// UpdateToolRequest is the request body for PUT /api/tools/{id}. Pointer
// fields distinguish "absent, keep current value" from an explicit value;
// the merge is shallow. Client-supplied rating/reviewCount are ignored.
type UpdateToolRequest struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	Website     *string `json:"website"`
	Features    *string `json:"features"`
}

// SubmitReviewRequest is the request body for POST /api/reviews. Rating is
// a pointer so a missing rating is distinguishable from zero.
type SubmitReviewRequest struct {
	ToolID string `json:"toolId"`
	Rating *int   `json:"rating"`
	Text   string `json:"text"`
}

// UserResponse is the public view of a user; it never carries the
// password hash.
type UserResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      store.Role `json:"role"`
	CreatedAt time.Time  `json:"createdAt"`
}

// UpdateRoleRequest is the request body for PUT /api/admin/users/{id}/role.
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// MessageResponse is a bare confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

func toUserResponse(u *store.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
