package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aitoolhub/aitoolhub/internal/store"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// adminHandler provides admin-only user management.
type adminHandler struct {
	users  store.UserStore
	logger *zap.Logger
}

// ListUsers returns every registered account.
// GET /api/admin/users
//
// @Summary      List all users (admin)
// @Tags         Admin
// @Produce      json
// @Success      200  {array}   UserResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /admin/users [get]
func (h *adminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListAll(r.Context())
	if err != nil {
		h.logger.Error("list users", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "server error", "INTERNAL_ERROR")
		return
	}
	resp := make([]UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, toUserResponse(&users[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// UpdateRole promotes or demotes an account.
// PUT /api/admin/users/{id}/role
//
// @Summary      Change a user's role (admin)
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User id"
// @Param        body  body      UpdateRoleRequest  true  "New role"
// @Success      200   {object}  UserResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /admin/users/{id}/role [put]
func (h *adminHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	var req UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	role := store.Role(req.Role)
	if !role.Valid() {
		writeError(w, http.StatusBadRequest, "role must be admin or user", "INVALID_ROLE")
		return
	}

	user, err := h.users.UpdateRole(r.Context(), chi.URLParam(r, "id"), role)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user not found", "NOT_FOUND")
			return
		}
		h.logger.Error("update role", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "server error", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}
