package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/aitoolhub/aitoolhub/internal/metrics"
	"github.com/aitoolhub/aitoolhub/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handlers serves the register and login endpoints.
type Handlers struct {
	users      store.UserStore
	secret     string
	tokenTTL   time.Duration
	adminEmail string
	logger     *zap.Logger
}

// NewHandlers creates the auth handlers. adminEmail, when non-empty,
// promotes a registrant with that email to admin regardless of order.
func NewHandlers(users store.UserStore, secret string, tokenTTL time.Duration, adminEmail string, logger *zap.Logger) *Handlers {
	return &Handlers{
		users:      users,
		secret:     secret,
		tokenTTL:   tokenTTL,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userPayload is the public view of a user returned from auth endpoints.
// It never includes the password hash.
type userPayload struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Role  store.Role `json:"role"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  userPayload `json:"user"`
}

// Register creates a new account and returns a token for it.
// The first registrant becomes the admin; everyone after is a regular user.
// POST /api/register
//
// @Summary      Register an account
// @Description  Creates a user account. The first account ever created gets the admin role.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account to create"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Router       /register [post]
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeAuthError(w, http.StatusBadRequest, "name, email and password are required", "BAD_REQUEST")
		return
	}

	count, err := h.users.Count(r.Context())
	if err != nil {
		h.logger.Error("count users", zap.Error(err))
		writeAuthError(w, http.StatusInternalServerError, "server error", "INTERNAL_ERROR")
		return
	}
	role := store.RoleUser
	if count == 0 || (h.adminEmail != "" && strings.EqualFold(req.Email, h.adminEmail)) {
		role = store.RoleAdmin
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		h.logger.Error("hash password", zap.Error(err))
		writeAuthError(w, http.StatusInternalServerError, "server error", "INTERNAL_ERROR")
		return
	}

	user := &store.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	if err := h.users.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			writeAuthError(w, http.StatusBadRequest, "user already exists", "USER_EXISTS")
			return
		}
		h.logger.Error("create user", zap.Error(err))
		writeAuthError(w, http.StatusInternalServerError, "server error", "INTERNAL_ERROR")
		return
	}

	metrics.RegistrationsTotal.Inc()
	h.issueToken(w, user)
}

// Login verifies credentials and returns a fresh token.
// POST /api/login
//
// @Summary      Log in
// @Description  Verifies email and password and returns a bearer token valid for 24 hours.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Router       /login [post]
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	user, err := h.users.GetByEmail(r.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			writeAuthError(w, http.StatusBadRequest, "invalid credentials", "INVALID_CREDENTIALS")
			return
		}
		h.logger.Error("load user", zap.Error(err))
		writeAuthError(w, http.StatusInternalServerError, "server error", "INTERNAL_ERROR")
		return
	}
	if !CheckPassword(user.PasswordHash, req.Password) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		writeAuthError(w, http.StatusBadRequest, "invalid credentials", "INVALID_CREDENTIALS")
		return
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.issueToken(w, user)
}

func (h *Handlers) issueToken(w http.ResponseWriter, user *store.User) {
	token, err := GenerateToken(user, h.secret, h.tokenTTL)
	if err != nil {
		h.logger.Error("sign token", zap.Error(err))
		writeAuthError(w, http.StatusInternalServerError, "server error", "INTERNAL_ERROR")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(authResponse{
		Token: token,
		User: userPayload{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	})
}
