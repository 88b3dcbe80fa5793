package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/aitoolhub/aitoolhub/internal/metrics"
	"github.com/aitoolhub/aitoolhub/internal/store"
	"go.uber.org/zap"
)

type contextKey string

const identityContextKey contextKey = "identity"

// Identity is the authenticated caller attached to a request context.
type Identity struct {
	ID    string
	Email string
	Role  store.Role
}

// IsAdmin reports whether the identity holds the admin role.
func (i *Identity) IsAdmin() bool {
	return i.Role == store.RoleAdmin
}

// Middleware provides HTTP middleware for bearer-token authentication and
// role-based authorization.
type Middleware struct {
	secret string
	logger *zap.Logger
}

// NewMiddleware creates an auth Middleware verifying tokens against secret.
func NewMiddleware(secret string, logger *zap.Logger) *Middleware {
	return &Middleware{secret: secret, logger: logger}
}

// RequireAuth extracts and validates the Bearer token.
// A missing or malformed Authorization header is 401; a token that fails
// signature or expiry checks is 403. On success the decoded Identity is
// placed on the request context.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			metrics.AuthFailuresTotal.WithLabelValues("missing").Inc()
			writeAuthError(w, http.StatusUnauthorized, "authorization token required", "UNAUTHORIZED")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			metrics.AuthFailuresTotal.WithLabelValues("missing").Inc()
			writeAuthError(w, http.StatusUnauthorized, "authorization token required", "UNAUTHORIZED")
			return
		}

		claims, err := ParseToken(tokenString, m.secret)
		if err != nil {
			metrics.AuthFailuresTotal.WithLabelValues("invalid").Inc()
			m.logger.Debug("rejected bearer token", zap.Error(err))
			writeAuthError(w, http.StatusForbidden, "invalid or expired token", "FORBIDDEN")
			return
		}

		identity := &Identity{ID: claims.UserID, Email: claims.Email, Role: claims.Role}
		ctx := context.WithValue(r.Context(), identityContextKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin enforces the admin role. Must be used after RequireAuth.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := IdentityFromContext(r.Context())
		if identity == nil {
			writeAuthError(w, http.StatusUnauthorized, "authorization token required", "UNAUTHORIZED")
			return
		}
		if !identity.IsAdmin() {
			metrics.AuthFailuresTotal.WithLabelValues("forbidden").Inc()
			writeAuthError(w, http.StatusForbidden, "admin access required", "FORBIDDEN")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// IdentityFromContext retrieves the authenticated identity, or nil.
func IdentityFromContext(ctx context.Context) *Identity {
	identity, _ := ctx.Value(identityContextKey).(*Identity)
	return identity
}

// authError matches the {error, code} body every other endpoint returns.
type authError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeAuthError(w http.ResponseWriter, status int, message, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(authError{Error: message, Code: code})
}
