package auth

import (
	"time"

	"github.com/aitoolhub/aitoolhub/internal/store"
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by an access token: the minimal
// identity (id, email, role) the API needs to authorize a request.
type Claims struct {
	UserID string     `json:"id"`
	Email  string     `json:"email"`
	Role   store.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken mints a signed HS256 token for the given user.
func GenerateToken(user *store.User, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates a token string against the shared secret and returns
// its claims. Expired or tampered tokens fail with an error.
func ParseToken(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}
	if !claims.Role.Valid() {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
