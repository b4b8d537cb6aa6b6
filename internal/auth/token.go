package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Ijadele/task-management/internal/constants"
	apperrors "github.com/Ijadele/task-management/internal/errors"
)

type Config struct {
	Secret []byte
	TTL    time.Duration
}

// DefaultConfig returns a config with the 1-day session lifetime. The secret
// must still come from the environment.
func DefaultConfig(secret string) Config {
	return Config{
		Secret: []byte(secret),
		TTL:    24 * time.Hour,
	}
}

// Identity is the verified caller. Handlers and services trust it
// unconditionally once the token checks out.
type Identity struct {
	ID   string
	Role constants.Role
}

type Claims struct {
	Role constants.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies the signed session tokens.
type TokenManager struct {
	config Config
}

func NewTokenManager(config Config) *TokenManager {
	return &TokenManager{config: config}
}

// Issue signs a session token for the user. The token ID (jti) is what the
// logout denylist revokes.
func (m *TokenManager) Issue(userID string, role constants.Role) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.config.TTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.config.Secret)
}

// Verify parses and validates a token string, returning the caller identity
// and the claims. Any parse, signature, or expiry failure maps to the
// authentication error.
func (m *TokenManager) Verify(tokenString string) (Identity, *Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return m.config.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return Identity{}, nil, apperrors.ErrInvalidToken
	}

	return Identity{ID: claims.Subject, Role: claims.Role}, claims, nil
}
