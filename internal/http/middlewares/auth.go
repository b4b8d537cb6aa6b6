package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Ijadele/task-management/internal/auth"
	apperrors "github.com/Ijadele/task-management/internal/errors"
)

const (
	// IdentityKey is where the verified caller lands in the echo context.
	IdentityKey = "identity"
	// ClaimsKey holds the full token claims, needed by logout to revoke.
	ClaimsKey = "claims"
	// TokenCookie is the session cookie name.
	TokenCookie = "token"
)

// Authenticate verifies the bearer token (Authorization header or session
// cookie), rejects revoked sessions, and stores the caller identity in the
// request context.
func Authenticate(tokens *auth.TokenManager, denylist auth.Denylist) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString := extractToken(c)
			if tokenString == "" {
				return apperrors.ErrMissingToken
			}

			identity, claims, err := tokens.Verify(tokenString)
			if err != nil {
				return err
			}

			revoked, err := denylist.IsRevoked(c.Request().Context(), claims.ID)
			if err != nil {
				return err
			}
			if revoked {
				return apperrors.ErrInvalidToken
			}

			c.Set(IdentityKey, identity)
			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}

func extractToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
		return ""
	}

	cookie, err := c.Cookie(TokenCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// Identity returns the verified caller stored by Authenticate.
func Identity(c echo.Context) auth.Identity {
	identity, _ := c.Get(IdentityKey).(auth.Identity)
	return identity
}

// Claims returns the token claims stored by Authenticate.
func Claims(c echo.Context) *auth.Claims {
	claims, _ := c.Get(ClaimsKey).(*auth.Claims)
	return claims
}
