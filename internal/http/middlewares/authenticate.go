package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"taskvault.com/taskvault/internal/auth"
	"taskvault.com/taskvault/internal/constants"
	apperrors "taskvault.com/taskvault/internal/errors"
)

const identityKey = "identity"

// Identity is the decoded token payload attached to the request context.
type Identity struct {
	UserID string
	Role   constants.Role
}

// Authenticate requires a valid Bearer token and attaches the decoded
// identity to the context. Verification failure is terminal for the request.
func Authenticate(tokens *auth.TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return apperrors.ErrNoToken
			}

			token := strings.TrimPrefix(header, "Bearer ")
			if token == header || token == "" {
				return apperrors.ErrMalformedToken
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				return apperrors.ErrInvalidToken
			}

			c.Set(identityKey, Identity{
				UserID: claims.UserID,
				Role:   claims.Role,
			})
			return next(c)
		}
	}
}

func IdentityFrom(c echo.Context) (Identity, bool) {
	identity, ok := c.Get(identityKey).(Identity)
	return identity, ok
}
