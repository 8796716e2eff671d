package middleware

import (
	"github.com/labstack/echo/v4"

	"taskvault.com/taskvault/internal/constants"
	apperrors "taskvault.com/taskvault/internal/errors"
)

// Allowed reports whether the identity's role is one of the given roles.
func Allowed(identity Identity, roles []constants.Role) bool {
	for _, role := range roles {
		if identity.Role == role {
			return true
		}
	}
	return false
}

// Authorize halts the request unless an authenticated identity with a
// permitted role is present.
func Authorize(roles ...constants.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c)
			if !ok || !Allowed(identity, roles) {
				return apperrors.ErrAccessDenied
			}
			return next(c)
		}
	}
}
