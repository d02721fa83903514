package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/project/incident-report/internal/api/metrics"
	"github.com/project/incident-report/internal/core/domain"
	"github.com/project/incident-report/internal/core/ports"
)

const identityKey = "identity"

// Identity returns the authenticated identity attached to the request, if any.
func Identity(c echo.Context) (domain.Identity, bool) {
	id, ok := c.Get(identityKey).(domain.Identity)
	return id, ok
}

// Auth resolves the caller's identity from a bearer token. It never rejects a
// request: a missing header, malformed or expired token, or unknown subject
// all leave the request anonymous, and rejection is the role check's job.
// An identity already attached to the request is not overwritten.
func Auth(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}
			token := parts[1]

			subject, err := tokens.Subject(token)
			if err != nil {
				metrics.AuthResolutionsTotal.WithLabelValues("anonymous").Inc()
				return next(c)
			}

			if _, attached := Identity(c); attached {
				return next(c)
			}

			user, err := users.FindByUsername(c.Request().Context(), subject)
			if err != nil || !tokens.Validate(token) {
				metrics.AuthResolutionsTotal.WithLabelValues("anonymous").Inc()
				return next(c)
			}

			c.Set(identityKey, domain.Identity{
				Username:   user.Username,
				Capability: domain.Capability(user.Role),
			})
			metrics.AuthResolutionsTotal.WithLabelValues("authenticated").Inc()

			return next(c)
		}
	}
}
