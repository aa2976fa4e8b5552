// Package middleware contains reusable HTTP middleware functions.
package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/edenspa/eden-spa-api/internal/repository"
	"github.com/edenspa/eden-spa-api/internal/utils"
)

// SessionAuth returns an Echo middleware that validates a Bearer session
// token and checks that its session is still alive in Redis. A JWT alone
// is not enough: logout deletes the session key, and an expired TTL has
// the same effect, so the Redis check is what gives tokens their
// revocable, tab-lifetime semantics.
//
// On success the account identifier and session id are injected into the
// request context for handlers via c.Get("identifier") and
// c.Get("session_id").
func SessionAuth(secret string, sessions *repository.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not_authenticated"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			jti, identifier, err := utils.ParseSessionToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not_authenticated"})
			}

			// The sub claim must still match what the session key holds.
			// A mismatch means the jti was reused for another account.
			stored, err := sessions.Get(c.Request().Context(), jti)
			if err != nil || stored != identifier {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not_authenticated"})
			}

			c.Set("identifier", identifier)
			c.Set("session_id", jti)
			return next(c)
		}
	}
}
