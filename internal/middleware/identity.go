package middleware

// identity.go defines helper functions shared across middleware files and
// handlers. They read the values SessionAuth injected into the Echo
// context; on public routes both return "guest".

import "github.com/labstack/echo/v4"

// Identifier extracts the authenticated account identifier from context.
func Identifier(c echo.Context) string {
	if v, ok := c.Get("identifier").(string); ok && v != "" {
		return v
	}
	return "guest"
}

// SessionID extracts the session id (jti) from context.
func SessionID(c echo.Context) string {
	if v, ok := c.Get("session_id").(string); ok && v != "" {
		return v
	}
	return "guest"
}
