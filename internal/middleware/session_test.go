package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invoke(t *testing.T, mw echo.MiddlewareFunc, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/session", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	require.NoError(t, mw(next)(e.NewContext(req, rec)))
	return rec
}

func TestSessionAuthRejectsMissingHeader(t *testing.T) {
	mw := SessionAuth("s3cret", nil)

	rec := invoke(t, mw, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_authenticated")
}

func TestSessionAuthRejectsNonBearer(t *testing.T) {
	mw := SessionAuth("s3cret", nil)

	rec := invoke(t, mw, "Basic abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionAuthRejectsMalformedToken(t *testing.T) {
	mw := SessionAuth("s3cret", nil)

	rec := invoke(t, mw, "Bearer not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_authenticated")
}

func TestIdentityHelpersDefaultToGuest(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Equal(t, "guest", Identifier(c))
	assert.Equal(t, "guest", SessionID(c))

	c.Set("identifier", "ana@edenspa.com")
	c.Set("session_id", "jti-1")
	assert.Equal(t, "ana@edenspa.com", Identifier(c))
	assert.Equal(t, "jti-1", SessionID(c))
}
