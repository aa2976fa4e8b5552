package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, h echo.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func TestRegisterMissingFields(t *testing.T) {
	h := &AuthHandler{}

	cases := []struct {
		body  string
		field string
	}{
		{`{}`, "name"},
		{`{"name":"Ana"}`, "identifier"},
		{`{"name":"Ana","identifier":"ana@edenspa.com"}`, "secret"},
		{`{"name":"Ana","identifier":"ana@edenspa.com","secret":"x"}`, "birth_day"},
		{`{"name":"Ana","identifier":"ana@edenspa.com","secret":"x","birth_day":14}`, "birth_month"},
		{`{"name":"Ana","identifier":"ana@edenspa.com","secret":"x","birth_day":14,"birth_month":"Março"}`, "birth_year"},
	}
	for _, tc := range cases {
		rec := postJSON(t, h.Register, "/v1/auth/register", tc.body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "missing_field")
		assert.Contains(t, rec.Body.String(), tc.field)
	}
}

func TestRegisterRejectsUnknownBirthMonth(t *testing.T) {
	h := &AuthHandler{}
	body := `{"name":"Ana","identifier":"ana@edenspa.com","secret":"x","birth_day":14,"birth_month":"March","birth_year":1990}`

	rec := postJSON(t, h.Register, "/v1/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_birth_month")
}

func TestRegisterRejectsOutOfRangeBirthDay(t *testing.T) {
	h := &AuthHandler{}
	body := `{"name":"Ana","identifier":"ana@edenspa.com","secret":"x","birth_day":32,"birth_month":"Março","birth_year":1990}`

	rec := postJSON(t, h.Register, "/v1/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_birth_day")
}

func TestLoginMissingCredentials(t *testing.T) {
	h := &AuthHandler{}

	for _, body := range []string{`{}`, `{"identifier":"ana@edenspa.com"}`, `{"secret":"x"}`} {
		rec := postJSON(t, h.Login, "/v1/auth/login", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "missing_field")
	}
}
