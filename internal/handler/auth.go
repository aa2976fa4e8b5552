package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/edenspa/eden-spa-api/internal/booking"
	"github.com/edenspa/eden-spa-api/internal/config"
	"github.com/edenspa/eden-spa-api/internal/middleware"
	"github.com/edenspa/eden-spa-api/internal/model"
	"github.com/edenspa/eden-spa-api/internal/repository"
	"github.com/edenspa/eden-spa-api/internal/utils"
)

// AuthHandler bundles dependencies for account and session endpoints.
type AuthHandler struct {
	Cfg      config.Config
	Accounts *repository.AccountRepo
	Sessions *repository.SessionStore
}

func NewAuthHandler(cfg config.Config, a *repository.AccountRepo, s *repository.SessionStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Accounts: a, Sessions: s}
}

// ----- DTOs -----

type registerReq struct {
	Name       string `json:"name"`
	Identifier string `json:"identifier"`
	Secret     string `json:"secret"`
	BirthDay   int    `json:"birth_day"`
	BirthMonth string `json:"birth_month"` // Portuguese month name, e.g. "Março"
	BirthYear  int    `json:"birth_year"`
}

type loginReq struct {
	Identifier string `json:"identifier"`
	Secret     string `json:"secret"`
}

type accountPart struct {
	Name       string `json:"name"`
	Identifier string `json:"identifier"`
	BirthDate  string `json:"birth_date"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

type authResp struct {
	Account accountPart `json:"account"`
	Access  tokenPart   `json:"access"`
}

// Register creates an account. It does not start a session; the client
// logs in afterwards, which is also how the original site behaves.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Identifier = strings.ToLower(strings.TrimSpace(req.Identifier))

	for _, f := range []struct {
		name  string
		empty bool
	}{
		{"name", req.Name == ""},
		{"identifier", req.Identifier == ""},
		{"secret", req.Secret == ""},
		{"birth_day", req.BirthDay == 0},
		{"birth_month", req.BirthMonth == ""},
		{"birth_year", req.BirthYear == 0},
	} {
		if f.empty {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing_field", "field": f.name})
		}
	}
	month, ok := booking.MonthNumber(req.BirthMonth)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid_birth_month"})
	}
	if req.BirthDay < 1 || req.BirthDay > 31 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid_birth_day"})
	}

	acc := model.Account{
		Name:       req.Name,
		Identifier: req.Identifier,
		Secret:     req.Secret,
		BirthDay:   req.BirthDay,
		BirthMonth: month,
		BirthDate:  fmt.Sprintf("%d/%s/%d", req.BirthDay, booking.MonthName(time.Month(month)), req.BirthYear),
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Accounts.Create(ctx, &acc); err != nil {
		if errors.Is(err, repository.ErrIdentifierExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "duplicate_identifier"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create account failed"})
	}

	return c.JSON(http.StatusCreated, accountPart{
		Name: acc.Name, Identifier: acc.Identifier, BirthDate: acc.BirthDate,
	})
}

// Login verifies credentials and starts a session: a signed JWT plus a
// live Redis entry keyed by the token's jti.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Identifier = strings.ToLower(strings.TrimSpace(req.Identifier))
	if req.Identifier == "" || req.Secret == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing_field"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	acc, err := h.Accounts.Authenticate(ctx, req.Identifier, req.Secret)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid_credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	tok, err := utils.NewSessionToken(h.Cfg.JWTSecret, acc.Identifier, h.Cfg.SessionTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	if err := h.Sessions.Create(ctx, tok.JTI, acc.Identifier); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create session failed"})
	}

	return c.JSON(http.StatusOK, authResp{
		Account: accountPart{Name: acc.Name, Identifier: acc.Identifier, BirthDate: acc.BirthDate},
		Access:  tokenPart{Token: tok.Token, Expires: tok.Exp},
	})
}

// Session returns the current account with its greeting, and surfaces the
// one-shot booking-confirmed notice exactly once.
func (h *AuthHandler) Session(c echo.Context) error {
	identifier := middleware.Identifier(c)
	jti := middleware.SessionID(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	acc, err := h.Accounts.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not_authenticated"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	greeting := fmt.Sprintf("Bem-vindo, %s!", acc.Name)
	if acc.Birthday(time.Now()) {
		greeting = fmt.Sprintf("🎉 Feliz Aniversário, %s! 🎉", acc.Name)
	}

	confirmed, err := h.Sessions.ConsumeBookingFlag(ctx, jti)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "session read failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"account":           accountPart{Name: acc.Name, Identifier: acc.Identifier, BirthDate: acc.BirthDate},
		"greeting":          greeting,
		"booking_confirmed": confirmed,
	})
}

// Logout ends the session. The Redis delete also drops every key scoped
// to the session (draft, cart, prompt, order), so the next login starts
// clean.
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Sessions.Delete(ctx, middleware.SessionID(c)); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
