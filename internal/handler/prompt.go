package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/edenspa/eden-spa-api/internal/cart"
	"github.com/edenspa/eden-spa-api/internal/middleware"
	"github.com/edenspa/eden-spa-api/internal/model"
	"github.com/edenspa/eden-spa-api/internal/queue"
	"github.com/edenspa/eden-spa-api/internal/repository"
	queue_publisher "github.com/edenspa/eden-spa-api/internal/service"
)

// PromptHandler serves the pending prompt and resolves it. Accepting a
// confirm prompt executes its bound action server-side, so the decision
// travels as a plain request/response instead of a stored callback. A
// prompt id that no longer matches the pending one is stale and cannot
// fire anything.
type PromptHandler struct {
	Prompts      promptStore
	Appointments appointmentStore
	Carts        cartStore
	Orders       orderStore
}

func NewPromptHandler(pr promptStore, ap appointmentStore, ca cartStore, or orderStore) *PromptHandler {
	return &PromptHandler{Prompts: pr, Appointments: ap, Carts: ca, Orders: or}
}

// Get returns the session's pending prompt.
func (h *PromptHandler) Get(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Prompts.Get(ctx, middleware.SessionID(c))
	if err != nil {
		if errors.Is(err, repository.ErrPromptNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no_prompt"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load prompt failed"})
	}
	return c.JSON(http.StatusOK, p)
}

// Accept resolves the pending prompt positively and executes its action.
func (h *PromptHandler) Accept(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	jti := middleware.SessionID(c)
	p, err := h.pending(ctx, jti, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrPromptNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no_prompt"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load prompt failed"})
	}
	if err := h.Prompts.Delete(ctx, jti); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "resolve prompt failed"})
	}

	switch p.Action {
	case model.ActionCancelAppointment:
		return h.cancelAppointment(ctx, c, p.AppointmentID)
	case model.ActionCheckout:
		return h.placeOrder(ctx, c, jti)
	}
	// Info prompts carry no action; accept is just a dismissal.
	return c.NoContent(http.StatusNoContent)
}

// Decline resolves the pending prompt negatively: the prompt is gone and
// nothing else changes.
func (h *PromptHandler) Decline(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	jti := middleware.SessionID(c)
	if _, err := h.pending(ctx, jti, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrPromptNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no_prompt"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load prompt failed"})
	}
	if err := h.Prompts.Delete(ctx, jti); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "resolve prompt failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// pending loads the stored prompt and checks the caller is resolving the
// one actually pending, not one that was replaced since.
func (h *PromptHandler) pending(ctx context.Context, jti, id string) (model.Prompt, error) {
	p, err := h.Prompts.Get(ctx, jti)
	if err != nil {
		return model.Prompt{}, err
	}
	if p.ID != id {
		return model.Prompt{}, repository.ErrPromptNotFound
	}
	return p, nil
}

// cancelAppointment removes the appointment the prompt was raised for and
// returns the updated list. An id that no longer exists (already
// cancelled elsewhere) is a silent no-op.
func (h *PromptHandler) cancelAppointment(ctx context.Context, c echo.Context, id int64) error {
	identifier := middleware.Identifier(c)

	ap, getErr := h.Appointments.Get(ctx, identifier, id)

	deleted, err := h.Appointments.Delete(ctx, identifier, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cancel failed"})
	}
	if deleted && getErr == nil {
		_ = queue_publisher.PublishAppointmentCancelled(ctx, queue.AppointmentCancelledEvent{
			AppointmentID:     ap.ID,
			AccountIdentifier: ap.AccountIdentifier,
			ServiceName:       ap.ServiceName,
			DisplayDate:       ap.DisplayDate,
			TimeSlot:          ap.TimeSlot,
			CancelledAt:       time.Now().UTC().Format(time.RFC3339),
		})
	}

	items, err := h.Appointments.ListByAccount(ctx, identifier)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"appointments": items,
		"empty":        len(items) == 0,
	})
}

// placeOrder builds the immutable order summary from the cart as it
// stands now. The cart is deliberately left intact; DismissOrder clears
// it once the client has acknowledged the summary.
func (h *PromptHandler) placeOrder(ctx context.Context, c echo.Context, jti string) error {
	ct, err := h.Carts.Get(ctx, jti)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load cart failed"})
	}
	if ct.IsEmpty() {
		return c.JSON(http.StatusConflict, echo.Map{"error": "empty_cart"})
	}

	now := time.Now()
	sum := cart.BuildSummary(ct, now)
	if err := h.Orders.Save(ctx, jti, sum); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save order failed"})
	}

	_ = queue_publisher.PublishOrderPlaced(ctx, queue.OrderPlacedEvent{
		OrderID:           sum.ID,
		AccountIdentifier: middleware.Identifier(c),
		ItemCount:         ct.ItemCount(),
		Total:             sum.Total,
		PlacedAt:          now.UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, sum)
}
