package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/edenspa/eden-spa-api/internal/booking"
	"github.com/edenspa/eden-spa-api/internal/middleware"
	"github.com/edenspa/eden-spa-api/internal/model"
	"github.com/edenspa/eden-spa-api/internal/queue"
	"github.com/edenspa/eden-spa-api/internal/repository"
	queue_publisher "github.com/edenspa/eden-spa-api/internal/service"
)

// BookingHandler drives the booking dialog state machine and the
// appointment list. The dialog lives in the draft store: a stored draft
// means OPEN, a deleted one means CLOSED.
type BookingHandler struct {
	Catalog      *repository.CatalogRepo
	Appointments *repository.AppointmentRepo
	Drafts       *repository.DraftStore
	Sessions     *repository.SessionStore
	Prompts      *repository.PromptStore
}

func NewBookingHandler(cat *repository.CatalogRepo, ap *repository.AppointmentRepo,
	dr *repository.DraftStore, se *repository.SessionStore, pr *repository.PromptStore) *BookingHandler {
	return &BookingHandler{Catalog: cat, Appointments: ap, Drafts: dr, Sessions: se, Prompts: pr}
}

// ----- DTOs -----

type openDialogReq struct {
	Service string `json:"service"`
}

type navigateMonthReq struct {
	Direction string `json:"direction"` // prev | next
}

type selectDateReq struct {
	Date string `json:"date"` // "2026-09-14"
}

type selectTimeReq struct {
	Time string `json:"time"` // "09:00"
}

// dialogResp is the full dialog view: the draft, the calendar for its
// viewed month and, once a date is chosen, that date's slots.
type dialogResp struct {
	Draft      booking.Draft `json:"draft"`
	Calendar   booking.Grid  `json:"calendar"`
	Slots      []string      `json:"slots,omitempty"`
	CanConfirm bool          `json:"can_confirm"`
}

func dialogView(d booking.Draft, today time.Time) dialogResp {
	resp := dialogResp{
		Draft:      d,
		Calendar:   booking.BuildGrid(d.View, d.SelectedDate(), today),
		CanConfirm: d.CanConfirm(),
	}
	if sel := d.SelectedDate(); !sel.IsZero() {
		resp.Slots = booking.AvailableSlots(sel.Weekday())
	}
	return resp
}

// OpenDialog starts a booking for a catalog service, replacing any draft
// already open. The calendar always opens on the current month.
func (h *BookingHandler) OpenDialog(c echo.Context) error {
	var req openDialogReq
	if err := c.Bind(&req); err != nil || req.Service == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing_field", "field": "service"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	svc, err := h.Catalog.GetService(ctx, req.Service)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown_service"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	today := time.Now()
	d := booking.NewDraft(svc.Name, svc.ImageURL, svc.PriceDisplay, today)
	if err := h.Drafts.Save(ctx, middleware.SessionID(c), d); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save draft failed"})
	}
	return c.JSON(http.StatusCreated, dialogView(d, today))
}

// GetDialog returns the open dialog, or 404 when it is closed.
func (h *BookingHandler) GetDialog(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	d, err := h.Drafts.Get(ctx, middleware.SessionID(c))
	if err != nil {
		if errors.Is(err, repository.ErrDraftNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "dialog_closed"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load draft failed"})
	}
	return c.JSON(http.StatusOK, dialogView(d, time.Now()))
}

// NavigateMonth steps the viewed month. Stepping back past the current
// month is refused; the current month's past days are already unselectable
// cells, so nothing older is ever shown.
func (h *BookingHandler) NavigateMonth(c echo.Context) error {
	var req navigateMonthReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	jti := middleware.SessionID(c)
	d, err := h.Drafts.Get(ctx, jti)
	if err != nil {
		if errors.Is(err, repository.ErrDraftNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "dialog_closed"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load draft failed"})
	}

	today := time.Now()
	if err := d.NavigateMonth(req.Direction, today); err != nil {
		switch {
		case errors.Is(err, booking.ErrBadDirection):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid_direction"})
		case errors.Is(err, booking.ErrPastMonth):
			return c.JSON(http.StatusConflict, echo.Map{"error": "past_month"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "navigate failed"})
	}
	if err := h.Drafts.Save(ctx, jti, d); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save draft failed"})
	}
	return c.JSON(http.StatusOK, dialogView(d, today))
}

// SelectDate chooses a day in the viewed month and returns its slots.
// Selecting a new date clears any previously chosen time.
func (h *BookingHandler) SelectDate(c echo.Context) error {
	var req selectDateReq
	if err := c.Bind(&req); err != nil || req.Date == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing_field", "field": "date"})
	}
	date, err := booking.ParseDate(req.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid_date"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	jti := middleware.SessionID(c)
	d, err := h.Drafts.Get(ctx, jti)
	if err != nil {
		if errors.Is(err, repository.ErrDraftNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "dialog_closed"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load draft failed"})
	}

	today := time.Now()
	if _, err := d.SelectDate(date, today); err != nil {
		switch {
		case errors.Is(err, booking.ErrPastDate):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "past_date"})
		case errors.Is(err, booking.ErrOutsideMonth):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "outside_viewed_month"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "select date failed"})
	}
	if err := h.Drafts.Save(ctx, jti, d); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save draft failed"})
	}
	return c.JSON(http.StatusOK, dialogView(d, today))
}

// SelectTime chooses one of the selected date's generated slots.
func (h *BookingHandler) SelectTime(c echo.Context) error {
	var req selectTimeReq
	if err := c.Bind(&req); err != nil || req.Time == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing_field", "field": "time"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	jti := middleware.SessionID(c)
	d, err := h.Drafts.Get(ctx, jti)
	if err != nil {
		if errors.Is(err, repository.ErrDraftNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "dialog_closed"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load draft failed"})
	}

	if err := d.SelectTime(req.Time); err != nil {
		switch {
		case errors.Is(err, booking.ErrNoDate):
			return c.JSON(http.StatusConflict, echo.Map{"error": "no_date_selected"})
		case errors.Is(err, booking.ErrUnknownSlot):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown_slot"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "select time failed"})
	}
	if err := h.Drafts.Save(ctx, jti, d); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save draft failed"})
	}
	return c.JSON(http.StatusOK, dialogView(d, time.Now()))
}

// Confirm turns a complete draft into a persisted appointment, raises the
// one-shot booking-confirmed flag and closes the dialog. The appointment
// id is the confirmation instant in Unix milliseconds.
func (h *BookingHandler) Confirm(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	jti := middleware.SessionID(c)
	d, err := h.Drafts.Get(ctx, jti)
	if err != nil {
		if errors.Is(err, repository.ErrDraftNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "dialog_closed"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load draft failed"})
	}
	if !d.CanConfirm() {
		return c.JSON(http.StatusConflict, echo.Map{"error": "incomplete_selection"})
	}

	now := time.Now()
	date := d.SelectedDate()
	ap := model.Appointment{
		ID:                now.UnixMilli(),
		AccountIdentifier: middleware.Identifier(c),
		ServiceName:       d.Service,
		Date:              date,
		DisplayDate:       booking.FormatDisplayDate(date),
		TimeSlot:          d.Time,
		ImageURL:          d.ImageURL,
		PriceDisplay:      d.PriceDisplay,
		CreatedAt:         now,
	}
	if err := h.Appointments.Create(ctx, ap); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create appointment failed"})
	}
	if err := h.Sessions.SetBookingFlag(ctx, jti); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "set flag failed"})
	}
	_ = h.Drafts.Delete(ctx, jti)

	_ = queue_publisher.PublishAppointmentConfirmed(ctx, queue.AppointmentConfirmedEvent{
		AppointmentID:     ap.ID,
		AccountIdentifier: ap.AccountIdentifier,
		ServiceName:       ap.ServiceName,
		DisplayDate:       ap.DisplayDate,
		TimeSlot:          ap.TimeSlot,
		ConfirmedAt:       now.UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, ap)
}

// CloseDialog discards the draft. Closing an already closed dialog is a
// no-op, so the operation is idempotent.
func (h *BookingHandler) CloseDialog(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Drafts.Delete(ctx, middleware.SessionID(c)); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "close dialog failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// ListAppointments returns the account's appointments ascending by date.
// An empty schedule is an explicit state, not an error.
func (h *BookingHandler) ListAppointments(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Appointments.ListByAccount(ctx, middleware.Identifier(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"appointments": items,
		"empty":        len(items) == 0,
	})
}

// CancelAppointment does not delete anything yet: it writes a confirmation
// prompt bound to the cancel action. The deletion happens when the prompt
// is accepted.
func (h *BookingHandler) CancelAppointment(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid_id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p := model.Prompt{
		ID:            uuid.NewString(),
		Kind:          model.PromptConfirm,
		Title:         "Cancelar Agendamento",
		Text:          "Tem certeza que deseja cancelar este agendamento?",
		Action:        model.ActionCancelAppointment,
		AppointmentID: id,
	}
	if err := h.Prompts.Put(ctx, middleware.SessionID(c), p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save prompt failed"})
	}
	return c.JSON(http.StatusAccepted, p)
}
