package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/edenspa/eden-spa-api/internal/booking"
)

func TestOpenDialogRequiresService(t *testing.T) {
	h := &BookingHandler{}

	rec := postJSON(t, h.OpenDialog, "/v1/booking/dialog", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing_field")
}

func TestSelectDateRejectsMalformedDate(t *testing.T) {
	h := &BookingHandler{}

	rec := postJSON(t, h.SelectDate, "/v1/booking/dialog/date", `{"date":"14/03/2026"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_date")
}

func TestSelectTimeRequiresTime(t *testing.T) {
	h := &BookingHandler{}

	rec := postJSON(t, h.SelectTime, "/v1/booking/dialog/time", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing_field")
}

func TestDialogViewExposesSlotsOnlyWithDate(t *testing.T) {
	today := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	d := booking.NewDraft("Massagem Relaxante", "/img/m.jpg", "a partir de R$ 120,00", today)

	view := dialogView(d, today)
	assert.Empty(t, view.Slots)
	assert.False(t, view.CanConfirm)
	assert.Equal(t, 2026, view.Calendar.Year)
	assert.Equal(t, int(time.September), view.Calendar.Month)

	// 2026-09-13 is a Sunday: morning block only.
	_, err := d.SelectDate(time.Date(2026, time.September, 13, 0, 0, 0, 0, time.UTC), today)
	assert.NoError(t, err)
	view = dialogView(d, today)
	assert.Equal(t, []string{"09:00", "09:40", "10:20", "11:00", "11:40"}, view.Slots)
	assert.False(t, view.CanConfirm)

	assert.NoError(t, d.SelectTime("09:40"))
	view = dialogView(d, today)
	assert.True(t, view.CanConfirm)
}
