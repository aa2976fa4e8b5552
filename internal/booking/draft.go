package booking

import (
	"errors"
	"time"
)

// Navigation directions accepted by NavigateMonth.
const (
	DirectionPrev = "prev"
	DirectionNext = "next"
)

// Sentinel errors surfaced by draft transitions. Handlers translate these
// into 400/409 responses.
var (
	ErrBadDirection  = errors.New("direction must be prev or next")
	ErrPastMonth     = errors.New("cannot navigate into a past month")
	ErrPastDate      = errors.New("date is in the past")
	ErrOutsideMonth  = errors.New("date is outside the viewed month")
	ErrNoDate        = errors.New("no date selected")
	ErrUnknownSlot   = errors.New("time is not an available slot")
	ErrIncomplete    = errors.New("both date and time must be selected")
)

// Draft is the transient booking selection carried while the dialog is open:
// the service captured from the triggering card, the viewed calendar month
// and the chosen date/time. A missing draft means the dialog is closed.
type Draft struct {
	Service      string    `json:"service"`
	ImageURL     string    `json:"image_url"`
	PriceDisplay string    `json:"price_display"`
	View         MonthView `json:"view"`
	Date         string    `json:"date,omitempty"`
	Time         string    `json:"time,omitempty"`
}

// NewDraft opens a fresh draft for a service with the calendar reset to
// today's month and no date or time selected.
func NewDraft(service, imageURL, priceDisplay string, today time.Time) Draft {
	return Draft{
		Service:      service,
		ImageURL:     imageURL,
		PriceDisplay: priceDisplay,
		View:         CurrentMonthView(today),
	}
}

// NavigateMonth shifts the viewed month by one. Stepping back is only
// allowed while the viewed month is strictly after the current one, so the
// calendar can never display a month that lies entirely in the past.
func (d *Draft) NavigateMonth(direction string, today time.Time) error {
	switch direction {
	case DirectionNext:
		d.View = d.View.Next()
		return nil
	case DirectionPrev:
		if !d.View.After(CurrentMonthView(today)) {
			return ErrPastMonth
		}
		d.View = d.View.Prev()
		return nil
	default:
		return ErrBadDirection
	}
}

// SelectDate chooses a calendar date and returns the slots for its weekday.
// The date must not be before today and must belong to the viewed month
// (other cells are never rendered as selectable). Any previously selected
// time is cleared, since available slots depend on the date.
func (d *Draft) SelectDate(date time.Time, today time.Time) ([]string, error) {
	date = Midnight(date)
	if BeforeDay(date, today) {
		return nil, ErrPastDate
	}
	if !d.View.Contains(date) {
		return nil, ErrOutsideMonth
	}
	d.Date = date.Format(DateLayout)
	d.Time = ""
	return AvailableSlots(date.Weekday()), nil
}

// SelectTime chooses one of the selected date's generated slots.
func (d *Draft) SelectTime(t string) error {
	if d.Date == "" {
		return ErrNoDate
	}
	date, err := ParseDate(d.Date)
	if err != nil {
		return ErrNoDate
	}
	if !SlotAvailable(date.Weekday(), t) {
		return ErrUnknownSlot
	}
	d.Time = t
	return nil
}

// SelectedDate returns the chosen date, or the zero time when none is set.
func (d *Draft) SelectedDate() time.Time {
	if d.Date == "" {
		return time.Time{}
	}
	date, err := ParseDate(d.Date)
	if err != nil {
		return time.Time{}
	}
	return date
}

// CanConfirm reports whether the confirm action is enabled: both a date and
// a time must be chosen.
func (d *Draft) CanConfirm() bool {
	return d.Date != "" && d.Time != ""
}
