package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDraft(today time.Time) Draft {
	return NewDraft("Massagem Relaxante", "/img/massagem.jpg", "a partir de R$ 120,00", today)
}

func TestDraft_OpensOnCurrentMonth(t *testing.T) {
	today := date(2026, time.September, 10)
	d := newTestDraft(today)

	assert.Equal(t, MonthView{Year: 2026, Month: time.September}, d.View)
	assert.Empty(t, d.Date)
	assert.Empty(t, d.Time)
	assert.False(t, d.CanConfirm())
}

func TestDraft_NavigateMonth(t *testing.T) {
	today := date(2026, time.September, 10)
	d := newTestDraft(today)

	require.ErrorIs(t, d.NavigateMonth(DirectionPrev, today), ErrPastMonth)
	require.NoError(t, d.NavigateMonth(DirectionNext, today))
	assert.Equal(t, time.October, d.View.Month)
	require.NoError(t, d.NavigateMonth(DirectionPrev, today))
	assert.Equal(t, time.September, d.View.Month)
	require.ErrorIs(t, d.NavigateMonth("sideways", today), ErrBadDirection)
}

func TestDraft_SelectDate(t *testing.T) {
	today := date(2026, time.September, 10)
	d := newTestDraft(today)

	_, err := d.SelectDate(date(2026, time.September, 9), today)
	require.ErrorIs(t, err, ErrPastDate)

	_, err = d.SelectDate(date(2026, time.October, 1), today)
	require.ErrorIs(t, err, ErrOutsideMonth)

	// 2026-09-14 is a Monday: full schedule.
	slots, err := d.SelectDate(date(2026, time.September, 14), today)
	require.NoError(t, err)
	assert.Len(t, slots, 14)
	assert.Equal(t, "2026-09-14", d.Date)
}

func TestDraft_DateChangeClearsTime(t *testing.T) {
	today := date(2026, time.September, 10)
	d := newTestDraft(today)

	_, err := d.SelectDate(date(2026, time.September, 14), today)
	require.NoError(t, err)
	require.NoError(t, d.SelectTime("09:00"))
	assert.True(t, d.CanConfirm())

	// Picking a Sunday clears the time and narrows the schedule.
	slots, err := d.SelectDate(date(2026, time.September, 13), today)
	require.NoError(t, err)
	assert.Len(t, slots, 5)
	assert.Empty(t, d.Time)
	assert.False(t, d.CanConfirm())
}

func TestDraft_SelectTime(t *testing.T) {
	today := date(2026, time.September, 10)
	d := newTestDraft(today)

	require.ErrorIs(t, d.SelectTime("09:00"), ErrNoDate)

	_, err := d.SelectDate(date(2026, time.September, 13), today) // Sunday
	require.NoError(t, err)
	require.ErrorIs(t, d.SelectTime("13:30"), ErrUnknownSlot)
	require.NoError(t, d.SelectTime("11:40"))
	assert.True(t, d.CanConfirm())
}

func TestDraft_SelectTodayWestOfUTC(t *testing.T) {
	sp, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	// Wire dates parse as UTC midnight; the server clock runs at UTC-3.
	today := time.Date(2026, time.September, 10, 15, 0, 0, 0, sp)
	d := newTestDraft(today)

	day, err := ParseDate("2026-09-10")
	require.NoError(t, err)
	slots, err := d.SelectDate(day, today)
	require.NoError(t, err, "today itself is never a past date")
	assert.NotEmpty(t, slots)
	assert.Equal(t, "2026-09-10", d.Date)

	_, err = d.SelectDate(date(2026, time.September, 9), today)
	require.ErrorIs(t, err, ErrPastDate)
}

func TestFormatDisplayDate(t *testing.T) {
	assert.Equal(t, "14 de Setembro de 2026", FormatDisplayDate(date(2026, time.September, 14)))
	assert.Equal(t, "02 de Março de 2027", FormatDisplayDate(date(2027, time.March, 2)))
}

func TestMonthNumber(t *testing.T) {
	n, ok := MonthNumber("Março")
	require.True(t, ok)
	assert.Equal(t, 3, n)
	_, ok = MonthNumber("March")
	assert.False(t, ok)
}
