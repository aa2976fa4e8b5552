package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthView_Wrapping(t *testing.T) {
	dec := MonthView{Year: 2026, Month: time.December}
	jan := dec.Next()
	assert.Equal(t, MonthView{Year: 2027, Month: time.January}, jan)
	assert.Equal(t, dec, jan.Prev())
}

func TestBuildGrid_MarksPastDays(t *testing.T) {
	today := date(2026, time.September, 10)
	g := BuildGrid(CurrentMonthView(today), time.Time{}, today)

	require.Len(t, g.Days, 30)
	assert.Equal(t, "Setembro", g.MonthName)
	assert.False(t, g.PrevEnabled, "prev must be disabled on the current month")
	// September 1st 2026 is a Tuesday.
	assert.Equal(t, 2, g.LeadingBlanks)

	assert.True(t, g.Days[8].Past, "Sep 9 is before today")
	assert.False(t, g.Days[8].Selectable)
	assert.False(t, g.Days[9].Past, "today itself is bookable")
	assert.True(t, g.Days[9].Selectable)
}

func TestBuildGrid_TodayBookableWestOfUTC(t *testing.T) {
	sp, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	today := time.Date(2026, time.September, 10, 15, 0, 0, 0, sp)

	g := BuildGrid(CurrentMonthView(today), time.Time{}, today)
	require.Len(t, g.Days, 30)
	assert.True(t, g.Days[8].Past, "Sep 9 is before today")
	assert.False(t, g.Days[9].Past, "today stays bookable on a UTC-3 server")
	assert.True(t, g.Days[9].Selectable)
}

func TestBuildGrid_SelectedAndPrevEnabled(t *testing.T) {
	today := date(2026, time.September, 10)
	view := CurrentMonthView(today).Next()
	selected := date(2026, time.October, 3)

	g := BuildGrid(view, selected, today)
	assert.True(t, g.PrevEnabled, "a future month can navigate back")
	require.Len(t, g.Days, 31)
	assert.True(t, g.Days[2].Selected)
	assert.False(t, g.Days[3].Selected)
	for _, cell := range g.Days {
		assert.False(t, cell.Past, "future month has no past cells")
	}
}
