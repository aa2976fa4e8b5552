package booking

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// MonthNames holds the Portuguese month names used across the site: in the
// registration birth-date picker, in the calendar header and in the formatted
// appointment date. Index 0 is Janeiro.
var MonthNames = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril",
	"Maio", "Junho", "Julho", "Agosto",
	"Setembro", "Outubro", "Novembro", "Dezembro",
}

// MonthNumber resolves a Portuguese month name to its 1-based number.
func MonthNumber(name string) (int, bool) {
	for i, n := range MonthNames {
		if n == name {
			return i + 1, true
		}
	}
	return 0, false
}

// MonthName returns the Portuguese name for a 1-based month number.
func MonthName(month time.Month) string {
	return MonthNames[int(month)-1]
}

// FormatDisplayDate renders a date the way appointment cards show it,
// e.g. "14 de Março de 2026".
func FormatDisplayDate(d time.Time) string {
	return fmt.Sprintf("%02d de %s de %d", d.Day(), MonthName(d.Month()), d.Year())
}

// ParseDate parses a DateLayout string into a date truncated to midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Midnight truncates t to the start of its day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// BeforeDay reports whether a falls on an earlier calendar day than b.
// The comparison is on day tuples, not instants: wire dates parse as UTC
// midnight while "now" carries the server zone, and comparing instants
// would shift today into the past on any server west of UTC.
func BeforeDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
